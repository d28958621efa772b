// Package spanner provides the session storage driver for Spanner.
package spanner

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/cccteam/ccc"
	"github.com/cccteam/dbsession/sessionstorage/internal/dbtype"
	"github.com/cccteam/httpio"
	"github.com/cccteam/spxscan"
	"github.com/go-playground/errors/v5"
	"google.golang.org/grpc/codes"
)

// SessionStorageDriver represents the session storage implementation for Spanner.
type SessionStorageDriver struct {
	spanner          *spanner.Client
	sessionTableName string
}

// NewSessionStorageDriver creates a new SessionStorageDriver
func NewSessionStorageDriver(client *spanner.Client) *SessionStorageDriver {
	return &SessionStorageDriver{
		spanner:          client,
		sessionTableName: "session",
	}
}

// SetSessionTableName sets the name of the session table.
func (s *SessionStorageDriver) SetSessionTableName(name string) {
	s.sessionTableName = name
}

var identifierEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`")

// table returns the session table as a quoted GoogleSQL identifier. Each
// dot-separated part is quoted on its own so named schemas keep working.
func (s *SessionStorageDriver) table() string {
	parts := strings.Split(s.sessionTableName, ".")
	for i := range parts {
		parts[i] = "`" + identifierEscaper.Replace(parts[i]) + "`"
	}

	return strings.Join(parts, ".")
}

// SessionData returns the payload stored for sessionID
func (s *SessionStorageDriver) SessionData(ctx context.Context, sessionID string) (string, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	stmt := spanner.NewStatement(fmt.Sprintf(`
		SELECT data
		FROM %s
		WHERE session_id = @id
	`, s.table()))
	stmt.Params["id"] = sessionID

	row := &dbtype.SessionData{}
	if err := spxscan.Get(ctx, s.spanner.Single(), row, stmt); err != nil {
		if errors.Is(err, spxscan.ErrNotFound) {
			return "", httpio.NewNotFoundMessagef("session %q not found", sessionID)
		}

		return "", errors.Wrapf(err, "failed to scan row for session %q", sessionID)
	}

	if row.Data == nil {
		return "", nil
	}

	return *row.Data, nil
}

// Session returns the full session row for sessionID
func (s *SessionStorageDriver) Session(ctx context.Context, sessionID string) (*dbtype.Session, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	stmt := spanner.NewStatement(fmt.Sprintf(`
		SELECT
			session_id,
			data,
			time
		FROM %s
		WHERE session_id = @id
	`, s.table()))
	stmt.Params["id"] = sessionID

	session := &dbtype.Session{}
	if err := spxscan.Get(ctx, s.spanner.Single(), session, stmt); err != nil {
		if errors.Is(err, spxscan.ErrNotFound) {
			return nil, httpio.NewNotFoundMessagef("session %q not found", sessionID)
		}

		return nil, errors.Wrapf(err, "failed to scan row for session %q", sessionID)
	}

	return session, nil
}

// UpdateSessionData sets data and last activity on an existing row. A missing
// row is not an error; the returned count is zero.
func (s *SessionStorageDriver) UpdateSessionData(ctx context.Context, sessionID, data string, activity int64) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	stmt := spanner.NewStatement(fmt.Sprintf(`
		UPDATE %s SET data = @data, time = @time
		WHERE session_id = @id
	`, s.table()))
	stmt.Params["data"] = data
	stmt.Params["time"] = activity
	stmt.Params["id"] = sessionID

	return s.update(ctx, stmt)
}

// UpsertSessionData inserts the row or updates it when it already exists
func (s *SessionStorageDriver) UpsertSessionData(ctx context.Context, sessionID, data string, activity int64) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	mutation := spanner.InsertOrUpdate(s.sessionTableName,
		[]string{"session_id", "data", "time"},
		[]any{sessionID, data, activity},
	)

	if _, err := s.spanner.Apply(ctx, []*spanner.Mutation{mutation}); err != nil {
		return 0, s.wrap(err, "spanner.Client.Apply()")
	}

	return 1, nil
}

// DeleteSession removes the row for sessionID if present
func (s *SessionStorageDriver) DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	stmt := spanner.NewStatement(fmt.Sprintf(`
		DELETE FROM %s
		WHERE session_id = @id
	`, s.table()))
	stmt.Params["id"] = sessionID

	return s.update(ctx, stmt)
}

// DeleteExpiredSessions removes every row whose last activity is before threshold.
// Partitioned DML already splits the work, so batchSize is ignored.
func (s *SessionStorageDriver) DeleteExpiredSessions(ctx context.Context, threshold int64, _ int) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	stmt := spanner.NewStatement(fmt.Sprintf(`
		DELETE FROM %s
		WHERE time < @threshold
	`, s.table()))
	stmt.Params["threshold"] = threshold

	count, err := s.spanner.PartitionedUpdate(ctx, stmt)
	if err != nil {
		return 0, s.wrap(err, "spanner.Client.PartitionedUpdate()")
	}

	return count, nil
}

func (s *SessionStorageDriver) update(ctx context.Context, stmt spanner.Statement) (int64, error) {
	var count int64
	_, err := s.spanner.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, stmt)
		if err != nil {
			return errors.Wrap(err, "spanner.ReadWriteTransaction().Update()")
		}
		count = n

		return nil
	})
	if err != nil {
		return 0, s.wrap(err, "spanner.Client.ReadWriteTransaction()")
	}

	return count, nil
}

// wrap annotates errors caused by a missing session table so a misconfigured
// table name is obvious in the logs.
func (s *SessionStorageDriver) wrap(err error, msg string) error {
	if spanner.ErrCode(err) == codes.NotFound {
		return errors.Wrapf(err, "%s: session table %s not found", msg, s.table())
	}

	return errors.Wrap(err, msg)
}
