// Package postgres implements the session storage driver for PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/cccteam/ccc"
	"github.com/cccteam/dbsession/sessionstorage/internal/dbtype"
	"github.com/cccteam/httpio"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of pgx connection methods used by the driver.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type Queryer interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// SessionStorageDriver represents the session storage implementation for PostgreSQL.
type SessionStorageDriver struct {
	conn             Queryer
	sessionTableName string
}

// NewSessionStorageDriver creates a new SessionStorageDriver
func NewSessionStorageDriver(conn Queryer) *SessionStorageDriver {
	return &SessionStorageDriver{
		conn:             conn,
		sessionTableName: "session",
	}
}

// SetSessionTableName sets the name of the session table. A dotted name is
// treated as schema-qualified.
func (d *SessionStorageDriver) SetSessionTableName(name string) {
	d.sessionTableName = name
}

func (d *SessionStorageDriver) table() string {
	return pgx.Identifier(strings.Split(d.sessionTableName, ".")).Sanitize()
}

// SessionData returns the payload stored for sessionID
func (d *SessionStorageDriver) SessionData(ctx context.Context, sessionID string) (string, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := fmt.Sprintf(`
		SELECT "data"
		FROM %s
		WHERE "session_id" = $1`, d.table())

	row := &dbtype.SessionData{}
	if err := pgxscan.Get(ctx, d.conn, row, query, sessionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", httpio.NewNotFoundMessagef("session %q not found in database", sessionID)
		}

		return "", errors.Wrapf(err, "failed to scan row for session %q", sessionID)
	}

	if row.Data == nil {
		return "", nil
	}

	return *row.Data, nil
}

// Session returns the full session row for sessionID
func (d *SessionStorageDriver) Session(ctx context.Context, sessionID string) (*dbtype.Session, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := fmt.Sprintf(`
		SELECT
			"session_id", "data", "time"
		FROM %s
		WHERE "session_id" = $1`, d.table())

	s := &dbtype.Session{}
	if err := pgxscan.Get(ctx, d.conn, s, query, sessionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpio.NewNotFoundMessagef("session %q not found in database", sessionID)
		}

		return nil, errors.Wrapf(err, "failed to scan row for session %q", sessionID)
	}

	return s, nil
}

// UpdateSessionData sets data and last activity on an existing row. A missing
// row is not an error; the returned count is zero.
func (d *SessionStorageDriver) UpdateSessionData(ctx context.Context, sessionID, data string, activity int64) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := fmt.Sprintf(`
		UPDATE %s SET "data" = $1, "time" = $2
		WHERE "session_id" = $3`, d.table())

	res, err := d.conn.Exec(ctx, query, data, activity, sessionID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to update %s for session %q", d.sessionTableName, sessionID)
	}

	return res.RowsAffected(), nil
}

// UpsertSessionData inserts the row or updates it when it already exists
func (d *SessionStorageDriver) UpsertSessionData(ctx context.Context, sessionID, data string, activity int64) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := fmt.Sprintf(`
		INSERT INTO %s
			("session_id", "data", "time")
		VALUES
			($1, $2, $3)
		ON CONFLICT ("session_id") DO UPDATE
			SET "data" = EXCLUDED."data", "time" = EXCLUDED."time"`, d.table())

	res, err := d.conn.Exec(ctx, query, sessionID, data, activity)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to upsert %s for session %q", d.sessionTableName, sessionID)
	}

	return res.RowsAffected(), nil
}

// DeleteSession removes the row for sessionID if present
func (d *SessionStorageDriver) DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE "session_id" = $1`, d.table())

	res, err := d.conn.Exec(ctx, query, sessionID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete from %s for session %q", d.sessionTableName, sessionID)
	}

	return res.RowsAffected(), nil
}

// DeleteExpiredSessions removes every row whose last activity is before threshold.
// With batchSize <= 0 a single statement is issued, otherwise rows are removed
// batchSize at a time until a short batch is seen.
func (d *SessionStorageDriver) DeleteExpiredSessions(ctx context.Context, threshold int64, batchSize int) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	if batchSize <= 0 {
		query := fmt.Sprintf(`
			DELETE FROM %s
			WHERE "time" < $1`, d.table())

		res, err := d.conn.Exec(ctx, query, threshold)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to delete expired sessions from %s", d.sessionTableName)
		}

		return res.RowsAffected(), nil
	}

	query := fmt.Sprintf(`
		DELETE FROM %[1]s
		WHERE "session_id" IN (
			SELECT "session_id"
			FROM %[1]s
			WHERE "time" < $1
			LIMIT $2
		)`, d.table())

	var total int64
	for {
		res, err := d.conn.Exec(ctx, query, threshold, batchSize)
		if err != nil {
			return total, errors.Wrapf(err, "failed to delete expired sessions from %s", d.sessionTableName)
		}

		n := res.RowsAffected()
		total += n
		if n < int64(batchSize) {
			return total, nil
		}
	}
}
