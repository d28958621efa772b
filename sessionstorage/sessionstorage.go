// Package sessionstorage implements database storage for session data.
// There are implementations for both Spanner and Postgres, selected by
// the constructor used.
package sessionstorage

import (
	"context"
	"time"

	cloudspanner "cloud.google.com/go/spanner"
	"github.com/cccteam/ccc"
	"github.com/cccteam/dbsession/sessionstorage/internal/postgres"
	"github.com/cccteam/dbsession/sessionstorage/internal/spanner"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel/attribute"
)

// WriteMode selects how Write treats a session id with no stored row.
type WriteMode int

const (
	// WriteModeUpdate only updates existing rows. Writing an unknown id succeeds
	// but stores nothing.
	WriteModeUpdate WriteMode = iota
	// WriteModeUpsert inserts the row when it does not exist.
	WriteModeUpsert
)

func (m WriteMode) String() string {
	switch m {
	case WriteModeUpdate:
		return "update"
	case WriteModeUpsert:
		return "upsert"
	default:
		return "unknown"
	}
}

// Record is a stored session row.
type Record struct {
	ID           string
	Data         string
	LastActivity time.Time
}

// Store reads, writes and expires session rows in a single table.
type Store struct {
	db          db
	tableName   string
	writeMode   WriteMode
	gcBatchSize int
	now         func() time.Time
}

// NewPostgres creates a Store backed by PostgreSQL.
func NewPostgres(pg postgres.Queryer) *Store {
	return newStore(postgres.NewSessionStorageDriver(pg))
}

// NewSpanner creates a Store backed by Spanner.
func NewSpanner(client *cloudspanner.Client) *Store {
	return newStore(spanner.NewSessionStorageDriver(client))
}

func newStore(d db) *Store {
	return &Store{
		db:        d,
		tableName: "session",
		writeMode: WriteModeUpdate,
		now:       time.Now,
	}
}

// SetSessionTableName sets the name of the session table. (default: session)
func (s *Store) SetSessionTableName(name string) {
	s.tableName = name
	s.db.SetSessionTableName(name)
}

// SetWriteMode sets how Write treats unknown session ids. (default: WriteModeUpdate)
func (s *Store) SetWriteMode(mode WriteMode) {
	s.writeMode = mode
}

// SetGCBatchSize limits how many rows a single garbage collection statement
// removes. Zero or less issues one unbounded statement. (default: 0)
func (s *Store) SetGCBatchSize(n int) {
	s.gcBatchSize = n
}

// SetClock replaces the time source used for activity timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Read returns the data stored for sessionID. A missing session is reported
// as an httpio not found error.
func (s *Store) Read(ctx context.Context, sessionID string) (string, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("session.table", s.tableName))

	data, err := s.db.SessionData(ctx, sessionID)
	if err != nil {
		return "", errors.Wrap(err, "db.SessionData()")
	}

	return data, nil
}

// Session returns the full record stored for sessionID
func (s *Store) Session(ctx context.Context, sessionID string) (*Record, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("session.table", s.tableName))

	row, err := s.db.Session(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "db.Session()")
	}

	r := &Record{
		ID:           row.ID,
		LastActivity: time.Unix(row.Time, 0),
	}
	if row.Data != nil {
		r.Data = *row.Data
	}

	return r, nil
}

// Write stores data for sessionID and sets its last activity to now.
// It returns the number of rows affected.
func (s *Store) Write(ctx context.Context, sessionID, data string) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.String("session.table", s.tableName),
		attribute.String("session.write_mode", s.writeMode.String()),
	)

	activity := s.now().Unix()

	if s.writeMode == WriteModeUpsert {
		n, err := s.db.UpsertSessionData(ctx, sessionID, data, activity)
		if err != nil {
			return 0, errors.Wrap(err, "db.UpsertSessionData()")
		}

		return n, nil
	}

	n, err := s.db.UpdateSessionData(ctx, sessionID, data, activity)
	if err != nil {
		return 0, errors.Wrap(err, "db.UpdateSessionData()")
	}

	return n, nil
}

// Destroy removes the session row. Removing an absent session is not an error.
func (s *Store) Destroy(ctx context.Context, sessionID string) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("session.table", s.tableName))

	n, err := s.db.DeleteSession(ctx, sessionID)
	if err != nil {
		return 0, errors.Wrap(err, "db.DeleteSession()")
	}

	return n, nil
}

// CollectGarbage removes every session whose last activity is more than
// maxLifetime seconds ago and returns how many rows were removed.
func (s *Store) CollectGarbage(ctx context.Context, maxLifetime int64) (int64, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.String("session.table", s.tableName),
		attribute.Int("session.gc_batch_size", s.gcBatchSize),
	)

	// Kept in seconds: a time.Duration overflows past ~292 years.
	threshold := s.now().Unix() - maxLifetime

	n, err := s.db.DeleteExpiredSessions(ctx, threshold, s.gcBatchSize)
	if err != nil {
		return n, errors.Wrap(err, "db.DeleteExpiredSessions()")
	}

	return n, nil
}
