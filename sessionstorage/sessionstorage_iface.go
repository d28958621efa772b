package sessionstorage

import (
	"context"

	"github.com/cccteam/dbsession/sessionstorage/internal/dbtype"
	"github.com/cccteam/dbsession/sessionstorage/internal/postgres"
	"github.com/cccteam/dbsession/sessionstorage/internal/spanner"
)

var (
	_ db = (*spanner.SessionStorageDriver)(nil)
	_ db = (*postgres.SessionStorageDriver)(nil)
)

// db defines an interface for database operations related to session storage.
type db interface {
	// SessionData returns the payload for sessionID, or a not found error.
	SessionData(ctx context.Context, sessionID string) (string, error)
	// Session returns the full row for sessionID, or a not found error.
	Session(ctx context.Context, sessionID string) (*dbtype.Session, error)
	// UpdateSessionData updates an existing row and returns the rows affected.
	UpdateSessionData(ctx context.Context, sessionID, data string, activity int64) (int64, error)
	// UpsertSessionData inserts or updates the row and returns the rows affected.
	UpsertSessionData(ctx context.Context, sessionID, data string, activity int64) (int64, error)
	// DeleteSession removes the row for sessionID and returns the rows affected.
	DeleteSession(ctx context.Context, sessionID string) (int64, error)
	// DeleteExpiredSessions removes rows with last activity before threshold.
	DeleteExpiredSessions(ctx context.Context, threshold int64, batchSize int) (int64, error)
	// SetSessionTableName sets the name of the session table.
	SetSessionTableName(name string)
}
