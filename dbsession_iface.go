package dbsession

import (
	"context"
	"time"

	"github.com/cccteam/dbsession/sessionstorage"
)

var _ Storage = (*sessionstorage.Store)(nil)

// Storage defines the error-returning session storage the Handler delegates to.
type Storage interface {
	Read(ctx context.Context, sessionID string) (string, error)
	Session(ctx context.Context, sessionID string) (*sessionstorage.Record, error)
	Write(ctx context.Context, sessionID, data string) (int64, error)
	Destroy(ctx context.Context, sessionID string) (int64, error)
	CollectGarbage(ctx context.Context, maxLifetime int64) (int64, error)

	SetSessionTableName(name string)
	SetWriteMode(mode sessionstorage.WriteMode)
	SetGCBatchSize(n int)
	SetClock(now func() time.Time)
}
