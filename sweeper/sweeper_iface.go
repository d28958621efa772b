package sweeper

import (
	"context"

	"github.com/cccteam/dbsession"
)

var _ Collector = (*dbsession.Handler)(nil)

// Collector removes expired sessions.
type Collector interface {
	CollectGarbageResult(ctx context.Context, maxLifetime int) dbsession.Result
}
