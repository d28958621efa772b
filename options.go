package dbsession

import (
	"time"

	"github.com/cccteam/dbsession/sessionstorage"
)

// Option defines a function signature for setting Handler options.
type Option func(*Handler)

// WithSessionTableName sets the name of the session table. (default: session)
func WithSessionTableName(name string) Option {
	return func(h *Handler) {
		h.storage.SetSessionTableName(name)
	}
}

// WithWriteMode sets how Write treats a session id with no row. (default: sessionstorage.WriteModeUpdate)
func WithWriteMode(mode sessionstorage.WriteMode) Option {
	return func(h *Handler) {
		h.storage.SetWriteMode(mode)
	}
}

// WithGCBatchSize removes expired sessions n rows at a time on backends that
// support it. (default: 0, a single statement)
func WithGCBatchSize(n int) Option {
	return func(h *Handler) {
		h.storage.SetGCBatchSize(n)
	}
}

// WithClock sets the time source used for activity timestamps. (default: time.Now)
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.storage.SetClock(now)
	}
}

// WithMetrics records operation counts and latencies in m.
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}
