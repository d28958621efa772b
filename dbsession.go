// Package dbsession is a database backed session save handler. It exposes the
// read, write, destroy and garbage collection calls a session framework makes,
// collapsing storage failures into the sentinel values such frameworks expect,
// and a parallel Result API that keeps the underlying error.
package dbsession

import (
	"context"
	"time"

	cloudspanner "cloud.google.com/go/spanner"
	"github.com/cccteam/ccc"
	"github.com/cccteam/dbsession/sessionstorage"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultMaxLifetime is the garbage collection window, in seconds, used when the
// caller has no configured lifetime.
const DefaultMaxLifetime = 1440

// Status classifies the outcome of a storage operation.
type Status int

const (
	// StatusOK means the statement executed without error.
	StatusOK Status = iota
	// StatusNotFound means Read found no row for the session id.
	StatusNotFound
	// StatusBackendError means the storage layer failed. Result.Err holds the cause.
	StatusBackendError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusBackendError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the detailed outcome of a Handler operation.
type Result struct {
	Status Status
	// Data is the session payload, set by ReadResult only.
	Data string
	// RowsAffected is the number of rows written or removed.
	RowsAffected int64
	Err          error
}

// OK reports whether the statement executed without a storage error.
func (r Result) OK() bool {
	return r.Status != StatusBackendError
}

// PostgresQueryer is the pgx connection surface used by NewPostgres.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type PostgresQueryer interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// Handler is the session save handler.
type Handler struct {
	storage Storage
	metrics *Metrics
}

// New creates a Handler over storage, which must not be nil.
func New(storage Storage, opts ...Option) *Handler {
	if storage == nil {
		panic("dbsession: New called with nil Storage")
	}

	h := &Handler{
		storage: storage,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// NewPostgres creates a Handler storing sessions in PostgreSQL.
func NewPostgres(pg PostgresQueryer, opts ...Option) *Handler {
	return New(sessionstorage.NewPostgres(pg), opts...)
}

// NewSpanner creates a Handler storing sessions in Spanner.
func NewSpanner(client *cloudspanner.Client, opts ...Option) *Handler {
	return New(sessionstorage.NewSpanner(client), opts...)
}

// Read returns the session data for sessionID. A missing session and a
// storage failure both return an empty string.
func (h *Handler) Read(ctx context.Context, sessionID string) string {
	res := h.ReadResult(ctx, sessionID)
	if res.Status == StatusBackendError {
		logger.FromCtx(ctx).Errorf("session read failed: %v", res.Err)
	}

	return res.Data
}

// Write stores data for sessionID. It returns false only when the storage
// layer fails; writing a session with no row is not a failure.
func (h *Handler) Write(ctx context.Context, sessionID, data string) bool {
	res := h.WriteResult(ctx, sessionID, data)
	if !res.OK() {
		logger.FromCtx(ctx).Errorf("session write failed: %v", res.Err)
	}

	return res.OK()
}

// Destroy removes the session. Destroying an absent session succeeds.
func (h *Handler) Destroy(ctx context.Context, sessionID string) bool {
	res := h.DestroyResult(ctx, sessionID)
	if !res.OK() {
		logger.FromCtx(ctx).Errorf("session destroy failed: %v", res.Err)
	}

	return res.OK()
}

// CollectGarbage removes sessions idle for more than maxLifetime seconds.
func (h *Handler) CollectGarbage(ctx context.Context, maxLifetime int) bool {
	res := h.CollectGarbageResult(ctx, maxLifetime)
	if !res.OK() {
		logger.FromCtx(ctx).Errorf("session garbage collection failed: %v", res.Err)
	}

	return res.OK()
}

// ReadResult is Read with the outcome classified.
func (h *Handler) ReadResult(ctx context.Context, sessionID string) Result {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	start := time.Now()
	data, err := h.storage.Read(ctx, sessionID)
	res := classify(err, "Storage.Read()")
	if res.Status == StatusOK {
		res.Data = data
	}
	h.metrics.observe(opRead, res, time.Since(start))

	return res
}

// Session returns the stored record for sessionID, including its last
// activity. The record is nil unless the Result status is StatusOK.
func (h *Handler) Session(ctx context.Context, sessionID string) (*sessionstorage.Record, Result) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	start := time.Now()
	rec, err := h.storage.Session(ctx, sessionID)
	res := classify(err, "Storage.Session()")
	switch {
	case res.Status != StatusOK:
		rec = nil
	case rec != nil:
		res.Data = rec.Data
	}
	h.metrics.observe(opSession, res, time.Since(start))

	return rec, res
}

// WriteResult is Write with the outcome classified.
func (h *Handler) WriteResult(ctx context.Context, sessionID, data string) Result {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	start := time.Now()
	n, err := h.storage.Write(ctx, sessionID, data)
	res := backendResult(n, err, "Storage.Write()")
	h.metrics.observe(opWrite, res, time.Since(start))

	return res
}

// DestroyResult is Destroy with the outcome classified.
func (h *Handler) DestroyResult(ctx context.Context, sessionID string) Result {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	start := time.Now()
	n, err := h.storage.Destroy(ctx, sessionID)
	res := backendResult(n, err, "Storage.Destroy()")
	h.metrics.observe(opDestroy, res, time.Since(start))

	return res
}

// CollectGarbageResult is CollectGarbage with the outcome classified.
func (h *Handler) CollectGarbageResult(ctx context.Context, maxLifetime int) Result {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	start := time.Now()
	n, err := h.storage.CollectGarbage(ctx, int64(maxLifetime))
	res := backendResult(n, err, "Storage.CollectGarbage()")
	h.metrics.observe(opGC, res, time.Since(start))
	if res.OK() {
		h.metrics.collected(n)
	}

	return res
}

func classify(err error, op string) Result {
	switch {
	case err == nil:
		return Result{Status: StatusOK}
	case httpio.HasNotFound(err):
		return Result{Status: StatusNotFound}
	default:
		return Result{Status: StatusBackendError, Err: errors.Wrap(err, op)}
	}
}

func backendResult(n int64, err error, op string) Result {
	if err != nil {
		return Result{Status: StatusBackendError, Err: errors.Wrap(err, op)}
	}

	return Result{Status: StatusOK, RowsAffected: n}
}
