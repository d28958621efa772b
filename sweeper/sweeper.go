// Package sweeper runs session garbage collection on a cron schedule.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/cccteam/dbsession"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs a sweep every 24 minutes, matching the default lifetime.
const DefaultSchedule = "@every 24m"

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithSchedule sets the cron expression sweeps run on. (default: DefaultSchedule)
func WithSchedule(spec string) Option {
	return func(s *Sweeper) {
		s.schedule = spec
	}
}

// WithMaxLifetime sets the session lifetime in seconds. (default: dbsession.DefaultMaxLifetime)
func WithMaxLifetime(seconds int) Option {
	return func(s *Sweeper) {
		s.maxLifetime = seconds
	}
}

// Sweeper periodically removes expired sessions.
type Sweeper struct {
	collector   Collector
	schedule    string
	maxLifetime int

	mu   sync.Mutex
	cron *cron.Cron
}

// New creates a Sweeper for collector.
func New(collector Collector, opts ...Option) *Sweeper {
	s := &Sweeper{
		collector:   collector,
		schedule:    DefaultSchedule,
		maxLifetime: dbsession.DefaultMaxLifetime,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start schedules sweeps until Stop is called. ctx is passed to every sweep.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return errors.New("sweeper already started")
	}

	sched, err := cronParser.Parse(s.schedule)
	if err != nil {
		return errors.Wrapf(err, "cron.Parser.Parse(%q)", s.schedule)
	}

	c := cron.New(cron.WithParser(cronParser))
	c.Schedule(sched, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		s.Sweep(ctx)
	})))
	c.Start()
	s.cron = c

	logger.FromCtx(ctx).Infof("session sweeper started: schedule=%q maxLifetime=%ds", s.schedule, s.maxLifetime)

	return nil
}

// Stop halts scheduling. The returned context is done once a running sweep finishes.
func (s *Sweeper) Stop() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		return ctx
	}

	ctx := s.cron.Stop()
	s.cron = nil

	return ctx
}

// Sweep runs one garbage collection pass and reports whether it succeeded.
// Each pass is tagged with a run id in the logs.
func (s *Sweeper) Sweep(ctx context.Context) bool {
	runID := uuid.Must(uuid.NewV4())

	start := time.Now()
	res := s.collector.CollectGarbageResult(ctx, s.maxLifetime)
	if !res.OK() {
		logger.FromCtx(ctx).Errorf("session sweep %s failed: %v", runID, res.Err)

		return false
	}

	logger.FromCtx(ctx).Infof("session sweep %s removed %d expired sessions in %s", runID, res.RowsAffected, time.Since(start))

	return true
}
