package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/cccteam/dbsession"
	"github.com/cccteam/dbsession/sweeper"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const (
	driverPostgres = "postgres"
	driverSpanner  = "spanner"
)

type config struct {
	driver          string
	databaseURL     string
	spannerDatabase string
	table           string
	maxLifetime     int
	schedule        string
	batchSize       int
	once            bool
	listen          string
}

func (c *config) validate() error {
	switch c.driver {
	case driverPostgres:
		if c.databaseURL == "" {
			return errors.New("--database-url is required for the postgres driver")
		}
	case driverSpanner:
		if c.spannerDatabase == "" {
			return errors.New("--spanner-database is required for the spanner driver")
		}
	default:
		return errors.Newf("unknown driver %q: must be %q or %q", c.driver, driverPostgres, driverSpanner)
	}

	if c.maxLifetime <= 0 {
		return errors.Newf("--max-lifetime must be positive, got %d", c.maxLifetime)
	}
	if c.batchSize < 0 {
		return errors.Newf("--batch-size must not be negative, got %d", c.batchSize)
	}

	return nil
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "sessionsweeper",
		Short: "Remove expired sessions from a session table",
		Long: `sessionsweeper deletes session rows whose last activity is older than
the configured lifetime. It runs on a cron schedule until interrupted, or a
single time with --once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.driver, "driver", driverPostgres, "database driver: postgres or spanner")
	f.StringVar(&cfg.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	f.StringVar(&cfg.spannerDatabase, "spanner-database", os.Getenv("SPANNER_DATABASE"), "spanner database (projects/P/instances/I/databases/D)")
	f.StringVar(&cfg.table, "table", "session", "session table name")
	f.IntVar(&cfg.maxLifetime, "max-lifetime", dbsession.DefaultMaxLifetime, "session lifetime in seconds")
	f.StringVar(&cfg.schedule, "schedule", sweeper.DefaultSchedule, "cron expression for sweeps")
	f.IntVar(&cfg.batchSize, "batch-size", 0, "rows deleted per statement on postgres (0 deletes in one statement)")
	f.BoolVar(&cfg.once, "once", false, "run a single sweep and exit")
	f.StringVar(&cfg.listen, "listen", ":9090", "address serving /metrics and /healthz (empty disables)")

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	opts := []dbsession.Option{
		dbsession.WithSessionTableName(cfg.table),
		dbsession.WithGCBatchSize(cfg.batchSize),
		dbsession.WithMetrics(dbsession.NewMetrics(dbsession.WithRegistry(reg))),
	}

	handler, closeDB, err := openHandler(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer closeDB()

	s := sweeper.New(handler, sweeper.WithSchedule(cfg.schedule), sweeper.WithMaxLifetime(cfg.maxLifetime))

	if cfg.once {
		if !s.Sweep(ctx) {
			return errors.New("sweep failed")
		}

		return nil
	}

	var srv *http.Server
	if cfg.listen != "" {
		srv = &http.Server{
			Addr:              cfg.listen,
			Handler:           newRouter(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.FromCtx(ctx).Errorf("metrics server: %v", err)
			}
		}()
	}

	if err := s.Start(ctx); err != nil {
		return errors.Wrap(err, "sweeper.Sweeper.Start()")
	}

	<-ctx.Done()
	logger.FromCtx(ctx).Infof("shutting down session sweeper")

	<-s.Stop().Done()

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "http.Server.Shutdown()")
		}
	}

	return nil
}

// openHandler connects to the configured database. The returned func releases the connection.
func openHandler(ctx context.Context, cfg *config, opts ...dbsession.Option) (*dbsession.Handler, func(), error) {
	switch cfg.driver {
	case driverSpanner:
		client, err := spanner.NewClient(ctx, cfg.spannerDatabase)
		if err != nil {
			return nil, nil, errors.Wrap(err, "spanner.NewClient()")
		}

		return dbsession.NewSpanner(client, opts...), client.Close, nil
	default:
		pool, err := pgxpool.New(ctx, cfg.databaseURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "pgxpool.New()")
		}

		return dbsession.NewPostgres(pool, opts...), pool.Close, nil
	}
}
