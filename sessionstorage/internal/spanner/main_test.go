package spanner

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	initiator "github.com/cccteam/db-initiator"
	"github.com/go-playground/errors/v5"
)

var emulator *initiator.SpannerContainer

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	ctx := context.Background()

	c, err := initiator.NewSpannerContainer(ctx, "latest")
	if err != nil {
		fmt.Println(err)

		return 2
	}
	emulator = c

	defer func() {
		if err := c.Terminate(ctx); err != nil {
			fmt.Println(err)
		}
		if err := c.Close(); err != nil {
			fmt.Println(err)
		}
	}()

	return m.Run()
}

// prepareDatabase creates a database named after the test and applies the
// migrations found at each sourceURL in order.
func prepareDatabase(ctx context.Context, t *testing.T, sourceURL ...string) (*initiator.SpannerDB, error) {
	db, err := emulator.CreateDatabase(ctx, t.Name())
	if err != nil {
		return nil, errors.Wrapf(err, "initiator.SpannerContainer.CreateDatabase()")
	}
	t.Cleanup(func() {
		if err := db.DropDatabase(context.Background()); err != nil {
			t.Logf("db.DropDatabase(): %v", err)
		}
		if err := db.Close(); err != nil {
			t.Logf("db.Close(): %v", err)
		}
	})

	if err := db.MigrateUp(sourceURL...); err != nil {
		return nil, errors.Wrapf(err, "initiator.SpannerDB.MigrateUp()")
	}

	return db, nil
}

// runAssertions runs each query, which must return exactly one row holding a
// single true boolean column.
func runAssertions(ctx context.Context, t *testing.T, db *spanner.Client, assertions []string) {
	t.Helper()

	for i, query := range assertions {
		var (
			isTrue bool
			rows   int
		)

		err := db.Single().Query(ctx, spanner.NewStatement(query)).Do(func(row *spanner.Row) error {
			rows++

			return row.Column(0, &isTrue)
		})
		switch {
		case err != nil:
			t.Errorf("assertion %d (%s): %v", i+1, query, err)
		case rows != 1:
			t.Errorf("assertion %d (%s) returned %d rows, expected 1", i+1, query, rows)
		case !isTrue:
			t.Errorf("assertion %d (%s) failed", i+1, query)
		}
	}
}
