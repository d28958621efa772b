// Command sessionsweeper periodically removes expired sessions from a
// Postgres or Spanner session table and exposes Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
