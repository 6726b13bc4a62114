// lvroot locates the real roots of a scalar function over a bounded domain.
//
// The domain is scanned on a uniform grid for candidate intervals, and each
// candidate is refined with bisection, secant or Newton-Raphson.
//
// Usage:
//
//	# List candidate intervals
//	lvroot scan --f "x^3 - 4*x^2 + 3" --start -10 --end 10 --step 0.1
//
//	# Refine with Newton-Raphson, store the run and dump metrics
//	lvroot solve -c run.yaml --method newton --db runs.db --metrics-file lvroot.prom
//
//	# Re-solve whenever run.yaml changes
//	lvroot solve -c run.yaml --watch
//
//	# Browse stored runs
//	lvroot history --db runs.db
//	lvroot history --db runs.db --run <id>
//
// Settings come from defaults, then the config file, then LVROOT_* variables,
// then flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
