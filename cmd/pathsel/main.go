// Command pathsel selects drawing objects touched or enclosed by a path.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pathsel/pathsel/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.New(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
