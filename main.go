// main.go
//
// Entry point. Cancels the command context on SIGINT/SIGTERM and hands off to
// the cobra commands in package cmd.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robalobadob/wurdle/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
