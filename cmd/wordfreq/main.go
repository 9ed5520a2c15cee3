// Command wordfreq counts word frequencies in text files or stdin.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlonMell/wordfreq/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
