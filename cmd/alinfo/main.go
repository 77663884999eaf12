package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes the command line in args and returns the exit code. Everything the
// commands opened is closed before it returns, whether they failed or not.
func run(ctx context.Context, args []string) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	defer cleanup(ctx)

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("alinfo failed")
		return 1
	}
	return 0
}
