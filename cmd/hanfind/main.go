package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"hanfind/internal/cli"
)

func main() {
	var app cli.App
	kctx := kong.Parse(&app,
		kong.Name("hanfind"),
		kong.Description("Korean initial-consonant search over Bible book names and other lists"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := app.Setup(ctx, os.Stdin, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)

	err = kctx.Run(env)
	if errors.Is(err, cli.ErrNoMatch) {
		stop()
		os.Exit(1)
	}
	kctx.FatalIfErrorf(err)
}
