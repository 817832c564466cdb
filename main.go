// Package main implements the main entry point for a module address calculator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/addrcalc/internal/app"
	"github.com/retroenv/addrcalc/internal/cli"
	"github.com/retroenv/addrcalc/internal/config"
	"github.com/retroenv/addrcalc/internal/shell"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			logger.Error(err.Error())
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	state, err := config.CreateState(logger, opts)
	if err != nil {
		logger.Fatal(err.Error())
	}
	app.PrintInfo(logger, opts, state)

	sh := shell.NewTerminal(logger, state)
	if opts.Execute != "" {
		sh.RunScript(opts.Execute)
		return
	}

	if err := sh.Run(ctx); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Reading commands failed", log.Err(err))
	}
}
