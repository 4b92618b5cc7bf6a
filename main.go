// Package main implements the entry point of the CHIP-8 virtual machine.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, opts, version, commit, date)
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	config.PrintBanner(logger, opts, version, commit, date)

	fe, err := config.CreateFrontend(logger, opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	result, err := pipeline.New(logger).Execute(ctx, opts, fe, config.MachineOptions(opts)...)
	if err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Execution cancelled")
			return
		}
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}

	logger.Debug("Execution finished",
		log.Int("steps", result.Steps),
		log.Int("frames", result.Frames))

	if headless, ok := fe.(*frontend.Headless); ok && opts.Dump {
		if err := headless.Render(os.Stdout); err != nil {
			logger.Error("Writing frame failed", log.Err(err))
			os.Exit(1)
		}
	}
}
