// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateFrontend creates the frontend selected in the options.
func CreateFrontend(logger *log.Logger, opts options.Program) (frontend.Frontend, error) {
	switch opts.Frontend {
	case options.FrontendHeadless:
		return frontend.NewHeadless(), nil
	case options.FrontendTerminal:
		return frontend.NewTerminal(logger), nil
	case options.FrontendWindow:
		return frontend.NewWindow(logger, opts.Scale), nil
	default:
		return nil, fmt.Errorf("unsupported frontend: %s", opts.Frontend)
	}
}

// MachineOptions returns the machine options matching the program options.
func MachineOptions(opts options.Program) []chip8.Option {
	machineOptions := []chip8.Option{
		chip8.WithTrace(opts.Trace),
	}
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, chip8.WithSeed(opts.Seed))
	}
	return machineOptions
}

// PrintBanner logs the program name and version unless quiet mode is set.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
