// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
)

var validFrontends = []string{options.FrontendHeadless, options.FrontendTerminal, options.FrontendWindow}

// ParseFlags parses the command line arguments, without the program name,
// and returns the program options.
func ParseFlags(arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet("retrochip8", flag.ContinueOnError)
	flags.Usage = func() {} // usage is printed by the caller through UsageError
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if len(args) == 0 {
		return opts, &UsageError{flags: flags, msg: "missing program file"}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Trace {
		opts.Debug = true
	}

	if opts.System != "" {
		system, ok := arch.SystemFromString(opts.System)
		if !ok {
			return fmt.Errorf("unsupported system: %s", opts.System)
		}
		opts.System = string(system)
	}

	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Frontend == "tty" {
		opts.Frontend = options.FrontendTerminal
	}
	if !slices.Contains(validFrontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(validFrontends, ", "))
	}

	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d: must be positive", opts.Speed)
	}
	if opts.Steps < 0 {
		return fmt.Errorf("invalid step limit %d: must not be negative", opts.Steps)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d: must be positive", opts.Scale)
	}
	if opts.Dump && opts.Frontend != options.FrontendHeadless {
		return fmt.Errorf("option -dump requires the %s frontend", options.FrontendHeadless)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.System, "s", "", "system of the program (chip8) - if not auto-detected from file extension")
	flags.StringVar(&opts.Frontend, "f", opts.Frontend, "frontend to use (headless/terminal/window)")
	flags.IntVar(&opts.Speed, "speed", opts.Speed, "machine steps per second, timers decrement once per step")
	flags.IntVar(&opts.Steps, "steps", 0, "stop after the given number of steps, 0 runs until quit")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 uses a random seed")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window pixels per CHIP-8 pixel")
	flags.BoolVar(&opts.Strict, "strict", false, "fail if the program does not fit into memory instead of truncating it")
	flags.BoolVar(&opts.Dump, "dump", false, "print the last frame when the run ends (headless frontend only)")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
