// Package pipeline orchestrates loading and running a CHIP-8 program.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete execution workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// Limits controls the cadence and length of a run.
type Limits struct {
	Interval time.Duration // delay between two steps, 0 runs unthrottled
	MaxSteps int           // step limit, 0 runs until stopped
}

// Result summarizes a finished run.
type Result struct {
	Steps   int  // executed steps
	Frames  int  // presented frames
	Stopped bool // the keypad requested the machine to stop
}

// New creates a new execution pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Execute loads the program named in the options and runs it on the
// frontend until the program faults, the user quits, the step limit is
// reached or the context is canceled.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, fe frontend.Frontend,
	machineOptions ...chip8.Option) (*Result, error) {

	data, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	display := chip8.NewFrameBuffer()
	keys := chip8.NewKeypad()
	machine := chip8.New(p.logger, display, keys, machineOptions...)

	loaded, err := machine.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, loaded)

	limits := Limits{
		Interval: opts.StepInterval(),
		MaxSteps: opts.Steps,
	}

	var result *Result
	err = fe.Run(ctx, func(ctx context.Context) error {
		var runErr error
		result, runErr = p.Run(ctx, machine, display, keys, fe, limits)
		return runErr
	})
	return result, err
}

// Run steps the machine and presents changed frames until the program
// faults, the keypad requests to stop, the step limit is reached or the
// context is canceled. The returned result is valid also when an error is
// returned.
func (p *Pipeline) Run(ctx context.Context, machine *chip8.Machine, display *chip8.FrameBuffer,
	keys *chip8.Keypad, fe frontend.Frontend, limits Limits) (*Result, error) {

	result := &Result{}

	var tick <-chan time.Time
	if limits.Interval > 0 {
		ticker := time.NewTicker(limits.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for limits.MaxSteps == 0 || result.Steps < limits.MaxSteps {
		fe.Poll(keys)

		running, err := machine.Step()
		if err != nil {
			return result, fmt.Errorf("executing program: %w", err)
		}
		result.Steps++

		if display.Dirty() {
			if err := fe.Present(display); err != nil {
				return result, fmt.Errorf("presenting frame: %w", err)
			}
			display.ClearDirty()
			result.Frames++
		}

		if !running {
			p.logger.Debug("Machine stopped by user", log.Int("steps", result.Steps))
			result.Stopped = true
			return result, nil
		}

		if err := wait(ctx, tick); err != nil {
			return result, err
		}
	}

	p.logger.Debug("Step limit reached", log.Int("steps", result.Steps))
	return result, nil
}

// wait blocks until the next tick or returns the context error once the
// context is done. Without a ticker it only checks the context.
func wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running program: %w", ctx.Err())
		default:
			return nil
		}
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("running program: %w", ctx.Err())
	case <-tick:
		return nil
	}
}

// printInfo prints information about the program being run.
func (p *Pipeline) printInfo(opts options.Program, loaded int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", loaded),
		log.String("frontend", opts.Frontend),
		log.Int("speed", opts.Speed),
	)
}
