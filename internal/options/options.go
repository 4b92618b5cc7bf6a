// Package options contains the program options.
package options

import (
	"time"
)

// Frontend names.
const (
	FrontendHeadless = "headless"
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Defaults for the machine cadence and presentation.
const (
	DefaultSpeed = 180 // steps per second
	DefaultScale = 10  // window pixels per CHIP-8 pixel
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // program file to run
	System string // system override, auto-detected from the file if empty
}

// Flags contains behavior options.
type Flags struct {
	Frontend string // frontend to present frames and read input with
	Speed    int    // steps per second
	Steps    int    // step limit, 0 runs until stopped
	Seed     uint64 // random seed, 0 picks a random one
	Scale    int    // window scale factor
	Strict   bool   // treat programs that do not fit into memory as error
	Dump     bool   // print the last frame after the run
	Trace    bool   // log every executed instruction
	Debug    bool
	Quiet    bool
}

// Program options of the virtual machine.
type Program struct {
	Parameters
	Flags
}

// NewProgram returns program options with defaults set.
func NewProgram() Program {
	return Program{
		Flags: Flags{
			Frontend: FrontendTerminal,
			Speed:    DefaultSpeed,
			Scale:    DefaultScale,
		},
	}
}

// StepInterval returns the duration between two steps for the configured speed.
func (p Program) StepInterval() time.Duration {
	if p.Speed <= 0 {
		return time.Second / DefaultSpeed
	}
	return time.Second / time.Duration(p.Speed)
}
