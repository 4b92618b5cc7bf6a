// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading program files from disk.
type Loader struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new program loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Load reads the program file named in the options and verifies that it
// is a CHIP-8 program. In strict mode a program that does not fit into
// the program space is rejected, otherwise it is returned unchanged. All errors are of type *chip8.LoadError.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, &chip8.LoadError{Path: opts.Input, Err: fmt.Errorf("reading file: %w", err)}
	}

	system := l.detector.Detect(opts, data)
	if system != arch.CHIP8System {
		return nil, &chip8.LoadError{Path: opts.Input, Err: fmt.Errorf("unsupported system: %s", system)}
	}

	// without strict mode the machine truncates the program when loading it
	if opts.Strict && len(data) > chip8.MaxProgramSize {
		return nil, &chip8.LoadError{
			Path: opts.Input,
			Err:  fmt.Errorf("%w: %d bytes, %d available", chip8.ErrProgramTooLarge, len(data), chip8.MaxProgramSize),
		}
	}

	l.logger.Debug("Program file read",
		log.String("file", opts.Input),
		log.Int("size", len(data)))
	return data, nil
}
