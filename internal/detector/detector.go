// Package detector handles system architecture detection.
package detector

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// inesMagic starts every iNES cartridge image.
var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Detector handles system architecture detection from file names, file
// content and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system of a program. An explicitly specified system
// in the options wins, otherwise the system is detected from the program
// data and the input filename extension.
func (d *Detector) Detect(opts options.Program, data []byte) arch.System {
	system, ok := arch.SystemFromString(opts.System)
	if !ok {
		if opts.System != "" {
			d.logger.Warn("Unknown system option ignored", log.String("system", opts.System))
		}
		system = d.detectFromContent(opts.Input, data)
		d.logger.Debug("Auto-detected system",
			log.Stringer("system", system),
			log.String("file", opts.Input))
	}
	return system
}

// detectFromContent recognizes cartridge images by their header before
// falling back to the file extension. CHIP-8 programs are headerless.
func (d *Detector) detectFromContent(filename string, data []byte) arch.System {
	if bytes.HasPrefix(data, inesMagic) {
		return arch.NES
	}
	return d.detectFromFile(filename)
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		// .ch8, .c8, .rom and raw dumps without extension
		return arch.CHIP8System
	}
}
