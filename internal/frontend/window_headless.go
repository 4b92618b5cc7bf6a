//go:build headless

package frontend

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ErrWindowUnavailable is returned when running the window frontend in a
// build without window support.
var ErrWindowUnavailable = errors.New("window frontend not available in headless build")

// Compile-time check to ensure Window implements Frontend.
var _ Frontend = (*Window)(nil)

// Window is the window frontend placeholder of headless builds.
type Window struct {
	logger *log.Logger
	scale  int
}

// NewWindow returns a window frontend that can not be run.
func NewWindow(logger *log.Logger, scale int) *Window {
	return &Window{
		logger: logger,
		scale:  scale,
	}
}

// Run returns ErrWindowUnavailable without calling the loop.
func (w *Window) Run(_ context.Context, _ func(ctx context.Context) error) error {
	return ErrWindowUnavailable
}

// Poll leaves the keypad untouched.
func (w *Window) Poll(_ *chip8.Keypad) {}

// Present discards the frame.
func (w *Window) Present(_ *chip8.FrameBuffer) error {
	return nil
}
