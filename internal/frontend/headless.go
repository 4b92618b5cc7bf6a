package frontend

import (
	"context"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Compile-time check to ensure Headless implements Frontend.
var _ Frontend = (*Headless)(nil)

// Headless is a frontend without input that keeps the last presented frame.
type Headless struct {
	frame  [chip8.DisplayWidth * chip8.DisplayHeight]bool
	frames int
}

// NewHeadless returns a new headless frontend.
func NewHeadless() *Headless {
	return &Headless{}
}

// Run calls the loop directly.
func (h *Headless) Run(ctx context.Context, loop func(ctx context.Context) error) error {
	return loop(ctx)
}

// Poll leaves the keypad untouched.
func (h *Headless) Poll(_ *chip8.Keypad) {}

// Present stores a copy of the frame.
func (h *Headless) Present(frame *chip8.FrameBuffer) error {
	h.frame = frame.Snapshot()
	h.frames++
	return nil
}

// Frames returns the number of presented frames.
func (h *Headless) Frames() int {
	return h.frames
}

// Pixel returns whether the pixel was lit in the last presented frame.
func (h *Headless) Pixel(x, y int) bool {
	return h.frame[y*chip8.DisplayWidth+x]
}

// Render writes the last presented frame as text, '#' for lit pixels.
func (h *Headless) Render(w io.Writer) error {
	return renderText(w, &h.frame, "#", ".", "\n")
}
