//go:build !headless

package frontend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const windowTitle = "retrochip8"

var (
	pixelOn  = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	pixelOff = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// ebitenKeys maps the keypad keys to window keys, using the same layout as
// keyMap.
var ebitenKeys = [chip8.KeyCount]ebiten.Key{
	ebiten.KeyX, ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyY, ebiten.KeyC,
	ebiten.Key4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// Compile-time check to ensure Window implements Frontend.
var _ Frontend = (*Window)(nil)

// Window renders the display into a scaled desktop window. The window
// event loop owns the calling goroutine while the machine runs on a
// separate one, all shared state is guarded by mu.
type Window struct {
	logger *log.Logger
	scale  int

	mu     sync.Mutex
	pixels [chip8.DisplayWidth * chip8.DisplayHeight * 4]byte
	keys   [chip8.KeyCount]bool
	closed bool

	loopDone chan struct{}
}

// NewWindow returns a window frontend that scales every pixel by scale.
func NewWindow(logger *log.Logger, scale int) *Window {
	w := &Window{
		logger: logger,
		scale:  scale,
	}
	w.fill(nil)
	return w
}

// Run opens the window and runs the loop on a separate goroutine. Closing
// the window cancels the loop context, the window closes once the loop
// returned.
func (w *Window) Run(ctx context.Context, loop func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.loopDone = make(chan struct{})
	var loopErr error
	go func() {
		defer close(w.loopDone)
		loopErr = loop(ctx)
	}()

	ebiten.SetWindowSize(chip8.DisplayWidth*w.scale, chip8.DisplayHeight*w.scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	err := ebiten.RunGame(w)
	cancel()
	<-w.loopDone

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return loopErr
}

// Update is called by ebiten once per tick and samples the keyboard.
func (w *Window) Update() error {
	select {
	case <-w.loopDone:
		return ebiten.Termination
	default:
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for key, ebitenKey := range ebitenKeys {
		w.keys[key] = ebiten.IsKeyPressed(ebitenKey)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		if !w.closed {
			w.logger.Debug("Window closed by user")
		}
		w.closed = true
	}
	return nil
}

// Draw is called by ebiten to render the last presented frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	screen.WritePixels(w.pixels[:])
}

// Layout returns the logical screen size, ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}

// Poll copies the sampled key states into the keypad.
func (w *Window) Poll(keys *chip8.Keypad) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key, down := range w.keys {
		keys.SetKey(uint8(key), down)
	}
	if w.closed {
		keys.Quit()
	}
}

// Present converts the frame to RGBA pixels for the next Draw call.
func (w *Window) Present(frame *chip8.FrameBuffer) error {
	snapshot := frame.Snapshot()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.fill(&snapshot)
	return nil
}

// fill converts the pixels to RGBA, a nil frame results in a blank screen.
func (w *Window) fill(frame *[chip8.DisplayWidth * chip8.DisplayHeight]bool) {
	for i := range chip8.DisplayWidth * chip8.DisplayHeight {
		color := pixelOff
		if frame != nil && frame[i] {
			color = pixelOn
		}
		copy(w.pixels[i*4:], color[:])
	}
}
