package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	keyEscape = 0x1B
	keyCtrlC  = 0x03

	// terminals only report key presses, a key counts as held for this long
	// after its last press or auto repeat.
	keyHoldDuration = 150 * time.Millisecond
	readPollDelay   = 5 * time.Millisecond
	inputBufferSize = 64
)

// Compile-time check to ensure Terminal implements Frontend.
var _ Frontend = (*Terminal)(nil)

// Terminal renders the display with ANSI escape codes and reads raw key
// presses from stdin.
type Terminal struct {
	logger *log.Logger
	in     *os.File
	out    io.Writer

	fd          int
	oldState    *term.State
	nonblockSet bool

	input   chan byte
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	now     func() time.Time
	release [chip8.KeyCount]time.Time
}

// NewTerminal returns a terminal frontend using stdin and stdout.
func NewTerminal(logger *log.Logger) *Terminal {
	return &Terminal{
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
		input:  make(chan byte, inputBufferSize),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		now:    time.Now,
	}
}

// Run switches the terminal into raw mode, starts reading input and calls
// the loop. The terminal state is restored before returning.
func (t *Terminal) Run(ctx context.Context, loop func(ctx context.Context) error) error {
	t.fd = int(t.in.Fd())
	if !term.IsTerminal(t.fd) {
		return errors.New("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.oldState = oldState

	if err := unix.SetNonblock(t.fd, true); err != nil {
		t.restore()
		return fmt.Errorf("setting nonblocking stdin: %w", err)
	}
	t.nonblockSet = true

	go t.readInput()
	defer t.stop()

	// clear screen and hide cursor
	if _, err := io.WriteString(t.out, "\x1b[2J\x1b[?25l"); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(t.out, "\x1b[?25h\r\n")
	}()

	return loop(ctx)
}

func (t *Terminal) readInput() {
	defer close(t.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		n, err := unix.Read(t.fd, buf)
		if n > 0 {
			select {
			case t.input <- buf[0]:
			default:
				// drop input while the machine is not polling
			}
		}
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			time.Sleep(readPollDelay)
			continue
		}
		if err != nil {
			t.logger.Error("Reading terminal input failed", log.Err(err))
			return
		}
		if n == 0 {
			time.Sleep(readPollDelay)
		}
	}
}

func (t *Terminal) stop() {
	t.stopped.Do(func() {
		close(t.stopCh)
	})
	<-t.done
	t.restore()
}

func (t *Terminal) restore() {
	if t.nonblockSet {
		_ = unix.SetNonblock(t.fd, false)
		t.nonblockSet = false
	}
	if t.oldState != nil {
		if err := term.Restore(t.fd, t.oldState); err != nil {
			t.logger.Error("Restoring terminal state failed", log.Err(err))
		}
		t.oldState = nil
	}
}

// Poll applies all pending key presses to the keypad and releases keys
// whose hold time expired.
func (t *Terminal) Poll(keys *chip8.Keypad) {
	now := t.now()
	for {
		select {
		case b := <-t.input:
			t.handleByte(b, now, keys)
		default:
			t.releaseExpired(now, keys)
			return
		}
	}
}

func (t *Terminal) handleByte(b byte, now time.Time, keys *chip8.Keypad) {
	switch b {
	case keyEscape, keyCtrlC:
		keys.Quit()
		return
	}

	key, ok := keyForRune(rune(b))
	if !ok {
		return
	}
	t.release[key] = now.Add(keyHoldDuration)
	keys.SetKey(key, true)
}

func (t *Terminal) releaseExpired(now time.Time, keys *chip8.Keypad) {
	for key, deadline := range t.release {
		if deadline.IsZero() || now.Before(deadline) {
			continue
		}
		t.release[key] = time.Time{}
		keys.SetKey(uint8(key), false)
	}
}

// Present draws the frame using half block characters, two pixel rows per
// terminal line.
func (t *Terminal) Present(frame *chip8.FrameBuffer) error {
	var sb strings.Builder
	sb.WriteString("\x1b[H")

	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			sb.WriteString(halfBlock(frame.Pixel(x, y), frame.Pixel(x, y+1)))
		}
		sb.WriteString("\r\n")
	}

	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		return fmt.Errorf("writing frame to terminal: %w", err)
	}
	return nil
}

func halfBlock(upper, lower bool) string {
	switch {
	case upper && lower:
		return "█"
	case upper:
		return "▀"
	case lower:
		return "▄"
	default:
		return " "
	}
}
