package frontend

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		input rune
		key   uint8
		ok    bool
	}{
		{input: 'x', key: 0x0, ok: true},
		{input: '1', key: 0x1, ok: true},
		{input: 'Q', key: 0x4, ok: true},
		{input: 'y', key: 0xA, ok: true},
		{input: '4', key: 0xC, ok: true},
		{input: 'v', key: 0xF, ok: true},
		{input: 'z', ok: false},
		{input: '5', ok: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			key, ok := keyForRune(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestKeyMapCoversKeypad(t *testing.T) {
	var seen [chip8.KeyCount]bool
	for _, key := range keyMap {
		seen[key] = true
	}
	for key, ok := range seen {
		assert.True(t, ok, "key %X not mapped", key)
	}
}

func TestHeadless(t *testing.T) {
	h := NewHeadless()
	frame := chip8.NewFrameBuffer()
	frame.XOR(0, 0)
	frame.XOR(63, 31)

	called := false
	err := h.Run(context.Background(), func(_ context.Context) error {
		called = true
		return h.Present(frame)
	})
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 1, h.Frames())
	assert.True(t, h.Pixel(0, 0))
	assert.True(t, h.Pixel(63, 31))
	assert.False(t, h.Pixel(1, 0))

	// later changes to the frame buffer are not visible
	frame.XOR(1, 0)
	assert.False(t, h.Pixel(1, 0))

	var buf bytes.Buffer
	assert.NoError(t, h.Render(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, chip8.DisplayHeight)
	assert.Equal(t, "#"+strings.Repeat(".", 63), lines[0])
	assert.Equal(t, strings.Repeat(".", 63)+"#", lines[31])
}

func TestHeadlessPropagatesLoopError(t *testing.T) {
	h := NewHeadless()
	errLoop := errors.New("loop failed")
	err := h.Run(context.Background(), func(_ context.Context) error {
		return errLoop
	})
	assert.True(t, errors.Is(err, errLoop))
}

func newTestTerminal(t *testing.T) (*Terminal, *bytes.Buffer, *time.Time) {
	t.Helper()
	var out bytes.Buffer
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	term := NewTerminal(log.NewTestLogger(t))
	term.out = &out
	term.now = func() time.Time { return now }
	return term, &out, &now
}

func TestTerminalPollHoldsKeys(t *testing.T) {
	term, _, now := newTestTerminal(t)
	keys := chip8.NewKeypad()

	term.input <- 'w'
	term.Poll(keys)
	assert.True(t, keys.Pressed(0x5))
	assert.True(t, keys.ConsumePress())

	*now = now.Add(keyHoldDuration / 2)
	term.Poll(keys)
	assert.True(t, keys.Pressed(0x5))

	*now = now.Add(keyHoldDuration)
	term.Poll(keys)
	assert.False(t, keys.Pressed(0x5))
	assert.True(t, keys.Running())
}

func TestTerminalAutoRepeatExtendsHold(t *testing.T) {
	term, _, now := newTestTerminal(t)
	keys := chip8.NewKeypad()

	term.input <- 'f'
	term.Poll(keys)

	*now = now.Add(keyHoldDuration - time.Millisecond)
	term.input <- 'f'
	term.Poll(keys)

	*now = now.Add(keyHoldDuration / 2)
	term.Poll(keys)
	assert.True(t, keys.Pressed(0xE))
}

func TestTerminalPollQuit(t *testing.T) {
	for _, b := range []byte{keyEscape, keyCtrlC} {
		term, _, _ := newTestTerminal(t)
		keys := chip8.NewKeypad()

		term.input <- b
		term.Poll(keys)
		assert.False(t, keys.Running())
	}
}

func TestTerminalPollIgnoresUnmappedInput(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	keys := chip8.NewKeypad()

	term.input <- 'z'
	term.input <- '\r'
	term.Poll(keys)
	assert.False(t, keys.ConsumePress())
	assert.True(t, keys.Running())
}

func TestTerminalPresent(t *testing.T) {
	term, out, _ := newTestTerminal(t)
	frame := chip8.NewFrameBuffer()
	frame.XOR(0, 0)
	frame.XOR(1, 1)
	frame.XOR(2, 0)
	frame.XOR(2, 1)

	assert.NoError(t, term.Present(frame))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\x1b[H"))
	lines := strings.Split(strings.TrimPrefix(s, "\x1b[H"), "\r\n")
	assert.Len(t, lines, chip8.DisplayHeight/2+1)
	assert.True(t, strings.HasPrefix(lines[0], "▀▄█ "))
}

func TestHalfBlock(t *testing.T) {
	assert.Equal(t, " ", halfBlock(false, false))
	assert.Equal(t, "▀", halfBlock(true, false))
	assert.Equal(t, "▄", halfBlock(false, true))
	assert.Equal(t, "█", halfBlock(true, true))
}
