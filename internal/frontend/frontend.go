// Package frontend contains the hosts that present CHIP-8 frames and feed
// host input into the keypad.
package frontend

import (
	"context"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Frontend presents frames and reads host input. The driver loop calls
// Poll and Present from the goroutine that steps the machine.
type Frontend interface {
	// Run hands control to the frontend, which calls loop and returns
	// once loop returned. Frontends that need to own the main goroutine
	// run loop on a separate goroutine.
	Run(ctx context.Context, loop func(ctx context.Context) error) error
	// Poll updates the keypad from host input and requests the machine to
	// stop by calling Quit on it.
	Poll(keys *chip8.Keypad)
	// Present shows the frame.
	Present(frame *chip8.FrameBuffer) error
}

// keyMap maps host keys to the hexadecimal keypad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	y x c v        A 0 B F
var keyMap = map[rune]uint8{
	'x': 0x0, '1': 0x1, '2': 0x2, '3': 0x3,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'a': 0x7,
	's': 0x8, 'd': 0x9, 'y': 0xA, 'c': 0xB,
	'4': 0xC, 'r': 0xD, 'f': 0xE, 'v': 0xF,
}

// keyForRune returns the keypad key for a host character, ignoring case.
func keyForRune(r rune) (uint8, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	key, ok := keyMap[r]
	return key, ok
}

// renderText writes the pixel grid as text lines using the given strings
// for lit and unlit pixels.
func renderText(w io.Writer, pixels *[chip8.DisplayWidth * chip8.DisplayHeight]bool, on, off, newline string) error {
	var sb strings.Builder
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if pixels[y*chip8.DisplayWidth+x] {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		sb.WriteString(newline)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
