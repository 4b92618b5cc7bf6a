package chip8

// KeySource is the keypad the engine reads from.
type KeySource interface {
	// Pressed returns whether the key 0x0-0xF is currently held.
	Pressed(key uint8) bool
	// ConsumePress returns whether a key became pressed since the last
	// call and clears that signal.
	ConsumePress() bool
	// Running returns false once the host requested to stop.
	Running() bool
}

// Compile-time check to ensure Keypad implements KeySource.
var _ KeySource = (*Keypad)(nil)

// Keypad holds the state of the 16 hexadecimal keys. Frontends set it from
// host input, the engine only reads it.
type Keypad struct {
	keys    [KeyCount]bool
	pressed bool
	quit    bool
}

// NewKeypad returns a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// SetKey sets the state of a key. A transition from released to pressed
// raises the press signal. Keys outside 0x0-0xF are ignored.
func (k *Keypad) SetKey(key uint8, down bool) {
	if int(key) >= KeyCount {
		return
	}
	if down && !k.keys[key] {
		k.pressed = true
	}
	k.keys[key] = down
}

// Pressed returns whether the key is held.
func (k *Keypad) Pressed(key uint8) bool {
	if int(key) >= KeyCount {
		return false
	}
	return k.keys[key]
}

// ConsumePress reads and clears the press signal.
func (k *Keypad) ConsumePress() bool {
	pressed := k.pressed
	k.pressed = false
	return pressed
}

// Quit marks the keypad as no longer running.
func (k *Keypad) Quit() {
	k.quit = true
}

// Running returns false after Quit was called.
func (k *Keypad) Running() bool {
	return !k.quit
}

// lowestPressed returns the lowest index of all held keys.
func lowestPressed(keys KeySource) (uint8, bool) {
	for key := range uint8(KeyCount) {
		if keys.Pressed(key) {
			return key, true
		}
	}
	return 0, false
}
