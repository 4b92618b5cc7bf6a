package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyWait(t *testing.T) {
	m, _, keys := newTestMachine(t,
		0xF30A, // LD V3, K
		0x1202, // JP 0x202
	)
	m.v[3] = 0xEE

	stepN(t, m, 1)
	assert.True(t, m.Halted())
	assert.Equal(t, uint16(ProgramStart), m.PC())

	for range 5 {
		stepN(t, m, 1)
		assert.True(t, m.Halted())
		assert.Equal(t, uint16(ProgramStart), m.PC())
		assert.Equal(t, uint8(0xEE), m.V(3))
	}

	keys.SetKey(5, true)
	keys.SetKey(2, true)
	stepN(t, m, 1)

	assert.False(t, m.Halted())
	assert.Equal(t, uint8(2), m.V(3))
	assert.Equal(t, uint16(ProgramStart+2), m.PC())

	// resuming consumed the step, the next one executes the jump
	stepN(t, m, 1)
	assert.Equal(t, uint16(ProgramStart+2), m.PC())
}

func TestKeyWaitIgnoresEarlierPress(t *testing.T) {
	m, _, keys := newTestMachine(t, 0xF10A)
	keys.SetKey(7, true)

	stepN(t, m, 1)
	assert.True(t, m.Halted())

	stepN(t, m, 1)
	assert.True(t, m.Halted())
	assert.Equal(t, uint8(0), m.V(1))

	keys.SetKey(7, false)
	keys.SetKey(7, true)
	stepN(t, m, 1)
	assert.False(t, m.Halted())
	assert.Equal(t, uint8(7), m.V(1))
}

func TestKeyWaitPressReleasedBeforeStep(t *testing.T) {
	m, _, keys := newTestMachine(t, 0xF40A)
	stepN(t, m, 1)

	keys.SetKey(9, true)
	keys.SetKey(9, false)
	stepN(t, m, 1)

	assert.True(t, m.Halted())
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.False(t, keys.ConsumePress())
}

func TestKeyWaitIntoFlagRegister(t *testing.T) {
	m, _, keys := newTestMachine(t, 0xFF0A)
	stepN(t, m, 1)

	keys.SetKey(0xC, true)
	stepN(t, m, 1)
	assert.Equal(t, uint8(0xC), m.V(FlagRegister))
}

func TestTimersTickOncePerStep(t *testing.T) {
	m, _, _ := newTestMachine(t, 0x1200) // JP 0x200
	m.delayTimer = 5
	m.soundTimer = 3

	for i := 1; i <= 10; i++ {
		stepN(t, m, 1)
		assert.Equal(t, uint8(max(5-i, 0)), m.DelayTimer())
		assert.Equal(t, uint8(max(3-i, 0)), m.SoundTimer())
	}
}

func TestTimersTickWhileHalted(t *testing.T) {
	m, _, _ := newTestMachine(t, 0xF00A)
	m.delayTimer = 4
	m.soundTimer = 2

	stepN(t, m, 1)
	assert.True(t, m.Halted())
	assert.Equal(t, uint8(3), m.DelayTimer())
	assert.Equal(t, uint8(1), m.SoundTimer())

	stepN(t, m, 5)
	assert.True(t, m.Halted())
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())
}

func TestStepReportsRunning(t *testing.T) {
	m, _, keys := newTestMachine(t, 0x1200)

	running, err := m.Step()
	assert.NoError(t, err)
	assert.True(t, running)

	keys.Quit()
	running, err = m.Step()
	assert.NoError(t, err)
	assert.False(t, running)
}

func TestTraceLogging(t *testing.T) {
	m, _, _ := newTestMachine(t, 0x3000, 0x0000, 0x1200)
	WithTrace(true)(m)

	stepN(t, m, 3)
	assert.Equal(t, uint16(ProgramStart+4), m.PC())
}
