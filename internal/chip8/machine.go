package chip8

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// Machine contains the CHIP-8 machine state and executes instructions
// against it. It is not safe for concurrent use.
type Machine struct {
	logger  *log.Logger
	display Display
	keys    KeySource
	rng     *rand.Rand
	trace   bool

	memory [MemorySize]byte
	v      [RegisterCount]uint8
	i      uint16
	pc     uint16

	stack [StackSize]uint16
	sp    int

	delayTimer uint8
	soundTimer uint8

	halted       bool
	waitRegister uint8 // target register of a pending key wait
}

// Option configures a Machine.
type Option func(*Machine)

// WithSeed seeds the random number source used by the RND instruction,
// making runs reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(enabled bool) Option {
	return func(m *Machine) {
		m.trace = enabled
	}
}

// New returns a machine with cleared memory and registers, the fontset
// loaded and the program counter at the program start.
func New(logger *log.Logger, display Display, keys KeySource, options ...Option) *Machine {
	m := &Machine{
		logger:  logger,
		display: display,
		keys:    keys,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		pc:      ProgramStart,
	}
	copy(m.memory[FontStart:], fontset[:])

	for _, option := range options {
		option(m)
	}
	return m
}

// Load copies the program image verbatim into memory at the program start.
// Bytes that do not fit into memory are dropped. It returns the number of
// bytes that were loaded.
func (m *Machine) Load(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, &LoadError{Err: fmt.Errorf("reading program: %w", err)}
	}

	n := copy(m.memory[ProgramStart:], data)
	if n < len(data) {
		m.logger.Warn("Program truncated to available memory",
			log.Int("size", len(data)),
			log.Int("loaded", n))
	}
	m.logger.Debug("Program loaded",
		log.Hex("address", ProgramStart),
		log.Int("size", n))
	return n, nil
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of the register 0x0-0xF.
func (m *Machine) V(register uint8) uint8 {
	return m.v[register&0xF]
}

// Registers returns a copy of all V registers.
func (m *Machine) Registers() [RegisterCount]uint8 {
	return m.v
}

// SP returns the number of return addresses on the stack.
func (m *Machine) SP() int {
	return m.sp
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// SoundTimer returns the sound timer value. A host plays a tone while it
// is not zero.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// Halted returns whether the machine is waiting for a key press.
func (m *Machine) Halted() bool {
	return m.halted
}

// ReadMemory returns the byte at the given address.
func (m *Machine) ReadMemory(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("reading address %04X: %w", address, ErrAddressOutOfRange)
	}
	return m.memory[address], nil
}

func (m *Machine) push(value uint16) error {
	if m.sp >= StackSize {
		return ErrStackOverflow
	}
	m.stack[m.sp] = value
	m.sp++
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}

// checkRange verifies that count bytes starting at the index register are
// inside memory.
func (m *Machine) checkRange(count int) error {
	if int(m.i)+count > MemorySize {
		return fmt.Errorf("accessing %d bytes at %04X: %w", count, m.i, ErrAddressOutOfRange)
	}
	return nil
}
