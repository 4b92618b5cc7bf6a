package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// Step runs one machine cycle. A running machine fetches, decodes and
// executes one instruction, a machine waiting for a key press only checks
// the keypad press signal. The timers tick once per call in both cases.
//
// It returns whether the host should keep running, as reported by the
// keypad. A DecodeError is returned for a faulting instruction, the machine
// state is left as it was when the fault occurred.
func (m *Machine) Step() (bool, error) {
	if m.halted {
		m.resumeOnKeyPress()
	} else if err := m.execute(); err != nil {
		return false, err
	}

	m.tickTimers()
	return m.keys.Running(), nil
}

// execute fetches the instruction word at the program counter and runs it.
func (m *Machine) execute() error {
	address := m.pc
	if int(address)+opcodeSize > MemorySize {
		return &DecodeError{Address: address, Reason: ErrAddressOutOfRange, fetchFailed: true}
	}

	word := uint16(m.memory[address])<<8 | uint16(m.memory[address+1])
	if m.trace {
		ins := lookupInstruction(word)
		name := ins.Name()
		if ins.IsSkip() {
			name += " (conditional skip)"
		}
		m.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.String("instruction", name))
	}

	handler := handlers[word>>12]
	if err := handler(m, word); err != nil {
		return &DecodeError{Address: address, Opcode: word, Reason: err}
	}
	return nil
}

// resumeOnKeyPress completes a pending key wait once a key was pressed.
// The lowest index wins when several keys are held. A press signal without
// any key still held is dropped and the wait continues.
func (m *Machine) resumeOnKeyPress() {
	if !m.keys.ConsumePress() {
		return
	}

	key, ok := lowestPressed(m.keys)
	if !ok {
		return
	}

	m.v[m.waitRegister] = key
	m.halted = false
	m.pc += opcodeSize
	m.logger.Debug("Key wait resumed",
		log.Hex("key", key),
		log.Hex("register", m.waitRegister))
}

// tickTimers decrements both timers towards zero.
func (m *Machine) tickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}
