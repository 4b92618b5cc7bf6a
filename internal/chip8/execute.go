package chip8

// handler executes an instruction word. Every handler sets the program
// counter itself, either by advancing to the next instruction or by
// jumping. A returned error is a fault reason for DecodeError.
type handler func(m *Machine, word uint16) error

// handlers maps the first nibble of an instruction word to its handler.
var handlers = [16]handler{
	0x0: (*Machine).opSystem,
	0x1: (*Machine).opJump,
	0x2: (*Machine).opCall,
	0x3: (*Machine).opSkipEqualByte,
	0x4: (*Machine).opSkipNotEqualByte,
	0x5: (*Machine).opSkipEqualRegister,
	0x6: (*Machine).opLoadByte,
	0x7: (*Machine).opAddByte,
	0x8: (*Machine).opArithmetic,
	0x9: (*Machine).opSkipNotEqualRegister,
	0xA: (*Machine).opLoadIndex,
	0xB: (*Machine).opJumpOffset,
	0xC: (*Machine).opRandom,
	0xD: (*Machine).opDraw,
	0xE: (*Machine).opKeySkip,
	0xF: (*Machine).opMisc,
}

// next advances the program counter to the following instruction.
func (m *Machine) next() {
	m.pc += opcodeSize
}

// skipIf advances the program counter past the following instruction if
// the condition is true, otherwise to the following instruction.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += 2 * opcodeSize
		return
	}
	m.pc += opcodeSize
}

// 00E0 CLS, 00EE RET.
func (m *Machine) opSystem(word uint16) error {
	switch word {
	case 0x00E0:
		m.display.Clear()
		m.next()
		return nil

	case 0x00EE:
		ret, err := m.pop()
		if err != nil {
			return err
		}
		m.pc = ret + opcodeSize
		return nil

	default:
		return ErrUnknownOpcode
	}
}

// 1nnn JP addr.
func (m *Machine) opJump(word uint16) error {
	m.pc = address(word)
	return nil
}

// 2nnn CALL addr. The address of the call itself is pushed, RET advances
// past it.
func (m *Machine) opCall(word uint16) error {
	if err := m.push(m.pc); err != nil {
		return err
	}
	m.pc = address(word)
	return nil
}

// 3xnn SE Vx, byte.
func (m *Machine) opSkipEqualByte(word uint16) error {
	m.skipIf(m.v[registerX(word)] == byteValue(word))
	return nil
}

// 4xnn SNE Vx, byte.
func (m *Machine) opSkipNotEqualByte(word uint16) error {
	m.skipIf(m.v[registerX(word)] != byteValue(word))
	return nil
}

// 5xy0 SE Vx, Vy.
func (m *Machine) opSkipEqualRegister(word uint16) error {
	if nibble(word) != 0 {
		return ErrUnknownOpcode
	}
	m.skipIf(m.v[registerX(word)] == m.v[registerY(word)])
	return nil
}

// 6xnn LD Vx, byte.
func (m *Machine) opLoadByte(word uint16) error {
	m.v[registerX(word)] = byteValue(word)
	m.next()
	return nil
}

// 7xnn ADD Vx, byte. Wraps without touching VF.
func (m *Machine) opAddByte(word uint16) error {
	m.v[registerX(word)] += byteValue(word)
	m.next()
	return nil
}

// 8xyN register arithmetic. Instructions that set VF compute the flag from
// the operands before writing it, then write the result, so with x == F
// the result is what remains in VF.
func (m *Machine) opArithmetic(word uint16) error {
	x, y := registerX(word), registerY(word)
	vx, vy := m.v[x], m.v[y]

	switch nibble(word) {
	case 0x0: // LD Vx, Vy
		m.v[x] = vy
	case 0x1: // OR Vx, Vy
		m.v[x] = vx | vy
	case 0x2: // AND Vx, Vy
		m.v[x] = vx & vy
	case 0x3: // XOR Vx, Vy
		m.v[x] = vx ^ vy
	case 0x4: // ADD Vx, Vy
		m.v[FlagRegister] = boolToFlag(uint16(vx)+uint16(vy) > 0xFF)
		m.v[x] = vx + vy
	case 0x5: // SUB Vx, Vy
		m.v[FlagRegister] = boolToFlag(vx > vy)
		m.v[x] = vx - vy
	case 0x6: // SHR Vx
		m.v[FlagRegister] = vx & 1
		m.v[x] = vx >> 1
	case 0x7: // SUBN Vx, Vy
		m.v[FlagRegister] = boolToFlag(vy > vx)
		m.v[x] = vy - vx
	case 0xE: // SHL Vx
		m.v[FlagRegister] = vx >> 7
		m.v[x] = vx << 1
	default:
		return ErrUnknownOpcode
	}

	m.next()
	return nil
}

// 9xy0 SNE Vx, Vy.
func (m *Machine) opSkipNotEqualRegister(word uint16) error {
	if nibble(word) != 0 {
		return ErrUnknownOpcode
	}
	m.skipIf(m.v[registerX(word)] != m.v[registerY(word)])
	return nil
}

// Annn LD I, addr.
func (m *Machine) opLoadIndex(word uint16) error {
	m.i = address(word)
	m.next()
	return nil
}

// Bnnn JP V0, addr. A target outside of memory faults on the next fetch.
func (m *Machine) opJumpOffset(word uint16) error {
	m.pc = address(word) + uint16(m.v[0])
	return nil
}

// Cxnn RND Vx, byte.
func (m *Machine) opRandom(word uint16) error {
	m.v[registerX(word)] = uint8(m.rng.Uint32()) & byteValue(word)
	m.next()
	return nil
}

// Dxyn DRW Vx, Vy, n. Sprite rows are read from memory at I and XORed onto
// the display, wrapping every pixel around the screen edges. VF is set if
// any lit pixel was turned off.
func (m *Machine) opDraw(word uint16) error {
	rows := int(nibble(word))
	if err := m.checkRange(rows); err != nil {
		return err
	}

	originX := int(m.v[registerX(word)])
	originY := int(m.v[registerY(word)])

	var collision bool
	for row := range rows {
		data := m.memory[int(m.i)+row]
		for col := range spriteWidth {
			if data&(0x80>>col) == 0 {
				continue
			}
			if m.display.XOR(originX+col, originY+row) {
				collision = true
			}
		}
	}

	m.v[FlagRegister] = boolToFlag(collision)
	m.next()
	return nil
}

// Ex9E SKP Vx, ExA1 SKNP Vx.
func (m *Machine) opKeySkip(word uint16) error {
	key := m.v[registerX(word)] & 0xF

	switch byteValue(word) {
	case 0x9E:
		m.skipIf(m.keys.Pressed(key))
	case 0xA1:
		m.skipIf(!m.keys.Pressed(key))
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// Fxnn timer, key wait, index and memory transfer instructions.
func (m *Machine) opMisc(word uint16) error {
	x := registerX(word)

	switch byteValue(word) {
	case 0x07: // LD Vx, DT
		m.v[x] = m.delayTimer

	case 0x0A: // LD Vx, K
		m.keys.ConsumePress()
		m.halted = true
		m.waitRegister = x
		return nil // the program counter advances when the wait completes

	case 0x15: // LD DT, Vx
		m.delayTimer = m.v[x]

	case 0x18: // LD ST, Vx
		m.soundTimer = m.v[x]

	case 0x1E: // ADD I, Vx
		m.i += uint16(m.v[x])

	case 0x29: // LD F, Vx
		m.i = FontStart + uint16(m.v[x])*FontGlyphSize

	case 0x33: // LD B, Vx
		if err := m.checkRange(3); err != nil {
			return err
		}
		value := m.v[x]
		m.memory[m.i] = value / 100
		m.memory[m.i+1] = (value / 10) % 10
		m.memory[m.i+2] = value % 10

	case 0x55: // LD [I], Vx
		count := int(x) + 1
		if err := m.checkRange(count); err != nil {
			return err
		}
		copy(m.memory[m.i:], m.v[:count])
		m.i += uint16(count)

	case 0x65: // LD Vx, [I]
		count := int(x) + 1
		if err := m.checkRange(count); err != nil {
			return err
		}
		copy(m.v[:count], m.memory[m.i:])
		m.i += uint16(count)

	default:
		return ErrUnknownOpcode
	}

	m.next()
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
