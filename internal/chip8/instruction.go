package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction wraps the retrogolib CHIP-8 instruction definition that
// matches an instruction word. It is used for naming instructions in
// errors and trace logs, execution does not depend on it.
type Instruction struct {
	ins *chip8.Instruction
}

// IsNil returns true if no instruction definition matched.
func (i Instruction) IsNil() bool {
	return i.ins == nil
}

// Name returns the instruction mnemonic or an empty string.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// lookupInstruction returns the instruction definition for the word by
// matching the opcodes registered for its first nibble.
func lookupInstruction(word uint16) Instruction {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return Instruction{ins: op.Instruction}
		}
	}
	return Instruction{}
}

// nibble helpers for decoding instruction words.

func registerX(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

func registerY(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}

func nibble(word uint16) uint8 {
	return uint8(word & 0x000F)
}

func byteValue(word uint16) uint8 {
	return uint8(word & 0x00FF)
}

func address(word uint16) uint16 {
	return word & 0x0FFF
}
