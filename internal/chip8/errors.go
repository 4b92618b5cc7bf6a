package chip8

import (
	"errors"
	"fmt"
)

// Fault reasons reported by DecodeError.
var (
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrAddressOutOfRange = errors.New("address out of range")
)

// ErrProgramTooLarge is returned by strict loading when the program image
// does not fit into the program space.
var ErrProgramTooLarge = errors.New("program too large")

// LoadError is returned when a program image can not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading program: %v", e.Err)
	}
	return fmt.Sprintf("loading program %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DecodeError is returned by Step when the executed instruction word is not
// a defined instruction or violates a memory or stack bound.
type DecodeError struct {
	Address uint16 // address the instruction was fetched from
	Opcode  uint16 // instruction word, 0 if the fetch itself failed
	Reason  error

	fetchFailed bool
}

func (e *DecodeError) Error() string {
	if e.fetchFailed {
		return fmt.Sprintf("fetching instruction at address %04X: %v", e.Address, e.Reason)
	}
	name := lookupInstruction(e.Opcode).Name()
	if name == "" {
		return fmt.Sprintf("opcode %04X at address %04X: %v", e.Opcode, e.Address, e.Reason)
	}
	return fmt.Sprintf("opcode %04X (%s) at address %04X: %v", e.Opcode, name, e.Address, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}
