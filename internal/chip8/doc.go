// Package chip8 implements the CHIP-8 execution engine.
//
// # Machine State
//
// A Machine owns 4KB of memory, 16 8-bit V registers, the 16-bit index
// register I, the program counter, a 16 entry call stack and the delay and
// sound timers:
//   - 0x050-0x09F: hexadecimal fontset, written by New
//   - ProgramStart-MaxAddress: program image, written by Load
//
// VF doubles as the carry, borrow and collision flag. ADD Vx, Vy, SUB,
// SUBN, SHR, SHL and DRW overwrite it as a side effect.
//
// # Collaborators
//
// The engine never renders or polls input. It draws into a Display and
// reads a KeySource, both injected into New. FrameBuffer and Keypad are
// the implementations used by the frontends and by tests.
//
// # Cycle
//
// Step executes a single instruction and ticks both timers once. The LD Vx, K
// instruction halts the machine until the keypad reports a new key press;
// while halted Step only checks the keypad but still ticks the timers, so
// timer decay follows the rate Step is called at.
//
// Faults are returned as *DecodeError, program loading problems as
// *LoadError. The engine does not recover from either.
package chip8
