package chip8

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: unused by the interpreter
//	0x050-0x09F: built-in hexadecimal fontset (16 glyphs x 5 bytes)
//	0x200-0xFFF: program space (3584 bytes)
//
// The display buffer (64x32 pixels) and the call stack are kept outside
// of the 4KB address space.
const (
	// MemorySize is the size of the addressable CHIP-8 memory.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address the program image is loaded to and
	// where execution starts.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits in memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the first fontset glyph.
	FontStart = 0x050

	// FontGlyphSize is the number of bytes per fontset glyph.
	FontGlyphSize = 5
)

const (
	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	// FlagRegister is the index of the carry/borrow/collision flag register VF.
	FlagRegister = 0xF

	// StackSize is the number of return addresses the call stack can hold.
	StackSize = 16

	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16

	// opcodeSize is the size of CHIP-8 instructions in bytes.
	opcodeSize = 2
)

const (
	// DisplayWidth is the frame buffer width in pixels.
	DisplayWidth = 64

	// DisplayHeight is the frame buffer height in pixels.
	DisplayHeight = 32

	// spriteWidth is the fixed width of a sprite row in pixels.
	spriteWidth = 8
)

// fontset contains the glyphs for the hexadecimal digits 0-F.
var fontset = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
