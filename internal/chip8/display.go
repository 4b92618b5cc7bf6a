package chip8

// Display is the frame sink the engine draws into.
type Display interface {
	// Clear turns all pixels off.
	Clear()
	// XOR toggles the pixel at the given coordinates, which are wrapped
	// around both axes, and returns true if a lit pixel was turned off.
	XOR(x, y int) bool
}

// Compile-time check to ensure FrameBuffer implements Display.
var _ Display = (*FrameBuffer)(nil)

// FrameBuffer is a 64x32 monochrome pixel grid stored row-major, with a
// dirty flag that is set whenever the content changes.
type FrameBuffer struct {
	pixels [DisplayWidth * DisplayHeight]bool
	dirty  bool
}

// NewFrameBuffer returns an empty frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Clear turns all pixels off and marks the frame dirty.
func (f *FrameBuffer) Clear() {
	f.pixels = [DisplayWidth * DisplayHeight]bool{}
	f.dirty = true
}

// XOR toggles a pixel and marks the frame dirty.
func (f *FrameBuffer) XOR(x, y int) bool {
	i := index(x, y)
	before := f.pixels[i]
	f.pixels[i] = !before
	f.dirty = true
	return before
}

// Pixel returns whether the pixel at the given wrapped coordinates is lit.
func (f *FrameBuffer) Pixel(x, y int) bool {
	return f.pixels[index(x, y)]
}

// Dirty returns whether the frame changed since the dirty flag was last cleared.
func (f *FrameBuffer) Dirty() bool {
	return f.dirty
}

// ClearDirty resets the dirty flag after a frame was presented.
func (f *FrameBuffer) ClearDirty() {
	f.dirty = false
}

// Snapshot returns a copy of the pixel grid, for renderers that do not
// run on the goroutine that steps the machine.
func (f *FrameBuffer) Snapshot() [DisplayWidth * DisplayHeight]bool {
	return f.pixels
}

func index(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}
