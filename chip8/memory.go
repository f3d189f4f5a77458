package chip8

import "fmt"

// Memory map
// 0x000 - 0x1FF	Reserved for the interpreter
// 0x050 - 0x09F	Fontset, 16 glyphs of 5 bytes each
// 0x200 - 0xFFF	Program / data space
const (
	MemorySize   = 4096
	ProgramStart = 0x200
	fontBase     = 0x050
)

// maxProgramSize is what remains above the reserved region.
const maxProgramSize = MemorySize - ProgramStart

// fontset holds the 4x5 pixel glyphs for the hex digits 0-F.
// Example: "0"
// +------------------------+
// | **** | 11110000 | 0xF0 |
// | *  * | 10010000 | 0x90 |
// | *  * | 10010000 | 0x90 |
// | *  * | 10010000 | 0x90 |
// | **** | 11110000 | 0xF0 |
// +------------------------+
var fontset = [80]byte{
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

// Memory is the flat 4KiB address space, exclusively owned by one CPU.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory creates the memory with the fontset installed in the
// reserved region.
func NewMemory() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

func (m *Memory) loadFont() {
	copy(m.data[fontBase:], fontset[:])
}

// LoadProgram copies a program image to 0x200. Memory is left untouched
// when the image does not fit.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > maxProgramSize {
		return fmt.Errorf("%w: program is %d bytes, program space is %d", ErrCapacityExceeded, len(program), maxProgramSize)
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

// Read reads a byte.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("%w: read at 0x%04X", ErrOutOfBounds, address)
	}
	return m.data[address], nil
}

// Write writes a byte.
func (m *Memory) Write(address uint16, x byte) error {
	if int(address) >= MemorySize {
		return fmt.Errorf("%w: write at 0x%04X", ErrOutOfBounds, address)
	}
	m.data[address] = x
	return nil
}

// FontAddress returns the address of the 5-byte glyph for a hex digit.
func FontAddress(digit byte) uint16 {
	return fontBase + 5*uint16(digit)
}
