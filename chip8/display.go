package chip8

// The original CHIP-8 used a 64x32-pixel monochrome display.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome framebuffer. Only the CLS and DRW
// instructions mutate it; everything else reads snapshots.
type Display struct {
	grid [DisplayHeight][DisplayWidth]byte
}

// NewDisplay creates a cleared framebuffer.
func NewDisplay() *Display {
	return &Display{}
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.grid = [DisplayHeight][DisplayWidth]byte{}
}

// Draw XOR-composites a sprite, 8 pixels wide and len(sprite) pixels
// tall, at (x, y). Coordinates wrap on both axes. Returns 1 if any lit
// pixel was turned off, otherwise 0.
func (d *Display) Draw(x, y byte, sprite []byte) byte {
	var collision byte
	for row, bits := range sprite {
		py := (int(y) + row) % DisplayHeight
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			if d.grid[py][px] == 1 {
				collision = 1
			}
			d.grid[py][px] ^= 1
		}
	}
	return collision
}

// Snapshot returns a copy of the pixel grid for the presentation layer,
// row major, 1 for a lit pixel.
func (d *Display) Snapshot() [DisplayHeight][DisplayWidth]byte {
	return d.grid
}
