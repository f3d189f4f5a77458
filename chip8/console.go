package chip8

import "github.com/golang/glog"

// Console wires the interpreter parts together and is the only surface
// the host loop talks to. All parts are created together, exclusively
// owned, and discarded together; the host drives everything from one
// control thread.
type Console struct {
	CPU     *CPU
	Memory  *Memory
	Display *Display
	Keypad  *Keypad
}

// NewConsole creates a machine with the fontset installed and the
// program image loaded at the program start.
func NewConsole(program []byte) (*Console, error) {
	memory := NewMemory()
	if err := memory.LoadProgram(program); err != nil {
		return nil, err
	}
	display := NewDisplay()
	keypad := NewKeypad()
	cpu := NewCPU(memory, display, keypad)
	glog.V(1).Infof("loaded %d byte program", len(program))
	return &Console{cpu, memory, display, keypad}, nil
}

// Step executes one instruction. The host invokes it at the chosen
// instruction rate.
func (c *Console) Step() error {
	return c.CPU.Step()
}

// Tick decrements the timers. The host invokes it at a fixed 60Hz,
// decoupled from the instruction rate.
func (c *Console) Tick() {
	c.CPU.Tick()
}

// SetKey reports a key transition from the input collaborator.
func (c *Console) SetKey(key byte, pressed bool) {
	c.Keypad.SetKey(key, pressed)
}

// AwaitingKey reports whether the program is suspended on LD Vx,K.
func (c *Console) AwaitingKey() bool {
	return c.CPU.AwaitingKey()
}

// SoundActive reports whether the buzzer should sound.
func (c *Console) SoundActive() bool {
	return c.CPU.SoundActive()
}

// DisplaySnapshot returns a copy of the framebuffer for the display
// consumer.
func (c *Console) DisplaySnapshot() [DisplayHeight][DisplayWidth]byte {
	return c.Display.Snapshot()
}
