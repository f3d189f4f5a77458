package chip8

// Keypad models the hex keypad 0x0-0xF. The input collaborator reports
// key transitions through SetKey between steps; the SKP/SKNP and
// LD Vx,K instructions read it.
type Keypad struct {
	keys [16]bool

	// One-slot latch for LD Vx,K. The CPU arms it when a wait begins,
	// so only released-to-pressed transitions reported afterwards
	// resolve the wait.
	armed      bool
	latched    bool
	latchedKey byte
}

// NewKeypad creates a keypad with every key released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// SetKey records the state of a key. key is masked to 0x0-0xF.
func (k *Keypad) SetKey(key byte, pressed bool) {
	key &= 0x0F
	if pressed && !k.keys[key] && k.armed && !k.latched {
		k.latched = true
		k.latchedKey = key
	}
	k.keys[key] = pressed
}

// IsPressed reports whether a key is down.
func (k *Keypad) IsPressed(key byte) bool {
	return k.keys[key&0x0F]
}

// arm starts recording press transitions for a pending LD Vx,K.
func (k *Keypad) arm() {
	k.armed = true
	k.latched = false
}

// takePress consumes the latched press, if any.
func (k *Keypad) takePress() (byte, bool) {
	if !k.latched {
		return 0, false
	}
	k.armed = false
	k.latched = false
	return k.latchedKey, true
}
