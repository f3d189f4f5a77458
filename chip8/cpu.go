package chip8

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"time"

	cryptorand "crypto/rand"

	"github.com/golang/glog"
)

// CPU emulates the CHIP-8 interpreter core.
// References:
//   http://devernay.free.fr/hacks/chip8/C8TECH10.HTM
//   https://en.wikipedia.org/wiki/CHIP-8

// stackDepth is the number of nested subroutine calls the original
// interpreters allowed.
const stackDepth = 16

type CPU struct {
	// General purpose registers V0-VF. VF doubles as the flag register:
	// arithmetic, shift and draw instructions overwrite it after their
	// primary result is computed from the pre-mutation operands.
	v [16]byte

	// Index register, used for memory addressing.
	i uint16

	// Program counter, starts at 0x200 and always addresses a 2-byte
	// instruction inside the 4096-byte space.
	pc uint16

	stack [stackDepth]uint16
	sp    byte // number of return addresses on the stack

	// Both timers count down to zero at 60Hz, driven by Tick. The
	// buzzer sounds while the sound timer is nonzero.
	delayTimer byte
	soundTimer byte

	// waiting is set while a LD Vx,K is pending; waitReg is the
	// register the resolved key goes to.
	waiting bool
	waitReg byte

	rand *rand.Rand

	memory  *Memory
	display *Display
	keypad  *Keypad
}

// newSeed tries a crypto seed before falling back to time.
func newSeed() int64 {
	cryptoseed, err := cryptorand.Int(cryptorand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return time.Now().UnixNano()
	}
	return cryptoseed.Int64()
}

// NewCPU creates a CPU with the program counter at the program start.
func NewCPU(memory *Memory, display *Display, keypad *Keypad) *CPU {
	return &CPU{
		pc:      ProgramStart,
		rand:    rand.New(rand.NewSource(newSeed())),
		memory:  memory,
		display: display,
		keypad:  keypad,
	}
}

// SeedRandom replaces the random source used by RND so that a session
// can be replayed deterministically.
func (c *CPU) SeedRandom(seed int64) {
	c.rand = rand.New(rand.NewSource(seed))
}

func (c *CPU) String() string {
	return fmt.Sprintf("[PC: 0x%04X, I: 0x%04X, SP: %d]", c.pc, c.i, c.sp)
}

// fetchOpcode reads the big-endian 16-bit opcode at PC.
func (c *CPU) fetchOpcode() (uint16, error) {
	high, err := c.memory.Read(c.pc)
	if err != nil {
		return 0, err
	}
	low, err := c.memory.Read(c.pc + 1)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// Step performs one instruction cycle - fetch, decode, execute.
// While a LD Vx,K wait is pending and no key has been pressed, Step
// leaves the machine untouched; see AwaitingKey.
func (c *CPU) Step() error {
	opcode, err := c.fetchOpcode()
	if err != nil {
		return err
	}
	c.pc += 2

	x := byte(opcode >> 8 & 0x0F)
	y := byte(opcode >> 4 & 0x0F)
	n := byte(opcode & 0x0F)
	nn := byte(opcode & 0xFF)
	nnn := opcode & 0x0FFF

	if glog.V(2) {
		glog.Infof("execute: 0x%04X, %s", opcode, c)
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			c.cls()
		case 0x00EE:
			return c.ret()
		default:
			// SYS, the RCA 1802 call. Not part of the instruction set
			// this interpreter targets.
			return c.unknown(opcode)
		}
	case 0x1:
		c.jump(nnn)
	case 0x2:
		return c.call(nnn)
	case 0x3:
		c.skipIf(x, nn)
	case 0x4:
		c.skipIfNot(x, nn)
	case 0x5:
		if n != 0 {
			return c.unknown(opcode)
		}
		c.skipIfXY(x, y)
	case 0x6:
		c.loadX(x, nn)
	case 0x7:
		c.addX(x, nn)
	case 0x8:
		switch n {
		case 0x0:
			c.loadXY(x, y)
		case 0x1:
			c.or(x, y)
		case 0x2:
			c.and(x, y)
		case 0x3:
			c.xor(x, y)
		case 0x4:
			c.add(x, y)
		case 0x5:
			c.sub(x, y)
		case 0x6:
			c.shiftr(x)
		case 0x7:
			c.subYX(x, y)
		case 0xE:
			c.shiftl(x)
		default:
			return c.unknown(opcode)
		}
	case 0x9:
		if n != 0 {
			return c.unknown(opcode)
		}
		c.skipIfNotXY(x, y)
	case 0xA:
		c.loadI(nnn)
	case 0xB:
		c.jumpV0(nnn)
	case 0xC:
		c.loadRand(x, nn)
	case 0xD:
		return c.draw(x, y, n)
	case 0xE:
		switch nn {
		case 0x9E:
			c.skipIfKeyPressed(x)
		case 0xA1:
			c.skipIfNotKeyPressed(x)
		default:
			return c.unknown(opcode)
		}
	case 0xF:
		switch nn {
		case 0x07:
			c.loadXDelay(x)
		case 0x0A:
			c.loadXKey(x)
		case 0x15:
			c.loadDelayX(x)
		case 0x18:
			c.loadSoundX(x)
		case 0x1E:
			c.addIX(x)
		case 0x29:
			c.loadIFont(x)
		case 0x33:
			return c.bcd(x)
		case 0x55:
			return c.regDump(x)
		case 0x65:
			return c.regLoad(x)
		default:
			return c.unknown(opcode)
		}
	}
	return nil
}

// Tick decrements the delay and sound timers toward zero, never below.
// The host drives it at a fixed 60Hz, independently of the Step rate.
func (c *CPU) Tick() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
}

// AwaitingKey reports whether a LD Vx,K wait is pending. The host loop
// should keep servicing input, display and timers; Step stays a no-op
// until a key press resolves the wait.
func (c *CPU) AwaitingKey() bool {
	return c.waiting
}

// SoundActive reports whether the buzzer should sound.
func (c *CPU) SoundActive() bool {
	return c.soundTimer > 0
}

// unknown reports an opcode pattern outside the instruction set. PC has
// already advanced past it, so a caller that chooses to continue skips
// the instruction.
func (c *CPU) unknown(opcode uint16) error {
	return fmt.Errorf("%w: 0x%04X", ErrUnknownOpcode, opcode)
}

// cls - Clear the display.
func (c *CPU) cls() {
	c.display.Clear()
}

// ret - Return from a subroutine.
func (c *CPU) ret() error {
	if c.sp == 0 {
		return fmt.Errorf("%w: RET with no return address, %s", ErrStackUnderflow, c)
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// jump - Jump to address NNN.
func (c *CPU) jump(addr uint16) {
	c.pc = addr
}

// call - Call the subroutine at NNN.
func (c *CPU) call(addr uint16) error {
	if int(c.sp) >= len(c.stack) {
		return fmt.Errorf("%w: CALL beyond %d nested levels, %s", ErrStackOverflow, stackDepth, c)
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = addr
	return nil
}

// skipIf - Skip the next instruction if VX equals NN.
func (c *CPU) skipIf(x, nn byte) {
	if c.v[x] == nn {
		c.pc += 2
	}
}

// skipIfNot - Skip the next instruction if VX doesn't equal NN.
func (c *CPU) skipIfNot(x, nn byte) {
	if c.v[x] != nn {
		c.pc += 2
	}
}

// skipIfXY - Skip the next instruction if VX equals VY.
func (c *CPU) skipIfXY(x, y byte) {
	if c.v[x] == c.v[y] {
		c.pc += 2
	}
}

// loadX - Set VX to NN.
func (c *CPU) loadX(x, nn byte) {
	c.v[x] = nn
}

// addX - Add NN to VX, wrapping modulo 256. The flag is not changed.
func (c *CPU) addX(x, nn byte) {
	c.v[x] += nn
}

// loadXY - Set VX to the value of VY.
func (c *CPU) loadXY(x, y byte) {
	c.v[x] = c.v[y]
}

// or - Set VX to VX or VY.
func (c *CPU) or(x, y byte) {
	c.v[x] |= c.v[y]
}

// and - Set VX to VX and VY.
func (c *CPU) and(x, y byte) {
	c.v[x] &= c.v[y]
}

// xor - Set VX to VX xor VY.
func (c *CPU) xor(x, y byte) {
	c.v[x] ^= c.v[y]
}

// add - Add VY to VX. VF is set to 1 when the unsigned sum exceeds 255.
func (c *CPU) add(x, y byte) {
	sum := uint16(c.v[x]) + uint16(c.v[y])
	c.v[x] = byte(sum)
	if sum > 0xFF {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}

// sub - Subtract VY from VX, wrapping. VF is the no-borrow flag: 1 when
// VX >= VY before the subtraction.
func (c *CPU) sub(x, y byte) {
	vx, vy := c.v[x], c.v[y]
	c.v[x] = vx - vy
	if vx >= vy {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}

// shiftr - Store the least significant bit of VX in VF, then shift VX
// right by one.
func (c *CPU) shiftr(x byte) {
	lsb := c.v[x] & 0x01
	c.v[x] >>= 1
	c.v[0xF] = lsb
}

// subYX - Set VX to VY minus VX, wrapping. VF is the no-borrow flag: 1
// when VY >= VX before the operation.
func (c *CPU) subYX(x, y byte) {
	vx, vy := c.v[x], c.v[y]
	c.v[x] = vy - vx
	if vy >= vx {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}

// shiftl - Store the most significant bit of VX in VF, then shift VX
// left by one.
func (c *CPU) shiftl(x byte) {
	msb := c.v[x] >> 7
	c.v[x] <<= 1
	c.v[0xF] = msb
}

// skipIfNotXY - Skip the next instruction if VX doesn't equal VY.
func (c *CPU) skipIfNotXY(x, y byte) {
	if c.v[x] != c.v[y] {
		c.pc += 2
	}
}

// loadI - Set I to the address NNN.
func (c *CPU) loadI(addr uint16) {
	c.i = addr
}

// jumpV0 - Jump to the address NNN plus V0.
func (c *CPU) jumpV0(addr uint16) {
	c.pc = addr + uint16(c.v[0])
}

// loadRand - Set VX to a random byte masked with NN.
func (c *CPU) loadRand(x, nn byte) {
	c.v[x] = byte(c.rand.Intn(256)) & nn
}

// draw - XOR an N-byte sprite read from memory at I onto the display at
// (VX, VY). Coordinates wrap on both axes rather than clipping. VF is
// set to 1 if any lit pixel was turned off, otherwise 0. I is left
// unmodified.
func (c *CPU) draw(x, y, n byte) error {
	sprite := make([]byte, n)
	for row := byte(0); row < n; row++ {
		b, err := c.memory.Read(c.i + uint16(row))
		if err != nil {
			return err
		}
		sprite[row] = b
	}
	c.v[0xF] = c.display.Draw(c.v[x], c.v[y], sprite)
	return nil
}

// skipIfKeyPressed - Skip the next instruction if the key stored in VX
// is pressed.
func (c *CPU) skipIfKeyPressed(x byte) {
	if c.keypad.IsPressed(c.v[x]) {
		c.pc += 2
	}
}

// skipIfNotKeyPressed - Skip the next instruction if the key stored in
// VX isn't pressed.
func (c *CPU) skipIfNotKeyPressed(x byte) {
	if !c.keypad.IsPressed(c.v[x]) {
		c.pc += 2
	}
}

// loadXDelay - Set VX to the delay timer.
func (c *CPU) loadXDelay(x byte) {
	c.v[x] = c.delayTimer
}

// loadXKey - Wait for a key press, then store the key in VX.
// The wait does not block: PC is held at this instruction and the CPU
// reports AwaitingKey until the keypad latches a released-to-pressed
// transition. Presses that happened before the wait began don't count.
func (c *CPU) loadXKey(x byte) {
	if !c.waiting {
		c.waiting = true
		c.waitReg = x
		c.keypad.arm()
	}
	if key, ok := c.keypad.takePress(); ok {
		c.v[c.waitReg] = key
		c.waiting = false
		if glog.V(1) {
			glog.Infof("key 0x%X resolved the wait, %s", key, c)
		}
		return
	}
	c.pc -= 2
}

// loadDelayX - Set the delay timer to VX.
func (c *CPU) loadDelayX(x byte) {
	c.delayTimer = c.v[x]
}

// loadSoundX - Set the sound timer to VX.
func (c *CPU) loadSoundX(x byte) {
	c.soundTimer = c.v[x]
}

// addIX - Add VX to I. No flag side effect; the original interpreters
// left the overflow behavior undocumented.
func (c *CPU) addIX(x byte) {
	c.i += uint16(c.v[x])
}

// loadIFont - Set I to the address of the fontset glyph for the digit
// in VX.
func (c *CPU) loadIFont(x byte) {
	c.i = FontAddress(c.v[x])
}

// bcd - Store the three decimal digits of VX at I, I+1 and I+2,
// hundreds first.
func (c *CPU) bcd(x byte) error {
	if err := c.memory.Write(c.i, c.v[x]/100); err != nil {
		return err
	}
	if err := c.memory.Write(c.i+1, c.v[x]/10%10); err != nil {
		return err
	}
	return c.memory.Write(c.i+2, c.v[x]%10)
}

// regDump - Store V0 to VX (including VX) in memory starting at I.
// I itself is left unmodified.
func (c *CPU) regDump(x byte) error {
	for i := byte(0); i <= x; i++ {
		if err := c.memory.Write(c.i+uint16(i), c.v[i]); err != nil {
			return err
		}
	}
	return nil
}

// regLoad - Fill V0 to VX (including VX) from memory starting at I.
// I itself is left unmodified.
func (c *CPU) regLoad(x byte) error {
	for i := byte(0); i <= x; i++ {
		b, err := c.memory.Read(c.i + uint16(i))
		if err != nil {
			return err
		}
		c.v[i] = b
	}
	return nil
}
