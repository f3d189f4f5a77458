package chip8

import "testing"

func TestSetKeyIsPressed(t *testing.T) {
	k := NewKeypad()
	if k.IsPressed(0x5) {
		t.Error("IsPressed before any SetKey: got=true")
	}
	k.SetKey(0x5, true)
	if !k.IsPressed(0x5) {
		t.Error("IsPressed after press: got=false")
	}
	k.SetKey(0x5, false)
	if k.IsPressed(0x5) {
		t.Error("IsPressed after release: got=true")
	}
}

func TestKeyMasking(t *testing.T) {
	k := NewKeypad()
	k.SetKey(0x15, true)
	if !k.IsPressed(0x5) {
		t.Error("keys above 0xF should fold onto the low nibble")
	}
}

func TestPressLatch(t *testing.T) {
	k := NewKeypad()
	// Unarmed presses are not latched.
	k.SetKey(0x5, true)
	if _, ok := k.takePress(); ok {
		t.Fatal("takePress before arm: got a press")
	}
	// A key already held when the latch is armed doesn't count; only a
	// released-to-pressed transition does.
	k.arm()
	k.SetKey(0x5, true)
	if _, ok := k.takePress(); ok {
		t.Fatal("takePress with key still held: got a press")
	}
	k.SetKey(0x5, false)
	k.SetKey(0x5, true)
	key, ok := k.takePress()
	if !ok || key != 0x5 {
		t.Fatalf("takePress: got=(0x%X, %v), want=(0x5, true)", key, ok)
	}
	// The latch is one-shot.
	if _, ok := k.takePress(); ok {
		t.Fatal("second takePress: got a press")
	}
}

func TestLatchKeepsFirstPress(t *testing.T) {
	k := NewKeypad()
	k.arm()
	k.SetKey(0x2, true)
	k.SetKey(0x7, true)
	key, ok := k.takePress()
	if !ok || key != 0x2 {
		t.Fatalf("takePress: got=(0x%X, %v), want=(0x2, true)", key, ok)
	}
}
