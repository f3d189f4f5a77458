package integration

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chip8go/chip8"
)

// drawKeyGlyph waits for a keypad press, points I at the fontset glyph
// for the pressed key, draws it in the top-left corner, and spins.
var drawKeyGlyph = []byte{
	0xF0, 0x0A, // LD V0, K
	0x61, 0x00, // LD V1, 0
	0xF0, 0x29, // LD F, V0
	0xD1, 0x15, // DRW V1, V1, 5
	0x12, 0x08, // JP 0x208
}

// glyph8 is the fontset sprite for the digit 8.
var glyph8 = []byte{0xF0, 0x90, 0xF0, 0x90, 0xF0}

func TestDrawPressedKeyGlyph(t *testing.T) {
	console, err := chip8.NewConsole(drawKeyGlyph)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	if err := console.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !console.AwaitingKey() {
		t.Fatal("AwaitingKey: got=false, want=true")
	}
	console.SetKey(0x8, true)
	for i := 0; i < 5; i++ {
		if err := console.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if console.AwaitingKey() {
		t.Fatal("AwaitingKey after press: got=true, want=false")
	}

	var want [chip8.DisplayHeight][chip8.DisplayWidth]byte
	for row, bits := range glyph8 {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) != 0 {
				want[row][col] = 1
			}
		}
	}
	if diff := cmp.Diff(want, console.DisplaySnapshot()); diff != "" {
		t.Errorf("framebuffer (-want +got):\n%s", diff)
	}

	// The program is in its spin loop now; more steps must not disturb
	// the framebuffer.
	for i := 0; i < 10; i++ {
		if err := console.Step(); err != nil {
			t.Fatalf("Step in spin loop: %v", err)
		}
	}
	if diff := cmp.Diff(want, console.DisplaySnapshot()); diff != "" {
		t.Errorf("framebuffer after spin loop (-want +got):\n%s", diff)
	}
}

// beepTwoTicks sets the sound timer to two and spins.
var beepTwoTicks = []byte{
	0x60, 0x02, // LD V0, 2
	0xF0, 0x18, // LD ST, V0
	0x12, 0x04, // JP 0x204
}

func TestSoundTimer(t *testing.T) {
	console, err := chip8.NewConsole(beepTwoTicks)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := console.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if !console.SoundActive() {
		t.Fatal("SoundActive: got=false, want=true")
	}
	console.Tick()
	if !console.SoundActive() {
		t.Fatal("SoundActive after one tick: got=false, want=true")
	}
	console.Tick()
	if console.SoundActive() {
		t.Fatal("SoundActive after two ticks: got=true, want=false")
	}
}
