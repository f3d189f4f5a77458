package chip8

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDrawAndClear(t *testing.T) {
	d := NewDisplay()
	if got := d.Draw(0, 0, []byte{0xF0}); got != 0 {
		t.Errorf("collision on empty display: got=%d, want=0", got)
	}
	var want [DisplayHeight][DisplayWidth]byte
	want[0][0], want[0][1], want[0][2], want[0][3] = 1, 1, 1, 1
	if diff := cmp.Diff(want, d.Snapshot()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
	d.Clear()
	if diff := cmp.Diff([DisplayHeight][DisplayWidth]byte{}, d.Snapshot()); diff != "" {
		t.Errorf("grid after Clear (-want +got):\n%s", diff)
	}
}

func TestDrawXORCollision(t *testing.T) {
	d := NewDisplay()
	d.Draw(0, 0, []byte{0xC0})
	if got := d.Draw(0, 0, []byte{0x80}); got != 1 {
		t.Errorf("collision: got=%d, want=1", got)
	}
	var want [DisplayHeight][DisplayWidth]byte
	want[0][1] = 1 // pixel 0 erased by the XOR, pixel 1 survives
	if diff := cmp.Diff(want, d.Snapshot()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

func TestDrawWrapsBothAxes(t *testing.T) {
	d := NewDisplay()
	d.Draw(62, 31, []byte{0xC0, 0xC0})
	var want [DisplayHeight][DisplayWidth]byte
	want[31][62], want[31][63] = 1, 1
	want[0][62], want[0][63] = 1, 1
	if diff := cmp.Diff(want, d.Snapshot()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

func TestDrawWrapsStartCoordinates(t *testing.T) {
	d := NewDisplay()
	// Coordinates beyond the grid wrap the same as coordinates that
	// run off the edge mid-sprite.
	d.Draw(64, 32, []byte{0x80})
	var want [DisplayHeight][DisplayWidth]byte
	want[0][0] = 1
	if diff := cmp.Diff(want, d.Snapshot()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	d := NewDisplay()
	d.Draw(0, 0, []byte{0x80})
	snapshot := d.Snapshot()
	snapshot[0][0] = 0
	if got := d.Snapshot()[0][0]; got != 1 {
		t.Errorf("display mutated through snapshot: got=%d, want=1", got)
	}
}
