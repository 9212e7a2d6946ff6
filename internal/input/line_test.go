package input

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBankActiveLow(t *testing.T) {
	b := NewBank()

	for _, l := range Lines {
		if !b.Level(l) {
			t.Errorf("Line %s should idle high", l)
		}
	}

	b.Press(LineUp)
	if b.Level(LineUp) {
		t.Error("Pressed line should read low")
	}
	if b.Level(LineUp) {
		t.Error("Bank lines stay low until released")
	}

	b.Release(LineUp)
	if !b.Level(LineUp) {
		t.Error("Released line should read high")
	}

	if !b.Level(Line(99)) {
		t.Error("Unknown lines read high")
	}
}

func TestLatchReadsOnce(t *testing.T) {
	k := NewLatch()
	k.Press(LinePause)

	if k.Level(LinePause) {
		t.Error("Latched line should read low")
	}
	if !k.Level(LinePause) {
		t.Error("Latch should clear after a read")
	}
}

func TestMerge(t *testing.T) {
	b := NewBank()
	k := NewLatch()
	m := Merge{b, k}

	if !m.Level(LineLeft) {
		t.Error("Merged idle lines should be high")
	}

	k.Press(LineLeft)
	b.Press(LineRight)
	if m.Level(LineLeft) || m.Level(LineRight) {
		t.Error("Any low source should pull the merged line low")
	}
	if !m.Level(LineLeft) {
		t.Error("Latch should have been consumed by the merged read")
	}
}

func TestLineActions(t *testing.T) {
	expected := map[Line]core.Action{
		LineUp:    core.ActionUp,
		LineDown:  core.ActionDown,
		LineLeft:  core.ActionLeft,
		LineRight: core.ActionRight,
		LineReset: core.ActionReset,
		LinePause: core.ActionPause,
	}
	for l, a := range expected {
		if l.Action() != a {
			t.Errorf("%s.Action() = %s, expected %s", l, l.Action(), a)
		}
	}
	if len(Lines) != 6 {
		t.Errorf("Expected six lines, got %d", len(Lines))
	}
}
