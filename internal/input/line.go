// Package input samples the six logical control lines of the game.
// Lines are active-low: a low level (false) means the button is pressed.
package input

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Line names one logical input channel.
type Line int

const (
	LineUp Line = iota
	LineDown
	LineLeft
	LineRight
	LineReset
	LinePause

	lineCount
)

// Lines lists every line in sampling order.
var Lines = []Line{LineUp, LineDown, LineLeft, LineRight, LineReset, LinePause}

// Action returns the game action a pressed line produces.
func (l Line) Action() core.Action {
	switch l {
	case LineUp:
		return core.ActionUp
	case LineDown:
		return core.ActionDown
	case LineLeft:
		return core.ActionLeft
	case LineRight:
		return core.ActionRight
	case LineReset:
		return core.ActionReset
	case LinePause:
		return core.ActionPause
	default:
		return core.ActionNone
	}
}

func (l Line) String() string {
	switch l {
	case LineUp:
		return "up"
	case LineDown:
		return "down"
	case LineLeft:
		return "left"
	case LineRight:
		return "right"
	case LineReset:
		return "reset"
	case LinePause:
		return "pause"
	default:
		return "unknown"
	}
}

// LineReader reports the logic level of a line. High (true) is released.
type LineReader interface {
	Level(l Line) bool
}

// Bank is a set of lines held at a level until changed, like pins with
// pull-up resistors. All lines idle high. Safe for concurrent use.
type Bank struct {
	mu  sync.Mutex
	low [lineCount]bool
}

// NewBank returns a bank with every line released.
func NewBank() *Bank {
	return &Bank{}
}

// Level implements LineReader.
func (b *Bank) Level(l Line) bool {
	if l < 0 || l >= lineCount {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.low[l]
}

// Set drives a line to the given logic level.
func (b *Bank) Set(l Line, high bool) {
	if l < 0 || l >= lineCount {
		return
	}
	b.mu.Lock()
	b.low[l] = !high
	b.mu.Unlock()
}

// Press pulls a line low.
func (b *Bank) Press(l Line) {
	b.Set(l, false)
}

// Release lets a line float back high.
func (b *Bank) Release(l Line) {
	b.Set(l, true)
}

// Latch turns momentary events (terminal key presses have no release) into
// line levels: a pressed line reads low once, then returns high.
// Safe for concurrent use.
type Latch struct {
	mu      sync.Mutex
	pending [lineCount]bool
}

// NewLatch returns a latch with no pending presses.
func NewLatch() *Latch {
	return &Latch{}
}

// Press latches a line low until its next read.
func (k *Latch) Press(l Line) {
	if l < 0 || l >= lineCount {
		return
	}
	k.mu.Lock()
	k.pending[l] = true
	k.mu.Unlock()
}

// Level implements LineReader. Reading a latched line clears it.
func (k *Latch) Level(l Line) bool {
	if l < 0 || l >= lineCount {
		return true
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.pending[l] {
		k.pending[l] = false
		return false
	}
	return true
}

// Merge reads several sources as one: a line is low if any source pulls it low.
type Merge []LineReader

// Level implements LineReader. Every source is read so latches clear.
func (m Merge) Level(l Line) bool {
	high := true
	for _, r := range m {
		if !r.Level(l) {
			high = false
		}
	}
	return high
}
