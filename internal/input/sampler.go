package input

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Debounce holds the hold-off windows of the two toggle lines.
type Debounce struct {
	Reset time.Duration
	Pause time.Duration
}

// DefaultDebounce returns 100ms for reset and 400ms for pause.
func DefaultDebounce() Debounce {
	return Debounce{
		Reset: 100 * time.Millisecond,
		Pause: 400 * time.Millisecond,
	}
}

// Sampler reads every line once per tick and turns pressed lines into an
// input frame. After reset or pause fires, further presses of that line
// are dropped until its debounce window has passed.
type Sampler struct {
	src     LineReader
	windows [lineCount]time.Duration
	holdOff [lineCount]time.Time
	frame   core.InputFrame
}

// NewSampler creates a sampler over src.
func NewSampler(src LineReader, d Debounce) *Sampler {
	s := &Sampler{
		src:   src,
		frame: core.NewInputFrame(),
	}
	s.windows[LineReset] = d.Reset
	s.windows[LinePause] = d.Pause
	return s
}

// Sample reads the lines at time now. The returned frame is reused by the
// next call; Clone it to keep it.
func (s *Sampler) Sample(now time.Time) core.InputFrame {
	s.frame.Clear()
	for _, l := range Lines {
		pressed := !s.src.Level(l)
		if !pressed || now.Before(s.holdOff[l]) {
			continue
		}
		s.frame.Set(l.Action())
		if w := s.windows[l]; w > 0 {
			s.holdOff[l] = now.Add(w)
		}
	}
	return s.frame
}
