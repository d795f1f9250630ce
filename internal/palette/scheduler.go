package palette

import (
	"time"
)

// Mode tells whether the palette flips on its own.
type Mode int

const (
	Auto Mode = iota
	Manual
)

// Scheduler flips between day and night every interval while in Auto mode. All
// times are offsets on the caller's simulated clock.
type Scheduler struct {
	interval time.Duration
	mode     Mode
	current  Name
	started  bool
	next     time.Duration

	// progress indicator: width fraction moving from progFrom to progTo
	progFrom  float64
	progTo    float64
	progStart time.Duration
}

// NewScheduler starts in Auto mode showing the night palette.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{
		interval: interval,
		mode:     Auto,
		current:  Night,
	}
}

// Update fires the pending flip if it is due. The first call in Auto mode flips
// immediately. It reports whether the palette changed.
func (s *Scheduler) Update(now time.Duration) bool {
	if s.mode != Auto {
		return false
	}
	if !s.started {
		s.started = true
		s.flip(now)
		s.next = now + s.interval
		return true
	}
	if now < s.next {
		return false
	}
	s.flip(now)
	s.next += s.interval
	if s.next <= now {
		s.next = now + s.interval
	}
	return true
}

func (s *Scheduler) flip(now time.Duration) {
	s.current = s.current.Other()
	s.retarget(now)
}

// retarget sends the progress indicator toward the opposite end.
func (s *Scheduler) retarget(now time.Duration) {
	from := s.Progress(now)
	to := 1.0
	if s.progTo != 0 {
		to = 0
	}
	s.progFrom, s.progTo, s.progStart = from, to, now
}

// SetManual cancels automatic flipping and shows the requested palette.
func (s *Scheduler) SetManual(n Name) {
	s.mode = Manual
	s.progFrom, s.progTo = 0, 0
	s.current = n
}

// EnableAuto resumes automatic flipping. The next flip is one interval away.
func (s *Scheduler) EnableAuto(now time.Duration) {
	if s.mode == Auto {
		return
	}
	s.mode = Auto
	s.started = true
	s.next = now + s.interval
	s.retarget(now)
}

// Progress returns the progress indicator width in [0,1] at now.
func (s *Scheduler) Progress(now time.Duration) float64 {
	if s.progFrom == s.progTo {
		return s.progTo
	}
	t := float64(now-s.progStart) / float64(s.interval)
	if t <= 0 {
		return s.progFrom
	}
	if t >= 1 {
		return s.progTo
	}
	return s.progFrom + (s.progTo-s.progFrom)*t
}

func (s *Scheduler) Mode() Mode { return s.mode }
func (s *Scheduler) Current() Name { return s.current }
func (s *Scheduler) Palette() Palette { return Get(s.current) }

// Next returns when the pending flip is due and whether one is pending.
func (s *Scheduler) Next() (time.Duration, bool) {
	if s.mode != Auto || !s.started {
		return 0, false
	}
	return s.next, true
}

// Status is the auto-toggle label.
func (s *Scheduler) Status() string {
	if s.mode == Auto {
		return "ON"
	}
	return "OFF"
}
