package scene

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/raindrop/internal/config"
	"github.com/iburimskiy/raindrop/internal/rain"
)

// Streak is a drop in flight. Its color is fixed when it is spawned.
type Streak struct {
	Drop  rain.Drop
	Color color.Color
	Tween Tween
}

// Splash is the ring left where a streak landed.
type Splash struct {
	X, Y  float64
	Color color.Color
	Tween Tween
}

// StreakFrame is a streak resolved at one instant.
type StreakFrame struct {
	Line    rain.Line
	Opacity float64
	Color   color.Color
}

// SplashFrame is a splash resolved at one instant.
type SplashFrame struct {
	X, Y   float64
	RX, RY float64
	Color  color.Color
}

// Scene owns every live streak and splash.
type Scene struct {
	rng      *rand.Rand
	streaks  []Streak
	splashes []Splash
}

func New(rng *rand.Rand) *Scene {
	return &Scene{rng: rng}
}

// Spawn starts the drops of batch that have no live streak at their index yet,
// so the number of live streaks never grows past len(batch). It returns how
// many streaks were started.
func (s *Scene) Spawn(batch []rain.Drop, c color.Color, now time.Duration) int {
	live := len(s.streaks)
	if live >= len(batch) {
		return 0
	}
	spread := int64(config.StreakMaxDuration - config.StreakMinDuration)
	for _, d := range batch[live:] {
		s.streaks = append(s.streaks, Streak{
			Drop:  d,
			Color: c,
			Tween: NewTween(now, config.StreakMinDuration+time.Duration(s.rng.Int64N(spread))),
		})
	}
	return len(batch) - live
}

// Advance drops splashes that have run their course, then retires finished
// streaks, replacing each with one splash colored c. A splash created here is
// kept until the next call even when its end has already passed, so a late tick
// still draws it once.
func (s *Scene) Advance(now time.Duration, c color.Color) {
	splashes := s.splashes[:0]
	for _, sp := range s.splashes {
		if _, done := sp.Tween.Progress(now); !done {
			splashes = append(splashes, sp)
		}
	}
	clear(s.splashes[len(splashes):])
	s.splashes = splashes

	kept := s.streaks[:0]
	for _, st := range s.streaks {
		if _, done := st.Tween.Progress(now); !done {
			kept = append(kept, st)
			continue
		}
		s.splashes = append(s.splashes, Splash{
			X:     st.Drop.Target.X2,
			Y:     st.Drop.Target.Y2,
			Color: c,
			Tween: NewTween(st.Tween.End(), config.SplashDuration),
		})
	}
	clear(s.streaks[len(kept):])
	s.streaks = kept
}

func (s *Scene) StreakCount() int { return len(s.streaks) }
func (s *Scene) SplashCount() int { return len(s.splashes) }

// Streaks appends the interpolated state of every live streak to dst.
func (s *Scene) Streaks(dst []StreakFrame, now time.Duration) []StreakFrame {
	for _, st := range s.streaks {
		t, _ := st.Tween.Progress(now)
		dst = append(dst, StreakFrame{
			Line:    st.Drop.Origin.Lerp(st.Drop.Target, t),
			Opacity: lerp(1, config.StreakEndOpacity, t),
			Color:   st.Color,
		})
	}
	return dst
}

// Splashes appends the interpolated state of every live splash to dst.
func (s *Scene) Splashes(dst []SplashFrame, now time.Duration) []SplashFrame {
	for _, sp := range s.splashes {
		t, _ := sp.Tween.Progress(now)
		dst = append(dst, SplashFrame{
			X:     sp.X,
			Y:     sp.Y,
			RX:    lerp(0, config.SplashRadiusX, t),
			RY:    lerp(0, config.SplashRadiusY, t),
			Color: sp.Color,
		})
	}
	return dst
}
