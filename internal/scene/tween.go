package scene

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is a linear 0→1 gween tween placed on the simulated clock.
type Tween struct {
	Start    time.Duration
	Duration time.Duration
	tw       *gween.Tween
}

// NewTween starts a tween of length d at start.
func NewTween(start, d time.Duration) Tween {
	return Tween{
		Start:    start,
		Duration: d,
		tw:       gween.New(0, 1, float32(d.Seconds()), ease.Linear),
	}
}

// Progress returns the eased position at now and whether the tween has ended.
func (tw Tween) Progress(now time.Duration) (float64, bool) {
	if tw.tw == nil || tw.Duration <= 0 {
		return 1, true
	}
	v, done := tw.tw.Set(float32((now - tw.Start).Seconds()))
	return float64(v), done
}

func (tw Tween) End() time.Duration {
	return tw.Start + tw.Duration
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
