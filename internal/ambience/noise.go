package ambience

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/faiface/beep"
)

// rainNoise is endless low-passed white noise, which is close enough to the hiss
// of steady rain.
type rainNoise struct {
	rng       *rand.Rand
	smoothing float64
	state     [2]float64
}

func newRainNoise(rng *rand.Rand, smoothing float64) *rainNoise {
	return &rainNoise{rng: rng, smoothing: smoothing}
}

func (n *rainNoise) Stream(samples [][2]float64) (int, bool) {
	// Low-passing shrinks the amplitude; makeup keeps it near full scale.
	makeup := math.Sqrt((1 + n.smoothing) / (1 - n.smoothing))
	for i := range samples {
		for ch := 0; ch < 2; ch++ {
			white := n.rng.Float64()*2 - 1
			n.state[ch] = n.smoothing*n.state[ch] + (1-n.smoothing)*white
			samples[i][ch] = min(max(n.state[ch]*makeup, -1), 1)
		}
	}
	return len(samples), true
}

func (n *rainNoise) Err() error { return nil }

// intensityGain scales its source by a value that another goroutine may change
// at any time.
type intensityGain struct {
	Source beep.Streamer
	bits   atomic.Uint64
}

func newIntensityGain(src beep.Streamer) *intensityGain {
	return &intensityGain{Source: src}
}

func (g *intensityGain) Set(v float64) {
	g.bits.Store(math.Float64bits(min(max(v, 0), 1)))
}

func (g *intensityGain) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

func (g *intensityGain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.Source.Stream(samples)
	gain := g.Get()
	for i := 0; i < n; i++ {
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	return n, ok
}

func (g *intensityGain) Err() error { return g.Source.Err() }
