package rain

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/raindrop/internal/config"
)

// Line is a segment in viewport pixels.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Lerp interpolates every endpoint between l and to.
func (l Line) Lerp(to Line, t float64) Line {
	return Line{
		X1: l.X1 + (to.X1-l.X1)*t,
		Y1: l.Y1 + (to.Y1-l.Y1)*t,
		X2: l.X2 + (to.X2-l.X2)*t,
		Y2: l.Y2 + (to.Y2-l.Y2)*t,
	}
}

// Drop is one rain streak: where it starts at the top and where it lands.
type Drop struct {
	Origin Line
	Target Line
}

// Params are the live simulation parameters set by the sliders.
type Params struct {
	DropAmount int
	Wind       int
}

// Clamp keeps both parameters inside their declared ranges.
func (p Params) Clamp() Params {
	p.DropAmount = min(max(p.DropAmount, config.DropAmountMin), config.DropAmountMax)
	p.Wind = min(max(p.Wind, config.WindMin), config.WindMax)
	return p
}

// Generate returns exactly p.DropAmount drops for a width x height viewport.
func Generate(rng *rand.Rand, p Params, width, height float64) []Drop {
	drops := make([]Drop, 0, max(p.DropAmount, 0))
	bias := p.Wind - (config.WindMax-config.WindMin)/2
	for i := 0; i < p.DropAmount; i++ {
		drops = append(drops, generateOne(rng, bias, width, height))
	}
	return drops
}

func generateOne(rng *rand.Rand, bias int, width, height float64) Drop {
	deltaX := float64(rng.IntN(6) + bias - 3)
	yFrac := 1 - float64(rng.IntN(100)%20)/100
	length := float64(rng.IntN(30) + 30)

	// The streak always starts at the top edge; dx1 shifts it so that it lands
	// where the wind slope would carry it across the full height.
	y1, y2 := 0.0, length
	dx1 := deltaX * height / y2
	spread := math.Abs(dx1)

	x1 := math.Floor(rng.Float64()*(width+2*spread)) - spread
	x2 := x1 + deltaX

	tx1 := x1 + dx1
	ty2 := height * yFrac
	return Drop{
		Origin: Line{X1: x1, Y1: y1, X2: x2, Y2: y2},
		Target: Line{X1: tx1, Y1: ty2 - length, X2: tx1 + deltaX, Y2: ty2},
	}
}
