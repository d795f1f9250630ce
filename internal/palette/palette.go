package palette

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/raindrop/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Name identifies one of the two palettes.
type Name int

const (
	Night Name = iota
	Day
)

func (n Name) String() string {
	if n == Day {
		return "day"
	}
	return "night"
}

// Other returns the opposite palette.
func (n Name) Other() Name {
	if n == Day {
		return Night
	}
	return Day
}

// Palette pairs the page background with the rain stroke color.
type Palette struct {
	Background colorful.Color
	Rain       colorful.Color
}

var palettes = map[Name]Palette{
	Day:   {Background: mustHex(config.DayBackground), Rain: mustHex(config.DayRain)},
	Night: {Background: mustHex(config.NightBackground), Rain: mustHex(config.NightRain)},
}

// Get returns the fixed palette for n.
func Get(n Name) Palette {
	return palettes[n]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: bad color %q: %v", s, err))
	}
	return c
}

// WithAlpha converts c to a non-premultiplied color with opacity a in [0,1].
func WithAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(Clamp01(a)*255 + 0.5)}
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
