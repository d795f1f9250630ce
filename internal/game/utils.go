package game

import (
	"image/color"

	"github.com/iburimskiy/raindrop/internal/palette"
	"github.com/lucasb-eyer/go-colorful"
)

// fade returns c with its alpha scaled by opacity.
func fade(c color.Color, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*palette.Clamp01(opacity) + 0.5)
	return n
}

var accent = colorful.Color{R: 0.35, G: 0.55, B: 0.85}

// progressTint shifts the countdown bar toward the background of the palette
// that comes next.
func progressTint(next palette.Palette, progress float64) color.NRGBA {
	return palette.WithAlpha(accent.BlendLab(next.Background, palette.Clamp01(progress)).Clamped(), 1)
}
