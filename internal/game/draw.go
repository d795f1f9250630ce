package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/raindrop/internal/config"
	"github.com/iburimskiy/raindrop/internal/palette"
	"github.com/iburimskiy/raindrop/internal/slider"
)

var (
	panelColor  = color.NRGBA{R: 20, G: 25, B: 35, A: 200}
	borderColor = color.NRGBA{R: 60, G: 70, B: 90, A: 255}
	trackColor  = color.NRGBA{R: 70, G: 80, B: 100, A: 255}
	handleColor = color.NRGBA{R: 220, G: 225, B: 235, A: 255}
)

func (g *game) Draw(screen *ebiten.Image) {
	p := g.colors.Palette()
	screen.Fill(palette.WithAlpha(p.Background, 1))

	g.drawRain(screen)
	g.drawPanel(screen)
}

func (g *game) drawRain(screen *ebiten.Image) {
	g.streakFrames = g.scene.Streaks(g.streakFrames[:0], g.now)
	for _, f := range g.streakFrames {
		l := f.Line
		vector.StrokeLine(screen, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
			config.StreakWidth, fade(f.Color, f.Opacity), true)
	}

	g.splashFrames = g.scene.Splashes(g.splashFrames[:0], g.now)
	for _, f := range g.splashFrames {
		strokeEllipse(screen, f.X, f.Y, f.RX, f.RY, fade(f.Color, 1))
	}
}

// strokeEllipse outlines an axis-aligned ellipse with short line segments.
func strokeEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	if rx <= 0 && ry <= 0 {
		return
	}
	for j := 0; j < config.SplashSegments; j++ {
		a0 := float64(j) * (2 * math.Pi / config.SplashSegments)
		a1 := float64(j+1) * (2 * math.Pi / config.SplashSegments)
		x1, y1 := cx+math.Cos(a0)*rx, cy+math.Sin(a0)*ry
		x2, y2 := cx+math.Cos(a1)*rx, cy+math.Sin(a1)*ry
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2),
			config.SplashStrokeWidth, clr, true)
	}
}

func (g *game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, panelColor, false)
	vector.StrokeRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, 2, borderColor, false)

	ebitenutil.DebugPrintAt(screen, g.statusText(), int(g.status.x), int(g.status.y))
	g.drawMeter(screen)

	g.drawSlider(screen, g.amount)
	g.drawSlider(screen, g.wind)
	for _, b := range g.buttons {
		drawButton(screen, b)
	}
	g.drawProgress(screen)

	ebitenutil.DebugPrintAt(screen, "D/N day-night  A auto  O file  M mute", config.SliderX-12, config.HelpY)

	if g.lastErr != nil {
		msg := "Error: " + g.lastErr.Error()
		y := float32(config.PanelY + config.PanelHeight + 8)
		vector.DrawFilledRect(screen, config.PanelX, y, float32(len(msg)*6+16), 20, panelColor, false)
		ebitenutil.DebugPrintAt(screen, msg, config.PanelX+8, int(y)+2)
	}
}

func (g *game) drawSlider(screen *ebiten.Image, s *slider.Slider) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", s.Label, s.Value()), int(s.X), int(s.Y)-16)

	trackY := float32(s.Y + s.Height/2)
	vector.StrokeLine(screen, float32(s.X), trackY, float32(s.X+s.Width), trackY, 2, trackColor, false)

	hx := s.HandleX() - s.HandleWidth/2
	fill := handleColor
	if s.Dragging() {
		fill = color.NRGBA{R: 150, G: 170, B: 200, A: 255}
	}
	vector.DrawFilledRect(screen, float32(hx), float32(s.Y), float32(s.HandleWidth), float32(s.Height), fill, false)
}

func drawButton(screen *ebiten.Image, b *button) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	r := b.rect
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bgColor, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 6 // debug font is 6px wide
	ebitenutil.DebugPrintAt(screen, b.label, int(r.x)+(int(r.w)-textWidth)/2, int(r.y)+(int(r.h)-16)/2)
}

// drawProgress is the countdown to the next automatic flip.
func (g *game) drawProgress(screen *ebiten.Image) {
	x, y := float32(config.SliderX), float32(config.ProgressY)
	vector.DrawFilledRect(screen, x, y, config.SliderWidth, config.ProgressH, trackColor, false)

	progress := g.colors.Progress(g.now)
	if progress <= 0 {
		return
	}
	tint := progressTint(palette.Get(g.colors.Current().Other()), progress)
	vector.DrawFilledRect(screen, x, y, float32(progress*config.SliderWidth), config.ProgressH, tint, false)
}

// drawMeter shows how loud the rain sound is right now.
func (g *game) drawMeter(screen *ebiten.Image) {
	if g.player == nil || g.player.Silent() {
		return
	}
	x := float32(config.SliderX + config.SliderWidth - config.MeterWidth)
	y := float32(config.StatusY + 6)
	vector.DrawFilledRect(screen, x, y, config.MeterWidth, config.MeterHeight, trackColor, false)
	if g.player.Muted() {
		return
	}
	level := palette.Clamp01(g.player.Level() * 2)
	vector.DrawFilledRect(screen, x, y, float32(level*config.MeterWidth), config.MeterHeight, handleColor, false)
}
