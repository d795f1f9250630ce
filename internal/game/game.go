package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/raindrop/internal/ambience"
	"github.com/iburimskiy/raindrop/internal/config"
	"github.com/iburimskiy/raindrop/internal/palette"
	"github.com/iburimskiy/raindrop/internal/rain"
	"github.com/iburimskiy/raindrop/internal/scene"
	"github.com/iburimskiy/raindrop/internal/slider"
)

type game struct {
	width, height int
	rng           *rand.Rand

	// simulation
	params  rain.Params
	scene   *scene.Scene
	colors  *palette.Scheduler
	now     time.Duration
	nextGen time.Duration

	// controls
	amount  *slider.Slider
	wind    *slider.Slider
	buttons []*button
	status  rect

	// sound
	player *ambience.Player

	// draw scratch
	streakFrames []scene.StreakFrame
	splashFrames []scene.SplashFrame

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// NewGame builds the rain scene for a width x height viewport. The viewport is
// fixed for the lifetime of the game.
func NewGame(s *config.Settings, width, height int, player *ambience.Player) *game {
	return newGame(s, width, height, player, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newGame(s *config.Settings, width, height int, player *ambience.Player, rng *rand.Rand) *game {
	g := &game{
		width:   width,
		height:  height,
		rng:     rng,
		params:  rain.Params{DropAmount: s.DropAmount, Wind: s.Wind}.Clamp(),
		scene:   scene.New(rng),
		colors:  palette.NewScheduler(config.ColorInterval),
		player:  player,
		prevKey: map[ebiten.Key]bool{},
		status:  rect{x: config.SliderX, y: config.StatusY, w: 96, h: 16},
	}

	g.amount = slider.New("Rain", config.SliderX, config.AmountSliderY, config.SliderWidth, config.SliderHeight,
		config.HandleWidth, slider.Range{Min: config.DropAmountMin, Max: config.DropAmountMax}, g.params.DropAmount,
		func(v int) { g.params = rain.Params{DropAmount: v, Wind: g.params.Wind}.Clamp() })
	g.wind = slider.New("Wind", config.SliderX, config.WindSliderY, config.SliderWidth, config.SliderHeight,
		config.HandleWidth, slider.Range{Min: config.WindMin, Max: config.WindMax}, g.params.Wind,
		func(v int) { g.params = rain.Params{DropAmount: g.params.DropAmount, Wind: v}.Clamp() })

	x := float64(config.SliderX)
	for _, b := range []struct {
		label   string
		onClick func()
	}{
		{"Day", func() { g.colors.SetManual(palette.Day) }},
		{"Night", func() { g.colors.SetManual(palette.Night) }},
		{"Sound", g.openSoundFile},
	} {
		g.buttons = append(g.buttons, &button{
			label:   b.label,
			rect:    rect{x: x, y: config.ButtonY, w: config.ButtonWidth, h: config.ButtonHeight},
			onClick: b.onClick,
		})
		x += config.ButtonWidth + config.ButtonGap
	}
	return g
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mx, my := ebiten.CursorPosition()
	g.handlePointer(float64(mx), float64(my),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	if justPressed(ebiten.KeyD) {
		g.colors.SetManual(palette.Day)
	}
	if justPressed(ebiten.KeyN) {
		g.colors.SetManual(palette.Night)
	}
	if justPressed(ebiten.KeyA) {
		g.colors.EnableAuto(g.now)
	}
	if justPressed(ebiten.KeyO) {
		g.openSoundFile()
	}
	if justPressed(ebiten.KeyG) && g.player != nil {
		g.player.UseNoise()
	}
	if justPressed(ebiten.KeyM) && g.player != nil {
		g.player.ToggleMute()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step(g.now + time.Second/time.Duration(ebiten.TPS()))
	return nil
}

// handlePointer routes one tick of mouse state to the sliders and buttons.
func (g *game) handlePointer(x, y float64, justPressed, pressed, justReleased bool) {
	sliders := []*slider.Slider{g.amount, g.wind}
	if justPressed {
		for _, s := range sliders {
			s.Press(x, y)
		}
		if g.status.contains(x, y) {
			g.colors.EnableAuto(g.now)
		}
	}
	if pressed {
		for _, s := range sliders {
			s.Move(x, y)
		}
	}
	if justReleased {
		for _, s := range sliders {
			s.Release()
		}
	}
	for _, b := range g.buttons {
		b.update(x, y, justPressed, justReleased)
	}
}

// step advances the simulated clock to now: the palette timer first, then the
// in-flight animations, then one generation per elapsed interval.
func (g *game) step(now time.Duration) {
	g.now = now
	g.colors.Update(now)

	p := g.colors.Palette()
	rainColor := color.Color(palette.WithAlpha(p.Rain, 1))
	g.scene.Advance(now, rainColor)

	for g.nextGen <= now {
		batch := rain.Generate(g.rng, g.params, float64(g.width), float64(g.height))
		g.scene.Spawn(batch, rainColor, g.nextGen)
		g.nextGen += config.GenerationInterval
	}

	if g.player != nil {
		g.player.SetIntensity(float64(g.params.DropAmount) / config.DropAmountMax)
	}
}

// statusText is the auto-toggle label, with the time left until the next flip.
func (g *game) statusText() string {
	text := "Auto: " + g.colors.Status()
	if next, ok := g.colors.Next(); ok {
		left := (next - g.now + time.Second - 1) / time.Second
		text += fmt.Sprintf(" %ds", max(left, 0))
	}
	return text
}

func (g *game) openSoundFile() {
	if g.player == nil {
		g.lastErr = ambience.ErrSilent
		return
	}
	g.lastErr = g.player.OpenFileDialog()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
