package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Simulation parameter ranges
	DropAmountMin     = 0
	DropAmountMax     = 600
	DropAmountDefault = 300
	WindMin           = 0
	WindMax           = 50
	WindDefault       = 25

	// Timers
	GenerationInterval = 10 * time.Millisecond
	ColorInterval      = 10 * time.Second

	// Streak and splash animation
	StreakMinDuration = 300 * time.Millisecond
	StreakMaxDuration = 500 * time.Millisecond
	StreakWidth       = 0.6
	StreakEndOpacity  = 0.3
	SplashDuration    = 100 * time.Millisecond
	SplashRadiusX     = 3
	SplashRadiusY     = 1
	SplashStrokeWidth = 1
	SplashSegments    = 16

	// Palette
	DayBackground   = "#f1f1f1"
	DayRain         = "#000000"
	NightBackground = "#001122"
	NightRain       = "#ffffff"

	// Control panel
	PanelX        = 20
	PanelY        = 20
	PanelWidth    = 240
	PanelHeight   = 190
	SliderX       = 40
	SliderWidth   = 200
	SliderHeight  = 12
	HandleWidth   = 12
	StatusY       = 28
	AmountSliderY = 64
	WindSliderY   = 100
	ButtonY       = 124
	ButtonWidth   = 60
	ButtonHeight  = 24
	ButtonGap     = 10
	ProgressY     = 160
	ProgressH     = 4
	HelpY         = 172
	MeterWidth    = 60
	MeterHeight   = 4

	// Ambience
	AmbienceRingSize   = 4096
	AmbienceSampleRate = 44100
	AmbienceVolume     = 0.5
	NoiseSmoothing     = 0.85
)
