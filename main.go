package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/raindrop/internal/ambience"
	"github.com/iburimskiy/raindrop/internal/config"
	"github.com/iburimskiy/raindrop/internal/game"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource of the program so they are released before main
// exits, whatever the outcome.
func run() error {
	configPath := flag.String("config", "", "Path to the settings file (default ~/.config/raindrop/settings.yaml)")
	mute := flag.Bool("mute", false, "Start without rain sound")
	fullscreen := flag.Bool("fullscreen", false, "Fill the whole screen")
	flag.Parse()

	if flag.NArg() > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	path := *configPath
	if path == "" {
		p, err := config.GetSettingsPath()
		if err != nil {
			log.Printf("Cannot locate settings file, using defaults: %v", err)
		}
		path = p
	}

	settings := config.DefaultSettings()
	if path != "" {
		s, err := config.LoadSettings(path)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = s
	}
	if *fullscreen {
		settings.Fullscreen = true
	}

	player := ambience.NewPlayer(settings.SoundVolume)
	if settings.Sound && !*mute {
		if err := player.Start(); err != nil {
			log.Printf("Rain sound disabled: %v", err)
		} else if settings.SoundFile != "" {
			if err := player.LoadFile(settings.SoundFile); err != nil {
				log.Printf("Using generated rain sound: %v", err)
			}
		}
	}
	defer player.Close()

	width, height := settings.WindowWidth, settings.WindowHeight
	if settings.Fullscreen {
		width, height = ebiten.Monitor().Size()
		ebiten.SetFullscreen(true)
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Raindrop - D/N: day/night, A: auto, O: sound file, G: generated sound, M: mute, Esc/Q: quit")

	g := game.NewGame(settings, width, height, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
