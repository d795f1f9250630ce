package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable startup values. Everything else lives in the
// constants above.
type Settings struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Fullscreen   bool    `yaml:"fullscreen"`
	DropAmount   int     `yaml:"drop_amount"`
	Wind         int     `yaml:"wind"`
	Sound        bool    `yaml:"sound"`
	SoundVolume  float64 `yaml:"sound_volume"`
	SoundFile    string  `yaml:"sound_file"`
}

func DefaultSettings() *Settings {
	return &Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		DropAmount:   DropAmountDefault,
		Wind:         WindDefault,
		Sound:        true,
		SoundVolume:  AmbienceVolume,
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "raindrop", "settings.yaml"), nil
}

// LoadSettings reads path, falling back to defaults when the file is missing or
// unreadable as YAML. Out-of-range values are replaced and logged.
func LoadSettings(path string) (*Settings, error) {
	defaults := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	known := getKnownKeys(Settings{})
	for key := range raw {
		if !known[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	settings.validate(defaults)
	return settings, nil
}

func (s *Settings) validate(defaults *Settings) {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		log.Printf("Invalid window size %dx%d, using default %dx%d",
			s.WindowWidth, s.WindowHeight, defaults.WindowWidth, defaults.WindowHeight)
		s.WindowWidth, s.WindowHeight = defaults.WindowWidth, defaults.WindowHeight
	}
	if s.DropAmount < DropAmountMin || s.DropAmount > DropAmountMax {
		clamped := clampInt(s.DropAmount, DropAmountMin, DropAmountMax)
		log.Printf("Invalid drop_amount %d, must be between %d and %d, using %d",
			s.DropAmount, DropAmountMin, DropAmountMax, clamped)
		s.DropAmount = clamped
	}
	if s.Wind < WindMin || s.Wind > WindMax {
		clamped := clampInt(s.Wind, WindMin, WindMax)
		log.Printf("Invalid wind %d, must be between %d and %d, using %d",
			s.Wind, WindMin, WindMax, clamped)
		s.Wind = clamped
	}
	if s.SoundVolume < 0 || s.SoundVolume > 1 {
		log.Printf("Invalid sound_volume %.2f, must be between 0.0 and 1.0, using default %.2f",
			s.SoundVolume, defaults.SoundVolume)
		s.SoundVolume = defaults.SoundVolume
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("yaml"); tag != "" {
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				keys[name] = true
			}
		}
	}
	return keys
}
