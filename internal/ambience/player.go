// Package ambience plays the rain sound: generated noise by default, or a looped
// audio file the user picks, at a loudness that follows the amount of rain.
package ambience

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/raindrop/internal/config"
	"github.com/ncruces/zenity"
)

// ErrSilent is returned by operations that need the speaker when sound is off.
var ErrSilent = errors.New("ambience: sound is off")

// levelWindow is how many recent samples the loudness meter averages.
const levelWindow = 2048

type Player struct {
	rate   beep.SampleRate
	noise  *rainNoise
	gain   *intensityGain
	tap    *levelTap
	ctrl   *beep.Ctrl
	volume *effects.Volume

	// file playback
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	fileName    string

	silent  bool
	started bool
}

// NewPlayer builds the playback chain: source -> gain -> tap -> ctrl -> volume.
func NewPlayer(volume float64) *Player {
	rate := beep.SampleRate(config.AmbienceSampleRate)
	noise := newRainNoise(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), config.NoiseSmoothing)
	gain := newIntensityGain(noise)
	tap := newLevelTap(gain, config.AmbienceRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}
	return &Player{
		rate:   rate,
		noise:  noise,
		gain:   gain,
		tap:    tap,
		ctrl:   ctrl,
		volume: newVolume(ctrl, volume),
		silent: true,
	}
}

// newVolume maps a linear volume to beep's log scale; zero is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Start opens the speaker and begins playing. On failure the player stays
// silent and the rest of the program is unaffected.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.started = true
	p.silent = false
	speaker.Play(p.volume)
	return nil
}

// Silent reports whether no audio reaches the speaker.
func (p *Player) Silent() bool { return p.silent }

// SetIntensity sets the loudness in [0,1].
func (p *Player) SetIntensity(v float64) {
	p.gain.Set(v)
}

// Level is the recent RMS loudness, for the HUD meter.
func (p *Player) Level() float64 {
	return p.tap.level(levelWindow)
}

// Muted reports whether playback is paused.
func (p *Player) Muted() bool {
	p.lock()
	defer p.unlock()
	return p.ctrl.Paused
}

// ToggleMute pauses or resumes playback.
func (p *Player) ToggleMute() {
	p.lock()
	p.ctrl.Paused = !p.ctrl.Paused
	p.unlock()
}

// FileName is the base name of the looped ambience file, if any.
func (p *Player) FileName() string { return p.fileName }

func (p *Player) lock() {
	if !p.silent {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if !p.silent {
		speaker.Unlock()
	}
}

// OpenFileDialog asks for an ambience file and loops it. Cancelling the dialog
// is not an error.
func (p *Player) OpenFileDialog() error {
	if p.silent {
		return ErrSilent
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Open Rain Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select sound file: %w", err)
	}
	return p.LoadFile(filename)
}

// LoadFile decodes path and loops it in place of the generated noise.
func (p *Player) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound file: %w", err)
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return err
	}

	var src beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.rate {
		src = beep.Resample(4, format.SampleRate, p.rate, src)
	}

	p.lock()
	p.gain.Source = src
	prevStreamer, prevFile := p.streamer, p.currentFile
	p.streamer, p.currentFile = streamer, f
	p.unlock()

	closeQuietly(prevStreamer, prevFile)
	p.fileName = filepath.Base(path)
	log.Printf("Looping ambience file %s", path)
	return nil
}

// UseNoise drops any loaded file and goes back to generated noise.
func (p *Player) UseNoise() {
	p.lock()
	p.gain.Source = p.noise
	prevStreamer, prevFile := p.streamer, p.currentFile
	p.streamer, p.currentFile = nil, nil
	p.unlock()

	closeQuietly(prevStreamer, prevFile)
	p.fileName = ""
}

// Close stops playback and releases the loaded file.
func (p *Player) Close() {
	if !p.silent {
		speaker.Clear()
	}
	closeQuietly(p.streamer, p.currentFile)
	p.streamer, p.currentFile = nil, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", ext, err)
	}
	return streamer, format, nil
}

func closeQuietly(s beep.StreamSeekCloser, f *os.File) {
	if s != nil {
		_ = s.Close()
	}
	if f != nil {
		_ = f.Close()
	}
}
