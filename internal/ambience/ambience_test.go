package ambience

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/raindrop/internal/config"
)

// constStreamer yields the same stereo sample forever.
type constStreamer struct{ v float64 }

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{c.v, c.v}
	}
	return len(samples), true
}

func (c constStreamer) Err() error { return nil }

// countingStreamer yields 0, 1, 2, ... on both channels.
type countingStreamer struct{ n float64 }

func (c *countingStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{c.n, c.n}
		c.n++
	}
	return len(samples), true
}

func (c *countingStreamer) Err() error { return nil }

func TestRainNoiseRange(t *testing.T) {
	noise := newRainNoise(rand.New(rand.NewPCG(1, 2)), config.NoiseSmoothing)
	samples := make([][2]float64, 4096)
	n, ok := noise.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = %d,%v", n, ok)
	}
	var energy float64
	for i, s := range samples {
		for ch := 0; ch < 2; ch++ {
			if s[ch] < -1 || s[ch] > 1 {
				t.Fatalf("sample %d ch %d out of range: %f", i, ch, s[ch])
			}
			energy += s[ch] * s[ch]
		}
	}
	if energy == 0 {
		t.Error("noise is silent")
	}
	if noise.Err() != nil {
		t.Errorf("unexpected error: %v", noise.Err())
	}
}

func TestIntensityGain(t *testing.T) {
	g := newIntensityGain(constStreamer{v: 0.8})
	samples := make([][2]float64, 16)

	g.Stream(samples)
	for _, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("zero intensity produced %v", s)
		}
	}

	g.Set(0.5)
	g.Stream(samples)
	if math.Abs(samples[0][0]-0.4) > 1e-12 {
		t.Errorf("half intensity gave %v, want 0.4", samples[0][0])
	}

	g.Set(3)
	if g.Get() != 1 {
		t.Errorf("intensity not clamped: %v", g.Get())
	}
	g.Set(-1)
	if g.Get() != 0 {
		t.Errorf("intensity not clamped: %v", g.Get())
	}
}

func TestLevelTapSnapshot(t *testing.T) {
	tap := newLevelTap(&countingStreamer{}, 8)
	buf := make([][2]float64, 5)
	tap.Stream(buf)
	tap.Stream(buf) // 10 samples through a ring of 8

	got := tap.snapshot(3)
	want := []float64{7, 8, 9}
	for i := range want {
		if got[i][0] != want[i] {
			t.Errorf("snapshot[%d] = %v, want %v", i, got[i][0], want[i])
		}
	}
	if all := tap.snapshot(100); len(all) != 8 || all[0][0] != 2 || all[7][0] != 9 {
		t.Errorf("full snapshot = %v", all)
	}
}

func TestLevelTapLevel(t *testing.T) {
	tap := newLevelTap(constStreamer{v: 0.5}, 64)
	if l := tap.level(64); l != 0 {
		t.Errorf("level before any audio = %v", l)
	}
	tap.Stream(make([][2]float64, 64))
	if l := tap.level(64); math.Abs(l-0.5) > 1e-12 {
		t.Errorf("level = %v, want 0.5", l)
	}
}

func TestPlayerSilentByDefault(t *testing.T) {
	p := NewPlayer(0.5)
	if !p.Silent() {
		t.Fatal("player should be silent before Start")
	}
	if err := p.OpenFileDialog(); err != ErrSilent {
		t.Errorf("OpenFileDialog while silent = %v, want ErrSilent", err)
	}
	p.ToggleMute()
	if !p.Muted() {
		t.Error("ToggleMute did not mute")
	}
	p.SetIntensity(0.25)
	if p.gain.Get() != 0.25 {
		t.Errorf("intensity = %v", p.gain.Get())
	}
}

func TestPlayerLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: config.AmbienceSampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(256, constStreamer{v: 0.5}), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_ = f.Close()

	p := NewPlayer(0.5)
	defer p.Close()
	if err := p.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.FileName() != "rain.wav" {
		t.Errorf("FileName = %q", p.FileName())
	}

	p.SetIntensity(1)
	samples := make([][2]float64, 512) // longer than the file, so it must loop
	n, ok := p.gain.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = %d,%v", n, ok)
	}
	if math.Abs(samples[400][0]-0.5) > 0.01 {
		t.Errorf("looped sample = %v, want about 0.5", samples[400][0])
	}

	p.UseNoise()
	if p.FileName() != "" || p.gain.Source != beep.Streamer(p.noise) {
		t.Error("UseNoise did not restore generated noise")
	}
}

func TestPlayerLoadFileErrors(t *testing.T) {
	p := NewPlayer(0.5)
	if err := p.LoadFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "rain.ogg")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.LoadFile(path); err == nil {
		t.Error("expected error for unsupported type")
	}
	if p.gain.Source != beep.Streamer(p.noise) {
		t.Error("failed load replaced the noise source")
	}
}

func TestNewVolume(t *testing.T) {
	if v := newVolume(constStreamer{}, 0); !v.Silent {
		t.Error("zero volume should be silent")
	}
	if v := newVolume(constStreamer{}, 0.5); v.Silent || v.Volume != -1 {
		t.Errorf("half volume = %+v", v)
	}
}
