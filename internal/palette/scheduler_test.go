package palette

import (
	"testing"
	"time"

	"github.com/iburimskiy/raindrop/internal/config"
)

const interval = config.ColorInterval

func TestSchedulerInitialState(t *testing.T) {
	s := NewScheduler(interval)
	if s.Mode() != Auto || s.Current() != Night {
		t.Fatalf("initial state = %v/%v, want Auto/Night", s.Mode(), s.Current())
	}
	if s.Status() != "ON" {
		t.Errorf("status = %q, want ON", s.Status())
	}
	if s.Palette() != Get(Night) {
		t.Errorf("palette is not night")
	}
}

func TestSchedulerAutoFlips(t *testing.T) {
	s := NewScheduler(interval)

	if !s.Update(0) || s.Current() != Day {
		t.Fatalf("first update should flip to day, got %v", s.Current())
	}
	if s.Update(interval - time.Millisecond) {
		t.Error("flipped before interval elapsed")
	}
	if !s.Update(interval) || s.Current() != Night {
		t.Errorf("second flip should give night, got %v", s.Current())
	}
	if !s.Update(2*interval) || s.Current() != Day {
		t.Errorf("third flip should give day, got %v", s.Current())
	}
	if next, ok := s.Next(); !ok || next != 3*interval {
		t.Errorf("Next() = %v,%v want %v,true", next, ok, 3*interval)
	}
}

func TestSchedulerLateUpdateDoesNotBurst(t *testing.T) {
	s := NewScheduler(interval)
	s.Update(0)
	if !s.Update(5 * interval) {
		t.Fatal("expected a flip")
	}
	if s.Update(5*interval + time.Second) {
		t.Error("late update should flip once, not catch up")
	}
	if next, _ := s.Next(); next != 6*interval {
		t.Errorf("next = %v, want %v", next, 6*interval)
	}
}

func TestSchedulerManualStopsFlips(t *testing.T) {
	s := NewScheduler(interval)
	s.Update(0)
	s.Update(interval) // night

	s.SetManual(Day)
	if s.Mode() != Manual || s.Current() != Day {
		t.Fatalf("state = %v/%v, want Manual/Day", s.Mode(), s.Current())
	}
	if s.Status() != "OFF" {
		t.Errorf("status = %q, want OFF", s.Status())
	}
	if _, ok := s.Next(); ok {
		t.Error("flip still pending after manual request")
	}
	if s.Progress(interval) != 0 {
		t.Errorf("progress = %v, want 0", s.Progress(interval))
	}

	for now := interval; now <= 4*interval; now += 500 * time.Millisecond {
		if s.Update(now) {
			t.Fatalf("automatic flip at %v while manual", now)
		}
	}
	if s.Current() != Day {
		t.Errorf("palette changed to %v", s.Current())
	}
}

func TestSchedulerManualIdempotent(t *testing.T) {
	s := NewScheduler(interval)
	s.SetManual(Night)
	s.SetManual(Night)
	if s.Current() != Night || s.Mode() != Manual {
		t.Errorf("state = %v/%v, want Manual/Night", s.Mode(), s.Current())
	}
	s.SetManual(Day)
	s.SetManual(Day)
	if s.Current() != Day {
		t.Errorf("palette = %v, want day", s.Current())
	}
}

func TestSchedulerEnableAuto(t *testing.T) {
	s := NewScheduler(interval)
	s.Update(0)
	s.SetManual(Night)

	now := 3 * time.Second
	s.EnableAuto(now)
	if s.Mode() != Auto || s.Status() != "ON" {
		t.Fatalf("mode = %v, want Auto", s.Mode())
	}
	if s.Current() != Night {
		t.Errorf("enabling auto should not flip immediately, got %v", s.Current())
	}
	if s.Update(now + interval - time.Millisecond) {
		t.Error("flipped early")
	}
	if !s.Update(now+interval) || s.Current() != Day {
		t.Errorf("expected flip to day one interval later, got %v", s.Current())
	}

	// Enabling while already automatic changes nothing.
	next, _ := s.Next()
	s.EnableAuto(now + interval + time.Second)
	if n, _ := s.Next(); n != next {
		t.Errorf("next moved from %v to %v", next, n)
	}
}

func TestSchedulerProgressAlternates(t *testing.T) {
	s := NewScheduler(interval)
	s.Update(0)

	if p := s.Progress(0); p != 0 {
		t.Errorf("progress at flip = %v, want 0", p)
	}
	if p := s.Progress(interval / 2); p != 0.5 {
		t.Errorf("progress halfway = %v, want 0.5", p)
	}
	if p := s.Progress(interval); p != 1 {
		t.Errorf("progress at end = %v, want 1", p)
	}

	// The next flip drains the bar back to zero.
	s.Update(interval)
	if p := s.Progress(interval + interval/4); p != 0.75 {
		t.Errorf("progress while draining = %v, want 0.75", p)
	}
	if p := s.Progress(2 * interval); p != 0 {
		t.Errorf("progress after drain = %v, want 0", p)
	}
}

func TestPaletteColors(t *testing.T) {
	day, night := Get(Day), Get(Night)
	if day.Rain.Hex() != config.DayRain || day.Background.Hex() != config.DayBackground {
		t.Errorf("day = %s/%s", day.Background.Hex(), day.Rain.Hex())
	}
	if night.Rain.Hex() != config.NightRain || night.Background.Hex() != config.NightBackground {
		t.Errorf("night = %s/%s", night.Background.Hex(), night.Rain.Hex())
	}
	if c := WithAlpha(night.Rain, 0.3); c.R != 255 || c.A != 77 {
		t.Errorf("WithAlpha = %+v", c)
	}
	if Day.Other() != Night || Night.Other() != Day {
		t.Error("Other() is not an involution")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if c := WithAlpha(Get(Day).Rain, 7); c.A != 255 {
		t.Errorf("WithAlpha did not clamp: %+v", c)
	}
}
