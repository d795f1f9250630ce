// Package slider maps horizontal pointer drags on a track to bounded integers.
package slider

import "math"

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

func (r Range) clamp(v int) int {
	return min(max(v, r.Min), r.Max)
}

// ValueAt maps a handle offset px on a track of width trackWidth to a value in
// r. The result is rounded and clamped to r.
func ValueAt(px, trackWidth float64, r Range) int {
	if trackWidth <= 0 {
		return r.Min
	}
	v := float64(r.Min) + px*float64(r.Max-r.Min)/trackWidth
	return r.clamp(int(math.Round(v)))
}

// PositionOf is the inverse of ValueAt: the handle offset showing value.
func PositionOf(value int, trackWidth float64, r Range) float64 {
	if r.Max == r.Min {
		return 0
	}
	return float64(r.clamp(value)-r.Min) / float64(r.Max-r.Min) * trackWidth
}

// Slider is one draggable control. X, Y and Width describe the track; the handle
// is centered on the track at its current offset.
type Slider struct {
	Label        string
	X, Y         float64
	Width        float64
	Height       float64
	HandleWidth  float64
	Range        Range
	OnChange     func(int)
	value        int
	handleOffset float64
	dragging     bool
	lastX        float64
}

// New places the handle at value.
func New(label string, x, y, width, height, handleWidth float64, r Range, value int, onChange func(int)) *Slider {
	s := &Slider{
		Label:       label,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		HandleWidth: handleWidth,
		Range:       r,
		OnChange:    onChange,
	}
	s.Set(value)
	return s
}

// Set moves the handle without calling OnChange.
func (s *Slider) Set(value int) {
	s.value = s.Range.clamp(value)
	s.handleOffset = PositionOf(s.value, s.Width, s.Range)
}

func (s *Slider) Value() int { return s.value }
func (s *Slider) Dragging() bool { return s.dragging }
func (s *Slider) HandleX() float64 { return s.X + s.handleOffset }
func (s *Slider) HandleOffset() float64 { return s.handleOffset }

// OnHandle reports whether (x, y) is over the handle.
func (s *Slider) OnHandle(x, y float64) bool {
	hx := s.HandleX()
	return x >= hx-s.HandleWidth/2 && x <= hx+s.HandleWidth/2 &&
		y >= s.Y && y <= s.Y+s.Height
}

// inArea is the region the pointer must stay in while dragging.
func (s *Slider) inArea(x, y float64) bool {
	return x >= s.X-s.HandleWidth && x <= s.X+s.Width+s.HandleWidth &&
		y >= s.Y-s.Height && y <= s.Y+2*s.Height
}

// Press arms dragging when the pointer goes down on the handle.
func (s *Slider) Press(x, y float64) bool {
	if !s.OnHandle(x, y) {
		return false
	}
	s.dragging = true
	s.lastX = x
	return true
}

// Move follows the pointer while armed. Leaving the slider area disarms.
func (s *Slider) Move(x, y float64) {
	if !s.dragging {
		return
	}
	if !s.inArea(x, y) {
		s.dragging = false
		return
	}
	delta := x - s.lastX
	s.lastX = x
	if delta == 0 {
		return
	}
	s.handleOffset = math.Min(math.Max(s.handleOffset+delta, 0), s.Width)
	v := ValueAt(s.handleOffset, s.Width, s.Range)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Release disarms dragging.
func (s *Slider) Release() {
	s.dragging = false
}
