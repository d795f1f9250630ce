package game

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// button fires onClick when pressed and released while hovered.
type button struct {
	label   string
	rect    rect
	onClick func()

	hovered bool
	pressed bool
}

func (b *button) update(x, y float64, justPressed, justReleased bool) {
	b.hovered = b.rect.contains(x, y)
	if b.hovered && justPressed {
		b.pressed = true
	}
	if justReleased {
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
}
