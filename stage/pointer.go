package stage

// PointerTarget receives pointer events.
type PointerTarget interface {
	PointerMove(x, y float64)
	PointerLeave()
}

// PointerTracker turns polled cursor state into move and leave events.
// Moves fire only when the cursor is inside and has moved (or just entered).
type PointerTracker struct {
	inside bool
	x, y   float64
}

// Update feeds the cursor state for one frame.
func (p *PointerTracker) Update(t PointerTarget, x, y float64, inside bool) {
	switch {
	case inside && (!p.inside || x != p.x || y != p.y):
		t.PointerMove(x, y)
	case !inside && p.inside:
		t.PointerLeave()
	}
	p.inside = inside
	p.x, p.y = x, y
}

// Inside reports whether the cursor was inside on the last update.
func (p *PointerTracker) Inside() bool {
	return p.inside
}
