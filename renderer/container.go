package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/field"
)

// WindowContainer hosts the field in the raylib window, either the whole
// window or a fixed panel inside it.
type WindowContainer struct {
	current *Surface

	// Panel placement; zero size means the whole window
	x, y float32
	w, h int
}

// NewWindowContainer creates a container sized to the window.
func NewWindowContainer() *WindowContainer {
	return &WindowContainer{}
}

// NewPanelContainer creates a w×h container drawn at (x, y).
func NewPanelContainer(x, y float32, w, h int) *WindowContainer {
	return &WindowContainer{x: x, y: y, w: w, h: h}
}

// Bounds returns the panel size, or the window size.
func (c *WindowContainer) Bounds() (float64, float64) {
	if c.w > 0 && c.h > 0 {
		return float64(c.w), float64(c.h)
	}
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

// Origin returns the screen position of the container's top-left corner.
func (c *WindowContainer) Origin() (float32, float32) {
	return c.x, c.y
}

// Attach allocates a render-texture surface.
func (c *WindowContainer) Attach(w, h int) (field.Surface, error) {
	if c.current != nil {
		c.current.Unload()
	}
	c.current = NewSurface(w, h)
	return c.current, nil
}

// Detach frees the surface.
func (c *WindowContainer) Detach(s field.Surface) {
	rs, ok := s.(*Surface)
	if !ok {
		return
	}
	rs.Unload()
	if rs == c.current {
		c.current = nil
	}
}

// Composite draws the attached surface, if any, over whatever is on screen.
func (c *WindowContainer) Composite() {
	if c.current != nil {
		c.current.Composite(c.x, c.y)
	}
}

// Unload frees any surface still attached.
func (c *WindowContainer) Unload() {
	if c.current != nil {
		c.current.Unload()
		c.current = nil
	}
}
