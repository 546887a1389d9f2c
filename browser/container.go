package browser

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pthm-cable/glowfield/field"
)

// Container hosts the field in the game screen. Its size follows Layout.
type Container struct {
	w, h    int
	glow    *ebiten.Image
	current *Surface
}

// NewContainer creates a container of the given initial size.
func NewContainer(w, h int) *Container {
	return &Container{w: w, h: h}
}

// Bounds returns the last layout size.
func (c *Container) Bounds() (float64, float64) {
	return float64(c.w), float64(c.h)
}

// SetBounds records a layout size and reports whether it changed.
func (c *Container) SetBounds(w, h int) bool {
	if w == c.w && h == c.h {
		return false
	}
	c.w, c.h = w, h
	return true
}

// Contains reports whether a screen position lies inside the container.
func (c *Container) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// Attach allocates an offscreen surface. The glow sprite is baked on first use.
func (c *Container) Attach(w, h int) (field.Surface, error) {
	if c.glow == nil {
		c.glow = newGlowImage()
	}
	if c.current != nil {
		c.current.Deallocate()
	}
	c.current = NewSurface(w, h, c.glow)
	return c.current, nil
}

// Detach frees the surface.
func (c *Container) Detach(s field.Surface) {
	bs, ok := s.(*Surface)
	if !ok {
		return
	}
	bs.Deallocate()
	if bs == c.current {
		c.current = nil
	}
}

// Composite draws the attached surface, if any.
func (c *Container) Composite(dst *ebiten.Image) {
	if c.current != nil {
		c.current.Composite(dst)
	}
}
