// Package headless provides a graphics-free host for the particle field.
package headless

import (
	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/field"
)

// Container is a fixed-size region that can be resized by hand.
type Container struct {
	w, h     float64
	attached *Surface
}

// NewContainer creates a w×h container.
func NewContainer(w, h float64) *Container {
	return &Container{w: w, h: h}
}

// Bounds returns the current size.
func (c *Container) Bounds() (float64, float64) {
	return c.w, c.h
}

// SetBounds changes the size. Callers notify the field with Resize.
func (c *Container) SetBounds(w, h float64) {
	c.w, c.h = w, h
}

// Attach creates a counting surface.
func (c *Container) Attach(w, h int) (field.Surface, error) {
	c.attached = &Surface{Width: w, Height: h, Opacity: 1}
	return c.attached, nil
}

// Detach releases the surface.
func (c *Container) Detach(s field.Surface) {
	if hs, ok := s.(*Surface); ok && hs == c.attached {
		c.attached = nil
	}
}

// Surface returns the attached surface, or nil.
func (c *Container) Surface() *Surface {
	return c.attached
}

// Surface counts draw calls instead of drawing.
type Surface struct {
	Width, Height int
	Opacity       float64

	Frames int
	Glows  int
	Discs  int
	Lines  int
}

func (s *Surface) Begin() {}

func (s *Surface) Glow(x, y, radius float64, c components.Color, alpha float64) {
	s.Glows++
}

func (s *Surface) Disc(x, y, radius float64, c components.Color, alpha float64) {
	s.Discs++
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c components.Color, alpha float64) {
	s.Lines++
}

func (s *Surface) End() {
	s.Frames++
}

func (s *Surface) Resize(w, h int) {
	s.Width, s.Height = w, h
}

func (s *Surface) SetOpacity(alpha float64) {
	s.Opacity = alpha
}

var _ field.Container = (*Container)(nil)
