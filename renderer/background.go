package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/components"
)

// Background paints the hero backdrop: the theme color fading slightly
// toward the accent at the bottom edge.
type Background struct {
	base   components.Color
	accent components.Color
	mix    float64
}

// NewBackground creates a backdrop. mix is the accent share at the bottom.
func NewBackground(base, accent components.Color, mix float64) *Background {
	return &Background{base: base, accent: accent, mix: mix}
}

// SetBase changes the theme color.
func (b *Background) SetBase(c components.Color) {
	b.base = c
}

// Draw fills the window.
func (b *Background) Draw() {
	b.DrawRect(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

// DrawRect fills a w×h rectangle at (x, y).
func (b *Background) DrawRect(x, y, w, h int32) {
	top := RGBA(b.base, 1)
	bottom := RGBA(blend(b.base, b.accent, b.mix), 1)
	rl.DrawRectangleGradientV(x, y, w, h, top, bottom)
}

func blend(a, b components.Color, t float64) components.Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return components.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}
