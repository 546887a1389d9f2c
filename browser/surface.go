package browser

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/field"
)

// Surface draws the field into an offscreen image composited onto the
// screen every Draw.
type Surface struct {
	img     *ebiten.Image
	glow    *ebiten.Image
	opacity float32
}

// NewSurface allocates a w×h offscreen image.
func NewSurface(w, h int, glow *ebiten.Image) *Surface {
	return &Surface{
		img:     ebiten.NewImage(max(w, 1), max(h, 1)),
		glow:    glow,
		opacity: 1,
	}
}

// Begin clears the image to transparent.
func (s *Surface) Begin() {
	s.img.Clear()
}

// Glow draws the baked sprite scaled to the radius and tinted with c.
func (s *Surface) Glow(x, y, radius float64, c components.Color, alpha float64) {
	scale := 2 * radius / spriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteSize/2, -spriteSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.glow, op)
}

// Disc draws a solid circle.
func (s *Surface) Disc(x, y, radius float64, c components.Color, alpha float64) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), NRGBA(c, alpha), true)
}

// Line draws a segment.
func (s *Surface) Line(x0, y0, x1, y1, width float64, c components.Color, alpha float64) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), NRGBA(c, alpha), true)
}

// End is a no-op; the image is read at composite time.
func (s *Surface) End() {}

// Resize reallocates the image. Contents are discarded.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
}

// SetOpacity sets the compositing opacity.
func (s *Surface) SetOpacity(alpha float64) {
	s.opacity = float32(alpha)
}

// Composite draws the image onto dst at the origin.
func (s *Surface) Composite(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(s.opacity)
	dst.DrawImage(s.img, op)
}

// Deallocate frees the image.
func (s *Surface) Deallocate() {
	s.img.Deallocate()
}

var _ field.Surface = (*Surface)(nil)
