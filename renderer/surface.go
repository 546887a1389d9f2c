package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/field"
)

// Surface draws the field into an offscreen render texture that is later
// composited over the background.
type Surface struct {
	target        rl.RenderTexture2D
	width, height int32
	opacity       float32
	loaded        bool
}

// NewSurface allocates a w×h render texture. Requires an open window.
func NewSurface(w, h int) *Surface {
	s := &Surface{opacity: 1}
	s.load(w, h)
	return s
}

func (s *Surface) load(w, h int) {
	// Zero-sized render textures are invalid
	s.width, s.height = int32(max(w, 1)), int32(max(h, 1))
	s.target = rl.LoadRenderTexture(s.width, s.height)
	s.loaded = true
}

// Begin starts drawing into the texture and clears it to transparent.
func (s *Surface) Begin() {
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Blank)
}

// Glow draws a radial gradient from c at alpha to transparent.
func (s *Surface) Glow(x, y, radius float64, c components.Color, alpha float64) {
	cx, cy := pixel(x), pixel(y)
	rl.DrawCircleGradient(cx, cy, float32(radius), RGBA(c, alpha), RGBA(c, 0))
}

// Disc draws a solid circle.
func (s *Surface) Disc(x, y, radius float64, c components.Color, alpha float64) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(radius), RGBA(c, alpha))
}

// Line draws a segment.
func (s *Surface) Line(x0, y0, x1, y1, width float64, c components.Color, alpha float64) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x0), Y: float32(y0)},
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		float32(width),
		RGBA(c, alpha),
	)
}

// End finishes drawing into the texture.
func (s *Surface) End() {
	rl.EndTextureMode()
}

// Resize reallocates the texture. Contents are discarded.
func (s *Surface) Resize(w, h int) {
	if int32(w) == s.width && int32(h) == s.height {
		return
	}
	s.Unload()
	s.load(w, h)
}

// SetOpacity sets the compositing opacity.
func (s *Surface) SetOpacity(alpha float64) {
	s.opacity = float32(alpha)
}

// Opacity returns the compositing opacity.
func (s *Surface) Opacity() float64 {
	return float64(s.opacity)
}

// Composite draws the texture at (x, y). Render textures are stored
// upside down, hence the negative source height.
func (s *Surface) Composite(x, y float32) {
	if !s.loaded {
		return
	}
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(s.width), Height: -float32(s.height)}
	rl.DrawTextureRec(s.target.Texture, src, rl.Vector2{X: x, Y: y}, rl.Fade(rl.White, s.opacity))
}

// Unload frees the texture.
func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}

var _ field.Surface = (*Surface)(nil)
