package browser

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pthm-cable/glowfield/components"
)

// spriteSize is the diameter of the baked glow sprite in pixels.
const spriteSize = 128

// GlowSprite bakes a white disc of the given diameter whose alpha falls
// linearly from 1 in the middle to 0 at the rim.
func GlowSprite(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			a := 1 - math.Hypot(dx, dy)/r
			if a <= 0 {
				continue
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)})
		}
	}
	return img
}

func newGlowImage() *ebiten.Image {
	return ebiten.NewImageFromImage(GlowSprite(spriteSize))
}

// NRGBA converts a field color and an alpha in [0, 1].
func NRGBA(c components.Color, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(alpha)}
}

func alphaByte(alpha float64) uint8 {
	switch {
	case alpha <= 0:
		return 0
	case alpha >= 1:
		return 255
	}
	return uint8(alpha*255 + 0.5)
}
