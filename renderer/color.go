package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/components"
)

// RGBA converts a particle color and an alpha in [0, 1] to a raylib color.
func RGBA(c components.Color, alpha float64) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: alphaByte(alpha)}
}

func alphaByte(alpha float64) uint8 {
	switch {
	case alpha <= 0:
		return 0
	case alpha >= 1:
		return 255
	default:
		return uint8(alpha*255 + 0.5)
	}
}

// pixel rounds a coordinate to the nearest pixel, for raylib calls that only
// take integer positions.
func pixel(v float64) int32 {
	return int32(math.Round(v))
}
