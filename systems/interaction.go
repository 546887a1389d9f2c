package systems

import (
	"math"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

// PointerParams holds pointer interaction parameters.
type PointerParams struct {
	Radius     float64
	Attraction float64
}

// PointerParamsFrom extracts pointer parameters from config.
func PointerParamsFrom(cfg *config.Config) PointerParams {
	return PointerParams{
		Radius:     cfg.Pointer.Radius,
		Attraction: cfg.Pointer.Attraction,
	}
}

// Attract pulls a particle toward the pointer at (px, py).
// The pull falls off linearly from the pointer to the edge of the radius.
// Returns true when the particle is within the radius, including when it sits
// exactly on the pointer (no pull is applied then).
func Attract(pos components.Position, vel *components.Velocity, px, py float64, p PointerParams) bool {
	dx, dy, d := distance(pos.X, pos.Y, px, py)
	if d >= p.Radius {
		return false
	}
	if d > 0 {
		force := (p.Radius - d) / p.Radius
		vel.X += dx / d * force * p.Attraction
		vel.Y += dy / d * force * p.Attraction
	}
	return true
}

// BurstVelocity returns the velocity of the i-th of count particles fanned
// evenly around a full turn, starting at angle 0.
func BurstVelocity(i, count int, speed float64) components.Velocity {
	if count <= 0 {
		return components.Velocity{}
	}
	angle := 2 * math.Pi / float64(count) * float64(i)
	return components.Velocity{
		X: math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
}
