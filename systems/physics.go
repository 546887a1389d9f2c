// Package systems contains the per-tick particle rules.
// Functions here operate on single components and hold no state.
package systems

import (
	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

// Bounds represents the drawing surface size.
type Bounds struct {
	Width, Height float64
}

// Center returns the surface midpoint.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}

// PhysicsParams holds motion parameters for Step.
type PhysicsParams struct {
	WrapMargin     float64
	MaxVelocity    float64
	CenterFraction float64
	CenterPull     float64
}

// PhysicsParamsFrom extracts motion parameters from config.
func PhysicsParamsFrom(cfg *config.Config) PhysicsParams {
	return PhysicsParams{
		WrapMargin:     cfg.Field.WrapMargin,
		MaxVelocity:    cfg.Field.MaxVelocity,
		CenterFraction: cfg.Field.CenterFraction,
		CenterPull:     cfg.Field.CenterPull,
	}
}

// Step advances one particle by one tick: move, pulse, wrap, pull toward
// center, clamp velocity.
func Step(pos *components.Position, vel *components.Velocity, pulse *components.Pulse, b Bounds, p PhysicsParams) {
	pos.X += vel.X
	pos.Y += vel.Y

	pulse.Phase += pulse.Speed

	// Axes wrap independently
	pos.X = Wrap(pos.X, b.Width, p.WrapMargin)
	pos.Y = Wrap(pos.Y, b.Height, p.WrapMargin)

	PullToCenter(*pos, vel, b, p)

	vel.X = ClampAxis(vel.X, p.MaxVelocity)
	vel.Y = ClampAxis(vel.Y, p.MaxVelocity)
}

// Wrap teleports a coordinate that left [-margin, bound+margin] to the opposite edge.
func Wrap(v, bound, margin float64) float64 {
	if v < -margin {
		return bound + margin
	}
	if v > bound+margin {
		return -margin
	}
	return v
}

// PullToCenter nudges the velocity toward the surface center once the particle
// is farther than CenterFraction of the surface width from it.
func PullToCenter(pos components.Position, vel *components.Velocity, b Bounds, p PhysicsParams) {
	cx, cy := b.Center()
	dx, dy, d := distance(pos.X, pos.Y, cx, cy)
	if d == 0 || d <= b.Width*p.CenterFraction {
		return
	}
	vel.X += dx / d * p.CenterPull
	vel.Y += dy / d * p.CenterPull
}
