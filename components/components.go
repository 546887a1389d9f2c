// Package components defines ECS components for the particle field.
package components

import "github.com/pthm-cable/glowfield/config"

// Position represents a particle's surface position.
type Position struct {
	X, Y float64
}

// Velocity represents a particle's per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Color is an RGB triple. Alpha is supplied when drawing.
type Color struct {
	R, G, B uint8
}

// ColorFrom converts a config color.
func ColorFrom(c config.ColorConfig) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// Glow holds a particle's appearance.
type Glow struct {
	Radius  float64 // Baseline radius before pulsing
	Opacity float64 // Baseline opacity before pulsing
	Color   Color   // Current color; pointer proximity may overwrite it
	Own     Color   // Color picked at creation
}

// Pulse drives the radius/opacity oscillation. Phase is never wrapped.
type Pulse struct {
	Phase float64
	Speed float64
}

// Particle is a flat copy of one particle's components.
// Used for spawning and for read-only snapshots.
type Particle struct {
	Position
	Velocity
	Glow
	Pulse
}
