package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

// Palette is the fixed set of particle colors.
type Palette []components.Color

// PaletteFrom converts the configured palette.
func PaletteFrom(colors []config.ColorConfig) Palette {
	p := make(Palette, len(colors))
	for i, c := range colors {
		p[i] = components.ColorFrom(c)
	}
	return p
}

// Pick returns a uniformly chosen palette color.
func (p Palette) Pick(rng *rand.Rand) components.Color {
	return p[rng.Intn(len(p))]
}

// SpawnParams holds the baseline randomization ranges.
type SpawnParams struct {
	InitialSpeed  float64
	RadiusMin     float64
	RadiusMax     float64
	OpacityMin    float64
	OpacityMax    float64
	PulseSpeedMin float64
	PulseSpeedMax float64
}

// SpawnParamsFrom extracts spawn ranges from config.
func SpawnParamsFrom(cfg *config.Config) SpawnParams {
	f := cfg.Field
	return SpawnParams{
		InitialSpeed:  f.InitialSpeed,
		RadiusMin:     f.RadiusMin,
		RadiusMax:     f.RadiusMax,
		OpacityMin:    f.OpacityMin,
		OpacityMax:    f.OpacityMax,
		PulseSpeedMin: f.PulseSpeedMin,
		PulseSpeedMax: f.PulseSpeedMax,
	}
}

// NewParticle creates a particle with every field drawn uniformly from its range.
// Position covers [0, width) × [0, height).
func NewParticle(rng *rand.Rand, b Bounds, palette Palette, p SpawnParams) components.Particle {
	var pt components.Particle

	pt.Position = components.Position{
		X: rng.Float64() * b.Width,
		Y: rng.Float64() * b.Height,
	}
	pt.Velocity = components.Velocity{
		X: (rng.Float64() - 0.5) * p.InitialSpeed,
		Y: (rng.Float64() - 0.5) * p.InitialSpeed,
	}

	color := palette.Pick(rng)
	pt.Glow = components.Glow{
		Radius:  uniform(rng, p.RadiusMin, p.RadiusMax),
		Opacity: uniform(rng, p.OpacityMin, p.OpacityMax),
		Color:   color,
		Own:     color,
	}
	pt.Pulse = components.Pulse{
		Phase: rng.Float64() * 2 * math.Pi,
		Speed: uniform(rng, p.PulseSpeedMin, p.PulseSpeedMax),
	}

	return pt
}
