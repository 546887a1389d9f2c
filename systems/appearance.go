package systems

import (
	"math"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

// RenderParams holds the pulse and glow parameters used when drawing.
type RenderParams struct {
	GlowScale    float64
	CoreAlpha    float64
	PulseRadius  float64
	PulseOpacity float64
}

// RenderParamsFrom extracts render parameters from config.
func RenderParamsFrom(cfg *config.Config) RenderParams {
	return RenderParams{
		GlowScale:    cfg.Render.GlowScale,
		CoreAlpha:    cfg.Render.CoreAlpha,
		PulseRadius:  cfg.Render.PulseRadius,
		PulseOpacity: cfg.Render.PulseOpacity,
	}
}

// Pulsed returns the radius and opacity to draw with at the current phase.
// Opacity never goes below zero.
func Pulsed(g components.Glow, pulse components.Pulse, p RenderParams) (radius, opacity float64) {
	s := math.Sin(pulse.Phase)
	radius = g.Radius + s*p.PulseRadius
	opacity = math.Max(0, g.Opacity+s*p.PulseOpacity)
	return radius, opacity
}
