package main

import "github.com/pthm-cable/glowfield/config"

// tunable is one slider bound to a config value.
type tunable struct {
	Label    string
	Min, Max float64
	Format   string
	Value    *float64
}

// tunables returns the sliders shown by the tuner, bound to cfg.
func tunables(cfg *config.Config) []tunable {
	return []tunable{
		{"Link distance", 50, 300, "%.0f", &cfg.Render.LinkDistance},
		{"Link opacity", 0, 0.5, "%.2f", &cfg.Render.LinkOpacity},
		{"Pointer radius", 20, 300, "%.0f", &cfg.Pointer.Radius},
		{"Attraction", 0, 0.05, "%.3f", &cfg.Pointer.Attraction},
		{"Center pull", 0, 0.01, "%.4f", &cfg.Field.CenterPull},
		{"Max velocity", 0.2, 4, "%.2f", &cfg.Field.MaxVelocity},
		{"Burst speed", 0.5, 6, "%.1f", &cfg.Burst.Speed},
		{"Glow scale", 1, 6, "%.1f", &cfg.Render.GlowScale},
	}
}

// set clamps v into the slider range and reports whether the value changed.
func (t tunable) set(v float64) bool {
	v = min(max(v, t.Min), t.Max)
	if v == *t.Value {
		return false
	}
	*t.Value = v
	return true
}
