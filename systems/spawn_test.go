package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

func TestNewParticle_Ranges(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))
	b := Bounds{Width: 800, Height: 600}
	palette := PaletteFrom(cfg.Palette)
	spawn := SpawnParamsFrom(cfg)

	allowed := make(map[[3]uint8]bool)
	for _, c := range palette {
		allowed[[3]uint8{c.R, c.G, c.B}] = true
	}

	for i := 0; i < 2000; i++ {
		p := NewParticle(rng, b, palette, spawn)

		if p.Position.X < 0 || p.Position.X >= 800 || p.Position.Y < 0 || p.Position.Y >= 600 {
			t.Fatalf("position (%v, %v) outside surface", p.Position.X, p.Position.Y)
		}
		if math.Abs(p.Velocity.X) > 0.25 || math.Abs(p.Velocity.Y) > 0.25 {
			t.Fatalf("velocity (%v, %v) outside ±0.25", p.Velocity.X, p.Velocity.Y)
		}
		if p.Radius < 1 || p.Radius >= 3 {
			t.Fatalf("radius %v outside [1, 3)", p.Radius)
		}
		if p.Opacity < 0.1 || p.Opacity >= 0.6 {
			t.Fatalf("opacity %v outside [0.1, 0.6)", p.Opacity)
		}
		if p.Speed < 0.02 || p.Speed >= 0.04 {
			t.Fatalf("pulse speed %v outside [0.02, 0.04)", p.Speed)
		}
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Fatalf("phase %v outside [0, 2π)", p.Phase)
		}
		if !allowed[[3]uint8{p.Color.R, p.Color.G, p.Color.B}] {
			t.Fatalf("color %+v not in palette", p.Color)
		}
		if p.Color != p.Own {
			t.Fatalf("fresh particle color %+v differs from own color %+v", p.Color, p.Own)
		}
	}
}

func TestNewParticle_Uniform(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(99))
	b := Bounds{Width: 1, Height: 1}
	palette := PaletteFrom(cfg.Palette)
	spawn := SpawnParamsFrom(cfg)

	const n = 20000
	xs := make([]float64, n)
	colorCounts := make(map[[3]uint8]int)
	for i := range xs {
		p := NewParticle(rng, b, palette, spawn)
		xs[i] = p.Position.X
		colorCounts[[3]uint8{p.Color.R, p.Color.G, p.Color.B}]++
	}

	// U(0,1): mean 1/2, variance 1/12
	if mean := stat.Mean(xs, nil); math.Abs(mean-0.5) > 0.01 {
		t.Errorf("expected mean ~0.5, got %v", mean)
	}
	if v := stat.Variance(xs, nil); math.Abs(v-1.0/12) > 0.005 {
		t.Errorf("expected variance ~%v, got %v", 1.0/12, v)
	}

	// Every palette entry is picked roughly n/5 times
	for c, count := range colorCounts {
		share := float64(count) / n
		if math.Abs(share-0.2) > 0.02 {
			t.Errorf("color %v picked with share %v, expected ~0.2", c, share)
		}
	}
	if len(colorCounts) != len(palette) {
		t.Errorf("expected all %d colors used, got %d", len(palette), len(colorCounts))
	}
}

func TestPulsed(t *testing.T) {
	p := RenderParamsFrom(config.Default())

	cases := []struct {
		name        string
		radius      float64
		opacity     float64
		phase       float64
		wantRadius  float64
		wantOpacity float64
	}{
		{"zero phase", 2, 0.3, 0, 2, 0.3},
		{"peak", 2, 0.3, math.Pi / 2, 2.5, 0.4},
		{"trough", 2, 0.3, -math.Pi / 2, 1.5, 0.2},
		{"floored", 1, 0.05, -math.Pi / 2, 0.5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := components.Glow{Radius: tc.radius, Opacity: tc.opacity}
			r, o := Pulsed(g, components.Pulse{Phase: tc.phase}, p)
			if math.Abs(r-tc.wantRadius) > 1e-9 {
				t.Errorf("radius = %v, want %v", r, tc.wantRadius)
			}
			if math.Abs(o-tc.wantOpacity) > 1e-9 {
				t.Errorf("opacity = %v, want %v", o, tc.wantOpacity)
			}
		})
	}
}
