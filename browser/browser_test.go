package browser

import (
	"testing"

	"github.com/pthm-cable/glowfield/components"
)

func TestGlowSprite(t *testing.T) {
	img := GlowSprite(64)

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("expected 64x64 sprite, got %dx%d", b.Dx(), b.Dy())
	}

	center := img.NRGBAAt(32, 32)
	if center.A < 240 {
		t.Errorf("expected near-opaque center, got alpha %d", center.A)
	}
	if center.R != 255 || center.G != 255 || center.B != 255 {
		t.Errorf("expected white sprite, got %v", center)
	}

	if corner := img.NRGBAAt(0, 0); corner.A != 0 {
		t.Errorf("expected transparent corner, got alpha %d", corner.A)
	}

	// Alpha falls off monotonically along a radius
	prev := uint8(255)
	for x := 32; x < 64; x++ {
		a := img.NRGBAAt(x, 32).A
		if a > prev {
			t.Errorf("alpha rose from %d to %d at x=%d", prev, a, x)
		}
		prev = a
	}
}

func TestNRGBA(t *testing.T) {
	c := components.Color{R: 59, G: 130, B: 246}

	tests := []struct {
		alpha float64
		want  uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		got := NRGBA(c, tt.alpha)
		if got.A != tt.want {
			t.Errorf("NRGBA(alpha=%v).A = %d, want %d", tt.alpha, got.A, tt.want)
		}
		if got.R != 59 || got.G != 130 || got.B != 246 {
			t.Errorf("NRGBA changed the color: %v", got)
		}
	}
}

func TestContainerBounds(t *testing.T) {
	c := NewContainer(800, 600)

	if w, h := c.Bounds(); w != 800 || h != 600 {
		t.Errorf("expected 800x600, got %vx%v", w, h)
	}
	if c.SetBounds(800, 600) {
		t.Error("same size should not report a change")
	}
	if !c.SetBounds(400, 300) {
		t.Error("new size should report a change")
	}
	if w, h := c.Bounds(); w != 400 || h != 300 {
		t.Errorf("expected 400x300, got %vx%v", w, h)
	}
}

func TestContainerContains(t *testing.T) {
	c := NewContainer(100, 50)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{99, 49, true},
		{100, 10, false},
		{10, 50, false},
		{-1, 10, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
