package ui

import (
	"testing"

	"github.com/pthm-cable/glowfield/theme"
)

func TestHUDActionsAny(t *testing.T) {
	if (HUDActions{}).Any() {
		t.Error("empty actions should report none")
	}
	for _, a := range []HUDActions{{ToggleTheme: true}, {ToggleRevert: true}, {Restart: true}} {
		if !a.Any() {
			t.Errorf("%+v should report an action", a)
		}
	}
}

func TestStyleForTheme(t *testing.T) {
	light, dark := StyleFor(theme.Light), StyleFor(theme.Dark)
	if light.PanelBg == dark.PanelBg || light.ValueColor == dark.ValueColor {
		t.Error("light and dark styles should differ")
	}
	// Text stays readable against its panel
	if luma(light.ValueColor.R, light.ValueColor.G, light.ValueColor.B) >= luma(light.PanelBg.R, light.PanelBg.G, light.PanelBg.B) {
		t.Error("light style should use dark text on a light panel")
	}
	if luma(dark.ValueColor.R, dark.ValueColor.G, dark.ValueColor.B) <= luma(dark.PanelBg.R, dark.PanelBg.G, dark.PanelBg.B) {
		t.Error("dark style should use light text on a dark panel")
	}
}

func TestHUDToggle(t *testing.T) {
	h := NewHUD(10, 10, 220)
	if !h.IsVisible() {
		t.Fatal("HUD starts visible")
	}
	if h.Toggle() || h.IsVisible() {
		t.Error("expected HUD hidden after toggle")
	}
	if h.Contains(20, 20) {
		t.Error("hidden HUD should not capture clicks")
	}
}

func luma(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}
