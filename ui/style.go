package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/theme"
)

// Style holds HUD colors and metrics.
type Style struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	WarnColor   rl.Color
	Padding     int32
	LineHeight  int32
	LabelWidth  int32
	FontSize    int32
	TitleSize   int32
}

// StyleFor returns the HUD style matching the page theme.
func StyleFor(t theme.Theme) Style {
	s := Style{
		WarnColor:  rl.Color{R: 245, G: 158, B: 11, A: 255},
		Padding:    10,
		LineHeight: 18,
		LabelWidth: 80,
		FontSize:   14,
		TitleSize:  18,
	}
	if t == theme.Dark {
		s.PanelBg = rl.Color{R: 30, G: 41, B: 59, A: 220}
		s.PanelBorder = rl.Color{R: 71, G: 85, B: 105, A: 255}
		s.LabelColor = rl.Color{R: 148, G: 163, B: 184, A: 255}
		s.ValueColor = rl.Color{R: 241, G: 245, B: 249, A: 255}
	} else {
		s.PanelBg = rl.Color{R: 255, G: 255, B: 255, A: 220}
		s.PanelBorder = rl.Color{R: 203, G: 213, B: 225, A: 255}
		s.LabelColor = rl.Color{R: 100, G: 116, B: 139, A: 255}
		s.ValueColor = rl.Color{R: 15, G: 23, B: 42, A: 255}
	}
	return s
}

// DrawPanel draws a panel background with border.
func (s Style) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, s.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, s.PanelBorder)
}

// DrawLabelValue draws a label and value on the same line and returns the next Y.
func (s Style) DrawLabelValue(x, y int32, label, value string, valueColor rl.Color) int32 {
	rl.DrawText(label, x, y, s.FontSize, s.LabelColor)
	rl.DrawText(value, x+s.LabelWidth, y, s.FontSize, valueColor)
	return y + s.LineHeight
}
