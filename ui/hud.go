package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/theme"
)

// HUDData holds everything the HUD shows.
type HUDData struct {
	Title       string
	State       string
	Particles   int
	Links       int
	FPS         int32
	Restarts    int
	Dimmed      bool
	PointerOver bool
	Theme       theme.Theme
	Revert      bool
}

// HUDActions reports the buttons pressed this frame.
type HUDActions struct {
	ToggleTheme  bool
	ToggleRevert bool
	Restart      bool
}

// Any reports whether any action fired.
func (a HUDActions) Any() bool {
	return a.ToggleTheme || a.ToggleRevert || a.Restart
}

// HUD renders the stats panel and its buttons.
type HUD struct {
	x, y    int32
	width   int32
	visible bool
}

// NewHUD creates a HUD anchored at (x, y).
func NewHUD(x, y, width int32) *HUD {
	return &HUD{x: x, y: y, width: width, visible: true}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// IsVisible returns whether the HUD is shown.
func (h *HUD) IsVisible() bool {
	return h.visible
}

// Contains reports whether a screen point falls on the panel, so clicks
// there are not forwarded to the field.
func (h *HUD) Contains(x, y float32) bool {
	if !h.visible {
		return false
	}
	return rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, h.bounds())
}

func (h *HUD) bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(h.x), Y: float32(h.y), Width: float32(h.width), Height: float32(h.height())}
}

func (h *HUD) height() int32 {
	s := StyleFor(theme.Light)
	// Title, six rows, two button rows
	return s.Padding*2 + s.TitleSize + 6 + s.LineHeight*6 + 2*(28+6)
}

// Draw renders the HUD and returns the buttons pressed.
func (h *HUD) Draw(data HUDData) HUDActions {
	var actions HUDActions
	if !h.visible {
		return actions
	}

	s := StyleFor(data.Theme)
	s.DrawPanel(h.x, h.y, h.width, h.height())

	x := h.x + s.Padding
	y := h.y + s.Padding

	rl.DrawText(data.Title, x, y, s.TitleSize, s.ValueColor)
	y += s.TitleSize + 6

	stateColor := s.ValueColor
	if data.State != "active" {
		stateColor = s.WarnColor
	}
	y = s.DrawLabelValue(x, y, "State", data.State, stateColor)
	y = s.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Particles), s.ValueColor)
	y = s.DrawLabelValue(x, y, "Links", fmt.Sprintf("%d", data.Links), s.ValueColor)

	fpsColor := s.ValueColor
	fpsText := fmt.Sprintf("%d", data.FPS)
	if data.Dimmed {
		fpsColor = s.WarnColor
		fpsText += " (dimmed)"
	}
	y = s.DrawLabelValue(x, y, "FPS", fpsText, fpsColor)
	y = s.DrawLabelValue(x, y, "Restarts", fmt.Sprintf("%d", data.Restarts), s.ValueColor)
	y = s.DrawLabelValue(x, y, "Pointer", onOff(data.PointerOver, "over", "away"), s.ValueColor)

	bw := float32(h.width-s.Padding*3) / 2
	row := rl.Rectangle{X: float32(x), Y: float32(y), Width: bw, Height: 28}

	if gui.Button(row, onOff(data.Theme == theme.Dark, "Light theme", "Dark theme")) {
		actions.ToggleTheme = true
	}
	row.X += bw + float32(s.Padding)
	if gui.Button(row, "Restart") {
		actions.Restart = true
	}

	row.X = float32(x)
	row.Y += 28 + 6
	row.Width = bw*2 + float32(s.Padding)
	if gui.CheckBox(rl.Rectangle{X: row.X, Y: row.Y + 6, Width: 16, Height: 16}, "Revert highlight", data.Revert) != data.Revert {
		actions.ToggleRevert = true
	}

	return actions
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, t theme.Theme, controls string) {
	s := StyleFor(t)
	rl.DrawText(controls, 10, screenHeight-25, s.FontSize, s.LabelColor)
}

func onOff(b bool, on, off string) string {
	if b {
		return on
	}
	return off
}
