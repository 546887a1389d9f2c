package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput polls window state, pointer and keyboard.
func (g *Game) handleInput() {
	g.handleVisibility()

	if rl.IsWindowResized() {
		g.stage.Resize()
	}

	// Pointer
	pos := rl.GetMousePosition()
	g.pointer.Update(g.stage, float64(pos.X), float64(pos.Y), rl.IsCursorOnScreen())
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.hud.Contains(pos.X, pos.Y) {
		g.stage.Click(float64(pos.X), float64(pos.Y))
	}

	// Keys
	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.toggleTheme()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.restart()
	}
	if rl.IsKeyPressed(rl.KeyV) {
		g.stage.SetVisible(!g.stage.Visible())
	}
}

// handleVisibility maps window minimize/hide onto stage visibility.
// Only changes in window state are forwarded so the V key can still
// simulate hiding.
func (g *Game) handleVisibility() {
	visible := !rl.IsWindowMinimized() && !rl.IsWindowHidden()
	if visible == g.visible {
		return
	}
	g.visible = visible
	g.stage.SetVisible(visible)
}

// restart rebuilds the field, logging a failure.
func (g *Game) restart() {
	if err := g.stage.Restart(); err != nil {
		slog.Error("restart failed", "error", err)
	}
}
