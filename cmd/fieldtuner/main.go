// Field tuner - live particle field preview with sliders.
//
// Usage: go run ./cmd/fieldtuner [-config config.yaml] [-out tuned.yaml]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
	"github.com/pthm-cable/glowfield/renderer"
	"github.com/pthm-cable/glowfield/stage"
	"github.com/pthm-cable/glowfield/theme"
)

const (
	windowWidth   = 1100
	windowHeight  = 560
	previewWidth  = 720
	previewHeight = 540
	previewX      = 10
	previewY      = 10
	panelWidth    = windowWidth - previewWidth - 30
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "tuned.yaml", "Where S writes the tuned config")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Field Tuner")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	container := renderer.NewPanelContainer(previewX, previewY, previewWidth, previewHeight)
	defer container.Unload()

	sched := clock.NewScheduler(clock.NewReal())
	st := stage.New(container, sched, cfg, stage.WithSeed(time.Now().UnixNano()))
	defer st.Unload()
	if err := st.Start(); err != nil {
		slog.Error("failed to start field", "error", err)
		return
	}

	sliders := tunables(cfg)
	background := renderer.NewBackground(
		theme.Parse(cfg.Theme.Default).Background(cfg.Theme),
		components.ColorFrom(cfg.Render.LinkColor),
		0.06,
	)

	var pointer stage.PointerTracker
	dirty := false
	status := ""

	for !rl.WindowShouldClose() {
		// Input inside the preview, in preview coordinates
		mouse := rl.GetMousePosition()
		mx, my := float64(mouse.X-previewX), float64(mouse.Y-previewY)
		inside := mx >= 0 && my >= 0 && mx < previewWidth && my < previewHeight
		pointer.Update(st, mx, my, inside)
		if inside && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			st.Click(mx, my)
		}

		// Rebuild once a slider is released so new params take effect
		if dirty && !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			dirty = false
			st.Restart()
		}

		sched.Advance()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginScissorMode(previewX, previewY, previewWidth, previewHeight)
		background.DrawRect(previewX, previewY, previewWidth, previewHeight)
		container.Composite()
		rl.EndScissorMode()
		rl.DrawRectangleLines(previewX, previewY, previewWidth, previewHeight, rl.DarkGray)

		// Control panel
		panelX := float32(previewX + previewWidth + 10)
		panelY := float32(10)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, s := range sliders {
			rl.DrawText(s.Label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				float32(*s.Value), float32(s.Min), float32(s.Max),
			)
			rl.DrawText(fmt.Sprintf(s.Format, *s.Value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if s.set(float64(v)) {
				dirty = true
			}
			panelY += 35
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Rebuild") {
			st.Restart()
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			*cfg = *config.Default()
			st.Restart()
			status = "reset to defaults"
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 250, Height: 30}, "Save YAML (S)") || rl.IsKeyPressed(rl.KeyS) {
			status = save(cfg, *outPath)
		}
		panelY += 45

		if f := st.Field(); f != nil {
			rl.DrawText(fmt.Sprintf("Particles: %d  Links: %d  FPS: %d", f.Count(), len(f.Links()), rl.GetFPS()),
				int32(panelX), int32(panelY), 14, rl.DarkGray)
		}
		panelY += 20
		if status != "" {
			rl.DrawText(status, int32(panelX), int32(panelY), 14, rl.Gray)
		}

		rl.DrawText("Click the preview to burst", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		rl.EndDrawing()
	}
}

func save(cfg *config.Config, path string) string {
	if err := cfg.WriteYAML(path); err != nil {
		slog.Error("failed to save config", "path", path, "error", err)
		return "save failed"
	}
	slog.Info("config_saved", "path", path)
	return "saved " + path
}
