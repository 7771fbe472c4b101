// Star trail tuning tool - move the pointer over the preview and adjust the
// particle parameters with sliders.
//
// Usage: go run ./cmd/trailpreview [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"math"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 40
)

// slider binds one tunable value to its label and range.
type slider struct {
	label    string
	min, max float32
	format   string
	value    *float64
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := cfg.Trail
	params := defaults
	perMove := float64(params.PerMove)
	maxParticles := float64(params.MaxParticles)

	rl.InitWindow(windowWidth, windowHeight, "Star Trail Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	canvas := renderer.NewTrailCanvas(previewSize, previewSize)
	canvas.Init()
	defer canvas.Unload()

	rng := rand.New(rand.NewSource(1))
	trail := systems.NewTrailSystem(params, rng)
	trail.Attach(canvas)

	// Rebuilding keeps the live particles so changes are seen immediately
	rebuild := func() {
		params.PerMove = int(perMove)
		params.MaxParticles = int(maxParticles)
		live := trail.Snapshot()
		trail.Close()
		trail = systems.NewTrailSystem(params, rng)
		trail.Attach(canvas)
		trail.Restore(live)
	}

	sliders := []slider{
		{"Per move", 1, 12, "%.0f", &perMove},
		{"Size min", 0.5, 6, "%.2f", &params.Size.Min},
		{"Size max", 0.5, 8, "%.2f", &params.Size.Max},
		{"Velocity min", -3, 0, "%.2f", &params.Velocity.Min},
		{"Velocity max", 0, 3, "%.2f", &params.Velocity.Max},
		{"Decay min", 0.001, 0.1, "%.3f", &params.Decay.Min},
		{"Decay max", 0.001, 0.1, "%.3f", &params.Decay.Max},
		{"Max particles", 0, 3000, "%.0f", &maxParticles},
	}

	origin := rl.Vector2{X: 10, Y: 10}
	var lastMouse rl.Vector2
	autoSweep := false
	var sweepT float32

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		local := rl.Vector2{X: mouse.X - origin.X, Y: mouse.Y - origin.Y}
		inside := local.X >= 0 && local.Y >= 0 && local.X < previewSize && local.Y < previewSize
		if inside && (mouse.X != lastMouse.X || mouse.Y != lastMouse.Y) {
			trail.OnPointerMove(local.X, local.Y)
		}
		lastMouse = mouse

		if autoSweep {
			sweepT += rl.GetFrameTime()
			x, y := lissajous(sweepT)
			trail.OnPointerMove(x, y)
		}
		trail.OnFrameTick()

		rl.BeginDrawing()
		rl.ClearBackground(renderer.ColorDark)

		rl.DrawRectangle(int32(origin.X), int32(origin.Y), previewSize, previewSize, rl.Black)
		rl.BeginScissorMode(int32(origin.X), int32(origin.Y), previewSize, previewSize)
		rl.PushMatrix()
		rl.Translatef(origin.X, origin.Y, 0)
		canvas.Draw()
		rl.PopMatrix()
		rl.EndScissorMode()
		rl.DrawRectangleLines(int32(origin.X), int32(origin.Y), previewSize, previewSize, rl.DarkGray)

		stats := trail.Stats()
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Live: %d  Spawned: %d  Expired: %d  Evicted: %d",
			trail.Count(), stats.Spawned, stats.Expired, stats.Evicted), 15, statsY, 16, rl.LightGray)
		rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 15, statsY+20, 16, rl.LightGray)

		panelX := float32(previewSize + 30)
		panelY := float32(10)
		rl.DrawText("Trail Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed := false
		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				float32(*s.value), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *s.value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
			if float64(v) != *s.value {
				*s.value = float64(v)
				changed = true
			}
			panelY += 35
		}
		if changed {
			rebuild()
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(autoSweep, "Stop Sweep", "Auto Sweep")) {
			autoSweep = !autoSweep
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			perMove = float64(defaults.PerMove)
			maxParticles = float64(defaults.MaxParticles)
			rebuild()
		}
		panelY += 45

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		snippet := trailYAML(params)
		for _, line := range strings.Split(snippet, "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.DarkGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
	trail.Close()
}

// trailYAML renders the trail section as it would appear in config.yaml.
func trailYAML(t config.TrailConfig) string {
	data, err := yaml.Marshal(map[string]config.TrailConfig{"trail": t})
	if err != nil {
		return err.Error()
	}
	return strings.TrimRight(string(data), "\n")
}

// lissajous traces a figure across the preview for hands-free tuning.
func lissajous(t float32) (float32, float32) {
	const half = previewSize / 2
	x := half + half*0.8*float32(math.Sin(float64(t)*1.3))
	y := half + half*0.8*float32(math.Sin(float64(t)*2.1+0.5))
	return x, y
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
