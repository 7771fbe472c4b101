// Package game is the raylib front end: it samples window input into the
// site model each frame and draws the page with the renderers.
package game

import (
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/contact"
	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/site"
	"github.com/pthm-cable/starfield/systems"
	"github.com/pthm-cable/starfield/ui"
)

// Game holds the site model and everything needed to present it.
type Game struct {
	site     *site.Site
	headless bool

	// Exactly one trail surface is set: a render texture with a window,
	// an in-memory image without one.
	trailTex   *renderer.TrailCanvas
	trailImage *raster.ImageCanvas

	background *renderer.BackgroundRenderer
	orbit      *renderer.OrbitRenderer
	sections   *renderer.SectionRenderer
	marquee    *renderer.MarqueeRenderer
	nav        *renderer.NavRenderer

	form      *ui.ContactForm
	overlays  *ui.OverlayRegistry
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel
	inspector *ui.Inspector
	hud       *ui.HUD

	screenWidth, screenHeight float32
	lastX, lastY              float32
	pointing                  bool
}

// NewGameWithOptions creates a game. Without Headless the raylib window must
// already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	g := &Game{headless: opts.Headless}

	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	if !opts.Headless {
		w, h = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	}
	g.screenWidth, g.screenHeight = float32(w), float32(h)

	var canvas systems.Canvas
	if opts.Headless {
		g.trailImage = raster.NewImageCanvas(w, h, color.NRGBA{})
		canvas = g.trailImage
	} else {
		g.trailTex = renderer.NewTrailCanvas(w, h)
		g.trailTex.Init()
		canvas = g.trailTex

		g.background = renderer.NewBackgroundRenderer(w, h, opts.Seed)
		g.orbit = renderer.NewOrbitRenderer()
		g.sections = renderer.NewSectionRenderer(w, h)
		g.marquee = renderer.NewMarqueeRenderer(w, h)
		g.nav = renderer.NewNavRenderer(w)

		g.form = ui.NewContactForm()
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(10, 80, 200)
		g.perfPanel = ui.NewPerfPanel(w-250, 80, 240)
		g.inspector = ui.NewInspector(w-250, 300, 240)
		g.hud = ui.NewHUD()
	}

	opener := opts.Opener
	if opener == nil {
		opener = defaultOpener(opts.Headless)
	}

	g.site = site.New(site.Options{
		Seed:           opts.Seed,
		LogStats:       opts.LogStats,
		StatsWindowSec: opts.StatsWindowSec,
		OutputDir:      opts.OutputDir,
		SnapshotDir:    opts.SnapshotDir,
		Width:          w,
		Height:         h,
		Canvas:         canvas,
		Opener:         opener,
		Restore:        opts.Restore,
	})
	return g
}

func defaultOpener(headless bool) contact.Opener {
	if headless {
		return contact.OpenerFunc(func(url string) {
			slog.Info("link not opened in headless mode", "url", url)
		})
	}
	return contact.OpenerFunc(rl.OpenURL)
}

// Update samples input and advances the site by one frame.
func (g *Game) Update() {
	g.overlays.HandleKeys()
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.site.Step(g.sampleInput())
	g.updateCursor()
}

// UpdateHeadless runs one frame with scripted input and no window.
func (g *Game) UpdateHeadless() {
	g.site.UpdateHeadless()
}

// Site returns the underlying model.
func (g *Game) Site() *site.Site {
	return g.site
}

// Frame returns the number of completed frames.
func (g *Game) Frame() int64 {
	return g.site.Frame()
}

// Unload releases GPU resources and tears down the site.
func (g *Game) Unload() {
	g.site.Unload()
	if g.trailTex != nil {
		g.trailTex.Unload()
	}
	if !g.headless {
		g.background.Unload()
		g.orbit.Unload()
		g.sections.Unload()
		g.marquee.Unload()
	}
}
