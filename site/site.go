// Package site composes the trail, carousel, page scroller and contact form
// into one frame-stepped model. It has no graphics dependency: a front end
// samples input into an Input each frame and draws from the accessors.
package site

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/contact"
	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/loop"
	"github.com/pthm-cable/starfield/systems"
	"github.com/pthm-cable/starfield/telemetry"
)

// Options configures a Site.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // CSV and config output (empty = disabled)
	SnapshotDir    string  // Snapshot on every bookmark (empty = disabled)

	Width, Height int32 // Initial viewport (0 = use config)

	// Canvas is the trail's drawing surface. Nil leaves the trail unavailable.
	Canvas systems.Canvas
	// Opener receives mailto links and external URLs.
	Opener contact.Opener
	// Restore seeds the trail, selection and scroll from a snapshot.
	Restore *telemetry.Snapshot
}

// Hover holds what the pointer is over. Indices are -1 when nothing is hovered.
type Hover struct {
	Planet  int
	Project int
	Nav     int
	Social  int
	Tech    int
	Logo    bool
	Marquee bool
}

func noHover() Hover {
	return Hover{Planet: -1, Project: -1, Nav: -1, Social: -1, Tech: -1}
}

// Site is the composed application model.
type Site struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	sched   *loop.Scheduler
	trail   *systems.TrailSystem
	orbit   *systems.Orbit
	motion  *systems.Motion
	marquee *systems.Marquee
	camera  *camera.Camera
	form    *contact.Form
	opener  contact.Opener

	page   Page
	preset config.Preset
	slots  []systems.ItemLayout

	width, height int32

	// Pointer state
	pointerX, pointerY float32
	pressX, pressY     float32
	pressed            bool
	hover              Hover

	loaderLeft   float64
	trailStarted bool
	elapsed      float64

	// Telemetry
	frame       int64
	collector   *telemetry.Collector
	perf        *telemetry.PerfCollector
	bookmarks   *telemetry.BookmarkDetector
	output      *telemetry.OutputManager
	logStats    bool
	snapshotDir string

	closed bool
}

// New creates a site using the global configuration.
func New(opts Options) *Site {
	return NewWithConfig(config.Cfg(), opts)
}

// NewWithConfig creates a site using cfg.
func NewWithConfig(cfg *config.Config, opts Options) *Site {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	s := &Site{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		seed:        opts.Seed,
		sched:       loop.NewScheduler(),
		motion:      systems.NewMotion(cfg),
		marquee:     systems.NewMarquee(cfg.Marquee),
		opener:      opts.Opener,
		width:       width,
		height:      height,
		hover:       noHover(),
		loaderLeft:  cfg.Page.LoaderSeconds,
		collector:   telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perf:        telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow, frameBudget(cfg.Screen.TargetFPS)),
		bookmarks:   telemetry.NewBookmarkDetector(10),
		logStats:    opts.LogStats,
		snapshotDir: opts.SnapshotDir,
	}

	s.trail = systems.NewTrailSystem(cfg.Trail, s.rng)
	s.trail.Attach(opts.Canvas)
	if opts.Canvas != nil && opts.Canvas.Ready() {
		opts.Canvas.Resize(width, height)
	}

	s.orbit = systems.NewOrbit(content.Anchors(), cfg.Orbit.InitialIndex, cfg.Orbit.DragThreshold, cfg.Orbit.DragElasticity)
	s.orbit.SetNavigator(s)
	s.orbit.OnChange(s.onSelect)

	s.form = contact.NewForm(cfg.Contact, opts.Opener)

	s.page = LayoutPage(float32(width), float32(height), float32(cfg.Orbit.StageHeight))
	s.camera = camera.New(float32(width), float32(height), s.page.Height, cfg.Page.ScrollFrequency, cfg.Page.ScrollDamping)
	s.relayout()
	s.motion.Snap()

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			s.output = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if opts.Restore != nil {
		s.restore(opts.Restore)
	}
	if s.loaderLeft <= 0 {
		s.startTrail()
	}

	return s
}

// frameBudget is the wall time of one frame at fps, or zero when unset.
func frameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// restore applies a snapshot's selection, scroll and trail particles.
func (s *Site) restore(snap *telemetry.Snapshot) {
	s.orbit.SelectIndex(snap.Selected)
	s.motion.Snap()
	s.camera.JumpTo(float32(snap.ScrollY))
	s.trail.Restore(snap.TrailParticles())
	// A restored view skips the welcome overlay
	s.loaderLeft = 0
	slog.Info("snapshot restored",
		"frame", snap.Frame,
		"particles", len(snap.Particles),
		"selected", snap.Selected,
	)
}

// startTrail subscribes the trail to the frame loop once the hero is shown.
func (s *Site) startTrail() {
	if s.trailStarted {
		return
	}
	s.trailStarted = true
	s.trail.Start(s.sched)
	// Resizes under the loader reached no subscriber
	s.trail.OnResize(s.width, s.height)
}

// relayout recomputes the carousel slots and retargets the animation.
func (s *Site) relayout() {
	s.preset = systems.PresetFor(int(s.width), s.cfg.Orbit)
	s.slots = systems.Layout(s.orbit.Len(), s.orbit.Selected(), s.preset, s.cfg.Orbit.Focused, s.cfg.Orbit.Resting)
	s.motion.SetTargets(s.slots)
}

func (s *Site) onSelect(prev, next int) {
	s.relayout()
	s.collector.RecordSelection()
	s.writeEvent(telemetry.NewSelectEvent(s.frame, prev, next))
}

// NavigateTo smoothly scrolls to the named section.
func (s *Site) NavigateTo(anchor string) {
	y, ok := s.page.AnchorY(anchor)
	if !ok {
		slog.Warn("unknown anchor", "anchor", anchor)
		return
	}
	s.camera.ScrollTo(y)
	s.collector.RecordNavigate()
	s.writeEvent(telemetry.NewNavigateEvent(s.frame, anchor))
}

// open hands an external link to the opener.
func (s *Site) open(url string) {
	if s.opener != nil {
		s.opener.Open(url)
	}
}

// resize propagates a new viewport size to every subsystem.
func (s *Site) resize(width, height int32) {
	s.width, s.height = width, height

	// Keep the reader on the same section across the reflow
	anchor := s.CurrentAnchor()
	s.page = LayoutPage(float32(width), float32(height), float32(s.cfg.Orbit.StageHeight))
	s.camera.Resize(float32(width), float32(height))
	s.camera.SetPageHeight(s.page.Height)
	if y, ok := s.page.AnchorY(anchor); ok && anchor != content.AnchorHome {
		s.camera.JumpTo(y)
	}

	s.relayout()
	s.sched.Resize(width, height)
	s.writeEvent(telemetry.NewResizeEvent(s.frame, int(width), int(height)))
}

// CurrentAnchor returns the section under the top of the viewport.
func (s *Site) CurrentAnchor() string {
	anchor := content.AnchorHome
	for _, sec := range s.page.Sections {
		if s.camera.Y >= sec.Y {
			anchor = sec.Anchor
		}
	}
	return anchor
}

// SubmitContact submits the contact form.
func (s *Site) SubmitContact() error {
	before := s.form.State()
	err := s.form.Submit()
	if err == nil && before == contact.Idle && s.form.State() == contact.Submitting {
		s.writeEvent(telemetry.NewContactEvent(s.frame))
	}
	return err
}

// Step advances one frame using the sampled input. The frame stays open for
// drawing until EndFrame.
func (s *Site) Step(in Input) {
	if s.closed {
		return
	}
	dt := s.cfg.Derived.DT

	s.perf.StartFrame()
	s.perf.StartPhase(telemetry.PhaseInput)

	s.elapsed += dt
	if in.Width > 0 && in.Height > 0 && (in.Width != s.width || in.Height != s.height) {
		s.resize(in.Width, in.Height)
	}
	if s.loaderLeft > 0 {
		s.loaderLeft -= dt
		if s.loaderLeft <= 0 {
			s.startTrail()
		}
	} else {
		s.handleInput(in)
	}

	s.perf.StartPhase(telemetry.PhaseTrail)
	s.sched.Frame()

	s.perf.StartPhase(telemetry.PhaseOrbit)
	s.motion.Step(dt)

	s.perf.StartPhase(telemetry.PhasePage)
	s.marquee.Update(dt, s.hover.Marquee)
	s.camera.Update(dt)
	s.form.Update(dt)
}

// BeginDraw marks the start of the frame's drawing.
func (s *Site) BeginDraw() {
	s.perf.StartPhase(telemetry.PhaseDraw)
}

// EndFrame closes the frame's timing and flushes telemetry windows.
func (s *Site) EndFrame() {
	if s.closed {
		return
	}
	s.perf.StartPhase(telemetry.PhaseTelemetry)
	frameTime := s.perf.EndFrame()
	s.perf.RecordPresent()
	s.collector.RecordFrame(s.trail.Count(), frameTime)
	s.frame++
	s.flushTelemetry()
}

// Unload tears the site down. Safe to call more than once.
func (s *Site) Unload() {
	if s.closed {
		return
	}
	s.writeEvent(telemetry.NewTeardownEvent(s.frame))
	s.trail.Close()
	s.closed = true

	if s.output != nil {
		if err := s.output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
	slog.Info("site closed", "frame", s.frame, "uptime", time.Duration(s.elapsed*float64(time.Second)))
}

// Closed reports whether Unload has been called.
func (s *Site) Closed() bool { return s.closed }

// Frame returns the number of completed frames.
func (s *Site) Frame() int64 { return s.frame }

// Seed returns the RNG seed.
func (s *Site) Seed() int64 { return s.seed }

// Elapsed returns simulated seconds since start.
func (s *Site) Elapsed() float64 { return s.elapsed }

// Config returns the site's configuration.
func (s *Site) Config() *config.Config { return s.cfg }

// Viewport returns the current viewport size.
func (s *Site) Viewport() (int32, int32) { return s.width, s.height }

// Loading reports whether the welcome overlay is up, and its remaining fraction.
func (s *Site) Loading() (bool, float64) {
	if s.loaderLeft <= 0 || s.cfg.Page.LoaderSeconds <= 0 {
		return false, 0
	}
	return true, s.loaderLeft / s.cfg.Page.LoaderSeconds
}

// Page returns the current page layout.
func (s *Site) Page() Page { return s.page }

// Camera returns the page scroller.
func (s *Site) Camera() *camera.Camera { return s.camera }

// Orbit returns the carousel state.
func (s *Site) Orbit() *systems.Orbit { return s.orbit }

// Trail returns the particle trail.
func (s *Site) Trail() *systems.TrailSystem { return s.trail }

// Motion returns the carousel animator.
func (s *Site) Motion() *systems.Motion { return s.motion }

// Marquee returns the logo marquee.
func (s *Site) Marquee() *systems.Marquee { return s.marquee }

// Form returns the contact form.
func (s *Site) Form() *contact.Form { return s.form }

// Perf returns the frame-phase timer.
func (s *Site) Perf() *telemetry.PerfCollector { return s.perf }

// Hover returns what the pointer is over.
func (s *Site) Hover() Hover { return s.hover }

// Pointer returns the last pointer position in screen pixels.
func (s *Site) Pointer() (float32, float32) { return s.pointerX, s.pointerY }

// Preset returns the active orbit preset.
func (s *Site) Preset() config.Preset { return s.preset }

// Slots returns the carousel target layout.
func (s *Site) Slots() []systems.ItemLayout { return s.slots }

// Visuals returns the carousel's interpolated appearance, one per item.
func (s *Site) Visuals() []systems.Visual {
	out := make([]systems.Visual, s.motion.Len())
	for i := range out {
		out[i] = s.motion.Current(i)
	}
	return out
}

// NavVisible reports whether the navbar links are shown.
func (s *Site) NavVisible() bool {
	return float64(s.camera.Y) > s.cfg.Page.NavRevealY
}
