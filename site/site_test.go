package site

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/contact"
	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/systems"
)

const (
	testW = 1024
	testH = 768
)

// openRecorder collects every URL handed to the opener.
type openRecorder struct {
	urls []string
}

func (o *openRecorder) Open(url string) { o.urls = append(o.urls, url) }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	cfg.Page.LoaderSeconds = 0
	return cfg
}

func newTestSite(t *testing.T, cfg *config.Config, opts Options) (*Site, *raster.ImageCanvas) {
	t.Helper()
	canvas := raster.NewImageCanvas(testW, testH, color.NRGBA{A: 255})
	opts.Canvas = canvas
	opts.Width, opts.Height = testW, testH
	s := NewWithConfig(cfg, opts)
	t.Cleanup(s.Unload)
	return s, canvas
}

// run steps one complete frame.
func run(s *Site, in Input) {
	if in.Width == 0 {
		in.Width, in.Height = s.width, s.height
	}
	s.Step(in)
	s.EndFrame()
}

// clickAt presses and releases at screen (x, y) over two frames.
func clickAt(s *Site, x, y float32) {
	run(s, Input{X: x, Y: y, Moved: true, Pressed: true, Down: true})
	run(s, Input{X: x, Y: y, Released: true})
}

// stageScreen returns the stage centre in screen pixels.
func stageScreen(s *Site) (float32, float32) {
	return s.page.StageCenterX, s.page.StageCenterY - s.camera.Y
}

func TestInitialState(t *testing.T) {
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})

	if got := s.Orbit().Selected(); got != 1 {
		t.Errorf("expected middle planet selected, got %d", got)
	}
	if got := s.Preset(); got != s.cfg.Orbit.Desktop {
		t.Errorf("expected desktop preset at %dpx, got %+v", testW, got)
	}
	if s.NavVisible() {
		t.Error("expected nav links hidden at the top of the page")
	}
	if loading, _ := s.Loading(); loading {
		t.Error("expected no welcome overlay with zero loader time")
	}
}

func TestPointerMoveSpawnsTrail(t *testing.T) {
	s, canvas := newTestSite(t, testConfig(t), Options{Seed: 1})

	run(s, Input{X: 100, Y: 100, Moved: true})
	if got := s.Trail().Count(); got != s.cfg.Trail.PerMove {
		t.Errorf("expected %d particles, got %d", s.cfg.Trail.PerMove, got)
	}

	lit := false
	pix := canvas.Image().Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] > 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("expected stars drawn on the canvas")
	}

	run(s, Input{})
	if got := s.Trail().Count(); got != s.cfg.Trail.PerMove {
		t.Errorf("frame without movement changed count to %d", got)
	}
}

func TestLoaderDelaysTrail(t *testing.T) {
	cfg := testConfig(t)
	cfg.Page.LoaderSeconds = 0.5
	s, _ := newTestSite(t, cfg, Options{Seed: 1})

	if loading, frac := s.Loading(); !loading || frac != 1 {
		t.Fatalf("expected full welcome overlay, got %v %v", loading, frac)
	}

	for i := 0; i < 10; i++ {
		run(s, Input{X: float32(i), Y: 10, Moved: true})
	}
	if got := s.Trail().Count(); got != 0 {
		t.Errorf("expected no trail under the overlay, got %d", got)
	}

	for i := 0; i < 30; i++ {
		run(s, Input{})
	}
	run(s, Input{X: 50, Y: 50, Moved: true})
	if got := s.Trail().Count(); got == 0 {
		t.Error("expected trail after the overlay closed")
	}
}

func TestResizeUnderLoaderReachesTrail(t *testing.T) {
	cfg := testConfig(t)
	cfg.Page.LoaderSeconds = 0.5
	s, canvas := newTestSite(t, cfg, Options{Seed: 1})

	for i := 0; i < 40; i++ {
		run(s, Input{Width: 1600, Height: 900})
	}
	if loading, _ := s.Loading(); loading {
		t.Fatal("expected the welcome overlay to have closed")
	}
	if b := canvas.Image().Bounds(); b.Dx() != 1600 || b.Dy() != 900 {
		t.Fatalf("expected canvas resized to 1600x900, got %v", b)
	}

	run(s, Input{X: 1500, Y: 850, Moved: true, Width: 1600, Height: 900})
	if got := s.Trail().Count(); got == 0 {
		t.Fatal("expected trail particles at the far corner")
	}
	lit := false
	img := canvas.Image()
	for y := 846; y <= 854 && !lit; y++ {
		for x := 1496; x <= 1504; x++ {
			if img.NRGBAAt(x, y).R > 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("expected stars drawn beyond the startup bounds")
	}
}

func TestDragChangesSelection(t *testing.T) {
	tests := []struct {
		name string
		dx   float32
		want int
	}{
		{"left drag focuses next", -80, 2},
		{"right drag focuses previous", 80, 0},
		{"short drag keeps selection", -30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})
			cx, cy := stageScreen(s)

			run(s, Input{X: cx, Y: cy, Moved: true, Pressed: true, Down: true})
			run(s, Input{X: cx + tt.dx/2, Y: cy, Moved: true, Down: true})
			if s.Orbit().DragOffset() == 0 && tt.dx != 0 {
				t.Error("expected elastic offset while dragging")
			}
			run(s, Input{X: cx + tt.dx, Y: cy, Moved: true, Released: true})

			if got := s.Orbit().Selected(); got != tt.want {
				t.Errorf("expected selected %d, got %d", tt.want, got)
			}
			if s.Orbit().Dragging() || s.Orbit().DragOffset() != 0 {
				t.Error("expected drag released")
			}
		})
	}
}

func TestClickFocusedNavigates(t *testing.T) {
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})
	cx, cy := stageScreen(s)

	clickAt(s, cx, cy)

	want, _ := s.Page().AnchorY(content.AnchorAbout)
	if s.Camera().TargetY != want {
		t.Fatalf("expected scroll target %v, got %v", want, s.Camera().TargetY)
	}
	for i := 0; i < 300 && !s.Camera().Settled(); i++ {
		run(s, Input{})
	}
	if s.Camera().Y != want {
		t.Errorf("expected camera to arrive at %v, got %v", want, s.Camera().Y)
	}
	if !s.NavVisible() {
		t.Error("expected nav links shown after scrolling down")
	}
	if got := s.Orbit().Selected(); got != 1 {
		t.Errorf("navigation changed the selection to %d", got)
	}
}

func TestClickNeighbourSelects(t *testing.T) {
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})
	cx, cy := stageScreen(s)

	left := s.Slots()[0]
	clickAt(s, cx+float32(left.CenterX), cy+float32(left.CenterY))

	if got := s.Orbit().Selected(); got != 0 {
		t.Errorf("expected left planet focused, got %d", got)
	}
	if s.Camera().TargetY != 0 {
		t.Errorf("expected no navigation, target %v", s.Camera().TargetY)
	}
}

func TestNavLinksOnlyWhenShown(t *testing.T) {
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})
	links := NavLinks(testW)
	contactLink := links[2]
	x, y := contactLink.X+contactLink.W/2, contactLink.Y+contactLink.H/2

	clickAt(s, x, y)
	if s.Camera().TargetY != 0 {
		t.Fatalf("hidden nav link navigated to %v", s.Camera().TargetY)
	}

	s.Camera().JumpTo(500)
	clickAt(s, x, y)
	want, _ := s.Page().AnchorY(content.AnchorContact)
	if want > s.Camera().MaxY() {
		want = s.Camera().MaxY()
	}
	if s.Camera().TargetY != want {
		t.Errorf("expected target %v, got %v", want, s.Camera().TargetY)
	}

	logo := NavLogo()
	clickAt(s, logo.X+5, logo.Y+5)
	if s.Camera().TargetY != 0 {
		t.Errorf("expected logo to scroll home, got %v", s.Camera().TargetY)
	}
}

func TestWheelAndKeys(t *testing.T) {
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})

	run(s, Input{Wheel: -2})
	if want := float32(2 * s.cfg.Page.WheelStep); s.Camera().TargetY != want {
		t.Errorf("expected wheel target %v, got %v", want, s.Camera().TargetY)
	}

	run(s, Input{Right: true})
	run(s, Input{Right: true})
	if got := s.Orbit().Selected(); got != 2 {
		t.Errorf("expected clamped selection 2, got %d", got)
	}

	run(s, Input{Left: true})
	run(s, Input{Enter: true})
	want, _ := s.Page().AnchorY(content.AnchorAbout)
	if s.Camera().TargetY != want {
		t.Errorf("expected enter to navigate to about, got %v", s.Camera().TargetY)
	}

	run(s, Input{Home: true})
	if s.Camera().TargetY != 0 {
		t.Errorf("expected home to scroll to top, got %v", s.Camera().TargetY)
	}
}

func TestExternalLinks(t *testing.T) {
	opener := &openRecorder{}
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1, Opener: opener})

	row := s.Page().Projects[1]
	s.Camera().JumpTo(row.Y - 100)
	clickAt(s, row.X+10, 100+10)

	social := s.Page().Socials[2]
	s.Camera().JumpTo(s.Camera().MaxY())
	_, sy := s.Camera().WorldToScreen(social.X, social.Y)
	clickAt(s, social.X+10, sy+10)

	want := []string{content.Projects[1].Link, content.Socials[2].URL}
	if len(opener.urls) != len(want) {
		t.Fatalf("expected %d opened links, got %v", len(want), opener.urls)
	}
	for i := range want {
		if opener.urls[i] != want[i] {
			t.Errorf("link %d: expected %s, got %s", i, want[i], opener.urls[i])
		}
	}
}

func TestResizeSwitchesPreset(t *testing.T) {
	s, canvas := newTestSite(t, testConfig(t), Options{Seed: 1})
	run(s, Input{X: 10, Y: 10, Moved: true})
	before := s.Trail().Count()

	run(s, Input{Width: 600, Height: 900})

	if got := s.Preset(); got != s.cfg.Orbit.Mobile {
		t.Errorf("expected mobile preset, got %+v", got)
	}
	if b := canvas.Image().Bounds(); b.Dx() != 600 || b.Dy() != 900 {
		t.Errorf("expected canvas resized to 600x900, got %v", b)
	}
	if s.Page().Width != 600 {
		t.Errorf("expected page relaid out at 600, got %v", s.Page().Width)
	}
	if got := s.Trail().Count(); got != before {
		t.Errorf("resize changed particle count %d -> %d", before, got)
	}
	for i, slot := range s.Slots() {
		if want := float64(i-1) * s.cfg.Orbit.Mobile.Spacing; slot.Rotation != want {
			t.Errorf("item %d: rotation %v, want %v", i, slot.Rotation, want)
		}
	}
}

func TestContactSubmit(t *testing.T) {
	opener := &openRecorder{}
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1, Opener: opener})

	if err := s.SubmitContact(); err != contact.ErrEmailRequired {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}

	s.Form().SetEmail("a@b.co")
	s.Form().SetMessage("hello")
	if err := s.SubmitContact(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames := int(s.cfg.Contact.SubmitDelay/s.cfg.Derived.DT) + 2
	for i := 0; i < frames; i++ {
		run(s, Input{})
	}
	if s.Form().State() != contact.Success {
		t.Errorf("expected success, got %v", s.Form().State())
	}
	if len(opener.urls) != 1 || !strings.HasPrefix(opener.urls[0], "mailto:") {
		t.Errorf("expected one mailto link, got %v", opener.urls)
	}
}

func TestUnloadIsIdempotent(t *testing.T) {
	s, canvas := newTestSite(t, testConfig(t), Options{Seed: 1})
	run(s, Input{X: 10, Y: 10, Moved: true})

	s.Unload()
	s.Unload()

	if !s.Closed() || !s.Trail().Closed() {
		t.Fatal("expected site and trail closed")
	}

	before := append([]byte(nil), canvas.Image().Pix...)
	frame := s.Frame()
	run(s, Input{X: 200, Y: 200, Moved: true})

	if s.Frame() != frame {
		t.Errorf("frame advanced after unload")
	}
	if string(before) != string(canvas.Image().Pix) {
		t.Error("canvas mutated after unload")
	}
}

func TestHeadlessRunWritesOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 42, OutputDir: dir, StatsWindowSec: 1})

	for i := 0; i < 400; i++ {
		s.UpdateHeadless()
	}
	if s.Frame() != 400 {
		t.Fatalf("expected 400 frames, got %d", s.Frame())
	}
	if s.Trail().Count() == 0 {
		t.Error("expected a live trail behind the scripted pointer")
	}
	if got := s.Orbit().Selected(); got != 2 {
		t.Errorf("expected the scripted left drag to focus item 2, got %d", got)
	}
	s.Unload()

	frames, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(frames), "\n"); lines < 1+6 {
		t.Errorf("expected a header and 6 one-second windows, got %d lines", lines)
	}

	events, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"select,", "teardown,"} {
		if !strings.Contains(string(events), want) {
			t.Errorf("expected %q in events.csv:\n%s", want, events)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected config snapshot: %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	cfg := testConfig(t)
	s, _ := newTestSite(t, cfg, Options{Seed: 5})
	for i := 0; i < 10; i++ {
		run(s, Input{X: float32(100 + i*10), Y: 300, Moved: true})
	}
	run(s, Input{Right: true})
	s.Camera().JumpTo(250)

	snap := s.Snapshot(nil)
	if len(snap.Particles) != s.Trail().Count() {
		t.Fatalf("expected %d particles in snapshot, got %d", s.Trail().Count(), len(snap.Particles))
	}

	restored, _ := newTestSite(t, cfg, Options{Seed: 5, Restore: snap})
	if got := restored.Trail().Count(); got != len(snap.Particles) {
		t.Errorf("expected %d restored particles, got %d", len(snap.Particles), got)
	}
	if got := restored.Orbit().Selected(); got != 2 {
		t.Errorf("expected restored selection 2, got %d", got)
	}
	if restored.Camera().Y != 250 {
		t.Errorf("expected restored scroll 250, got %v", restored.Camera().Y)
	}
	if v := restored.Visuals()[2]; v.Rotation != 0 {
		t.Errorf("expected restored visuals snapped to target, got rotation %v", v.Rotation)
	}
}

func TestPlanetHitLimitedToStage(t *testing.T) {
	s, _ := newTestSite(t, testConfig(t), Options{Seed: 1})
	cx, cy := stageScreen(s)
	_, py := s.camera.ScreenToWorld(cx, cy)

	if got := s.planetAt(cx, py); got != 1 {
		t.Fatalf("expected focused planet under the stage centre, got %d", got)
	}

	// Outside the stage nothing is hit, even on the orbit circle
	x, y := systems.OrbitPoint(90, s.preset.Radius)
	if got := s.planetAt(cx+float32(x), py+float32(y)); got != -1 {
		t.Errorf("expected no hit outside the stage, got %d", got)
	}
}
