package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/starfield/config"
)

var testAnchors = []string{"projects", "about", "contact"}

func newTestOrbit() *Orbit {
	return NewOrbit(testAnchors, 1, 50, 0.05)
}

func TestNewOrbitInitialIndex(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		want    int
	}{
		{"middle default", -1, 1},
		{"explicit first", 0, 0},
		{"explicit last", 2, 2},
		{"clamped high", 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrbit(testAnchors, tt.initial, 50, 0.05)
			if o.Selected() != tt.want {
				t.Errorf("expected selected %d, got %d", tt.want, o.Selected())
			}
		})
	}
}

func TestSelectClampsWithoutWrap(t *testing.T) {
	o := NewOrbit(testAnchors, 0, 50, 0.05)

	if o.SelectPrevious() {
		t.Error("SelectPrevious at 0 should not change selection")
	}
	if o.Selected() != 0 {
		t.Errorf("expected 0, got %d", o.Selected())
	}

	o.SelectNext()
	o.SelectNext()
	if o.SelectNext() {
		t.Error("SelectNext at last item should not change selection")
	}
	if o.Selected() != 2 {
		t.Errorf("expected 2, got %d", o.Selected())
	}
}

func TestSelectRandomSequenceStaysInRange(t *testing.T) {
	o := newTestOrbit()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		switch rng.Intn(3) {
		case 0:
			o.SelectNext()
		case 1:
			o.SelectPrevious()
		default:
			o.SelectIndex(rng.Intn(11) - 5)
		}
		if o.Selected() < 0 || o.Selected() > 2 {
			t.Fatalf("step %d: selected %d left [0, 2]", i, o.Selected())
		}
	}
}

func TestSelectIndexClamps(t *testing.T) {
	o := newTestOrbit()

	o.SelectIndex(-4)
	if o.Selected() != 0 {
		t.Errorf("expected clamp to 0, got %d", o.Selected())
	}
	o.SelectIndex(42)
	if o.Selected() != 2 {
		t.Errorf("expected clamp to 2, got %d", o.Selected())
	}
}

func TestDragThreshold(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  int
	}{
		{"right past threshold", 51, 0},
		{"left past threshold", -51, 2},
		{"right under threshold", 49, 1},
		{"left under threshold", -49, 1},
		{"exactly threshold", 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrbit()
			o.DragStart(300)
			o.DragMove(300 + tt.delta/2)
			o.DragMove(300 + tt.delta)
			o.DragEnd()
			if o.Selected() != tt.want {
				t.Errorf("delta %v: expected selected %d, got %d", tt.delta, tt.want, o.Selected())
			}
		})
	}
}

func TestDragIsElastic(t *testing.T) {
	o := newTestOrbit()
	o.DragStart(100)
	o.DragMove(300)

	if math.Abs(o.DragOffset()-10) > 1e-9 {
		t.Errorf("expected elastic offset 10, got %f", o.DragOffset())
	}

	o.DragEnd()
	if o.DragOffset() != 0 {
		t.Errorf("expected offset to return to 0 after release, got %f", o.DragOffset())
	}
	if o.Dragging() {
		t.Error("expected gesture to end")
	}
}

func TestDragEndWithoutStart(t *testing.T) {
	o := newTestOrbit()
	o.DragMove(500)
	if o.DragEnd() {
		t.Error("DragEnd without DragStart should not change selection")
	}
	if o.Selected() != 1 {
		t.Errorf("expected selected 1, got %d", o.Selected())
	}
}

func TestCancelDrag(t *testing.T) {
	o := newTestOrbit()
	o.DragStart(0)
	o.DragMove(-200)
	o.CancelDrag()
	o.DragEnd()

	if o.Selected() != 1 {
		t.Errorf("cancelled drag changed selection to %d", o.Selected())
	}
}

func TestClickFocusedNavigates(t *testing.T) {
	o := newTestOrbit()
	var got []string
	o.SetNavigator(NavigatorFunc(func(anchor string) { got = append(got, anchor) }))

	if !o.Click(1) {
		t.Error("expected click on focused item to report navigation")
	}
	if o.Selected() != 1 {
		t.Errorf("click on focused item changed selection to %d", o.Selected())
	}
	if len(got) != 1 || got[0] != "about" {
		t.Errorf("expected navigation to [about], got %v", got)
	}
}

func TestClickOtherSelects(t *testing.T) {
	o := newTestOrbit()
	navigated := false
	o.SetNavigator(NavigatorFunc(func(string) { navigated = true }))

	if o.Click(2) {
		t.Error("click on unfocused item should not navigate")
	}
	if o.Selected() != 2 {
		t.Errorf("expected selected 2, got %d", o.Selected())
	}
	if navigated {
		t.Error("navigator invoked for unfocused click")
	}
}

func TestClickWithoutNavigator(t *testing.T) {
	o := newTestOrbit()
	if !o.Click(1) {
		t.Error("expected navigation result even without navigator")
	}
}

func TestOnChangeObserver(t *testing.T) {
	o := newTestOrbit()
	var changes [][2]int
	o.OnChange(func(prev, next int) { changes = append(changes, [2]int{prev, next}) })

	o.SelectNext()
	o.SelectNext() // no-op at end
	o.SelectIndex(0)

	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(changes), changes)
	}
	if changes[0] != [2]int{1, 2} || changes[1] != [2]int{2, 0} {
		t.Errorf("unexpected changes %v", changes)
	}
}

// Viewport 1024px, three items, focus on 1, drag left by 60px.
func TestDesktopDragScenario(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	preset := PresetFor(1024, cfg.Orbit)
	if preset != cfg.Orbit.Desktop {
		t.Fatalf("expected desktop preset at 1024px, got %+v", preset)
	}

	o := NewOrbit(testAnchors, 1, cfg.Orbit.DragThreshold, cfg.Orbit.DragElasticity)
	o.DragStart(600)
	o.DragMove(540)
	o.DragEnd()

	if o.Selected() != 2 {
		t.Fatalf("expected selected 2, got %d", o.Selected())
	}

	slots := Layout(o.Len(), o.Selected(), preset, cfg.Orbit.Focused, cfg.Orbit.Resting)
	wantRot := []float64{-40, -20, 0}
	for i, s := range slots {
		if s.Rotation != wantRot[i] {
			t.Errorf("item %d: expected rotation %v, got %v", i, wantRot[i], s.Rotation)
		}
	}

	if !slots[2].Focused || slots[2].Scale != cfg.Orbit.Focused.Scale || slots[2].Opacity != 1 {
		t.Errorf("item 2 should be focused at full emphasis, got %+v", slots[2])
	}
	for _, i := range []int{0, 1} {
		if slots[i].Focused || slots[i].Scale != 0.65 || slots[i].Opacity != 0.6 {
			t.Errorf("item %d should rest at reduced scale/opacity, got %+v", i, slots[i])
		}
	}
}
