package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies a debug overlay.
type OverlayID string

// Debug overlay IDs.
const (
	OverlayControls  OverlayID = "controls"
	OverlayPerf      OverlayID = "perf"
	OverlayInspector OverlayID = "inspector"
	OverlayHitboxes  OverlayID = "hitboxes"
	OverlaySections  OverlayID = "sections"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID        OverlayID
	Name      string
	Key       int32 // 0 = no key
	KeyLabel  string
	Category  string
	Exclusive []OverlayID // disabled when this one is enabled
}

// OverlayRegistry tracks which debug overlays are shown.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]int
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with every overlay hidden.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]int),
		enabled: make(map[OverlayID]bool),
	}
	reg.Register(OverlayDescriptor{ID: OverlayControls, Name: "Overlay List", Key: rl.KeyF1, KeyLabel: "F1", Category: "panels"})
	reg.Register(OverlayDescriptor{ID: OverlayPerf, Name: "Frame Timing", Key: rl.KeyF2, KeyLabel: "F2", Category: "panels"})
	reg.Register(OverlayDescriptor{ID: OverlayInspector, Name: "Orbit Inspector", Key: rl.KeyF3, KeyLabel: "F3", Category: "panels"})
	reg.Register(OverlayDescriptor{
		ID: OverlayHitboxes, Name: "Planet Hitboxes", Key: rl.KeyF4, KeyLabel: "F4", Category: "page",
	})
	reg.Register(OverlayDescriptor{
		ID: OverlaySections, Name: "Section Bounds", Key: rl.KeyF5, KeyLabel: "F5", Category: "page",
		Exclusive: []OverlayID{OverlayHitboxes},
	})
	return reg
}

// Register adds an overlay to the registry, replacing one with the same ID.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if i, ok := r.byID[desc.ID]; ok {
		r.descriptors[i] = desc
		return
	}
	r.byID[desc.ID] = len(r.descriptors)
	r.descriptors = append(r.descriptors, desc)
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled sets an overlay's state. Enabling it hides its exclusive peers.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	i, ok := r.byID[id]
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if enabled {
		for _, excl := range r.descriptors[i].Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is shown.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays in the category, in registration order.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns every category in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeys toggles every overlay whose key was pressed this frame.
func (r *OverlayRegistry) HandleKeys() {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}

// Len returns the number of registered overlays.
func (r *OverlayRegistry) Len() int {
	return len(r.descriptors)
}
