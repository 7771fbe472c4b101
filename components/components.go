// Package components defines ECS components for the star trail.
package components

// Position represents a particle's screen position in pixels.
type Position struct {
	X, Y float32
}

// Velocity represents a particle's per-frame displacement.
// Assigned once at spawn and never changed.
type Velocity struct {
	X, Y float32
}

// Spark holds the lifetime state of a trail particle.
type Spark struct {
	Size  float32 // Diamond radius, fixed at spawn
	Alpha float32 // Spawn colour opacity, kept for snapshots; the drawn opacity is Life
	Life  float32 // Remaining life in (0, 1]; removed once <= 0
	Decay float32 // Life lost per frame, fixed at spawn
	Seq   uint64  // Spawn order, lower is older
}

// Alive reports whether the spark still has life left.
func (s *Spark) Alive() bool {
	return s.Life > 0
}
