package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/starfield/systems"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the visible state of the site for inspection and replay.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	ViewportW int `json:"viewport_w"`
	ViewportH int `json:"viewport_h"`

	Frame    int64   `json:"frame"`
	Selected int     `json:"selected"`
	ScrollY  float64 `json:"scroll_y"`

	Particles []ParticleState `json:"particles"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// ParticleState holds one trail particle.
type ParticleState struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	VelX  float32 `json:"vel_x"`
	VelY  float32 `json:"vel_y"`
	Size  float32 `json:"size"`
	Alpha float32 `json:"alpha"`
	Life  float32 `json:"life"`
	Decay float32 `json:"decay"`
}

// ParticleStates converts trail particles to their serializable form.
func ParticleStates(ps []systems.Particle) []ParticleState {
	out := make([]ParticleState, len(ps))
	for i, p := range ps {
		out[i] = ParticleState{
			X: p.X, Y: p.Y,
			VelX: p.VX, VelY: p.VY,
			Size:  p.Size,
			Alpha: p.Alpha,
			Life:  p.Life,
			Decay: p.Decay,
		}
	}
	return out
}

// TrailParticles converts the snapshot's particles back to trail particles.
func (s *Snapshot) TrailParticles() []systems.Particle {
	out := make([]systems.Particle, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = systems.Particle{
			X: p.X, Y: p.Y,
			VX: p.VelX, VY: p.VelY,
			Size:  p.Size,
			Alpha: p.Alpha,
			Life:  p.Life,
			Decay: p.Decay,
		}
	}
	return out
}

// SnapshotName returns the file stem for a snapshot.
func SnapshotName(snapshot *Snapshot) string {
	name := fmt.Sprintf("snapshot_%d", snapshot.Frame)
	if snapshot.Bookmark != nil {
		// Sanitize bookmark type for filename
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Frame, sanitized)
	}
	return name
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, SnapshotName(snapshot)+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	return &snapshot, nil
}
