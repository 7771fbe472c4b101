package game

import (
	"github.com/pthm-cable/starfield/contact"
	"github.com/pthm-cable/starfield/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	SnapshotDir    string
	OutputDir      string
	Headless       bool

	// Opener receives external links. Nil opens them with the system
	// browser, or only logs them when headless.
	Opener contact.Opener
	// Restore resumes from a saved snapshot.
	Restore *telemetry.Snapshot
}
