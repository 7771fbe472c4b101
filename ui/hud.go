package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/telemetry"
)

// HUDData holds the one-line status readout.
type HUDData struct {
	Frame     int64
	FPS       int32
	Particles int
	Selected  string
	ScrollY   float32
	MaxY      float32
	Section   string
}

// HUD renders the status line at the bottom of the screen.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the status line.
func (h *HUD) Draw(data HUDData, screenHeight int32) {
	text := fmt.Sprintf("frame %d | %d fps | %d stars | %s | scroll %.0f/%.0f (%s)",
		data.Frame, data.FPS, data.Particles, data.Selected, data.ScrollY, data.MaxY, data.Section)
	rl.DrawText(text, 10, screenHeight-22, 12, h.renderer.Theme.LabelColor)
}

// PerfPanel renders the frame phase timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Draw renders the panel and returns the Y below it.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) int32 {
	r := p.renderer
	padding := r.Theme.Padding

	names := make([]string, 0, len(stats.PhaseAvg))
	for name := range stats.PhaseAvg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return stats.PhaseAvg[names[i]] > stats.PhaseAvg[names[j]] })

	height := padding*2 + 20 + 16*2 + int32(len(names))*14
	r.DrawPanel(p.x, p.y, p.width, height)

	x, y := p.x+padding, p.y+padding
	rl.DrawText("Frame Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("avg %s  p95 %s", stats.AvgFrameDuration.Round(time.Microsecond),
		stats.P95FrameDuration.Round(time.Microsecond)), x, y, 12, r.Theme.SectionHeader)
	y += 16
	rl.DrawText(fmt.Sprintf("%.0f fps, %d over budget", stats.FPS, stats.OverBudget), x, y, 12, r.Theme.LabelColor)
	y += 16

	for _, name := range names {
		pct := stats.PhasePct[name]
		color := r.Theme.ValueColor
		if pct > 50 {
			color = r.Theme.BarNegative
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-10s %8s %5.1f%%", telemetry.PhaseName(name), stats.PhaseAvg[name].Round(time.Microsecond), pct), x, y, 12, color)
		y += 14
	}
	return p.y + height
}
