package telemetry

// PhaseInfo describes one frame phase for display.
type PhaseInfo struct {
	ID          string
	Name        string
	Description string
}

var phaseInfo = map[string]PhaseInfo{
	PhaseInput:     {ID: PhaseInput, Name: "Input", Description: "Pointer, wheel and key handling"},
	PhaseTrail:     {ID: PhaseTrail, Name: "Star Trail", Description: "Particle advance, cull and redraw"},
	PhaseOrbit:     {ID: PhaseOrbit, Name: "Orbit", Description: "Carousel spring and tween motion"},
	PhasePage:      {ID: PhasePage, Name: "Page", Description: "Marquee, scroll and contact form timers"},
	PhaseDraw:      {ID: PhaseDraw, Name: "Draw", Description: "Rendering the page"},
	PhaseTelemetry: {ID: PhaseTelemetry, Name: "Telemetry", Description: "Window stats and CSV output"},
}

// Phases returns every frame phase in execution order.
func Phases() []PhaseInfo {
	out := make([]PhaseInfo, len(phaseOrder))
	for i, id := range phaseOrder {
		out[i] = phaseInfo[id]
	}
	return out
}

// PhaseName returns the display name for a phase ID, or the ID itself if
// the phase is unknown.
func PhaseName(id string) string {
	if info, ok := phaseInfo[id]; ok {
		return info.Name
	}
	return id
}
