package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/systems"
)

// InspectorData is the live state of one carousel planet.
type InspectorData struct {
	Planet    content.Planet
	Slot      systems.ItemLayout
	Visual    systems.Visual
	Dragging  bool
	DragDelta float64
	Settled   bool
}

// Inspector renders the orbit inspection panel.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
	sections []SectionDescriptor
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		sections: inspectorSections(),
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x, ins.y = x, y
}

// Draw renders the panel for the given planet and returns the Y below it.
func (ins *Inspector) Draw(data InspectorData) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	panelHeight := int32(300)
	r.DrawPanel(ins.x, ins.y, ins.width, panelHeight)

	x := ins.x + padding
	y := ins.y + padding
	contentWidth := ins.width - padding*2

	rl.DrawCircle(x+10, y+10, 10, data.Planet.Color)
	rl.DrawText(data.Planet.Name, x+28, y+2, 16, rl.White)
	y += 26
	rl.DrawText(data.Planet.Description, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight + 4

	for _, sd := range ins.sections {
		y = r.DrawSection(x, y, sd, data, contentWidth)
	}
	return ins.y + panelHeight
}

func inspectorSections() []SectionDescriptor {
	get := func(fn func(InspectorData) float32) func(any) float32 {
		return func(v any) float32 { return fn(v.(InspectorData)) }
	}
	return []SectionDescriptor{
		{
			ID:    "target",
			Title: "Target",
			Fields: []FieldDescriptor{
				{ID: "offset", Label: "Offset", Widget: WidgetText, Format: "%+.0f",
					Getter: get(func(d InspectorData) float32 { return float32(d.Slot.Offset) })},
				{ID: "rotation", Label: "Rotation", Widget: WidgetText, Format: "%+.1f deg",
					Getter: get(func(d InspectorData) float32 { return float32(d.Slot.Rotation) })},
				{ID: "focus", Label: "Focus", Widget: WidgetText,
					TextGetter: func(v any) string {
						if v.(InspectorData).Slot.Focused {
							return "focused"
						}
						return "resting"
					}},
			},
		},
		{
			ID:    "visual",
			Title: "Animated",
			Fields: []FieldDescriptor{
				{ID: "vrot", Label: "Rotation", Widget: WidgetCenteredBar, Range: FieldRange{Min: -90, Max: 90},
					Getter: get(func(d InspectorData) float32 { return float32(d.Visual.Rotation) })},
				{ID: "scale", Label: "Scale", Widget: WidgetBar, Range: FieldRange{Min: 0, Max: 1.5},
					Getter: get(func(d InspectorData) float32 { return float32(d.Visual.Scale) })},
				{ID: "opacity", Label: "Opacity", Widget: WidgetBar, Range: DefaultRange(),
					Getter: get(func(d InspectorData) float32 { return float32(d.Visual.Opacity) })},
				{ID: "gray", Label: "Grayscale", Widget: WidgetBar, Range: DefaultRange(),
					Getter: get(func(d InspectorData) float32 { return float32(d.Visual.Grayscale) })},
				{ID: "bright", Label: "Brightness", Widget: WidgetBar, Range: FieldRange{Min: 0, Max: 1.5},
					Getter: get(func(d InspectorData) float32 { return float32(d.Visual.Brightness) })},
			},
		},
		{
			ID:    "drag",
			Title: "Gesture",
			Fields: []FieldDescriptor{
				{ID: "delta", Label: "Drag", Widget: WidgetCenteredBar, Range: FieldRange{Min: -100, Max: 100},
					Visible: func(v any) bool { return v.(InspectorData).Dragging },
					Getter:  get(func(d InspectorData) float32 { return float32(d.DragDelta) })},
				{ID: "settled", Label: "Motion", Widget: WidgetText,
					TextGetter: func(v any) string {
						if v.(InspectorData).Settled {
							return "settled"
						}
						return "moving"
					}},
			},
		},
	}
}
