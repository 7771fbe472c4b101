// Package ui draws the interactive widgets and debug panels over the page.
// Debug panels are described by metadata so new readouts need no layout code.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText        WidgetType = iota // Plain text with format string
	WidgetBar                           // Progress bar [0, 1]
	WidgetCenteredBar                   // Centered bar over a symmetric range
	WidgetColorSwatch                   // Color preview square
	WidgetSection                       // Section header
	WidgetSpacer                        // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float32
	Max float32
}

// DefaultRange returns a [0, 1] range.
func DefaultRange() FieldRange {
	return FieldRange{Min: 0, Max: 1}
}

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	ID          string
	Label       string
	Widget      WidgetType
	Format      string // Printf format for numeric text
	Range       FieldRange
	Color       rl.Color
	Visible     func(any) bool // nil = always visible
	Getter      func(any) float32
	TextGetter  func(any) string
	ColorGetter func(any) rl.Color
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	ID      string
	Title   string
	Fields  []FieldDescriptor
	Visible func(any) bool
}

// Theme holds UI styling constants shared by the form and debug panels.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFill       rl.Color
	BarNegative   rl.Color
	BarPositive   rl.Color

	// Contact form
	InputBg     rl.Color
	InputBorder rl.Color
	InputFocus  rl.Color
	InputText   rl.Color
	Button      rl.Color
	ButtonHover rl.Color
	ButtonText  rl.Color
	ErrorText   rl.Color
	SuccessText rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	InputFontSize  int32
}

// DefaultTheme returns the site theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 10, G: 10, B: 12, A: 230},
		PanelBorder:   rl.Color{R: 255, G: 255, B: 255, A: 40},
		SectionHeader: rl.Color{R: 103, G: 232, B: 249, A: 255},
		LabelColor:    rl.Color{R: 156, G: 163, B: 175, A: 255},
		ValueColor:    rl.Color{R: 235, G: 235, B: 235, A: 255},
		BarBg:         rl.Color{R: 40, G: 40, B: 44, A: 255},
		BarFill:       rl.Color{R: 6, G: 182, B: 212, A: 255},
		BarNegative:   rl.Color{R: 239, G: 68, B: 68, A: 255},
		BarPositive:   rl.Color{R: 34, G: 197, B: 94, A: 255},

		InputBg:     rl.Color{R: 255, G: 255, B: 255, A: 12},
		InputBorder: rl.Color{R: 255, G: 255, B: 255, A: 25},
		InputFocus:  rl.Color{R: 255, G: 77, B: 41, A: 255},
		InputText:   rl.White,
		Button:      rl.White,
		ButtonHover: rl.Color{R: 255, G: 77, B: 41, A: 255},
		ButtonText:  rl.Black,
		ErrorText:   rl.Color{R: 239, G: 68, B: 68, A: 255},
		SuccessText: rl.Color{R: 34, G: 197, B: 94, A: 255},

		Padding:        10,
		LineHeight:     16,
		LabelWidth:     80,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
		InputFontSize:  18,
	}
}
