package systems

// Navigator scrolls the page to a named anchor.
type Navigator interface {
	NavigateTo(anchor string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(anchor string)

// NavigateTo calls f(anchor).
func (f NavigatorFunc) NavigateTo(anchor string) { f(anchor) }

// Orbit is the carousel selection state machine.
//
// The selected index is always within [0, Len()-1]. Transitions clamp and
// never wrap. Orbit has no notion of time; visuals interpolate separately.
type Orbit struct {
	anchors  []string
	selected int

	threshold  float64
	elasticity float64

	dragging   bool
	dragStartX float64
	dragX      float64

	nav      Navigator
	onChange []func(prev, next int)
}

// NewOrbit creates a carousel over items identified by their anchors.
// A negative initial index selects the middle item; others are clamped.
func NewOrbit(anchors []string, initial int, dragThreshold, elasticity float64) *Orbit {
	o := &Orbit{
		anchors:    append([]string(nil), anchors...),
		threshold:  dragThreshold,
		elasticity: elasticity,
	}
	if initial < 0 {
		initial = (len(anchors) - 1) / 2
	}
	o.selected = o.clamp(initial)
	return o
}

// SetNavigator sets the collaborator invoked when the focused item is clicked.
func (o *Orbit) SetNavigator(nav Navigator) {
	o.nav = nav
}

// OnChange registers an observer for selection changes.
func (o *Orbit) OnChange(fn func(prev, next int)) {
	o.onChange = append(o.onChange, fn)
}

// Len returns the number of items.
func (o *Orbit) Len() int {
	return len(o.anchors)
}

// Selected returns the focused index.
func (o *Orbit) Selected() int {
	return o.selected
}

// Anchor returns the anchor of the item at index, or "" if out of range.
func (o *Orbit) Anchor(index int) string {
	if index < 0 || index >= len(o.anchors) {
		return ""
	}
	return o.anchors[index]
}

// SelectNext moves focus one item forward, stopping at the last item.
func (o *Orbit) SelectNext() bool {
	return o.SelectIndex(o.selected + 1)
}

// SelectPrevious moves focus one item back, stopping at the first item.
func (o *Orbit) SelectPrevious() bool {
	return o.SelectIndex(o.selected - 1)
}

// SelectIndex jumps to index, clamped to the valid range.
// Returns whether the selection changed.
func (o *Orbit) SelectIndex(index int) bool {
	next := o.clamp(index)
	if next == o.selected {
		return false
	}
	prev := o.selected
	o.selected = next
	for _, fn := range o.onChange {
		fn(prev, next)
	}
	return true
}

func (o *Orbit) clamp(index int) int {
	if len(o.anchors) == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index > len(o.anchors)-1 {
		return len(o.anchors) - 1
	}
	return index
}

// DragStart begins a horizontal drag gesture at x.
func (o *Orbit) DragStart(x float64) {
	o.dragging = true
	o.dragStartX = x
	o.dragX = x
}

// DragMove updates the current pointer position of the gesture.
func (o *Orbit) DragMove(x float64) {
	if !o.dragging {
		return
	}
	o.dragX = x
}

// Dragging reports whether a gesture is in progress.
func (o *Orbit) Dragging() bool {
	return o.dragging
}

// DragDelta returns the net horizontal displacement of the gesture.
func (o *Orbit) DragDelta() float64 {
	if !o.dragging {
		return 0
	}
	return o.dragX - o.dragStartX
}

// DragOffset returns the elastic visual displacement of the drag area.
// Zero whenever no gesture is in progress.
func (o *Orbit) DragOffset() float64 {
	return o.DragDelta() * o.elasticity
}

// DragEnd finishes the gesture and applies its net displacement.
func (o *Orbit) DragEnd() bool {
	if !o.dragging {
		return false
	}
	delta := o.DragDelta()
	o.dragging = false
	return o.ApplyDrag(delta)
}

// ApplyDrag applies a completed gesture's net horizontal displacement.
// Dragging right past the threshold focuses the previous item; dragging left
// focuses the next one.
func (o *Orbit) ApplyDrag(delta float64) bool {
	switch {
	case delta > o.threshold:
		return o.SelectPrevious()
	case delta < -o.threshold:
		return o.SelectNext()
	}
	return false
}

// CancelDrag abandons the gesture without changing the selection.
func (o *Orbit) CancelDrag() {
	o.dragging = false
}

// Click handles a click on the item at index. Clicking the focused item
// navigates to its anchor and returns true; clicking any other item focuses it.
func (o *Orbit) Click(index int) bool {
	if index == o.selected {
		if o.nav != nil {
			o.nav.NavigateTo(o.Anchor(index))
		}
		return true
	}
	o.SelectIndex(index)
	return false
}
