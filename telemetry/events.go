// Package telemetry provides frame statistics, performance timing, event
// logging, bookmarks and trail snapshots.
package telemetry

import "log/slog"

// EventType identifies telemetry events.
type EventType string

const (
	EventSelect   EventType = "select"
	EventNavigate EventType = "navigate"
	EventResize   EventType = "resize"
	EventContact  EventType = "contact"
	EventTeardown EventType = "teardown"
)

// Event is a single discrete interaction recorded to events.csv.
type Event struct {
	Type   EventType `csv:"type"`
	Frame  int64     `csv:"frame"`
	From   int       `csv:"from"`
	To     int       `csv:"to"`
	Detail string    `csv:"detail"`
}

// NewSelectEvent records a carousel selection change.
func NewSelectEvent(frame int64, from, to int) Event {
	return Event{Type: EventSelect, Frame: frame, From: from, To: to}
}

// NewNavigateEvent records a click-through to a page section.
func NewNavigateEvent(frame int64, anchor string) Event {
	return Event{Type: EventNavigate, Frame: frame, Detail: anchor}
}

// NewResizeEvent records a viewport resize.
func NewResizeEvent(frame int64, width, height int) Event {
	return Event{Type: EventResize, Frame: frame, From: width, To: height}
}

// NewContactEvent records a contact message handoff.
func NewContactEvent(frame int64) Event {
	return Event{Type: EventContact, Frame: frame}
}

// NewTeardownEvent records the trail being closed.
func NewTeardownEvent(frame int64) Event {
	return Event{Type: EventTeardown, Frame: frame}
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", string(e.Type)),
		slog.Int64("frame", e.Frame),
	}
	switch e.Type {
	case EventSelect, EventResize:
		attrs = append(attrs, slog.Int("from", e.From), slog.Int("to", e.To))
	case EventNavigate:
		attrs = append(attrs, slog.String("anchor", e.Detail))
	}
	return slog.GroupValue(attrs...)
}
