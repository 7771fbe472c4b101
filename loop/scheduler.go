// Package loop provides the single-threaded frame and input dispatcher that
// drives per-frame effects.
//
// Handlers are invoked synchronously in registration order. A Subscription
// cancelled while a dispatch is in flight is skipped for the remainder of that
// dispatch and never invoked again.
package loop

// FrameFunc is called once per rendered frame.
type FrameFunc func()

// PointerFunc receives pointer positions in screen pixels.
type PointerFunc func(x, y float32)

// ResizeFunc receives the new viewport dimensions.
type ResizeFunc func(width, height int32)

// Subscription releases a registered handler.
type Subscription struct {
	entry *entry
	owner *Scheduler
}

// Cancel releases the handler. Safe to call more than once and on a zero Subscription.
func (s Subscription) Cancel() {
	if s.entry == nil || s.entry.cancelled {
		return
	}
	s.entry.cancelled = true
	s.owner.live--
	s.owner.dirty = true
}

// Active reports whether the handler is still registered.
func (s Subscription) Active() bool {
	return s.entry != nil && !s.entry.cancelled
}

type entry struct {
	frame     FrameFunc
	pointer   PointerFunc
	resize    ResizeFunc
	cancelled bool
}

// Scheduler routes frame ticks and input events to subscribers.
type Scheduler struct {
	frames   []*entry
	pointers []*entry
	resizes  []*entry

	live       int
	dirty      bool
	dispatches int
	frameCount uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// OnFrame registers a per-frame handler.
func (s *Scheduler) OnFrame(fn FrameFunc) Subscription {
	e := &entry{frame: fn}
	s.frames = append(s.frames, e)
	s.live++
	return Subscription{entry: e, owner: s}
}

// OnPointerMove registers a pointer-move handler.
func (s *Scheduler) OnPointerMove(fn PointerFunc) Subscription {
	e := &entry{pointer: fn}
	s.pointers = append(s.pointers, e)
	s.live++
	return Subscription{entry: e, owner: s}
}

// OnResize registers a viewport resize handler.
func (s *Scheduler) OnResize(fn ResizeFunc) Subscription {
	e := &entry{resize: fn}
	s.resizes = append(s.resizes, e)
	s.live++
	return Subscription{entry: e, owner: s}
}

// Frame dispatches one frame tick.
func (s *Scheduler) Frame() {
	s.frameCount++
	s.begin()
	for _, e := range s.frames {
		if !e.cancelled {
			e.frame()
		}
	}
	s.end()
}

// PointerMove dispatches a pointer-move event.
func (s *Scheduler) PointerMove(x, y float32) {
	s.begin()
	for _, e := range s.pointers {
		if !e.cancelled {
			e.pointer(x, y)
		}
	}
	s.end()
}

// Resize dispatches a viewport resize event.
func (s *Scheduler) Resize(width, height int32) {
	s.begin()
	for _, e := range s.resizes {
		if !e.cancelled {
			e.resize(width, height)
		}
	}
	s.end()
}

// Len returns the number of live subscriptions.
func (s *Scheduler) Len() int {
	return s.live
}

// FrameCount returns the number of frames dispatched so far.
func (s *Scheduler) FrameCount() uint64 {
	return s.frameCount
}

func (s *Scheduler) begin() {
	s.dispatches++
}

// end compacts cancelled entries once no dispatch is iterating the lists.
func (s *Scheduler) end() {
	s.dispatches--
	if s.dispatches > 0 || !s.dirty {
		return
	}
	s.frames = compact(s.frames)
	s.pointers = compact(s.pointers)
	s.resizes = compact(s.resizes)
	s.dirty = false
}

func compact(entries []*entry) []*entry {
	alive := 0
	for _, e := range entries {
		if e.cancelled {
			continue
		}
		entries[alive] = e
		alive++
	}
	for i := alive; i < len(entries); i++ {
		entries[i] = nil
	}
	return entries[:alive]
}
