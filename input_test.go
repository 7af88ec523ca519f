package sledge

import (
	"testing"
)

// eventRecorder captures every dispatched event in order.
type eventRecorder struct {
	NopListener
	kinds  []EventType
	events []ViewportEvent
}

func (r *eventRecorder) record(kind EventType, e *ViewportEvent) {
	r.kinds = append(r.kinds, kind)
	r.events = append(r.events, *e)
}

func (r *eventRecorder) MouseEnter(e *ViewportEvent)       { r.record(EventMouseEnter, e) }
func (r *eventRecorder) MouseLeave(e *ViewportEvent)       { r.record(EventMouseLeave, e) }
func (r *eventRecorder) MouseMove(e *ViewportEvent)        { r.record(EventMouseMove, e) }
func (r *eventRecorder) MouseDown(e *ViewportEvent)        { r.record(EventMouseDown, e) }
func (r *eventRecorder) MouseUp(e *ViewportEvent)          { r.record(EventMouseUp, e) }
func (r *eventRecorder) MouseClick(e *ViewportEvent)       { r.record(EventMouseClick, e) }
func (r *eventRecorder) MouseDoubleClick(e *ViewportEvent) { r.record(EventMouseDoubleClick, e) }
func (r *eventRecorder) MouseWheel(e *ViewportEvent)       { r.record(EventMouseWheel, e) }
func (r *eventRecorder) DragStart(e *ViewportEvent)        { r.record(EventDragStart, e) }
func (r *eventRecorder) DragMove(e *ViewportEvent)         { r.record(EventDragMove, e) }
func (r *eventRecorder) DragEnd(e *ViewportEvent)          { r.record(EventDragEnd, e) }
func (r *eventRecorder) KeyDown(e *ViewportEvent)          { r.record(EventKeyDown, e) }
func (r *eventRecorder) KeyUp(e *ViewportEvent)            { r.record(EventKeyUp, e) }

func (r *eventRecorder) count(kind EventType) int {
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

func (r *eventRecorder) firstIndex(kind EventType) int {
	for i, k := range r.kinds {
		if k == kind {
			return i
		}
	}
	return -1
}

func newTestViewport() (*Viewport, *eventRecorder) {
	cam := NewOrthographicCamera(AxisTop)
	v := NewViewport(cam, 800, 600)
	rec := &eventRecorder{}
	v.AddListener(rec)
	return v, rec
}

func TestClickWithinThreshold(t *testing.T) {
	v, rec := newTestViewport()

	v.HandlePointerDown(MouseButtonLeft, 50, 50, 0)
	v.HandlePointerMove(50, 51, 0)
	v.HandlePointerUp(MouseButtonLeft, 50, 51, 0)

	want := []EventType{EventMouseDown, EventMouseMove, EventMouseUp, EventMouseClick}
	if len(rec.kinds) != len(want) {
		t.Fatalf("got %v, want %v", rec.kinds, want)
	}
	for i, k := range want {
		if rec.kinds[i] != k {
			t.Errorf("event %d = %s, want %s", i, rec.kinds[i], k)
		}
	}
	if rec.count(EventDragStart) != 0 {
		t.Error("movement within the threshold started a drag")
	}
}

func TestDragSequence(t *testing.T) {
	v, rec := newTestViewport()

	v.HandlePointerDown(MouseButtonLeft, 50, 50, 0)
	v.HandlePointerMove(52, 50, 0)

	// Crossing the threshold fires DragStart, MouseMove, DragMove in order.
	si := rec.firstIndex(EventDragStart)
	mi := rec.firstIndex(EventMouseMove)
	di := rec.firstIndex(EventDragMove)
	if si < 0 || mi < 0 || di < 0 {
		t.Fatalf("missing drag events: %v", rec.kinds)
	}
	if !(si < mi && mi < di) {
		t.Errorf("drag ordering = %v, want DragStart before MouseMove before DragMove", rec.kinds)
	}

	// Further movement repeats MouseMove and DragMove, not DragStart.
	v.HandlePointerMove(60, 55, 0)
	if rec.count(EventDragStart) != 1 {
		t.Errorf("DragStart fired %d times, want 1", rec.count(EventDragStart))
	}
	if rec.count(EventDragMove) != 2 {
		t.Errorf("DragMove fired %d times, want 2", rec.count(EventDragMove))
	}

	// Releasing the drag button fires DragEnd before MouseUp and no click.
	v.HandlePointerUp(MouseButtonLeft, 60, 55, 0)
	ei := rec.firstIndex(EventDragEnd)
	ui := rec.firstIndex(EventMouseUp)
	if ei < 0 || ui < 0 || ei > ui {
		t.Errorf("release ordering = %v, want DragEnd before MouseUp", rec.kinds)
	}
	if rec.count(EventMouseClick) != 0 {
		t.Error("a completed drag synthesized a click")
	}
}

func TestDragEventsCarryDragButton(t *testing.T) {
	v, rec := newTestViewport()

	v.HandlePointerDown(MouseButtonRight, 10, 10, 0)
	v.HandlePointerMove(20, 10, 0)
	v.HandlePointerUp(MouseButtonRight, 20, 10, 0)

	for i, k := range rec.kinds {
		switch k {
		case EventDragStart, EventDragMove, EventDragEnd:
			if rec.events[i].Button != MouseButtonRight {
				t.Errorf("%s carried button %d, want MouseButtonRight", k, rec.events[i].Button)
			}
			if !rec.events[i].Dragging {
				t.Errorf("%s had Dragging=false", k)
			}
		}
	}
}

func TestDragStartRequiresAnchor(t *testing.T) {
	v, rec := newTestViewport()

	// Moves without a prior press never start a drag, however far they go.
	v.HandlePointerMove(0, 0, 0)
	v.HandlePointerMove(500, 500, 0)
	if rec.count(EventDragStart) != 0 {
		t.Errorf("drag started without an anchor: %v", rec.kinds)
	}
}

func TestLeaveClearsTrackingKeepsAnchor(t *testing.T) {
	v, rec := newTestViewport()

	v.HandlePointerDown(MouseButtonLeft, 50, 50, 0)
	v.HandlePointerMove(50, 50, 0)
	v.HandlePointerLeave(0)

	// Last-known tracking resets; the next event reports -1 sentinels.
	v.HandleKeyDown(Key(0), 0)
	last := rec.events[len(rec.events)-1]
	if last.LastX != -1 || last.LastY != -1 {
		t.Errorf("after leave: LastX,LastY = %f,%f, want -1,-1", last.LastX, last.LastY)
	}

	// The anchor survives: re-entering and crossing the threshold drags.
	v.HandlePointerMove(55, 50, 0)
	if rec.count(EventDragStart) != 1 {
		t.Error("drag anchor did not survive pointer leave")
	}
}

func TestNonDragButtonReleaseKeepsDrag(t *testing.T) {
	v, rec := newTestViewport()

	v.HandlePointerDown(MouseButtonLeft, 10, 10, 0)
	v.HandlePointerMove(20, 10, 0)

	// Releasing a different button must not end the drag.
	v.HandlePointerUp(MouseButtonRight, 20, 10, 0)
	if rec.count(EventDragEnd) != 0 {
		t.Error("releasing a non-drag button ended the drag")
	}
	v.HandlePointerMove(30, 10, 0)
	if rec.count(EventDragMove) != 2 {
		t.Errorf("drag did not continue after foreign release: %v", rec.kinds)
	}

	v.HandlePointerUp(MouseButtonLeft, 30, 10, 0)
	if rec.count(EventDragEnd) != 1 {
		t.Error("releasing the drag button did not end the drag")
	}
}

func TestClickRequiresPriorPress(t *testing.T) {
	v, rec := newTestViewport()

	// A release with no tracked press must not synthesize a click.
	v.HandlePointerUp(MouseButtonLeft, 50, 50, 0)
	if rec.count(EventMouseClick) != 0 {
		t.Error("release without press synthesized a click")
	}
	if rec.count(EventMouseUp) != 1 {
		t.Error("release did not fire MouseUp")
	}
}

func TestDoubleClick(t *testing.T) {
	v, rec := newTestViewport()

	v.HandleDoubleClick(MouseButtonLeft, 100, 100, 0)
	i := rec.firstIndex(EventMouseDoubleClick)
	if i < 0 {
		t.Fatal("double click not dispatched")
	}
	if rec.events[i].Clicks != 2 {
		t.Errorf("Clicks = %d, want 2", rec.events[i].Clicks)
	}
}

func TestWheel(t *testing.T) {
	v, rec := newTestViewport()

	v.HandleWheel(-3, 200, 150, ModCtrl)
	i := rec.firstIndex(EventMouseWheel)
	if i < 0 {
		t.Fatal("wheel not dispatched")
	}
	e := rec.events[i]
	if e.Delta != -3 {
		t.Errorf("Delta = %f, want -3", e.Delta)
	}
	if !e.Modifiers.Control() {
		t.Error("modifier state not carried")
	}
}

func TestKeyEventsUseLastPointerPosition(t *testing.T) {
	v, rec := newTestViewport()

	v.HandlePointerMove(120, 80, 0)
	v.HandleKeyDown(Key(5), ModShift)

	i := rec.firstIndex(EventKeyDown)
	if i < 0 {
		t.Fatal("key down not dispatched")
	}
	e := rec.events[i]
	if e.X != 120 || e.Y != 80 {
		t.Errorf("key event at (%f, %f), want last pointer position (120, 80)", e.X, e.Y)
	}
	if e.KeyCode != Key(5) {
		t.Errorf("KeyCode = %d, want 5", e.KeyCode)
	}
}

func TestHandledStopsPropagation(t *testing.T) {
	v, first := newTestViewport()
	blocker := &handlingListener{handle: true}
	last := &eventRecorder{}
	v.AddListener(blocker)
	v.AddListener(last)

	v.HandlePointerDown(MouseButtonLeft, 10, 10, 0)
	if first.count(EventMouseDown) != 1 {
		t.Error("listener before the blocker was skipped")
	}
	if last.count(EventMouseDown) != 0 {
		t.Error("handled event still reached a later listener")
	}

	// Handled applies to one event only; the next one propagates fresh.
	blocker.handle = false
	v.HandlePointerUp(MouseButtonLeft, 10, 10, 0)
	if last.count(EventMouseUp) != 1 {
		t.Error("Handled leaked into the following event")
	}
}

// handlingListener marks every mouse-down handled while handle is true.
type handlingListener struct {
	NopListener
	handle bool
}

func (h *handlingListener) MouseDown(e *ViewportEvent) {
	if h.handle {
		e.Handled = true
	}
}

func TestHandledInSameCallbackDoesNotSuppressLaterEvents(t *testing.T) {
	v, _ := newTestViewport()
	swallow := &dragStartSwallower{}
	rec := &eventRecorder{}
	v.AddListener(swallow)
	v.AddListener(rec)

	v.HandlePointerDown(MouseButtonLeft, 10, 10, 0)
	v.HandlePointerMove(20, 10, 0)

	// DragStart was handled, but the MouseMove and DragMove of the same
	// callback are separate events and still propagate.
	if rec.count(EventDragStart) != 0 {
		t.Error("handled DragStart reached a later listener")
	}
	if rec.count(EventMouseMove) != 1 || rec.count(EventDragMove) != 1 {
		t.Errorf("sibling events suppressed: %v", rec.kinds)
	}
}

type dragStartSwallower struct {
	NopListener
}

func (dragStartSwallower) DragStart(e *ViewportEvent) { e.Handled = true }
