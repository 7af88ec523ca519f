package sledge

import "math"

// dragThreshold is the per-axis pixel displacement from the mouse-down
// anchor that separates a click from a drag. The check is independent per
// axis: |dx| > 1 OR |dy| > 1 starts a drag; both <= 1 counts as a click.
const dragThreshold = 1.0

// The Handle* methods are the raw inbound callbacks from the windowing
// layer. Each synthesizes zero or more higher-level events and dispatches
// them in a fixed order: DragStart before MouseMove, MouseMove before
// DragMove, DragEnd before MouseUp, MouseUp before MouseClick.
//
// Each dispatched event is a fresh copy, so marking one Handled never
// suppresses the later events of the same callback.

// synthesize builds the base event for the current pointer state.
func (v *Viewport) synthesize(mods KeyModifiers, x, y float64) ViewportEvent {
	return ViewportEvent{
		Viewport:  v,
		Modifiers: mods,
		X:         x,
		Y:         y,
		LastX:     v.lastX,
		LastY:     v.lastY,
		StartX:    v.downX,
		StartY:    v.downY,
		Dragging:  v.dragging,
	}
}

// HandlePointerEnter reports the pointer entering the viewport.
func (v *Viewport) HandlePointerEnter(x, y float64, mods KeyModifiers) {
	e := v.synthesize(mods, x, y)
	v.fire(EventMouseEnter, &e)
}

// HandlePointerLeave reports the pointer leaving the viewport. Last-known
// pointer tracking is cleared; the drag anchor is deliberately kept so a
// drag that continues outside the viewport with the button held is still
// tracked by the viewport's own move and up callbacks.
func (v *Viewport) HandlePointerLeave(mods KeyModifiers) {
	e := v.synthesize(mods, v.lastX, v.lastY)
	v.fire(EventMouseLeave, &e)
	v.lastX, v.lastY = -1, -1
}

// HandlePointerDown reports a button press at (x, y). Unless a drag is
// already in progress, the position becomes the drag anchor and the button
// is recorded for the duration of the interaction.
func (v *Viewport) HandlePointerDown(button MouseButton, x, y float64, mods KeyModifiers) {
	if !v.dragging {
		v.downX, v.downY = x, y
		v.dragButton = button
	}
	e := v.synthesize(mods, x, y)
	e.Button = button
	e.Clicks = 1
	v.fire(EventMouseDown, &e)
}

// HandlePointerMove reports pointer motion. Crossing the drag threshold
// from a valid anchor fires DragStart (with the recorded drag button)
// before the regular MouseMove; while dragging, DragMove follows every
// MouseMove within the same callback.
func (v *Viewport) HandlePointerMove(x, y float64, mods KeyModifiers) {
	base := v.synthesize(mods, x, y)

	if !v.dragging && v.downX >= 0 && v.downY >= 0 &&
		(math.Abs(x-v.downX) > dragThreshold || math.Abs(y-v.downY) > dragThreshold) {
		v.dragging = true
		start := base
		start.Dragging = true
		start.Button = v.dragButton
		v.fire(EventDragStart, &start)
	}

	base.Dragging = v.dragging
	move := base
	v.fire(EventMouseMove, &move)

	if v.dragging {
		drag := base
		drag.Button = v.dragButton
		v.fire(EventDragMove, &drag)
	}

	v.lastX, v.lastY = x, y
}

// HandlePointerUp reports a button release. Releasing the drag button ends
// the drag (DragEnd, then MouseUp); releasing within the drag threshold of
// a valid anchor without ever dragging synthesizes MouseClick after
// MouseUp.
func (v *Viewport) HandlePointerUp(button MouseButton, x, y float64, mods KeyModifiers) {
	base := v.synthesize(mods, x, y)
	base.Button = button

	if v.dragging && button == v.dragButton {
		end := base
		v.fire(EventDragEnd, &end)
		up := base
		v.fire(EventMouseUp, &up)
	} else {
		up := base
		v.fire(EventMouseUp, &up)
		if !v.dragging && v.downX >= 0 && v.downY >= 0 &&
			math.Abs(x-v.downX) <= dragThreshold && math.Abs(y-v.downY) <= dragThreshold {
			click := base
			click.Clicks = 1
			v.fire(EventMouseClick, &click)
		}
	}

	if button == v.dragButton {
		v.dragging = false
	}
	if !v.dragging {
		v.downX, v.downY = -1, -1
	}
}

// HandleDoubleClick reports a native double click. No state transition.
func (v *Viewport) HandleDoubleClick(button MouseButton, x, y float64, mods KeyModifiers) {
	e := v.synthesize(mods, x, y)
	e.Button = button
	e.Clicks = 2
	v.fire(EventMouseDoubleClick, &e)
}

// HandleWheel reports scroll wheel movement at (x, y). No state transition.
func (v *Viewport) HandleWheel(delta, x, y float64, mods KeyModifiers) {
	e := v.synthesize(mods, x, y)
	e.Delta = delta
	v.fire(EventMouseWheel, &e)
}

// HandleKeyDown reports a key press. No state transition.
func (v *Viewport) HandleKeyDown(key Key, mods KeyModifiers) {
	e := v.synthesize(mods, v.lastX, v.lastY)
	e.KeyCode = key
	v.fire(EventKeyDown, &e)
}

// HandleKeyUp reports a key release. No state transition.
func (v *Viewport) HandleKeyUp(key Key, mods KeyModifiers) {
	e := v.synthesize(mods, v.lastX, v.lastY)
	e.KeyCode = key
	v.fire(EventKeyUp, &e)
}
