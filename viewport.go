package sledge

import (
	rtdebug "runtime/debug"
)

// Viewport is the addressable unit editing tools and renderers attach to.
// It owns exactly one camera and a rectangular pixel extent, holds the
// ordered listener list, the cooperative input lock, and the transient
// pointer-tracking state the drag detector runs on.
//
// All viewport methods must be called from the UI thread; there is no
// internal synchronization.
type Viewport struct {
	camera *Camera
	width  float64
	height float64

	// Listeners are dispatched in registration order. The list is not
	// deduplicated; registering a listener twice invokes it twice.
	listeners []Listener

	lock InputLock

	debug   bool
	onFault func(ListenerFault)

	// Pointer tracking. -1 is the "not tracked" sentinel for both the
	// last-known position and the mouse-down anchor.
	lastX, lastY float64
	downX, downY float64
	dragButton   MouseButton
	dragging     bool

	injectQueue []syntheticEvent
	runner      *TestRunner
}

// NewViewport creates a viewport of the given pixel extent owning cam.
func NewViewport(cam *Camera, width, height float64) *Viewport {
	v := &Viewport{
		width:  width,
		height: height,
		lastX:  -1,
		lastY:  -1,
		downX:  -1,
		downY:  -1,
	}
	v.SetCamera(cam)
	return v
}

// Camera returns the viewport's current camera.
func (v *Viewport) Camera() *Camera {
	return v.camera
}

// SetCamera replaces the viewport's camera, e.g. when the user switches
// between 2D and 3D view modes. The camera's pixel extent is synced to the
// viewport's.
func (v *Viewport) SetCamera(cam *Camera) {
	v.camera = cam
	if cam != nil {
		cam.Viewport = Rect{Width: v.width, Height: v.height}
		cam.MarkDirty()
	}
}

// Resize updates the viewport's pixel extent and the camera's with it.
func (v *Viewport) Resize(width, height float64) {
	v.width = width
	v.height = height
	if v.camera != nil {
		v.camera.Viewport = Rect{Width: width, Height: height}
		v.camera.MarkDirty()
	}
}

// Width returns the viewport width in pixels.
func (v *Viewport) Width() float64 { return v.width }

// Height returns the viewport height in pixels.
func (v *Viewport) Height() float64 { return v.height }

// Lock returns the viewport's input lock.
func (v *Viewport) Lock() *InputLock {
	return &v.lock
}

// AddListener appends a listener to the dispatch order.
func (v *Viewport) AddListener(l Listener) {
	v.listeners = append(v.listeners, l)
}

// RemoveListener removes the first registration of l (identity comparison).
func (v *Viewport) RemoveListener(l Listener) {
	for i, registered := range v.listeners {
		if registered == l {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			return
		}
	}
}

// SetFaultHandler installs a sink for listener panics recovered during
// dispatch. With no handler installed, faults are logged to stderr.
func (v *Viewport) SetFaultHandler(fn func(ListenerFault)) {
	v.onFault = fn
}

// SetDebugMode enables or disables stderr logging of every dispatched event.
func (v *Viewport) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// Tick advances the viewport by one frame: the scripted test runner and the
// synthetic input queue are pumped, camera glide animations advance, and
// UpdateFrame fans out to every listener. The frame fan-out never checks
// Handled and never stops early.
func (v *Viewport) Tick(dt float64) {
	if v.runner != nil {
		v.runner.step(v)
	}
	v.pumpInjected()
	if v.camera != nil {
		v.camera.update(float32(dt))
	}
	for _, l := range v.listeners {
		v.invokeFrame(l, dt)
	}
}

// fire dispatches one synthesized event to the listeners in registration
// order, stopping once a listener marks it handled.
func (v *Viewport) fire(kind EventType, e *ViewportEvent) {
	if v.debug {
		v.debugLogEvent(kind, e)
	}
	for _, l := range v.listeners {
		v.invoke(l, kind, e)
		if e.Handled {
			return
		}
	}
}

// invoke calls a single listener inside a recover boundary. A panicking
// listener is converted to a ListenerFault and must not interrupt dispatch
// to the remaining listeners.
func (v *Viewport) invoke(l Listener, kind EventType, e *ViewportEvent) {
	defer v.recoverFault(l, kind)

	switch kind {
	case EventMouseEnter:
		l.MouseEnter(e)
	case EventMouseLeave:
		l.MouseLeave(e)
	case EventMouseMove:
		l.MouseMove(e)
	case EventMouseDown:
		l.MouseDown(e)
	case EventMouseUp:
		l.MouseUp(e)
	case EventMouseClick:
		l.MouseClick(e)
	case EventMouseDoubleClick:
		l.MouseDoubleClick(e)
	case EventMouseWheel:
		l.MouseWheel(e)
	case EventDragStart:
		l.DragStart(e)
	case EventDragMove:
		l.DragMove(e)
	case EventDragEnd:
		l.DragEnd(e)
	case EventKeyDown:
		l.KeyDown(e)
	case EventKeyUp:
		l.KeyUp(e)
	}
}

// invokeFrame delivers the frame tick to one listener with the same fault
// isolation as event dispatch.
func (v *Viewport) invokeFrame(l Listener, dt float64) {
	defer v.recoverFault(l, EventUpdateFrame)
	l.UpdateFrame(v, dt)
}

// recoverFault converts a listener panic into a ListenerFault with a
// captured stack and forwards it to the fault handler.
func (v *Viewport) recoverFault(l Listener, kind EventType) {
	r := recover()
	if r == nil {
		return
	}
	fault := ListenerFault{
		Listener:  l,
		Event:     kind,
		Recovered: r,
		Stack:     rtdebug.Stack(),
	}
	if v.onFault != nil {
		v.onFault(fault)
		return
	}
	logFault(fault)
}
