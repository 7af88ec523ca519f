package sledge

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Key identifies a keyboard key. Aliased to ebiten.Key so driver code can
// pass key codes through without conversion.
type Key = ebiten.Key

// EventType identifies a kind of viewport event.
type EventType uint8

const (
	EventMouseEnter       EventType = iota // fires when the pointer enters the viewport
	EventMouseLeave                        // fires when the pointer leaves the viewport
	EventMouseMove                         // fires on every pointer move
	EventMouseDown                         // fires when a pointer button is pressed
	EventMouseUp                           // fires when a pointer button is released
	EventMouseClick                        // fires on release within the drag threshold of the press
	EventMouseDoubleClick                  // fires on a double click
	EventMouseWheel                        // fires on scroll wheel movement
	EventDragStart                         // fires once when movement exceeds the drag threshold
	EventDragMove                          // fires after every move while dragging
	EventDragEnd                           // fires when the drag button is released
	EventKeyDown                           // fires when a key is pressed
	EventKeyUp                             // fires when a key is released
	EventUpdateFrame                       // fires every frame tick, never short-circuited
)

// String returns the event type name for diagnostics.
func (t EventType) String() string {
	switch t {
	case EventMouseEnter:
		return "MouseEnter"
	case EventMouseLeave:
		return "MouseLeave"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventMouseClick:
		return "MouseClick"
	case EventMouseDoubleClick:
		return "MouseDoubleClick"
	case EventMouseWheel:
		return "MouseWheel"
	case EventDragStart:
		return "DragStart"
	case EventDragMove:
		return "DragMove"
	case EventDragEnd:
		return "DragEnd"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventUpdateFrame:
		return "UpdateFrame"
	default:
		return "Unknown"
	}
}

// ViewportEvent carries the data for a single synthesized viewport event.
// A fresh event is constructed per dispatch; setting Handled stops propagation
// to listeners registered after the current one, for this event only.
type ViewportEvent struct {
	// Viewport is the viewport that synthesized the event.
	Viewport *Viewport

	// Handled stops propagation to the remaining listeners when set.
	// It is never reset within a dispatch; later events start unhandled.
	Handled bool

	// Modifiers holds the keyboard modifier state at event time.
	Modifiers KeyModifiers

	// KeyCode is the key for EventKeyDown / EventKeyUp.
	KeyCode Key

	// Button is the mouse button for button and drag events. Drag events
	// always carry the button recorded at the drag anchor.
	Button MouseButton

	// Clicks is 1 for clicks and 2 for double clicks.
	Clicks int

	// Delta is the scroll wheel offset for EventMouseWheel.
	Delta float64

	// X, Y is the current pointer position in viewport pixels.
	X, Y float64

	// LastX, LastY is the previous pointer position, or -1 when the
	// pointer has not been tracked since entering the viewport.
	LastX, LastY float64

	// StartX, StartY is the mouse-down anchor position, or -1 when no
	// press is being tracked.
	StartX, StartY float64

	// Dragging reports whether the viewport is in a drag at event time.
	Dragging bool
}

// Listener receives synthesized viewport events. Listeners are invoked in
// registration order; any method may set e.Handled to stop propagation of
// that event. Embed NopListener to implement only the methods you need.
//
// Listener methods run on the UI thread and must not block.
type Listener interface {
	MouseEnter(e *ViewportEvent)
	MouseLeave(e *ViewportEvent)
	MouseMove(e *ViewportEvent)
	MouseDown(e *ViewportEvent)
	MouseUp(e *ViewportEvent)
	MouseClick(e *ViewportEvent)
	MouseDoubleClick(e *ViewportEvent)
	MouseWheel(e *ViewportEvent)
	DragStart(e *ViewportEvent)
	DragMove(e *ViewportEvent)
	DragEnd(e *ViewportEvent)
	KeyDown(e *ViewportEvent)
	KeyUp(e *ViewportEvent)

	// UpdateFrame fires once per Viewport.Tick for every listener,
	// regardless of Handled state.
	UpdateFrame(v *Viewport, dt float64)
}

// NopListener is a Listener with empty implementations of every method.
// Embed it to pick out the events a tool cares about.
type NopListener struct{}

func (NopListener) MouseEnter(*ViewportEvent)       {}
func (NopListener) MouseLeave(*ViewportEvent)       {}
func (NopListener) MouseMove(*ViewportEvent)        {}
func (NopListener) MouseDown(*ViewportEvent)        {}
func (NopListener) MouseUp(*ViewportEvent)          {}
func (NopListener) MouseClick(*ViewportEvent)       {}
func (NopListener) MouseDoubleClick(*ViewportEvent) {}
func (NopListener) MouseWheel(*ViewportEvent)       {}
func (NopListener) DragStart(*ViewportEvent)        {}
func (NopListener) DragMove(*ViewportEvent)         {}
func (NopListener) DragEnd(*ViewportEvent)          {}
func (NopListener) KeyDown(*ViewportEvent)          {}
func (NopListener) KeyUp(*ViewportEvent)            {}
func (NopListener) UpdateFrame(*Viewport, float64)  {}

// ListenerFault describes a panic recovered from a listener during dispatch.
// Faults are surfaced through the viewport's fault handler; dispatch to the
// remaining listeners continues.
type ListenerFault struct {
	// Listener is the listener that panicked.
	Listener Listener
	// Event is the event type being dispatched when the panic occurred.
	Event EventType
	// Recovered is the value recovered from the panic.
	Recovered any
	// Stack is the call stack captured at recovery.
	Stack []byte
}
