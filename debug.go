package sledge

import (
	"fmt"
	"os"
)

// debugLogEvent prints a dispatched event to stderr. Only called when the
// viewport is in debug mode.
func (v *Viewport) debugLogEvent(kind EventType, e *ViewportEvent) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[sledge] %s at (%.1f, %.1f) button=%d mods=%04b dragging=%t\n",
		kind, e.X, e.Y, e.Button, e.Modifiers, e.Dragging)
}

// logFault prints a recovered listener panic to stderr. Used when no fault
// handler is installed.
func logFault(f ListenerFault) {
	_, _ = fmt.Fprintf(os.Stderr, "[sledge] listener panic during %s: %v\n%s",
		f.Event, f.Recovered, f.Stack)
}
