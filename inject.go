package sledge

type syntheticKind uint8

const (
	synthMove syntheticKind = iota
	synthPress
	synthRelease
	synthWheel
	synthKeyDown
	synthKeyUp
)

// syntheticEvent is a single queued raw input event. Injected events run
// through the same drag-detector state machine as real input, one per Tick.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   float64
	button MouseButton
	delta  float64
	key    Key
	mods   KeyModifiers
}

// InjectPress queues a left-button press at the given viewport coordinates.
// The event is consumed on the next Tick.
func (v *Viewport) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		kind: synthPress, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move to the given viewport coordinates.
func (v *Viewport) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		kind: synthMove, x: x, y: y,
	})
}

// InjectRelease queues a left-button release at the given coordinates.
func (v *Viewport) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		kind: synthRelease, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same
// coordinates. Consumes two ticks.
func (v *Viewport) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (v *Viewport) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		v.InjectMove(x, y)
	}
	v.InjectRelease(toX, toY)
}

// InjectWheel queues a scroll wheel event at the given coordinates.
func (v *Viewport) InjectWheel(delta, x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		kind: synthWheel, x: x, y: y, delta: delta,
	})
}

// InjectKey queues a key press followed by its release. Consumes two ticks.
func (v *Viewport) InjectKey(key Key) {
	v.injectQueue = append(v.injectQueue,
		syntheticEvent{kind: synthKeyDown, key: key},
		syntheticEvent{kind: synthKeyUp, key: key},
	)
}

// pumpInjected pops one queued synthetic event and feeds it through the raw
// callback it stands in for. Called from Tick.
func (v *Viewport) pumpInjected() {
	if len(v.injectQueue) == 0 {
		return
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	switch evt.kind {
	case synthMove:
		v.HandlePointerMove(evt.x, evt.y, evt.mods)
	case synthPress:
		v.HandlePointerDown(evt.button, evt.x, evt.y, evt.mods)
	case synthRelease:
		v.HandlePointerUp(evt.button, evt.x, evt.y, evt.mods)
	case synthWheel:
		v.HandleWheel(evt.delta, evt.x, evt.y, evt.mods)
	case synthKeyDown:
		v.HandleKeyDown(evt.key, evt.mods)
	case synthKeyUp:
		v.HandleKeyUp(evt.key, evt.mods)
	}
}
