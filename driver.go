package sledge

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// Ticks between two clicks for the second to count as a double-click.
	doubleClickTicks = 30
	// Maximum cursor travel in pixels between the two clicks.
	doubleClickSlop = 2.0
)

// Driver polls ebiten input state each frame and translates it into the
// raw pointer and key callbacks of a Viewport. Call Update once per
// ebiten tick, before Viewport.Tick.
type Driver struct {
	viewport *Viewport

	inside       bool
	prevX, prevY int
	held         [len(ebitenButtons)]bool

	tick            int
	lastClickTick   int
	lastClickX      float64
	lastClickY      float64
	lastClickButton MouseButton

	keyBuf []ebiten.Key
}

// NewDriver creates a Driver feeding the given viewport.
func NewDriver(v *Viewport) *Driver {
	return &Driver{
		viewport:      v,
		prevX:         -1,
		prevY:         -1,
		lastClickTick: -doubleClickTicks,
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var ebitenButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// pointerFrame is one frame of polled pointer state. Update fills it from
// ebiten; applyPointer turns it into viewport callbacks.
type pointerFrame struct {
	x, y     float64
	pressed  [len(ebitenButtons)]bool
	released [len(ebitenButtons)]bool
	wheel    float64
	mods     KeyModifiers
}

// Update polls ebiten's input state and forwards changes to the viewport.
func (d *Driver) Update() {
	mods := readModifiers()

	var f pointerFrame
	mx, my := ebiten.CursorPosition()
	f.x, f.y = float64(mx), float64(my)
	f.mods = mods
	for i, b := range ebitenButtons {
		f.pressed[i] = inpututil.IsMouseButtonJustPressed(b.eb)
		f.released[i] = inpututil.IsMouseButtonJustReleased(b.eb)
	}
	_, f.wheel = ebiten.Wheel()
	d.applyPointer(f)

	v := d.viewport
	d.keyBuf = inpututil.AppendJustPressedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		v.HandleKeyDown(k, mods)
	}
	d.keyBuf = inpututil.AppendJustReleasedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		v.HandleKeyUp(k, mods)
	}
}

// applyPointer forwards one frame of pointer state to the viewport. Moves
// are forwarded while the cursor is inside the extent or a button is held,
// mouse-capture style, so a drag that leaves the viewport stays tracked
// until release. Fresh presses only count inside the extent; releases
// always count.
func (d *Driver) applyPointer(f pointerFrame) {
	d.tick++
	v := d.viewport
	extent := Rect{Width: v.Width(), Height: v.Height()}
	inside := extent.Contains(f.x, f.y)

	// Enter/leave transitions against the viewport extent.
	if inside && !d.inside {
		v.HandlePointerEnter(f.x, f.y, f.mods)
	} else if !inside && d.inside {
		v.HandlePointerLeave(f.mods)
	}
	d.inside = inside

	mx, my := int(f.x), int(f.y)
	if (inside || d.buttonHeld()) && (mx != d.prevX || my != d.prevY) {
		v.HandlePointerMove(f.x, f.y, f.mods)
	}
	d.prevX = mx
	d.prevY = my

	for i, b := range ebitenButtons {
		if f.pressed[i] && inside {
			d.held[i] = true
			v.HandlePointerDown(b.btn, f.x, f.y, f.mods)
		}
		if f.released[i] {
			d.held[i] = false
			v.HandlePointerUp(b.btn, f.x, f.y, f.mods)
			d.detectDoubleClick(b.btn, f.x, f.y, f.mods)
		}
	}

	if inside && f.wheel != 0 {
		v.HandleWheel(f.wheel, f.x, f.y, f.mods)
	}
}

func (d *Driver) buttonHeld() bool {
	for _, h := range d.held {
		if h {
			return true
		}
	}
	return false
}

// detectDoubleClick synthesizes a double-click when two releases of the same
// button land close together in time and space.
func (d *Driver) detectDoubleClick(button MouseButton, x, y float64, mods KeyModifiers) {
	if button == d.lastClickButton &&
		d.tick-d.lastClickTick <= doubleClickTicks &&
		math.Abs(x-d.lastClickX) <= doubleClickSlop &&
		math.Abs(y-d.lastClickY) <= doubleClickSlop {
		d.viewport.HandleDoubleClick(button, x, y, mods)
		// Reset so a triple click does not fire two doubles.
		d.lastClickTick = -doubleClickTicks
		d.lastClickButton = MouseButtonNone
		return
	}
	d.lastClickTick = d.tick
	d.lastClickX = x
	d.lastClickY = y
	d.lastClickButton = button
}
