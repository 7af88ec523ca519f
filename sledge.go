package sledge

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonNone   MouseButton = iota // no button (hover events)
	MouseButtonLeft                      // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Shift reports whether the Shift key is held.
func (m KeyModifiers) Shift() bool { return m&ModShift != 0 }

// Control reports whether the Control key is held.
func (m KeyModifiers) Control() bool { return m&ModCtrl != 0 }

// Alt reports whether the Alt key is held.
func (m KeyModifiers) Alt() bool { return m&ModAlt != 0 }

// Meta reports whether the Meta / Command key is held.
func (m KeyModifiers) Meta() bool { return m&ModMeta != 0 }

// CameraKind distinguishes the two camera projection models.
type CameraKind uint8

const (
	CameraOrthographic CameraKind = iota // parallel projection, 2D plan views
	CameraPerspective                    // projective 3D camera
)

// AxisType selects which world plane an orthographic camera looks at.
// The world is Z-up: a Top view looks straight down the Z axis.
type AxisType uint8

const (
	AxisTop   AxisType = iota // XY plane, Z discarded
	AxisFront                 // YZ plane, X discarded
	AxisSide                  // XZ plane, Y discarded
)

// Ray is a world-space ray with a unit-length direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}
