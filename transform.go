package sledge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// This file implements the bidirectional screen/world transform contract.
// All pairs are exact inverses of each other up to floating-point rounding:
// WorldToScreen(ScreenToWorld(p)) == p while the camera state is unchanged.

// Flatten projects a world point onto the 2D plane implied by an
// orthographic camera's axis type, returning the two preserved axes in X,Y
// with Z zeroed:
//
//	Top:   (x, y, z) -> (x, y, 0)
//	Front: (x, y, z) -> (y, z, 0)
//	Side:  (x, y, z) -> (x, z, 0)
//
// No-op under a perspective camera. An unrecognized axis type is a
// programmer error and panics.
func (c *Camera) Flatten(v mgl64.Vec3) mgl64.Vec3 {
	if c.Kind == CameraPerspective {
		return v
	}
	switch c.Axis {
	case AxisTop:
		return mgl64.Vec3{v.X(), v.Y(), 0}
	case AxisFront:
		return mgl64.Vec3{v.Y(), v.Z(), 0}
	case AxisSide:
		return mgl64.Vec3{v.X(), v.Z(), 0}
	default:
		panic(fmt.Sprintf("sledge: unrecognized axis type %d", c.Axis))
	}
}

// Expand is the inverse of Flatten: it places the X,Y components of a
// flattened point back onto the world axes the view preserves, zero-filling
// the discarded axis:
//
//	Top:   (x, y) -> (x, y, 0)
//	Front: (x, y) -> (0, x, y)
//	Side:  (x, y) -> (x, 0, y)
//
// No-op under a perspective camera. An unrecognized axis type panics.
func (c *Camera) Expand(v mgl64.Vec3) mgl64.Vec3 {
	if c.Kind == CameraPerspective {
		return v
	}
	switch c.Axis {
	case AxisTop:
		return mgl64.Vec3{v.X(), v.Y(), 0}
	case AxisFront:
		return mgl64.Vec3{0, v.X(), v.Y()}
	case AxisSide:
		return mgl64.Vec3{v.X(), 0, v.Y()}
	default:
		panic(fmt.Sprintf("sledge: unrecognized axis type %d", c.Axis))
	}
}

// GetUnusedCoordinate isolates the axis the current 2D view discards,
// zeroing the two visible axes. Snapping and merging operations use this to
// preserve depth information orthogonal to the visible plane. Returns the
// zero vector under a perspective camera.
func (c *Camera) GetUnusedCoordinate(v mgl64.Vec3) mgl64.Vec3 {
	if c.Kind == CameraPerspective {
		return mgl64.Vec3{}
	}
	switch c.Axis {
	case AxisTop:
		return mgl64.Vec3{0, 0, v.Z()}
	case AxisFront:
		return mgl64.Vec3{v.X(), 0, 0}
	case AxisSide:
		return mgl64.Vec3{0, v.Y(), 0}
	default:
		panic(fmt.Sprintf("sledge: unrecognized axis type %d", c.Axis))
	}
}

// ZeroUnusedCoordinate zeroes the axis the current 2D view discards,
// keeping the two visible axes in place. No-op under a perspective camera.
func (c *Camera) ZeroUnusedCoordinate(v mgl64.Vec3) mgl64.Vec3 {
	if c.Kind == CameraPerspective {
		return v
	}
	return v.Sub(c.GetUnusedCoordinate(v))
}

// UnitsToPixels converts a world-unit distance to pixels via the
// orthographic zoom. Perspective views have no fixed linear pixel/world
// ratio, so the result is always 0 there; callers must treat 0 as
// "not applicable", not as a true distance.
func (c *Camera) UnitsToPixels(units float64) float64 {
	if c.Kind == CameraPerspective {
		return 0
	}
	return units * c.Zoom
}

// PixelsToUnits converts a pixel distance to world units via the
// orthographic zoom. Always 0 under a perspective camera, with the same
// sentinel meaning as UnitsToPixels.
func (c *Camera) PixelsToUnits(pixels float64) float64 {
	if c.Kind == CameraPerspective {
		return 0
	}
	return pixels / c.Zoom
}

// ScreenToWorld converts a viewport pixel position to a world point.
//
// Orthographic: world = position + expand((screen - center) / zoom); the
// discarded axis keeps the camera position's component. Perspective: the
// point is unprojected at the window depth of the look-at point, so results
// land on the view-parallel plane through LookAt.
func (c *Camera) ScreenToWorld(x, y float64) mgl64.Vec3 {
	w, h := c.Viewport.Width, c.Viewport.Height
	switch c.Kind {
	case CameraOrthographic:
		offset := mgl64.Vec3{(x - w/2) / c.Zoom, (y - h/2) / c.Zoom, 0}
		return c.Position.Add(c.Expand(offset))
	default:
		c.computeMatrices()
		depth := mgl64.Project(c.LookAt, c.viewMatrix, c.projMatrix, 0, 0, int(w), int(h)).Z()
		world, err := mgl64.UnProject(mgl64.Vec3{x, h - y, depth},
			c.viewMatrix, c.projMatrix, 0, 0, int(w), int(h))
		if err != nil {
			return c.Position
		}
		return world
	}
}

// WorldToScreen converts a world point to a viewport pixel position.
// Exact inverse of ScreenToWorld for both camera kinds.
func (c *Camera) WorldToScreen(world mgl64.Vec3) (x, y float64) {
	w, h := c.Viewport.Width, c.Viewport.Height
	switch c.Kind {
	case CameraOrthographic:
		f := c.Flatten(world.Sub(c.Position))
		return w/2 + f.X()*c.Zoom, h/2 + f.Y()*c.Zoom
	default:
		c.computeMatrices()
		win := mgl64.Project(world, c.viewMatrix, c.projMatrix, 0, 0, int(w), int(h))
		return win.X(), h - win.Y()
	}
}

// CastRayFromScreen builds a world-space ray from the camera through the
// given viewport pixel position.
//
// Perspective: the near- and far-plane window points are unprojected through
// the same view/projection pair; ok is false if either unprojection fails,
// meaning no usable geometry exists at this screen point. Orthographic: the
// ray starts at the under-cursor world point on the camera plane and runs
// along the negative of the discarded axis, straight into the view.
func (c *Camera) CastRayFromScreen(x, y float64) (ray Ray, ok bool) {
	if c.Kind == CameraOrthographic {
		var direction mgl64.Vec3
		switch c.Axis {
		case AxisTop:
			direction = mgl64.Vec3{0, 0, -1}
		case AxisFront:
			direction = mgl64.Vec3{-1, 0, 0}
		case AxisSide:
			direction = mgl64.Vec3{0, -1, 0}
		default:
			panic(fmt.Sprintf("sledge: unrecognized axis type %d", c.Axis))
		}
		return Ray{Origin: c.ScreenToWorld(x, y), Direction: direction}, true
	}

	c.computeMatrices()
	w, h := int(c.Viewport.Width), int(c.Viewport.Height)
	winY := c.Viewport.Height - y

	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, c.viewMatrix, c.projMatrix, 0, 0, w, h)
	if err != nil {
		return Ray{}, false
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, c.viewMatrix, c.projMatrix, 0, 0, w, h)
	if err != nil {
		return Ray{}, false
	}

	direction := far.Sub(near)
	if direction.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: direction.Normalize()}, true
}
