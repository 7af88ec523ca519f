package sledge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fixed clipping range for the perspective projection.
const (
	cameraNear = 0.1
	cameraFar  = 50000.0
)

// Orthographic zoom is clamped to keep the projection invertible and the
// cursor-anchored zoom math stable.
const (
	minZoom = 0.0001
	maxZoom = 256.0
)

// minDollyDistance keeps a perspective camera from reaching (or passing
// through) its look-at point.
const minDollyDistance = 1.0

// worldUp is the global up vector. The world is Z-up: Top views look down Z.
var worldUp = mgl64.Vec3{0, 0, 1}

// glideAnim holds active position/zoom tweens for animated camera moves.
type glideAnim struct {
	x, y, z *gween.Tween
	zoom    *gween.Tween
	doneX   bool
	doneY   bool
	doneZ   bool
	doneZm  bool
	// lookOffset preserves the look-at point relative to the position
	// while a perspective camera glides.
	lookOffset mgl64.Vec3
}

func (g *glideAnim) done() bool {
	return g.doneX && g.doneY && g.doneZ && g.doneZm
}

// Camera is a tagged variant over the two projection models a viewport can
// carry. Kind selects which fields are meaningful: Zoom and Axis for
// CameraOrthographic, LookAt and FOV for CameraPerspective. Position is
// shared. Mutate fields directly and call MarkDirty, or use the Set*
// helpers and manipulation operations which do it for you.
//
// A camera belongs to exactly one viewport; the owning viewport keeps
// Viewport (the pixel extent) in sync.
type Camera struct {
	Kind CameraKind

	// Position is the camera's world-space position.
	Position mgl64.Vec3

	// Zoom is the orthographic pixels-per-world-unit scale (> 0).
	Zoom float64
	// Axis selects the world plane an orthographic camera looks at.
	Axis AxisType

	// LookAt is the point a perspective camera faces.
	LookAt mgl64.Vec3
	// FOV is the perspective vertical field of view in degrees.
	FOV float64

	// Viewport is the pixel extent this camera projects into.
	// Maintained by the owning viewport.
	Viewport Rect

	viewMatrix mgl64.Mat4
	projMatrix mgl64.Mat4
	dirty      bool

	glide *glideAnim
}

// NewOrthographicCamera creates a 2D plan-view camera for the given axis
// with zoom 1, positioned at the world origin.
func NewOrthographicCamera(axis AxisType) *Camera {
	return &Camera{
		Kind:  CameraOrthographic,
		Zoom:  1.0,
		Axis:  axis,
		dirty: true,
	}
}

// NewPerspectiveCamera creates a 3D camera at (64, 64, 64) looking at the
// world origin with a 60 degree field of view.
func NewPerspectiveCamera() *Camera {
	return &Camera{
		Kind:     CameraPerspective,
		Position: mgl64.Vec3{64, 64, 64},
		LookAt:   mgl64.Vec3{0, 0, 0},
		FOV:      60,
		dirty:    true,
	}
}

// MarkDirty forces a recomputation of the cached view/projection matrices.
// Call after mutating camera fields directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// SetPosition sets the camera position and marks it dirty.
func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
	c.dirty = true
}

// SetLookAt sets the perspective look-at point and marks the camera dirty.
func (c *Camera) SetLookAt(p mgl64.Vec3) {
	c.LookAt = p
	c.dirty = true
}

// SetZoom sets the orthographic zoom, clamped to the valid range.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clampZoom(zoom)
	c.dirty = true
}

// SetFOV sets the perspective field of view in degrees and marks the
// camera dirty.
func (c *Camera) SetFOV(degrees float64) {
	c.FOV = degrees
	c.dirty = true
}

func clampZoom(zoom float64) float64 {
	return math.Max(minZoom, math.Min(zoom, maxZoom))
}

// aspect returns the viewport aspect ratio, defaulting to 1 before the
// owning viewport has assigned an extent.
func (c *Camera) aspect() float64 {
	if c.Viewport.Height <= 0 {
		return 1
	}
	return c.Viewport.Width / c.Viewport.Height
}

// computeMatrices recomputes the cached view and projection matrices if
// dirty. Only meaningful for perspective cameras; orthographic transforms
// are plain arithmetic and never touch the matrices.
func (c *Camera) computeMatrices() {
	if !c.dirty {
		return
	}
	c.dirty = false
	c.viewMatrix = mgl64.LookAtV(c.Position, c.LookAt, worldUp)
	c.projMatrix = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.aspect(), cameraNear, cameraFar)
}

// Forward returns the perspective camera's unit forward direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.LookAt.Sub(c.Position).Normalize()
}

// Right returns the perspective camera's unit right direction.
func (c *Camera) Right() mgl64.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// Up returns the perspective camera's unit up direction.
func (c *Camera) Up() mgl64.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Pan translates the camera in its view plane by (dx, dy) world units.
// Orthographic cameras move within the visible plane; perspective cameras
// move position and look-at together along the camera right/up axes.
func (c *Camera) Pan(dx, dy float64) {
	switch c.Kind {
	case CameraOrthographic:
		c.Position = c.Position.Add(c.Expand(mgl64.Vec3{dx, dy, 0}))
	case CameraPerspective:
		offset := c.Right().Mul(dx).Add(c.Up().Mul(dy))
		c.Position = c.Position.Add(offset)
		c.LookAt = c.LookAt.Add(offset)
	}
	c.dirty = true
}

// Orbit rotates a perspective camera around its look-at point by the given
// yaw and pitch in degrees. Pitch is clamped short of the poles to avoid
// gimbal flip. No-op for orthographic cameras.
func (c *Camera) Orbit(yawDeg, pitchDeg float64) {
	if c.Kind != CameraPerspective {
		return
	}
	rel := c.Position.Sub(c.LookAt)
	distance := rel.Len()
	if distance == 0 {
		return
	}

	theta := math.Atan2(rel.Y(), rel.X())
	phi := math.Acos(rel.Z() / distance)

	theta += mgl64.DegToRad(yawDeg)
	phi += mgl64.DegToRad(pitchDeg)
	phi = math.Max(0.1, math.Min(math.Pi-0.1, phi))

	c.Position = c.LookAt.Add(mgl64.Vec3{
		distance * math.Sin(phi) * math.Cos(theta),
		distance * math.Sin(phi) * math.Sin(theta),
		distance * math.Cos(phi),
	})
	c.dirty = true
}

// Dolly moves a perspective camera along its forward direction by delta
// world units, never closer than minDollyDistance to the look-at point.
// No-op for orthographic cameras (use SetZoom or ZoomAt instead).
func (c *Camera) Dolly(delta float64) {
	if c.Kind != CameraPerspective {
		return
	}
	// Clamp before moving so the camera can never cross the look-at point.
	if max := c.LookAt.Sub(c.Position).Len() - minDollyDistance; delta > max {
		delta = max
	}
	c.Position = c.Position.Add(c.Forward().Mul(delta))
	c.dirty = true
}

// ZoomAt scales the orthographic zoom by factor while keeping the world
// point under the screen position (sx, sy) fixed. No-op for perspective
// cameras (use Dolly instead).
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	if c.Kind != CameraOrthographic {
		return
	}
	before := c.ScreenToWorld(sx, sy)
	c.Zoom = clampZoom(c.Zoom * factor)
	after := c.ScreenToWorld(sx, sy)
	c.Position = c.Position.Add(before.Sub(after))
	c.dirty = true
}

// GlideTo animates the camera position to target over duration seconds.
// A perspective camera carries its look-at point along, preserving the
// current view direction. The animation advances on each Viewport.Tick.
func (c *Camera) GlideTo(target mgl64.Vec3, duration float32, easeFn ease.TweenFunc) {
	c.glide = &glideAnim{
		x:          gween.New(float32(c.Position.X()), float32(target.X()), duration, easeFn),
		y:          gween.New(float32(c.Position.Y()), float32(target.Y()), duration, easeFn),
		z:          gween.New(float32(c.Position.Z()), float32(target.Z()), duration, easeFn),
		doneZm:     true,
		lookOffset: c.LookAt.Sub(c.Position),
	}
}

// ZoomTo animates the orthographic zoom to the given value over duration
// seconds. No-op for perspective cameras.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	if c.Kind != CameraOrthographic {
		return
	}
	c.glide = &glideAnim{
		zoom:  gween.New(float32(c.Zoom), float32(clampZoom(zoom)), duration, easeFn),
		doneX: true,
		doneY: true,
		doneZ: true,
	}
}

// update advances active glide animations. Called from Viewport.Tick.
func (c *Camera) update(dt float32) {
	g := c.glide
	if g == nil {
		return
	}

	pos := c.Position
	if !g.doneX {
		val, done := g.x.Update(dt)
		pos[0] = float64(val)
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.y.Update(dt)
		pos[1] = float64(val)
		g.doneY = done
	}
	if !g.doneZ {
		val, done := g.z.Update(dt)
		pos[2] = float64(val)
		g.doneZ = done
	}
	if pos != c.Position {
		c.Position = pos
		if c.Kind == CameraPerspective {
			c.LookAt = c.Position.Add(g.lookOffset)
		}
		c.dirty = true
	}

	if !g.doneZm {
		val, done := g.zoom.Update(dt)
		// Overshooting eases can leave the clamp range mid-glide.
		c.Zoom = clampZoom(float64(val))
		g.doneZm = done
		c.dirty = true
	}

	if g.done() {
		c.glide = nil
	}
}
