// Package sledge provides the interactive viewport layer of a level editor:
// cameras, coordinate transforms, and input event synthesis for [Ebitengine].
//
// A [Viewport] owns one [Camera] and a rectangular pixel extent, and turns
// raw pointer and keyboard input into a stream of higher-level events with
// drag detection, click synthesis, and a cooperative input lock for editing
// tools that need exclusive pointer control.
//
// # Quick start
//
// Create a viewport, attach a tool as a [Listener], and feed it input from a
// [Driver] inside an [ebiten.Game]:
//
//	cam := sledge.NewPerspectiveCamera()
//	vp := sledge.NewViewport(cam, 640, 480)
//	vp.AddListener(myTool)
//	drv := sledge.NewDriver(vp)
//
//	type Game struct{}
//
//	func (g *Game) Update() error {
//		drv.Update()
//		vp.Tick(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// Tools embed [NopListener] and implement only the methods they need. A
// listener that sets Handled on an event stops it propagating to listeners
// registered after it.
//
// # Cameras and transforms
//
// Two camera models are supported. [NewOrthographicCamera] builds a 2D
// camera locked to one of the three axis-aligned views ([AxisTop],
// [AxisFront], [AxisSide]) with a zoom factor mapping world units to pixels.
// [NewPerspectiveCamera] builds a free 3D camera defined by position, look-at
// point, and vertical field of view.
//
// Both kinds answer the same transform queries: [Camera.ScreenToWorld],
// [Camera.WorldToScreen], and [Camera.CastRayFromScreen] for picking.
// Orthographic cameras additionally offer the 2D/3D projection helpers
// [Camera.Flatten] and [Camera.Expand].
//
// Camera motion can be animated with [Camera.GlideTo] and [Camera.ZoomTo]
// (via [gween]); tweens advance during [Viewport.Tick].
//
// # Testing input
//
// Synthetic input can be queued with [Viewport.InjectClick],
// [Viewport.InjectDrag], and friends, or scripted as JSON with
// [LoadTestScript]. One queued event is consumed per Tick, running through
// the same drag-detector state machine as real input.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sledge
