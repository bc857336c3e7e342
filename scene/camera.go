// Package scene owns the viewer's mutable state: the camera, the color
// configuration, the point cloud arrays, and the per-frame composition that
// turns all of it into ordered draw calls.
package scene

const (
	// dragDegreesPerPixel converts mouse motion into cloud rotation.
	dragDegreesPerPixel = 0.5
	// zoomStep is the distance added per wheel notch.
	zoomStep = 0.1
	// Zoom stays inside [zoomMin, zoomMax] no matter how the wheel spins.
	zoomMin = -50.0
	zoomMax = -1.0
)

// Camera holds two independent orientation states plus a bounded zoom.
//
// The point cloud rotates under mouse drag while the textured sphere is
// steered separately through absolute slider values, so the points can
// orbit a differently-oriented globe. Both are read every frame by the
// composer; only the zoom and cloud rotation are shared between the two
// draw passes.
type Camera struct {
	// Cloud rotation in degrees, accumulated from drag deltas.
	CloudRotX, CloudRotY float64
	// Sphere rotation in degrees, overwritten absolutely. Values outside
	// [0, 360) are fine; wrapping is cosmetic.
	SphereRotX, SphereRotY, SphereRotZ float64
	// Zoom is the camera distance along the view axis, always negative.
	Zoom float64

	dragging     bool
	lastX, lastY int
}

// NewCamera returns the startup pose: cloud unrotated, sphere at
// (90, 0, 270) so the texture's prime meridian lines up, zoom -8.
func NewCamera() Camera {
	return Camera{
		SphereRotX: 90,
		SphereRotZ: 270,
		Zoom:       -8,
	}
}

// BeginDrag starts a drag gesture at the given pixel position.
func (c *Camera) BeginDrag(x, y int) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// EndDrag finishes the current drag gesture, if any.
func (c *Camera) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a drag gesture is active.
func (c *Camera) Dragging() bool { return c.dragging }

// Drag feeds a pointer position during a drag. Rotation accumulates from
// the delta since the previous event, not since the drag start, so it acts
// like velocity. Outside an active drag this is a no-op.
func (c *Camera) Drag(x, y int) {
	if !c.dragging {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.CloudRotY += float64(dx) * dragDegreesPerPixel
	c.CloudRotX += float64(dy) * dragDegreesPerPixel
	c.lastX, c.lastY = x, y
}

// SetSphereRotation overwrites the sphere orientation (degrees).
func (c *Camera) SetSphereRotation(x, y, z float64) {
	c.SphereRotX, c.SphereRotY, c.SphereRotZ = x, y, z
}

// ZoomBy moves the camera by whole wheel notches (positive zooms in) and
// clamps the result after every update.
func (c *Camera) ZoomBy(notches float64) {
	c.Zoom += zoomStep * notches
	if c.Zoom > zoomMax {
		c.Zoom = zoomMax
	}
	if c.Zoom < zoomMin {
		c.Zoom = zoomMin
	}
}
