package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The original gluPerspective parameters.
const (
	fovYDegrees = 45.0
	nearPlane   = 0.1
	farPlane    = 50.0
)

// viewport performs the perspective projection from camera space (camera at
// the origin looking down -z) into pixel coordinates.
type viewport struct {
	width, height int
	cx, cy        float64
	focal         float64
}

func newViewport(width, height int) viewport {
	return viewport{
		width:  width,
		height: height,
		cx:     float64(width) / 2,
		cy:     float64(height) / 2,
		focal:  float64(height) / 2 / math.Tan(fovYDegrees*math.Pi/360),
	}
}

// toScreen projects a camera-space point. ok is false when the point falls
// outside the near/far depth range and must not be drawn.
func (vp viewport) toScreen(p mgl32.Vec3) (x, y float32, ok bool) {
	z := float64(p[2])
	if z > -nearPlane || z < -farPlane {
		return 0, 0, false
	}
	inv := 1 / -z
	return float32(vp.cx + vp.focal*float64(p[0])*inv),
		float32(vp.cy - vp.focal*float64(p[1])*inv),
		true
}

// screenArea2 returns twice the signed area of a screen-space triangle.
// With the mesh's winding, a positive value means the triangle faces the
// camera; the sphere is convex, so this doubles as the depth test.
func screenArea2(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
}
