package viewer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewport_CenterProjectsToCenter(t *testing.T) {
	vp := newViewport(900, 650)
	x, y, ok := vp.toScreen(mgl32.Vec3{0, 0, -8})
	if !ok {
		t.Fatalf("point on the view axis rejected")
	}
	if x != 450 || y != 325 {
		t.Fatalf("axis point projected to (%v, %v); want (450, 325)", x, y)
	}
}

func TestViewport_DepthRange(t *testing.T) {
	vp := newViewport(900, 650)
	if _, _, ok := vp.toScreen(mgl32.Vec3{0, 0, -0.05}); ok {
		t.Fatalf("point inside the near plane accepted")
	}
	if _, _, ok := vp.toScreen(mgl32.Vec3{0, 0, 1}); ok {
		t.Fatalf("point behind the camera accepted")
	}
	if _, _, ok := vp.toScreen(mgl32.Vec3{0, 0, -60}); ok {
		t.Fatalf("point beyond the far plane accepted")
	}
	if _, _, ok := vp.toScreen(mgl32.Vec3{0, 0, -49}); !ok {
		t.Fatalf("point inside the depth range rejected")
	}
}

func TestViewport_PerspectiveShrinksWithDistance(t *testing.T) {
	vp := newViewport(900, 650)
	nearX, _, ok1 := vp.toScreen(mgl32.Vec3{1, 0, -4})
	farX, _, ok2 := vp.toScreen(mgl32.Vec3{1, 0, -40})
	if !ok1 || !ok2 {
		t.Fatalf("in-range points rejected")
	}
	if !(nearX-450 > farX-450) {
		t.Fatalf("farther point did not shrink toward center: near=%v far=%v", nearX, farX)
	}
}

func TestViewport_YAxisPointsUp(t *testing.T) {
	vp := newViewport(900, 650)
	_, y, ok := vp.toScreen(mgl32.Vec3{0, 1, -8})
	if !ok || y >= 325 {
		t.Fatalf("point above the axis projected to screen y %v; want above 325", y)
	}
}

func TestScreenArea2_Sign(t *testing.T) {
	// Clockwise on screen (y down) is positive under this formula.
	if a := screenArea2(0, 0, 1, 0, 0, 1); a <= 0 {
		t.Fatalf("clockwise triangle area = %v; want positive", a)
	}
	if a := screenArea2(0, 0, 0, 1, 1, 0); a >= 0 {
		t.Fatalf("counter-clockwise triangle area = %v; want negative", a)
	}
}

func TestViewport_FocalMatchesFOV(t *testing.T) {
	vp := newViewport(100, 100)
	// A point at the edge of the 45° vertical frustum lands on the top
	// edge of the viewport.
	z := -10.0
	yEdge := -z * math.Tan(fovYDegrees*math.Pi/360)
	_, y, ok := vp.toScreen(mgl32.Vec3{0, float32(yEdge), float32(z)})
	if !ok {
		t.Fatalf("frustum edge point rejected")
	}
	if math.Abs(float64(y)) > 1e-3 {
		t.Fatalf("frustum edge projected to y=%v; want 0 (top edge)", y)
	}
}
