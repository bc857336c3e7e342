package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Elitism/Earth-Population-Map/heatmap"
)

// Renderer is the draw-call surface the composer targets. The window shell
// implements it with a software rasterizer; tests implement it with a
// recorder.
type Renderer interface {
	// Clear wipes the color and depth state for a new frame.
	Clear()
	// DrawSphere draws the textured globe under the given modelview.
	DrawSphere(model mgl32.Mat4)
	// DrawPoints draws the point cloud under the given modelview with
	// alpha blending and no texturing.
	DrawPoints(model mgl32.Mat4, positions []mgl32.Vec3, colors []heatmap.Color)
}

// Compose issues one frame in strict order: clear, textured sphere under
// the combined cloud+sphere rotation, then the point cloud under the cloud
// rotation alone.
//
// The two passes share only the zoom translation and the cloud rotation
// prefix. The sphere's own rotation is applied on top of that prefix and
// never leaks into the point pass, and the drag-driven cloud rotation
// never composes with the sphere sliders beyond the shared prefix.
func Compose(r Renderer, s *Scene) {
	cam := &s.Camera

	cloud := mgl32.Translate3D(0, 0, float32(cam.Zoom)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(cam.CloudRotX)))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(cam.CloudRotY))))

	sphere := cloud.
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(cam.SphereRotX)))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(cam.SphereRotY)))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(cam.SphereRotZ))))

	r.Clear()
	r.DrawSphere(sphere)
	r.DrawPoints(cloud, s.Positions, s.Colors)
}
