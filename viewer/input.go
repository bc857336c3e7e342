package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Elitism/Earth-Population-Map/heatmap"
	"github.com/Elitism/Earth-Population-Map/scene"
)

// sliderDegreesPerTick is how fast a held rotation key sweeps the sphere
// sliders.
const sliderDegreesPerTick = 1.0

// handleInput runs once per tick on the single UI thread, translating raw
// events into camera and config mutations. Color-config changes recompute
// the scene colors synchronously before the next draw.
func (v *Viewer) handleInput() {
	cam := &v.scene.Camera

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cam.BeginDrag(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		cam.EndDrag()
	}
	if cam.Dragging() {
		cam.Drag(x, y)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.ZoomBy(wy)
	}

	// Keyboard stand-ins for the three absolute sphere-rotation sliders.
	sx, sy, sz := cam.SphereRotX, cam.SphereRotY, cam.SphereRotZ
	changed := false
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		sx -= sliderDegreesPerTick
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		sx += sliderDegreesPerTick
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		sy -= sliderDegreesPerTick
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		sy += sliderDegreesPerTick
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		sz -= sliderDegreesPerTick
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		sz += sliderDegreesPerTick
		changed = true
	}
	if changed {
		cam.SetSphereRotation(sx, sy, sz)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.scene.Config.Scheme = nextScheme(v.scene.Config.Scheme)
		v.scene.RecomputeColors()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.scene.Config.Logarithmic = !v.scene.Config.Logarithmic
		v.scene.RecomputeColors()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		resetCamera(cam)
	}
}

// nextScheme cycles through the presentation order, wrapping at the end.
func nextScheme(s heatmap.Scheme) heatmap.Scheme {
	for i, cur := range heatmap.Schemes {
		if cur == s {
			return heatmap.Schemes[(i+1)%len(heatmap.Schemes)]
		}
	}
	return heatmap.Schemes[0]
}

// resetCamera restores the startup pose without touching the drag state.
func resetCamera(cam *scene.Camera) {
	fresh := scene.NewCamera()
	cam.CloudRotX, cam.CloudRotY = fresh.CloudRotX, fresh.CloudRotY
	cam.SetSphereRotation(fresh.SphereRotX, fresh.SphereRotY, fresh.SphereRotZ)
	cam.Zoom = fresh.Zoom
}
