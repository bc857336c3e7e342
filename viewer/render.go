package viewer

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Elitism/Earth-Population-Map/heatmap"
)

// Point sprite size in pixels, matching the original glPointSize(4).
const pointSizePx = 4

// maxQuadsPerBatch keeps quad batches inside the uint16 index space.
const maxQuadsPerBatch = 16000

// renderer is a software implementation of scene.Renderer on top of
// ebiten's triangle rasterizer: vertices are transformed and perspective
// projected on the CPU, visibility comes from convex backface culling (the
// sphere) and a front-hemisphere test (the points).
type renderer struct {
	vp   viewport
	mesh sphereMesh

	// texture is nil when the Earth texture failed to decode; the sphere
	// then renders shaded but uncolored.
	texture *ebiten.Image
	white   *ebiten.Image

	screen *ebiten.Image

	camPos  []mgl32.Vec3
	prjX    []float32
	prjY    []float32
	prjOK   []bool
	verts   []ebiten.Vertex
	indices []uint16
}

func newRenderer(width, height int, radius float64, texture *ebiten.Image) *renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	n := (sphereStacks + 1) * (sphereSlices + 1)
	return &renderer{
		vp:      newViewport(width, height),
		mesh:    newSphereMesh(radius, sphereSlices, sphereStacks),
		texture: texture,
		white:   white,
		camPos:  make([]mgl32.Vec3, n),
		prjX:    make([]float32, n),
		prjY:    make([]float32, n),
		prjOK:   make([]bool, n),
	}
}

// beginFrame points the renderer at this frame's target image.
func (r *renderer) beginFrame(screen *ebiten.Image) {
	r.screen = screen
}

func (r *renderer) whiteSub() *ebiten.Image {
	return r.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func (r *renderer) Clear() {
	r.screen.Fill(color.Black)
}

func (r *renderer) DrawSphere(model mgl32.Mat4) {
	for i, p := range r.mesh.pos {
		r.camPos[i] = model.Mul4x1(p.Vec4(1)).Vec3()
	}
	for i, p := range r.camPos {
		r.prjX[i], r.prjY[i], r.prjOK[i] = r.vp.toScreen(p)
	}

	r.verts = r.verts[:0]
	r.indices = r.indices[:0]

	var texW, texH float32
	if r.texture != nil {
		b := r.texture.Bounds()
		texW, texH = float32(b.Dx()), float32(b.Dy())
	}

	for t := 0; t+2 < len(r.mesh.idx); t += 3 {
		a, b, c := r.mesh.idx[t], r.mesh.idx[t+1], r.mesh.idx[t+2]
		if !r.prjOK[a] || !r.prjOK[b] || !r.prjOK[c] {
			continue
		}
		if screenArea2(r.prjX[a], r.prjY[a], r.prjX[b], r.prjY[b], r.prjX[c], r.prjY[c]) <= 0 {
			continue
		}

		shade := float32(1)
		if r.texture == nil {
			shade = facetShade(r.camPos[a], r.camPos[b], r.camPos[c])
		}

		base := uint16(len(r.verts))
		for _, vi := range [3]uint16{a, b, c} {
			v := ebiten.Vertex{
				DstX:   r.prjX[vi],
				DstY:   r.prjY[vi],
				ColorR: shade,
				ColorG: shade,
				ColorB: shade,
				ColorA: 1,
			}
			if r.texture != nil {
				v.SrcX = r.mesh.uv[vi][0] * texW
				v.SrcY = r.mesh.uv[vi][1] * texH
				v.ColorR, v.ColorG, v.ColorB = 1, 1, 1
			} else {
				v.SrcX, v.SrcY = 1, 1
			}
			r.verts = append(r.verts, v)
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}

	if len(r.indices) == 0 {
		return
	}
	src := r.whiteSub()
	if r.texture != nil {
		src = r.texture
	}
	r.screen.DrawTriangles(r.verts, r.indices, src, &ebiten.DrawTrianglesOptions{})
}

func (r *renderer) DrawPoints(model mgl32.Mat4, positions []mgl32.Vec3, colors []heatmap.Color) {
	// Sphere centre depth in camera space: the front hemisphere is
	// everything at least as close to the camera as the centre plane.
	centerZ := model.At(2, 3)

	r.verts = r.verts[:0]
	r.indices = r.indices[:0]

	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModeStraightAlpha}
	src := r.whiteSub()
	quads := 0

	for i, pos := range positions {
		p := model.Mul4x1(pos.Vec4(1)).Vec3()
		if p[2] < centerZ {
			continue
		}
		x, y, ok := r.vp.toScreen(p)
		if !ok {
			continue
		}

		c := colors[i]
		const half = float32(pointSizePx) / 2
		base := uint16(len(r.verts))
		for _, d := range [4][2]float32{{-half, -half}, {half, -half}, {half, half}, {-half, half}} {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX: x + d[0], DstY: y + d[1],
				SrcX: 1, SrcY: 1,
				ColorR: c.R, ColorG: c.G, ColorB: c.B, ColorA: c.A,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)

		quads++
		if quads == maxQuadsPerBatch {
			r.screen.DrawTriangles(r.verts, r.indices, src, op)
			r.verts = r.verts[:0]
			r.indices = r.indices[:0]
			quads = 0
		}
	}

	if len(r.indices) > 0 {
		r.screen.DrawTriangles(r.verts, r.indices, src, op)
	}
}

// facetShade lights an untextured facet by how squarely it faces the
// camera, with a floor so back-lit rims stay visible.
func facetShade(a, b, c mgl32.Vec3) float32 {
	n := b.Sub(a).Cross(c.Sub(a))
	ln := n.Len()
	if ln == 0 {
		return 0.2
	}
	nz := n[2] / ln
	if nz < 0 {
		nz = -nz
	}
	return 0.2 + 0.8*nz
}
