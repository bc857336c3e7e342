package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Matches the original fixed-function sphere tessellation.
const (
	sphereSlices = 36
	sphereStacks = 18
)

// sphereMesh is a UV sphere: a (stacks+1) x (slices+1) vertex grid with a
// duplicated seam column so texture coordinates stay monotonic, plus a
// triangle index list with consistent winding for backface culling.
type sphereMesh struct {
	pos []mgl32.Vec3
	uv  [][2]float32
	idx []uint16
}

// newSphereMesh builds the grid once at startup. Vertex positions use the
// same mirrored-x spherical convention as geo.Project, so the mesh and the
// point cloud live in one coordinate system.
func newSphereMesh(radius float64, slices, stacks int) sphereMesh {
	cols := slices + 1
	rows := stacks + 1

	m := sphereMesh{
		pos: make([]mgl32.Vec3, 0, rows*cols),
		uv:  make([][2]float32, 0, rows*cols),
	}

	for i := 0; i < rows; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		sinT, cosT := math.Sincos(theta)
		for j := 0; j < cols; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			sinP, cosP := math.Sincos(phi)
			m.pos = append(m.pos, mgl32.Vec3{
				float32(-radius * sinT * cosP),
				float32(radius * cosT),
				float32(radius * sinT * sinP),
			})
			m.uv = append(m.uv, [2]float32{
				float32(j) / float32(slices),
				float32(i) / float32(stacks),
			})
		}
	}

	// Winding is chosen so camera-facing triangles project with positive
	// signed area (screen y grows downward).
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i*cols + j)
			b := uint16((i+1)*cols + j)
			m.idx = append(m.idx,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}
	return m
}
