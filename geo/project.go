package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Project converts a latitude/longitude pair (degrees) into a point on a
// sphere of the given radius, using the physics convention: co-latitude
// theta = 90° − lat measured from the north pole, azimuth phi = lon.
//
// The x axis is negated. The companion Earth texture is mirrored the same
// way when it is loaded, so the point cloud and the texture agree in
// handedness; changing one without the other flips east and west apart.
func Project(lat, lon, radius float64) mgl32.Vec3 {
	theta := (90 - lat) * math.Pi / 180
	phi := lon * math.Pi / 180

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)

	return mgl32.Vec3{
		float32(-radius * sinTheta * cosPhi),
		float32(radius * cosTheta),
		float32(radius * sinTheta * sinPhi),
	}
}

// ProjectAll projects every record onto a sphere of the given radius,
// preserving record order.
func ProjectAll(records []Record, radius float64) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(records))
	for i, r := range records {
		out[i] = Project(r.Lat, r.Lon, radius)
	}
	return out
}
