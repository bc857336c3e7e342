// Package geo holds the geographic input side of the viewer: city records,
// CSV ingestion, and the spherical projection that places records on the
// globe surface.
package geo

// Record is one geolocated population sample. Records are immutable once
// loaded; invalid source rows never become Records.
type Record struct {
	// Lat is the latitude in degrees, [-90, 90].
	Lat float64
	// Lon is the longitude in degrees, [-180, 180].
	Lon float64
	// Population is the raw population count. Zero when the source row has
	// no usable population column.
	Population float64
}
