// Package heatmap turns raw population counts into per-point colors: a
// normalization step that squeezes a heavy-tailed distribution into [0, 1]
// and a family of colormap schemes that map the normalized value to RGBA.
package heatmap

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize rescales raw population values into [0, 1].
//
// With logScale set, each value v is first mapped to ln(1+v), which is
// defined at v=0 and compresses the heavy tail. The output range is then
// anchored to the minimum and maximum of the strictly-positive transformed
// values only, so a majority of zero-population points cannot collapse the
// dynamic range; zeros (and anything at or below the positive minimum)
// clamp to 0.
//
// Degenerate inputs never fault: with no positive values, or a single
// distinct positive value, every output is 0.
func Normalize(populations []float64, logScale bool) []float64 {
	vals := make([]float64, len(populations))
	if logScale {
		for i, v := range populations {
			vals[i] = math.Log1p(v)
		}
	} else {
		copy(vals, populations)
	}

	var positive []float64
	for _, v := range vals {
		if v > 0 {
			positive = append(positive, v)
		}
	}

	out := make([]float64, len(vals))
	if len(positive) == 0 {
		return out
	}
	lo := floats.Min(positive)
	hi := floats.Max(positive)
	if hi <= lo {
		return out
	}

	for i, v := range vals {
		n := (v - lo) / (hi - lo)
		if n < 0 {
			n = 0
		}
		out[i] = n
	}
	return out
}
