package heatmap

import (
	"math"
	"testing"
)

func TestNormalize_AllZero(t *testing.T) {
	for _, logScale := range []bool{false, true} {
		out := Normalize([]float64{0, 0, 0}, logScale)
		for i, v := range out {
			if v != 0 {
				t.Fatalf("logScale=%v: out[%d] = %v; want 0", logScale, i, v)
			}
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if out := Normalize(nil, true); len(out) != 0 {
		t.Fatalf("Normalize(nil) = %v; want empty", out)
	}
}

func TestNormalize_SingleDistinctPositive(t *testing.T) {
	// One distinct positive value gives a degenerate range: everything
	// collapses to 0 instead of dividing by zero.
	out := Normalize([]float64{0, 500, 500, 0}, false)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v; want 0", i, v)
		}
	}
}

func TestNormalize_Bounds(t *testing.T) {
	pops := []float64{0, 1, 10, 150, 3000, 9e6, 0, 42}
	for _, logScale := range []bool{false, true} {
		out := Normalize(pops, logScale)
		for i, v := range out {
			if v < 0 || v > 1 {
				t.Fatalf("logScale=%v: out[%d] = %v; want within [0, 1]", logScale, i, v)
			}
		}
	}
}

func TestNormalize_MinAndMaxAnchors(t *testing.T) {
	out := Normalize([]float64{0, 10, 1000}, false)
	if out[0] != 0 {
		t.Fatalf("zero population normalized to %v; want 0", out[0])
	}
	if out[1] != 0 {
		t.Fatalf("positive minimum normalized to %v; want 0", out[1])
	}
	if out[2] != 1 {
		t.Fatalf("maximum normalized to %v; want 1", out[2])
	}
}

func TestNormalize_Monotonic(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {0, 5}, {3, 3000}, {1e3, 1e6}}
	for _, logScale := range []bool{false, true} {
		for _, p := range pairs {
			out := Normalize([]float64{p[0], p[1], 7}, logScale)
			if out[0] > out[1] {
				t.Fatalf("logScale=%v: Normalize(%v) not monotonic: %v", logScale, p, out[:2])
			}
		}
	}
}

func TestNormalize_LogCompressesTail(t *testing.T) {
	pops := []float64{10, 100, 1e6}
	linear := Normalize(pops, false)
	logged := Normalize(pops, true)

	// The middle value sits much higher on the log scale than on the
	// linear one: that is the point of the compression.
	if !(logged[1] > linear[1]) {
		t.Fatalf("log scaling did not lift the mid value: linear=%v log=%v", linear[1], logged[1])
	}
	if math.Abs(logged[2]-1) > 1e-12 || math.Abs(linear[2]-1) > 1e-12 {
		t.Fatalf("maximum should normalize to 1 in both modes: linear=%v log=%v", linear[2], logged[2])
	}
}
