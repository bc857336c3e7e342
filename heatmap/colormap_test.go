package heatmap

import (
	"math"
	"testing"
)

func TestScheme_Anchors(t *testing.T) {
	tcs := []struct {
		scheme Scheme
		v      float64
		want   Color
	}{
		{SchemeGreenRed, 0, Color{0, 1, 0, 0.8}},
		{SchemeGreenRed, 1, Color{1, 0, 0, 0.8}},
		{SchemeCool, 0.5, Color{0.5, 0.5, 1, 0.8}},
		{SchemeCool, 0, Color{0, 1, 1, 0.8}},
		{SchemeCool, 1, Color{1, 0, 1, 0.8}},
		{SchemeHot, 0, Color{0, 0, 0, 0.7}},
		{SchemeHot, 1, Color{1, 1, 1, 1}},
		{SchemePlasma, 0, Color{0.1, 0, 0.3, 0.8}},
		{SchemePlasma, 1, Color{1, 1, 0, 1}},
		{SchemeViridis, 0, Color{0, 0, 0.4, 0.8}},
		{SchemeRainbow, 0, Color{1, 0, 0, 0.9}},
	}
	for _, tc := range tcs {
		got := tc.scheme.At(tc.v)
		if !closeColor(got, tc.want) {
			t.Fatalf("%v.At(%v) = %+v; want %+v", tc.scheme, tc.v, got, tc.want)
		}
	}
}

func TestScheme_ComponentsInRange(t *testing.T) {
	for _, s := range Schemes {
		for i := 0; i <= 100; i++ {
			v := float64(i) / 100
			c := s.At(v)
			for _, ch := range []float32{c.R, c.G, c.B, c.A} {
				if ch < 0 || ch > 1 {
					t.Fatalf("%v.At(%v) = %+v; component out of [0, 1]", s, v, c)
				}
			}
		}
	}
}

func TestScheme_RainbowNeverWrapsToRed(t *testing.T) {
	// Hue tops out at 300° (magenta); at v=1 blue and red are both full,
	// green empty.
	c := SchemeRainbow.At(1)
	want := Color{1, 0, 1, 0.9}
	if !closeColor(c, want) {
		t.Fatalf("rainbow.At(1) = %+v; want %+v", c, want)
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		got, ok := ParseScheme(s.String())
		if !ok || got != s {
			t.Fatalf("ParseScheme(%q) = %v, %v; want %v, true", s.String(), got, ok, s)
		}
	}

	got, ok := ParseScheme("sepia")
	if ok || got != SchemeGreenRed {
		t.Fatalf("ParseScheme(\"sepia\") = %v, %v; want green-red fallback", got, ok)
	}
}

func TestUnknownSchemeFallsBackToGreenRed(t *testing.T) {
	bogus := Scheme(99)
	if got, want := bogus.At(0.5), SchemeGreenRed.At(0.5); got != want {
		t.Fatalf("Scheme(99).At(0.5) = %+v; want green-red %+v", got, want)
	}
}

func TestColorize_WholeSlice(t *testing.T) {
	values := []float64{0, 0.5, 1}
	colors := Colorize(values, SchemeCool)
	if len(colors) != len(values) {
		t.Fatalf("Colorize returned %d colors; want %d", len(colors), len(values))
	}
	for i, v := range values {
		if colors[i] != SchemeCool.At(v) {
			t.Fatalf("colors[%d] = %+v; want %+v", i, colors[i], SchemeCool.At(v))
		}
	}
}

func TestHSVToRGB_Sectors(t *testing.T) {
	tcs := []struct {
		h       float64
		r, g, b float64
	}{
		{0, 1, 0, 0},
		{60, 1, 1, 0},
		{120, 0, 1, 0},
		{180, 0, 1, 1},
		{240, 0, 0, 1},
		{300, 1, 0, 1},
	}
	for _, tc := range tcs {
		r, g, b := hsvToRGB(tc.h, 1, 1)
		if math.Abs(r-tc.r) > 1e-9 || math.Abs(g-tc.g) > 1e-9 || math.Abs(b-tc.b) > 1e-9 {
			t.Fatalf("hsvToRGB(%v, 1, 1) = (%v, %v, %v); want (%v, %v, %v)",
				tc.h, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func closeColor(got, want Color) bool {
	const tol = 1e-6
	return math.Abs(float64(got.R-want.R)) < tol &&
		math.Abs(float64(got.G-want.G)) < tol &&
		math.Abs(float64(got.B-want.B)) < tol &&
		math.Abs(float64(got.A-want.A)) < tol
}
