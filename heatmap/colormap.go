package heatmap

import "math"

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Scheme selects a colormap. The zero value is GreenRed, which is also the
// fallback for anything unrecognized, so a Scheme is always drawable.
type Scheme int

const (
	SchemeGreenRed Scheme = iota
	SchemePlasma
	SchemeViridis
	SchemeHot
	SchemeCool
	SchemeRainbow
)

// Schemes lists every scheme in presentation order.
var Schemes = []Scheme{
	SchemePlasma,
	SchemeViridis,
	SchemeHot,
	SchemeCool,
	SchemeRainbow,
	SchemeGreenRed,
}

func (s Scheme) String() string {
	switch s {
	case SchemePlasma:
		return "plasma"
	case SchemeViridis:
		return "viridis"
	case SchemeHot:
		return "hot"
	case SchemeCool:
		return "cool"
	case SchemeRainbow:
		return "rainbow"
	default:
		return "green-red"
	}
}

// ParseScheme maps a scheme name to its Scheme. Unknown names report
// ok=false and fall back to GreenRed.
func ParseScheme(name string) (Scheme, bool) {
	switch name {
	case "plasma":
		return SchemePlasma, true
	case "viridis":
		return SchemeViridis, true
	case "hot":
		return SchemeHot, true
	case "cool":
		return SchemeCool, true
	case "rainbow":
		return SchemeRainbow, true
	case "green-red", "greenred":
		return SchemeGreenRed, true
	}
	return SchemeGreenRed, false
}

// At maps a normalized value in [0, 1] to a color under the scheme. Each
// scheme is a piecewise-linear blend over a handful of control segments.
// Components are clamped to [0, 1] so segment-boundary rounding can never
// push a channel out of range.
func (s Scheme) At(v float64) Color {
	var c Color
	switch s {
	case SchemePlasma:
		c = plasmaAt(v)
	case SchemeViridis:
		c = viridisAt(v)
	case SchemeHot:
		c = hotAt(v)
	case SchemeCool:
		c = Color{float32(v), float32(1 - v), 1, 0.8}
	case SchemeRainbow:
		// Hue sweeps red through magenta without wrapping back to red.
		r, g, b := hsvToRGB(v*300, 1, 1)
		c = Color{float32(r), float32(g), float32(b), 0.9}
	default:
		c = Color{float32(v), float32(1 - v), 0, 0.8}
	}
	c.R = clamp01(c.R)
	c.G = clamp01(c.G)
	c.B = clamp01(c.B)
	c.A = clamp01(c.A)
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Colorize maps every normalized value to a color. It is stateless and
// always produces a whole new slice; callers swap it in atomically.
func Colorize(values []float64, s Scheme) []Color {
	out := make([]Color, len(values))
	for i, v := range values {
		out[i] = s.At(v)
	}
	return out
}

// plasmaAt: dark blue → purple → pink → orange → yellow over four segments.
func plasmaAt(v float64) Color {
	switch {
	case v < 0.25:
		t := v * 4
		return Color{float32(0.1 + 0.4*t), 0, float32(0.3 + 0.4*t), 0.8}
	case v < 0.5:
		t := (v - 0.25) * 4
		return Color{float32(0.5 + 0.3*t), float32(0.1 * t), float32(0.7 - 0.2*t), 0.9}
	case v < 0.75:
		t := (v - 0.5) * 4
		return Color{float32(0.8 + 0.2*t), float32(0.1 + 0.4*t), float32(0.5 - 0.5*t), 1}
	default:
		t := (v - 0.75) * 4
		return Color{1, float32(0.5 + 0.5*t), 0, 1}
	}
}

// viridisAt: dark purple → blue → green → yellow over four segments.
func viridisAt(v float64) Color {
	switch {
	case v < 0.25:
		t := v * 4
		return Color{float32(0.3 * t), 0, float32(0.4 + 0.2*t), 0.8}
	case v < 0.5:
		t := (v - 0.25) * 4
		return Color{float32(0.3 - 0.1*t), float32(0.2 * t), float32(0.6 + 0.2*t), 0.9}
	case v < 0.75:
		t := (v - 0.5) * 4
		return Color{float32(0.2 * t), float32(0.2 + 0.6*t), float32(0.8 - 0.4*t), 1}
	default:
		t := (v - 0.75) * 4
		return Color{float32(0.2 + 0.8*t), float32(0.8 + 0.2*t), float32(0.4 - 0.4*t), 1}
	}
}

// hotAt: black → red → yellow → white over thirds, alpha fading in across
// the first segment.
func hotAt(v float64) Color {
	switch {
	case v < 1.0/3:
		t := v * 3
		return Color{float32(t), 0, 0, float32(0.7 + 0.3*t)}
	case v < 2.0/3:
		t := (v - 1.0/3) * 3
		return Color{1, float32(t), 0, 1}
	default:
		t := (v - 2.0/3) * 3
		return Color{1, 1, float32(t), 1}
	}
}

// hsvToRGB converts hue (degrees), saturation and value to RGB using the
// standard six-sector decomposition.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
