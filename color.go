package ink

import "image/color"

// RGBA represents a stroke color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(float64(c.R) * 255)),
		G: uint8(clamp255(float64(c.G) * 255)),
		B: uint8(clamp255(float64(c.B) * 255)),
		A: uint8(clamp255(float64(c.A) * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// resolveColor applies the default color rules to a caller-supplied slice:
// missing r, g, b channels default to 0 and a missing alpha defaults to 1.
// Present channels pass through unmodified, including out-of-range values.
func resolveColor(c []float32) RGBA {
	resolved := RGBA{A: 1}
	if len(c) > 0 {
		resolved.R = c[0]
	}
	if len(c) > 1 {
		resolved.G = c[1]
	}
	if len(c) > 2 {
		resolved.B = c[2]
	}
	if len(c) > 3 {
		resolved.A = c[3]
	}
	return resolved
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
