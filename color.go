package uifx

import (
	"fmt"
	"image/color"
)

// Color32 is an 8-bit-per-channel, non-premultiplied RGBA color.
// It is the color format stored in UI vertices.
type Color32 struct {
	R, G, B, A uint8
}

// NRGBA converts the color to the standard library representation.
func (c Color32) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Float converts the color to float components in [0, 1].
func (c Color32) Float() RGBA {
	return RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Hex formats the color as "#RRGGBBAA".
func (c Color32) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Missing alpha means opaque.
func ParseHex(s string) (Color32, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color32{}, fmt.Errorf("uifx: invalid hex color %q", s)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color32{}, fmt.Errorf("uifx: invalid hex color %q", s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color32{}, fmt.Errorf("uifx: invalid hex color %q", s)
	}

	return Color32{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// RGBA is a float color with components in [0, 1].
// Gradients are evaluated in this representation and quantized to
// Color32 when written into vertices.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color32 quantizes the color, clamping each component to [0, 1] and
// rounding to the nearest 8-bit value.
func (c RGBA) Color32() Color32 {
	return Color32{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// Lerp performs component-wise linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
