package color

import "math"

// SRGBToLinear applies the sRGB EOTF to one component in [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB applies the sRGB OETF to one component in [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// SRGBToLinearColor converts RGB from sRGB to linear. Alpha is unchanged.
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// LinearToSRGBColor converts RGB from linear to sRGB. Alpha is unchanged.
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}
