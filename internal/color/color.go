// Package color holds the float color representation and transfer functions
// used when uifx blends gradient stops in linear light.
package color

// ColorF32 is a color with float32 components in [0,1].
// RGB is in whatever space the caller says it is; alpha is always linear.
type ColorF32 struct {
	R, G, B, A float32
}

// MixPerceptual interpolates two sRGB-encoded colors in linear light and
// returns the sRGB-encoded result. Alpha interpolates directly.
func MixPerceptual(a, b ColorF32, t float32) ColorF32 {
	la := SRGBToLinearColor(a)
	lb := SRGBToLinearColor(b)
	return LinearToSRGBColor(ColorF32{
		R: la.R + (lb.R-la.R)*t,
		G: la.G + (lb.G-la.G)*t,
		B: la.B + (lb.B-la.B)*t,
		A: la.A + (lb.A-la.A)*t,
	})
}
