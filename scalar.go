package okhue

import (
	"fmt"
	"math"
)

// Luma coefficients for ITU-R BT.709.
const (
	y709R = 0.2126
	y709G = 0.7152
	y709B = 0.0722
)

// Constants for the sRGB transfer function.
const (
	srgbAlpha = 0.055
	srgbGamma = 2.4
	srgbPhi   = 12.92
)

// clampComp clamps a component to [0,1]. Values just below 1 are snapped up:
// Oklab round trips leave in-gamut components at 0.999999x, and red can come
// out slightly negative in parts of blue.
func clampComp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 0.999999 {
		return 1
	}
	return f
}

// clamp clamps f to [lo, hi] with no snapping.
func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// roundTo rounds n to d decimal places.
func roundTo(n float64, d int) float64 {
	f := math.Pow(10, float64(d))
	return math.Round(n*f) / f
}

// truncTo truncates n toward zero at d decimal places. d must be validated by
// the caller; TruncateTo is the checked entry point.
func truncTo(n float64, d int) float64 {
	s := 1.0
	if n < 0 {
		s = -1
	}
	var t float64
	if d == 0 {
		t = math.Floor(math.Abs(n)) * s
	} else {
		f := math.Pow(10, float64(d))
		t = math.Floor(math.Abs(n)*f) / f * s
	}
	if t == 0 {
		return 0 // avoid -0
	}
	return t
}

// TruncateTo truncates n toward zero at d decimal places. Unlike ordinary
// rounding it never increases magnitude, which keeps displayed chroma values
// from overstating the gamut bound. d must be zero or more.
func TruncateTo(n float64, d int) (float64, error) {
	if d < 0 {
		return 0, fmt.Errorf("decimal places has to be 0 or more, got %d", d)
	}
	return truncTo(n, d), nil
}

// SRGBFromLinearComp encodes one linear component with the sRGB transfer
// function. It never clamps; clamping happens at the RGB-triple boundary.
func SRGBFromLinearComp(c float64) float64 {
	if c > 0.0031308 {
		return (1+srgbAlpha)*math.Pow(c, 1/srgbGamma) - srgbAlpha
	}
	return c * srgbPhi
}

// SRGBToLinearComp decodes one sRGB-encoded component to linear light.
func SRGBToLinearComp(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+srgbAlpha)/(1+srgbAlpha), srgbGamma)
	}
	return c / srgbPhi
}

// ApplyTransfer converts a triple from the opposite transfer mode into trc:
// given linear components it returns the sRGB-encoded triple (clamped), and
// given encoded components it returns the linear triple.
func ApplyTransfer(r, g, b float64, trc Transfer) (float64, float64, float64) {
	if trc == SRGB {
		return clampComp(SRGBFromLinearComp(r)),
			clampComp(SRGBFromLinearComp(g)),
			clampComp(SRGBFromLinearComp(b))
	}
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// RGBToInt8 converts a float triple in trc to 8-bit channels. Encoded inputs
// truncate, matching the behavior of 8-bit color selectors; linear inputs are
// encoded first and rounded.
func RGBToInt8(r, g, b float64, trc Transfer) (uint8, uint8, uint8) {
	if trc == SRGB {
		return uint8(r * 255), uint8(g * 255), uint8(b * 255)
	}
	return uint8(math.Round(SRGBFromLinearComp(r) * 255)),
		uint8(math.Round(SRGBFromLinearComp(g) * 255)),
		uint8(math.Round(SRGBFromLinearComp(b) * 255))
}

// cartesianToPolar converts Oklab (a,b) to chroma and a hue in [0,360)
// degrees.
func cartesianToPolar(a, b float64) (c, h float64) {
	c = math.Hypot(a, b)
	hRad := math.Atan2(b, a)
	if hRad < 0 {
		hRad += 2 * math.Pi
	}
	return c, hRad * 180 / math.Pi
}

// polarToCartesian converts chroma and a hue in degrees to Oklab (a,b).
func polarToCartesian(c, h float64) (a, b float64) {
	hRad := h * math.Pi / 180
	return c * math.Cos(hRad), c * math.Sin(hRad)
}
