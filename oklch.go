package okhue

// Hues between blueBandLo and blueBandHi make the analytic gamut
// intersection jump: floating-point cancellation in the triangle/Halley
// transition makes the reported bound discontinuous. The hue is snapped to
// blueBandHi and the bound nudged down so clipped chroma stays inside the
// gamut on both sides of the seam.
const (
	blueBandLo = 264.052
	blueBandHi = 264.06
)

// RGBToOKLCH converts an RGB triple in trc to OKLCH: lightness in percent,
// chroma, hue in degrees, plus the sRGB gamut chroma bound u at this
// lightness and hue. Chroma below 1e-6 is floating-point residue of neutral
// colors; such colors report chroma 0 and keep prevHue for the bound.
func RGBToOKLCH(r, g, b, prevHue float64, trc Transfer) (l, c, h, u float64) {
	if trc == SRGB {
		r = SRGBToLinearComp(r)
		g = SRGBToLinearComp(g)
		b = SRGBToLinearComp(b)
	}
	okL, okA, okB := LinearToOklab(r, g, b)
	l = okL
	c, hc := cartesianToPolar(okA, okB)
	h = prevHue
	if c < 1e-6 {
		a_, b_ := polarToCartesian(1, h)
		u = FindGamutIntersection(a_, b_, l, 1, l)
		c = 0
	} else {
		// a and b must be normalized to c = 1 for the gamut search.
		a_ := okA / c
		b_ := okB / c
		u = FindGamutIntersection(a_, b_, l, 1, l)
		if c > u {
			c = u
		}
		if blueBandLo < hc && hc < blueBandHi {
			h = blueBandHi
			c = roundTo(c-0.0001, 4)
		} else {
			h = roundTo(hc, 2)
			c = truncTo(c, 4)
		}
	}
	if h == blueBandHi {
		u = roundTo(u-0.0001, 4)
	} else {
		u = truncTo(u, 4)
	}
	return roundTo(l*100, 2), c, h, u
}

// OKLCHToRGB converts OKLCH lightness in percent, chroma and hue in degrees
// to a clamped RGB triple in trc. Without a limit, chroma is clipped to the
// exact sRGB gamut bound; with one, chroma is rescaled so the
// chroma-to-limit ratio is preserved.
func OKLCHToRGB(l, c, h float64, limit Limit, trc Transfer) (float64, float64, float64) {
	l /= 100
	a_, b_ := polarToCartesian(1, h)
	if c != 0 {
		cMax := FindGamutIntersection(a_, b_, l, 1, l)
		if !limit.Valid {
			if c > cMax {
				c = cMax
			}
		} else {
			s := (c + 0.00005) / (limit.Value + 0.00005)
			c = s * cMax
		}
	}
	r, g, b := OklabToLinear(l, a_*c, b_*c)
	if trc == SRGB {
		r = SRGBFromLinearComp(r)
		g = SRGBFromLinearComp(g)
		b = SRGBFromLinearComp(b)
	}
	return clampComp(r), clampComp(g), clampComp(b)
}
