package okhue

// Interior knot of the OKHSL chroma interpolation.
const (
	okhslMid    = 0.8
	okhslMidInv = 1.25
)

// RGBToOKHSL converts an RGB triple in trc to OKHSL: hue in degrees and
// saturation/toe-compressed lightness in percent. Saturation interpolates
// through the smooth C0/Cmid/Cmax chroma envelope, so gradients cross the
// gamut apex without a kink.
func RGBToOKHSL(r, g, b float64, trc Transfer) (h, s, l float64) {
	if trc == SRGB {
		r = SRGBToLinearComp(r)
		g = SRGBToLinearComp(g)
		b = SRGBToLinearComp(b)
	}
	okL, okA, okB := LinearToOklab(r, g, b)
	l = okL
	c, hc := cartesianToPolar(okA, okB)
	if c >= 1e-6 {
		a_ := okA / c
		b_ := okB / c
		c0, cMid, cMax := chromaEnvelope(l, a_, b_)
		// Inverse of the interpolation in OKHSLToRGB.
		if c < cMid {
			k1 := okhslMid * c0
			k2 := 1 - k1/cMid
			t := c / (k1 + k2*c)
			s = t * okhslMid
		} else {
			k1 := (1 - okhslMid) * cMid * cMid * okhslMidInv * okhslMidInv / c0
			k2 := 1 - k1/(cMax-cMid)
			t := (c - cMid) / (k1 + k2*(c-cMid))
			s = okhslMid + (1-okhslMid)*t
		}
	}
	h = hc
	if blueBandLo < hc && hc < blueBandHi {
		h = blueBandHi
	}
	l = Toe(l)
	return roundTo(h, 2), roundTo(s*100, 2), roundTo(l*100, 2)
}

// OKHSLToRGB converts hue in degrees and saturation/lightness in percent to
// a clamped RGB triple in trc.
func OKHSLToRGB(h, s, l float64, trc Transfer) (float64, float64, float64) {
	s /= 100
	l /= 100
	if l == 0 || l == 1 {
		return l, l, l
	}
	a_, b_ := polarToCartesian(1, h)
	l = ToeInv(l)
	c := 0.0
	if s != 0 {
		c0, cMid, cMax := chromaEnvelope(l, a_, b_)
		// Interpolate so that dC/ds = C_0 at s=0, C = C_mid at the knot and
		// C = C_max at s=1.
		if s < okhslMid {
			t := okhslMidInv * s
			k1 := okhslMid * c0
			k2 := 1 - k1/cMid
			c = t * k1 / (1 - k2*t)
		} else {
			t := (s - okhslMid) / (1 - okhslMid)
			k1 := (1 - okhslMid) * cMid * cMid * okhslMidInv * okhslMidInv / c0
			k2 := 1 - k1/(cMax-cMid)
			c = cMid + t*k1/(1-k2*t)
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
