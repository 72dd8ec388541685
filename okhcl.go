package okhue

// RGBToOKHCL converts an RGB triple in trc to OKHCL: hue in degrees, chroma
// in percent of the cusp chroma for that hue, toe-compressed lightness L_r in
// percent, and the chroma bound u (also cusp-relative, in percent). Neutral
// colors (chroma below 1e-6) report chroma 0 and keep prevHue for the bound.
func RGBToOKHCL(r, g, b, prevHue float64, trc Transfer) (h, c, l, u float64) {
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
		cusp := FindCusp(a_, b_)
		u = gamutIntersection(a_, b_, l, 1, l, cusp)
		u /= cusp.C
		c = 0
	} else {
		h = hc
		if blueBandLo < hc && hc < blueBandHi {
			h = blueBandHi
		}
		a_ := okA / c
		b_ := okB / c
		cusp := FindCusp(a_, b_)
		u = gamutIntersection(a_, b_, l, 1, l, cusp)
		if c > u {
			c = u
		}
		u /= cusp.C
		c /= cusp.C
	}
	l = Toe(l)
	return roundTo(h, 2), roundTo(c*100, 3), roundTo(l*100, 2), roundTo(u*100, 3)
}

// OKHCLToRGB converts hue in degrees, cusp-relative chroma in percent and
// toe-compressed lightness in percent to a clamped RGB triple in trc.
// Without a limit, chroma is clipped to the sRGB gamut bound; with one,
// chroma is rescaled so the chroma-to-limit ratio is preserved.
func OKHCLToRGB(h, c, l float64, limit Limit, trc Transfer) (float64, float64, float64) {
	l = ToeInv(l / 100)
	a_, b_ := polarToCartesian(1, h)
	if c != 0 {
		cusp := FindCusp(a_, b_)
		cMax := gamutIntersection(a_, b_, l, 1, l, cusp)
		if !limit.Valid {
			c = c / 100 * cusp.C
			if c > cMax {
				c = cMax
			}
		} else {
			s := 0.0
			if limit.Value != 0 {
				s = c / limit.Value
			}
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
