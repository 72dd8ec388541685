package okhue

import "math"

// okhsvS0 is the fixed S_0 knot of the OKHSV saturation mapping.
const okhsvS0 = 0.5

// RGBToOKHSV converts an RGB triple in trc to OKHSV: hue in degrees and
// saturation/value in percent. The curved gamut boundary is mapped onto the
// unit square through the ST cusp slopes and the toe function, so S=100,
// V=100 lands exactly on the gamut surface. Neutral colors report hue 0.
func RGBToOKHSV(r, g, b float64, trc Transfer) (h, s, v float64) {
	if trc == SRGB {
		r = SRGBToLinearComp(r)
		g = SRGBToLinearComp(g)
		b = SRGBToLinearComp(b)
	}
	okL, okA, okB := LinearToOklab(r, g, b)
	l := okL
	c, hc := cartesianToPolar(okA, okB)
	if c < 1e-6 {
		return 0, 0, roundTo(Toe(l)*100, 2)
	}
	h = hc
	if blueBandLo < hc && hc < blueBandHi {
		h = blueBandHi
	}
	a_ := okA / c
	b_ := okB / c
	cusp := FindCusp(a_, b_)
	sMax, tMax := cuspToST(cusp)
	k := 1 - okhsvS0/sMax

	// L_v, C_v: where the line through this color meets V=1 on the
	// idealized triangle.
	t := tMax / (c + l*tMax)
	lv := t * l
	cv := t * c
	lvt := ToeInv(lv)
	cvt := cv * lvt / lv

	// Invert the compensation for the toe and the curved triangle top.
	rs, gs, bs := OklabToLinear(lvt, a_*cvt, b_*cvt)
	scaleL := math.Cbrt(1 / max(rs, gs, bs))
	l = Toe(l / scaleL)

	v = l / lv
	s = (okhsvS0 + tMax) * cv / (tMax*okhsvS0 + tMax*k*cv)
	if s > 1 {
		s = 1
	}
	return roundTo(h, 2), roundTo(s*100, 2), roundTo(v*100, 2)
}

// OKHSVToRGB converts hue in degrees and saturation/value in percent to a
// clamped RGB triple in trc.
func OKHSVToRGB(h, s, v float64, trc Transfer) (float64, float64, float64) {
	s /= 100
	v /= 100
	var r, g, b float64
	switch {
	case v == 0:
		return 0, 0, 0
	case s == 0:
		r, g, b = OklabToLinear(ToeInv(v), 0, 0)
	default:
		a_, b_ := polarToCartesian(1, h)
		cusp := FindCusp(a_, b_)
		sMax, tMax := cuspToST(cusp)
		k := 1 - okhsvS0/sMax

		// L, C as if the gamut were a perfect triangle, at v == 1.
		lv := 1 - s*okhsvS0/(okhsvS0+tMax-tMax*k*s)
		cv := s * tMax * okhsvS0 / (okhsvS0 + tMax - tMax*k*s)
		l := v * lv
		c := v * cv

		// Compensate for the toe and the curved triangle top.
		lvt := ToeInv(lv)
		cvt := cv * lvt / lv
		lNew := ToeInv(l)
		c *= lNew / l
		l = lNew

		rs, gs, bs := OklabToLinear(lvt, a_*cvt, b_*cvt)
		scaleL := math.Cbrt(1 / max(rs, gs, bs))
		l *= scaleL
		c *= scaleL
		r, g, b = OklabToLinear(l, a_*c, b_*c)
	}
	if trc == SRGB {
		r = SRGBFromLinearComp(r)
		g = SRGBFromLinearComp(g)
		b = SRGBFromLinearComp(b)
	}
	return clampComp(r), clampComp(g), clampComp(b)
}
