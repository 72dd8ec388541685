package okhue

import "math"

// Cusp is the point of maximum chroma on the sRGB gamut boundary for a fixed
// hue direction, the apex of the idealized gamut triangle in the (L,C) plane.
type Cusp struct {
	L float64
	C float64
}

// MaxSaturation finds the maximum saturation S = C/L representable in sRGB
// for the hue direction (a,b), which must be normalized so a²+b² = 1.
//
// A quartic fit picks the starting estimate, chosen per RGB channel by two
// linear inequalities predicting which channel leaves [0,1] first, then a
// single Halley step against the true cubic refines it. The error stays under
// about 1e-6 except near a blue hue where dS/dh blows up; one fixed step is
// the intended cost/accuracy tradeoff.
func MaxSaturation(a, b float64) float64 {
	// Blue component coefficients by default.
	k0, k1, k2, k3, k4 := 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
	wl, wm, ws := -0.0041960863, -0.7034186147, 1.7076147010
	if -1.88170328*a-0.80936493*b > 1 {
		// Red goes below zero first.
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	} else if 1.81444104*a-1.19445276*b > 1 {
		// Green goes below zero first.
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	}

	maxS := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := +0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	l_ := 1.0 + maxS*kl
	m_ := 1.0 + maxS*km
	s_ := 1.0 + maxS*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ldS := 3.0 * kl * l_ * l_
	mdS := 3.0 * km * m_ * m_
	sdS := 3.0 * ks * s_ * s_

	ldS2 := 6.0 * kl * kl * l_
	mdS2 := 6.0 * km * km * m_
	sdS2 := 6.0 * ks * ks * s_

	f := wl*l + wm*m + ws*s
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return maxS - f*f1/(f1*f1-0.5*f*f2)
}

// FindCusp finds the gamut cusp for the hue direction (a,b), normalized so
// a²+b² = 1.
func FindCusp(a, b float64) Cusp {
	maxS := MaxSaturation(a, b)
	// Scale lightness so the first channel to clip lands exactly on 1.
	r, g, bl := OklabToLinear(1, maxS*a, maxS*b)
	cuspL := math.Cbrt(1.0 / max(r, g, bl))
	return Cusp{L: cuspL, C: cuspL * maxS}
}

// FindGamutIntersection finds the parameter t in [0,1] at which the ray from
// the neutral point (L0, C=0) toward (L1, C1) leaves the sRGB gamut. The hue
// direction (a,b) must be normalized so a²+b² = 1.
func FindGamutIntersection(a, b, l1, c1, l0 float64) float64 {
	return gamutIntersection(a, b, l1, c1, l0, FindCusp(a, b))
}

// gamutIntersection is FindGamutIntersection with the cusp already known.
//
// The lower gamut half has a closed-form intersection. The upper half first
// intersects the idealized triangle edge, then takes one Halley step per RGB
// channel against the true cubic boundary and advances by the smallest valid
// correction. Refinements with a negative denominator are replaced by +Inf so
// they can never be selected.
func gamutIntersection(a, b, l1, c1, l0 float64, cusp Cusp) float64 {
	var t float64
	if (l1-l0)*cusp.C-(cusp.L-l1)*c1 <= 0.0 {
		// Lower half.
		t = cusp.C * l0 / (c1*cusp.L + cusp.C*(l0-l1))
	} else {
		// Upper half: triangle edge first.
		t = cusp.C * (l0 - 1.0) / (c1*(cusp.L-1.0) + cusp.C*(l0-l1))

		dL := l1 - l0
		dC := c1

		kl := +0.3963377774*a + 0.2158037573*b
		km := -0.1055613458*a - 0.0638541728*b
		ks := -0.0894841775*a - 1.2914855480*b

		ldt_ := dL + dC*kl
		mdt_ := dL + dC*km
		sdt_ := dL + dC*ks

		l := l0*(1.0-t) + t*l1
		c := t * c1

		l_ := l + c*kl
		m_ := l + c*km
		s_ := l + c*ks

		l3 := l_ * l_ * l_
		m3 := m_ * m_ * m_
		s3 := s_ * s_ * s_

		ldt := 3 * ldt_ * l_ * l_
		mdt := 3 * mdt_ * m_ * m_
		sdt := 3 * sdt_ * s_ * s_

		ldt2 := 6 * ldt_ * ldt_ * l_
		mdt2 := 6 * mdt_ * mdt_ * m_
		sdt2 := 6 * sdt_ * sdt_ * s_

		r0 := 4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3 - 1
		r1 := 4.0767416621*ldt - 3.3077115913*mdt + 0.2309699292*sdt
		r2 := 4.0767416621*ldt2 - 3.3077115913*mdt2 + 0.2309699292*sdt2

		uR := r1 / (r1*r1 - 0.5*r0*r2)
		tR := -r0 * uR

		g0 := -1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3 - 1
		g1 := -1.2684380046*ldt + 2.6097574011*mdt - 0.3413193965*sdt
		g2 := -1.2684380046*ldt2 + 2.6097574011*mdt2 - 0.3413193965*sdt2

		uG := g1 / (g1*g1 - 0.5*g0*g2)
		tG := -g0 * uG

		b0 := -0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3 - 1
		b1 := -0.0041960863*ldt - 0.7034186147*mdt + 1.7076147010*sdt
		b2 := -0.0041960863*ldt2 - 0.7034186147*mdt2 + 1.7076147010*sdt2

		uB := b1 / (b1*b1 - 0.5*b0*b2)
		tB := -b0 * uB

		if uR < 0 {
			tR = math.Inf(1)
		}
		if uG < 0 {
			tG = math.Inf(1)
		}
		if uB < 0 {
			tB = math.Inf(1)
		}

		t += min(tR, tG, tB)
	}
	return t
}

// cuspToST converts a cusp to the slopes of the two triangle edges meeting
// it: S from black, T from white.
func cuspToST(cusp Cusp) (s, t float64) {
	return cusp.C / cusp.L, cusp.C / (1 - cusp.L)
}

// midST is a smooth polynomial approximation of the cusp location, fit so
// that S_mid < S_max and T_mid < T_max everywhere.
func midST(a, b float64) (s, t float64) {
	s = 0.11516993 + 1.0/(+7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))
	t = 0.11239642 + 1.0/(+1.61320320-0.68124379*b+
		a*(+0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(+0.00299215-0.45399568*b-0.14661872*a))))
	return s, t
}

// chromaEnvelope returns the three chroma knots C_0, C_mid and C_max used by
// OKHSL: the hue-independent base, a softened interior value, and the exact
// gamut bound at lightness l for the normalized hue direction (a,b).
func chromaEnvelope(l, a, b float64) (c0, cMid, cMax float64) {
	cusp := FindCusp(a, b)
	cMax = gamutIntersection(a, b, l, 1, l, cusp)
	sMax, tMax := cuspToST(cusp)

	// Scale factor to compensate for the curved part of the gamut.
	k := cMax / min(l*sMax, (1-l)*tMax)

	sMid, tMid := midST(a, b)

	// Soft minimum instead of the sharp triangle, so chroma varies smoothly
	// through the apex.
	ls := l * sMid
	lt := (1 - l) * tMid
	cMid = 0.9 * k * math.Pow(1/(1/(ls*ls*ls*ls)+1/(lt*lt*lt*lt)), 0.25)

	// For C_0 the shape is hue-independent; 0.4 and 0.8 are roughly the
	// average ST values.
	la := l * 0.4
	lb := (1 - l) * 0.8
	c0 = math.Sqrt(1 / (1/(la*la) + 1/(lb*lb)))
	return c0, cMid, cMax
}
