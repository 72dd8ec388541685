package okhue

import "math"

// Toe function constants for the perceptual lightness estimate L_r.
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1.0 + toeK1) / (1.0 + toeK2)
)

// LinearToOklab converts linear RGB to Oklab. The matrix constants carry the
// full double precision of the reference Oklab definition; truncating them
// shifts hues visibly after round trips.
func LinearToOklab(r, g, b float64) (okL, okA, okB float64) {
	// approximate cone responses
	l := 0.412221469470763*r + 0.5363325372617348*g + 0.0514459932675022*b
	m := 0.2119034958178252*r + 0.6806995506452344*g + 0.1073969535369406*b
	s := 0.0883024591900564*r + 0.2817188391361215*g + 0.6299787016738222*b

	l_ := math.Cbrt(l)
	m_ := math.Cbrt(m)
	s_ := math.Cbrt(s)

	okL = 0.210454268309314*l_ + 0.7936177747023054*m_ - 0.0040720430116193*s_
	okA = 1.9779985324311684*l_ - 2.4285922420485799*m_ + 0.450593709617411*s_
	okB = 0.0259040424655478*l_ + 0.7827717124575296*m_ - 0.8086757549230774*s_
	return okL, okA, okB
}

// OklabToLinear converts Oklab to linear RGB. Out-of-gamut inputs produce
// components outside [0,1]; callers clamp at the display boundary.
func OklabToLinear(okL, okA, okB float64) (r, g, b float64) {
	l_ := okL + 0.3963377773761749*okA + 0.2158037573099136*okB
	m_ := okL - 0.1055613458156586*okA - 0.0638541728258133*okB
	s_ := okL - 0.0894841775298119*okA - 1.2914855480194092*okB

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	r = 4.0767416360759574*l - 3.3077115392580616*m + 0.2309699031821044*s
	g = -1.2684379732850317*l + 2.6097573492876887*m - 0.3413193760026573*s
	b = -0.0041960761386756*l - 0.7034186179359362*m + 1.7076146940746117*s
	return r, g, b
}

// Toe maps Oklab lightness to the toe-compressed estimate L_r, which spaces
// dark steps more evenly to the eye.
func Toe(x float64) float64 {
	k := toeK3*x - toeK1
	return 0.5 * (k + math.Sqrt(k*k+4*toeK2*toeK3*x))
}

// ToeInv is the exact inverse of Toe.
func ToeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}
