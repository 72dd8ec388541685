package okhue

import "math"

// RGBToHSL converts an RGB triple in trc to hue [0,360), saturation and
// lightness in percent. Neutral colors report hue and saturation 0.
func RGBToHSL(r, g, b float64, trc Transfer) (h, s, l float64) {
	if trc == Linear {
		r = SRGBFromLinearComp(r)
		g = SRGBFromLinearComp(g)
		b = SRGBFromLinearComp(b)
	}
	v := max(r, g, b)
	m := min(r, g, b)
	// Lightness is the midrange of the components.
	l = (v + m) / 2
	c := v - m
	if c == 0 {
		return 0, 0, roundTo(l*100, 2)
	}
	switch v {
	case r:
		h = math.Mod((g-b)/c+6, 6)
	case g:
		h = (b-r)/c + 2
	case b:
		h = (r-g)/c + 4
	}
	// Chroma range is widest at half lightness.
	s = c / (1 - math.Abs(2*l-1))
	return roundTo(h*60, 2), roundTo(s*100, 2), roundTo(l*100, 2)
}

// HSLToRGB converts hue in degrees and saturation/lightness in percent to an
// RGB triple in trc. The result is in [0,1] by construction.
func HSLToRGB(h, s, l float64, trc Transfer) (float64, float64, float64) {
	h /= 60
	sector := int(h)
	s /= 100
	l /= 100
	var v float64
	if l < 0.5 {
		v = l * (1 + s)
	} else {
		v = s*(1-l) + l
	}
	m := 2*l - v
	d := h - float64(sector)
	if sector%2 == 0 {
		d = 1 - d
	}
	x := v - d*(v-m)
	return hueSectorToRGB(sector, v, m, x, trc)
}
