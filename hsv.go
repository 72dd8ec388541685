package okhue

import "math"

// hueSectorToRGB assigns the max, med and min components to the channels
// dictated by the 60° hue sector, then converts to linear if the working
// transfer mode is not sRGB.
func hueSectorToRGB(sector int, v, m, x float64, trc Transfer) (float64, float64, float64) {
	var r, g, b float64
	switch sector {
	case 1: // between yellow and green
		r, g, b = x, v, m
	case 2: // between green and cyan
		r, g, b = m, v, x
	case 3: // between cyan and blue
		r, g, b = m, x, v
	case 4: // between blue and magenta
		r, g, b = x, m, v
	case 5: // between magenta and red
		r, g, b = v, m, x
	default: // between red and yellow
		r, g, b = v, x, m
	}
	if trc == SRGB {
		return r, g, b
	}
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// RGBToHSV converts an RGB triple in trc to hue [0,360), saturation and
// value in percent. Neutral colors report hue and saturation 0.
func RGBToHSV(r, g, b float64, trc Transfer) (h, s, v float64) {
	// HSV is defined over encoded components.
	if trc == Linear {
		r = SRGBFromLinearComp(r)
		g = SRGBFromLinearComp(g)
		b = SRGBFromLinearComp(b)
	}
	v = max(r, g, b)
	m := min(r, g, b)
	c := v - m
	if c == 0 {
		// hue cannot be determined if the color is neutral
		return 0, 0, roundTo(v*100, 2)
	}
	// Hue is the primary hue of whichever channel is the max plus a ±1
	// deviation computed from the other two, in 60° sectors.
	switch v {
	case r:
		h = math.Mod((g-b)/c+6, 6)
	case g:
		h = (b-r)/c + 2
	case b:
		h = (r-g)/c + 4
	}
	s = c / v
	return roundTo(h*60, 2), roundTo(s*100, 2), roundTo(v*100, 2)
}

// HSVToRGB converts hue in degrees and saturation/value in percent to an RGB
// triple in trc. The result is in [0,1] by construction.
func HSVToRGB(h, s, v float64, trc Transfer) (float64, float64, float64) {
	h /= 60
	sector := int(h)
	s /= 100
	v /= 100
	// min(R,G,B) = value - chroma
	m := v * (1 - s)
	// Deviation from the closest secondary color, alternating direction per
	// sector.
	d := h - float64(sector)
	if sector%2 == 0 {
		d = 1 - d
	}
	x := v * (1 - d*s)
	return hueSectorToRGB(sector, v, m, x, trc)
}
