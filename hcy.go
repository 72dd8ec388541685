package okhue

import "math"

// RGBToHCY converts an RGB triple in trc to hue [0,360), chroma and luma in
// percent, plus the chroma limit u reachable at this hue and luma. Callers
// editing chroma must apply the limit before the chroma value.
//
// Y is the BT.709-weighted sum of the components. With luma set, encoded
// components are always used for the sum even in a linear working space, so
// the channel reads as true luma rather than relative luminance.
//
// Neutral colors have no hue of their own; prevHue supplies the last known
// hue so the reported limit stays stable while chroma is zero.
func RGBToHCY(r, g, b, prevHue float64, trc Transfer, luma bool) (h, c, y, u float64) {
	if luma && trc == Linear {
		r = SRGBFromLinearComp(r)
		g = SRGBFromLinearComp(g)
		b = SRGBFromLinearComp(b)
	}
	y = y709R*r + y709G*g + y709B*b
	v := max(r, g, b)
	m := min(r, g, b)
	c = v - m
	h = prevHue

	// The luma coefficient of the hue interpolates between the BT.709
	// weights of the two channels bounding the current 60° sector. For
	// neutral colors the previous hue selects the sector instead.
	yHue := 0.0
	switch {
	case (c != 0 && v == g) || (c == 0 && 60 <= h && h <= 180):
		if c != 0 {
			h = (b-r)/c + 2
		} else {
			h = h / 60
		}
		if 1 <= h && h <= 2 { // between yellow and green
			d := h - 1
			yHue = y709G + y709R*(1-d)
		} else if 2 < h && h <= 3 { // between green and cyan
			d := h - 2
			yHue = y709G + y709B*d
		}
	case (c != 0 && v == b) || (c == 0 && 180 < h && h <= 300):
		if c != 0 {
			h = (r-g)/c + 4
		} else {
			h = h / 60
		}
		if 3 < h && h <= 4 { // between cyan and blue
			d := h - 3
			yHue = y709B + y709G*(1-d)
		} else if 4 < h && h <= 5 { // between blue and magenta
			d := h - 4
			yHue = y709B + y709R*d
		}
	case (c != 0 && v == r) || (c == 0 && (h > 300 || h < 60)):
		if c != 0 {
			h = math.Mod((g-b)/c+6, 6)
		} else {
			h = h / 60
		}
		if 5 < h && h <= 6 { // between magenta and red
			d := h - 5
			yHue = y709R + y709B*(1-d)
		} else if 0 <= h && h < 1 { // between red and yellow
			d := h
			yHue = y709R + y709G*d
		}
	}

	if y <= yHue {
		u = y / yHue
	} else {
		u = (1 - y) / (1 - yHue)
	}
	return roundTo(h*60, 2), roundTo(c*100, 3), roundTo(y*100, 2), roundTo(u*100, 3)
}

// HCYToRGB converts hue in degrees, chroma and luma in percent to an RGB
// triple in trc. Without a limit, chroma is clipped to the bound reachable at
// this hue and luma; with one, chroma is rescaled so the chroma-to-limit
// ratio is preserved.
func HCYToRGB(h, c, y float64, limit Limit, trc Transfer, luma bool) (float64, float64, float64) {
	return hcyCompose(h, c, y/100, false, limit, trc, luma)
}

// HCYMaxToRGB is HCYToRGB at the luma of maximum chroma for the hue: Y is
// pinned to the hue's own luma coefficient, where the full chroma range is
// available.
func HCYMaxToRGB(h, c float64, limit Limit, trc Transfer, luma bool) (float64, float64, float64) {
	return hcyCompose(h, c, 0, true, limit, trc, luma)
}

func hcyCompose(h, c, y float64, yIsMax bool, limit Limit, trc Transfer, luma bool) (float64, float64, float64) {
	h /= 60
	sector := int(h)

	if !yIsMax && (c == 0 || y == 0 || y == 1) {
		if luma && trc == Linear {
			y = SRGBToLinearComp(y)
		}
		// luma coefficients add up to 1
		return y, y, y
	}

	// Deviation from the closest primary color, alternating direction per
	// sector.
	d := h - float64(sector)
	if sector%2 != 0 {
		d = 1 - d
	}

	var yHue float64
	switch sector {
	case 1: // between yellow and green
		yHue = y709G + y709R*d
	case 2: // between green and cyan
		yHue = y709G + y709B*d
	case 3: // between cyan and blue
		yHue = y709B + y709G*d
	case 4: // between blue and magenta
		yHue = y709B + y709R*d
	case 5: // between magenta and red
		yHue = y709R + y709B*d
	default: // between red and yellow
		yHue = y709R + y709G*d
	}

	// At maximum chroma the luma equals the hue's own coefficient.
	if yIsMax {
		y = yHue
	}

	// Chroma cannot always stay constant across hue or luma edits; either
	// clip to the new bound or keep the chroma-to-limit ratio.
	var cMax float64
	if y <= yHue {
		cMax = y / yHue
	} else {
		cMax = (1 - y) / (1 - yHue)
	}
	if !limit.Valid {
		c /= 100
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

	// luma = max(R,G,B)*yHue + min(R,G,B)*(1-yHue); solve for the extremes.
	m := y - c*yHue
	x := y - c*(yHue-d)
	v := y + c*(1-yHue)
	if luma {
		return hueSectorToRGB(sector, v, m, x, trc)
	}
	return hueSectorToRGB(sector, v, m, x, SRGB)
}
