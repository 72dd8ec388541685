package okhue

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatHex formats an RGB triple in trc as an uppercase "#RRGGBB" string.
func FormatHex(r, g, b float64, trc Transfer) string {
	r8, g8, b8 := RGBToInt8(r, g, b, trc)
	return fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
}

// ParseHex parses a "#RGB" or "#RRGGBB" hex string into an RGB triple in
// trc. Short-form nibbles are duplicated.
func ParseHex(s string, trc Transfer) (r, g, b float64, err error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: must be #RGB or #RRGGBB", s)
	}
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r = float64(n>>16&0xff) / 255
	g = float64(n>>8&0xff) / 255
	b = float64(n&0xff) / 255
	if trc == SRGB {
		return r, g, b, nil
	}
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b), nil
}

// formatNum prints a float with no exponent and no trailing zeros.
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatOklab formats an RGB triple in trc as a CSS "oklab(L% a b)" string,
// with L rounded to two decimals and a/b truncated to four.
func FormatOklab(r, g, b float64, trc Transfer) string {
	if trc == SRGB {
		r = SRGBToLinearComp(r)
		g = SRGBToLinearComp(g)
		b = SRGBToLinearComp(b)
	}
	okL, okA, okB := LinearToOklab(r, g, b)
	return fmt.Sprintf("oklab(%s%% %s %s)",
		formatNum(roundTo(okL*100, 2)), formatNum(truncTo(okA, 4)), formatNum(truncTo(okB, 4)))
}

// ParseOklab parses a CSS "oklab(L% a b)" string into a clamped RGB triple
// in trc. L accepts a bare [0,1] number or a percentage; a and b accept bare
// values clamped to ±0.4 or percentages of that range.
func ParseOklab(s string, trc Transfer) (float64, float64, float64, error) {
	if !strings.HasPrefix(s, "oklab") {
		return 0, 0, 0, fmt.Errorf("invalid oklab color %q: missing oklab prefix", s)
	}
	fields := strings.Fields(strings.Trim(s[5:], "( )"))
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid oklab color %q: want 3 components, got %d", s, len(fields))
	}
	okL, err := parseComponent(fields[0], 100)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklab lightness %q: %w", fields[0], err)
	}
	okA, err := parseComponent(fields[1], 250)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklab a %q: %w", fields[1], err)
	}
	okB, err := parseComponent(fields[2], 250)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklab b %q: %w", fields[2], err)
	}
	okL = clampComp(okL)
	okA = clamp(okA, -0.4, 0.4)
	okB = clamp(okB, -0.4, 0.4)
	r, g, b := OklabToLinear(okL, okA, okB)
	if trc == SRGB {
		r = SRGBFromLinearComp(r)
		g = SRGBFromLinearComp(g)
		b = SRGBFromLinearComp(b)
	}
	return clampComp(r), clampComp(g), clampComp(b), nil
}

// FormatOKLCH formats an RGB triple in trc as a CSS "oklch(L% C H)" string.
func FormatOKLCH(r, g, b float64, trc Transfer) string {
	l, c, h, _ := RGBToOKLCH(r, g, b, 0, trc)
	return fmt.Sprintf("oklch(%s%% %s %s)", formatNum(l), formatNum(c), formatNum(h))
}

// ParseOKLCH parses a CSS "oklch(L% C H)" string into a clamped, in-gamut
// RGB triple in trc. The hue accepts deg, grad, rad and turn suffixes or a
// bare number of degrees.
func ParseOKLCH(s string, trc Transfer) (float64, float64, float64, error) {
	if !strings.HasPrefix(s, "oklch") {
		return 0, 0, 0, fmt.Errorf("invalid oklch color %q: missing oklch prefix", s)
	}
	fields := strings.Fields(strings.Trim(s[5:], "( )"))
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid oklch color %q: want 3 components, got %d", s, len(fields))
	}
	l, err := parseComponent(fields[0], 100)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch lightness %q: %w", fields[0], err)
	}
	c, err := parseComponent(fields[1], 250)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch chroma %q: %w", fields[1], err)
	}
	h, err := parseAngle(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch hue %q: %w", fields[2], err)
	}
	l = clampComp(l)
	c = clamp(c, 0, 0.4)
	r, g, b := OKLCHToRGB(l*100, c, h, Limit{}, trc)
	return r, g, b, nil
}

// parseComponent parses a numeric token, dividing by percentScale when the
// token carries a % suffix. The percent scale differs between L (100) and
// a/b/C (250, mapping 100% to 0.4).
func parseComponent(tok string, percentScale float64) (float64, error) {
	if rest, ok := strings.CutSuffix(tok, "%"); ok {
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, err
		}
		return f / percentScale, nil
	}
	return strconv.ParseFloat(tok, 64)
}

// parseAngle parses a CSS angle token and normalizes it to [0,360) degrees.
func parseAngle(tok string) (float64, error) {
	var d float64
	var err error
	switch {
	case strings.HasSuffix(tok, "deg"):
		d, err = strconv.ParseFloat(strings.TrimSuffix(tok, "deg"), 64)
	case strings.HasSuffix(tok, "grad"):
		d, err = strconv.ParseFloat(strings.TrimSuffix(tok, "grad"), 64)
		d = d / 10 * 9
	case strings.HasSuffix(tok, "rad"):
		d, err = strconv.ParseFloat(strings.TrimSuffix(tok, "rad"), 64)
		d = d * 180 / math.Pi
	case strings.HasSuffix(tok, "turn"):
		d, err = strconv.ParseFloat(strings.TrimSuffix(tok, "turn"), 64)
		d *= 360
	default:
		d, err = strconv.ParseFloat(tok, 64)
	}
	if err != nil {
		return 0, err
	}
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d, nil
}

// ParseAny tries every notation against s and returns the first RGB triple
// that parses, along with the notation that matched. The current notation
// biases how a bare 3-number form is read; otherwise a leading minus on the
// second token signals Oklab's signed a axis and a trailing angle unit on
// the third signals OKLCH's hue.
func ParseAny(s string, trc Transfer, current Notation) (r, g, b float64, n Notation, err error) {
	type attempt struct {
		parse    func(string, Transfer) (float64, float64, float64, error)
		arg      string
		notation Notation
	}
	var attempts []attempt

	if len(s) == 3 || len(s) == 6 {
		attempts = append(attempts, attempt{ParseHex, "#" + s, NotationHex})
	}
	if (len(s) == 4 || len(s) == 7) && s[0] == '#' {
		attempts = append(attempts, attempt{ParseHex, s, NotationHex})
	}
	if strings.HasPrefix(s, "oklab") {
		attempts = append(attempts, attempt{ParseOklab, s, NotationOklab})
	}
	if strings.HasPrefix(s, "oklch") {
		attempts = append(attempts, attempt{ParseOKLCH, s, NotationOKLCH})
	}
	if current == NotationOklab {
		attempts = append(attempts, attempt{ParseOklab, s, NotationOklab})
	}
	if current == NotationOKLCH {
		attempts = append(attempts, attempt{ParseOKLCH, s, NotationOKLCH})
	}

	if fields := strings.Fields(s); len(fields) == 3 {
		bare := strings.Join(fields, " ")
		if current == NotationOklab || fields[1][0] == '-' {
			attempts = append(attempts, attempt{ParseOklab, "oklab(" + bare + ")", NotationOklab})
		}
		hasUnit := strings.HasSuffix(fields[2], "deg") || strings.HasSuffix(fields[2], "grad") ||
			strings.HasSuffix(fields[2], "rad") || strings.HasSuffix(fields[2], "turn")
		if current == NotationOKLCH || hasUnit {
			attempts = append(attempts, attempt{ParseOKLCH, "oklch(" + bare + ")", NotationOKLCH})
		}
	}

	for _, at := range attempts {
		if r, g, b, err := at.parse(at.arg, trc); err == nil {
			return r, g, b, at.notation, nil
		}
	}
	return 0, 0, 0, NotationNone, fmt.Errorf("unrecognized color notation %q", s)
}
