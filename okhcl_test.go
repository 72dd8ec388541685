package okhue

import (
	"math"
	"testing"
)

func TestRGBToOKHCL(t *testing.T) {
	// Encoded red is the cusp of its own hue, so the cusp-relative chroma and
	// bound both read 100%.
	h, c, l, u := RGBToOKHCL(1, 0, 0, 0, SRGB)
	if math.Abs(h-29.23) > 0.05 {
		t.Errorf("H = %v, want ~29.23", h)
	}
	if math.Abs(c-100) > 0.5 {
		t.Errorf("C = %v, want ~100", c)
	}
	if math.Abs(u-100) > 0.5 {
		t.Errorf("limit = %v, want ~100", u)
	}
	if math.Abs(l-56.81) > 0.05 {
		t.Errorf("L = %v, want ~56.81", l)
	}
}

func TestRGBToOKHCL_NeutralKeepsPrevHue(t *testing.T) {
	h, c, l, u := RGBToOKHCL(0.3, 0.3, 0.3, 200, SRGB)
	if c != 0 {
		t.Fatalf("chroma = %v, want 0", c)
	}
	if h != 200 {
		t.Errorf("hue = %v, want 200", h)
	}
	if u <= 0 || u > 100.001 {
		t.Errorf("limit = %v, want in (0, 100]", u)
	}
	if l <= 0 || l >= 100 {
		t.Errorf("lightness = %v, want in (0, 100)", l)
	}
}

func TestOKHCLToRGB_Grays(t *testing.T) {
	// Zero chroma ignores the hue entirely.
	r, g, b := OKHCLToRGB(123, 0, 50, Limit{}, SRGB)
	if math.Abs(r-g) > 1e-9 || math.Abs(g-b) > 1e-9 {
		t.Fatalf("gray not neutral: (%v, %v, %v)", r, g, b)
	}
	if r <= 0.4 || r >= 0.6 {
		t.Errorf("mid gray component = %v", r)
	}
}

func TestOKHCLRoundtrip(t *testing.T) {
	colors := []struct {
		name    string
		r, g, b float64
	}{
		{"brick", 0.7, 0.25, 0.2},
		{"moss", 0.35, 0.5, 0.2},
		{"denim", 0.25, 0.4, 0.65},
		{"sand", 0.9, 0.8, 0.6},
	}

	for _, tt := range colors {
		t.Run(tt.name, func(t *testing.T) {
			h, c, l, _ := RGBToOKHCL(tt.r, tt.g, tt.b, 0, SRGB)
			r, g, b := OKHCLToRGB(h, c, l, Limit{}, SRGB)
			if math.Abs(r-tt.r) > 0.01 || math.Abs(g-tt.g) > 0.01 || math.Abs(b-tt.b) > 0.01 {
				t.Errorf("roundtrip = (%v, %v, %v), want (%v, %v, %v)",
					r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestOKHCLToRGB_LimitPreservesRatio(t *testing.T) {
	// Passing the reported limit back in rescales chroma to the same ratio of
	// the bound, which for an unchanged lightness reproduces the color.
	h, c, l, u := RGBToOKHCL(0.7, 0.25, 0.2, 0, SRGB)
	r, g, b := OKHCLToRGB(h, c, l, LimitOf(u), SRGB)
	if math.Abs(r-0.7) > 0.01 || math.Abs(g-0.25) > 0.01 || math.Abs(b-0.2) > 0.01 {
		t.Errorf("limit roundtrip = (%v, %v, %v), want (0.7, 0.25, 0.2)", r, g, b)
	}

	// A zero limit means no chroma is reachable; the result is neutral.
	r, g, b = OKHCLToRGB(h, c, l, LimitOf(0), SRGB)
	if math.Abs(r-g) > 1e-9 || math.Abs(g-b) > 1e-9 {
		t.Errorf("zero-limit result not neutral: (%v, %v, %v)", r, g, b)
	}
}

func TestOKHCLToRGB_ClipsToBound(t *testing.T) {
	// Requests beyond the cusp-relative bound clip instead of leaving the
	// gamut.
	for _, in := range [][3]float64{
		{30, 100, 30}, {30, 100, 90}, {200, 100, 50}, {120, 100, 75},
	} {
		r, g, b := OKHCLToRGB(in[0], in[1], in[2], Limit{}, SRGB)
		for _, comp := range []float64{r, g, b} {
			if comp < 0 || comp > 1 {
				t.Errorf("OKHCLToRGB(%v) component %v out of range", in, comp)
			}
		}
	}
}
