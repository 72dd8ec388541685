package okhue

import (
	"math"
	"testing"
)

func TestRGBToOKHSL_Neutrals(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		wantL   float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 1, 1, 1, 100},
		{"mid gray", 0.5, 0.5, 0.5, 53.37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToOKHSL(tt.r, tt.g, tt.b, SRGB)
			if h != 0 || s != 0 {
				t.Errorf("H, S = %v, %v, want 0, 0", h, s)
			}
			if math.Abs(l-tt.wantL) > 0.05 {
				t.Errorf("L = %v, want ~%v", l, tt.wantL)
			}
		})
	}
}

func TestRGBToOKHSL_Primaries(t *testing.T) {
	// Fully saturated colors sit on the gamut surface, so saturation reads
	// 100%.
	for _, tt := range []struct {
		name    string
		r, g, b float64
	}{
		{"red", 1, 0, 0},
		{"green", 0, 1, 0},
		{"yellow", 1, 1, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, s, _ := RGBToOKHSL(tt.r, tt.g, tt.b, SRGB)
			if math.Abs(s-100) > 0.1 {
				t.Errorf("S = %v, want ~100", s)
			}
		})
	}
}

func TestOKHSLToRGB_Extremes(t *testing.T) {
	// Lightness extremes are exact regardless of hue and saturation.
	if r, g, b := OKHSLToRGB(200, 80, 0, SRGB); r != 0 || g != 0 || b != 0 {
		t.Errorf("L=0 = (%v, %v, %v), want black", r, g, b)
	}
	if r, g, b := OKHSLToRGB(200, 80, 100, SRGB); r != 1 || g != 1 || b != 1 {
		t.Errorf("L=100 = (%v, %v, %v), want white", r, g, b)
	}

	// Zero saturation ignores the hue.
	r, g, b := OKHSLToRGB(321, 0, 53.37, SRGB)
	if math.Abs(r-g) > 1e-9 || math.Abs(g-b) > 1e-9 {
		t.Fatalf("S=0 not neutral: (%v, %v, %v)", r, g, b)
	}
	if math.Abs(r-0.5) > 0.005 {
		t.Errorf("S=0 gray component = %v, want ~0.5", r)
	}
}

func TestOKHSLToRGB_FullSaturationOnSurface(t *testing.T) {
	// S=100 reaches the gamut bound for the lightness: one linear channel
	// pins to an extreme.
	for _, h := range []float64{10, 60, 120, 180, 230, 310, 350} {
		for _, l := range []float64{35, 55, 75} {
			r, g, b := OKHSLToRGB(h, 100, l, SRGB)
			lr := SRGBToLinearComp(r)
			lg := SRGBToLinearComp(g)
			lb := SRGBToLinearComp(b)
			hi := max(lr, lg, lb)
			lo := min(lr, lg, lb)
			if math.Abs(hi-1) > 0.015 && math.Abs(lo) > 0.015 {
				t.Errorf("h=%v l=%v: (%v, %v, %v) not on gamut surface", h, l, lr, lg, lb)
			}
		}
	}
}

func TestOKHSLRoundtrip(t *testing.T) {
	for _, hsl := range [][3]float64{
		{25, 50, 60}, {25, 95, 60}, {140, 30, 40}, {220, 70, 70}, {330, 85, 35},
	} {
		r, g, b := OKHSLToRGB(hsl[0], hsl[1], hsl[2], SRGB)
		h, s, l := RGBToOKHSL(r, g, b, SRGB)
		if math.Abs(h-hsl[0]) > 0.05 || math.Abs(s-hsl[1]) > 0.05 || math.Abs(l-hsl[2]) > 0.05 {
			t.Errorf("roundtrip of %v = (%v, %v, %v)", hsl, h, s, l)
		}
	}
}

func TestOKHSLRGBRoundtrip(t *testing.T) {
	colors := []struct {
		name    string
		r, g, b float64
	}{
		{"terracotta", 0.8, 0.4, 0.3},
		{"sage", 0.6, 0.7, 0.5},
		{"periwinkle", 0.6, 0.6, 0.9},
		{"espresso", 0.3, 0.2, 0.15},
	}

	for _, tt := range colors {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToOKHSL(tt.r, tt.g, tt.b, SRGB)
			r, g, b := OKHSLToRGB(h, s, l, SRGB)
			if math.Abs(r-tt.r) > 0.01 || math.Abs(g-tt.g) > 0.01 || math.Abs(b-tt.b) > 0.01 {
				t.Errorf("roundtrip = (%v, %v, %v), want (%v, %v, %v)",
					r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}
