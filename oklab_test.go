package okhue

import (
	"math"
	"testing"
)

func TestLinearToOklab_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		wantL   float64
		wantA   float64
		wantB   float64
		tol     float64
	}{
		{"white", 1, 1, 1, 1, 0, 0, 1e-6},
		{"black", 0, 0, 0, 0, 0, 0, 1e-9},
		{"red", 1, 0, 0, 0.6279, 0.2249, 0.1258, 5e-4},
		{"green", 0, 1, 0, 0.8664, -0.2339, 0.1795, 5e-4},
		{"blue", 0, 0, 1, 0.4520, -0.0325, -0.3115, 5e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := LinearToOklab(tt.r, tt.g, tt.b)
			if math.Abs(l-tt.wantL) > tt.tol {
				t.Errorf("L = %v, want %v", l, tt.wantL)
			}
			if math.Abs(a-tt.wantA) > tt.tol {
				t.Errorf("a = %v, want %v", a, tt.wantA)
			}
			if math.Abs(b-tt.wantB) > tt.tol {
				t.Errorf("b = %v, want %v", b, tt.wantB)
			}
		})
	}
}

func TestOklabRoundtrip(t *testing.T) {
	colors := []struct {
		name    string
		r, g, b float64
	}{
		{"red", 1, 0, 0},
		{"green", 0, 1, 0},
		{"blue", 0, 0, 1},
		{"white", 1, 1, 1},
		{"mid gray", 0.5, 0.5, 0.5},
		{"skin tone", 0.8, 0.52, 0.38},
		{"dark teal", 0.05, 0.25, 0.28},
		{"near black", 0.01, 0.01, 0.02},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			l, a, b := LinearToOklab(c.r, c.g, c.b)
			r2, g2, b2 := OklabToLinear(l, a, b)
			if math.Abs(r2-c.r) > 1e-9 || math.Abs(g2-c.g) > 1e-9 || math.Abs(b2-c.b) > 1e-9 {
				t.Errorf("roundtrip = (%v, %v, %v), want (%v, %v, %v)", r2, g2, b2, c.r, c.g, c.b)
			}
		})
	}
}

func TestOklabMidGrayHex(t *testing.T) {
	// Encoded #808080 decodes to linear ~0.2159 and lands at Oklab L ~0.5981
	// with no chroma.
	r, g, b, err := ParseHex("#808080", Linear)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if math.Abs(r-0.2159) > 5e-4 {
		t.Errorf("linear r = %v, want ~0.2159", r)
	}
	l, a, bb := LinearToOklab(r, g, b)
	if math.Abs(l-0.5981) > 5e-4 {
		t.Errorf("L = %v, want ~0.5981", l)
	}
	if math.Abs(a) > 1e-6 || math.Abs(bb) > 1e-6 {
		t.Errorf("a, b = %v, %v, want ~0", a, bb)
	}
}

func TestToeRoundtrip(t *testing.T) {
	for _, x := range []float64{0, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		lr := Toe(x)
		if got := ToeInv(lr); math.Abs(got-x) > 1e-12 {
			t.Errorf("ToeInv(Toe(%v)) = %v", x, got)
		}
	}
}

func TestToeMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for x := 0.0; x <= 1.0; x += 0.01 {
		lr := Toe(x)
		if lr <= prev {
			t.Fatalf("Toe not strictly increasing at %v: %v <= %v", x, lr, prev)
		}
		prev = lr
	}
	// Endpoints are fixed points.
	if got := Toe(0); got != 0 {
		t.Errorf("Toe(0) = %v", got)
	}
	if got := Toe(1); math.Abs(got-1) > 1e-12 {
		t.Errorf("Toe(1) = %v", got)
	}
}
