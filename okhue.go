// Package okhue converts colors between sRGB and a set of perceptual and
// cylindrical color models: HSV, HSL, HCY and the Oklab-derived OKLCH, OKHCL,
// OKHSV and OKHSL. It also parses and formats the hex, oklab() and oklch()
// textual notations.
//
// Every function is pure: numeric components in, numeric components out, with
// an explicit transfer-mode flag saying whether RGB triples are sRGB-encoded
// or linear. The package keeps no state, so all functions are safe to call
// concurrently.
package okhue

// Transfer identifies which transfer mode an RGB triple is in. It is always
// passed explicitly, never inferred.
type Transfer int

const (
	// SRGB marks components as sRGB gamma-encoded.
	SRGB Transfer = iota
	// Linear marks components as linear light.
	Linear
)

func (t Transfer) String() string {
	if t == Linear {
		return "linear"
	}
	return "sRGB"
}

// Limit is an optional, previously computed chroma bound. Conversions that
// accept one use it to rescale chroma so the chroma-to-limit ratio stays
// constant across hue or lightness edits. The zero value means "no limit
// supplied": chroma is then clipped against a freshly computed bound instead.
type Limit struct {
	Value float64
	Valid bool
}

// LimitOf returns a valid Limit holding v.
func LimitOf(v float64) Limit {
	return Limit{Value: v, Valid: true}
}

// Notation identifies a textual color notation.
type Notation int

const (
	NotationNone Notation = iota
	NotationHex
	NotationOklab
	NotationOKLCH
)

func (n Notation) String() string {
	switch n {
	case NotationHex:
		return "hex"
	case NotationOklab:
		return "oklab"
	case NotationOKLCH:
		return "oklch"
	}
	return "none"
}
