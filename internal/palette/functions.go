package palette

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/okhue"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// EvalContext exposes the resolved palette entries under "palette" plus
// the color functions.
func EvalContext(colors Tree) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": treeToCty(colors),
		},
		Functions: map[string]function.Function{
			"oklch":    makeOKLCHFunc(),
			"okhsl":    makeOKHSLFunc(),
			"lighten":  makeLightenFunc(),
			"saturate": makeSaturateFunc(),
		},
	}
}

func numArg(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

// makeOKLCHFunc builds a color from OKLCH components.
// Usage: oklch(62.8, 0.2576, 29.23) with lightness in percent.
func makeOKLCHFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from OKLCH lightness (percent), chroma and hue (degrees)",
		Params: []function.Parameter{
			{Name: "lightness", Type: cty.Number},
			{Name: "chroma", Type: cty.Number},
			{Name: "hue", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			r, g, b := okhue.OKLCHToRGB(numArg(args[0]), numArg(args[1]), numArg(args[2]), okhue.Limit{}, okhue.SRGB)
			return cty.StringVal(okhue.FormatHex(r, g, b, okhue.SRGB)), nil
		},
	})
}

// makeOKHSLFunc builds a color from OKHSL components.
// Usage: okhsl(29.23, 100, 56.8) with saturation and lightness in percent.
func makeOKHSLFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from OKHSL hue (degrees), saturation and lightness (percent)",
		Params: []function.Parameter{
			{Name: "hue", Type: cty.Number},
			{Name: "saturation", Type: cty.Number},
			{Name: "lightness", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			r, g, b := okhue.OKHSLToRGB(numArg(args[0]), numArg(args[1]), numArg(args[2]), okhue.SRGB)
			return cty.StringVal(okhue.FormatHex(r, g, b, okhue.SRGB)), nil
		},
	})
}

// adjustOKHSL parses a color in any notation, applies f to its OKHSL
// components and renders the result as hex.
func adjustOKHSL(colorStr string, f func(h, s, l float64) (float64, float64, float64)) (cty.Value, error) {
	r, g, b, _, err := okhue.ParseAny(colorStr, okhue.SRGB, okhue.NotationNone)
	if err != nil {
		return cty.NilVal, err
	}
	h, s, l := okhue.RGBToOKHSL(r, g, b, okhue.SRGB)
	h, s, l = f(h, s, l)
	r, g, b = okhue.OKHSLToRGB(h, s, l, okhue.SRGB)
	return cty.StringVal(okhue.FormatHex(r, g, b, okhue.SRGB)), nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// makeLightenFunc steps a color's OKHSL lightness, so equal steps read as
// perceptually even. Negative amounts darken.
// Usage: lighten(palette.base, 10) or lighten("#403040", -15)
func makeLightenFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Adjusts a color's OKHSL lightness by the given percentage points",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			amount := numArg(args[1])
			return adjustOKHSL(args[0].AsString(), func(h, s, l float64) (float64, float64, float64) {
				return h, s, clampPercent(l + amount)
			})
		},
	})
}

// makeSaturateFunc steps a color's OKHSL saturation. Negative amounts mute.
// Usage: saturate(palette.accent, 20)
func makeSaturateFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Adjusts a color's OKHSL saturation by the given percentage points",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			amount := numArg(args[1])
			return adjustOKHSL(args[0].AsString(), func(h, s, l float64) (float64, float64, float64) {
				return h, clampPercent(s + amount), l
			})
		},
	})
}
