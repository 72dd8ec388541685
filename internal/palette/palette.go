// Package palette loads .okpal palette files: HCL documents whose colors may
// be written as hex, oklab() or oklch() strings, reference earlier palette
// entries, and call the color functions registered in the eval context.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/okhue"
	"github.com/zclconf/go-cty/cty"
)

// Swatch is a resolved palette color: sRGB-encoded components in [0,1] plus
// the notation the entry was written in.
type Swatch struct {
	R, G, B  float64
	Notation okhue.Notation
}

// FromRGB builds a Swatch from encoded components.
func FromRGB(r, g, b float64) Swatch {
	return Swatch{R: r, G: g, B: b, Notation: okhue.NotationHex}
}

// Hex returns the swatch as "#RRGGBB".
func (s Swatch) Hex() string {
	return okhue.FormatHex(s.R, s.G, s.B, okhue.SRGB)
}

// Oklab returns the swatch as a CSS oklab() string.
func (s Swatch) Oklab() string {
	return okhue.FormatOklab(s.R, s.G, s.B, okhue.SRGB)
}

// OKLCH returns the swatch as a CSS oklch() string.
func (s Swatch) OKLCH() string {
	return okhue.FormatOKLCH(s.R, s.G, s.B, okhue.SRGB)
}

// Int8 returns the swatch as 8-bit channels.
func (s Swatch) Int8() (uint8, uint8, uint8) {
	return okhue.RGBToInt8(s.R, s.G, s.B, okhue.SRGB)
}

// String renders the swatch in its source notation.
func (s Swatch) String() string {
	switch s.Notation {
	case okhue.NotationOklab:
		return s.Oklab()
	case okhue.NotationOKLCH:
		return s.OKLCH()
	default:
		return s.Hex()
	}
}

// Tree is a nested namespace of palette entries. Values are either Swatch or
// Tree.
type Tree map[string]any

// Lookup resolves dot-path segments to a Swatch.
func (t Tree) Lookup(path []string) (Swatch, error) {
	if len(path) == 0 {
		return Swatch{}, fmt.Errorf("empty palette path")
	}
	current := t
	for i, part := range path {
		val, ok := current[part]
		if !ok {
			return Swatch{}, fmt.Errorf("palette path not found: %q does not exist", part)
		}
		if i == len(path)-1 {
			sw, ok := val.(Swatch)
			if !ok {
				return Swatch{}, fmt.Errorf("palette path %q is a group, not a color", part)
			}
			return sw, nil
		}
		sub, ok := val.(Tree)
		if !ok {
			return Swatch{}, fmt.Errorf("palette path not found: %q is a color, cannot traverse further", part)
		}
		current = sub
	}
	return Swatch{}, fmt.Errorf("empty palette path")
}

// Meta holds palette metadata.
type Meta struct {
	Name       string `hcl:"name,optional"`
	Author     string `hcl:"author,optional"`
	Appearance string `hcl:"appearance,optional"`
	URL        string `hcl:"url,optional"`
}

// Palette is a fully-resolved .okpal document.
type Palette struct {
	Meta   Meta
	Colors Tree
	Theme  map[string]Swatch
}

// paletteBlock wraps the palette block for gohcl decoding.
type paletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// rawConfig captures the palette block first; it needs no eval context of its
// own beyond the entries already resolved.
type rawConfig struct {
	Palette *paletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// colorBlock wraps a block of arbitrary color attributes.
type colorBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// resolvedConfig decodes the blocks that reference palette entries.
type resolvedConfig struct {
	Meta   *Meta       `hcl:"meta,block"`
	Theme  *colorBlock `hcl:"theme,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// Load reads and parses a .okpal file.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(path, src)
}

// Parse parses .okpal source. The palette block is resolved first, in source
// order so later entries can reference earlier ones; the theme block is then
// decoded against the completed palette.
func Parse(filename string, src []byte) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw rawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}
	if raw.Palette == nil {
		return nil, fmt.Errorf("no palette block found")
	}
	paletteBody, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
	}

	colors := make(Tree)
	if err := resolvePaletteBody(paletteBody, colors, colors); err != nil {
		return nil, fmt.Errorf("resolving palette: %w", err)
	}

	ctx := EvalContext(colors)
	var resolved resolvedConfig
	if diags := gohcl.DecodeBody(file.Body, ctx, &resolved); diags.HasErrors() {
		return nil, fmt.Errorf("decoding: %s", diags.Error())
	}

	theme := make(map[string]Swatch)
	if resolved.Theme != nil {
		var err error
		theme, err = decodeSwatchMap(resolved.Theme.Entries, ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving theme: %w", err)
		}
	}

	meta := Meta{}
	if resolved.Meta != nil {
		meta = *resolved.Meta
	}

	return &Palette{Meta: meta, Colors: colors, Theme: theme}, nil
}

// bodyItem is an attribute or block positioned in source order.
type bodyItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func sourceOrder(body *hclsyntax.Body) []bodyItem {
	var items []bodyItem
	for _, attr := range body.Attributes {
		items = append(items, bodyItem{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, bodyItem{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].pos.Line != items[j].pos.Line {
			return items[i].pos.Line < items[j].pos.Line
		}
		return items[i].pos.Column < items[j].pos.Column
	})
	return items
}

// resolvePaletteBody evaluates palette entries in source order. The eval
// context is rebuilt from the root tree before each entry, which is what lets
// an entry reference any entry above it.
func resolvePaletteBody(body *hclsyntax.Body, root, node Tree) error {
	for _, item := range sourceOrder(body) {
		if item.block != nil {
			sub := make(Tree)
			node[item.block.Type] = sub
			if err := resolvePaletteBody(item.block.Body, root, sub); err != nil {
				return err
			}
			continue
		}

		ctx := EvalContext(root)
		val, diags := item.attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating palette.%s: %s", item.attr.Name, diags.Error())
		}
		sw, err := FromValue(val)
		if err != nil {
			return fmt.Errorf("palette.%s: %w", item.attr.Name, err)
		}
		node[item.attr.Name] = sw
	}
	return nil
}

// FromValue interprets a cty string in any supported notation.
func FromValue(val cty.Value) (Swatch, error) {
	if val.Type() != cty.String {
		return Swatch{}, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
	}
	r, g, b, n, err := okhue.ParseAny(val.AsString(), okhue.SRGB, okhue.NotationNone)
	if err != nil {
		return Swatch{}, err
	}
	return Swatch{R: r, G: g, B: b, Notation: n}, nil
}

// decodeSwatchMap decodes a body of arbitrary color attributes into a swatch
// map.
func decodeSwatchMap(body hcl.Body, ctx *hcl.EvalContext) (map[string]Swatch, error) {
	result := make(map[string]Swatch)
	if body == nil {
		return result, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("getting attributes: %s", diags.Error())
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s: %s", name, diags.Error())
		}
		sw, err := FromValue(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		result[name] = sw
	}
	return result, nil
}

// treeToCty converts a palette tree to a cty object. Swatches become their
// hex form so references compose with the color functions.
func treeToCty(tree Tree) cty.Value {
	if len(tree) == 0 {
		return cty.EmptyObjectVal
	}
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make(map[string]cty.Value, len(tree))
	for _, k := range keys {
		switch v := tree[k].(type) {
		case Swatch:
			vals[k] = cty.StringVal(v.Hex())
		case Tree:
			vals[k] = treeToCty(v)
		}
	}
	return cty.ObjectVal(vals)
}
