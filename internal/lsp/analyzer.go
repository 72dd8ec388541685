package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/okhue/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	diagError   = protocol.DiagnosticSeverityError
	diagWarning = protocol.DiagnosticSeverityWarning
)

// Analysis holds everything produced by analyzing a palette file.
type Analysis struct {
	Diagnostics []protocol.Diagnostic
	Palette     palette.Tree
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range  protocol.Range
	Swatch palette.Swatch
	IsRef  bool // palette reference rather than a literal
}

// hclPosToLSP converts an HCL position to an LSP position. HCL positions are
// 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses palette content from memory and produces diagnostics and
// color locations. It collects all errors rather than stopping at the first,
// so a half-edited file still reports everything that can be resolved.
func Analyze(filename, content string) *Analysis {
	result := &Analysis{
		Diagnostics: []protocol.Diagnostic{},
		Palette:     make(palette.Tree),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// no semantic analysis on a broken syntax tree
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBody, themeBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			paletteBody = block.Body
		case "theme":
			themeBody = block.Body
		case "meta":
			// decoded by the loader, nothing to analyze
		default:
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q (valid: meta, palette, theme)", block.Type))
		}
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	// Palette entries resolve in source order against the entries above them.
	result.analyzePaletteBody(paletteBody, result.Palette, "palette")

	if themeBody != nil {
		ctx := palette.EvalContext(result.Palette)
		result.analyzeColorBlock(themeBody, ctx, "theme")
	}

	return result
}

func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := diagError
	if d.Severity == hcl.DiagWarning {
		sev = diagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr("okhue"),
	}
	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}
	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}
	return diag
}

func (a *Analysis) addError(rng hcl.Range, msg string) {
	a.Diagnostics = append(a.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &diagError,
		Source:   strPtr("okhue"),
		Message:  msg,
	})
}

func (a *Analysis) addWarning(rng hcl.Range, msg string) {
	a.Diagnostics = append(a.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &diagWarning,
		Source:   strPtr("okhue"),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
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

// analyzePaletteBody walks a palette body, resolving entries in source order
// and collecting diagnostics and color locations. node receives the resolved
// swatches so the growing tree doubles as the eval context for later entries.
func (a *Analysis) analyzePaletteBody(body *hclsyntax.Body, node palette.Tree, prefix string) {
	for _, item := range sourceOrder(body) {
		if item.block != nil {
			sub := make(palette.Tree)
			node[item.block.Type] = sub
			a.analyzePaletteBody(item.block.Body, sub, prefix+"."+item.block.Type)
			continue
		}

		name := prefix + "." + item.attr.Name
		ctx := palette.EvalContext(a.Palette)
		val, diags := item.attr.Expr.Value(ctx)
		if diags.HasErrors() {
			a.addError(item.attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
			continue
		}

		sw, err := palette.FromValue(val)
		if err != nil {
			a.addError(item.attr.SrcRange, fmt.Sprintf("%s: %s", name, err.Error()))
			continue
		}

		a.Colors = append(a.Colors, ColorLocation{
			Range:  hclRangeToLSP(item.attr.Expr.Range()),
			Swatch: sw,
			IsRef:  isReferenceExpr(item.attr.Expr),
		})
		node[item.attr.Name] = sw
	}
}

// analyzeColorBlock walks a flat color block, collecting diagnostics and
// color locations.
func (a *Analysis) analyzeColorBlock(body *hclsyntax.Body, ctx *hcl.EvalContext, blockName string) {
	for _, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			a.addError(attr.SrcRange, fmt.Sprintf("%s.%s: %s", blockName, attr.Name, diags.Error()))
			continue
		}

		sw, err := palette.FromValue(val)
		if err != nil {
			a.addError(attr.SrcRange, fmt.Sprintf("%s.%s: %s", blockName, attr.Name, err.Error()))
			continue
		}

		a.Colors = append(a.Colors, ColorLocation{
			Range:  hclRangeToLSP(attr.Expr.Range()),
			Swatch: sw,
			IsRef:  isReferenceExpr(attr.Expr),
		})
	}

	for _, block := range body.Blocks {
		a.addWarning(block.DefRange(), fmt.Sprintf("%s does not allow nested blocks", blockName))
	}
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.base) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
