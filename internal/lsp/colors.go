package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/okhue/internal/palette"
)

// swatchToLSP converts a swatch to the protocol's color type. LSP colors are
// sRGB-encoded floats in [0,1], which is what swatches already hold.
func swatchToLSP(sw palette.Swatch) protocol.Color {
	return protocol.Color{
		Red:   float32(sw.R),
		Green: float32(sw.G),
		Blue:  float32(sw.B),
		Alpha: 1.0,
	}
}

func lspToSwatch(c protocol.Color) palette.Swatch {
	return palette.FromRGB(float64(c.Red), float64(c.Green), float64(c.Blue))
}

func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	analysis := s.getAnalysis(string(params.TextDocument.URI))
	if analysis == nil {
		return nil, nil
	}

	colors := make([]protocol.ColorInformation, 0, len(analysis.Colors))
	for _, loc := range analysis.Colors {
		colors = append(colors, protocol.ColorInformation{
			Range: loc.Range,
			Color: swatchToLSP(loc.Swatch),
		})
	}
	return colors, nil
}

// textDocumentColorPresentation offers hex, oklab() and oklch() renderings of
// the picked color. Palette references are left alone: rewriting a reference
// into a literal would silently detach it from its source entry.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	doc, ok := s.docs.Get(uri)
	if !ok || doc.Analysis == nil {
		return nil, nil
	}

	for _, loc := range doc.Analysis.Colors {
		if loc.Range != params.Range {
			continue
		}
		if loc.IsRef {
			return nil, nil
		}

		sw := lspToSwatch(params.Color)
		original := extractText(doc.Text, params.Range)
		quoted := strings.HasPrefix(original, `"`)

		presentations := make([]protocol.ColorPresentation, 0, 3)
		for _, label := range []string{sw.Hex(), sw.Oklab(), sw.OKLCH()} {
			newText := label
			if quoted {
				newText = `"` + label + `"`
			}
			presentations = append(presentations, protocol.ColorPresentation{
				Label: label,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: newText,
				},
			})
		}
		return presentations, nil
	}

	return nil, nil
}

// extractText returns the document text covered by an LSP range.
func extractText(text string, rng protocol.Range) string {
	lines := strings.Split(text, "\n")
	if int(rng.Start.Line) >= len(lines) || int(rng.End.Line) >= len(lines) {
		return ""
	}

	if rng.Start.Line == rng.End.Line {
		line := lines[rng.Start.Line]
		if int(rng.Start.Character) > len(line) || int(rng.End.Character) > len(line) {
			return ""
		}
		return line[rng.Start.Character:rng.End.Character]
	}

	var sb strings.Builder
	for i := rng.Start.Line; i <= rng.End.Line; i++ {
		line := lines[i]
		switch i {
		case rng.Start.Line:
			if int(rng.Start.Character) > len(line) {
				return ""
			}
			sb.WriteString(line[rng.Start.Character:])
		case rng.End.Line:
			if int(rng.End.Character) > len(line) {
				return ""
			}
			sb.WriteString("\n")
			sb.WriteString(line[:rng.End.Character])
		default:
			sb.WriteString("\n")
			sb.WriteString(line)
		}
	}
	return sb.String()
}
