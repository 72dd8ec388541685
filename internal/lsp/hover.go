package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/okhue"
)

// posInRange reports whether pos falls inside rng, inclusive of the start and
// exclusive of the end.
func posInRange(pos protocol.Position, rng protocol.Range) bool {
	if pos.Line < rng.Start.Line || pos.Line > rng.End.Line {
		return false
	}
	if pos.Line == rng.Start.Line && pos.Character < rng.Start.Character {
		return false
	}
	if pos.Line == rng.End.Line && pos.Character >= rng.End.Character {
		return false
	}
	return true
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)
	doc, ok := s.docs.Get(uri)
	if !ok || doc.Analysis == nil {
		return nil, nil
	}

	for _, loc := range doc.Analysis.Colors {
		if !posInRange(params.Position, loc.Range) {
			continue
		}

		sw := loc.Swatch
		cr, cg, cb := sw.Int8()
		hh, hs, hl := okhue.RGBToOKHSL(sw.R, sw.G, sw.B, okhue.SRGB)

		source := extractText(doc.Text, loc.Range)
		if loc.IsRef {
			source = "**" + source + "**"
		}

		markdown := fmt.Sprintf(
			"%s\n\n- `%s`\n- `rgb(%d, %d, %d)`\n- `%s`\n- `%s`\n- okhsl: `%.2f° %.2f%% %.2f%%`",
			source, sw.Hex(), cr, cg, cb, sw.Oklab(), sw.OKLCH(), hh, hs, hl,
		)

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: markdown,
			},
			Range: &loc.Range,
		}, nil
	}

	return nil, nil
}
