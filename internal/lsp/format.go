package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/okhue/internal/format"
)

func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	formatted := format.Source(doc.Text)
	if formatted == doc.Text {
		return nil, nil
	}

	// Replace the whole document rather than computing a diff.
	lines := strings.Split(doc.Text, "\n")
	lastLine := len(lines) - 1
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(lastLine), Character: uint32(len(lines[lastLine]))},
		},
		NewText: formatted,
	}}, nil
}
