package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatting(t *testing.T) {
	s, uri := openTestDoc(t, "palette {\nbase = \"#191724\"\n}\n")

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatalf("formatting: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}

	want := "palette {\n  base = \"#191724\"\n}\n"
	if edits[0].NewText != want {
		t.Errorf("formatted = %q, want %q", edits[0].NewText, want)
	}
	if edits[0].Range.Start != (protocol.Position{Line: 0, Character: 0}) {
		t.Errorf("edit must start at document origin, got %+v", edits[0].Range.Start)
	}
}

func TestFormatting_AlreadyFormatted(t *testing.T) {
	s, uri := openTestDoc(t, "palette {\n  base = \"#191724\"\n}\n")

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatalf("formatting: %v", err)
	}
	if edits != nil {
		t.Errorf("expected no edits for formatted document, got %v", edits)
	}
}
