package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsvensson/okhue"
)

const testSource = `
meta {
  name   = "Test Palette"
  author = "Tester"
}

palette {
  base   = "#191724"
  love   = "oklch(70% 0.12 10)"
  text   = "oklab(91% -0.005 -0.02)"
  subtle = lighten(palette.base, 10)

  highlight {
    low  = "#21202e"
    high = "#524f67"
  }
}

theme {
  background = palette.base
  cursor     = palette.love
  accent     = oklch(60, 0.15, 145)
  bright     = saturate(okhsl(145, 60, 50), 20)
}
`

func parseTestPalette(t *testing.T) *Palette {
	t.Helper()
	p, err := Parse("test.okpal", []byte(testSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return p
}

func TestParse_Meta(t *testing.T) {
	p := parseTestPalette(t)
	if p.Meta.Name != "Test Palette" {
		t.Errorf("name = %q, want %q", p.Meta.Name, "Test Palette")
	}
	if p.Meta.Author != "Tester" {
		t.Errorf("author = %q, want %q", p.Meta.Author, "Tester")
	}
}

func TestParse_Notations(t *testing.T) {
	p := parseTestPalette(t)

	base, err := p.Colors.Lookup([]string{"base"})
	if err != nil {
		t.Fatalf("Lookup(base): %v", err)
	}
	if base.Hex() != "#191724" {
		t.Errorf("base = %s, want #191724", base.Hex())
	}
	if base.Notation != okhue.NotationHex {
		t.Errorf("base notation = %v, want hex", base.Notation)
	}

	love, err := p.Colors.Lookup([]string{"love"})
	if err != nil {
		t.Fatalf("Lookup(love): %v", err)
	}
	if love.Notation != okhue.NotationOKLCH {
		t.Errorf("love notation = %v, want oklch", love.Notation)
	}
	if love.R <= love.G || love.R <= love.B {
		t.Errorf("love = %s, want a reddish color", love.Hex())
	}

	text, err := p.Colors.Lookup([]string{"text"})
	if err != nil {
		t.Fatalf("Lookup(text): %v", err)
	}
	if text.Notation != okhue.NotationOklab {
		t.Errorf("text notation = %v, want oklab", text.Notation)
	}
}

func TestParse_NestedGroups(t *testing.T) {
	p := parseTestPalette(t)
	low, err := p.Colors.Lookup([]string{"highlight", "low"})
	if err != nil {
		t.Fatalf("Lookup(highlight.low): %v", err)
	}
	if low.Hex() != "#21202E" {
		t.Errorf("highlight.low = %s, want #21202E", low.Hex())
	}

	if _, err := p.Colors.Lookup([]string{"highlight"}); err == nil {
		t.Error("expected error looking up a group as a color")
	}
	if _, err := p.Colors.Lookup([]string{"missing"}); err == nil {
		t.Error("expected error for unknown path")
	}
}

func TestParse_ThemeReferences(t *testing.T) {
	p := parseTestPalette(t)

	bg, ok := p.Theme["background"]
	if !ok {
		t.Fatal("theme.background missing")
	}
	if bg.Hex() != "#191724" {
		t.Errorf("theme.background = %s, want #191724", bg.Hex())
	}

	accent, ok := p.Theme["accent"]
	if !ok {
		t.Fatal("theme.accent missing")
	}
	if accent.G <= accent.R || accent.G <= accent.B {
		t.Errorf("theme.accent = %s, want a greenish color", accent.Hex())
	}
}

func TestParse_LightenFunction(t *testing.T) {
	p := parseTestPalette(t)
	base, _ := p.Colors.Lookup([]string{"base"})
	subtle, err := p.Colors.Lookup([]string{"subtle"})
	if err != nil {
		t.Fatalf("Lookup(subtle): %v", err)
	}

	_, _, lBase := okhue.RGBToOKHSL(base.R, base.G, base.B, okhue.SRGB)
	_, _, lSubtle := okhue.RGBToOKHSL(subtle.R, subtle.G, subtle.B, okhue.SRGB)
	if lSubtle <= lBase {
		t.Errorf("lighten did not raise lightness: %v -> %v", lBase, lSubtle)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"no palette block", `meta { name = "x" }`, "no palette block"},
		{"bad color", `palette { base = "#19" }`, "palette.base"},
		{"unknown reference", `palette { a = palette.nope }`, "palette.a"},
		{"forward reference", "palette {\n  a = palette.b\n  b = \"#000000\"\n}", "palette.a"},
		{"broken syntax", `palette { base = `, "parsing HCL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.okpal", []byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.okpal")
	if err := os.WriteFile(path, []byte(testSource), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Meta.Name != "Test Palette" {
		t.Errorf("name = %q", p.Meta.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.okpal")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSwatchString(t *testing.T) {
	sw := Swatch{R: 1, G: 0, B: 0, Notation: okhue.NotationHex}
	if got := sw.String(); got != "#FF0000" {
		t.Errorf("hex swatch = %q", got)
	}

	sw.Notation = okhue.NotationOKLCH
	if got := sw.String(); !strings.HasPrefix(got, "oklch(") {
		t.Errorf("oklch swatch = %q", got)
	}

	sw.Notation = okhue.NotationOklab
	if got := sw.String(); !strings.HasPrefix(got, "oklab(") {
		t.Errorf("oklab swatch = %q", got)
	}
}
