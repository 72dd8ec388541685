package format

import (
	"strings"
	"testing"
)

func TestSource(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `meta{name="Test"author="Author"}`,
			expected: `meta { name = "Test" author = "Author" }`,
		},
		{
			name:     "palette with nested blocks",
			input:    `palette{base="#191724"highlight{low="#21202e"}}`,
			expected: `palette { base = "#191724" highlight { low = "#21202e" } }`,
		},
		{
			name: "already formatted stays same",
			input: `meta {
  name = "Test"
}
`,
			expected: `meta {
  name = "Test"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `meta   {   name   =   "Test"   }`,
			expected: `meta { name = "Test" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "meta { name = \"Test\" }\n\n\n\npalette { base = \"#191724\" }",
			expected: "meta { name = \"Test\" }\n\npalette { base = \"#191724\" }",
		},
		{
			name:     "single blank line preserved",
			input:    "meta { name = \"Test\" }\n\npalette { base = \"#191724\" }",
			expected: "meta { name = \"Test\" }\n\npalette { base = \"#191724\" }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "palette {\n\n  base = \"#191724\"\n}",
			expected: "palette {\n  base = \"#191724\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "palette {\n  base = \"#191724\"\n\n}",
			expected: "palette {\n  base = \"#191724\"\n}",
		},
		{
			name:     "nested block blank lines removed",
			input:    "palette {\n\n  highlight {\n\n    low = \"#21202e\"\n\n  }\n\n}",
			expected: "palette {\n  highlight {\n    low = \"#21202e\"\n  }\n}",
		},
		{
			name: "notation strings untouched",
			input: `palette {
  love = "oklch(70% 0.12 10)"
  text = "oklab(91% -0.005 -0.02)"
}
`,
			expected: `palette {
  love = "oklch(70% 0.12 10)"
  text = "oklab(91% -0.005 -0.02)"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strings.TrimSuffix(Source(tt.input), "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")
			if result != expected {
				t.Errorf("Source() = %q, want %q", result, expected)
			}
		})
	}
}

func TestSource_Idempotent(t *testing.T) {
	input := "palette {\n\n  base = \"#191724\"\n\n\n  love = \"#eb6f92\"\n}\n"
	once := Source(input)
	twice := Source(once)
	if once != twice {
		t.Errorf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestSource_IncompleteInput(t *testing.T) {
	// Partial documents pass through without panicking; the formatter runs on
	// every keystroke in the editor.
	got := Source(`meta { name = "Test"`)
	if !strings.Contains(got, "name") {
		t.Errorf("incomplete input mangled: %q", got)
	}
}
