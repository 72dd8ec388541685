// Package format normalizes .okpal source to canonical HCL style.
package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	multipleBlankLines   = regexp.MustCompile(`\n{3,}`)
	blankAfterOpenBrace  = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Source formats .okpal content: hclwrite handles indentation and attribute
// alignment, and stray blank lines around braces are collapsed. It tolerates
// partial or invalid input, so it is safe to run while the user is still
// typing.
func Source(content string) string {
	out := string(hclwrite.Format([]byte(content)))
	out = multipleBlankLines.ReplaceAllString(out, "\n\n")
	out = blankAfterOpenBrace.ReplaceAllString(out, "{\n")
	out = blankBeforeCloseBrace.ReplaceAllString(out, "\n${1}")
	return out
}
