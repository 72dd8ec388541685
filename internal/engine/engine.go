// Package engine renders Go text templates against a resolved palette,
// producing application-specific theme files.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/okhue"
	"github.com/jsvensson/okhue/internal/palette"
)

// Engine loads and executes Go templates against a resolved palette.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them with
// the palette data, and writes output files.
func (e *Engine) Run(p *palette.Palette) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")
		if !e.shouldRender(baseName) {
			continue
		}
		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	if len(e.Apps) == 0 {
		return true
	}
	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    palette.Meta
	Palette palette.Tree
	Theme   map[string]palette.Swatch
	FuncMap template.FuncMap
}

func buildTemplateData(p *palette.Palette) templateData {
	return templateData{
		Meta:    p.Meta,
		Palette: p.Colors,
		Theme:   p.Theme,
		FuncMap: template.FuncMap{
			"hex": func(s palette.Swatch) string {
				return s.Hex()
			},
			"hexBare": func(s palette.Swatch) string {
				return strings.TrimPrefix(s.Hex(), "#")
			},
			"rgb": func(s palette.Swatch) string {
				r, g, b := s.Int8()
				return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
			},
			"oklab": func(s palette.Swatch) string {
				return s.Oklab()
			},
			"oklch": func(s palette.Swatch) string {
				return s.OKLCH()
			},
			"hsl": func(s palette.Swatch) string {
				h, sat, l := okhue.RGBToHSL(s.R, s.G, s.B, okhue.SRGB)
				return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h, sat, l)
			},
			"hsv": func(s palette.Swatch) string {
				h, sat, v := okhue.RGBToHSV(s.R, s.G, s.B, okhue.SRGB)
				return fmt.Sprintf("hsv(%g, %g%%, %g%%)", h, sat, v)
			},
			"palette": func(path string) (palette.Swatch, error) {
				return p.Colors.Lookup(strings.Split(path, "."))
			},
			"lighten": func(s palette.Swatch, amount float64) palette.Swatch {
				h, sat, l := okhue.RGBToOKHSL(s.R, s.G, s.B, okhue.SRGB)
				l = min(max(l+amount, 0), 100)
				r, g, b := okhue.OKHSLToRGB(h, sat, l, okhue.SRGB)
				return palette.FromRGB(r, g, b)
			},
		},
	}
}
