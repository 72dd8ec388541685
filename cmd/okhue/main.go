package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsvensson/okhue"
	"github.com/jsvensson/okhue/internal/engine"
	"github.com/jsvensson/okhue/internal/format"
	"github.com/jsvensson/okhue/internal/palette"
)

var (
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "okhue",
	Short:   "Convert colors between models and generate application themes from a single palette file",
	Version: version,
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print a color in every supported model",
	Long:  "Parse a color written as #RRGGBB, oklab() or oklch() and print it in every supported model.",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate theme files from templates",
	RunE:  runGenerate,
}

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Display a palette file's colors in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .okpal files",
	Long:  "Format one or more .okpal files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	generateCmd.Flags().StringVar(&flagPalette, "palette", "palette.okpal", "path to palette file")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	r, g, b, _, err := okhue.ParseAny(args[0], okhue.SRGB, okhue.NotationNone)
	if err != nil {
		return fmt.Errorf("parsing color: %w", err)
	}

	out := cmd.OutOrStdout()
	ri, gi, bi := okhue.RGBToInt8(r, g, b, okhue.SRGB)

	fmt.Fprintf(out, "hex    %s\n", okhue.FormatHex(r, g, b, okhue.SRGB))
	fmt.Fprintf(out, "rgb    rgb(%d, %d, %d)\n", ri, gi, bi)
	fmt.Fprintf(out, "oklab  %s\n", okhue.FormatOklab(r, g, b, okhue.SRGB))
	fmt.Fprintf(out, "oklch  %s\n", okhue.FormatOKLCH(r, g, b, okhue.SRGB))

	h, s, v := okhue.RGBToHSV(r, g, b, okhue.SRGB)
	fmt.Fprintf(out, "hsv    %.2f° %.2f%% %.2f%%\n", h, s, v)
	h, s, l := okhue.RGBToHSL(r, g, b, okhue.SRGB)
	fmt.Fprintf(out, "hsl    %.2f° %.2f%% %.2f%%\n", h, s, l)
	h, c, y, u := okhue.RGBToHCY(r, g, b, 0, okhue.SRGB, false)
	fmt.Fprintf(out, "hcy    %.2f° %.2f%% %.2f%% (u %.2f%%)\n", h, c, y, u)
	h, c, l, u = okhue.RGBToOKHCL(r, g, b, 0, okhue.SRGB)
	fmt.Fprintf(out, "okhcl  %.2f° %.2f%% %.2f%% (u %.2f%%)\n", h, c, l, u)
	h, s, v = okhue.RGBToOKHSV(r, g, b, okhue.SRGB)
	fmt.Fprintf(out, "okhsv  %.2f° %.2f%% %.2f%%\n", h, s, v)
	h, s, l = okhue.RGBToOKHSL(r, g, b, okhue.SRGB)
	fmt.Fprintf(out, "okhsl  %.2f° %.2f%% %.2f%%\n", h, s, l)

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(flagPalette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
	}

	if err := e.Run(p); err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated theme files in %s\n", flagOut)
	return nil
}

var swatchBlock = lipgloss.NewStyle().Width(6)

func runShow(cmd *cobra.Command, args []string) error {
	path := "palette.okpal"
	if len(args) > 0 {
		path = args[0]
	}

	p, err := palette.Load(path)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	out := cmd.OutOrStdout()
	if p.Meta.Name != "" {
		title := lipgloss.NewStyle().Bold(true).Render(p.Meta.Name)
		fmt.Fprintln(out, title)
		fmt.Fprintln(out)
	}

	showTree(out, "", p.Colors)

	if len(p.Theme) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, lipgloss.NewStyle().Bold(true).Render("theme"))
		names := make([]string, 0, len(p.Theme))
		for name := range p.Theme {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			showSwatch(out, name, p.Theme[name])
		}
	}

	return nil
}

// showTree prints a palette tree depth-first with dotted names, colors before
// nested groups.
func showTree(out io.Writer, prefix string, tree palette.Tree) {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if sw, ok := tree[k].(palette.Swatch); ok {
			showSwatch(out, prefix+k, sw)
		}
	}
	for _, k := range keys {
		if sub, ok := tree[k].(palette.Tree); ok {
			showTree(out, prefix+k+".", sub)
		}
	}
}

func showSwatch(out io.Writer, name string, sw palette.Swatch) {
	block := swatchBlock.Background(lipgloss.Color(sw.Hex())).Render("")
	fmt.Fprintf(out, "%s  %-20s %-9s %s\n", block, name, sw.Hex(), sw.OKLCH())
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := format.Source(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
