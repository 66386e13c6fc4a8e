package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/config"
	"github.com/metravel/bookgen/internal/export"
	"github.com/metravel/bookgen/internal/layout"
	"github.com/metravel/bookgen/internal/pages"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build a book from a travels JSON file",
	Long: `Read travels and settings from a JSON file (or stdin with -) and
write the assembled book as a standalone HTML document.

The input file carries the same payload as POST /api/v1/export:

  {"travels": [...], "settings": {"title": "...", "template": "sepia"}}`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("input", "i", "", "Input JSON file with travels and settings (- for stdin)")
	exportCmd.Flags().StringP("output", "o", "book.html", "Output HTML file")
	exportCmd.Flags().String("theme", "", "Theme id, overrides the input settings")
	exportCmd.Flags().String("layout", "", "Layout preset id")
	exportCmd.Flags().String("layout-file", "", "Custom layout YAML file, overrides --layout")
	exportCmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	_ = exportCmd.MarkFlagRequired("input")
}

// exportInput mirrors the web API request payload.
type exportInput struct {
	Travels  []book.TravelForBook `json:"travels"`
	Settings book.BookSettings    `json:"settings"`
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	themeFlag, _ := cmd.Flags().GetString("theme")
	layoutFlag, _ := cmd.Flags().GetString("layout")
	layoutFile, _ := cmd.Flags().GetString("layout-file")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	cfg := config.Load()

	input, err := readExportInput(inputPath)
	if err != nil {
		return err
	}
	if len(input.Travels) == 0 {
		return fmt.Errorf("input contains no travels")
	}

	if themeFlag != "" {
		input.Settings.Template = themeFlag
	}
	if input.Settings.Template == "" {
		input.Settings.Template = cfg.Export.Theme
	}
	if input.Settings.GalleryLayout == "" {
		input.Settings.GalleryLayout = cfg.Export.GalleryLayout
	}

	l, err := resolveLayout(cfg, layoutFlag, layoutFile)
	if err != nil {
		return err
	}

	opts := export.OptionsFromConfig(cfg)
	opts = append(opts, export.WithLayout(l))
	if quote := cfg.CoverQuote(input.Settings.Title); quote.Text != "" {
		opts = append(opts, export.WithQuote(pages.Quote{Text: quote.Text, Author: quote.Author}))
	}
	if !noProgress {
		var bar *progressbar.ProgressBar
		opts = append(opts, export.WithProgress(func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription("Generating pages"),
					progressbar.OptionShowCount(),
					progressbar.OptionShowIts(),
					progressbar.OptionSetItsString("pages"),
					progressbar.OptionShowElapsedTimeOnFinish(),
					progressbar.OptionSetPredictTime(true),
					progressbar.OptionFullWidth(),
				)
			}
			_ = bar.Set(done)
		}))
	}

	doc, err := export.New(opts...).Export(cmd.Context(), input.Travels, input.Settings)
	if err != nil {
		return fmt.Errorf("exporting book: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(doc.HTML), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Printf("\nWrote %s: %d pages, theme %s\n", outputPath, doc.PageCount, doc.Theme)
	return nil
}

func readExportInput(path string) (*exportInput, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var input exportInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parsing input JSON: %w", err)
	}
	return &input, nil
}

// resolveLayout picks the layout: an explicit YAML file wins, then the
// --layout flag, then the configured default.
func resolveLayout(cfg *config.Config, layoutFlag, layoutFile string) (layout.Layout, error) {
	if layoutFile != "" {
		data, err := os.ReadFile(layoutFile)
		if err != nil {
			return layout.Layout{}, fmt.Errorf("reading layout file: %w", err)
		}
		var l layout.Layout
		if err := yaml.Unmarshal(data, &l); err != nil {
			return layout.Layout{}, fmt.Errorf("parsing layout file: %w", err)
		}
		if err := l.Validate(); err != nil {
			return layout.Layout{}, fmt.Errorf("invalid layout %s: %w", layoutFile, err)
		}
		return l, nil
	}

	id := layoutFlag
	if id == "" {
		id = cfg.Export.Layout
	}
	l, ok := layout.DefaultLayout(id)
	if !ok {
		return layout.Layout{}, fmt.Errorf("unknown layout preset: %s", id)
	}
	return l, nil
}
