// Package main provides the CLI entry point for charming.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/charming-go/internal/json"
	"github.com/ukaji3/charming-go/pkg/charming/render"
	"github.com/ukaji3/charming-go/pkg/charming/workbook"
)

var (
	configPath string
	verbose    bool
	outputDir  string
	theme      string
	workers    int
	sheets     []string
	asHTML     bool
	asDataset  bool
	seriesType string
)

var logger = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "charming",
		Short: "Build and render ECharts options",
		Long: `charming renders ECharts option documents to standalone HTML pages and
imports the native charts of Excel workbooks as ECharts options.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			render.SetLogger(logger)
			workbook.SetLogger(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with page options")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	renderCmd := &cobra.Command{
		Use:   "render [option.json...]",
		Short: "Render option documents to HTML pages",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	renderCmd.Flags().StringVar(&theme, "theme", "", "Theme name (overrides config)")
	renderCmd.Flags().IntVar(&workers, "workers", 4, "Number of pages rendered concurrently")

	importCmd := &cobra.Command{
		Use:   "import [book.xlsx]",
		Short: "Import the charts of a workbook as ECharts options",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	importCmd.Flags().StringSliceVar(&sheets, "sheet", nil, "Only import these sheets (default: all)")
	importCmd.Flags().BoolVar(&asHTML, "html", false, "Write HTML pages instead of JSON options")
	importCmd.Flags().BoolVar(&asDataset, "dataset", false, "Build one chart per sheet from its table instead of native charts")
	importCmd.Flags().StringVar(&seriesType, "type", "bar", "Series type for --dataset: bar, line, scatter, pie")
	importCmd.Flags().StringVar(&theme, "theme", "", "Theme name for --html (overrides config)")

	fmtCmd := &cobra.Command{
		Use:   "fmt [option.json]",
		Short: "Validate and pretty-print an option document",
		Args:  cobra.ExactArgs(1),
		RunE:  runFmt,
	}

	rootCmd.AddCommand(renderCmd, importCmd, fmtCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func pageOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = render.LoadConfig(configPath); err != nil {
			return opts, err
		}
	}
	if theme != "" {
		t, err := render.ParseTheme(theme)
		if err != nil {
			return opts, err
		}
		opts.Theme = t
	}
	return opts, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := pageOptions()
	if err != nil {
		return err
	}
	page, err := render.NewPage(opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return renderDocuments(page, args, outputDir, workers)
}

// renderDocuments renders each option file to <dir>/<name>.html on a pool
// of the given size. All failures are reported. Inputs that would write the
// same page are rejected before anything is rendered.
func renderDocuments(page *render.Page, inputs []string, dir string, size int) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		name := pageName(input)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both render to %s", prev, input, name)
		}
		seen[name] = input
	}

	pool, err := ants.NewPool(max(size, 1))
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, input := range inputs {
		input := input
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := renderDocument(page, input, dir); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", input, err))
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

func renderDocument(page *render.Page, input, dir string) error {
	doc, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := page.RenderDocument(&buf, doc); err != nil {
		return err
	}
	out := filepath.Join(dir, pageName(input))
	logger.WithField("output", out).Debug("writing page")
	return os.WriteFile(out, buf.Bytes(), 0644)
}

func pageName(input string) string {
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".html"
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var page *render.Page
	if asHTML {
		opts, err := pageOptions()
		if err != nil {
			return err
		}
		if page, err = render.NewPage(opts); err != nil {
			return err
		}
	}

	var (
		charts    []*workbook.ImportedChart
		importErr error
	)
	if asDataset {
		charts, importErr = importDatasets(inputPath, sheets, seriesType)
	} else {
		opts := workbook.DefaultOptions()
		opts.Sheets = sheets
		charts, importErr = workbook.ImportCharts(inputPath, opts)
	}
	if importErr != nil && len(charts) == 0 {
		return fmt.Errorf("import failed: %w", importErr)
	}
	if importErr != nil {
		logger.WithError(importErr).Warn("some charts were skipped")
	}

	for _, c := range charts {
		if err := writeImported(c, page, outputDir); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Slug(), err)
		}
	}
	logger.WithField("charts", len(charts)).Info("import done")
	return nil
}

// importDatasets builds one dataset chart per sheet that holds a table.
func importDatasets(path string, only []string, typ string) ([]*workbook.ImportedChart, error) {
	if _, err := workbook.ParseSeriesType(typ); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", workbook.ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", workbook.ErrInvalidFormat, err)
	}
	defer f.Close()

	opts := workbook.DefaultOptions()
	opts.Sheets = only
	params := workbook.DefaultTableParams()

	var (
		charts []*workbook.ImportedChart
		errs   []error
	)
	for _, sheet := range f.GetSheetList() {
		if !opts.ShouldImportSheet(sheet) {
			continue
		}
		if ranges, err := workbook.DetectTables(f, sheet, params); err == nil {
			logger.WithFields(logrus.Fields{"sheet": sheet, "ranges": ranges}).Debug("detected tables")
		}
		src, err := workbook.DatasetFromSheet(f, sheet, params)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		chart, err := workbook.ChartFromDataset(src, typ)
		if err != nil {
			errs = append(errs, workbook.NewImportError(sheet, "dataset", err))
			continue
		}
		width, height := opts.ChartSize(0, 0)
		charts = append(charts, &workbook.ImportedChart{
			Sheet:  sheet,
			Name:   "Dataset",
			Width:  width,
			Height: height,
			Chart:  chart,
		})
	}
	return charts, errors.Join(errs...)
}

func writeImported(c *workbook.ImportedChart, page *render.Page, dir string) error {
	if page == nil {
		doc, err := c.Chart.JSONIndent()
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, c.Slug()+".json"), doc, 0644)
	}

	opts := page.Options()
	opts.Width, opts.Height = c.Width, c.Height
	sized, err := render.NewPage(opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := sized.RenderChart(&buf, c.Chart); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, c.Slug()+".html"), buf.Bytes(), 0644)
}

func runFmt(cmd *cobra.Command, args []string) error {
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	out, err := formatDocument(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// formatDocument re-indents an option document without reordering keys.
func formatDocument(doc []byte) ([]byte, error) {
	if !json.Valid(doc) {
		return nil, render.ErrInvalidDocument
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
