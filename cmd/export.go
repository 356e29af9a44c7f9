package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvidh/docread/internal/book"
	"github.com/arvidh/docread/internal/export"
	"github.com/arvidh/docread/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the book as a static HTML site",
	Long:  `Renders every chapter to a standalone HTML page with server-side syntax highlighting, plus a JSON search index and shared assets.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.BaseURL != "" {
		return fmt.Errorf("export requires a local content_dir, not a base_url")
	}

	outputDir := cfg.Export.OutputDir
	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		outputDir = dir
	}

	chapters := make([]book.Chapter, len(cfg.Book))
	for i, ch := range cfg.Book {
		chapters[i] = book.Chapter{ID: ch.ID, Title: ch.Title, File: ch.File, Keywords: ch.Keywords}
	}

	reporter := progress.NewReporter()
	reporter.Start(len(chapters))
	defer reporter.Finish()

	exp, err := export.New(export.Options{
		Title:      cfg.Title,
		ContentDir: cfg.ContentDir,
		OutputDir:  outputDir,
		Chapters:   chapters,
		Exclude:    cfg.Export.Exclude,
		OnPage: func(done, total int, chapter string) {
			reporter.Update(done, chapter)
		},
	})
	if err != nil {
		return err
	}

	n, err := exp.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, n)
	return nil
}
