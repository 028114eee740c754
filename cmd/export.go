package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbcberry/berrysite/internal/pages"
	"github.com/cbcberry/berrysite/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static HTML",
	Long: `Renders every page into a directory that any static host can serve.
Exported pages have no live session; the page script falls back to
tracking sections and skipping the intro on its own.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "dist", "output directory")
	exportCmd.Flags().String("base-url", "", "override the canonical origin (defaults to base_url from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	outputDir, _ := cmd.Flags().GetString("output")

	renderer, err := pages.NewRenderer(pages.DefaultCatalog(), pages.WithBaseURL(baseURL))
	if err != nil {
		return err
	}

	count, err := pages.NewExporter(renderer, outputDir, progress.NewReporter()).Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, count)
	return nil
}
