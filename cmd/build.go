package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uchiverify/site/internal/progress"
	"github.com/uchiverify/site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site as static files",
	Long: `Writes the landing page, one pre-rendered page per FAQ article and command,
a search index and the assets. The static site has no live session: the
docs browser and search run in the page and the animations are skipped.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	store, err := loadContent(cfg)
	if err != nil {
		return err
	}
	views, err := newViews(cfg)
	if err != nil {
		return err
	}

	generator := site.NewGenerator(store, views, outputDir)
	generator.Reporter = progress.NewReporter()
	generator.Logger = log
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site built: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
