package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harish8848/MyPortfolio/internal/progress"
	"github.com/Harish8848/MyPortfolio/internal/site"
	"github.com/Harish8848/MyPortfolio/internal/theme"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static portfolio site",
	Long:  `Renders the portfolio content into index.html, style.css and script.js and copies the image assets next to them.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("content", "", "content YAML file (overrides content_file)")
	buildCmd.Flags().Bool("dark", false, "render with the dark theme initially")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	contentFile, _ := cmd.Flags().GetString("content")
	c, err := loadContent(cfg, contentFile)
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if o, _ := cmd.Flags().GetString("output"); o != "" {
		outputDir = o
	}
	isDark := cfg.IsDark()
	if cmd.Flags().Changed("dark") {
		isDark, _ = cmd.Flags().GetBool("dark")
	}

	g := site.NewGenerator(outputDir, theme.New(isDark))
	g.AssetsDir = cfg.AssetsDir
	g.AssetPatterns = cfg.Assets
	g.AssetExcludes = cfg.AssetsExclude
	g.SiteURL = cfg.SiteURL
	g.Highlight = cfg.Highlight
	g.ScrollSamples = cfg.Scroll.Samples
	g.Reporter = progress.NewReporter()
	g.Logger = zap.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := g.Generate(ctx, c)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d page, %d assets, %s theme)\n",
		outputDir, res.Pages, res.Assets, theme.New(isDark).Name())
	return nil
}
