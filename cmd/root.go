package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harish8848/MyPortfolio/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Static generator for a personal developer portfolio",
	Long: `Portfolio renders a single-page developer portfolio (hero, about,
skills, projects and contact sections) into static HTML, CSS and
JavaScript, with a light/dark theme toggle, a typewriter hero and
scroll-linked parallax.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
