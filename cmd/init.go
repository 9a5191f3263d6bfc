package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Harish8848/MyPortfolio/internal/config"
	"github.com/Harish8848/MyPortfolio/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize portfolio configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure the site and generates a .portfolio.yml file.
With --content, also writes the built-in portfolio content as an editable YAML file.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("content", "", "also write a starter content file at this path")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.RunWizard(cfgFile)
	if err != nil {
		return err
	}

	contentPath, _ := cmd.Flags().GetString("content")
	if contentPath == "" {
		return nil
	}
	if _, err := os.Stat(contentPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first to regenerate", contentPath)
	}
	if err := content.Default().Save(contentPath); err != nil {
		return err
	}

	cfg.ContentFile = contentPath
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Starter content written to %s\n", contentPath)
	return nil
}
