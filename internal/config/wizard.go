package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// assetDirCandidates are directories commonly used for site images, in the
// order they are preferred.
var assetDirCandidates = []string{"assets", "public", "static", "images"}

// detectAssetsDir returns the first existing candidate directory, or the default.
func detectAssetsDir() string {
	for _, dir := range assetDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "assets"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to configPath.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure your site.")
	fmt.Println()

	themePrompt := promptui.Select{
		Label: "Initial theme",
		Items: []string{
			"light: bright glass cards on a pale blue ramp",
			"dark:  frosted cards on a deep violet ramp",
		},
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	themes := []ThemeMode{ThemeLight, ThemeDark}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: "public",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	assetsPrompt := promptui.Prompt{
		Label:   "Assets directory (images, CV)",
		Default: detectAssetsDir(),
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	patternsPrompt := promptui.Prompt{
		Label:   "Extra asset patterns (comma-separated globs, leave blank for defaults)",
		Default: "",
	}
	patternsStr, err := patternsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	assets := append([]string{}, DefaultAssets...)
	assets = append(assets, splitAndTrim(patternsStr)...)

	urlPrompt := promptui.Prompt{
		Label:   "Public site URL (used for canonical and Open Graph tags)",
		Default: "",
		Validate: func(s string) error {
			if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
				return nil
			}
			return fmt.Errorf("must start with http:// or https://")
		},
	}
	siteURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site url: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Theme = themes[themeIdx]
	cfg.OutputDir = outputDir
	cfg.AssetsDir = assetsDir
	cfg.Assets = assets
	cfg.SiteURL = siteURL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		token := strings.TrimSpace(part)
		if token != "" {
			result = append(result, token)
		}
	}
	return result
}
