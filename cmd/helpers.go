package cmd

import (
	"fmt"

	"github.com/Harish8848/MyPortfolio/internal/config"
	"github.com/Harish8848/MyPortfolio/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadContent reads the content file named by override, falling back to the
// config's content_file and then to the built-in content.
func loadContent(cfg *config.Config, override string) (*content.Content, error) {
	path := cfg.ContentFile
	if override != "" {
		path = override
	}
	c, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return c, nil
}
