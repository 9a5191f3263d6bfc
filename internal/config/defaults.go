package config

// DefaultAssets are glob patterns copied from the assets directory by default.
var DefaultAssets = []string{
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.webp",
	"**/*.svg",
	"**/*.ico",
	"**/*.pdf",
}

const (
	// DefaultScrollSamples is the number of intervals the [0,1] scroll range is split into.
	DefaultScrollSamples = 100

	maxScrollSamples = 1000
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "public",
		AssetsDir: "assets",
		Assets:    DefaultAssets,
		Theme:     ThemeLight,
		Highlight: "github",
		Scroll: ScrollConfig{
			Samples: DefaultScrollSamples,
		},
	}
}
