package config

// ThemeMode selects the theme the page is first rendered in.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Config is the top-level portfolio configuration, corresponding to .portfolio.yml.
type Config struct {
	OutputDir     string       `yaml:"output_dir" koanf:"output_dir"`
	ContentFile   string       `yaml:"content_file" koanf:"content_file"`
	AssetsDir     string       `yaml:"assets_dir" koanf:"assets_dir"`
	Assets        []string     `yaml:"assets" koanf:"assets"`
	AssetsExclude []string     `yaml:"assets_exclude,omitempty" koanf:"assets_exclude"`
	Theme         ThemeMode    `yaml:"theme" koanf:"theme"`
	SiteURL       string       `yaml:"site_url" koanf:"site_url"`
	Highlight     string       `yaml:"highlight_style" koanf:"highlight_style"`
	Scroll        ScrollConfig `yaml:"scroll" koanf:"scroll"`
}

// ScrollConfig controls how finely the scroll-linked values are sampled
// into the page script.
type ScrollConfig struct {
	Samples int `yaml:"samples" koanf:"samples"`
}

// IsDark reports whether the configured initial theme is dark.
func (c *Config) IsDark() bool {
	return c.Theme == ThemeDark
}
