package theme

// Palette is the set of theme-dependent classes the sections use.
type Palette struct {
	Text          string
	TextSecondary string
	TextAccent    string
	Badge         string
	Track         string
	Outline       string
	Orb           string
	Icon          string
}

var (
	lightPalette = Palette{
		Text:          "text-ink",
		TextSecondary: "text-ink-soft",
		TextAccent:    "text-violet",
		Badge:         "badge-light",
		Track:         "track-light",
		Outline:       "outline-light",
		Orb:           "orb-light",
		Icon:          "icon-moon",
	}
	darkPalette = Palette{
		Text:          "text-snow",
		TextSecondary: "text-snow-soft",
		TextAccent:    "text-lilac",
		Badge:         "badge-dark",
		Track:         "track-dark",
		Outline:       "outline-dark",
		Orb:           "orb-dark",
		Icon:          "icon-sun",
	}
)

// PaletteFor returns the light or dark palette.
func PaletteFor(isDark bool) Palette {
	if isDark {
		return darkPalette
	}
	return lightPalette
}

// Swap is one class that changes when the theme is toggled.
type Swap struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Swaps lists every class that differs between the modes, so the page script
// can re-derive styling from the toggled flag without a reload.
func Swaps() []Swap {
	l, d := lightPalette, darkPalette
	return []Swap{
		{l.Text, d.Text},
		{l.TextSecondary, d.TextSecondary},
		{l.TextAccent, d.TextAccent},
		{l.Badge, d.Badge},
		{l.Track, d.Track},
		{l.Outline, d.Outline},
		{l.Orb, d.Orb},
		{l.Icon, d.Icon},
		{glassLight, glassDark},
		{glassHoverLight, glassHoverDark},
	}
}
