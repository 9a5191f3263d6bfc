// Package theme holds the light/dark state and every style choice derived
// from it. The state is passed explicitly to whatever renders; nothing here
// is global.
package theme

// State is the dark/light flag for a single page view.
type State struct {
	IsDark bool
}

// New returns a State in the given mode.
func New(isDark bool) State {
	return State{IsDark: isDark}
}

// Toggle flips the theme.
func (s *State) Toggle() {
	s.IsDark = !s.IsDark
}

// Name is "dark" or "light".
func (s State) Name() string {
	if s.IsDark {
		return "dark"
	}
	return "light"
}

// Palette returns the classes for the current mode.
func (s State) Palette() Palette {
	return PaletteFor(s.IsDark)
}

// Card returns the glass card class list for the current mode.
func (s State) Card(hover bool) string {
	return CardOptions{Hover: hover, IsDark: s.IsDark}.Class()
}

const (
	glassLight      = "glass-light"
	glassDark       = "glass-dark"
	glassHoverLight = "glass-hover-light"
	glassHoverDark  = "glass-hover-dark"
)

// CardOptions enumerates what a glass card can be configured with.
type CardOptions struct {
	Hover  bool
	IsDark bool
}

// Class returns the card's class list.
func (o CardOptions) Class() string {
	base := "glass " + glassLight
	hover := glassHoverLight
	if o.IsDark {
		base = "glass " + glassDark
		hover = glassHoverDark
	}
	if !o.Hover {
		return base
	}
	return base + " " + hover
}

// Ramp returns the six background colors the page moves through as it is
// scrolled, one list per mode.
func Ramp(isDark bool) []string {
	if isDark {
		return []string{"#0f0f23", "#1a1a3e", "#2d1b69", "#1a1a3e", "#0f0f23", "#050507"}
	}
	return []string{"#f0f4ff", "#e6f0ff", "#dde7ff", "#e6f0ff", "#f0f4ff", "#f8faff"}
}

// RampStops are the scroll positions the Ramp colors sit at.
var RampStops = []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
