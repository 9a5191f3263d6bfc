package motion

import (
	"math"

	"github.com/Harish8848/MyPortfolio/internal/theme"
)

// Style is what the hero backdrop and page background look like at a given
// scroll position.
type Style struct {
	Y          float64
	Opacity    float64
	Background string
}

// Parallax holds the scroll-linked ramps of the page.
type Parallax struct {
	HeroY       Ramp
	HeroOpacity Ramp
	Light       ColorRamp
	Dark        ColorRamp
}

// DefaultParallax is the hero drift (0 to -200px over the page), the hero
// fade (gone by 30% progress) and the per-theme background ramps.
func DefaultParallax() Parallax {
	light, err := NewColorRamp(theme.RampStops, theme.Ramp(false))
	if err != nil {
		panic(err)
	}
	dark, err := NewColorRamp(theme.RampStops, theme.Ramp(true))
	if err != nil {
		panic(err)
	}
	return Parallax{
		HeroY:       MustRamp([]float64{0, 1}, []float64{0, -200}),
		HeroOpacity: MustRamp([]float64{0, 0.3}, []float64{1, 0}),
		Light:       light,
		Dark:        dark,
	}
}

// Frame evaluates every ramp at progress for the given theme.
func (p Parallax) Frame(progress float64, isDark bool) Style {
	bg := p.Light
	if isDark {
		bg = p.Dark
	}
	return Style{
		Y:          p.HeroY.At(progress),
		Opacity:    p.HeroOpacity.At(progress),
		Background: bg.At(progress),
	}
}

// Table is a precomputed sampling of the ramps at evenly spaced progress
// values, index i standing for progress i/(len-1).
type Table struct {
	Y       []float64 `json:"y"`
	Opacity []float64 `json:"opacity"`
	Light   []string  `json:"light"`
	Dark    []string  `json:"dark"`
}

// Sample splits [0,1] into n intervals and evaluates the ramps at each of
// the n+1 boundaries. n below 1 is treated as 1.
func (p Parallax) Sample(n int) Table {
	n = max(n, 1)
	t := Table{
		Y:       make([]float64, n+1),
		Opacity: make([]float64, n+1),
		Light:   make([]string, n+1),
		Dark:    make([]string, n+1),
	}
	for i := 0; i <= n; i++ {
		progress := float64(i) / float64(n)
		t.Y[i] = round2(p.HeroY.At(progress))
		t.Opacity[i] = round2(p.HeroOpacity.At(progress))
		t.Light[i] = p.Light.At(progress)
		t.Dark[i] = p.Dark.At(progress)
	}
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
