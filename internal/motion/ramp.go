// Package motion maps scroll progress to presentation values and computes
// staggered entrance delays.
package motion

import (
	"errors"
	"fmt"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadRamp is returned for breakpoints that cannot be interpolated.
var ErrBadRamp = errors.New("invalid ramp")

// Ramp maps an input in [Stops[0], Stops[n-1]] to a value by linear
// interpolation between the surrounding breakpoints. Inputs outside the
// range clamp to the first or last value.
type Ramp struct {
	Stops  []float64
	Values []float64
}

// NewRamp validates the breakpoints and returns a Ramp.
func NewRamp(stops, values []float64) (Ramp, error) {
	if err := checkStops(stops, len(values)); err != nil {
		return Ramp{}, err
	}
	return Ramp{Stops: stops, Values: values}, nil
}

// MustRamp is NewRamp for breakpoints fixed at compile time.
func MustRamp(stops, values []float64) Ramp {
	r, err := NewRamp(stops, values)
	if err != nil {
		panic(err)
	}
	return r
}

// At returns the interpolated value for progress. A Ramp not built by
// NewRamp with mismatched or missing breakpoints yields 0.
func (r Ramp) At(progress float64) float64 {
	if len(r.Stops) == 0 || len(r.Stops) != len(r.Values) {
		return 0
	}
	i, t := locate(r.Stops, progress)
	if t == 0 {
		return r.Values[i]
	}
	return r.Values[i] + (r.Values[i+1]-r.Values[i])*t
}

// ColorRamp interpolates hex colors the same way Ramp interpolates numbers.
type ColorRamp struct {
	Stops  []float64
	colors []colorful.Color
}

// NewColorRamp parses the hex colors and validates the breakpoints.
func NewColorRamp(stops []float64, hex []string) (ColorRamp, error) {
	if err := checkStops(stops, len(hex)); err != nil {
		return ColorRamp{}, err
	}
	colors := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return ColorRamp{}, fmt.Errorf("color %d %q: %w", i, h, err)
		}
		colors[i] = c
	}
	return ColorRamp{Stops: stops, colors: colors}, nil
}

// At returns the interpolated color for progress as #rrggbb, or "" for a
// ColorRamp not built by NewColorRamp.
func (r ColorRamp) At(progress float64) string {
	if len(r.Stops) == 0 || len(r.Stops) != len(r.colors) {
		return ""
	}
	i, t := locate(r.Stops, progress)
	if t == 0 {
		return r.colors[i].Hex()
	}
	return r.colors[i].BlendRgb(r.colors[i+1], t).Clamped().Hex()
}

// locate returns the segment index for progress and the fraction through it.
// A zero fraction means the value sits exactly on Stops[i].
func locate(stops []float64, progress float64) (int, float64) {
	last := len(stops) - 1
	if progress <= stops[0] || math.IsNaN(progress) {
		return 0, 0
	}
	if progress >= stops[last] {
		return last, 0
	}
	// j is the first stop not below progress; the segment starts one before it.
	j := sort.SearchFloat64s(stops, progress)
	if stops[j] == progress {
		return j, 0
	}
	i := j - 1
	return i, (progress - stops[i]) / (stops[j] - stops[i])
}

func checkStops(stops []float64, values int) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least two stops, got %d", ErrBadRamp, len(stops))
	}
	if len(stops) != values {
		return fmt.Errorf("%w: %d stops but %d values", ErrBadRamp, len(stops), values)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i] <= stops[i-1] {
			return fmt.Errorf("%w: stops must increase, %v after %v", ErrBadRamp, stops[i], stops[i-1])
		}
	}
	return nil
}
