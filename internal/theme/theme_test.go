package theme

import (
	"strings"
	"testing"
)

func TestToggle(t *testing.T) {
	for _, start := range []bool{false, true} {
		s := New(start)
		s.Toggle()
		if s.IsDark == start {
			t.Errorf("one toggle from %v should flip", start)
		}
		s.Toggle()
		if s.IsDark != start {
			t.Errorf("two toggles from %v should restore, got %v", start, s.IsDark)
		}
	}
}

func TestName(t *testing.T) {
	if got := New(true).Name(); got != "dark" {
		t.Errorf("Name() = %q, want dark", got)
	}
	if got := New(false).Name(); got != "light" {
		t.Errorf("Name() = %q, want light", got)
	}
}

func TestPaletteFollowsState(t *testing.T) {
	s := New(false)
	light := s.Palette()
	s.Toggle()
	dark := s.Palette()
	if light == dark {
		t.Fatal("light and dark palettes should differ")
	}
	if dark != PaletteFor(true) {
		t.Error("State.Palette should match PaletteFor")
	}
}

func TestCardOptions(t *testing.T) {
	tests := []struct {
		opts      CardOptions
		want      []string
		forbidden []string
	}{
		{CardOptions{}, []string{"glass", "glass-light"}, []string{"glass-hover-light", "glass-dark"}},
		{CardOptions{Hover: true}, []string{"glass", "glass-light", "glass-hover-light"}, []string{"glass-dark"}},
		{CardOptions{IsDark: true}, []string{"glass", "glass-dark"}, []string{"glass-hover-dark", "glass-light"}},
		{CardOptions{Hover: true, IsDark: true}, []string{"glass-dark", "glass-hover-dark"}, []string{"glass-light"}},
	}
	for _, tt := range tests {
		classes := strings.Fields(tt.opts.Class())
		set := make(map[string]bool, len(classes))
		for _, c := range classes {
			set[c] = true
		}
		for _, w := range tt.want {
			if !set[w] {
				t.Errorf("%+v: missing class %q in %q", tt.opts, w, tt.opts.Class())
			}
		}
		for _, f := range tt.forbidden {
			if set[f] {
				t.Errorf("%+v: unexpected class %q", tt.opts, f)
			}
		}
	}
}

func TestSwapsCoverPalette(t *testing.T) {
	swaps := Swaps()
	lights := make(map[string]string)
	for _, s := range swaps {
		if s.Light == s.Dark {
			t.Errorf("swap %q maps to itself", s.Light)
		}
		lights[s.Light] = s.Dark
	}
	l, d := PaletteFor(false), PaletteFor(true)
	pairs := [][2]string{
		{l.Text, d.Text}, {l.TextSecondary, d.TextSecondary}, {l.TextAccent, d.TextAccent},
		{l.Badge, d.Badge}, {l.Track, d.Track}, {l.Outline, d.Outline},
	}
	for _, p := range pairs {
		if lights[p[0]] != p[1] {
			t.Errorf("swap for %q = %q, want %q", p[0], lights[p[0]], p[1])
		}
	}
}

func TestRamp(t *testing.T) {
	for _, dark := range []bool{false, true} {
		if got := len(Ramp(dark)); got != len(RampStops) {
			t.Errorf("Ramp(%v) has %d colors, want %d", dark, got, len(RampStops))
		}
	}
	if Ramp(true)[0] != "#0f0f23" || Ramp(false)[0] != "#f0f4ff" {
		t.Error("ramp start colors changed")
	}
}
