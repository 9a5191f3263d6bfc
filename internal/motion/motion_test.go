package motion

import (
	"errors"
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRampEndpointsAndMidpoint(t *testing.T) {
	r := MustRamp([]float64{0, 1}, []float64{10, 30})
	tests := []struct {
		progress, want float64
	}{
		{0, 10},
		{1, 30},
		{0.5, 20},
		{0.25, 15},
		{-0.5, 10},
		{1.5, 30},
		{math.NaN(), 10},
	}
	for _, tt := range tests {
		if got := r.At(tt.progress); !almostEqual(got, tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestRampMonotonic(t *testing.T) {
	r := MustRamp([]float64{0, 0.2, 0.7, 1}, []float64{0, 1, 5, 9})
	prev := r.At(0)
	for i := 1; i <= 1000; i++ {
		v := r.At(float64(i) / 1000)
		if v < prev {
			t.Fatalf("ramp decreased at %v: %v < %v", float64(i)/1000, v, prev)
		}
		prev = v
	}
}

func TestRampOnBreakpoints(t *testing.T) {
	r := MustRamp([]float64{0, 0.2, 0.4}, []float64{1, 2, 4})
	for i, s := range r.Stops {
		if got := r.At(s); got != r.Values[i] {
			t.Errorf("At(%v) = %v, want %v", s, got, r.Values[i])
		}
	}
}

func TestNewRampRejectsBadStops(t *testing.T) {
	tests := []struct {
		name   string
		stops  []float64
		values []float64
	}{
		{"single stop", []float64{0}, []float64{1}},
		{"length mismatch", []float64{0, 1}, []float64{1}},
		{"decreasing", []float64{0, 0.5, 0.4}, []float64{1, 2, 3}},
		{"duplicate", []float64{0, 0.5, 0.5}, []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		if _, err := NewRamp(tt.stops, tt.values); !errors.Is(err, ErrBadRamp) {
			t.Errorf("%s: expected ErrBadRamp, got %v", tt.name, err)
		}
	}
}

func TestColorRamp(t *testing.T) {
	r, err := NewColorRamp([]float64{0, 1}, []string{"#000000", "#ffffff"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "#000000"},
		{1, "#ffffff"},
		{0.5, "#808080"},
		{2, "#ffffff"},
	}
	for _, tt := range tests {
		if got := r.At(tt.progress); got != tt.want {
			t.Errorf("At(%v) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestZeroValueRamps(t *testing.T) {
	if got := (Ramp{}).At(0.5); got != 0 {
		t.Errorf("Ramp{}.At = %v, want 0", got)
	}
	if got := (Ramp{Stops: []float64{0, 1}}).At(0.5); got != 0 {
		t.Errorf("Ramp without values At = %v, want 0", got)
	}
	if got := (ColorRamp{}).At(0.5); got != "" {
		t.Errorf("ColorRamp{}.At = %q, want empty", got)
	}
	if got := (ColorRamp{Stops: []float64{0, 1}}).At(0.5); got != "" {
		t.Errorf("ColorRamp without colors At = %q, want empty", got)
	}
}

func TestColorRampRejectsBadHex(t *testing.T) {
	if _, err := NewColorRamp([]float64{0, 1}, []string{"#000000", "purple"}); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestParallaxFrame(t *testing.T) {
	p := DefaultParallax()

	start := p.Frame(0, false)
	if start.Y != 0 || start.Opacity != 1 || start.Background != "#f0f4ff" {
		t.Errorf("light start = %+v", start)
	}

	end := p.Frame(1, true)
	if end.Y != -200 || end.Opacity != 0 || end.Background != "#050507" {
		t.Errorf("dark end = %+v", end)
	}

	mid := p.Frame(0.5, false)
	if !almostEqual(mid.Y, -100) {
		t.Errorf("mid Y = %v, want -100", mid.Y)
	}
	if mid.Opacity != 0 {
		t.Errorf("opacity past 0.3 = %v, want 0", mid.Opacity)
	}

	fading := p.Frame(0.15, true)
	if !almostEqual(fading.Opacity, 0.5) {
		t.Errorf("opacity at 0.15 = %v, want 0.5", fading.Opacity)
	}

	if got := p.Frame(0.4, true).Background; got != "#2d1b69" {
		t.Errorf("dark background at 0.4 = %q, want #2d1b69", got)
	}
}

func TestParallaxSample(t *testing.T) {
	p := DefaultParallax()
	table := p.Sample(10)
	if len(table.Y) != 11 || len(table.Opacity) != 11 || len(table.Light) != 11 || len(table.Dark) != 11 {
		t.Fatalf("table lengths = %d/%d/%d/%d", len(table.Y), len(table.Opacity), len(table.Light), len(table.Dark))
	}
	if table.Y[5] != -100 {
		t.Errorf("Y[5] = %v, want -100", table.Y[5])
	}
	if table.Light[4] != "#dde7ff" {
		t.Errorf("Light[4] = %q, want #dde7ff", table.Light[4])
	}
	if table.Dark[10] != "#050507" {
		t.Errorf("Dark[10] = %q", table.Dark[10])
	}

	if got := len(p.Sample(0).Y); got != 2 {
		t.Errorf("Sample(0) length = %d, want 2", got)
	}
}

func TestStagger(t *testing.T) {
	if got := SkillStagger.Delay(3); got != 300*time.Millisecond {
		t.Errorf("skill delay 3 = %v", got)
	}
	if got := SectionStagger.Delay(0); got != 100*time.Millisecond {
		t.Errorf("section delay 0 = %v", got)
	}
	if got := SectionStagger.Delay(-2); got != 100*time.Millisecond {
		t.Errorf("negative index = %v", got)
	}

	nested := CategoryStagger.Then(1, SkillStagger)
	if got := nested.Delay(2); got != 400*time.Millisecond {
		t.Errorf("nested delay = %v, want 400ms", got)
	}
}

func TestCSS(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{300 * time.Millisecond, "0.3s"},
		{1200 * time.Millisecond, "1.2s"},
	}
	for _, tt := range tests {
		if got := CSS(tt.d); got != tt.want {
			t.Errorf("CSS(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
