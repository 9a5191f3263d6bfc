package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default content should validate: %v", err)
	}
	if got := c.SkillCount(); got != 12 {
		t.Errorf("SkillCount() = %d, want 12", got)
	}
	if len(c.Projects) != 3 {
		t.Errorf("projects = %d, want 3", len(c.Projects))
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Skills[0].Skills[0].Level = 1
	b := Default()
	if b.Skills[0].Skills[0].Level == 1 {
		t.Error("Default() should not share state between calls")
	}
}

func TestValidateLevel(t *testing.T) {
	tests := []struct {
		level   int
		wantErr bool
	}{
		{0, false},
		{100, false},
		{-1, true},
		{101, true},
	}
	for _, tt := range tests {
		c := Default()
		c.Skills[1].Skills[0].Level = tt.level
		err := c.Validate()
		if tt.wantErr && !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("level %d: expected ErrInvalidLevel, got %v", tt.level, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("level %d: unexpected error %v", tt.level, err)
		}
	}
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Content)
	}{
		{"profile name", func(c *Content) { c.Profile.Name = "" }},
		{"meta title", func(c *Content) { c.Meta.Title = "" }},
		{"category name", func(c *Content) { c.Skills[0].Name = "" }},
		{"project github", func(c *Content) { c.Projects[0].GitHub = "" }},
		{"project live", func(c *Content) { c.Projects[2].Live = "" }},
		{"contact href", func(c *Content) { c.Contact.Channels[0].Href = "" }},
		{"social label", func(c *Content) { c.Socials[1].Label = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrMissingField) {
				t.Errorf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestImageOrPlaceholder(t *testing.T) {
	p := Project{Title: "x"}
	if got := p.ImageOrPlaceholder(); got != PlaceholderImage {
		t.Errorf("empty image = %q, want %q", got, PlaceholderImage)
	}
	p.Image = "/shot.png"
	if got := p.ImageOrPlaceholder(); got != "/shot.png" {
		t.Errorf("image = %q, want /shot.png", got)
	}
}

func TestActiveSocialsSkipsEmptyHref(t *testing.T) {
	c := Default()
	socials := c.ActiveSocials()
	if len(socials) != 2 {
		t.Fatalf("active socials = %d, want 2", len(socials))
	}
	for _, s := range socials {
		if s.Label == "GitHub" {
			t.Error("GitHub link without href should be skipped")
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Profile.Name != "Harish Bhatt" {
		t.Errorf("profile name = %q", c.Profile.Name)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	doc := `profile:
  name: Ada Lovelace
  initials: AL
hero:
  title:
    text: Ada
    speed: 50ms
    delay: 1s
projects:
  - title: Engine
    description: Analytical
    tech: [Brass, Punch cards]
    github: https://github.com/ada/engine
    live: https://engine.example
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Profile.Name != "Ada Lovelace" || c.Profile.Initials != "AL" {
		t.Errorf("profile not overlaid: %+v", c.Profile)
	}
	if c.Hero.Title.Speed != 50*time.Millisecond || c.Hero.Title.Delay != time.Second {
		t.Errorf("hero title timing = %v/%v", c.Hero.Title.Speed, c.Hero.Title.Delay)
	}
	if len(c.Projects) != 1 || c.Projects[0].Title != "Engine" {
		t.Errorf("projects not replaced: %+v", c.Projects)
	}
	// Untouched sections keep their defaults.
	if c.SkillCount() != 12 {
		t.Errorf("skills should keep defaults, got %d", c.SkillCount())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("profile: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	original := Default()
	original.Copyright = "© 2026 Someone"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Copyright != original.Copyright {
		t.Errorf("copyright = %q", loaded.Copyright)
	}
	if loaded.Hero.Location.Speed != original.Hero.Location.Speed {
		t.Errorf("location speed = %v, want %v", loaded.Hero.Location.Speed, original.Hero.Location.Speed)
	}
	for i, cat := range loaded.Skills {
		for j, s := range cat.Skills {
			if s.Level != original.Skills[i].Skills[j].Level {
				t.Errorf("skill %q level = %d", s.Name, s.Level)
			}
		}
	}
}
