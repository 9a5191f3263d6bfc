package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidLevel is returned when a skill level falls outside [0,100].
	ErrInvalidLevel = errors.New("skill level must be between 0 and 100")
	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("required field is empty")
)

// Load reads a YAML content file and overlays it onto Default(). Sections
// present in the file replace the compiled-in ones; a missing file yields
// the defaults unchanged.
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return c, nil
}

// Save writes the content as YAML.
func (c *Content) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing content to %s: %w", path, err)
	}
	return nil
}

// Validate checks the authored data before anything is rendered.
func (c *Content) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("profile.name: %w", ErrMissingField)
	}
	if c.Meta.Title == "" {
		return fmt.Errorf("meta.title: %w", ErrMissingField)
	}

	for i, cat := range c.Skills {
		if cat.Name == "" {
			return fmt.Errorf("skills[%d].name: %w", i, ErrMissingField)
		}
		for j, s := range cat.Skills {
			if s.Name == "" {
				return fmt.Errorf("skills[%d].skills[%d].name: %w", i, j, ErrMissingField)
			}
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("skill %q has level %d: %w", s.Name, s.Level, ErrInvalidLevel)
			}
		}
	}

	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("projects[%d].title: %w", i, ErrMissingField)
		}
		if p.GitHub == "" {
			return fmt.Errorf("project %q github: %w", p.Title, ErrMissingField)
		}
		if p.Live == "" {
			return fmt.Errorf("project %q live: %w", p.Title, ErrMissingField)
		}
	}

	for i, ch := range c.Contact.Channels {
		if ch.Title == "" || ch.Href == "" {
			return fmt.Errorf("contact.channels[%d]: %w", i, ErrMissingField)
		}
	}

	for i, s := range c.Socials {
		if s.Label == "" {
			return fmt.Errorf("socials[%d].label: %w", i, ErrMissingField)
		}
	}

	return nil
}
