// Package content holds the authored data the portfolio page is built from:
// profile text, skills, projects, contact channels and page metadata.
package content

import "time"

// PlaceholderImage is used for projects that do not ship a screenshot.
const PlaceholderImage = "/placeholder.svg"

// Content is everything rendered on the page. It is read-only once loaded.
type Content struct {
	Meta      Meta            `yaml:"meta"`
	Profile   Profile         `yaml:"profile"`
	Hero      Hero            `yaml:"hero"`
	Values    []Value         `yaml:"values"`
	Skills    []SkillCategory `yaml:"skills"`
	Projects  []Project       `yaml:"projects"`
	Contact   Contact         `yaml:"contact"`
	Socials   []SocialLink    `yaml:"socials"`
	Copyright string          `yaml:"copyright"`
}

// Meta is the document head: title, SEO description and sharing cards.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Author      string   `yaml:"author"`
	URL         string   `yaml:"url"`
	Image       string   `yaml:"image"`
	Favicon     string   `yaml:"favicon"`
}

// Profile is the bio shown in the hero and about sections. Paragraphs are
// markdown.
type Profile struct {
	Name       string   `yaml:"name"`
	Initials   string   `yaml:"initials"`
	Role       string   `yaml:"role"`
	Location   string   `yaml:"location"`
	Paragraphs []string `yaml:"paragraphs"`
	Badges     []string `yaml:"badges"`
	CVLink     string   `yaml:"cv_link"`
}

// TypedLine is a line revealed by the typewriter effect.
type TypedLine struct {
	Text  string        `yaml:"text"`
	Speed time.Duration `yaml:"speed"`
	Delay time.Duration `yaml:"delay"`
}

// Hero holds the three typed lines, revealed one after another.
type Hero struct {
	Title    TypedLine `yaml:"title"`
	Subtitle TypedLine `yaml:"subtitle"`
	Location TypedLine `yaml:"location"`
}

// Lines returns the hero lines in reveal order.
func (h Hero) Lines() []TypedLine {
	return []TypedLine{h.Title, h.Subtitle, h.Location}
}

// Value is one of the "what I care about" cards in the about section.
type Value struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Skill is a single proficiency entry. Level is a percentage.
type Skill struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Icon     string `yaml:"icon"`
	Category string `yaml:"category"`
}

// SkillCategory groups skills under a heading with an accent gradient.
type SkillCategory struct {
	Name   string  `yaml:"name"`
	Color  string  `yaml:"color"`
	Skills []Skill `yaml:"skills"`
}

// Project is a featured project card.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tech        []string `yaml:"tech"`
	GitHub      string   `yaml:"github"`
	Live        string   `yaml:"live"`
}

// ImageOrPlaceholder returns the project image, falling back to the
// placeholder when none is set.
func (p Project) ImageOrPlaceholder() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

// Contact is the "let's work together" section.
type Contact struct {
	Heading  string           `yaml:"heading"`
	Pitch    string           `yaml:"pitch"`
	Channels []ContactChannel `yaml:"channels"`
}

// ContactChannel is an email, phone or location entry.
type ContactChannel struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Info  string `yaml:"info"`
	Href  string `yaml:"href"`
}

// SocialLink is an icon link to an external profile.
type SocialLink struct {
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// SkillCount returns the total number of skills across all categories.
func (c *Content) SkillCount() int {
	n := 0
	for _, cat := range c.Skills {
		n += len(cat.Skills)
	}
	return n
}

// ActiveSocials returns the social links that have a target.
func (c *Content) ActiveSocials() []SocialLink {
	var out []SocialLink
	for _, s := range c.Socials {
		if s.Href != "" {
			out = append(out, s)
		}
	}
	return out
}
