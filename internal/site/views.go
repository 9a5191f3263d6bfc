package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/Harish8848/MyPortfolio/internal/content"
	"github.com/Harish8848/MyPortfolio/internal/markdown"
	"github.com/Harish8848/MyPortfolio/internal/motion"
	"github.com/Harish8848/MyPortfolio/internal/theme"
	"github.com/Harish8848/MyPortfolio/internal/typewriter"
)

// Page is everything the page template needs. It is built once per
// generation from the content and the initial theme.
type Page struct {
	Theme    theme.State
	Palette  theme.Palette
	Head     Head
	BuildID  string
	Nav      []NavItem
	Hero     HeroView
	About    AboutView
	Skills   []CategoryView
	Projects []ProjectView
	Contact  ContactView
	Footer   FooterView
	Data     template.JS
}

// Card returns the glass card classes for the page's theme.
func (p *Page) Card(hover bool) string {
	return p.Theme.Card(hover)
}

// Head is the document head metadata.
type Head struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Canonical   template.URL
	Image       template.URL
	Favicon     template.URL
}

// NavItem is a section anchor in the navigation bar.
type NavItem struct {
	Name   string
	Anchor string
}

var navItems = []NavItem{
	{"Home", "home"},
	{"About", "about"},
	{"Skills", "skills"},
	{"Projects", "projects"},
	{"Contact", "contact"},
}

// HeroView is the landing section. Lines carry their full text so the page
// reads correctly before the script replays the reveal.
type HeroView struct {
	Initials string
	Lines    []string
	CVLink   template.URL
	Socials  []SocialView
}

// AboutView is the about section.
type AboutView struct {
	Paragraphs []template.HTML
	Badges     []BadgeView
	Values     []ValueView
}

// BadgeView is a trait badge with its entrance delay.
type BadgeView struct {
	Text  string
	Delay string
}

// ValueView is a value card.
type ValueView struct {
	Icon        template.HTML
	Title       string
	Description string
	Delay       string
}

// CategoryView is a skill category card.
type CategoryView struct {
	Name   string
	Color  string
	Delay  string
	Skills []SkillView
}

// SkillView is one skill with its displayed level and bar animation delay.
type SkillView struct {
	Name      string
	Icon      string
	Level     int
	LevelText string
	Delay     string
	BarDelay  string
}

// ProjectView is a project card.
type ProjectView struct {
	Title       string
	Description template.HTML
	Image       template.URL
	Tech        []string
	Links       []LinkView
	Delay       string
}

// LinkView is an outbound link opened in a new tab.
type LinkView struct {
	Label   string
	Href    template.URL
	Icon    template.HTML
	Primary bool
}

// ContactView is the contact section.
type ContactView struct {
	Heading  string
	Pitch    string
	Channels []ChannelView
	Socials  []SocialView
}

// ChannelView is a contact channel card.
type ChannelView struct {
	Icon  template.HTML
	Title string
	Info  string
	Href  template.URL
	Delay string
}

// SocialView is an icon link to a profile.
type SocialView struct {
	Icon  template.HTML
	Href  template.URL
	Label string
}

// FooterView is the page footer.
type FooterView struct {
	Copyright string
	Socials   []SocialView
}

// scriptData is the JSON blob the page script reads on load.
type scriptData struct {
	Theme      string          `json:"theme"`
	Swaps      []theme.Swap    `json:"swaps"`
	Typewriter [][]scriptFrame `json:"typewriter"`
	Scroll     motion.Table    `json:"scroll"`
}

// scriptFrame is a typewriter frame with its offset in milliseconds.
type scriptFrame struct {
	At   int64  `json:"at"`
	Text string `json:"text"`
}

// pageOptions are the generator settings that affect the page itself.
type pageOptions struct {
	Theme         theme.State
	BuildID       string
	SiteURL       string
	ScrollSamples int
	Markdown      *markdown.Renderer
}

// buildPage turns content into the template's view model.
func buildPage(c *content.Content, opts pageOptions) (*Page, error) {
	paragraphs, err := opts.Markdown.RenderAll(c.Profile.Paragraphs)
	if err != nil {
		return nil, fmt.Errorf("rendering about: %w", err)
	}

	projects, err := projectViews(c.Projects, opts.Markdown)
	if err != nil {
		return nil, err
	}

	data, err := scriptJSON(c.Hero, opts)
	if err != nil {
		return nil, err
	}

	socials := socialViews(c.ActiveSocials())
	p := &Page{
		Theme:   opts.Theme,
		Palette: opts.Theme.Palette(),
		Head:    headView(c.Meta, opts.SiteURL),
		BuildID: opts.BuildID,
		Nav:     navItems,
		Hero: HeroView{
			Initials: c.Profile.Initials,
			CVLink:   safeURL(c.Profile.CVLink),
			Socials:  socials,
		},
		About: AboutView{
			Paragraphs: paragraphs,
			Badges:     badgeViews(c.Profile.Badges),
			Values:     valueViews(c.Values),
		},
		Skills:   categoryViews(c.Skills),
		Projects: projects,
		Contact: ContactView{
			Heading:  c.Contact.Heading,
			Pitch:    c.Contact.Pitch,
			Channels: channelViews(c.Contact.Channels),
			Socials:  socials,
		},
		Footer: FooterView{
			Copyright: c.Copyright,
			Socials:   socials,
		},
		Data: data,
	}
	for _, l := range c.Hero.Lines() {
		p.Hero.Lines = append(p.Hero.Lines, l.Text)
	}
	return p, nil
}

func headView(m content.Meta, siteURL string) Head {
	base := m.URL
	if siteURL != "" {
		base = siteURL
	}
	h := Head{
		Title:       m.Title,
		Description: m.Description,
		Keywords:    strings.Join(m.Keywords, ", "),
		Author:      m.Author,
		Canonical:   safeURL(base),
		Favicon:     safeURL(m.Favicon),
	}
	if m.Image != "" {
		h.Image = safeURL(absoluteURL(base, m.Image))
	}
	return h
}

func badgeViews(badges []string) []BadgeView {
	out := make([]BadgeView, 0, len(badges))
	for i, b := range badges {
		out = append(out, BadgeView{Text: b, Delay: motion.CSS(motion.BadgeStagger.Delay(i))})
	}
	return out
}

func valueViews(values []content.Value) []ValueView {
	out := make([]ValueView, 0, len(values))
	for i, v := range values {
		out = append(out, ValueView{
			Icon:        icon(v.Icon),
			Title:       v.Title,
			Description: v.Description,
			Delay:       motion.CSS(motion.SectionStagger.Delay(i)),
		})
	}
	return out
}

// barLag is how long a skill bar waits after its card appears.
const barLag = 500 * time.Millisecond

func categoryViews(cats []content.SkillCategory) []CategoryView {
	out := make([]CategoryView, 0, len(cats))
	for ci, cat := range cats {
		skills := motion.CategoryStagger.Then(ci, motion.SkillStagger)
		cv := CategoryView{
			Name:  cat.Name,
			Color: cat.Color,
			Delay: motion.CSS(motion.CategoryStagger.Delay(ci)),
		}
		for si, s := range cat.Skills {
			d := skills.Delay(si)
			cv.Skills = append(cv.Skills, SkillView{
				Name:      s.Name,
				Icon:      s.Icon,
				Level:     s.Level,
				LevelText: fmt.Sprintf("%d%%", s.Level),
				Delay:     motion.CSS(d),
				BarDelay:  motion.CSS(d + barLag),
			})
		}
		out = append(out, cv)
	}
	return out
}

func projectViews(projects []content.Project, md *markdown.Renderer) ([]ProjectView, error) {
	out := make([]ProjectView, 0, len(projects))
	for i, p := range projects {
		desc, err := md.Render(p.Description)
		if err != nil {
			return nil, fmt.Errorf("rendering project %q: %w", p.Title, err)
		}
		out = append(out, ProjectView{
			Title:       p.Title,
			Description: desc,
			Image:       safeURL(p.ImageOrPlaceholder()),
			Tech:        p.Tech,
			Links: []LinkView{
				{Label: "Code", Href: safeURL(p.GitHub), Icon: icon("github")},
				{Label: "Live Demo", Href: safeURL(p.Live), Icon: icon("external-link"), Primary: true},
			},
			Delay: motion.CSS(motion.SectionStagger.Delay(i)),
		})
	}
	return out, nil
}

func channelViews(channels []content.ContactChannel) []ChannelView {
	out := make([]ChannelView, 0, len(channels))
	for i, ch := range channels {
		out = append(out, ChannelView{
			Icon:  icon(ch.Icon),
			Title: ch.Title,
			Info:  ch.Info,
			Href:  safeURL(ch.Href),
			Delay: motion.CSS(motion.SectionStagger.Delay(i)),
		})
	}
	return out
}

func socialViews(links []content.SocialLink) []SocialView {
	out := make([]SocialView, 0, len(links))
	for _, l := range links {
		out = append(out, SocialView{Icon: icon(l.Icon), Href: safeURL(l.Href), Label: l.Label})
	}
	return out
}

func scriptJSON(hero content.Hero, opts pageOptions) (template.JS, error) {
	var seq typewriter.Sequence
	for _, l := range hero.Lines() {
		seq.Lines = append(seq.Lines, typewriter.Line{
			Text:    l.Text,
			Options: typewriter.Options{Interval: l.Speed, Delay: l.Delay},
		})
	}

	data := scriptData{
		Theme:  opts.Theme.Name(),
		Swaps:  theme.Swaps(),
		Scroll: motion.DefaultParallax().Sample(opts.ScrollSamples),
	}
	for _, frames := range seq.Timelines() {
		line := make([]scriptFrame, 0, len(frames))
		for _, f := range frames {
			line = append(line, scriptFrame{At: f.At.Milliseconds(), Text: f.Text})
		}
		data.Typewriter = append(data.Typewriter, line)
	}

	// json.Marshal escapes <, > and &, so the blob cannot close its script tag.
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encoding page data: %w", err)
	}
	return template.JS(b), nil
}

// safeURL passes through links with a scheme a portfolio legitimately uses
// (web, mail, phone) and relative paths. Anything else becomes "#".
func safeURL(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "#"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(raw)
	}
	return "#"
}

// absoluteURL resolves ref against base for sharing cards, which need
// absolute image URLs.
func absoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
