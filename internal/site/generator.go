// Package site renders portfolio content into a static single-page site:
// index.html, its stylesheet and script, and the image assets it links to.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Harish8848/MyPortfolio/internal/content"
	"github.com/Harish8848/MyPortfolio/internal/markdown"
	"github.com/Harish8848/MyPortfolio/internal/progress"
	"github.com/Harish8848/MyPortfolio/internal/theme"
	"github.com/Harish8848/MyPortfolio/internal/walker"
)

// DefaultScrollSamples is how finely the scroll ramps are tabulated when the
// generator is not told otherwise.
const DefaultScrollSamples = 100

// Generator writes the static site for a Content into OutputDir.
type Generator struct {
	OutputDir     string
	AssetsDir     string
	AssetPatterns []string
	AssetExcludes []string
	Theme         theme.State
	SiteURL       string
	Highlight     string
	ScrollSamples int
	Reporter      progress.Reporter
	Logger        *zap.Logger
}

// NewGenerator creates a Generator with the given output directory and
// initial theme. Other fields may be set before calling Generate.
func NewGenerator(outputDir string, st theme.State) *Generator {
	return &Generator{
		OutputDir:     outputDir,
		Theme:         st,
		ScrollSamples: DefaultScrollSamples,
	}
}

// Result summarises a generation.
type Result struct {
	Pages   int
	Assets  int
	BuildID string
}

type outputFile struct {
	name string
	data func() ([]byte, error)
}

// Generate validates c and writes the site. It stops between files if ctx
// is cancelled; files already written are left in place.
func (g *Generator) Generate(ctx context.Context, c *content.Content) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid content: %w", err)
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.L()
	}

	res := Result{BuildID: uuid.NewString()}
	page, err := buildPage(c, pageOptions{
		Theme:         g.Theme,
		BuildID:       res.BuildID,
		SiteURL:       g.SiteURL,
		ScrollSamples: g.scrollSamples(),
		Markdown:      markdown.New(g.Highlight),
	})
	if err != nil {
		return Result{}, err
	}

	assets, err := findAssets(g.AssetsDir, g.OutputDir, g.AssetPatterns, g.AssetExcludes)
	if err != nil {
		return Result{}, fmt.Errorf("finding assets: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Result{}, err
	}

	files := []outputFile{
		{"index.html", func() ([]byte, error) { return renderPage(page) }},
		{"style.css", constant(cssContent)},
		{"script.js", constant(jsContent)},
	}

	total := len(files) + len(assets) + 1
	reporter.Start(total)
	step := 0

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		data, err := f.data()
		if err != nil {
			return res, fmt.Errorf("rendering %s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), data, 0o644); err != nil {
			return res, err
		}
		step++
		reporter.Update(step, f.name)
		logger.Debug("wrote file", zap.String("name", f.name), zap.Int("bytes", len(data)))
	}
	res.Pages = 1

	for _, f := range assets {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		copied, err := walker.Copy(f, g.OutputDir)
		if err != nil {
			return res, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		res.Assets++
		step++
		reporter.Update(step, f.RelPath)
		logger.Debug("published asset", zap.String("path", f.RelPath), zap.Bool("copied", copied))
	}

	wrote, err := writePlaceholder(g.OutputDir)
	if err != nil {
		return res, fmt.Errorf("writing placeholder: %w", err)
	}
	if wrote {
		logger.Debug("wrote placeholder image", zap.String("path", content.PlaceholderImage))
	}
	step++
	reporter.Update(step, "placeholder")
	reporter.Finish()

	logger.Info("site generated",
		zap.String("dir", g.OutputDir),
		zap.Int("assets", res.Assets),
		zap.String("build", res.BuildID),
	)
	return res, nil
}

func (g *Generator) scrollSamples() int {
	if g.ScrollSamples <= 0 {
		return DefaultScrollSamples
	}
	return g.ScrollSamples
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"icon": icon,
}).Parse(pageTemplate))

func renderPage(p *Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func constant(s string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(s), nil }
}
