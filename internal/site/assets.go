package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Harish8848/MyPortfolio/internal/content"
	"github.com/Harish8848/MyPortfolio/internal/walker"
)

// ErrAssetConflict is returned when an asset would overwrite a generated file.
var ErrAssetConflict = errors.New("asset conflicts with a generated file")

// generatedFiles are written by Generate and never taken from the assets.
var generatedFiles = []string{"index.html", "style.css", "script.js"}

// findAssets lists the files under dir that match include and not exclude.
// An empty dir publishes nothing. When the output directory lies inside dir
// it is skipped, so a build never republishes its own output.
func findAssets(dir, outputDir string, include, exclude []string) ([]walker.FileInfo, error) {
	if dir == "" {
		return nil, nil
	}
	same, err := sameDir(dir, outputDir)
	if err != nil {
		return nil, err
	}
	if same {
		return nil, fmt.Errorf("assets directory %s is also the output directory", dir)
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir:  dir,
		Include:  include,
		Exclude:  exclude,
		SkipDirs: []string{outputDir},
	})
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		for _, name := range generatedFiles {
			if f.RelPath == name {
				return nil, fmt.Errorf("%w: %s", ErrAssetConflict, f.Path)
			}
		}
	}
	return files, nil
}

func sameDir(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

// writePlaceholder writes the placeholder image unless the output already
// has one, either copied from the assets or left by an earlier build.
func writePlaceholder(outputDir string) (bool, error) {
	path := filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(content.PlaceholderImage, "/")))
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, []byte(placeholderSVG), 0o644)
}
