// Package walker finds the static assets to publish alongside the page and
// copies them into the output directory.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultMaxFileSize is the largest asset that is published (20 MB).
const DefaultMaxFileSize int64 = 20 << 20

// FileInfo holds metadata about a single asset discovered during traversal.
type FileInfo struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root.
	Size        int64
	ContentHash string // SHA-256 hex digest.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir     string
	Include     []string // Glob patterns; only matching files are included.
	Exclude     []string // Glob patterns; matching files are excluded.
	SkipDirs    []string // Directories never descended into.
	MaxFileSize int64    // 0 means DefaultMaxFileSize.
}

// Walk traverses config.RootDir and returns every regular file that passes
// filtering, sorted by RelPath. A missing root yields no files.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	if config.RootDir == "" {
		return nil, nil
	}
	if err := ValidatePatterns(config.Include); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(config.Exclude); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	skip := make(map[string]bool, len(config.SkipDirs))
	for _, dir := range config.SkipDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("walker: resolve %s: %w", dir, err)
		}
		skip[abs] = true
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		if d.IsDir() && skip[path] {
			return filepath.SkipDir
		}
		if shouldExclude(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !MatchesInclude(relPath, config.Include) || MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > maxSize {
			return nil
		}

		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		files = append(files, FileInfo{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Copy writes f under destDir at its relative path. It returns false without
// writing when the destination already holds the same content.
func Copy(f FileInfo, destDir string) (bool, error) {
	dest := filepath.Join(destDir, filepath.FromSlash(f.RelPath))
	if hash, err := hashFile(dest); err == nil && hash == f.ContentHash {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, err
	}
	src, err := os.Open(f.Path)
	if err != nil {
		return false, err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
