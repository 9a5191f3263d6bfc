package walker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assetTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "favicon.png", "png")
	writeFile(t, root, "og-image.png", "og")
	writeFile(t, root, "cv.pdf", "pdf")
	writeFile(t, root, "projects/hamrosadhan.jpg", "jpg")
	writeFile(t, root, "notes.txt", "skip me")
	writeFile(t, root, ".DS_Store", "junk")
	writeFile(t, root, ".git/config", "junk")
	return root
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_IncludePatterns(t *testing.T) {
	root := assetTree(t)

	files, err := Walk(WalkerConfig{RootDir: root, Include: []string{"*.png", "*.jpg", "*.pdf"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"cv.pdf", "favicon.png", "og-image.png", "projects/hamrosadhan.jpg"}
	got := relPaths(files)
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_DefaultExcludes(t *testing.T) {
	root := assetTree(t)

	files, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if f.RelPath == ".DS_Store" || filepath.Dir(f.RelPath) == ".git" {
			t.Errorf("excluded file %q was returned", f.RelPath)
		}
	}
	if len(files) != 5 {
		t.Errorf("got %d files, want 5: %v", len(files), relPaths(files))
	}
}

func TestWalk_Exclude(t *testing.T) {
	root := assetTree(t)

	files, err := Walk(WalkerConfig{
		RootDir: root,
		Include: []string{"**/*.png", "**/*.jpg"},
		Exclude: []string{"projects/**"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if f.RelPath == "projects/hamrosadhan.jpg" {
			t.Error("excluded project image was returned")
		}
	}
}

func TestWalk_MaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.png", "a")
	writeFile(t, root, "big.png", "abcdefghij")

	files, err := Walk(WalkerConfig{RootDir: root, MaxFileSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].RelPath != "small.png" {
		t.Errorf("Walk() = %v, want only small.png", relPaths(files))
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	files, err := Walk(WalkerConfig{RootDir: filepath.Join(t.TempDir(), "nope")})
	if err != nil {
		t.Fatalf("missing root should not error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files from a missing root", len(files))
	}
}

func TestWalk_BadPattern(t *testing.T) {
	_, err := Walk(WalkerConfig{RootDir: t.TempDir(), Include: []string{"[a-"}})
	var pe *PatternError
	if err == nil {
		t.Fatal("expected an error for a malformed pattern")
	}
	if !errors.As(err, &pe) || pe.Pattern != "[a-" {
		t.Errorf("error = %v, want PatternError for %q", err, "[a-")
	}
}

func TestWalk_ContentHash(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.png", "same")
	writeFile(t, root, "b.png", "same")
	writeFile(t, root, "c.png", "different")

	files, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	if files[0].ContentHash != files[1].ContentHash {
		t.Error("identical files should hash the same")
	}
	if files[0].ContentHash == files[2].ContentHash {
		t.Error("different files should hash differently")
	}
	if len(files[0].ContentHash) != 64 {
		t.Errorf("hash length = %d, want 64", len(files[0].ContentHash))
	}
}

func TestCopy(t *testing.T) {
	root := assetTree(t)
	dest := t.TempDir()

	files, err := Walk(WalkerConfig{RootDir: root, Include: []string{"*.jpg"}})
	if err != nil || len(files) != 1 {
		t.Fatalf("Walk() = %v, %v", files, err)
	}

	copied, err := Copy(files[0], dest)
	if err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	if !copied {
		t.Error("first copy should write the file")
	}
	data, err := os.ReadFile(filepath.Join(dest, "projects", "hamrosadhan.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpg" {
		t.Errorf("copied content = %q", data)
	}

	copied, err = Copy(files[0], dest)
	if err != nil {
		t.Fatal(err)
	}
	if copied {
		t.Error("second copy of unchanged content should be skipped")
	}
}

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"a.png", nil, true},
		{"a.png", []string{"*.png"}, true},
		{"img/a.png", []string{"*.png"}, true},
		{"img/a.png", []string{"img/**"}, true},
		{"img/a.png", []string{"docs/**"}, false},
		{"a.svg", []string{"*.png", "*.jpg"}, false},
	}
	for _, tt := range tests {
		if got := MatchesInclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestWalk_SkipDirs(t *testing.T) {
	root := assetTree(t)
	writeFile(t, root, "public/favicon.png", "png")

	files, err := Walk(WalkerConfig{
		RootDir:  root,
		Include:  []string{"**/*.png"},
		SkipDirs: []string{filepath.Join(root, "public")},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if f.RelPath == "public/favicon.png" {
			t.Error("file under a skipped directory was returned")
		}
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2: %v", len(files), relPaths(files))
	}
}
