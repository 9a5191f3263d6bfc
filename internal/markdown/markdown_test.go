package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := New("")
	tests := []struct {
		src  string
		want string
	}{
		{"plain words", "<p>plain words</p>"},
		{"with **React** and *Go*", "<p>with <strong>React</strong> and <em>Go</em></p>"},
		{"a [link](https://example.com)", `<a href="https://example.com">link</a>`},
	}
	for _, tt := range tests {
		got, err := r.Render(tt.src)
		if err != nil {
			t.Fatalf("Render(%q): %v", tt.src, err)
		}
		if !strings.Contains(string(got), tt.want) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.src, got, tt.want)
		}
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	got, err := New("github").Render("hi <script>alert(1)</script>")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(got), "<script>") {
		t.Errorf("raw HTML should be omitted, got %q", got)
	}
}

func TestRenderHighlightsCode(t *testing.T) {
	got, err := New("monokai").Render("```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "<pre") {
		t.Errorf("expected a highlighted block, got %q", got)
	}
}

func TestRenderAll(t *testing.T) {
	out, err := New("").RenderAll([]string{"one", "two"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || !strings.Contains(string(out[1]), "two") {
		t.Errorf("RenderAll = %q", out)
	}
}
