package mdtint

import (
	"strings"
	"testing"
)

func TestRenderStripsFrontMatterAtStart(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		contains []string
		omits    []string
	}{
		{
			name:     "yaml",
			src:      "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n\nBody.\n",
			contains: []string{"Hello", "Body."},
			omits:    []string{"title: Post", "date: 2026-02-09", "---"},
		},
		{
			name:     "toml",
			src:      "+++\ntitle = \"Post\"\n+++\n\n# Hello\n",
			contains: []string{"Hello"},
			omits:    []string{"title = \"Post\"", "+++"},
		},
		{
			name:     "json",
			src:      ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n",
			contains: []string{"Hello"},
			omits:    []string{"\"title\": \"Post\""},
		},
		{
			name:     "crlf and bom",
			src:      "\ufeff---\r\ntitle: Post\r\n---\r\nBody\r\n",
			contains: []string{"Body"},
			omits:    []string{"title: Post"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := renderPlain(t, tc.src, WithFrontMatter(false))
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Fatalf("missing %q in output: %q", want, out)
				}
			}
			for _, bad := range tc.omits {
				if strings.Contains(out, bad) {
					t.Fatalf("unexpected %q in output: %q", bad, out)
				}
			}
		})
	}
}

func TestRenderKeepsFrontMatterByDefault(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Post\n---\nBody\n"
	if out := renderPlain(t, src); out != src+"\n" {
		t.Fatalf("front matter altered without option: %q", out)
	}
}

func TestStripFrontMatterOnlyAtStart(t *testing.T) {
	t.Parallel()
	src := "Intro\n\n+++\ntitle = \"Keep me\"\n+++\n\nTail\n"
	if got := string(stripFrontMatter([]byte(src))); got != src {
		t.Fatalf("unexpected strip: %q", got)
	}
}

func TestStripFrontMatterUnclosed(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Post\n\n# Hello\n"
	if got := string(stripFrontMatter([]byte(src))); got != src {
		t.Fatalf("unclosed front matter stripped: %q", got)
	}
}

func TestStripFrontMatterNeedsMetadata(t *testing.T) {
	t.Parallel()
	src := "---\n# Keep\n---\n\nTail\n"
	if got := string(stripFrontMatter([]byte(src))); got != src {
		t.Fatalf("delimiter without metadata stripped: %q", got)
	}
}

func TestStripFrontMatterOnce(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Skip\n---\n\nBody\n\n---\nkeep: yes\n---\n"
	want := "\nBody\n\n---\nkeep: yes\n---\n"
	if got := string(stripFrontMatter([]byte(src))); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
