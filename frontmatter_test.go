package mdhtml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStripsFrontMatterAtStart(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		meta map[string]any
	}{
		{
			name: "yaml",
			src:  "---\ntitle: Post\ndraft: true\n---\n\n# Hello\n\nBody.\n",
			meta: map[string]any{"title": "Post", "draft": true},
		},
		{
			name: "toml",
			src:  "+++\ntitle = \"Post\"\n+++\n\n# Hello\n\nBody.\n",
			meta: map[string]any{"title": "Post"},
		},
		{
			name: "json",
			src:  ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n\nBody.\n",
			meta: map[string]any{"title": "Post"},
		},
		{
			name: "crlf",
			src:  "---\r\ntitle: Post\r\n---\r\n# Hello\r\nBody.\r\n",
			meta: map[string]any{"title": "Post"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := ParseBytes([]byte(tc.src))
			if err != nil {
				t.Fatalf("ParseBytes: %v", err)
			}
			if diff := cmp.Diff(tc.meta, doc.Meta); diff != "" {
				t.Fatalf("meta mismatch (-want +got):\n%s", diff)
			}
			out := doc.HTML()
			if !strings.Contains(out, "<h1>Hello</h1>") || !strings.Contains(out, "<p>Body.</p>") {
				t.Fatalf("missing body in output: %q", out)
			}
			if strings.Contains(out, "Post") {
				t.Fatalf("front matter leaked into output: %q", out)
			}
		})
	}
}

func TestFrontMatterIsOnlyCheckedAtStart(t *testing.T) {
	t.Parallel()
	doc, err := ParseBytes([]byte("# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n\nTail\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if doc.Meta != nil {
		t.Fatalf("unexpected meta %v", doc.Meta)
	}
	out := doc.HTML()
	for _, want := range []string{"<h1>Intro</h1>", `<p>title = "Keep me"</p>`, "<p>Tail</p>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestUnclosedFrontMatterIsKept(t *testing.T) {
	t.Parallel()
	meta, body := splitFrontMatter([]byte("---\ntitle: Post\n\n# Hello\n"), discardLogger)
	if meta != nil {
		t.Fatalf("unexpected meta %v", meta)
	}
	if string(body) != "---\ntitle: Post\n\n# Hello\n" {
		t.Fatalf("body changed: %q", body)
	}
}

func TestDelimiterWithoutMetadataIsKept(t *testing.T) {
	t.Parallel()
	src := "---\n# Keep\n---\n\nTail\n"
	meta, body := splitFrontMatter([]byte(src), discardLogger)
	if meta != nil || string(body) != src {
		t.Fatalf("unexpected split: meta=%v body=%q", meta, body)
	}
}

func TestOnlyFirstFrontMatterBlockIsStripped(t *testing.T) {
	t.Parallel()
	meta, body := splitFrontMatter([]byte("---\ntitle: Skip\n---\n\nBody\n\n---\nkeep: yes\n---\n"), discardLogger)
	if meta["title"] != "Skip" {
		t.Fatalf("unexpected meta %v", meta)
	}
	if string(body) != "\nBody\n\n---\nkeep: yes\n---\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestUndecodableFrontMatterIsMarkdown(t *testing.T) {
	t.Parallel()
	doc, err := ParseBytes([]byte("---\nNote: see [a](b): c\n---\nbody\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if doc.Meta != nil {
		t.Fatalf("unexpected meta %v", doc.Meta)
	}
	want := []Token{
		{Tag: TagParagraph, Content: "---"},
		{Tag: TagHeading2, Content: `Note: see <a href="b">a</a>: c`},
		{Tag: TagParagraph, Content: "body"},
	}
	if diff := cmp.Diff(want, doc.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}

	for _, src := range []string{
		"---\ntitle: [unterminated\n---\nBody\n",
		"+++\ntitle = \n+++\nBody\n",
		";;;\n{\"title\": }\n;;;\nBody\n",
	} {
		meta, body := splitFrontMatter([]byte(src), discardLogger)
		if meta != nil || string(body) != src {
			t.Fatalf("splitFrontMatter(%q) = %v, %q; want source kept", src, meta, body)
		}
		doc, err := ParseBytes([]byte(src))
		if err != nil {
			t.Fatalf("ParseBytes(%q): %v", src, err)
		}
		if out := doc.HTML(); !strings.Contains(out, "title") || !strings.Contains(out, "<p>Body</p>") {
			t.Fatalf("block missing from output for %q: %q", src, out)
		}
	}
}
