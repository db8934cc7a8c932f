package mdhtml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestDumpTokens(t *testing.T) {
	t.Parallel()
	tokens := []Token{
		{Tag: TagHeading1, Content: "Title"},
		{Tag: TagEmpty},
		{Tag: TagListItem, Content: "first", Ordered: true},
		{Tag: TagFencedCode, Content: "a\nb", Info: "go"},
	}
	var out bytes.Buffer
	if err := DumpTokens(&out, tokens, 0); err != nil {
		t.Fatalf("DumpTokens: %v", err)
	}
	want := strings.Join([]string{
		"Heading1          Title",
		"Empty",
		"ListItem 1.       first",
		`FencedCode go     a\nb`,
		"",
	}, "\n")
	if out.String() != want {
		t.Fatalf("DumpTokens=\n%s\nwant\n%s", out.String(), want)
	}
}

func TestDumpTokensTruncates(t *testing.T) {
	t.Parallel()
	tokens := []Token{{Tag: TagParagraph, Content: strings.Repeat("word ", 20)}}
	var out bytes.Buffer
	if err := DumpTokens(&out, tokens, 30); err != nil {
		t.Fatalf("DumpTokens: %v", err)
	}
	row := strings.TrimSuffix(out.String(), "\n")
	if w := runewidth.StringWidth(row); w > 30 {
		t.Fatalf("row width %d exceeds limit: %q", w, row)
	}
	if !strings.HasSuffix(row, "…") {
		t.Fatalf("expected ellipsis, got %q", row)
	}
}
