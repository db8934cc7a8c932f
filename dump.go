package mdhtml

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const dumpLabelWidth = 18

// DumpTokens writes one row per token: the tag label padded to a fixed
// column, then the content with newlines shown as `\n`. Rows are cut to
// width cells when width is positive.
func DumpTokens(w io.Writer, tokens []Token, width int) error {
	for _, tok := range tokens {
		row := runewidth.FillRight(dumpLabel(tok), dumpLabelWidth-1) + " " + strings.ReplaceAll(tok.Content, "\n", `\n`)
		row = strings.TrimRight(row, " ")
		if width > 0 {
			row = truncateWithEllipsis(row, width)
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func dumpLabel(tok Token) string {
	label := tok.Tag.String()
	switch {
	case tok.Ordered:
		label += " 1."
	case tok.Info != "":
		label += " " + tok.Info
	}
	return label
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}
