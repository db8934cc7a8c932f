package mdhtml

import "strings"

const (
	fenceDelimiter  = "```"
	codeIndent      = "    "
	maxHeadingLevel = 6
)

// lineKind is the outcome of classifying one line.
type lineKind uint8

const (
	kindEmpty lineKind = iota
	kindCode
	kindListItem
	kindBlockquote
	kindATXHeading
	kindSetextHeading
	kindHorizontalRule
	kindParagraph
)

var lineKindNames = [...]string{
	kindEmpty:          "empty",
	kindCode:           "code",
	kindListItem:       "list item",
	kindBlockquote:     "blockquote",
	kindATXHeading:     "atx heading",
	kindSetextHeading:  "setext heading",
	kindHorizontalRule: "horizontal rule",
	kindParagraph:      "paragraph",
}

func (k lineKind) String() string {
	if int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return "unknown"
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func isEmptyLine(line string) bool {
	return line == ""
}

func isFence(line string) bool {
	return strings.HasPrefix(line, fenceDelimiter)
}

func isClosingFence(line string) bool {
	return strings.TrimRight(line, " \t") == fenceDelimiter
}

func isIndentedCode(line string) bool {
	return strings.HasPrefix(line, codeIndent)
}

func isListItem(line string) bool {
	_, _, ok := parseListMarker(line)
	return ok
}

// parseListMarker strips a "- ", "* " or "<digits>. " marker and any indent
// before it. Lines that read as a horizontal rule ("- - -") are not items.
func parseListMarker(line string) (string, bool, bool) {
	if isHorizontalRule(line) {
		return "", false, false
	}
	trim := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trim, "- ") || strings.HasPrefix(trim, "* ") {
		return trim[2:], false, true
	}
	i := 0
	for i < len(trim) && trim[i] >= '0' && trim[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(trim[i:], ". ") {
		return "", false, false
	}
	return trim[i+2:], true, true
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

func isBlockquote(line string) bool {
	trim := strings.TrimLeft(line, " \t")
	if len(line)-len(trim) >= len(codeIndent) {
		return false
	}
	return strings.HasPrefix(trim, ">")
}

func countPrefix(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

func isATXHeading(line string) bool {
	level := countPrefix(line, '#')
	if level == 0 || level > maxHeadingLevel {
		return false
	}
	return level < len(line) && line[level] == ' '
}

// atxContent returns the heading level and its text with the opening run,
// any closing run of '#' and surrounding whitespace removed.
func atxContent(line string) (int, string) {
	line = strings.TrimRight(line, " \t")
	level := countPrefix(line, '#')
	body := strings.TrimRight(line[level:], "#")
	return level, strings.TrimSpace(body)
}

func isSetextHeading(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	if c != '=' && c != '-' {
		return false
	}
	return strings.Trim(strings.TrimSpace(line), string(c)) == ""
}

func isHorizontalRule(line string) bool {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, line)
	if len(compact) < 3 {
		return false
	}
	c := compact[0]
	if c != '*' && c != '_' && c != '-' {
		return false
	}
	return strings.Count(compact, string(c)) == len(compact)
}

func hasHardLineBreak(line string) bool {
	count := 0
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			count++
			continue
		}
		break
	}
	return count >= 2
}
