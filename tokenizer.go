package mdhtml

import (
	"log/slog"
	"strings"
)

// tokenStream is append-only except for its last entry.
type tokenStream struct {
	tokens []Token
}

func (s *tokenStream) append(tok Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *tokenStream) last() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	return s.tokens[len(s.tokens)-1], true
}

func (s *tokenStream) replaceLast(tok Token) {
	if len(s.tokens) == 0 {
		s.tokens = append(s.tokens, tok)
		return
	}
	s.tokens[len(s.tokens)-1] = tok
}

func (s *tokenStream) reset() {
	s.tokens = s.tokens[:0]
}

// Tokenizer turns Markdown lines into a flat block token stream. Lines must
// be fed in document order: classification looks back at the last token.
type Tokenizer struct {
	stream     tokenStream
	inFence    bool
	fenceLines int
	logger     *slog.Logger
}

// NewTokenizer returns an empty tokenizer.
func NewTokenizer(opts ...Option) *Tokenizer {
	cfg := newConfig(opts)
	return &Tokenizer{logger: cfg.logger}
}

// Reset clears all tokens and fence state for reuse.
func (t *Tokenizer) Reset() {
	t.stream.reset()
	t.inFence = false
	t.fenceLines = 0
}

// Tokens returns the token stream. The slice aliases the tokenizer's buffer
// so span rewriting can update Content in place.
func (t *Tokenizer) Tokens() []Token {
	return t.stream.tokens
}

// LatestToken returns the most recently appended token, or an Empty token
// when nothing has been processed yet.
func (t *Tokenizer) LatestToken() Token {
	if tok, ok := t.stream.last(); ok {
		return tok
	}
	return Token{Tag: TagEmpty}
}

// ProcessLine classifies one line and appends or updates tokens. A trailing
// line ending is ignored. The only error is a ClassificationError.
func (t *Tokenizer) ProcessLine(line string) error {
	return t.classify(trimLineEnding(line), 0)
}

func (t *Tokenizer) kindOf(line string) lineKind {
	switch {
	case !t.inFence && isEmptyLine(line):
		return kindEmpty
	case t.isCodeBlock(line):
		return kindCode
	case isListItem(line):
		return kindListItem
	case isBlockquote(line):
		return kindBlockquote
	case isATXHeading(line):
		return kindATXHeading
	case isSetextHeading(line):
		return kindSetextHeading
	case isHorizontalRule(line):
		return kindHorizontalRule
	default:
		return kindParagraph
	}
}

// isCodeBlock needs the lookbehind: an indented line right after a list item
// continues the item rather than starting code.
func (t *Tokenizer) isCodeBlock(line string) bool {
	if t.inFence || isFence(line) {
		return true
	}
	return isIndentedCode(line) && t.LatestToken().Tag != TagListItem
}

func (t *Tokenizer) classify(line string, depth int) error {
	kind := t.kindOf(line)
	t.logger.Debug("classified line", "kind", kind.String(), "depth", depth)
	switch kind {
	case kindEmpty:
		return t.emptyLine(line)
	case kindCode:
		return t.codeBlock(line)
	case kindListItem:
		return t.listItem(line)
	case kindBlockquote:
		return t.blockquote(line, depth)
	case kindATXHeading:
		return t.atxHeading(line)
	case kindSetextHeading:
		return t.setextHeading(line)
	case kindHorizontalRule:
		return t.horizontalRule(line)
	default:
		t.paragraph(line)
		return nil
	}
}

func (t *Tokenizer) emptyLine(line string) error {
	if !isEmptyLine(line) {
		return classificationError("empty", line, "expected an empty line")
	}
	t.stream.append(Token{Tag: TagEmpty})
	return nil
}

func (t *Tokenizer) codeBlock(line string) error {
	if !t.isCodeBlock(line) {
		return classificationError("code block", line, "expected a fence or a 4-space indent")
	}
	switch {
	case t.inFence:
		if isClosingFence(line) {
			t.inFence = false
			t.logger.Debug("fence closed", "lines", t.fenceLines)
			return nil
		}
		last, _ := t.stream.last()
		if t.fenceLines == 0 {
			last.Content = line
		} else {
			last.Content += "\n" + line
		}
		t.fenceLines++
		t.stream.replaceLast(last)
	case isFence(line):
		info := strings.TrimSpace(line[len(fenceDelimiter):])
		t.stream.append(Token{Tag: TagFencedCode, Info: info})
		t.inFence = true
		t.fenceLines = 0
		t.logger.Debug("fence opened", "info", info)
	default:
		text := line[len(codeIndent):]
		if last, ok := t.stream.last(); ok && last.Tag == TagIndentedCode {
			last.Content += "\n" + text
			t.stream.replaceLast(last)
			return nil
		}
		t.stream.append(Token{Tag: TagIndentedCode, Content: text})
	}
	return nil
}

func (t *Tokenizer) listItem(line string) error {
	text, ordered, ok := parseListMarker(line)
	if !ok {
		return classificationError("list item", line, `expected a "- ", "* " or "<digits>. " marker`)
	}
	for range leadingSpaces(line) / 2 {
		t.stream.append(Token{Tag: TagListIndent})
	}
	t.stream.append(Token{Tag: TagListItem, Content: text, Ordered: ordered})
	return nil
}

// blockquote emits one marker and re-classifies whatever follows the first
// '>' so ">> # x" yields two markers and a heading.
func (t *Tokenizer) blockquote(line string, depth int) error {
	if !isBlockquote(line) {
		return classificationError("blockquote", line, `expected a leading ">"`)
	}
	t.stream.append(Token{Tag: TagBlockquote})
	trim := strings.TrimLeft(line, " \t")
	rest := strings.TrimLeft(trim[1:], " \t")
	if rest == "" {
		return nil
	}
	return t.classify(rest, depth+1)
}

func (t *Tokenizer) atxHeading(line string) error {
	if !strings.HasPrefix(line, "#") {
		return classificationError("atx heading", line, `expected a leading "#"`)
	}
	if !isATXHeading(line) {
		t.paragraph(line)
		return nil
	}
	level, content := atxContent(line)
	tag, ok := HeadingTag(level)
	if !ok {
		t.paragraph(line)
		return nil
	}
	t.stream.append(Token{Tag: tag, Content: content})
	return nil
}

// setextHeading promotes the paragraph above to a heading. Without a
// paragraph directly above, the underline is plain text.
func (t *Tokenizer) setextHeading(line string) error {
	if !isSetextHeading(line) {
		return classificationError("setext heading", line, `expected exclusively "=" or "-"`)
	}
	last, ok := t.stream.last()
	if !ok || last.Tag != TagParagraph {
		t.stream.append(Token{Tag: TagParagraph, Content: line})
		return nil
	}
	tag := TagHeading1
	if line[0] == '-' {
		tag = TagHeading2
	}
	t.stream.replaceLast(Token{Tag: tag, Content: last.Content})
	t.logger.Debug("promoted paragraph", "tag", tag.String())
	return nil
}

func (t *Tokenizer) horizontalRule(line string) error {
	if !isHorizontalRule(line) {
		return classificationError("horizontal rule", line, `expected 3 or more of "*", "_" or "-"`)
	}
	t.stream.append(Token{Tag: TagHorizontalRule})
	return nil
}

func (t *Tokenizer) paragraph(line string) {
	t.stream.append(Token{Tag: TagParagraph, Content: line})
	if hasHardLineBreak(line) {
		t.stream.append(Token{Tag: TagLineBreak})
	}
}
