package mdhtml

import (
	"log/slog"
	"regexp"
	"strings"
)

const (
	boldPattern   = `\*\*(.*?)\*\*|__(.*?)__`
	italicPattern = `\*(.*?)\*|_(.*?)_`
	strikePattern = `~~(.*?)~~`
	imagePattern  = `!\[(.*?)\]\((.*?)\)`
	linkPattern   = `\[(.*?)\]\((.*?)\)`
	codePattern   = "`(.*?)`"
)

var (
	boldRe   = regexp.MustCompile(boldPattern)
	italicRe = regexp.MustCompile(italicPattern)
	strikeRe = regexp.MustCompile(strikePattern)
	imageRe  = regexp.MustCompile(imagePattern)
	linkRe   = regexp.MustCompile(linkPattern)
	codeRe   = regexp.MustCompile(codePattern)

	spanRe = regexp.MustCompile(strings.Join([]string{
		boldPattern,
		italicPattern,
		strikePattern,
		linkPattern,
		imagePattern,
		codePattern,
	}, "|"))
)

// SpanTransformer rewrites inline Markdown inside token content to HTML.
type SpanTransformer struct {
	logger *slog.Logger
}

// NewSpanTransformer returns a transformer.
func NewSpanTransformer(opts ...Option) *SpanTransformer {
	cfg := newConfig(opts)
	return &SpanTransformer{logger: cfg.logger}
}

// HasSpan reports whether text contains any inline construct.
func (s *SpanTransformer) HasSpan(text string) bool {
	return spanRe.MatchString(text)
}

// Transform rewrites tok.Content in place. Tokens without inline markup are
// left untouched; the tag never changes.
func (s *SpanTransformer) Transform(tok *Token) {
	if tok == nil || !s.HasSpan(tok.Content) {
		return
	}
	out, passes := renderSpans(tok.Content)
	s.logger.Debug("rewrote spans", "tag", tok.Tag.String(), "passes", passes)
	tok.Content = out
}

// TransformAll applies Transform to every token of a finished stream.
func (s *SpanTransformer) TransformAll(tokens []Token) {
	for i := range tokens {
		s.Transform(&tokens[i])
	}
}

// RenderSpans returns text with all inline constructs rewritten, repeating
// the substitution passes until the text stops changing.
func RenderSpans(text string) string {
	out, _ := renderSpans(text)
	return out
}

func renderSpans(text string) (string, int) {
	passes := 1
	next := spanPass(text)
	for next != text {
		text = next
		next = spanPass(text)
		passes++
	}
	return next, passes
}

// spanPass runs one round in precedence order. Bold goes before italic so
// "**x**" is not two italics; image goes before link so "![a](b)" is not a
// link preceded by "!".
func spanPass(text string) string {
	text = replaceBold(text)
	text = replaceItalic(text)
	text = replaceStrike(text)
	text = replaceImage(text)
	text = replaceLink(text)
	return replaceCode(text)
}

func replaceBold(text string) string {
	return replaceSubmatches(boldRe, text, func(groups []string) string {
		return "<b>" + replaceBold(firstGroup(groups)) + "</b>"
	})
}

func replaceItalic(text string) string {
	return replaceSubmatches(italicRe, text, func(groups []string) string {
		return "<i>" + replaceItalic(firstGroup(groups)) + "</i>"
	})
}

func replaceStrike(text string) string {
	return strikeRe.ReplaceAllString(text, "<s>$1</s>")
}

func replaceImage(text string) string {
	return replaceSubmatches(imageRe, text, func(groups []string) string {
		return `<img src="` + groups[1] + `" alt="` + groups[0] + `"/>`
	})
}

func replaceLink(text string) string {
	return replaceSubmatches(linkRe, text, func(groups []string) string {
		return `<a href="` + groups[1] + `">` + groups[0] + `</a>`
	})
}

func replaceCode(text string) string {
	return codeRe.ReplaceAllString(text, "<code>$1</code>")
}

// firstGroup picks the alternative that matched in "a|b" patterns.
func firstGroup(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
// groups holds the captures only, without the full match.
func replaceSubmatches(re *regexp.Regexp, text string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	groups := make([]string, re.NumSubexp())
	for _, m := range matches {
		b.WriteString(text[prev:m[0]])
		for i := range groups {
			start, end := m[2*(i+1)], m[2*(i+1)+1]
			if start < 0 {
				groups[i] = ""
				continue
			}
			groups[i] = text[start:end]
		}
		b.WriteString(fn(groups))
		prev = m[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
