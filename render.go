package mdhtml

import (
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/reflow/indent"
)

const listIndentWidth = 2

// Renderer maps tokens to HTML fragments, one fragment per token, without
// rebuilding any nesting.
type Renderer struct {
	logger      *slog.Logger
	highlighter *highlighter
	policy      *bluemonday.Policy
	prettyLists bool
}

// NewRenderer returns a renderer configured by opts.
func NewRenderer(opts ...Option) *Renderer {
	cfg := newConfig(opts)
	r := &Renderer{
		logger:      cfg.logger,
		prettyLists: cfg.prettyLists,
	}
	if cfg.highlightStyle != "" {
		r.highlighter = newHighlighter(cfg.highlightStyle)
	}
	if cfg.sanitize {
		r.policy = sanitizePolicy()
	}
	return r
}

// Render joins the fragments of tokens with newlines.
func (r *Renderer) Render(tokens []Token) string {
	var b strings.Builder
	depth := 0
	wrote := false
	for _, tok := range tokens {
		if tok.Tag == TagListIndent {
			depth++
			continue
		}
		frag, ok := r.RenderToken(tok)
		if ok && tok.Tag == TagListItem && r.prettyLists && depth > 0 {
			frag = indent.String(frag, uint(depth*listIndentWidth))
		}
		depth = 0
		if !ok {
			continue
		}
		if wrote {
			b.WriteByte('\n')
		}
		b.WriteString(frag)
		wrote = true
	}
	out := b.String()
	if r.policy != nil {
		out = r.policy.Sanitize(out)
	}
	return out
}

// RenderToken returns the fragment for a single token. Tokens that carry no
// markup of their own (HTML, Empty, ListIndent) report false.
func (r *Renderer) RenderToken(tok Token) (string, bool) {
	if level := tok.Tag.HeadingLevel(); level > 0 {
		n := string(rune('0' + level))
		return "<h" + n + ">" + tok.Content + "</h" + n + ">", true
	}
	switch tok.Tag {
	case TagParagraph:
		return "<p>" + tok.Content + "</p>", true
	case TagLineBreak:
		return "<br>", true
	case TagListItem:
		return "<li>" + tok.Content + "</li>", true
	case TagHorizontalRule:
		return "<hr>", true
	case TagBlockquote:
		return "<blockquote>" + tok.Content + "</blockquote>", true
	case TagIndentedCode:
		return "<pre><code>" + tok.Content + "</code></pre>", true
	case TagFencedCode:
		return r.fencedCode(tok), true
	default:
		return "", false
	}
}

func (r *Renderer) fencedCode(tok Token) string {
	lang := codeLanguage(tok.Info)
	if r.highlighter != nil && lang != "" {
		out, err := r.highlighter.highlight(lang, tok.Content)
		if err == nil {
			return out
		}
		r.logger.Debug("highlight failed", "lang", lang, "error", err)
	}
	if lang == "" {
		return "<pre><code>" + tok.Content + "</code></pre>"
	}
	return `<pre><code class="language-` + lang + `">` + tok.Content + "</code></pre>"
}

// codeLanguage takes the first word of a fence info string.
func codeLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func sanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("pre", "code", "span")
	return p
}
