package mdhtml

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var tokenizerPool = sync.Pool{
	New: func() any {
		return &Tokenizer{}
	},
}

var plainTextPolicy = bluemonday.StrictPolicy()

// Document is a tokenized Markdown source with spans already rewritten.
type Document struct {
	// Meta holds decoded front matter, nil when the source had none.
	Meta   map[string]any
	Tokens []Token
}

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Convert reads Markdown from req.Reader and writes HTML to req.Writer.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	doc, err := Parse(req.Reader, req.Options...)
	if err != nil {
		return err
	}
	out := doc.HTML(req.Options...)
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
		return fmt.Errorf("convert: write: %w", err)
	}
	return nil
}

// ConvertString converts a Markdown string to an HTML string.
func ConvertString(src string, opts ...Option) (string, error) {
	doc, err := ParseBytes([]byte(src), opts...)
	if err != nil {
		return "", err
	}
	return doc.HTML(opts...), nil
}

// Parse reads all of r and tokenizes it.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	return ParseBytes(src, opts...)
}

// ParseBytes tokenizes src line by line, then rewrites inline spans. A fenced
// block still open at the end keeps the lines it collected.
func ParseBytes(src []byte, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)
	src, err := normalizeEncoding(src)
	if err != nil {
		return nil, fmt.Errorf("parse: decode: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	meta, body := splitFrontMatter(src, cfg.logger)

	tokenizer := tokenizerPool.Get().(*Tokenizer)
	tokenizer.Reset()
	tokenizer.logger = cfg.logger
	defer func() {
		tokenizer.logger = nil
		tokenizerPool.Put(tokenizer)
	}()
	for line := range bytes.Lines(body) {
		if err := tokenizer.ProcessLine(string(line)); err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
	}
	tokens := slices.Clone(tokenizer.Tokens())
	NewSpanTransformer(opts...).TransformAll(tokens)
	cfg.logger.Debug("parsed document", "tokens", len(tokens), "front_matter", meta != nil)
	return &Document{Meta: meta, Tokens: tokens}, nil
}

// HTML renders the document body.
func (d *Document) HTML(opts ...Option) string {
	return NewRenderer(opts...).Render(d.Tokens)
}

// Title returns the front matter "title" or, failing that, the text of the
// first level-one heading with markup removed.
func (d *Document) Title() string {
	if title, ok := d.Meta["title"].(string); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	for _, tok := range d.Tokens {
		if tok.Tag == TagHeading1 {
			return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(tok.Content)))
		}
	}
	return ""
}
