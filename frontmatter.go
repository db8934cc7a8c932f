package mdhtml

import (
	"bytes"
	"encoding/json"
	"log/slog"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type frontMatterFormat uint8

const (
	frontMatterNone frontMatterFormat = iota
	frontMatterYAML
	frontMatterTOML
	frontMatterJSON
)

// splitFrontMatter detects a metadata block at the very start of src and
// returns its decoded fields plus the remaining body. A block is only
// recognised when its opening delimiter is followed by something that looks
// like metadata, a closing delimiter exists and the block decodes; otherwise
// src is returned unchanged and tokenized as ordinary Markdown.
func splitFrontMatter(src []byte, logger *slog.Logger) (map[string]any, []byte) {
	openLine, next, ok := nextLine(src, 0)
	if !ok {
		return nil, src
	}
	delim, format := parseFrontMatterDelimiter(openLine)
	if format == frontMatterNone {
		return nil, src
	}
	secondLine, _, ok := nextLine(src, next)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return nil, src
	}
	bodyStart, metaEnd, found := findClosingFrontMatterDelimiter(src, next, delim)
	if !found {
		return nil, src
	}
	meta, err := decodeFrontMatter(format, src[next:metaEnd])
	if err != nil {
		logger.Debug("front matter kept as markdown", "delimiter", string(delim), "error", err)
		return nil, src
	}
	return meta, src[bodyStart:]
}

func decodeFrontMatter(format frontMatterFormat, raw []byte) (map[string]any, error) {
	meta := map[string]any{}
	var err error
	switch format {
	case frontMatterYAML:
		err = yaml.Unmarshal(raw, &meta)
	case frontMatterTOML:
		err = toml.Unmarshal(raw, &meta)
	case frontMatterJSON:
		err = json.Unmarshal(raw, &meta)
	}
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// nextLine returns the line starting at start without its line ending and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseFrontMatterDelimiter(line []byte) ([]byte, frontMatterFormat) {
	trimmed := bytes.TrimSpace(line)
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return trimmed, frontMatterYAML
	case bytes.Equal(trimmed, []byte("+++")):
		return trimmed, frontMatterTOML
	case bytes.Equal(trimmed, []byte(";;;")):
		return trimmed, frontMatterJSON
	default:
		return nil, frontMatterNone
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offset after the closing
// delimiter line and the offset where that line begins.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return next, idx, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}
