package mdhtml

import (
	"fmt"
	"html/template"
	"strings"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .CSS}}
<style>
{{.CSS}}
</style>
{{- end}}
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// Page renders the document as a complete HTML page. With WithHighlight the
// page embeds the matching stylesheet.
func (d *Document) Page(opts ...Option) (string, error) {
	cfg := newConfig(opts)
	data := pageData{
		Title: d.Title(),
		Body:  template.HTML(d.HTML(opts...)),
	}
	if cfg.highlightStyle != "" {
		css, err := HighlightCSS(cfg.highlightStyle)
		if err != nil {
			return "", fmt.Errorf("page: highlight css: %w", err)
		}
		data.CSS = template.CSS(css)
	}
	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("page: %w", err)
	}
	return b.String(), nil
}
