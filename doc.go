// Package mdhtml converts Markdown to HTML.
//
// Conversion runs in two passes over a flat token stream. The Tokenizer
// classifies one line at a time, looking back only at the last token it
// produced, and emits block tokens: headings, paragraphs, list items with
// depth markers, blockquote markers, code blocks, rules and line breaks.
// The SpanTransformer then rewrites the content of each token for bold,
// italic, strikethrough, images, links and inline code, repeating its
// substitutions until the text stops changing. The Renderer maps every token
// to one HTML fragment; lists and blockquotes are never rebuilt into trees.
//
// Example:
//
//	out, err := mdhtml.ConvertString("# Hello\n\nMarkdown in, *HTML* out.\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Rendering can be customized with Options such as WithHighlight,
// WithSanitize and WithPrettyLists.
package mdhtml
