package mdhtml

import "strconv"

// Tag identifies the block-level kind of a Token.
type Tag uint8

const (
	TagHTML Tag = iota
	TagParagraph
	TagHeading1
	TagHeading2
	TagHeading3
	TagHeading4
	TagHeading5
	TagHeading6
	TagEmpty
	TagLineBreak
	TagListItem
	TagListIndent
	TagHorizontalRule
	TagBlockquote
	TagIndentedCode
	TagFencedCode
)

var tagNames = [...]string{
	TagHTML:           "HTML",
	TagParagraph:      "Paragraph",
	TagHeading1:       "Heading1",
	TagHeading2:       "Heading2",
	TagHeading3:       "Heading3",
	TagHeading4:       "Heading4",
	TagHeading5:       "Heading5",
	TagHeading6:       "Heading6",
	TagEmpty:          "Empty",
	TagLineBreak:      "LineBreak",
	TagListItem:       "ListItem",
	TagListIndent:     "ListIndent",
	TagHorizontalRule: "HorizontalRule",
	TagBlockquote:     "Blockquote",
	TagIndentedCode:   "IndentedCode",
	TagFencedCode:     "FencedCode",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

// HeadingTag maps a heading level (1-6) to its tag.
func HeadingTag(level int) (Tag, bool) {
	if level < 1 || level > 6 {
		return TagParagraph, false
	}
	return TagHeading1 + Tag(level-1), true
}

// HeadingLevel returns 1-6 for heading tags and 0 otherwise.
func (t Tag) HeadingLevel() int {
	if t < TagHeading1 || t > TagHeading6 {
		return 0
	}
	return int(t-TagHeading1) + 1
}

// Token is one entry of the flat block stream.
type Token struct {
	Tag     Tag
	Content string
	// Info is the text following an opening code fence.
	Info string
	// Ordered is set on list items written with a "<digits>. " marker.
	Ordered bool
}

func (t Token) String() string {
	if t.Content == "" {
		return t.Tag.String()
	}
	return t.Tag.String() + "(" + t.Content + ")"
}
