package mdhtml

import "testing"

func TestIsSetextHeading(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"-":                   true,
		"- ":                  true,
		"=       ":            true,
		"===========        ": true,
		"------- ":            true,
		"=":                   true,
		"===========":         true,
		"-------":             true,
		"-====":               false,
		" ====":               false,
		"==Hello==":           false,
		"---Hello--":          false,
		"== ==":               false,
		" -":                  false,
		"- -":                 false,
		" =":                  false,
		"***":                 false,
		"":                    false,
	}
	for line, want := range cases {
		if got := isSetextHeading(line); got != want {
			t.Fatalf("isSetextHeading(%q)=%v want %v", line, got, want)
		}
	}
}

func TestIsListItem(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"- unordered list item":             true,
		"* unordered list item":             true,
		"1. ordered list item":              true,
		"0. ordered list item":              true,
		"0001230532452. ordered list item":  true,
		"  - unordered list item":           true,
		"-list item":                        false,
		"*list item":                        false,
		"12334.list item":                   false,
		"123d3. list item":                  false,
		"-- list item":                      false,
		"- - -":                             false,
		"* * *":                             false,
		". no digits":                       false,
	}
	for line, want := range cases {
		if got := isListItem(line); got != want {
			t.Fatalf("isListItem(%q)=%v want %v", line, got, want)
		}
	}
}

func TestIsHorizontalRule(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"- - -":                 true,
		"_ _ _":                 true,
		"* * *":                 true,
		"***":                   true,
		"---":                   true,
		"___":                   true,
		"      ***":             true,
		"    ---":               true,
		"     ___":              true,
		"*          **":         true,
		"--      -":             true,
		"_  _        _":         true,
		"_____________________": true,
		"----------------":      true,
		"************":          true,
		"*-**********":          false,
		"****____*******":       false,
		"--------_":             false,
		"*":                     false,
		"":                      false,
		"--":                    false,
		"**":                    false,
		"_":                     false,
		"-":                     false,
		"333":                   false,
		"33333333333333":        false,
		"aaaaaaaaa":             false,
		"aa":                    false,
	}
	for line, want := range cases {
		if got := isHorizontalRule(line); got != want {
			t.Fatalf("isHorizontalRule(%q)=%v want %v", line, got, want)
		}
	}
}

func TestIsBlockquote(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		">hello":      true,
		" >hello":     true,
		"> hello":     true,
		"   >hello":   true,
		"    >hello":  false,
		"   > hello":  true,
		"hello > you": false,
	}
	for line, want := range cases {
		if got := isBlockquote(line); got != want {
			t.Fatalf("isBlockquote(%q)=%v want %v", line, got, want)
		}
	}
}

func TestIsATXHeading(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"# h1":          true,
		"###### h6":     true,
		"####### p":     false,
		"##h2":          false,
		"#":             false,
		"# ":            true,
		" # indented":   false,
		"#hashtag only": false,
	}
	for line, want := range cases {
		if got := isATXHeading(line); got != want {
			t.Fatalf("isATXHeading(%q)=%v want %v", line, got, want)
		}
	}
}

func TestHasHardLineBreak(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"hello world  ":     true,
		"hello world      ": true,
		"hello world    ":   true,
		"hello world   . ":  false,
		"hello world.":      false,
		"hello world ":      false,
	}
	for line, want := range cases {
		if got := hasHardLineBreak(line); got != want {
			t.Fatalf("hasHardLineBreak(%q)=%v want %v", line, got, want)
		}
	}
}

func TestTrimLineEnding(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"text\n":   "text",
		"text\r\n": "text",
		"text":     "text",
		"\n":       "",
		"a\n\n":    "a\n",
	}
	for in, want := range cases {
		if got := trimLineEnding(in); got != want {
			t.Fatalf("trimLineEnding(%q)=%q want %q", in, got, want)
		}
	}
}
