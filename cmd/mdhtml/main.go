package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type settings struct {
	output     string
	standalone bool
	highlight  string
	sanitize   bool
	pretty     bool
	tokens     bool
	width      int
	verbose    bool
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("mdhtml", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("output", "o", "", "Output file instead of stdout")
	flags.Bool("standalone", false, "Wrap the body in a complete HTML page")
	flags.String("highlight", "", "Chroma style for fenced code highlighting (empty disables)")
	flags.Bool("sanitize", false, "Sanitize the generated HTML")
	flags.Bool("pretty", false, "Indent nested list items")
	flags.Bool("tokens", false, "Print the block token stream instead of HTML")
	flags.IntP("width", "w", 0, "Token dump width (0 uses terminal width if available)")
	flags.String("config", "", "Config file (yaml, toml or json)")
	flags.BoolP("verbose", "v", false, "Log pipeline details to stderr")
	flags.Bool("version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "Settings may also come from --config or MDHTML_* environment variables.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

// loadSettings merges flags, MDHTML_* environment variables and an optional
// config file. Explicit flags win over the environment, which wins over the
// file.
func loadSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("MDHTML")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}
	if path := strings.TrimSpace(v.GetString("config")); path != "" {
		v.SetConfigFile(normalizePath(path))
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}
	return settings{
		output:     v.GetString("output"),
		standalone: v.GetBool("standalone"),
		highlight:  v.GetString("highlight"),
		sanitize:   v.GetBool("sanitize"),
		pretty:     v.GetBool("pretty"),
		tokens:     v.GetBool("tokens"),
		width:      v.GetInt("width"),
		verbose:    v.GetBool("verbose"),
	}, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if show, _ := flags.GetBool("version"); show {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	cfg, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inputs := flags.Args()
	if len(inputs) == 0 && isTerminal(stdin) {
		flags.Usage()
		return 2
	}
	reader, closer, err := openInputs(inputs, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	opts := []mdhtml.Option{
		mdhtml.WithLogger(logger),
		mdhtml.WithHighlight(cfg.highlight),
		mdhtml.WithSanitize(cfg.sanitize),
		mdhtml.WithPrettyLists(cfg.pretty),
	}
	doc, err := mdhtml.Parse(reader, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "convert: %v\n", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(cfg.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	switch {
	case cfg.tokens:
		err = mdhtml.DumpTokens(writer, doc.Tokens, resolveWidth(cfg.width, writer))
	case cfg.standalone:
		var page string
		page, err = doc.Page(opts...)
		if err == nil {
			_, err = io.WriteString(writer, page)
		}
	default:
		if body := doc.HTML(opts...); body != "" {
			_, err = io.WriteString(writer, body+"\n")
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	logger.Debug("converted", "inputs", len(inputs), "tokens", len(doc.Tokens))
	return 0
}

// resolveWidth picks the dump width: the flag, then the terminal size of w,
// then $COLUMNS. Zero means no truncation.
func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return 0
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

// openInputs concatenates the named inputs, or returns stdin when there are
// none.
func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	body, err := mdhtml.FetchMarkdown(context.Background(), nil, raw)
	if err != nil {
		return nil, nil, err
	}
	return body, body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
