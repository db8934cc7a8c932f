package mdhtml

import "log/slog"

// Option configures tokenizing, span rewriting and rendering.
type Option func(*config)

type config struct {
	logger         *slog.Logger
	highlightStyle string
	sanitize       bool
	prettyLists    bool
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger
	}
	return cfg
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithLogger routes debug tracing of the pipeline to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithHighlight enables chroma syntax highlighting of fenced code blocks that
// name a known language. An empty style disables highlighting.
func WithHighlight(style string) Option {
	return func(cfg *config) {
		cfg.highlightStyle = style
	}
}

// WithSanitize passes rendered HTML through a user-generated-content policy.
func WithSanitize(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

// WithPrettyLists indents list items by their nesting depth.
func WithPrettyLists(enabled bool) Option {
	return func(cfg *config) {
		cfg.prettyLists = enabled
	}
}
