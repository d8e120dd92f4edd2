package index

import "log/slog"

// Encoding selects the string-encoding validation mode applied while
// scanning string tokens.
type Encoding int

const (
	// UTF8 is the default encoding: well-formed UTF-8, no restriction on
	// control characters inside strings.
	UTF8 Encoding = iota
	// UTF8Strict additionally rejects unprintable control characters
	// inside strings.
	UTF8Strict
)

// DefaultMaxStructureDepth is the absolute cap on nesting depth applied
// when no WithMaxStructureDepth option overrides it.
const DefaultMaxStructureDepth = 128

// Option configures [Build].
type Option func(*config)

type config struct {
	encoding          Encoding
	maxStructureDepth int
	requireDocument   bool
	completeParse     bool
	comments          bool
	logger            *slog.Logger
	unicodeNormalize  bool
}

func defaultConfig() *config {
	return &config{
		encoding:          UTF8,
		maxStructureDepth: DefaultMaxStructureDepth,
		requireDocument:   false,
		completeParse:     true,
		comments:          true,
	}
}

// WithStringEncoding sets the string validation mode. Default [UTF8].
func WithStringEncoding(e Encoding) Option {
	return func(c *config) { c.encoding = e }
}

// WithMaxStructureDepth sets the nesting depth cap. Default
// [DefaultMaxStructureDepth]. Values above DefaultMaxStructureDepth are
// accepted but discouraged; very deep documents risk large stack use in
// recursive consumers downstream of the index.
func WithMaxStructureDepth(depth int) Option {
	return func(c *config) { c.maxStructureDepth = depth }
}

// WithRequireDocument requires the parsed result to be an object or array.
// Off by default, which allows bare scalars like `42` or `"x"` as a
// complete document.
func WithRequireDocument() Option {
	return func(c *config) { c.requireDocument = true }
}

// WithCompleteParse controls whether trailing non-whitespace bytes after
// the first value are rejected. Enabled by default; disable for streams
// that concatenate multiple JSON documents.
func WithCompleteParse(complete bool) Option {
	return func(c *config) { c.completeParse = complete }
}

// WithComments controls whether `/* ... */` block comments are permitted,
// treated as whitespace. Enabled by default.
func WithComments(enabled bool) Option {
	return func(c *config) { c.comments = enabled }
}

// WithLogger attaches a structured logger for low-level build tracing
// (depth-exceeded warnings, and similar). Nil (the default) disables
// tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithUnicodeNormalization enables NFC normalization of decoded string
// and key values during [Index.ExtractTree]. Off by default, so the
// default decode path reproduces source bytes exactly (modulo escapes).
func WithUnicodeNormalization() Option {
	return func(c *config) { c.unicodeNormalize = true }
}

// StrictOptions returns the stricter preset: UTF8Strict encoding, a
// reduced depth cap of 20, a required document, complete parsing, and
// comments disabled.
func StrictOptions() []Option {
	return []Option{
		WithStringEncoding(UTF8Strict),
		WithMaxStructureDepth(20),
		WithRequireDocument(),
		WithCompleteParse(true),
		WithComments(false),
	}
}
