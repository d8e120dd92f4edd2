package format

import "github.com/elan-voss/tessera/path"

// ExtractionContext carries the state threaded through one Extract call:
// the active formats registry, a version triple for gating version-sensitive
// adapters, arbitrary user data, the current path, and the problem
// collector extractors report into.
type ExtractionContext struct {
	formats   *Formats
	version   Version
	userData  map[string]any
	path      path.Path
	collector *Collector
	cfg       *extractConfig
}

// NewExtractionContext returns a root extraction context rooted at the
// document root path.
func NewExtractionContext(formats *Formats, version Version, opts ...ExtractOption) *ExtractionContext {
	cfg := defaultExtractConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &ExtractionContext{
		formats:   formats,
		version:   version,
		userData:  make(map[string]any),
		path:      path.Root(),
		collector: NewCollector(cfg.maxFailures),
		cfg:       cfg,
	}
}

// Formats returns the active formats registry.
func (c *ExtractionContext) Formats() *Formats { return c.formats }

// Version returns the active version triple.
func (c *ExtractionContext) Version() Version { return c.version }

// Path returns the current path.
func (c *ExtractionContext) Path() path.Path { return c.path }

// Collector returns the problem collector.
func (c *ExtractionContext) Collector() *Collector { return c.collector }

// FailureMode returns the configured failure mode.
func (c *ExtractionContext) FailureMode() FailureMode { return c.cfg.failureMode }

// OnDuplicateKey returns the configured duplicate-key policy.
func (c *ExtractionContext) OnDuplicateKey() DuplicateKeyPolicy { return c.cfg.onDuplicateKey }

// UserData returns the value stored under key, or nil if absent.
func (c *ExtractionContext) UserData(key string) any { return c.userData[key] }

// SetUserData stores a value under key, visible to this context and any
// children descended from it after the call.
func (c *ExtractionContext) SetUserData(key string, val any) { c.userData[key] = val }

// WithPath returns a child context identical to c but with the given path,
// sharing the same formats, collector, and user data. Extractors use this
// to descend into a subvalue while preserving accumulated problems.
func (c *ExtractionContext) WithPath(p path.Path) *ExtractionContext {
	child := *c
	child.path = p
	return &child
}

// Fail records a Problem at the context's current path and reports
// whether the caller should keep extracting (true) or stop now (false),
// honoring both FailureMode and the collector's failure limit.
func (c *ExtractionContext) Fail(message string, cause error) bool {
	keepGoing := c.collector.Add(Problem{Path: c.path, Message: message, Cause: cause})
	return c.cfg.failureMode == CollectAll && keepGoing
}

// SerializationContext mirrors ExtractionContext for the write direction.
type SerializationContext struct {
	formats  *Formats
	version  Version
	userData map[string]any
	path     path.Path
}

// NewSerializationContext returns a root serialization context rooted at
// the document root path.
func NewSerializationContext(formats *Formats, version Version) *SerializationContext {
	return &SerializationContext{
		formats:  formats,
		version:  version,
		userData: make(map[string]any),
		path:     path.Root(),
	}
}

// Formats returns the active formats registry.
func (c *SerializationContext) Formats() *Formats { return c.formats }

// Version returns the active version triple.
func (c *SerializationContext) Version() Version { return c.version }

// Path returns the current path.
func (c *SerializationContext) Path() path.Path { return c.path }

// UserData returns the value stored under key, or nil if absent.
func (c *SerializationContext) UserData(key string) any { return c.userData[key] }

// SetUserData stores a value under key.
func (c *SerializationContext) SetUserData(key string, val any) { c.userData[key] = val }

// WithPath returns a child context identical to c but with the given path.
func (c *SerializationContext) WithPath(p path.Path) *SerializationContext {
	child := *c
	child.path = p
	return &child
}
