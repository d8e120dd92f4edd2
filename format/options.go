package format

// FailureMode selects how extraction reacts to the first problem.
type FailureMode int

const (
	// FailImmediately stops extraction at the first problem. This is the
	// default.
	FailImmediately FailureMode = iota
	// CollectAll keeps extracting, accumulating every problem found, up
	// to MaxFailures.
	CollectAll
)

// DuplicateKeyPolicy names how an object with a repeated key (possible
// because the parse index preserves duplicates verbatim; see index.Build)
// is to be resolved. The configured policy is exposed to adapters through
// ExtractionContext.OnDuplicateKey. None of the adapters in this module
// consults it, and index.Index.ExtractTree and ExtractNodeAt always keep
// the last occurrence of a key.
type DuplicateKeyPolicy int

const (
	// ReplaceDuplicateKey selects keeping the last occurrence of a
	// repeated key. This is the default, matching encoding/json's own
	// behavior.
	ReplaceDuplicateKey DuplicateKeyPolicy = iota
	// IgnoreDuplicateKey selects keeping the first occurrence and
	// discarding later ones.
	IgnoreDuplicateKey
	// ErrorOnDuplicateKey selects reporting a Problem when a key repeats.
	ErrorOnDuplicateKey
)

// DefaultMaxFailures is the default cap on accumulated problems under
// CollectAll, chosen so a deeply malformed document doesn't grow an
// unbounded error report.
const DefaultMaxFailures = 10

// ExtractOption configures an extraction or serialization call.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	failureMode    FailureMode
	maxFailures    int
	onDuplicateKey DuplicateKeyPolicy
}

func defaultExtractConfig() *extractConfig {
	return &extractConfig{
		failureMode:    FailImmediately,
		maxFailures:    DefaultMaxFailures,
		onDuplicateKey: ReplaceDuplicateKey,
	}
}

// WithFailureMode selects FailImmediately (default) or CollectAll.
func WithFailureMode(mode FailureMode) ExtractOption {
	return func(c *extractConfig) { c.failureMode = mode }
}

// WithMaxFailures caps the number of problems accumulated under
// CollectAll. Default DefaultMaxFailures; 0 means unlimited.
func WithMaxFailures(n int) ExtractOption {
	return func(c *extractConfig) { c.maxFailures = n }
}

// WithOnDuplicateKey selects how a repeated object key is resolved.
// Default ReplaceDuplicateKey.
func WithOnDuplicateKey(policy DuplicateKeyPolicy) ExtractOption {
	return func(c *extractConfig) { c.onDuplicateKey = policy }
}
