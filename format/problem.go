package format

import (
	"fmt"
	"strings"

	"github.com/elan-voss/tessera/path"
)

// Problem is a single extraction or serialization failure: where it
// happened (Path) and what went wrong (Message, optionally wrapping a
// lower-level Cause such as a *value.KindError or *index.Error).
type Problem struct {
	Path    path.Path
	Message string
	Cause   error
}

func (p Problem) String() string {
	if p.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", p.Path.String(), p.Message, p.Cause)
	}
	return fmt.Sprintf("%s: %s", p.Path.String(), p.Message)
}

// ExtractionError wraps every Problem a Collector accumulated during a
// failed conversion.
type ExtractionError struct {
	Problems []Problem
}

func (e *ExtractionError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0].String()
	}
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("%d problems:\n  %s", len(e.Problems), strings.Join(lines, "\n  "))
}

// Collector accumulates Problems up to a configured limit, tracking
// whether that limit was hit so callers can distinguish a complete
// failure list from a truncated one.
type Collector struct {
	problems     []Problem
	maxFailures  int
	limitReached bool
}

// NewCollector returns a Collector that stops accepting new problems once
// maxFailures have been collected. A limit of 0 means unlimited.
func NewCollector(maxFailures int) *Collector {
	if maxFailures < 0 {
		maxFailures = 0
	}
	return &Collector{maxFailures: maxFailures}
}

// Add records a problem, unless the collector's limit has already been
// reached. Returns false once the limit is reached, which
// ExtractionContext.Fail in CollectAll mode treats as a signal to stop
// extraction early.
func (c *Collector) Add(p Problem) bool {
	if c.maxFailures > 0 && len(c.problems) >= c.maxFailures {
		c.limitReached = true
		return false
	}
	c.problems = append(c.problems, p)
	return c.maxFailures == 0 || len(c.problems) < c.maxFailures
}

// Problems returns a defensive copy of the accumulated problems.
func (c *Collector) Problems() []Problem {
	out := make([]Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

// LimitReached reports whether the collector dropped at least one
// problem because maxFailures was reached.
func (c *Collector) LimitReached() bool {
	return c.limitReached
}

// OK reports whether no problems were collected.
func (c *Collector) OK() bool {
	return len(c.problems) == 0
}

// Err returns an *ExtractionError wrapping the accumulated problems, or
// nil if there were none.
func (c *Collector) Err() error {
	if c.OK() {
		return nil
	}
	return &ExtractionError{Problems: c.Problems()}
}
