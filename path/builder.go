package path

import (
	"strconv"
	"strings"
)

// Path is an immutable sequence of [Step]s addressing a subvalue within a
// JSON tree. The zero Path is the empty (root) path.
//
// Path methods never mutate the receiver; Key and Index return a new Path
// with one more step appended, so a Path can be extended along multiple
// branches from a shared prefix without aliasing.
type Path struct {
	steps []Step
}

// Root returns the empty path, denoting the document root.
func Root() Path { return Path{} }

// Key returns a new Path with a key step appended.
func (p Path) Key(key string) Path {
	steps := make([]Step, len(p.steps)+1)
	copy(steps, p.steps)
	steps[len(p.steps)] = KeyStep(key)
	return Path{steps: steps}
}

// Index returns a new Path with an index step appended.
func (p Path) Index(i int) Path {
	steps := make([]Step, len(p.steps)+1)
	copy(steps, p.steps)
	steps[len(p.steps)] = IndexStep(i)
	return Path{steps: steps}
}

// IsRoot reports whether p is the empty path.
func (p Path) IsRoot() bool { return len(p.steps) == 0 }

// Len returns the number of steps in p.
func (p Path) Len() int { return len(p.steps) }

// Steps returns a copy of p's steps in order.
func (p Path) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// At returns the step at index i.
func (p Path) At(i int) Step { return p.steps[i] }

// Last returns the final step and true, or (Step{}, false) if p is root.
func (p Path) Last() (Step, bool) {
	if len(p.steps) == 0 {
		return Step{}, false
	}
	return p.steps[len(p.steps)-1], true
}

// Parent returns p with its last step removed. Returns the root path if p
// is already root.
func (p Path) Parent() Path {
	if len(p.steps) == 0 {
		return p
	}
	steps := make([]Step, len(p.steps)-1)
	copy(steps, p.steps[:len(p.steps)-1])
	return Path{steps: steps}
}

// Equal reports whether p and other address the same sequence of steps.
func (p Path) Equal(other Path) bool {
	if len(p.steps) != len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if !s.Equal(other.steps[i]) {
			return false
		}
	}
	return true
}

// String renders p in dotted/bracketed form: ".key" for identifier-safe
// keys, ["key"] for arbitrary string keys, and [n] for indices. The empty
// path renders as "".
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p.steps {
		if s.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if isIdentifierSafe(s.key) {
			b.WriteByte('.')
			b.WriteString(s.key)
		} else {
			b.WriteString(`["`)
			b.WriteString(escapeKey(s.key))
			b.WriteString(`"]`)
		}
	}
	return b.String()
}

// isIdentifierSafe reports whether key can be rendered as ".key" without
// quoting: non-empty, starting with a letter or underscore, and
// containing only letters, digits, and underscores thereafter.
func isIdentifierSafe(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			if !isAlpha {
				return false
			}
			continue
		}
		if !isAlpha && !isDigit {
			return false
		}
	}
	return true
}

// escapeKey applies JSON string escaping to key for embedding inside a
// ["..."] bracket step.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString("\\u")
				hex := strconv.FormatInt(int64(r), 16)
				for i := len(hex); i < 4; i++ {
					b.WriteByte('0')
				}
				b.WriteString(hex)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
