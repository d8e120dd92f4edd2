package path

// Step is one element of a Path: either an object key or an array index.
// Exactly one of IsKey/IsIndex is true.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// KeyStep returns a Step addressing an object field.
func KeyStep(key string) Step { return Step{key: key} }

// IndexStep returns a Step addressing an array element.
func IndexStep(index int) Step { return Step{index: index, isIndex: true} }

// IsIndex reports whether the step addresses an array element.
func (s Step) IsIndex() bool { return s.isIndex }

// IsKey reports whether the step addresses an object field.
func (s Step) IsKey() bool { return !s.isIndex }

// Key returns the object field name. Only meaningful when IsKey is true.
func (s Step) Key() string { return s.key }

// Index returns the array index. Only meaningful when IsIndex is true.
func (s Step) Index() int { return s.index }

// Equal reports whether s and other address the same step.
func (s Step) Equal(other Step) bool {
	if s.isIndex != other.isIndex {
		return false
	}
	if s.isIndex {
		return s.index == other.index
	}
	return s.key == other.key
}
