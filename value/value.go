package value

import (
	"fmt"
	"math"
	"sort"
)

// KindError reports that a typed accessor was called on a Value holding a
// different kind.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("value: expected %s, got %s", e.Want, e.Got)
}

// OutOfRangeError reports an array or object lookup that must not
// auto-create the missing element.
type OutOfRangeError struct {
	Message string
}

func (e *OutOfRangeError) Error() string {
	return "value: " + e.Message
}

// Value is a tagged union holding exactly one of the seven JSON variants.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	d    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// NewNull returns the null Value. Equivalent to the zero Value.
func NewNull() Value { return Value{kind: Null} }

// NewBool returns a Value of kind Bool.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewInteger returns a Value of kind Integer.
func NewInteger(i int64) Value { return Value{kind: Integer, i: i} }

// NewDecimal returns a Value of kind Decimal.
func NewDecimal(d float64) Value { return Value{kind: Decimal, d: d} }

// NewString returns a Value of kind String.
func NewString(s string) Value { return Value{kind: String, s: s} }

// NewArray returns a Value of kind Array containing a deep copy of elems.
func NewArray(elems ...Value) Value {
	arr := make([]Value, len(elems))
	for i, e := range elems {
		arr[i] = e.Clone()
	}
	return Value{kind: Array, arr: arr}
}

// NewObject returns a Value of kind Object containing a deep copy of
// fields.
func NewObject(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v.Clone()
	}
	return Value{kind: Object, obj: obj}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds the null variant.
func (v Value) IsNull() bool { return v.kind == Null }

// Clone deep-copies v. Array and object heap storage is never shared
// between a Value and its clone.
func (v Value) Clone() Value {
	switch v.kind {
	case Array:
		arr := make([]Value, len(v.arr))
		for i, e := range v.arr {
			arr[i] = e.Clone()
		}
		return Value{kind: Array, arr: arr}
	case Object:
		obj := make(map[string]Value, len(v.obj))
		for k, e := range v.obj {
			obj[k] = e.Clone()
		}
		return Value{kind: Object, obj: obj}
	default:
		return v
	}
}

// AsBool returns the Bool variant's value, or a *KindError if v is not
// Bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, &KindError{Want: Bool, Got: v.kind}
	}
	return v.b, nil
}

// AsInteger returns the Integer variant's value, or a *KindError if v is
// not Integer.
func (v Value) AsInteger() (int64, error) {
	if v.kind != Integer {
		return 0, &KindError{Want: Integer, Got: v.kind}
	}
	return v.i, nil
}

// AsDecimal returns v as a float64. Integer values are widened; no other
// implicit conversion is permitted.
func (v Value) AsDecimal() (float64, error) {
	switch v.kind {
	case Decimal:
		return v.d, nil
	case Integer:
		return float64(v.i), nil
	default:
		return 0, &KindError{Want: Decimal, Got: v.kind}
	}
}

// AsString returns the String variant's value, or a *KindError if v is not
// String.
func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", &KindError{Want: String, Got: v.kind}
	}
	return v.s, nil
}

// Len returns the element/field/byte count for String, Array, or Object
// kinds, or a *KindError otherwise.
func (v Value) Len() (int, error) {
	switch v.kind {
	case String:
		return len(v.s), nil
	case Array:
		return len(v.arr), nil
	case Object:
		return len(v.obj), nil
	default:
		return 0, &KindError{Want: Array, Got: v.kind}
	}
}

// Empty reports whether v is an empty String, Array, or Object.
func (v Value) Empty() (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// At returns the array element at index i. Returns an *OutOfRangeError if
// i is out of bounds, and a *KindError if v is not an Array.
func (v Value) At(i int) (Value, error) {
	if v.kind != Array {
		return Value{}, &KindError{Want: Array, Got: v.kind}
	}
	if i < 0 || i >= len(v.arr) {
		return Value{}, &OutOfRangeError{Message: fmt.Sprintf("array index %d out of range [0,%d)", i, len(v.arr))}
	}
	return v.arr[i], nil
}

// Elements returns a copy of the array's elements in order. Returns a
// *KindError if v is not an Array.
func (v Value) Elements() ([]Value, error) {
	if v.kind != Array {
		return nil, &KindError{Want: Array, Got: v.kind}
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return out, nil
}

// PushBack appends elem to the array, returning the updated Value. Returns
// a *KindError if v is not an Array.
func (v Value) PushBack(elem Value) (Value, error) {
	if v.kind != Array {
		return Value{}, &KindError{Want: Array, Got: v.kind}
	}
	arr := make([]Value, len(v.arr)+1)
	copy(arr, v.arr)
	arr[len(v.arr)] = elem.Clone()
	return Value{kind: Array, arr: arr}, nil
}

// PopBack removes and returns the last array element and the updated
// Value. Returns an *OutOfRangeError if the array is empty.
func (v Value) PopBack() (Value, Value, error) {
	if v.kind != Array {
		return Value{}, Value{}, &KindError{Want: Array, Got: v.kind}
	}
	if len(v.arr) == 0 {
		return Value{}, Value{}, &OutOfRangeError{Message: "pop from empty array"}
	}
	last := v.arr[len(v.arr)-1]
	arr := make([]Value, len(v.arr)-1)
	copy(arr, v.arr[:len(v.arr)-1])
	return last, Value{kind: Array, arr: arr}, nil
}

// Resize returns a copy of the array truncated or null-extended to length
// n. Returns a *KindError if v is not an Array.
func (v Value) Resize(n int) (Value, error) {
	if v.kind != Array {
		return Value{}, &KindError{Want: Array, Got: v.kind}
	}
	arr := make([]Value, n)
	copy(arr, v.arr)
	return Value{kind: Array, arr: arr}, nil
}

// PushFront prepends elem to the array, returning the updated Value.
// Returns a *KindError if v is not an Array.
func (v Value) PushFront(elem Value) (Value, error) {
	if v.kind != Array {
		return Value{}, &KindError{Want: Array, Got: v.kind}
	}
	arr := make([]Value, len(v.arr)+1)
	arr[0] = elem.Clone()
	copy(arr[1:], v.arr)
	return Value{kind: Array, arr: arr}, nil
}

// PopFront removes and returns the first array element and the updated
// Value. Returns an *OutOfRangeError if the array is empty.
func (v Value) PopFront() (Value, Value, error) {
	if v.kind != Array {
		return Value{}, Value{}, &KindError{Want: Array, Got: v.kind}
	}
	if len(v.arr) == 0 {
		return Value{}, Value{}, &OutOfRangeError{Message: "pop from empty array"}
	}
	first := v.arr[0]
	arr := make([]Value, len(v.arr)-1)
	copy(arr, v.arr[1:])
	return first, Value{kind: Array, arr: arr}, nil
}

// Assign returns an array of length n with every element set to a clone
// of val, discarding any existing contents. Returns a *KindError if v is
// not an Array.
func (v Value) Assign(n int, val Value) (Value, error) {
	if v.kind != Array {
		return Value{}, &KindError{Want: Array, Got: v.kind}
	}
	arr := make([]Value, n)
	for i := range arr {
		arr[i] = val.Clone()
	}
	return Value{kind: Array, arr: arr}, nil
}

// EraseRange returns a copy of the array with the half-open element range
// [start, end) removed. Returns an *OutOfRangeError if the range is
// invalid, and a *KindError if v is not an Array.
func (v Value) EraseRange(start, end int) (Value, error) {
	if v.kind != Array {
		return Value{}, &KindError{Want: Array, Got: v.kind}
	}
	if start < 0 || end < start || end > len(v.arr) {
		return Value{}, &OutOfRangeError{Message: fmt.Sprintf("array erase range [%d,%d) out of bounds for length %d", start, end, len(v.arr))}
	}
	arr := make([]Value, 0, len(v.arr)-(end-start))
	arr = append(arr, v.arr[:start]...)
	arr = append(arr, v.arr[end:]...)
	return Value{kind: Array, arr: arr}, nil
}

// Find returns the value for key in an Object, or (Value{}, false) if
// absent. Returns a *KindError if v is not an Object.
func (v Value) Find(key string) (Value, bool, error) {
	if v.kind != Object {
		return Value{}, false, &KindError{Want: Object, Got: v.kind}
	}
	val, ok := v.obj[key]
	return val, ok, nil
}

// AtKey returns the value for key in an Object, failing with
// *OutOfRangeError if the key is absent. This is the "must exist" sibling
// of Find.
func (v Value) AtKey(key string) (Value, error) {
	val, ok, err := v.Find(key)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, &OutOfRangeError{Message: fmt.Sprintf("no such key %q", key)}
	}
	return val, nil
}

// Insert returns a copy of the object with key set to val, replacing any
// existing entry. Returns a *KindError if v is not an Object.
func (v Value) Insert(key string, val Value) (Value, error) {
	if v.kind != Object {
		return Value{}, &KindError{Want: Object, Got: v.kind}
	}
	obj := make(map[string]Value, len(v.obj)+1)
	for k, e := range v.obj {
		obj[k] = e
	}
	obj[key] = val.Clone()
	return Value{kind: Object, obj: obj}, nil
}

// Erase returns a copy of the object with key removed. Returns a
// *KindError if v is not an Object.
func (v Value) Erase(key string) (Value, error) {
	if v.kind != Object {
		return Value{}, &KindError{Want: Object, Got: v.kind}
	}
	obj := make(map[string]Value, len(v.obj))
	for k, e := range v.obj {
		if k != key {
			obj[k] = e
		}
	}
	return Value{kind: Object, obj: obj}, nil
}

// Count reports 1 if key is present in the object, 0 otherwise. Returns a
// *KindError if v is not an Object.
func (v Value) Count(key string) (int, error) {
	if v.kind != Object {
		return 0, &KindError{Want: Object, Got: v.kind}
	}
	if _, ok := v.obj[key]; ok {
		return 1, nil
	}
	return 0, nil
}

// Keys returns the object's keys in sorted (lexicographic on bytes) order,
// matching canonical emission order. Returns a *KindError if v is not an
// Object.
func (v Value) Keys() ([]string, error) {
	if v.kind != Object {
		return nil, &KindError{Want: Object, Got: v.kind}
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Compare returns -1, 0, or 1 comparing v to other, implementing the total
// order fixed by kind ordering (Null < Bool < Number < String < Array <
// Object), with Integer and Decimal cross-comparing numerically.
func (v Value) Compare(other Value) int {
	if v.kind == Integer && other.kind == Decimal {
		return compareFloat(float64(v.i), other.d)
	}
	if v.kind == Decimal && other.kind == Integer {
		return compareFloat(v.d, float64(other.i))
	}

	vs, os := v.kind.strata(), other.kind.strata()
	if vs != os {
		if vs < os {
			return -1
		}
		return 1
	}

	switch v.kind {
	case Null:
		return 0
	case Bool:
		if v.b == other.b {
			return 0
		}
		if !v.b {
			return -1
		}
		return 1
	case Integer:
		switch {
		case v.i < other.i:
			return -1
		case v.i > other.i:
			return 1
		default:
			return 0
		}
	case Decimal:
		return compareFloat(v.d, other.d)
	case String:
		return compareString(v.s, other.s)
	case Array:
		return compareArray(v.arr, other.arr)
	case Object:
		return compareObject(v.obj, other.obj)
	default:
		return 0
	}
}

// Equal reports whether v.Compare(other) == 0.
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// decimalTolerance mirrors the spec's |a-b| < 10*denorm_min equality band.
var decimalTolerance = 10 * math.SmallestNonzeroFloat64

func compareFloat(a, b float64) int {
	diff := a - b
	if diff > -decimalTolerance && diff < decimalTolerance {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareArray(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareObject(a, b map[string]Value) int {
	ak := sortedKeys(a)
	bk := sortedKeys(b)
	n := min(len(ak), len(bk))
	for i := 0; i < n; i++ {
		if c := compareString(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := a[ak[i]].Compare(b[bk[i]]); c != 0 {
			return c
		}
	}
	switch {
	case len(ak) < len(bk):
		return -1
	case len(ak) > len(bk):
		return 1
	default:
		return 0
	}
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
