package value

import (
	"fmt"

	"github.com/elan-voss/tessera/path"
)

// AtPath traverses v following p, returning an *OutOfRangeError if any
// intermediate step is missing or a *KindError if an intermediate value
// has the wrong kind for the next step.
func (v Value) AtPath(p path.Path) (Value, error) {
	cur := v
	for _, step := range p.Steps() {
		var err error
		if step.IsKey() {
			cur, err = cur.AtKey(step.Key())
		} else {
			cur, err = cur.At(step.Index())
		}
		if err != nil {
			return Value{}, err
		}
	}
	return cur, nil
}

// WithPath returns a copy of v with the value at p set to val, creating
// intermediate objects and arrays as needed. Arrays auto-extend with null
// holes up to the requested index, matching spec semantics for at_path
// construction.
func (v Value) WithPath(p path.Path, val Value) (Value, error) {
	steps := p.Steps()
	if len(steps) == 0 {
		return val, nil
	}
	return setStep(v, steps, val)
}

func setStep(cur Value, steps []path.Step, val Value) (Value, error) {
	step := steps[0]
	rest := steps[1:]

	if step.IsKey() {
		if cur.kind == Null {
			cur = NewObject(nil)
		}
		if cur.kind != Object {
			return Value{}, &KindError{Want: Object, Got: cur.kind}
		}
		child, ok, err := cur.Find(step.Key())
		if err != nil {
			return Value{}, err
		}
		if !ok {
			child = NewNull()
		}
		if len(rest) == 0 {
			return cur.Insert(step.Key(), val)
		}
		updated, err := setStep(child, rest, val)
		if err != nil {
			return Value{}, err
		}
		return cur.Insert(step.Key(), updated)
	}

	if cur.kind == Null {
		cur = NewArray()
	}
	if cur.kind != Array {
		return Value{}, &KindError{Want: Array, Got: cur.kind}
	}
	idx := step.Index()
	if idx < 0 {
		return Value{}, &OutOfRangeError{Message: fmt.Sprintf("negative array index %d", idx)}
	}
	arr := make([]Value, len(cur.arr))
	copy(arr, cur.arr)
	for len(arr) <= idx {
		arr = append(arr, NewNull())
	}
	if len(rest) == 0 {
		arr[idx] = val.Clone()
		return Value{kind: Array, arr: arr}, nil
	}
	updated, err := setStep(arr[idx], rest, val)
	if err != nil {
		return Value{}, err
	}
	arr[idx] = updated
	return Value{kind: Array, arr: arr}, nil
}
