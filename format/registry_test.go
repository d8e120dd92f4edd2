package format

import (
	"reflect"
	"testing"

	"github.com/elan-voss/tessera/reader"
	"github.com/elan-voss/tessera/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taggedIntAdapter(tag int) Adapter {
	return FuncAdapter{
		ExtractorFunc: func(ctx *ExtractionContext, r *reader.Reader) (any, error) {
			return tag, nil
		},
		SerializerFunc: func(ctx *SerializationContext, val any) (value.Value, error) {
			return value.NewInteger(int64(val.(int))), nil
		},
	}
}

func TestRegistryLookupLocal(t *testing.T) {
	f := New()
	f.Register(reflect.TypeOf(0), taggedIntAdapter(1))

	a, ok := f.Lookup(reflect.TypeOf(0))
	require.True(t, ok)
	assert.NotNil(t, a)
}

func TestRegistryLookupFallsBackToParent(t *testing.T) {
	base := New()
	base.Register(reflect.TypeOf(0), taggedIntAdapter(1))

	child := New(base)
	_, ok := child.Lookup(reflect.TypeOf(0))
	assert.True(t, ok)

	_, ok = child.Lookup(reflect.TypeOf(""))
	assert.False(t, ok)
}

func TestRegistryDuplicatePolicyIgnore(t *testing.T) {
	f := New()
	f.Register(reflect.TypeOf(0), taggedIntAdapter(1))
	f.Register(reflect.TypeOf(0), taggedIntAdapter(2))

	got, _ := f.Lookup(reflect.TypeOf(0))
	result, err := got.Extract(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestRegistryDuplicatePolicyReplace(t *testing.T) {
	f := New().WithDuplicatePolicy(DuplicateReplace)
	f.Register(reflect.TypeOf(0), taggedIntAdapter(1))
	f.Register(reflect.TypeOf(0), taggedIntAdapter(2))

	got, _ := f.Lookup(reflect.TypeOf(0))
	result, err := got.Extract(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result)
}

func TestCollectorLimitReached(t *testing.T) {
	c := NewCollector(2)
	assert.True(t, c.Add(Problem{Message: "one"}))
	assert.False(t, c.Add(Problem{Message: "two"}))
	assert.False(t, c.Add(Problem{Message: "three"}))
	assert.True(t, c.LimitReached())
	assert.Len(t, c.Problems(), 2)
}
