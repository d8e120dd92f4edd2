package value

import (
	"testing"

	"github.com/elan-voss/tessera/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtPath(t *testing.T) {
	obj := NewObject(map[string]Value{
		"a": NewObject(map[string]Value{
			"b": NewInteger(10),
		}),
		"c": NewInteger(25),
	})

	p, err := path.Parse(".a.b")
	require.NoError(t, err)
	v, err := obj.AtPath(p)
	require.NoError(t, err)
	i, err := v.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(10), i)

	p2, err := path.Parse(".c")
	require.NoError(t, err)
	v2, err := obj.AtPath(p2)
	require.NoError(t, err)
	i2, err := v2.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(25), i2)
}

func TestWithPathAutoExtendsArray(t *testing.T) {
	root := NewNull()
	p, err := path.Parse(".items[2]")
	require.NoError(t, err)

	updated, err := root.WithPath(p, NewString("x"))
	require.NoError(t, err)

	items, err := updated.AtKey("items")
	require.NoError(t, err)
	n, err := items.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	first, err := items.At(0)
	require.NoError(t, err)
	assert.True(t, first.IsNull())

	last, err := items.At(2)
	require.NoError(t, err)
	s, err := last.AsString()
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}
