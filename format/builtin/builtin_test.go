package builtin

import (
	"testing"

	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/reader"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract[T any](t *testing.T, src string) (T, error) {
	t.Helper()
	ix := index.Build([]byte(src))
	require.True(t, ix.Success())
	r := reader.New(ix)
	ctx := format.NewExtractionContext(Default(), format.Version{1, 0, 0})
	return format.Extract[T](ctx, r)
}

func TestBuiltinBool(t *testing.T) {
	v, err := extract[bool](t, "true")
	require.NoError(t, err)
	assert.True(t, v)
}

func TestBuiltinString(t *testing.T) {
	v, err := extract[string](t, `"hello"`)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestBuiltinInt64(t *testing.T) {
	v, err := extract[int64](t, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestBuiltinFloat64(t *testing.T) {
	v, err := extract[float64](t, "3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestBuiltinWrongKindFails(t *testing.T) {
	_, err := extract[int64](t, `"not a number"`)
	assert.Error(t, err)
}

func TestBuiltinUUID(t *testing.T) {
	id := uuid.New()
	v, err := extract[uuid.UUID](t, `"`+id.String()+`"`)
	require.NoError(t, err)
	assert.Equal(t, id, v)
}
