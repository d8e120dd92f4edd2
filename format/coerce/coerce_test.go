package coerce

import (
	"testing"

	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractInt64(t *testing.T, src string) (int64, error) {
	t.Helper()
	ix := index.Build([]byte(src))
	require.True(t, ix.Success())
	r := reader.New(ix)
	ctx := format.NewExtractionContext(Default(), format.Version{1, 0, 0})
	return format.Extract[int64](ctx, r)
}

func TestCoerceStringToInt64(t *testing.T) {
	v, err := extractInt64(t, `"42"`)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestCoerceDecimalTruncatesToInt64(t *testing.T) {
	v, err := extractInt64(t, "3.9")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestCoerceMalformedStringFails(t *testing.T) {
	_, err := extractInt64(t, `"not a number"`)
	assert.Error(t, err)
}
