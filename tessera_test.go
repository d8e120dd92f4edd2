package tessera_test

import (
	"testing"

	"github.com/elan-voss/tessera"
	"github.com/elan-voss/tessera/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndMarshalRoundTrip(t *testing.T) {
	v, err := tessera.Parse([]byte(`{"a": 1, "b": [true, null, "x"]}`))
	require.NoError(t, err)

	out, err := tessera.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1, "b": [true, null, "x"]}`, string(out))
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := tessera.Parse([]byte(`{"a": }`))
	assert.Error(t, err)
}

func TestParseLenientAcceptsCommentsAndTrailingCommas(t *testing.T) {
	src := []byte(`{
		// a line comment
		"a": 1,
	}`)
	v, err := tessera.ParseLenient(src)
	require.NoError(t, err)
	n, err := v.AtKey("a")
	require.NoError(t, err)
	i, err := n.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)
}

func TestExtractInt64FromRoot(t *testing.T) {
	v, err := tessera.Extract[int64]([]byte("42"), nil, format.Version{Major: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestExtractPropagatesParseError(t *testing.T) {
	_, err := tessera.Extract[int64]([]byte("{"), nil, format.Version{Major: 1})
	assert.Error(t, err)
}

func TestSerializeInt64UsesBuiltinAdapter(t *testing.T) {
	out, err := tessera.Serialize[int64](42, nil, format.Version{Major: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(out))
}

func TestExtractSerializeRoundTrip(t *testing.T) {
	v, err := tessera.Extract[int64]([]byte("7"), nil, format.Version{Major: 1})
	require.NoError(t, err)

	out, err := tessera.Serialize[int64](v, nil, format.Version{Major: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `7`, string(out))
}
