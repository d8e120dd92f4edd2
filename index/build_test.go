package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScalars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		typ  NodeType
	}{
		{"true", "true", LiteralTrue},
		{"false", "false", LiteralFalse},
		{"null", "null", LiteralNull},
		{"integer", "42", IntegerToken},
		{"negative integer", "-17", IntegerToken},
		{"decimal", "3.14", DecimalToken},
		{"exponent", "1e10", DecimalToken},
		{"string", `"hello"`, StringCanonical},
		{"escaped string", `"a\nb"`, StringEscaped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix := Build([]byte(tc.src))
			require.True(t, ix.Success())
			require.GreaterOrEqual(t, ix.WordLen(), 2)
			root := ix.NodeAt(1)
			assert.Equal(t, tc.typ, root.Type)
		})
	}
}

func TestBuildObject(t *testing.T) {
	ix := Build([]byte(`{"a": 1, "b": [2, 3]}`))
	require.True(t, ix.Success())

	root := ix.NodeAt(1)
	require.Equal(t, ObjectBegin, root.Type)
	assert.Equal(t, 2, root.ElementCount)

	closer := ix.NodeAt(root.CloseIndex)
	assert.Equal(t, ObjectEnd, closer.Type)
}

func TestBuildEmptyContainers(t *testing.T) {
	ix := Build([]byte(`{}`))
	require.True(t, ix.Success())
	root := ix.NodeAt(1)
	assert.Equal(t, ObjectBegin, root.Type)
	assert.Equal(t, 0, root.ElementCount)

	ix2 := Build([]byte(`[]`))
	require.True(t, ix2.Success())
	root2 := ix2.NodeAt(1)
	assert.Equal(t, ArrayBegin, root2.Type)
	assert.Equal(t, 0, root2.ElementCount)
}

func TestBuildNestedArray(t *testing.T) {
	ix := Build([]byte(`[[1, 2], [3, [4]]]`))
	require.True(t, ix.Success())
	root := ix.NodeAt(1)
	assert.Equal(t, ArrayBegin, root.Type)
	assert.Equal(t, 2, root.ElementCount)
}

func TestBuildMalformedReportsError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code ErrorCode
	}{
		{"trailing comma array", `[1, 2, ]`, CloseAfterComma},
		{"trailing comma object", `{"a": 1, }`, CloseAfterComma},
		{"unterminated object", `{"a": 1`, EOF},
		{"mismatched close", `[1, 2}`, MismatchedClose},
		{"bad literal", `tru`, InvalidLiteral},
		{"bad number", `-`, InvalidNumber},
		{"object key not string", `{1: 2}`, ExpectedString},
		{"missing colon", `{"a" 1}`, ExpectedKeyDelimiter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix := Build([]byte(tc.src))
			require.False(t, ix.Success())
			errv, ok := ix.FirstError()
			require.True(t, ok)
			assert.Equal(t, tc.code, errv.Code)
		})
	}
}

func TestBuildCompleteParseRejectsTrailingGarbage(t *testing.T) {
	ix := Build([]byte(`1 2`))
	require.False(t, ix.Success())
	errv, _ := ix.FirstError()
	assert.Equal(t, ExpectedEOF, errv.Code)
}

func TestBuildCompleteParseDisabledAllowsTrailing(t *testing.T) {
	ix := Build([]byte(`1 2`), WithCompleteParse(false))
	require.True(t, ix.Success())
}

func TestBuildRequireDocumentRejectsScalar(t *testing.T) {
	ix := Build([]byte(`42`), WithRequireDocument())
	require.False(t, ix.Success())
}

func TestBuildRequireDocumentAcceptsObject(t *testing.T) {
	ix := Build([]byte(`{}`), WithRequireDocument())
	require.True(t, ix.Success())
}

func TestBuildDepthExceeded(t *testing.T) {
	deep := ""
	for i := 0; i < 5; i++ {
		deep += "["
	}
	for i := 0; i < 5; i++ {
		deep += "]"
	}
	ix := Build([]byte(deep), WithMaxStructureDepth(2))
	require.False(t, ix.Success())
	errv, _ := ix.FirstError()
	assert.Equal(t, DepthExceeded, errv.Code)
}

func nestedArrays(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "["
	}
	for i := 0; i < n; i++ {
		s += "]"
	}
	return s
}

func TestBuildDepthExactlyAtCapSucceeds(t *testing.T) {
	ix := Build([]byte(nestedArrays(2)), WithMaxStructureDepth(2))
	require.True(t, ix.Success())
}

func TestBuildDepthOneBeyondCapFails(t *testing.T) {
	ix := Build([]byte(nestedArrays(3)), WithMaxStructureDepth(2))
	require.False(t, ix.Success())
	errv, _ := ix.FirstError()
	assert.Equal(t, DepthExceeded, errv.Code)
}

func TestBuildComments(t *testing.T) {
	ix := Build([]byte(`{/* note */ "a": 1}`))
	require.True(t, ix.Success())

	ix2 := Build([]byte(`{/* note */ "a": 1}`), WithComments(false))
	require.False(t, ix2.Success())
}

func TestBuildStrictRejectsControlChars(t *testing.T) {
	ix := Build([]byte("\"a\x01b\""), WithStringEncoding(UTF8Strict))
	require.False(t, ix.Success())

	ix2 := Build([]byte("\"a\x01b\""))
	require.True(t, ix2.Success())
}

func TestDebugString(t *testing.T) {
	ix := Build([]byte(`{"a": [1, true]}`))
	require.True(t, ix.Success())
	dump := ix.DebugString()
	assert.Contains(t, dump, "^@0")
	assert.Contains(t, dump, "{@0")
	assert.Contains(t, dump, "}@")
}
