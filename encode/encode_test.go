package encode

import (
	"math"
	"testing"

	"github.com/elan-voss/tessera/value"
	"github.com/stretchr/testify/assert"
)

func TestMarshalCompactScalars(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want string
	}{
		{"null", value.NewNull(), "null"},
		{"true", value.NewBool(true), "true"},
		{"false", value.NewBool(false), "false"},
		{"integer", value.NewInteger(-42), "-42"},
		{"decimal", value.NewDecimal(3.5), "3.5"},
		{"string", value.NewString("hi"), `"hi"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal(tc.v)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestMarshalNonFiniteDecimalBecomesNull(t *testing.T) {
	got, err := Marshal(value.NewDecimal(math.NaN()))
	assert.NoError(t, err)
	assert.Equal(t, "null", string(got))

	got, err = Marshal(value.NewDecimal(math.Inf(1)))
	assert.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestMarshalCompactArrayAndObject(t *testing.T) {
	arr := value.NewArray(value.NewInteger(1), value.NewInteger(2))
	got, err := Marshal(arr)
	assert.NoError(t, err)
	assert.Equal(t, "[1,2]", string(got))

	obj := value.NewObject(map[string]value.Value{
		"b": value.NewInteger(2),
		"a": value.NewInteger(1),
	})
	got, err = Marshal(obj)
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, string(got))
}

func TestMarshalPrettyIndents(t *testing.T) {
	obj := value.NewObject(map[string]value.Value{
		"a": value.NewArray(value.NewInteger(1)),
	})
	got, err := Marshal(obj, WithIndent("  "))
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", string(got))
}

func TestMarshalEmptyContainers(t *testing.T) {
	got, err := Marshal(value.NewArray(), WithIndent("  "))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	got, err = Marshal(value.NewObject(nil), WithIndent("  "))
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}
