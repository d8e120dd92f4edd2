package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchNumber(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		matched   bool
		isDecimal bool
		length    int
	}{
		{"zero", "0", true, false, 1},
		{"negative zero", "-0", true, false, 2},
		{"simple integer", "42", true, false, 2},
		{"negative integer", "-42", true, false, 3},
		{"decimal", "3.14", true, true, 4},
		{"exponent lower", "1e10", true, true, 4},
		{"exponent upper", "1E10", true, true, 4},
		{"exponent plus", "1e+10", true, true, 5},
		{"exponent minus", "1e-10", true, true, 5},
		{"decimal with exponent", "1.5e10", true, true, 6},
		{"leading zero followed by digit rejected", "01", false, false, 0},
		{"negative leading zero followed by digit rejected", "-01", false, false, 0},
		{"trailing dot no digit", "1.", true, false, 1},
		{"trailing e no digit", "1e", true, false, 1},
		{"consumes up to comma", "42,", true, false, 2},
		{"not a number", "abc", false, false, 0},
		{"bare minus", "-", false, false, 0},
		{"bare dot", ".5", false, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched, isDecimal, length := MatchNumber([]byte(tc.input), 0)
			assert.Equal(t, tc.matched, matched)
			if matched {
				assert.Equal(t, tc.isDecimal, isDecimal)
				assert.Equal(t, tc.length, length)
			}
		})
	}
}

func TestMatchNumberOffset(t *testing.T) {
	buf := []byte(`{"x":42}`)
	matched, isDecimal, length := MatchNumber(buf, 5)
	assert.True(t, matched)
	assert.False(t, isDecimal)
	assert.Equal(t, 2, length)
}

func FuzzMatchNumber(f *testing.F) {
	seeds := []string{"0", "-0", "1.5e10", "01", "-", "1e", "1.", "9223372036854775807"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		matched, _, length := MatchNumber([]byte(s), 0)
		if !matched {
			return
		}
		if length < 0 || length > len(s) {
			t.Fatalf("MatchNumber(%q) returned out-of-range length %d", s, length)
		}
	})
}
