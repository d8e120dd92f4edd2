package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchString(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		strict        bool
		matched       bool
		needsUnescape bool
		length        int
	}{
		{"empty string", `""`, false, true, false, 2},
		{"simple", `"hello"`, false, true, false, 7},
		{"escape sequence", `"a\nb"`, false, true, true, 6},
		{"unicode escape", "\"\\u2622\"", false, true, true, 8},
		{"surrogate pair", "\"\\ud83d\\ude00\"", false, true, true, 14},
		{"multi-byte utf8", "\"☢\"", false, true, false, 5},
		{"unterminated", `"abc`, false, false, false, 0},
		{"bad escape", `"a\qb"`, false, false, false, 0},
		{"truncated unicode escape", `"\u12"`, false, false, false, 0},
		{"control char lenient", "\"a\tb\"", false, true, false, 5},
		{"control char strict rejected", "\"a\tb\"", true, false, false, 0},
		{"not a string", `abc`, false, false, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched, needsUnescape, length := MatchString([]byte(tc.input), 0, tc.strict)
			assert.Equal(t, tc.matched, matched)
			if matched {
				assert.Equal(t, tc.needsUnescape, needsUnescape)
				assert.Equal(t, tc.length, length)
			}
		})
	}
}

func FuzzMatchString(f *testing.F) {
	seeds := []string{`""`, `"hello"`, `"a\nb"`, `"☢"`, `"unterminated`, `"😀"`}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		matched, _, length := MatchString([]byte(s), 0, false)
		if !matched {
			return
		}
		if length < 2 || length > len(s) {
			t.Fatalf("MatchString(%q) returned out-of-range length %d", s, length)
		}
	})
}
