package strcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"quote", `a"b`, `a\"b`},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "a\nb", `a\nb`},
		{"tab", "a\tb", `a\tb`},
		{"control char", "a\x01b", `a\u0001b`},
		{"three byte utf8", "☢", "\\u2622"},
		{"supplementary plane", "😀", "\\ud83d\\ude00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeString(nil, tc.input)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestDecodeString(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"quote", `a\"b`, `a"b`},
		{"backslash", `a\\b`, `a\b`},
		{"newline", `a\nb`, "a\nb"},
		{"unicode escape", "\\u2622", "☢"},
		{"surrogate pair", "\\ud83d\\ude00", "😀"},
		{"solidus escape", `a\/b`, "a/b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeString(nil, tc.input, ModeUTF8)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestDecodeStringErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"lone high surrogate", `\ud83d`},
		{"lone low surrogate", `\ude00`},
		{"high surrogate followed by non-escape", `\ud83dxx`},
		{"truncated escape", `\u12`},
		{"invalid escape letter", `\q`},
		{"trailing backslash", `abc\`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeString(nil, tc.input, ModeUTF8)
			require.Error(t, err)
		})
	}
}

func TestDecodeStringCESU8(t *testing.T) {
	got, err := DecodeString(nil, `\ud83d`, ModeCESU8)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{"hello", "☢", "😀", "a\nb\tc", `quote"inside`}
	for _, in := range inputs {
		encoded := string(EncodeString(nil, in))
		decoded, err := DecodeString(nil, encoded, ModeUTF8)
		require.NoError(t, err)
		assert.Equal(t, in, string(decoded))
	}
}

func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("☢")
	f.Add("😀")
	f.Fuzz(func(t *testing.T, s string) {
		encoded := string(EncodeString(nil, s))
		decoded, err := DecodeString(nil, encoded, ModeUTF8)
		if err != nil {
			t.Fatalf("decode of own encoding failed: %v", err)
		}
		if string(decoded) != s {
			t.Fatalf("round trip mismatch: %q != %q", decoded, s)
		}
	})
}
