package strcodec

import (
	"fmt"
	"unicode/utf8"
)

// DecodeError reports a malformed escape or surrogate sequence found while
// decoding a JSON wire string. Offset is relative to the start of the
// string's content (not including the surrounding quotes).
type DecodeError struct {
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("strcodec: decode error at offset %d: %s", e.Offset, e.Message)
}

// Mode selects how decoded supplementary-plane code points are represented.
type Mode int

const (
	// ModeUTF8 combines surrogate pairs into a single code point and emits
	// standard UTF-8. This is the default mode.
	ModeUTF8 Mode = iota
	// ModeCESU8 emits each surrogate half as its own 3-byte UTF-8 sequence
	// without combining them, per the CESU-8 encoding.
	ModeCESU8
)

// DecodeString decodes the JSON wire form s (the content between, but not
// including, the surrounding quotes) into UTF-8 text appended to dst.
//
// A high surrogate must be followed by a matching \uXXXX low surrogate
// escape; lone surrogates of either kind produce a *DecodeError.
func DecodeString(dst []byte, s string, mode Mode) ([]byte, error) {
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			dst = append(dst, c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return nil, &DecodeError{Offset: i, Message: "trailing backslash"}
		}
		switch s[i+1] {
		case '"':
			dst = append(dst, '"')
			i += 2
		case '\\':
			dst = append(dst, '\\')
			i += 2
		case '/':
			dst = append(dst, '/')
			i += 2
		case 'b':
			dst = append(dst, '\b')
			i += 2
		case 'f':
			dst = append(dst, '\f')
			i += 2
		case 'n':
			dst = append(dst, '\n')
			i += 2
		case 'r':
			dst = append(dst, '\r')
			i += 2
		case 't':
			dst = append(dst, '\t')
			i += 2
		case 'u':
			var advanced int
			var err error
			dst, advanced, err = decodeUnicodeEscape(dst, s, i, mode)
			if err != nil {
				return nil, err
			}
			i += advanced
		default:
			return nil, &DecodeError{Offset: i, Message: fmt.Sprintf("invalid escape %q", s[i+1])}
		}
	}
	return dst, nil
}

// decodeUnicodeEscape handles one \uXXXX escape starting at s[i], combining
// it with a following low-surrogate escape if s[i] begins a high surrogate.
// Returns the updated dst and the number of bytes of s consumed starting
// at i (always a multiple of 6, or 12 for a combined pair).
func decodeUnicodeEscape(dst []byte, s string, i int, mode Mode) ([]byte, int, error) {
	unit, err := readHex4(s, i+2)
	if err != nil {
		return nil, 0, &DecodeError{Offset: i, Message: err.Error()}
	}

	switch {
	case unit >= highSurrogateLo && unit < highSurrogateHi:
		if mode == ModeCESU8 {
			return appendSurrogateAsUTF8(dst, unit), 6, nil
		}
		if i+7 >= len(s) || s[i+6] != '\\' || s[i+6+1] != 'u' {
			return nil, 0, &DecodeError{Offset: i, Message: "high surrogate not followed by low surrogate escape"}
		}
		low, err := readHex4(s, i+8)
		if err != nil {
			return nil, 0, &DecodeError{Offset: i + 6, Message: err.Error()}
		}
		if low < lowSurrogateLo || low >= lowSurrogateHi {
			return nil, 0, &DecodeError{Offset: i + 6, Message: "expected low surrogate"}
		}
		r := surrogateBase + ((unit - highSurrogateLo) << surrogateBitWidth) + (low - lowSurrogateLo)
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		return append(dst, buf[:n]...), 12, nil
	case unit >= lowSurrogateLo && unit < lowSurrogateHi:
		return nil, 0, &DecodeError{Offset: i, Message: "lone low surrogate"}
	default:
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], unit)
		return append(dst, buf[:n]...), 6, nil
	}
}

// appendSurrogateAsUTF8 encodes a lone surrogate half as its own 3-byte
// UTF-8 sequence (CESU-8 style) rather than rejecting or combining it.
func appendSurrogateAsUTF8(dst []byte, unit rune) []byte {
	return append(dst,
		byte(0xE0|(unit>>12)),
		byte(0x80|((unit>>6)&0x3F)),
		byte(0x80|(unit&0x3F)),
	)
}

func readHex4(s string, at int) (rune, error) {
	if at+4 > len(s) {
		return 0, fmt.Errorf("truncated \\u escape")
	}
	var v rune
	for k := 0; k < 4; k++ {
		c := s[at+k]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
		v = v<<4 | d
	}
	return v, nil
}
