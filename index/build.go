package index

import (
	"bytes"

	"github.com/elan-voss/tessera/internal/lex"
)

// Build performs a single left-to-right scan over source, producing a
// parse index. It never panics and never returns nil; malformed input
// yields an index whose Success method reports false.
func Build(source []byte, opts ...Option) *Index {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	b := newWordBuilder()
	s := &scanner{source: source, cfg: cfg, b: b}

	b.emitHeader(0, DocumentStart)
	s.skipWS()
	if s.errCode == NoError {
		s.parseValue(0)
	}
	if s.errCode == NoError && cfg.completeParse {
		s.skipWS()
		if s.errCode == NoError && s.pos < len(source) {
			s.raise(ExpectedEOF, s.pos)
		}
	}
	if s.errCode == NoError && cfg.requireDocument && len(b.words) > 1 {
		root := unpackType(b.words[1])
		if root != ObjectBegin && root != ArrayBegin {
			s.raise(UnexpectedToken, 0)
		}
	}
	b.emitHeader(s.pos, DocumentEnd)

	ix := &Index{source: source, words: b.words}
	if s.errCode != NoError {
		ix.hasError = true
		ix.firstErrorCode = s.errCode
		ix.firstErrorOffset = s.errOffset
	}
	return ix
}

// scanner holds the mutable state of a single Build pass. It deliberately
// uses recursion (bounded by maxStructureDepth) rather than an explicit
// structure stack; Go's goroutine stacks grow on demand, and the depth
// cap keeps worst-case recursion shallow by construction.
type scanner struct {
	source    []byte
	cfg       *config
	b         *wordBuilder
	pos       int
	errCode   ErrorCode
	errOffset int
}

// fail records the first error seen. Later calls are no-ops so the
// earliest failure in source order wins.
func (s *scanner) fail(code ErrorCode, offset int) {
	if s.errCode == NoError {
		s.errCode = code
		s.errOffset = offset
	}
}

// raise records the failure and emits a corresponding error node, then
// returns false for use in a single-expression return.
func (s *scanner) raise(code ErrorCode, offset int) bool {
	s.fail(code, offset)
	if code == DepthExceeded && s.cfg.logger != nil {
		s.cfg.logger.Warn("index: structure depth exceeded", "offset", offset, "max_depth", s.cfg.maxStructureDepth)
	}
	s.b.emitHeader(offset, ErrorNode)
	s.b.emit(uint64(code))
	return false
}

func (s *scanner) skipWS() {
	for s.pos < len(s.source) {
		c := s.source[s.pos]
		switch c {
		case ' ', '\t', '\n', '\r':
			s.pos++
		case '/':
			if !s.cfg.comments || s.pos+1 >= len(s.source) || s.source[s.pos+1] != '*' {
				return
			}
			end := bytes.Index(s.source[s.pos+2:], []byte("*/"))
			if end < 0 {
				s.raise(InvalidComment, s.pos)
				s.pos = len(s.source)
				return
			}
			s.pos += 2 + end + 2
		default:
			return
		}
	}
}

func (s *scanner) parseValue(depth int) bool {
	s.skipWS()
	if s.pos >= len(s.source) {
		return s.raise(EOF, s.pos)
	}
	switch c := s.source[s.pos]; {
	case c == '{':
		return s.parseObject(depth)
	case c == '[':
		return s.parseArray(depth)
	case c == '"':
		return s.parseString(false)
	case c == 't':
		return s.parseLiteral("true", LiteralTrue)
	case c == 'f':
		return s.parseLiteral("false", LiteralFalse)
	case c == 'n':
		return s.parseLiteral("null", LiteralNull)
	case c == '-' || (c >= '0' && c <= '9'):
		return s.parseNumber()
	default:
		return s.raise(UnexpectedToken, s.pos)
	}
}

func (s *scanner) parseLiteral(word string, t NodeType) bool {
	n := len(word)
	if s.pos+n > len(s.source) || string(s.source[s.pos:s.pos+n]) != word {
		return s.raise(InvalidLiteral, s.pos)
	}
	s.b.emitHeader(s.pos, t)
	s.b.emit(uint64(n))
	s.pos += n
	return true
}

func (s *scanner) parseNumber() bool {
	matched, isDecimal, length := lex.MatchNumber(s.source, s.pos)
	if !matched {
		return s.raise(InvalidNumber, s.pos)
	}
	t := IntegerToken
	if isDecimal {
		t = DecimalToken
	}
	s.b.emitHeader(s.pos, t)
	s.b.emit(uint64(length))
	s.pos += length
	return true
}

func (s *scanner) parseString(isKey bool) bool {
	matched, needsUnescape, length := lex.MatchString(s.source, s.pos, s.cfg.encoding == UTF8Strict)
	if !matched {
		code := InvalidString
		if isKey {
			code = ExpectedString
		}
		return s.raise(code, s.pos)
	}
	var t NodeType
	switch {
	case isKey && needsUnescape:
		t = KeyEscaped
	case isKey:
		t = KeyCanonical
	case needsUnescape:
		t = StringEscaped
	default:
		t = StringCanonical
	}
	s.b.emitHeader(s.pos, t)
	s.b.emit(uint64(length))
	s.pos += length
	return true
}

func (s *scanner) parseArray(depth int) bool {
	if depth+1 > s.cfg.maxStructureDepth {
		return s.raise(DepthExceeded, s.pos)
	}
	openerIdx := s.b.emitHeader(s.pos, ArrayBegin)
	closeSlot := openerIdx + 1
	countSlot := openerIdx + 2
	s.b.emit(0)
	s.b.emit(0)
	s.pos++

	count := 0
	s.skipWS()
	if s.pos < len(s.source) && s.source[s.pos] == ']' {
		// empty array
	} else {
		for {
			if !s.parseValue(depth + 1) {
				return false
			}
			count++
			s.skipWS()
			if s.pos >= len(s.source) {
				return s.raise(EOF, s.pos)
			}
			if s.source[s.pos] != ',' {
				break
			}
			s.pos++
			s.skipWS()
			if s.pos < len(s.source) && s.source[s.pos] == ']' {
				return s.raise(CloseAfterComma, s.pos)
			}
		}
	}
	if s.pos >= len(s.source) || s.source[s.pos] != ']' {
		return s.raise(MismatchedClose, s.pos)
	}
	s.b.patch(closeSlot, uint64(len(s.b.words)))
	s.b.patch(countSlot, uint64(count))
	s.b.emitHeader(s.pos, ArrayEnd)
	s.pos++
	return true
}

func (s *scanner) parseObject(depth int) bool {
	if depth+1 > s.cfg.maxStructureDepth {
		return s.raise(DepthExceeded, s.pos)
	}
	openerIdx := s.b.emitHeader(s.pos, ObjectBegin)
	closeSlot := openerIdx + 1
	countSlot := openerIdx + 2
	s.b.emit(0)
	s.b.emit(0)
	s.pos++

	count := 0
	s.skipWS()
	if s.pos < len(s.source) && s.source[s.pos] == '}' {
		// empty object
	} else {
		for {
			s.skipWS()
			if s.pos >= len(s.source) || s.source[s.pos] != '"' {
				return s.raise(ExpectedString, s.pos)
			}
			if !s.parseString(true) {
				return false
			}
			s.skipWS()
			if s.pos >= len(s.source) || s.source[s.pos] != ':' {
				return s.raise(ExpectedKeyDelimiter, s.pos)
			}
			s.pos++
			if !s.parseValue(depth + 1) {
				return false
			}
			count++
			s.skipWS()
			if s.pos >= len(s.source) {
				return s.raise(EOF, s.pos)
			}
			if s.source[s.pos] != ',' {
				break
			}
			s.pos++
			s.skipWS()
			if s.pos < len(s.source) && s.source[s.pos] == '}' {
				return s.raise(CloseAfterComma, s.pos)
			}
		}
	}
	if s.pos >= len(s.source) || s.source[s.pos] != '}' {
		return s.raise(MismatchedClose, s.pos)
	}
	s.b.patch(closeSlot, uint64(len(s.b.words)))
	s.b.patch(countSlot, uint64(count))
	s.b.emitHeader(s.pos, ObjectEnd)
	s.pos++
	return true
}
