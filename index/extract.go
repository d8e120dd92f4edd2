package index

import (
	"strconv"

	"github.com/elan-voss/tessera/internal/strcodec"
	"github.com/elan-voss/tessera/value"
	"golang.org/x/text/unicode/norm"
)

// ExtractTree walks the index and materializes it as a value.Value tree.
// It fails if the index recorded a build error; callers that want a
// best-effort partial tree should check Success first and, if false,
// decide whether a partial extraction is acceptable for their use case.
func (ix *Index) ExtractTree(opts ...Option) (value.Value, error) {
	if !ix.Success() {
		errv, _ := ix.FirstError()
		return value.Value{}, errv
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if len(ix.words) <= 1 {
		return value.NewNull(), nil
	}
	v, _, err := ix.extractAt(1, cfg)
	return v, err
}

// ExtractNodeAt materializes the subtree rooted at word index i, without
// requiring the index to cover a complete, error-free document. Returns
// the word index immediately following the extracted subtree, for
// callers (such as package reader's adapters) that need to keep walking.
func (ix *Index) ExtractNodeAt(i int, opts ...Option) (value.Value, int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return ix.extractAt(i, cfg)
}

func (ix *Index) extractAt(i int, cfg *config) (value.Value, int, error) {
	n := ix.NodeAt(i)
	switch n.Type {
	case ObjectBegin:
		obj := make(map[string]value.Value, n.ElementCount)
		child := i + 3
		for k := 0; k < n.ElementCount; k++ {
			keyNode := ix.NodeAt(child)
			key, err := ix.decodeTokenString(keyNode, cfg)
			if err != nil {
				return value.Value{}, 0, err
			}
			child += wordCount(keyNode.Type)
			val, next, err := ix.extractAt(child, cfg)
			if err != nil {
				return value.Value{}, 0, err
			}
			obj[key] = val
			child = next
		}
		return value.NewObject(obj), n.CloseIndex + 1, nil

	case ArrayBegin:
		arr := make([]value.Value, 0, n.ElementCount)
		child := i + 3
		for k := 0; k < n.ElementCount; k++ {
			val, next, err := ix.extractAt(child, cfg)
			if err != nil {
				return value.Value{}, 0, err
			}
			arr = append(arr, val)
			child = next
		}
		return value.NewArray(arr...), n.CloseIndex + 1, nil

	case StringCanonical, StringEscaped:
		str, err := ix.decodeTokenString(n, cfg)
		if err != nil {
			return value.Value{}, 0, err
		}
		return value.NewString(str), i + wordCount(n.Type), nil

	case LiteralTrue:
		return value.NewBool(true), i + wordCount(n.Type), nil
	case LiteralFalse:
		return value.NewBool(false), i + wordCount(n.Type), nil
	case LiteralNull:
		return value.NewNull(), i + wordCount(n.Type), nil

	case IntegerToken:
		tok := string(ix.Token(n))
		iv, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			// Overflows a 64-bit integer; widen to decimal rather than
			// bounds-check, matching the module's no-overflow-check stance.
			fv, ferr := strconv.ParseFloat(tok, 64)
			if ferr != nil {
				return value.Value{}, 0, &Error{Code: InvalidNumber, Offset: n.Offset}
			}
			return value.NewDecimal(fv), i + wordCount(n.Type), nil
		}
		return value.NewInteger(iv), i + wordCount(n.Type), nil

	case DecimalToken:
		tok := string(ix.Token(n))
		fv, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return value.Value{}, 0, &Error{Code: InvalidNumber, Offset: n.Offset}
		}
		return value.NewDecimal(fv), i + wordCount(n.Type), nil

	case ErrorNode:
		return value.Value{}, 0, &Error{Code: n.Code, Offset: n.Offset}

	default:
		return value.Value{}, 0, &Error{Code: Internal, Offset: n.Offset}
	}
}

// DecodeToken resolves a string or key node's raw wire form (including
// surrounding quotes) to its decoded content, using default (non-normalized)
// decoding. Intended for callers, such as package reader, that need a
// token's text without extracting a full value.Value tree.
func (ix *Index) DecodeToken(n Node) (string, error) {
	return ix.decodeTokenString(n, defaultConfig())
}

// decodeTokenString resolves a string or key token's raw wire form
// (including surrounding quotes) to its decoded content.
func (ix *Index) decodeTokenString(n Node, cfg *config) (string, error) {
	raw := ix.Token(n)
	content := raw[1 : len(raw)-1]

	var s string
	if n.Type == StringEscaped || n.Type == KeyEscaped {
		dst, err := strcodec.DecodeString(nil, string(content), strcodec.ModeUTF8)
		if err != nil {
			return "", &Error{Code: InvalidString, Offset: n.Offset}
		}
		s = string(dst)
	} else {
		s = string(content)
	}

	if cfg.unicodeNormalize {
		s = norm.NFC.String(s)
	}
	return s, nil
}
