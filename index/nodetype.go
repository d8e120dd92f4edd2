package index

// NodeType is the closed set of token kinds a parse index can hold.
type NodeType uint8

const (
	DocumentStart NodeType = iota
	DocumentEnd
	ObjectBegin
	ObjectEnd
	ArrayBegin
	ArrayEnd
	StringCanonical
	StringEscaped
	KeyCanonical
	KeyEscaped
	LiteralTrue
	LiteralFalse
	LiteralNull
	IntegerToken
	DecimalToken
	ErrorNode
)

// debugTags gives each node type a single-character tag for [Index.DebugString].
var debugTags = [...]byte{
	DocumentStart:   '^',
	DocumentEnd:     '$',
	ObjectBegin:     '{',
	ObjectEnd:       '}',
	ArrayBegin:      '[',
	ArrayEnd:        ']',
	StringCanonical: 's',
	StringEscaped:   'S',
	KeyCanonical:    'k',
	KeyEscaped:      'K',
	LiteralTrue:     't',
	LiteralFalse:    'f',
	LiteralNull:     'n',
	IntegerToken:    'i',
	DecimalToken:    'd',
	ErrorNode:       '!',
}

// String returns a human-readable label for t.
func (t NodeType) String() string {
	switch t {
	case DocumentStart:
		return "document_start"
	case DocumentEnd:
		return "document_end"
	case ObjectBegin:
		return "object_begin"
	case ObjectEnd:
		return "object_end"
	case ArrayBegin:
		return "array_begin"
	case ArrayEnd:
		return "array_end"
	case StringCanonical:
		return "string_canonical"
	case StringEscaped:
		return "string_escaped"
	case KeyCanonical:
		return "key_canonical"
	case KeyEscaped:
		return "key_escaped"
	case LiteralTrue:
		return "literal_true"
	case LiteralFalse:
		return "literal_false"
	case LiteralNull:
		return "literal_null"
	case IntegerToken:
		return "integer"
	case DecimalToken:
		return "decimal"
	case ErrorNode:
		return "error"
	default:
		return "unknown"
	}
}

// DebugTag returns the single-character tag used by [Index.DebugString].
func (t NodeType) DebugTag() byte {
	if int(t) < len(debugTags) {
		return debugTags[t]
	}
	return '?'
}

// IsContainerOpener reports whether t begins a structure whose closer
// must be matched (object_begin or array_begin).
func (t NodeType) IsContainerOpener() bool {
	return t == ObjectBegin || t == ArrayBegin
}

func (t NodeType) isContainerOpener() bool {
	return t.IsContainerOpener()
}

// hasLengthWord reports whether t carries a byte-length trailing word
// (string/key tokens, literals, and numbers).
func (t NodeType) hasLengthWord() bool {
	switch t {
	case StringCanonical, StringEscaped, KeyCanonical, KeyEscaped,
		LiteralTrue, LiteralFalse, LiteralNull, IntegerToken, DecimalToken:
		return true
	default:
		return false
	}
}
