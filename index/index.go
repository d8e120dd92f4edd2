package index

// Index is the result of a single scanning pass over JSON source text: a
// flat array of packed code words plus a reference to the source bytes
// they point into. It is read-only once built.
type Index struct {
	source []byte
	words  []uint64

	firstErrorCode   ErrorCode
	firstErrorOffset int
	hasError         bool
}

// Success reports whether the scan completed without recording an error
// node. A successful index still might not cover the whole input if
// WithCompleteParse(false) was used and the caller only wanted the first
// value.
func (ix *Index) Success() bool {
	return !ix.hasError
}

// FirstError returns the first error recorded during the build, if any.
func (ix *Index) FirstError() (*Error, bool) {
	if !ix.hasError {
		return nil, false
	}
	return &Error{Code: ix.firstErrorCode, Offset: ix.firstErrorOffset}, true
}

// Source returns the original source bytes the index points into.
func (ix *Index) Source() []byte {
	return ix.source
}

// WordLen returns the number of code words in the index.
func (ix *Index) WordLen() int {
	return len(ix.words)
}

// NodeAt decodes the node whose header word is at word index i.
func (ix *Index) NodeAt(i int) Node {
	w0 := ix.words[i]
	t := unpackType(w0)
	n := Node{Type: t, Offset: unpackOffset(w0)}
	switch {
	case t.isContainerOpener():
		n.CloseIndex = int(ix.words[i+1])
		n.ElementCount = int(ix.words[i+2])
	case t == ErrorNode:
		n.Code = ErrorCode(ix.words[i+1])
	case t.hasLengthWord():
		n.Length = int(ix.words[i+1])
	}
	return n
}

// NextIndex returns the word index immediately following the node at i,
// i.e. the word index of the next node in source order. For a container
// opener that is its first child (or its closer, if empty), not the
// sibling after the container.
func (ix *Index) NextIndex(i int) int {
	return i + wordCount(unpackType(ix.words[i]))
}

// Token returns the raw source bytes covered by a length-bearing node.
func (ix *Index) Token(n Node) []byte {
	return ix.source[n.Offset : n.Offset+n.Length]
}

// NodeCount returns the number of nodes (not code words) in the index.
func (ix *Index) NodeCount() int {
	count := 0
	for i := 0; i < len(ix.words); {
		i += wordCount(unpackType(ix.words[i]))
		count++
	}
	return count
}

// wordBuilder accumulates packed code words with doubling growth,
// matching the append-heavy access pattern of a single scanning pass.
type wordBuilder struct {
	words []uint64
}

func newWordBuilder() *wordBuilder {
	return &wordBuilder{words: make([]uint64, 0, 16)}
}

func (b *wordBuilder) emitHeader(offset int, t NodeType) int {
	idx := len(b.words)
	b.words = append(b.words, packHeader(offset, t))
	return idx
}

func (b *wordBuilder) emit(word uint64) {
	b.words = append(b.words, word)
}

func (b *wordBuilder) patch(i int, word uint64) {
	b.words[i] = word
}
