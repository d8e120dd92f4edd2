// Package index builds and holds a parse index: a compact, linear array
// of tagged tokens describing the structure of a JSON document, produced
// by a single left-to-right scan over source text.
//
// Each node occupies 1-3 packed uint64 code words. Word 0 always carries
// the byte offset of the token (high 56 bits) and the node's type tag (low
// 8 bits). Container openers (object_begin, array_begin) carry two
// trailing words recording the word index of their matching closer and
// the element count; other token-bearing nodes carry one trailing word
// (a byte length, or an error code for error nodes).
//
// Building an index never fails outright: [Build] always returns an
// *Index, possibly one whose Success method reports false and whose
// FirstError method reports the offending code and offset. This lets
// callers inspect as much structure as was recognized before the error,
// which matters for editor tooling and partial-document diagnostics.
package index
