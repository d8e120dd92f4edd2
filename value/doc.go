// Package value implements the JSON value DOM: a tagged union over
// null, boolean, integer, decimal, string, array, and object variants.
//
// A Value deep-copies on assignment through exported constructors and
// mutators; there is no back-pointer from a child Value to its containing
// array or object. Object iteration order is always key-sorted
// (lexicographic on bytes), matching the canonical emission order used by
// [tessera/encode].
//
// Kind ordering for [Value.Compare] is fixed: Null < Bool < Number <
// String < Array < Object, with Integer and Decimal comparing numerically
// against each other within the Number band.
package value
