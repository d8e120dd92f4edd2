// Package coerce is the secondary adapter composition: extractors that
// convert across kinds rather than requiring an exact match, e.g. a
// string "10" into an int64, or a decimal truncated into an integer.
// Its int64 and float64 adapters accept exact-kind number tokens as well.
// Formats lookup is by Go type and the first registry holding that type
// wins, so compose coerce ahead of format/builtin when lenient extraction
// is desired, e.g. format.New(coerce.Default(), builtin.Default()); with
// format/builtin first, its strict int64 and float64 adapters are used
// and the coercing ones are never reached.
package coerce
