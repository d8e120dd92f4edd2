// Package builtin registers the default, strict scalar adapters: bool,
// the signed/unsigned integer widths, float32/float64, string, value.Value
// itself (identity), and uuid.UUID. Each extractor accepts exactly the
// node kind its Go type implies; no cross-kind coercion happens here (see
// format/coerce for that).
package builtin
