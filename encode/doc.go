// Package encode renders a value.Value tree back to JSON bytes, in either
// compact or pretty form, through a shared visitor over the value DOM.
package encode
