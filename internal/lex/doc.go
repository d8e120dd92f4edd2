// Package lex recognizes JSON number and string tokens in a byte buffer.
//
// Both matchers are pure delimiters: they report whether a token starting
// at a given offset is well-formed and how many bytes it consumes, but they
// never convert the recognized bytes into a numeric or decoded-string
// value. That conversion happens later (strcodec for strings, strconv for
// numbers) so the index builder can stay on a single allocation-free pass.
//
// This package sits at the foundation tier alongside [strcodec]; it has no
// dependencies on any other package in this module.
package lex
