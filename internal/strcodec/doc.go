// Package strcodec converts between decoded UTF-8 text and JSON's
// wire string representation: short escapes (\n \t ...), \uXXXX escapes
// for non-printable or non-ASCII code points, and UTF-16 surrogate pairs
// for code points outside the Basic Multilingual Plane.
//
// This package sits at the foundation tier alongside [lex]; it has no
// dependencies on any other package in this module.
package strcodec
