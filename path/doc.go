// Package path implements addressing of subvalues within a JSON tree: a
// sequence of steps, each either an object key or an array index.
//
// Paths are immutable; the [Path] Key and Index methods return a new Path
// rather than mutating the receiver, so a Path can be shared and extended
// along multiple branches without aliasing. [Parse] accepts the
// dotted/bracketed string form (".a.b[2][\"c\"]") and String renders it
// back, writing identifier-safe keys as ".key" and other keys as
// ["key"], so Parse(p.String()) yields a path equal to p. This lets a
// path round-trip through text for error messages and extraction_context
// path tracking.
package path
