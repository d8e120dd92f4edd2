// Package reader provides a pull-style cursor over a parse index: callers
// advance token by token (or skip whole structures) rather than receiving
// push callbacks, and can ask for the JSON path of whatever the cursor is
// currently sitting on.
package reader
