package format

import (
	"fmt"
	"reflect"

	"github.com/elan-voss/tessera/reader"
)

// NoExtractorError reports that no adapter is registered for typ,
// searching the registry and its parents.
type NoExtractorError struct {
	Type reflect.Type
}

func (e *NoExtractorError) Error() string {
	return fmt.Sprintf("format: no extractor registered for %s", e.Type)
}

// Extract invokes the registered extractor for T against whatever the
// reader's cursor currently sits on.
func Extract[T any](ctx *ExtractionContext, r *reader.Reader) (T, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	adapter, ok := ctx.formats.Lookup(typ)
	if !ok {
		return zero, &NoExtractorError{Type: typ}
	}
	result, err := adapter.Extract(ctx, r)
	if err != nil {
		return zero, err
	}
	t, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("format: extractor for %s returned %T", typ, result)
	}
	return t, nil
}

// ExtractSub extracts T from wherever the reader's cursor currently sits,
// with the context's path extended by subpath, so problems reported during
// the nested extraction carry the full path from the document root. It
// does not move the reader: the cursor is not advanced to the value that
// subpath addresses.
func ExtractSub[T any](ctx *ExtractionContext, r *reader.Reader, sub string) (T, error) {
	var zero T
	parsed, err := parseSubpath(sub)
	if err != nil {
		return zero, err
	}
	child := ctx.WithPath(joinPaths(ctx.Path(), parsed))
	return Extract[T](child, r)
}
