package format

import (
	"fmt"
	"reflect"

	"github.com/elan-voss/tessera/value"
)

// NoSerializerError reports that no adapter is registered for typ,
// searching the registry and its parents.
type NoSerializerError struct {
	Type reflect.Type
}

func (e *NoSerializerError) Error() string {
	return fmt.Sprintf("format: no serializer registered for %s", e.Type)
}

// Serialize invokes the registered serializer for T against val.
func Serialize[T any](ctx *SerializationContext, val T) (value.Value, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	adapter, ok := ctx.formats.Lookup(typ)
	if !ok {
		return value.Value{}, &NoSerializerError{Type: typ}
	}
	return adapter.Serialize(ctx, val)
}

// SerializeSub serializes val as if writing into subpath, so any error
// wrapping or user data scoped during the call sees the full path from
// the document root.
func SerializeSub[T any](ctx *SerializationContext, sub string, val T) (value.Value, error) {
	parsed, err := parseSubpath(sub)
	if err != nil {
		return value.Value{}, err
	}
	child := ctx.WithPath(joinPaths(ctx.Path(), parsed))
	return Serialize[T](child, val)
}
