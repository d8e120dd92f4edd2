package format

import (
	"github.com/elan-voss/tessera/reader"
	"github.com/elan-voss/tessera/value"
)

// Extractor converts whatever the reader's cursor currently sits on into
// a Go value of some concrete type, advancing the cursor past whatever it
// consumed. Implementations record each failure through ctx.Fail, so a
// single malformed field doesn't necessarily abort extraction of the rest
// of the document (see ExtractionContext.Fail and FailureMode), and also
// return it as the error result.
type Extractor interface {
	Extract(ctx *ExtractionContext, r *reader.Reader) (any, error)
}

// Serializer converts a Go value into a value.Value.
type Serializer interface {
	Serialize(ctx *SerializationContext, val any) (value.Value, error)
}

// Adapter is a type's combined extractor and serializer, the unit
// registered in a Formats registry.
type Adapter interface {
	Extractor
	Serializer
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(ctx *ExtractionContext, r *reader.Reader) (any, error)

// Extract implements Extractor.
func (f ExtractorFunc) Extract(ctx *ExtractionContext, r *reader.Reader) (any, error) {
	return f(ctx, r)
}

// SerializerFunc adapts a plain function to the Serializer interface.
type SerializerFunc func(ctx *SerializationContext, val any) (value.Value, error)

// Serialize implements Serializer.
func (f SerializerFunc) Serialize(ctx *SerializationContext, val any) (value.Value, error) {
	return f(ctx, val)
}

// FuncAdapter composes an ExtractorFunc and a SerializerFunc into an
// Adapter, for registering a type without declaring a named type. Extract
// and Serialize are promoted from the embedded fields.
type FuncAdapter struct {
	ExtractorFunc
	SerializerFunc
}
