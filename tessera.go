package tessera

import (
	"github.com/elan-voss/tessera/encode"
	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/format/builtin"
	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/reader"
	"github.com/elan-voss/tessera/value"
)

// Parse builds a parse index from data and extracts it into a Value tree
// in one step. Use index.Build directly when the index itself (for a
// Reader, or repeated ExtractNodeAt calls) is wanted instead of a
// fully-materialized tree.
func Parse(data []byte, opts ...index.Option) (value.Value, error) {
	ix := index.Build(data, opts...)
	return ix.ExtractTree(opts...)
}

// ParseLenient is Parse preprocessed through index.Lenient: `//` line
// comments and trailing commas are tolerated in addition to the `/* */`
// block comments Parse already accepts.
func ParseLenient(data []byte, opts ...index.Option) (value.Value, error) {
	ix := index.Lenient(data, opts...)
	return ix.ExtractTree(opts...)
}

// Marshal encodes v as JSON text.
func Marshal(v value.Value, opts ...encode.Option) ([]byte, error) {
	return encode.Marshal(v, opts...)
}

// DefaultFormats is the base formats registry used by Extract when no
// registry is supplied: the strict builtin scalar adapters plus
// value.Value and uuid.UUID. Application code typically composes its own
// registry with format.New(tessera.DefaultFormats()) as a parent.
func DefaultFormats() *format.Formats {
	return builtin.Default()
}

// Extract builds a parse index from data, then extracts a T from its
// root using formats. Pass nil to use DefaultFormats.
func Extract[T any](data []byte, formats *format.Formats, version format.Version, opts ...index.Option) (T, error) {
	var zero T
	if formats == nil {
		formats = DefaultFormats()
	}
	ix := index.Build(data, opts...)
	if !ix.Success() {
		ixErr, _ := ix.FirstError()
		return zero, ixErr
	}
	r := reader.New(ix)
	ctx := format.NewExtractionContext(formats, version)
	return format.Extract[T](ctx, r)
}

// Serialize runs val through the registered serializer for T, then
// encodes the resulting Value as JSON text. Pass nil to use
// DefaultFormats. This is the write-side counterpart to Extract; Marshal
// stays the direct value.Value-to-text path with no registry lookup.
func Serialize[T any](val T, formats *format.Formats, version format.Version, opts ...encode.Option) ([]byte, error) {
	if formats == nil {
		formats = DefaultFormats()
	}
	ctx := format.NewSerializationContext(formats, version)
	v, err := format.Serialize[T](ctx, val)
	if err != nil {
		return nil, err
	}
	return encode.Marshal(v, opts...)
}
