// Package tessera provides a JSON value model, a streaming parser that
// builds a compact parse index, a pull-style reader over that index, path
// addressing, and a type-driven serialization framework with pluggable
// extractors, serializers, and adapters.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - internal/lex: number/string token-matching primitives
//	  - internal/strcodec: JSON string wire encode/decode
//
//	Core tier:
//	  - value: the tagged-union value DOM
//	  - path: path steps, parsing, and rendering
//	  - index: parse index builder and tree extraction
//	  - reader: pull cursor over a parse index
//	  - encode: compact and pretty encoders
//	  - format: the formats registry, adapter contracts, extraction and
//	    serialization contexts, and problem accumulation
//	  - format/builtin: the default strict scalar adapters
//	  - format/coerce: the secondary, cross-kind coercing adapters
//
// # Entry Points
//
//	v, err := tessera.Parse(data)
//	v, err := tessera.ParseLenient(data) // tolerates // comments and trailing commas
//	out, err := tessera.Marshal(v, encode.WithIndent("  "))
//	id, err := tessera.Extract[uuid.UUID](data, formats, format.Version{Major: 1})
//
// # Subpackages
//
//   - [github.com/elan-voss/tessera/value]: the value DOM
//   - [github.com/elan-voss/tessera/path]: path addressing
//   - [github.com/elan-voss/tessera/index]: parse index builder
//   - [github.com/elan-voss/tessera/reader]: pull cursor
//   - [github.com/elan-voss/tessera/encode]: compact/pretty encoders
//   - [github.com/elan-voss/tessera/format]: serialization framework
//   - [github.com/elan-voss/tessera/format/builtin]: default adapters
//   - [github.com/elan-voss/tessera/format/coerce]: coercing adapters
package tessera
