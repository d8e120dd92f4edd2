package index

import "github.com/tidwall/jsonc"

// Lenient preprocesses source with jsonc.ToJSON before handing it to
// Build, accepting `//` line comments, trailing commas, and the other
// non-standard constructs jsonc recognizes, in addition to the `/* */`
// block comments Build already tolerates via WithComments. jsonc.ToJSON
// is length-preserving (each stripped construct is replaced with
// whitespace of equal byte length), so error offsets reported by the
// returned Index still point into the original source bytes.
func Lenient(source []byte, opts ...Option) *Index {
	return Build(jsonc.ToJSON(source), opts...)
}
