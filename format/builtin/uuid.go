package builtin

import (
	"fmt"

	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/reader"
	"github.com/elan-voss/tessera/value"
	"github.com/google/uuid"
)

var uuidZero uuid.UUID

// uuidAdapter extracts a uuid.UUID from a canonical-form string token
// ("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx") and serializes one back to that
// same form, treating UUID as a base scalar type alongside the numeric
// and string adapters rather than a composed object.
func uuidAdapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok || (n.Type != index.StringCanonical && n.Type != index.StringEscaped) {
				return unexpectedKind(ctx, r, "uuid")
			}
			s, err := r.Index().DecodeToken(n)
			if err != nil {
				ctx.Fail("invalid string token", err)
				return nil, err
			}
			r.Next()
			id, err := uuid.Parse(s)
			if err != nil {
				ctx.Fail("malformed uuid", err)
				return nil, err
			}
			return id, nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			id, ok := val.(uuid.UUID)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected uuid.UUID, got %T", val)
			}
			return value.NewString(id.String()), nil
		},
	}
}
