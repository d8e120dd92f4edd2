package builtin

import (
	"fmt"
	"strconv"

	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/reader"
	"github.com/elan-voss/tessera/value"
)

func unexpectedKind(ctx *format.ExtractionContext, r *reader.Reader, want string) (any, error) {
	n, ok := r.Current()
	var got string
	if ok {
		got = n.Type.String()
	} else {
		got = "end of input"
	}
	err := fmt.Errorf("expected %s, got %s", want, got)
	ctx.Fail(err.Error(), nil)
	return nil, err
}

// integerToken returns the raw digits of the current node if it is an
// integer token, advancing the reader past it.
func integerToken(ctx *format.ExtractionContext, r *reader.Reader) (string, bool) {
	n, ok := r.Current()
	if !ok || n.Type != index.IntegerToken {
		return "", false
	}
	tok := string(r.Index().Token(n))
	r.Next()
	return tok, true
}

func boolAdapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok {
				return unexpectedKind(ctx, r, "bool")
			}
			switch n.Type {
			case index.LiteralTrue:
				r.Next()
				return true, nil
			case index.LiteralFalse:
				r.Next()
				return false, nil
			default:
				return unexpectedKind(ctx, r, "bool")
			}
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			b, ok := val.(bool)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected bool, got %T", val)
			}
			return value.NewBool(b), nil
		},
	}
}

func stringAdapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok || (n.Type != index.StringCanonical && n.Type != index.StringEscaped) {
				return unexpectedKind(ctx, r, "string")
			}
			s, err := r.Index().DecodeToken(n)
			if err != nil {
				ctx.Fail("invalid string token", err)
				return nil, err
			}
			r.Next()
			return s, nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			s, ok := val.(string)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected string, got %T", val)
			}
			return value.NewString(s), nil
		},
	}
}

func float64Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok || (n.Type != index.DecimalToken && n.Type != index.IntegerToken) {
				return unexpectedKind(ctx, r, "float64")
			}
			tok := string(r.Index().Token(n))
			r.Next()
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				ctx.Fail("invalid number token", err)
				return nil, err
			}
			return f, nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			f, ok := val.(float64)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected float64, got %T", val)
			}
			return value.NewDecimal(f), nil
		},
	}
}

func float32Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok || (n.Type != index.DecimalToken && n.Type != index.IntegerToken) {
				return unexpectedKind(ctx, r, "float32")
			}
			tok := string(r.Index().Token(n))
			r.Next()
			f, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				ctx.Fail("invalid number token", err)
				return nil, err
			}
			return float32(f), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			f, ok := val.(float32)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected float32, got %T", val)
			}
			return value.NewDecimal(float64(f)), nil
		},
	}
}

func int64Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "int64")
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return v, nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			i, ok := val.(int64)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected int64, got %T", val)
			}
			return value.NewInteger(i), nil
		},
	}
}

func int32Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "int32")
			}
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return int32(v), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			i, ok := val.(int32)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected int32, got %T", val)
			}
			return value.NewInteger(int64(i)), nil
		},
	}
}

func int16Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "int16")
			}
			v, err := strconv.ParseInt(tok, 10, 16)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return int16(v), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			i, ok := val.(int16)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected int16, got %T", val)
			}
			return value.NewInteger(int64(i)), nil
		},
	}
}

func int8Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "int8")
			}
			v, err := strconv.ParseInt(tok, 10, 8)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return int8(v), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			i, ok := val.(int8)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected int8, got %T", val)
			}
			return value.NewInteger(int64(i)), nil
		},
	}
}

func uint64Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "uint64")
			}
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return v, nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			u, ok := val.(uint64)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected uint64, got %T", val)
			}
			return value.NewInteger(int64(u)), nil
		},
	}
}

func uint32Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "uint32")
			}
			v, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return uint32(v), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			u, ok := val.(uint32)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected uint32, got %T", val)
			}
			return value.NewInteger(int64(u)), nil
		},
	}
}

func uint16Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "uint16")
			}
			v, err := strconv.ParseUint(tok, 10, 16)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return uint16(v), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			u, ok := val.(uint16)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected uint16, got %T", val)
			}
			return value.NewInteger(int64(u)), nil
		},
	}
}

func uint8Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			tok, ok := integerToken(ctx, r)
			if !ok {
				return unexpectedKind(ctx, r, "uint8")
			}
			v, err := strconv.ParseUint(tok, 10, 8)
			if err != nil {
				ctx.Fail("integer out of range", err)
				return nil, err
			}
			return uint8(v), nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			u, ok := val.(uint8)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected uint8, got %T", val)
			}
			return value.NewInteger(int64(u)), nil
		},
	}
}

func valueAdapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			wi := r.WordIndex()
			n, ok := r.Current()
			if !ok {
				return unexpectedKind(ctx, r, "value")
			}
			v, _, err := r.Index().ExtractNodeAt(wi)
			if err != nil {
				ctx.Fail("invalid value subtree", err)
				return nil, err
			}
			if n.Type.IsContainerOpener() {
				r.NextStructure()
			} else {
				r.Next()
			}
			return v, nil
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			v, ok := val.(value.Value)
			if !ok {
				return value.Value{}, fmt.Errorf("builtin: expected value.Value, got %T", val)
			}
			return v, nil
		},
	}
}
