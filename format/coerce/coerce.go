package coerce

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/reader"
	"github.com/elan-voss/tessera/value"
)

// Register installs the coercing int64 and float64 adapters into f.
func Register(f *format.Formats) {
	f.Register(reflect.TypeOf(int64(0)), int64Adapter())
	f.Register(reflect.TypeOf(float64(0)), float64Adapter())
}

// Default returns a new registry with the coercing adapters registered.
func Default() *format.Formats {
	f := format.New()
	Register(f)
	return f
}

func int64Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok {
				err := fmt.Errorf("coerce: nothing to extract as int64")
				ctx.Fail(err.Error(), nil)
				return nil, err
			}
			switch n.Type {
			case index.IntegerToken:
				tok := string(r.Index().Token(n))
				r.Next()
				v, err := strconv.ParseInt(tok, 10, 64)
				if err != nil {
					ctx.Fail("integer out of range", err)
					return nil, err
				}
				return v, nil
			case index.DecimalToken:
				tok := string(r.Index().Token(n))
				r.Next()
				f, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					ctx.Fail("invalid decimal token", err)
					return nil, err
				}
				return int64(f), nil
			case index.StringCanonical, index.StringEscaped:
				s, err := r.Index().DecodeToken(n)
				if err != nil {
					ctx.Fail("invalid string token", err)
					return nil, err
				}
				r.Next()
				v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
				if err != nil {
					ctx.Fail(fmt.Sprintf("cannot coerce %q to int64", s), err)
					return nil, err
				}
				return v, nil
			default:
				err := fmt.Errorf("coerce: cannot coerce %s to int64", n.Type)
				ctx.Fail(err.Error(), nil)
				return nil, err
			}
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			i, ok := val.(int64)
			if !ok {
				return value.Value{}, fmt.Errorf("coerce: expected int64, got %T", val)
			}
			return value.NewInteger(i), nil
		},
	}
}

func float64Adapter() format.Adapter {
	return format.FuncAdapter{
		ExtractorFunc: func(ctx *format.ExtractionContext, r *reader.Reader) (any, error) {
			n, ok := r.Current()
			if !ok {
				err := fmt.Errorf("coerce: nothing to extract as float64")
				ctx.Fail(err.Error(), nil)
				return nil, err
			}
			switch n.Type {
			case index.DecimalToken, index.IntegerToken:
				tok := string(r.Index().Token(n))
				r.Next()
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					ctx.Fail("invalid number token", err)
					return nil, err
				}
				return v, nil
			case index.StringCanonical, index.StringEscaped:
				s, err := r.Index().DecodeToken(n)
				if err != nil {
					ctx.Fail("invalid string token", err)
					return nil, err
				}
				r.Next()
				v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					ctx.Fail(fmt.Sprintf("cannot coerce %q to float64", s), err)
					return nil, err
				}
				return v, nil
			default:
				err := fmt.Errorf("coerce: cannot coerce %s to float64", n.Type)
				ctx.Fail(err.Error(), nil)
				return nil, err
			}
		},
		SerializerFunc: func(ctx *format.SerializationContext, val any) (value.Value, error) {
			f, ok := val.(float64)
			if !ok {
				return value.Value{}, fmt.Errorf("coerce: expected float64, got %T", val)
			}
			return value.NewDecimal(f), nil
		},
	}
}
