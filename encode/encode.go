package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/elan-voss/tessera/internal/strcodec"
	"github.com/elan-voss/tessera/value"
)

// Marshal renders v as JSON bytes. With no options it produces compact
// output; WithIndent switches to pretty-printed output.
func Marshal(v value.Value, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	var e encoder
	e.cfg = cfg
	e.writeValue(v, 0)
	return e.buf, nil
}

type encoder struct {
	buf []byte
	cfg *config
}

func (e *encoder) pretty() bool {
	return e.cfg.indent != ""
}

func (e *encoder) newline(depth int) {
	if !e.pretty() {
		return
	}
	e.buf = append(e.buf, '\n')
	e.buf = append(e.buf, strings.Repeat(e.cfg.indent, depth)...)
}

func (e *encoder) writeValue(v value.Value, depth int) {
	switch v.Kind() {
	case value.Null:
		e.buf = append(e.buf, "null"...)
	case value.Bool:
		b, _ := v.AsBool()
		if b {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case value.Integer:
		i, _ := v.AsInteger()
		e.buf = strconv.AppendInt(e.buf, i, 10)
	case value.Decimal:
		d, _ := v.AsDecimal()
		e.writeDecimal(d)
	case value.String:
		s, _ := v.AsString()
		e.writeString(s)
	case value.Array:
		e.writeArray(v, depth)
	case value.Object:
		e.writeObject(v, depth)
	}
}

// writeDecimal renders a float64, collapsing non-finite values to null
// since JSON has no representation for NaN or infinities.
func (e *encoder) writeDecimal(d float64) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		e.buf = append(e.buf, "null"...)
		return
	}
	e.buf = strconv.AppendFloat(e.buf, d, 'g', -1, 64)
}

func (e *encoder) writeString(s string) {
	e.buf = append(e.buf, '"')
	e.buf = strcodec.EncodeString(e.buf, s)
	e.buf = append(e.buf, '"')
}

func (e *encoder) writeArray(v value.Value, depth int) {
	elems, _ := v.Elements()
	e.buf = append(e.buf, '[')
	for i, elem := range elems {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline(depth + 1)
		e.writeValue(elem, depth+1)
	}
	if len(elems) > 0 {
		e.newline(depth)
	}
	e.buf = append(e.buf, ']')
}

func (e *encoder) writeObject(v value.Value, depth int) {
	keys, _ := v.Keys()
	e.buf = append(e.buf, '{')
	for i, k := range keys {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline(depth + 1)
		e.writeString(k)
		e.buf = append(e.buf, ':')
		if e.pretty() {
			e.buf = append(e.buf, ' ')
		}
		field, _ := v.AtKey(k)
		e.writeValue(field, depth+1)
	}
	if len(keys) > 0 {
		e.newline(depth)
	}
	e.buf = append(e.buf, '}')
}
