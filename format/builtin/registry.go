package builtin

import (
	"reflect"

	"github.com/elan-voss/tessera/format"
	"github.com/elan-voss/tessera/value"
)

// Register installs every builtin adapter into f: bool, the signed and
// unsigned integer widths, float32/float64, string, value.Value
// (identity), and uuid.UUID.
func Register(f *format.Formats) {
	f.Register(reflect.TypeOf(false), boolAdapter())
	f.Register(reflect.TypeOf(""), stringAdapter())
	f.Register(reflect.TypeOf(float64(0)), float64Adapter())
	f.Register(reflect.TypeOf(float32(0)), float32Adapter())
	f.Register(reflect.TypeOf(int64(0)), int64Adapter())
	f.Register(reflect.TypeOf(int32(0)), int32Adapter())
	f.Register(reflect.TypeOf(int16(0)), int16Adapter())
	f.Register(reflect.TypeOf(int8(0)), int8Adapter())
	f.Register(reflect.TypeOf(uint64(0)), uint64Adapter())
	f.Register(reflect.TypeOf(uint32(0)), uint32Adapter())
	f.Register(reflect.TypeOf(uint16(0)), uint16Adapter())
	f.Register(reflect.TypeOf(uint8(0)), uint8Adapter())
	f.Register(reflect.TypeOf(value.Value{}), valueAdapter())
	f.Register(reflect.TypeOf(uuidZero), uuidAdapter())
}

// Default returns a new registry with every builtin adapter registered.
// Callers typically compose application-specific registries with this one
// as a parent: format.New(builtin.Default()).
func Default() *format.Formats {
	f := format.New()
	Register(f)
	return f
}
