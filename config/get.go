package config

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/signadot/keepconf/node"
)

// The getters look up a scalar by dotted path. A missing scalar yields
// the zero value and false. A stored value of a type that does not widen
// to the requested one is reported as a diagnostic and then read from
// its literal; if that fails too the result is the zero value and false.

func get[T any](f *File, path string, want node.Type, as func(node.Value) (T, error)) (T, bool) {
	var zero T
	sc := f.root.Scalar(path)
	if sc == nil {
		return zero, false
	}
	res, err := as(sc.Value)
	if err != nil {
		f.emitf("%s: cannot read %s value %q as %s", path, sc.Value.Type, sc.Value.Literal(), want)
		return zero, false
	}
	if !node.Compatible(sc.Value.Type, want) {
		f.emitf("%s: %s value %q read as %s", path, sc.Value.Type, sc.Value.Literal(), want)
	}
	return res, true
}

func (f *File) GetBool(path string) (bool, bool) {
	return get(f, path, node.BoolType, node.Value.AsBool)
}

func (f *File) GetInt(path string) (int32, bool) {
	return get(f, path, node.IntType, node.Value.AsInt)
}

func (f *File) GetLong(path string) (int64, bool) {
	return get(f, path, node.LongType, node.Value.AsLong)
}

func (f *File) GetDecimal(path string) (*apd.Decimal, bool) {
	return get(f, path, node.DecimalType, node.Value.AsDecimal)
}

func (f *File) GetDouble(path string) (float64, bool) {
	return get(f, path, node.FloatType, node.Value.AsFloat)
}

func (f *File) GetString(path string) (string, bool) {
	return get(f, path, node.StringType, asString)
}

func asString(v node.Value) (string, error) {
	return v.AsString(), nil
}

// GetEnum reads a symbol and returns the element of values whose String
// matches it, ignoring case.
func GetEnum[E fmt.Stringer](f *File, path string, values []E) (E, bool) {
	return get(f, path, node.SymbolType, asEnum(values))
}

func asEnum[E fmt.Stringer](values []E) func(node.Value) (E, error) {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return func(v node.Value) (E, error) {
		var zero E
		i, err := v.AsSymbol(names)
		if err != nil {
			return zero, err
		}
		return values[i], nil
	}
}
