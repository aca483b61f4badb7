package node

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Type is the type of a scalar value.
type Type int

const (
	NoType Type = iota
	BoolType
	IntType
	LongType
	DecimalType
	FloatType
	SymbolType
	StringType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoType:      "None",
		BoolType:    "Bool",
		IntType:     "Int",
		LongType:    "Long",
		DecimalType: "Decimal",
		FloatType:   "Float",
		SymbolType:  "Symbol",
		StringType:  "String",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsNumber reports whether t is one of the numeric types.
func (t Type) IsNumber() bool {
	switch t {
	case IntType, LongType, DecimalType, FloatType:
		return true
	default:
		return false
	}
}

// Value is a typed scalar. Which field holds the value depends on Type:
// Bool for BoolType, Int for IntType and LongType, Decimal for
// DecimalType, Float for FloatType and String for SymbolType (the
// symbol name) and StringType.
//
// A Value's Decimal is shared between copies and must not be mutated.
type Value struct {
	Type    Type
	Bool    bool
	Int     int64
	Float   float64
	Decimal *apd.Decimal
	String  string
}

func FromBool(b bool) Value {
	return Value{Type: BoolType, Bool: b}
}

func FromInt(i int32) Value {
	return Value{Type: IntType, Int: int64(i)}
}

func FromLong(i int64) Value {
	return Value{Type: LongType, Int: i}
}

func FromDecimal(d *apd.Decimal) Value {
	if d == nil {
		d = new(apd.Decimal)
	}
	return Value{Type: DecimalType, Decimal: d}
}

func FromFloat(f float64) Value {
	return Value{Type: FloatType, Float: f}
}

// FromSymbol makes an enumerated symbol value from its name.
func FromSymbol(name string) Value {
	return Value{Type: SymbolType, String: name}
}

func FromString(s string) Value {
	return Value{Type: StringType, String: s}
}

// MustDecimal parses s as a decimal and panics if it is not one.
func MustDecimal(s string) Value {
	d, ok := parseDecimal(s)
	if !ok {
		panic(fmt.Sprintf("%q is not a decimal", s))
	}
	return FromDecimal(d)
}

// ValueOf converts a Go value to a Value. Named types with a String
// method that are not otherwise recognized become symbols.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case bool:
		return FromBool(x), nil
	case int32:
		return FromInt(x), nil
	case int8:
		return FromInt(int32(x)), nil
	case int16:
		return FromInt(int32(x)), nil
	case uint8:
		return FromInt(int32(x)), nil
	case uint16:
		return FromInt(int32(x)), nil
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return FromInt(int32(x)), nil
		}
		return FromLong(int64(x)), nil
	case int64:
		return FromLong(x), nil
	case uint32:
		return FromLong(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows a long", ErrBadValue, x)
		}
		return FromLong(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows a long", ErrBadValue, x)
		}
		return FromLong(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case *apd.Decimal:
		if x == nil {
			return Value{}, fmt.Errorf("%w: nil decimal", ErrBadValue)
		}
		return FromDecimal(x), nil
	case apd.Decimal:
		return FromDecimal(&x), nil
	case string:
		return FromString(x), nil
	case fmt.Stringer:
		return FromSymbol(x.String()), nil
	case nil:
		return Value{}, fmt.Errorf("%w: nil", ErrBadValue)
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrBadValue, v)
	}
}

// IsZero reports whether v carries no value at all.
func (v Value) IsZero() bool {
	return v.Type == NoType
}

// Literal returns the canonical textual form of v without any quoting.
func (v Value) Literal() string {
	switch v.Type {
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case IntType, LongType:
		return strconv.FormatInt(v.Int, 10)
	case DecimalType:
		if v.Decimal == nil {
			return "0"
		}
		return v.Decimal.String()
	case FloatType:
		return floatLiteral(v.Float)
	case SymbolType, StringType:
		return v.String
	default:
		return ""
	}
}

// Format implements fmt.Formatter so that values print as their literal.
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", v.Literal())
	default:
		fmt.Fprint(f, v.Literal())
	}
}

// IsFinite reports whether v is not a NaN or infinite float.
func (v Value) IsFinite() bool {
	if v.Type != FloatType {
		return true
	}
	return !math.IsNaN(v.Float) && !math.IsInf(v.Float, 0)
}

// Any returns v as a plain Go value: bool, int32, int64, *apd.Decimal,
// float64 or string.
func (v Value) Any() any {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return int32(v.Int)
	case LongType:
		return v.Int
	case DecimalType:
		return v.Decimal
	case FloatType:
		return v.Float
	case SymbolType, StringType:
		return v.String
	default:
		return nil
	}
}

// Equal reports whether v and o have the same type and value. Decimals
// compare numerically.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case BoolType:
		return v.Bool == o.Bool
	case IntType, LongType:
		return v.Int == o.Int
	case DecimalType:
		if v.Decimal == nil || o.Decimal == nil {
			return v.Decimal == o.Decimal
		}
		return v.Decimal.Cmp(o.Decimal) == 0
	case FloatType:
		return v.Float == o.Float || (math.IsNaN(v.Float) && math.IsNaN(o.Float))
	case SymbolType, StringType:
		return v.String == o.String
	default:
		return true
	}
}

// Same reports whether v and o are equal and render identically, so
// that decimals of different scale (1.5 and 1.50) differ.
func (v Value) Same(o Value) bool {
	return v.Equal(o) && v.Literal() == o.Literal()
}

// floatLiteral renders f so that it reads back unchanged: finite values
// go through the decimal form and always carry a fractional part or an
// exponent.
func floatLiteral(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := d.String()
	if !strings.ContainsAny(s, ".E") {
		s += ".0"
	}
	return s
}
