package node

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Compatible reports whether a value of type have can be read as want
// without loss: ints widen to longs, integers and floats to decimals,
// numbers to floats, and symbols and text read as each other.
func Compatible(have, want Type) bool {
	if have == want {
		return true
	}
	switch want {
	case LongType:
		return have == IntType
	case DecimalType:
		return have == IntType || have == LongType || have == FloatType
	case FloatType:
		return have == IntType || have == LongType || have == DecimalType
	case StringType:
		return have == SymbolType
	case SymbolType:
		return have == StringType
	}
	return false
}

func mismatch(v Value, want Type) error {
	return fmt.Errorf("%w: %s %q is not a %s", ErrMismatch, v.Type, v.Literal(), want)
}

func (v Value) AsBool() (bool, error) {
	if v.Type == BoolType {
		return v.Bool, nil
	}
	lit := strings.TrimSpace(v.Literal())
	switch {
	case strings.EqualFold(lit, "true"):
		return true, nil
	case strings.EqualFold(lit, "false"):
		return false, nil
	}
	return false, mismatch(v, BoolType)
}

func (v Value) AsInt() (int32, error) {
	switch v.Type {
	case IntType, LongType:
		if v.Int < math.MinInt32 || v.Int > math.MaxInt32 {
			return 0, mismatch(v, IntType)
		}
		return int32(v.Int), nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v.Literal()), 10, 32)
	if err != nil {
		return 0, mismatch(v, IntType)
	}
	return int32(i), nil
}

func (v Value) AsLong() (int64, error) {
	switch v.Type {
	case IntType, LongType:
		return v.Int, nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v.Literal()), 10, 64)
	if err != nil {
		return 0, mismatch(v, LongType)
	}
	return i, nil
}

func (v Value) AsDecimal() (*apd.Decimal, error) {
	switch v.Type {
	case DecimalType:
		return v.Decimal, nil
	case IntType, LongType:
		return apd.New(v.Int, 0), nil
	case FloatType:
		d, err := new(apd.Decimal).SetFloat64(v.Float)
		if err != nil || d.Form != apd.Finite {
			return nil, mismatch(v, DecimalType)
		}
		return d, nil
	}
	d, ok := parseDecimal(strings.TrimSpace(v.Literal()))
	if !ok {
		return nil, mismatch(v, DecimalType)
	}
	return d, nil
}

func (v Value) AsFloat() (float64, error) {
	switch v.Type {
	case FloatType:
		return v.Float, nil
	case IntType, LongType:
		return float64(v.Int), nil
	case DecimalType:
		f, err := v.Decimal.Float64()
		if err != nil {
			return 0, mismatch(v, FloatType)
		}
		return f, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Literal()), 64)
	if err != nil {
		return 0, mismatch(v, FloatType)
	}
	return f, nil
}

// AsString never fails: every value has a literal.
func (v Value) AsString() string {
	return v.Literal()
}

// AsSymbol finds v among names, ignoring case and surrounding space, and
// returns its position.
func (v Value) AsSymbol(names []string) (int, error) {
	lit := strings.TrimSpace(v.Literal())
	for i, name := range names {
		if strings.EqualFold(lit, name) {
			return i, nil
		}
	}
	return -1, mismatch(v, SymbolType)
}
