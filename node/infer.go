package node

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Infer types an unquoted value string. The order is fixed: a boolean
// literal (any case), then a decimal when s has a fractional part or an
// exponent, then a 32-bit integer, a 64-bit integer and a decimal.
// Anything else is text.
func Infer(s string) Value {
	if strings.EqualFold(s, "true") {
		return FromBool(true)
	}
	if strings.EqualFold(s, "false") {
		return FromBool(false)
	}
	if strings.ContainsAny(s, ".eE") {
		if d, ok := parseDecimal(s); ok {
			return FromDecimal(d)
		}
	}
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return FromInt(int32(i))
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromLong(i)
	}
	if d, ok := parseDecimal(s); ok {
		return FromDecimal(d)
	}
	return FromString(s)
}

// InferQuoted types a value that may be wrapped in one pair of matching
// single or double quotes. The pair is removed before inference and the
// inside is kept as is.
func InferQuoted(s string) Value {
	inner, _ := Unquote(s)
	return Infer(inner)
}

// Unquote removes one pair of matching quotes around s.
func Unquote(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return s, false
	}
	return s[1 : len(s)-1], true
}

// parseDecimal accepts finite decimals only; apd also reads NaN and
// Infinity, which stay text here.
func parseDecimal(s string) (*apd.Decimal, bool) {
	if s == "" {
		return nil, false
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, false
	}
	if d.Form != apd.Finite {
		return nil, false
	}
	return d, true
}
