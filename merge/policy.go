package merge

import (
	"errors"
	"fmt"
)

// Policy decides what happens to disk content the target does not
// declare.
type Policy int

const (
	// Closed keeps the declared shape. Values of declared keys still come
	// from disk; everything else on disk is dropped.
	Closed Policy = iota
	// Open also takes in undeclared sections, lists, scalars, list
	// elements, comments and blank lines.
	Open
)

var ErrBadPolicy = errors.New("bad policy")

func ParsePolicy(v string) (Policy, error) {
	p, ok := map[string]Policy{
		"closed":  Closed,
		"static":  Closed,
		"open":    Open,
		"dynamic": Open,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPolicy, v)
}

func (p Policy) String() string {
	switch p {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("<policy %d>", int(p))
	}
}

func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case Closed, Open:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadPolicy, int(p))
}

func (p *Policy) UnmarshalText(d []byte) error {
	pp, err := ParsePolicy(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}
