package eval

import "errors"

var (
	ErrEval    = errors.New("eval error")
	ErrRule    = errors.New("bad rule")
	ErrNotBool = errors.New("rule is not boolean")
	ErrFailed  = errors.New("rule failed")
)
