package patch

import "errors"

var (
	ErrBadKind = errors.New("bad patch kind")
	ErrPatch   = errors.New("patch error")
	ErrDecode  = errors.New("decode error")
)
