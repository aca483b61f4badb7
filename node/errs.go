package node

import "errors"

var (
	ErrBadPath  = errors.New("bad path")
	ErrBadValue = errors.New("bad value")
	ErrMismatch = errors.New("type mismatch")
)
