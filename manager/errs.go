package manager

import "errors"

var (
	ErrDuplicate = errors.New("duplicate file")
	ErrNotFound  = errors.New("file not found")
	ErrDir       = errors.New("directory error")
	ErrBadName   = errors.New("bad file name")
)
