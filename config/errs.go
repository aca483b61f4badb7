package config

import "errors"

var (
	ErrLoad = errors.New("load error")
	ErrSave = errors.New("save error")
)
