package parse

import "github.com/signadot/keepconf/diag"

type parseOpts struct {
	filename string
	sink     diag.Sink
}

type ParseOption func(*parseOpts)

// ParseFilename names the input in diagnostics and errors.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseSink receives a diagnostic for every skipped line.
func ParseSink(s diag.Sink) ParseOption {
	return func(o *parseOpts) { o.sink = s }
}
