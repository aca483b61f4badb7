// Package format names the output formats a configuration tree can be
// rendered in: the native line format, YAML and JSON. Only the native
// format can be read back.
package format
