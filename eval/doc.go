// Package eval evaluates expressions against a configuration tree.
//
// Expressions use the expr language (github.com/expr-lang/expr). The
// top level keys of the tree are variables: sections are maps, lists
// are slices and scalars are plain values, so
//
//	server.port > 1024 && len(server.hosts) > 0
//
// reads the way the file does. Three functions are available:
//
//   - getpath(path): the value at a dotted path, or nil
//   - has(path): whether a dotted path exists
//   - getenv(name): the value of an environment variable
//
// Check runs a set of named boolean rules and reports the ones that do
// not hold.
package eval
