// Package parse reads the line-oriented configuration format into a
// node tree.
//
// # Format
//
//	# comment
//	name: "app"            # inline | fragments
//	server:
//	  port: 8080
//	  hosts:
//	    - a.example.com
//	    - b.example.com
//
// Indentation is two spaces per level. Section headers end in ":", list
// items start with "- " one level below their header, and scalar lines
// split on the first ":". Comments and blank lines are kept as nodes.
//
// # Usage
//
//	root, err := parse.Parse(data, parse.ParseFilename("app.conf"))
//
// A line that cannot be read (odd indentation, no key, a list item with
// no list) is skipped and reported through the ParseSink option; the
// rest of the file is still parsed. Only input that is not UTF-8 fails
// the whole parse.
package parse
