// Package node provides the tree that represents the content of a
// configuration file.
//
// # Overview
//
// A file is a Root node whose children are, in file order, comments,
// blank lines, scalars and sections. Sections nest; list sections hold a
// homogeneous sequence of list scalars. Everything a person wrote into
// the file that a structured reader would normally drop (comments, blank
// separator lines, the order of keys) is a node with a place in the tree.
//
// # Node Kinds
//
// The Kind field says which fields of a Node are in use:
//
//   - CommentKind: Text, one verbatim comment line
//   - BlankKind: nothing, an empty separator line
//   - ScalarKind: Key, Path, Value and optional inline Comments
//   - ListScalarKind: Value only, inside a list section
//   - SectionKind: Key, Path, Children
//   - ListSectionKind: Key, Path, Children (list scalars), ElemType
//   - RootKind: Children; no key and no path
//
// # Indices
//
// Every node has an Index, its position among its siblings. Within a
// container the indices are always 0..N-1 and match the order of
// Children. Add, Insert and Remove renumber siblings as needed. Merging
// uses indices to put comments and blank lines back where the file had
// them.
//
// # Paths
//
// Keyed nodes carry a dotted Path from the root: the scalar "port" in
// section "server" has path "server.port". Lookups (Child, Section,
// ListSection, Scalar) accept either a single key or a dotted path
// relative to the node they are called on.
//
// # Values
//
// A Value is one of Bool, Int (32-bit), Long (64-bit), Decimal
// (arbitrary precision), Float, Symbol (an enumerated name) or String.
// Infer turns text read from a file into a Value; the As methods read a
// value as another type, widening where that is lossless and re-parsing
// the literal otherwise.
//
//	v := node.Infer("30")    // Int 30
//	v = node.Infer("1.5")    // Decimal 1.5
//	v = node.Infer("TRUE")   // Bool true
//	v = node.Infer("hello")  // String "hello"
//
// # List Sections
//
// The first value added to a list section fixes its element type.
// AddValue drops values of any other type.
//
// # Thread Safety
//
// Trees are not safe for concurrent use. Callers that share a tree
// between goroutines must serialize access.
package node
