// Package patch applies JSON patches (RFC 6902) and JSON merge patches
// (RFC 7396) to a configuration tree.
//
// The tree is rendered as JSON, patched with
// github.com/evanphx/json-patch and read back. The result is folded into
// the original tree with the open merge policy, so comments, blank
// lines and key order survive; keys the patch removed are pruned and
// lists are replaced as a whole. Values that did not change keep their
// type and literal form.
package patch
