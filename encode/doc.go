// Package encode renders node trees.
//
// # Usage
//
//	// native line format
//	err := encode.Encode(root, os.Stdout)
//	s, err := encode.String(root)
//
//	// export
//	err = encode.Encode(root, w, encode.EncodeFormat(format.YAMLFormat))
//	err = encode.Encode(root, w, encode.EncodeFormat(format.JSONFormat))
//
//	// colored, for terminals
//	err = encode.Encode(root, w, encode.EncodeColors(encode.NewColors()))
//
// In the native format the output of an unchanged tree is stable: text
// written by Encode and parsed back renders to the same bytes. YAML and
// JSON exports keep key order; JSON drops comments.
//
// # Related Packages
//
//   - github.com/signadot/keepconf/node - the tree
//   - github.com/signadot/keepconf/parse - text to tree
package encode
