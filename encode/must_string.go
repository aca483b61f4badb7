package encode

import "github.com/signadot/keepconf/node"

// MustString is String for trees known to render.
func MustString(n *node.Node) string {
	s, err := String(n)
	if err != nil {
		panic(err)
	}
	return s
}
