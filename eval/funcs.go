package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/keepconf/node"
)

func exprOpts(root *node.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			return ToAny(lookup(root, params[0].(string))), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			return lookup(root, params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func lookup(root *node.Node, path string) *node.Node {
	if root == nil {
		return nil
	}
	if path == "" {
		return root
	}
	return root.Child(path)
}
