package eval

import "github.com/signadot/keepconf/node"

// ToAny converts n to plain Go values: sections become
// map[string]any, lists []any, integers int, decimals and floats
// float64, and symbols string. Comments and blank lines are dropped. A
// decimal too large for a float64 keeps its literal as a string.
func ToAny(n *node.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case node.RootKind, node.SectionKind:
		res := make(map[string]any, len(n.Children))
		for _, c := range n.Children {
			if c.Kind.IsKeyed() {
				res[c.Key] = ToAny(c)
			}
		}
		return res
	case node.ListSectionKind:
		res := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			res = append(res, valueAny(c.Value))
		}
		return res
	case node.ScalarKind, node.ListScalarKind:
		return valueAny(n.Value)
	}
	return nil
}

func valueAny(v node.Value) any {
	switch v.Type {
	case node.IntType, node.LongType:
		return int(v.Int)
	case node.DecimalType:
		f, err := v.AsFloat()
		if err != nil {
			return v.Literal()
		}
		return f
	}
	return v.Any()
}
