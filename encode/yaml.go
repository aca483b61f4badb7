package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/keepconf/node"
)

func encodeYAML(n *node.Node, w io.Writer) error {
	d, err := yaml.Marshal(ToYAML(n))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// ToYAML converts n to values go-yaml can marshal, keeping key order
// with yaml.MapSlice.
func ToYAML(n *node.Node) any {
	switch n.Kind {
	case node.RootKind, node.SectionKind:
		res := yaml.MapSlice{}
		for _, c := range n.Sorted() {
			if c.Kind.IsKeyed() {
				res = append(res, yaml.MapItem{Key: c.Key, Value: ToYAML(c)})
			}
		}
		return res
	case node.ListSectionKind:
		res := []any{}
		for _, v := range n.Values() {
			res = append(res, yamlValue(v))
		}
		return res
	case node.ScalarKind, node.ListScalarKind:
		return yamlValue(n.Value)
	}
	return nil
}

func yamlValue(v node.Value) any {
	switch v.Type {
	case node.DecimalType:
		f, err := v.Decimal.Float64()
		if err != nil {
			return v.Literal()
		}
		return f
	case node.IntType, node.LongType:
		return v.Int
	case node.FloatType:
		if !v.IsFinite() {
			return v.Literal()
		}
		return v.Float
	}
	return v.Any()
}
