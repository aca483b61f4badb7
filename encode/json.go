package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/signadot/keepconf/node"
)

// JSON renders n as compact JSON with keys in file order. Decimals keep
// their literal form; comments and blank lines are dropped.
func JSON(n *node.Node) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := writeJSON(b, n); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeJSON(n *node.Node, w io.Writer) error {
	d, err := JSON(n)
	if err != nil {
		return err
	}
	out := &bytes.Buffer{}
	if err := json.Indent(out, d, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

func writeJSON(b *bytes.Buffer, n *node.Node) error {
	switch n.Kind {
	case node.RootKind, node.SectionKind:
		b.WriteByte('{')
		first := true
		for _, c := range n.Sorted() {
			if !c.Kind.IsKeyed() {
				continue
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			k, err := json.Marshal(c.Key)
			if err != nil {
				return err
			}
			b.Write(k)
			b.WriteByte(':')
			if err := writeJSON(b, c); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case node.ListSectionKind:
		b.WriteByte('[')
		for i, v := range n.Values() {
			if i != 0 {
				b.WriteByte(',')
			}
			if err := jsonValue(b, v); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case node.ScalarKind, node.ListScalarKind:
		return jsonValue(b, n.Value)
	default:
		b.WriteString("null")
	}
	return nil
}

func jsonValue(b *bytes.Buffer, v node.Value) error {
	switch v.Type {
	case node.BoolType:
		b.WriteString(strconv.FormatBool(v.Bool))
	case node.IntType, node.LongType, node.DecimalType:
		b.WriteString(v.Literal())
	case node.FloatType:
		if !v.IsFinite() {
			return jsonString(b, v.Literal())
		}
		b.WriteString(v.Literal())
	case node.StringType, node.SymbolType:
		return jsonString(b, v.String)
	default:
		b.WriteString("null")
	}
	return nil
}

func jsonString(b *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(d)
	return nil
}
