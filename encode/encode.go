package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/keepconf/format"
	"github.com/signadot/keepconf/node"
)

const commentSep = " | "

type EncState struct {
	format     format.Format
	trailingNL bool

	Color func(node.Type, ColorAttr, string) string
}

func (es *EncState) color(t node.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes n to w. A root renders as its children without a header
// and without the newline that would end the last line.
func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if n == nil {
		return fmt.Errorf("%w: nil node", node.ErrBadValue)
	}
	switch es.format {
	case format.YAMLFormat:
		return encodeYAML(n, w)
	case format.JSONFormat:
		return encodeJSON(n, w)
	case format.ConfFormat:
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	b := &strings.Builder{}
	encode(b, n, 0, es)
	out := b.String()
	if n.Kind == node.RootKind && !es.trailingNL {
		out = strings.TrimSuffix(out, "\n")
	}
	_, err := io.WriteString(w, out)
	return err
}

// String renders n in the native format.
func String(n *node.Node, opts ...EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := Encode(n, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}

func encode(b *strings.Builder, n *node.Node, indent int, es *EncState) {
	switch n.Kind {
	case node.RootKind:
		for _, c := range n.Sorted() {
			encode(b, c, indent, es)
		}
	case node.SectionKind, node.ListSectionKind:
		b.WriteString(pad(indent))
		b.WriteString(es.color(node.NoType, KeyColor, n.Key))
		b.WriteString(es.color(node.NoType, SepColor, ":"))
		if onlyBlanks(n) {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		for _, c := range n.Sorted() {
			encode(b, c, indent+node.IndentStep, es)
		}
	case node.ScalarKind:
		b.WriteString(pad(indent))
		b.WriteString(es.color(n.Value.Type, KeyColor, n.Key))
		b.WriteString(es.color(n.Value.Type, SepColor, ":"))
		b.WriteByte(' ')
		b.WriteString(es.color(n.Value.Type, ValueColor, ScalarLiteral(n.Value)))
		if len(n.Comments) != 0 {
			b.WriteString(es.color(node.NoType, CommentColor, " # "+strings.Join(n.Comments, commentSep)))
		}
		b.WriteByte('\n')
	case node.ListScalarKind:
		b.WriteString(pad(indent))
		b.WriteString(es.color(n.Value.Type, SepColor, "-"))
		b.WriteByte(' ')
		b.WriteString(es.color(n.Value.Type, ValueColor, ItemLiteral(n.Value)))
		b.WriteByte('\n')
	case node.CommentKind:
		b.WriteString(es.color(node.NoType, CommentColor, commentLine(n.Text, indent)))
		b.WriteByte('\n')
	case node.BlankKind:
		b.WriteByte('\n')
	}
}

// onlyBlanks reports whether a section would read back empty, which is
// when it has no children but blank lines.
func onlyBlanks(n *node.Node) bool {
	for _, c := range n.Children {
		if c.Kind != node.BlankKind {
			return false
		}
	}
	return true
}

// commentLine keeps a comment's own indentation when it has one, as
// comments read from a file do.
func commentLine(text string, indent int) string {
	trimmed := strings.TrimLeft(text, " \t")
	if trimmed != text && strings.HasPrefix(trimmed, "#") {
		return text
	}
	return pad(indent) + node.CommentLine(text)
}

// ScalarLiteral is the value part of a scalar line. Text and symbols are
// quoted; non-finite floats are double quoted, since they would not read
// back as numbers.
func ScalarLiteral(v node.Value) string {
	switch v.Type {
	case node.StringType, node.SymbolType:
		return quote(v.String)
	case node.FloatType:
		if !v.IsFinite() {
			return `"` + v.Literal() + `"`
		}
	}
	return v.Literal()
}

// ItemLiteral is the value part of a list item. Text is only quoted when
// the bare form would read back differently.
func ItemLiteral(v node.Value) string {
	switch v.Type {
	case node.StringType, node.SymbolType:
		if needsQuote(v.String) {
			return quote(v.String)
		}
		return v.String
	}
	return ScalarLiteral(v)
}

// quote wraps s in double quotes, or in single quotes when s holds a
// double quote followed by a comment marker, which would close the value
// early on reading. Text holding both markers cannot be written safely
// and stays double quoted.
func quote(s string) string {
	if strings.Contains(s, `" #`) && !strings.Contains(s, `' #`) {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

func needsQuote(s string) bool {
	switch {
	case s == "", strings.TrimSpace(s) != s:
		return true
	case strings.Contains(s, " #"):
		return true
	case node.Infer(s).Type != node.StringType:
		return true
	}
	_, wrapped := node.Unquote(s)
	return wrapped
}
