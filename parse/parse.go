package parse

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/keepconf/debug"
	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/node"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Parse reads d into a fresh root. The returned tree does not share
// anything with earlier results.
func Parse(d []byte, opts ...ParseOption) (*node.Node, error) {
	pOpts := &parseOpts{filename: "<input>", sink: diag.Discard}
	for _, f := range opts {
		f(pOpts)
	}
	if !utf8.Valid(d) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8", ErrParse, pOpts.filename)
	}
	d = bytes.TrimPrefix(d, bom)
	root := node.NewRoot()
	if len(d) == 0 {
		return root, nil
	}
	lines := strings.Split(string(d), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	p := &parser{
		lines: lines,
		opts:  pOpts,
		stack: []*node.Node{root},
	}
	p.run()
	return root, nil
}

func ParseReader(r io.Reader, opts ...ParseOption) (*node.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

func ParseString(s string, opts ...ParseOption) (*node.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	lines []string
	i     int
	opts  *parseOpts
	stack []*node.Node
	// blanks counts blank lines waiting for the next line to fix their depth.
	blanks int
}

func (p *parser) warnf(lineNo int, format string, args ...any) {
	diag.Emitf(p.opts.sink, p.opts.filename, "line %d: "+format, append([]any{lineNo}, args...)...)
}

func (p *parser) top() *node.Node {
	return p.stack[len(p.stack)-1]
}

func indentOf(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " "))
}

func (p *parser) run() {
	for p.i < len(p.lines) {
		raw := p.lines[p.i]
		lineNo := p.i + 1
		p.i++
		line := strings.TrimSpace(raw)

		if line == "" {
			p.blanks++
			continue
		}
		indent := indentOf(raw)
		if indent%node.IndentStep != 0 {
			p.warnf(lineNo, "indentation %d is not a multiple of %d: %q", indent, node.IndentStep, raw)
			continue
		}
		depth := indent / node.IndentStep
		for len(p.stack) > depth+1 {
			p.stack = p.stack[:len(p.stack)-1]
		}
		parent := p.top()
		p.flush(parent)
		if debug.Parse() {
			debug.Logf("parse %d depth %d parent %q: %q\n", lineNo, depth, parent.Path, raw)
		}

		switch {
		case strings.HasPrefix(line, "#"):
			parent.Add(node.NewComment(raw))
		case strings.HasPrefix(line, "- ") || line == "-":
			p.warnf(lineNo, "list item outside a list: %q", raw)
		case isHeader(line):
			p.section(parent, strings.TrimSpace(line[:len(line)-1]), indent, lineNo)
		default:
			p.scalar(parent, line, lineNo)
		}
	}
	p.flush(p.stack[0])
}

// flush adds the pending blank lines to parent, the container of the
// line that follows them.
func (p *parser) flush(parent *node.Node) {
	for ; p.blanks > 0; p.blanks-- {
		parent.Add(node.NewBlank())
	}
}

// isHeader reports whether a trimmed line opens a section. A name with a
// ':' of its own makes the line a scalar whose value ends in ':'.
func isHeader(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	return !strings.Contains(line[:len(line)-1], ":")
}

func (p *parser) checkKey(key string, lineNo int) bool {
	switch {
	case key == "":
		p.warnf(lineNo, "empty key")
		return false
	case strings.Contains(key, "."):
		p.warnf(lineNo, "key %q contains '.'", key)
		return false
	}
	return true
}

func (p *parser) section(parent *node.Node, name string, indent, lineNo int) {
	if !p.checkKey(name, lineNo) {
		return
	}
	path := node.JoinPath(parent.Path, name)
	if p.listFollows(indent) {
		list := node.NewListSection(path, name)
		p.items(list, indent)
		parent.Add(list)
		return
	}
	sec := node.NewSection(path, name)
	parent.Add(sec)
	p.stack = append(p.stack, sec)
}

func (p *parser) listFollows(indent int) bool {
	if p.i >= len(p.lines) {
		return false
	}
	next := p.lines[p.i]
	return strings.HasPrefix(strings.TrimSpace(next), "- ") && indentOf(next) > indent
}

// items consumes the list lines that follow a list header.
func (p *parser) items(list *node.Node, indent int) {
	for p.i < len(p.lines) {
		raw := p.lines[p.i]
		line := strings.TrimSpace(raw)
		if indentOf(raw) <= indent || !strings.HasPrefix(line, "- ") {
			return
		}
		lineNo := p.i + 1
		p.i++
		v, _, _ := splitInline(strings.TrimSpace(line[2:]))
		val := node.InferQuoted(v)
		if list.AddValue(val) {
			continue
		}
		// a quoted element of a text list stays text.
		if inner, ok := node.Unquote(v); ok && list.ElemType == node.StringType {
			list.AddValue(node.FromString(inner))
			continue
		}
		p.warnf(lineNo, "%s element %q in %s list %s dropped", val.Type, v, list.ElemType, list.Path)
	}
}

func (p *parser) scalar(parent *node.Node, line string, lineNo int) {
	k, v, ok := strings.Cut(line, ":")
	if !ok {
		p.warnf(lineNo, "malformed line: %q", line)
		return
	}
	key := strings.TrimSpace(k)
	if !p.checkKey(key, lineNo) {
		return
	}
	v, c, hasComment := splitInline(strings.TrimSpace(v))
	sc := node.NewScalar(node.JoinPath(parent.Path, key), key, node.InferQuoted(v))
	if hasComment {
		sc.Comments = fragments(c)
	}
	parent.Add(sc)
}
