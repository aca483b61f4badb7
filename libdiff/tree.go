package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/node"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference between two trees. From is nil for inserts
// and To is nil for deletes.
type Change struct {
	Op   Op
	Path string
	From *node.Node
	To   *node.Node
}

func (c Change) String() string {
	switch c.Op {
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, describe(c.From))
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, describe(c.To))
	case Replace:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, describe(c.From), describe(c.To))
	case Move:
		return fmt.Sprintf("> %s: moved", c.Path)
	}
	return "  " + c.Path
}

func describe(n *node.Node) string {
	switch n.Kind {
	case node.ScalarKind:
		return encode.ScalarLiteral(n.Value)
	case node.ListSectionKind:
		vals := n.Values()
		lits := make([]string, len(vals))
		for i, v := range vals {
			lits[i] = encode.ItemLiteral(v)
		}
		return fmt.Sprintf("%v", lits)
	}
	return n.Kind.String()
}

// Tree compares the keyed nodes of two trees. Keys are sequenced with a
// diff over their names, so a key that only changed position shows up as
// a move. Comments and blank lines are not compared.
func Tree(from, to *node.Node) []Change {
	var res []Change
	diffKeyed(from, to, &res)
	return res
}

func keyed(n *node.Node) []*node.Node {
	var res []*node.Node
	for _, c := range n.Sorted() {
		if c.Kind.IsKeyed() {
			res = append(res, c)
		}
	}
	return res
}

func mapKeysTo(m map[string]rune, nodes []*node.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		r, ok := m[n.Key]
		if !ok {
			r = rune(len(m))
			m[n.Key] = r
		}
		rs[i] = r
	}
	return rs
}

func diffKeyed(from, to *node.Node, res *[]Change) {
	fs, ts := keyed(from), keyed(to)
	keyMap := map[string]rune{}
	fromRunes := mapKeysTo(keyMap, fs)
	toRunes := mapKeysTo(keyMap, ts)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var deleted, inserted []*node.Node
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			deleted = append(deleted, fs[fi:fi+n]...)
			fi += n
		case diffpatch.DiffInsert:
			inserted = append(inserted, ts[ti:ti+n]...)
			ti += n
		case diffpatch.DiffEqual:
			for j := 0; j < n; j++ {
				diffNode(fs[fi+j], ts[ti+j], res)
			}
			fi += n
			ti += n
		}
	}
	for _, d := range deleted {
		i := slices.IndexFunc(inserted, func(n *node.Node) bool { return n.Key == d.Key })
		if i < 0 {
			*res = append(*res, Change{Op: Delete, Path: d.Path, From: d})
			continue
		}
		ins := inserted[i]
		inserted = slices.Delete(inserted, i, i+1)
		*res = append(*res, Change{Op: Move, Path: d.Path, From: d, To: ins})
		diffNode(d, ins, res)
	}
	for _, ins := range inserted {
		*res = append(*res, Change{Op: Insert, Path: ins.Path, To: ins})
	}
}

func diffNode(from, to *node.Node, res *[]Change) {
	if from.Kind != to.Kind {
		*res = append(*res, Change{Op: Replace, Path: to.Path, From: from, To: to})
		return
	}
	switch from.Kind {
	case node.SectionKind:
		diffKeyed(from, to, res)
	case node.ScalarKind:
		if !from.Value.Same(to.Value) || !slices.Equal(from.Comments, to.Comments) {
			*res = append(*res, Change{Op: Replace, Path: to.Path, From: from, To: to})
		}
	case node.ListSectionKind:
		if !slices.EqualFunc(from.Values(), to.Values(), node.Value.Same) {
			*res = append(*res, Change{Op: Replace, Path: to.Path, From: from, To: to})
		}
	}
}
