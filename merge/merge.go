package merge

import (
	"slices"

	"github.com/signadot/keepconf/debug"
	"github.com/signadot/keepconf/node"
)

// Result lists what a reconcile changed in the target. Paths are dotted
// paths in the target.
type Result struct {
	// Updated scalars took a new value or new inline comments from
	// disk; updated lists gained elements.
	Updated []string
	// Added sections, lists and scalars came from disk.
	Added []string
	// Conflicts are keys that are a different kind of node on disk
	// than in the target. The target keeps its node.
	Conflicts []string
	// Lines counts comments and blank lines taken from disk.
	Lines int
}

func (r *Result) Changed() bool {
	return len(r.Updated) != 0 || len(r.Added) != 0 || r.Lines != 0
}

// Reconcile folds the children of disk into target in place. disk is
// only read.
func Reconcile(disk, target *node.Node, p Policy) *Result {
	m := &merger{policy: p, res: &Result{}}
	if disk == nil || target == nil || !target.IsContainer() {
		return m.res
	}
	m.section(disk, target)
	if debug.Merge() {
		debug.Logf("merge %s: updated %v added %v conflicts %v lines %d\n",
			p, m.res.Updated, m.res.Added, m.res.Conflicts, m.res.Lines)
	}
	return m.res
}

type merger struct {
	policy Policy
	res    *Result
}

func (m *merger) open() bool {
	return m.policy == Open
}

func (m *merger) section(src, tgt *node.Node) {
	for _, c := range src.Sorted() {
		switch c.Kind {
		case node.SectionKind:
			m.subSection(c, tgt)
		case node.ListSectionKind:
			m.list(c, tgt)
		case node.ScalarKind:
			m.scalar(c, tgt)
		case node.CommentKind:
			if !m.open() {
				continue
			}
			if tgt.Comment(c.Text, c.Index) == nil && tgt.Insert(node.NewComment(c.Text), c.Index) {
				m.res.Lines++
			}
		case node.BlankKind:
			if !m.open() {
				continue
			}
			if tgt.Blank(c.Index) == nil && tgt.Insert(node.NewBlank(), c.Index) {
				m.res.Lines++
			}
		}
	}
}

// existing finds the target child for a disk child, recording a
// conflict when it is of another kind.
func (m *merger) existing(c, tgt *node.Node) (*node.Node, bool) {
	ex := tgt.Child(c.Key)
	if ex == nil {
		return nil, false
	}
	if !sameKind(c, ex) {
		if debug.Merge() {
			debug.Logf("merge conflict at %s: disk %s, target %s\n", ex.Path, c.Kind, ex.Kind)
		}
		m.res.Conflicts = append(m.res.Conflicts, ex.Path)
		return nil, true
	}
	return ex, false
}

// sameKind reports whether the disk node c can fold into ex. An empty
// list is written as a bare header, which reads back as a section with
// no keys.
func sameKind(c, ex *node.Node) bool {
	if c.Kind == ex.Kind {
		return true
	}
	return ex.Kind == node.ListSectionKind && c.Kind == node.SectionKind && !hasKeys(c)
}

func hasKeys(n *node.Node) bool {
	for _, c := range n.Children {
		if c.Kind.IsKeyed() {
			return true
		}
	}
	return false
}

func (m *merger) subSection(c, tgt *node.Node) {
	ex, conflict := m.existing(c, tgt)
	if conflict {
		return
	}
	if ex != nil && ex.Kind == node.ListSectionKind {
		m.list(c, tgt)
		return
	}
	if ex != nil {
		m.section(c, ex)
		return
	}
	if !m.open() {
		return
	}
	sec := node.NewSection(node.JoinPath(tgt.Path, c.Key), c.Key)
	if !tgt.Insert(sec, c.Index) {
		return
	}
	m.res.Added = append(m.res.Added, sec.Path)
	m.section(c, sec)
}

func (m *merger) list(c, tgt *node.Node) {
	ex, conflict := m.existing(c, tgt)
	if conflict || !m.open() {
		return
	}
	if ex != nil {
		grew := false
		for _, v := range c.Values() {
			if !ex.Contains(v) && ex.AddValue(v) {
				grew = true
			}
		}
		if grew {
			m.res.Updated = append(m.res.Updated, ex.Path)
		}
		return
	}
	vals := c.Values()
	if len(vals) == 0 {
		return
	}
	list := node.NewListSection(node.JoinPath(tgt.Path, c.Key), c.Key)
	for _, v := range vals {
		list.AddValue(v)
	}
	if tgt.Insert(list, c.Index) {
		m.res.Added = append(m.res.Added, list.Path)
	}
}

func (m *merger) scalar(c, tgt *node.Node) {
	ex, conflict := m.existing(c, tgt)
	if conflict {
		return
	}
	if ex != nil {
		changed := false
		if !ex.Value.Same(c.Value) {
			ex.Value = c.Value
			changed = true
		}
		if len(c.Comments) != 0 && !slices.Equal(ex.Comments, c.Comments) {
			ex.Comments = slices.Clone(c.Comments)
			changed = true
		}
		if changed {
			m.res.Updated = append(m.res.Updated, ex.Path)
		}
		return
	}
	if !m.open() {
		return
	}
	sc := node.NewScalar(node.JoinPath(tgt.Path, c.Key), c.Key, c.Value)
	sc.Comments = slices.Clone(c.Comments)
	if tgt.Insert(sc, c.Index) {
		m.res.Added = append(m.res.Added, sc.Path)
	}
}
