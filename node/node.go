package node

import (
	"slices"
	"strings"
)

// IndentStep is the number of spaces per nesting level.
const IndentStep = 2

type Node struct {
	Kind   Kind
	Parent *Node
	Index  int

	Key  string
	Path string

	Value    Value
	Comments []string
	Text     string

	Children []*Node
	ElemType Type

	inserted int
}

func NewRoot() *Node {
	return &Node{Kind: RootKind}
}

func NewSection(path, key string) *Node {
	return &Node{Kind: SectionKind, Path: path, Key: key}
}

// NewListSection makes an empty list. Its element type is fixed by the
// first value added.
func NewListSection(path, key string) *Node {
	return &Node{Kind: ListSectionKind, Path: path, Key: key}
}

func NewScalar(path, key string, v Value) *Node {
	return &Node{Kind: ScalarKind, Path: path, Key: key, Value: v}
}

func NewListScalar(v Value) *Node {
	return &Node{Kind: ListScalarKind, Value: v}
}

// NewComment holds one comment line. An empty line becomes "# ".
func NewComment(text string) *Node {
	if text == "" {
		text = "# "
	}
	return &Node{Kind: CommentKind, Text: text}
}

func NewBlank() *Node {
	return &Node{Kind: BlankKind}
}

// JoinPath appends key to the dotted path parent.
func JoinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// SplitPath splits a dotted path. It returns nil if any part is empty.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	for _, p := range parts {
		if p == "" {
			return nil
		}
	}
	return parts
}

func (n *Node) IsContainer() bool {
	return n != nil && n.Kind.IsContainer()
}

// Inserted returns how many nodes were ever added to the root. It is
// only counted on root nodes.
func (n *Node) Inserted() int {
	return n.inserted
}

// NextIndex is the index the next appended child receives.
func (n *Node) NextIndex() int {
	return len(n.Children)
}

func (n *Node) renumber(from int) {
	for i := from; i < len(n.Children); i++ {
		n.Children[i].Index = i
	}
}

func (n *Node) accepts(c *Node) bool {
	if c == nil || !n.IsContainer() {
		return false
	}
	if n.Kind == ListSectionKind {
		return false
	}
	switch c.Kind {
	case RootKind, ListScalarKind:
		return false
	}
	return true
}

// Add appends c as the last child of n. List sections only take values
// through AddValue; Add on them is a no-op.
func (n *Node) Add(c *Node) bool {
	if n.Kind == ListSectionKind && c != nil && c.Kind == ListScalarKind {
		return n.AddValue(c.Value)
	}
	if !n.accepts(c) {
		return false
	}
	c.Parent = n
	c.Index = len(n.Children)
	n.Children = append(n.Children, c)
	if n.Kind == RootKind {
		n.inserted++
	}
	return true
}

// Insert places c at index i, moving the siblings at or after i one
// position down. An index past the end appends.
func (n *Node) Insert(c *Node, i int) bool {
	if !n.accepts(c) || i < 0 {
		return false
	}
	if i >= len(n.Children) {
		return n.Add(c)
	}
	c.Parent = n
	n.Children = slices.Insert(n.Children, i, c)
	n.renumber(i)
	if n.Kind == RootKind {
		n.inserted++
	}
	return true
}

// Remove detaches the first child with the given key and returns it.
func (n *Node) Remove(key string) *Node {
	if !n.IsContainer() || n.Kind == ListSectionKind {
		return nil
	}
	for i, c := range n.Children {
		if c.Key != key || !c.Kind.IsKeyed() {
			continue
		}
		n.Children = slices.Delete(n.Children, i, i+1)
		n.renumber(i)
		c.Parent = nil
		return c
	}
	return nil
}

func (n *Node) Clear() {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
	if n.Kind == ListSectionKind {
		n.ElemType = NoType
	}
}

// Has reports whether n has a direct child with key.
func (n *Node) Has(key string) bool {
	return n.child(key) != nil
}

func (n *Node) child(key string) *Node {
	if !n.IsContainer() || n.Kind == ListSectionKind {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind.IsKeyed() && c.Key == key {
			return c
		}
	}
	return nil
}

// Child looks up a descendant by key or dotted path. Every part but the
// last must name a section.
func (n *Node) Child(path string) *Node {
	parts := SplitPath(path)
	if parts == nil {
		return nil
	}
	cur := n
	for i, part := range parts {
		c := cur.child(part)
		if c == nil {
			return nil
		}
		if i == len(parts)-1 {
			return c
		}
		if c.Kind != SectionKind {
			return nil
		}
		cur = c
	}
	return nil
}

// Section looks up a plain section by key or dotted path.
func (n *Node) Section(path string) *Node {
	c := n.Child(path)
	if c == nil || c.Kind != SectionKind {
		return nil
	}
	return c
}

func (n *Node) ListSection(path string) *Node {
	c := n.Child(path)
	if c == nil || c.Kind != ListSectionKind {
		return nil
	}
	return c
}

// Scalar looks up a scalar by key or dotted path.
func (n *Node) Scalar(path string) *Node {
	c := n.Child(path)
	if c == nil || c.Kind != ScalarKind {
		return nil
	}
	return c
}

// Scalars returns the scalar children of n.
func (n *Node) Scalars() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Kind == ScalarKind {
			res = append(res, c)
		}
	}
	return res
}

// Comment returns the comment child of n at index whose text matches
// text. Texts match when they render as the same comment, ignoring
// indentation.
func (n *Node) Comment(text string, index int) *Node {
	if text == "" || index < 0 || index >= len(n.Children) || n.Kind == ListSectionKind {
		return nil
	}
	c := n.Children[index]
	if c.Kind != CommentKind || CommentLine(c.Text) != CommentLine(text) {
		return nil
	}
	return c
}

// CommentLine returns the comment text with surrounding space removed
// and the "#" marker present.
func CommentLine(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return "#"
	}
	if !strings.HasPrefix(t, "#") {
		t = "# " + t
	}
	return t
}

// Blank returns the child of n at index if it is a blank line.
func (n *Node) Blank(index int) *Node {
	if index < 0 || index >= len(n.Children) || n.Kind == ListSectionKind {
		return nil
	}
	c := n.Children[index]
	if c.Kind != BlankKind {
		return nil
	}
	return c
}

// HoistBlanks moves the blank lines that end a section of n to just
// after the section, recursively. That is where a parser places them, so
// the tree renders the same but reads back in the same shape.
func (n *Node) HoistBlanks() {
	for i := 0; i < len(n.Children); i++ {
		c := n.Children[i]
		if c.Kind != SectionKind {
			continue
		}
		c.HoistBlanks()
		k := len(c.Children)
		for k > 0 && c.Children[k-1].Kind == BlankKind {
			k--
		}
		if k == len(c.Children) {
			continue
		}
		moved := slices.Clone(c.Children[k:])
		c.Children = c.Children[:k]
		for _, b := range moved {
			b.Parent = n
		}
		n.Children = slices.Insert(n.Children, i+1, moved...)
		n.renumber(i + 1)
		i += len(moved)
	}
}

// Visit walks n depth first in child order. f is called before (isPost
// false) and after (isPost true) the children of each node; returning
// false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Find returns the first descendant of n, in document order, for which
// pred holds.
func (n *Node) Find(pred func(*Node) bool) *Node {
	for _, c := range n.Children {
		if pred(c) {
			return c
		}
		if r := c.Find(pred); r != nil {
			return r
		}
	}
	return nil
}

// Sort orders the children of n and of its sections by index.
func (n *Node) Sort() {
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return a.Index - b.Index
	})
	for _, c := range n.Children {
		if c.Kind == SectionKind {
			c.Sort()
		}
	}
}

// Sorted returns the children of n ordered by index without changing n.
func (n *Node) Sorted() []*Node {
	res := slices.Clone(n.Children)
	slices.SortStableFunc(res, func(a, b *Node) int {
		return a.Index - b.Index
	})
	return res
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep copies n into dst. The copy keeps n's parent pointer;
// children of the copy point at the copy.
func (n *Node) CloneTo(dst *Node) *Node {
	*dst = *n
	if n.Comments != nil {
		dst.Comments = slices.Clone(n.Comments)
	}
	dst.Children = nil
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := c.CloneTo(&Node{})
			cc.Parent = dst
			dst.Children[i] = cc
		}
	}
	return dst
}
