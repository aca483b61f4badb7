package node

// AddValue appends v to the list section n. The first value fixes the
// element type; a value of any other type is dropped and AddValue
// returns false.
func (n *Node) AddValue(v Value) bool {
	if n == nil || n.Kind != ListSectionKind || v.IsZero() {
		return false
	}
	if n.ElemType == NoType {
		n.ElemType = v.Type
	} else if v.Type != n.ElemType {
		return false
	}
	c := NewListScalar(v)
	c.Parent = n
	c.Index = len(n.Children)
	n.Children = append(n.Children, c)
	return true
}

// Contains reports whether the list section n holds a value equal to v.
func (n *Node) Contains(v Value) bool {
	if n == nil || n.Kind != ListSectionKind {
		return false
	}
	for _, c := range n.Children {
		if c.Kind == ListScalarKind && c.Value.Equal(v) {
			return true
		}
	}
	return false
}

// Values returns the elements of the list section n in index order.
func (n *Node) Values() []Value {
	if n == nil || n.Kind != ListSectionKind {
		return nil
	}
	res := make([]Value, 0, len(n.Children))
	for _, c := range n.Sorted() {
		if c.Kind == ListScalarKind {
			res = append(res, c.Value)
		}
	}
	return res
}
