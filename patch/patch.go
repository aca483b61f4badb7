package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/keepconf/debug"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/merge"
	"github.com/signadot/keepconf/node"
)

// Result says what applying a patch changed.
type Result struct {
	*merge.Result
	// Removed are the paths the patch deleted.
	Removed []string

	replaced []string
}

func (r *Result) Changed() bool {
	return len(r.Removed) != 0 || r.Result.Changed()
}

// Apply applies the patch doc of the given kind to target in place. On
// error target is unchanged.
func Apply(target *node.Node, kind Kind, doc []byte) (*Result, error) {
	in, err := encode.JSON(target)
	if err != nil {
		return nil, err
	}
	var out []byte
	switch kind {
	case JSONPatch:
		ops, err := jsonpatch.DecodePatch(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		out, err = ops.Apply(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	case MergePatch:
		out, err = jsonpatch.MergePatch(in, doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadKind, kind)
	}
	if debug.Patch() {
		debug.Logf("patch %s: %s -> %s\n", kind, in, out)
	}
	patched, err := FromJSON(out)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	prepare(patched, target, res)
	res.Result = merge.Reconcile(patched, target, merge.Open)
	res.Updated = append(res.Updated, res.replaced...)
	return res, nil
}

// prepare makes target and patched agree before the merge: keys missing
// from patched or of another kind are removed from target, lists in
// target take the patched values, unchanged values keep their target
// type, and patched children are numbered so that existing keys keep
// their place and new keys follow the last existing one and the blank
// lines after it.
func prepare(patched, target *node.Node, res *Result) {
	for _, c := range target.Sorted() {
		if !c.Kind.IsKeyed() {
			continue
		}
		pc := patched.Child(c.Key)
		if pc == nil || pc.Kind != c.Kind {
			target.Remove(c.Key)
			if pc == nil {
				res.Removed = append(res.Removed, c.Path)
			}
		}
	}
	next := len(target.Children)
	if last := lastKeyed(target); last != nil {
		next = last.Index + 1
		for next < len(target.Children) && target.Children[next].Kind == node.BlankKind {
			next++
		}
	}
	for _, pc := range patched.Children {
		tc := target.Child(pc.Key)
		if tc == nil {
			pc.Index = next
			next++
			continue
		}
		pc.Index = tc.Index
		switch pc.Kind {
		case node.SectionKind:
			prepare(pc, tc, res)
		case node.ListSectionKind:
			if replaceList(pc, tc) {
				res.replaced = append(res.replaced, tc.Path)
			}
		case node.ScalarKind:
			pc.Value = retype(tc.Value, pc.Value)
		}
	}
}

func lastKeyed(n *node.Node) *node.Node {
	var res *node.Node
	for _, c := range n.Children {
		if c.Kind.IsKeyed() && (res == nil || c.Index > res.Index) {
			res = c
		}
	}
	return res
}

func replaceList(pc, tc *node.Node) bool {
	vals := make([]node.Value, 0, len(pc.Children))
	prev := tc.Values()
	for i, v := range pc.Values() {
		if i < len(prev) {
			v = retype(prev[i], v)
		}
		vals = append(vals, v)
	}
	same := len(vals) == len(prev)
	for i := 0; same && i < len(vals); i++ {
		same = vals[i].Same(prev[i])
	}
	if same {
		return false
	}
	tc.Clear()
	for _, v := range vals {
		tc.AddValue(v)
	}
	return true
}

// retype returns old when nv is the same value read back from JSON, and
// otherwise nv in the type of old where that type can hold it.
func retype(old, nv node.Value) node.Value {
	if old.Literal() == nv.Literal() {
		return old
	}
	if old.Type.IsNumber() && nv.Type.IsNumber() {
		od, err1 := old.AsDecimal()
		nd, err2 := nv.AsDecimal()
		if err1 == nil && err2 == nil && od.Cmp(nd) == 0 {
			return old
		}
	}
	switch old.Type {
	case node.SymbolType:
		if nv.Type == node.StringType {
			return node.FromSymbol(nv.String)
		}
	case node.LongType:
		if nv.Type == node.IntType {
			return node.FromLong(nv.Int)
		}
	case node.FloatType:
		if f, err := nv.AsFloat(); err == nil && nv.Type.IsNumber() {
			return node.FromFloat(f)
		}
	case node.DecimalType:
		if d, err := nv.AsDecimal(); err == nil && nv.Type.IsNumber() {
			return node.FromDecimal(d)
		}
	}
	return nv
}
