package config

import (
	"fmt"

	"github.com/signadot/keepconf/node"
)

// Set stores v in the scalar at path, creating the scalar and its
// sections if needed. It fails if a node of another kind is in the way.
func (f *File) Set(path string, v any) error {
	val, err := node.ValueOf(v)
	if err != nil {
		return err
	}
	if sc := f.root.Scalar(path); sc != nil {
		sc.Value = val
		return nil
	}
	if f.root.Child(path) != nil {
		return fmt.Errorf("%w: %s is not a scalar", node.ErrBadPath, path)
	}
	if (&Declaration{f: f}).AddScalar(path, "", val) == nil {
		return fmt.Errorf("%w: cannot create %s", node.ErrBadPath, path)
	}
	return nil
}

// SetList replaces the elements of the list at path, creating it if
// needed. All values must have the same type.
func (f *File) SetList(path string, values ...any) error {
	vals := make([]node.Value, len(values))
	for i, x := range values {
		v, err := node.ValueOf(x)
		if err != nil {
			return err
		}
		if i > 0 && v.Type != vals[0].Type {
			return fmt.Errorf("%w: %s element %d is %s, not %s", node.ErrBadValue, path, i, v.Type, vals[0].Type)
		}
		vals[i] = v
	}
	list := f.root.ListSection(path)
	if list == nil {
		if f.root.Child(path) != nil {
			return fmt.Errorf("%w: %s is not a list", node.ErrBadPath, path)
		}
		list = (&Declaration{f: f}).AddList(path)
		if list == nil {
			return fmt.Errorf("%w: cannot create %s", node.ErrBadPath, path)
		}
	}
	list.Clear()
	for _, v := range vals {
		list.AddValue(v)
	}
	return nil
}
