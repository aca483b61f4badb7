package config

import (
	"strings"

	"github.com/signadot/keepconf/node"
)

// Declaration builds the default tree of a file. Methods that create a
// node return it, or nil after emitting a diagnostic when it cannot be
// created. Missing intermediate sections are created along the way.
// Nothing is deduplicated: declaring the same scalar twice makes two
// siblings.
type Declaration struct {
	f *File
}

func (d *Declaration) Root() *node.Node {
	return d.f.root
}

// AddComment adds a comment line to the section at path, or to the root
// when path is empty.
func (d *Declaration) AddComment(path, text string) *node.Node {
	parent := d.parent(path)
	if parent == nil {
		return nil
	}
	c := node.NewComment(text)
	parent.Add(c)
	return c
}

// AddBlank adds a blank line to the section at path, or to the root when
// path is empty.
func (d *Declaration) AddBlank(path string) *node.Node {
	parent := d.parent(path)
	if parent == nil {
		return nil
	}
	b := node.NewBlank()
	parent.Add(b)
	return b
}

// AddSection returns the section at path, creating it and any missing
// ancestors.
func (d *Declaration) AddSection(path string) *node.Node {
	parts := node.SplitPath(path)
	if parts == nil {
		d.f.emitf("cannot create section %q: bad path", path)
		return nil
	}
	return d.sections(parts)
}

// AddScalar adds a scalar with a default value. path is the scalar's
// full path; key may be empty, in which case it is the last part of
// path. A key that differs from the last part of path makes path the
// parent section instead.
func (d *Declaration) AddScalar(path, key string, value any) *node.Node {
	parts := node.SplitPath(path)
	if parts == nil {
		d.f.emitf("cannot create scalar %q: bad path", path)
		return nil
	}
	key, parts = splitKey(key, parts)
	if !d.validKey(path, key) {
		return nil
	}
	v, err := node.ValueOf(value)
	if err != nil {
		d.f.emitf("cannot create scalar %s: %v", node.JoinPath(strings.Join(parts, "."), key), err)
		return nil
	}
	parent := d.sections(parts)
	if parent == nil {
		return nil
	}
	sc := node.NewScalar(node.JoinPath(parent.Path, key), key, v)
	parent.Add(sc)
	return sc
}

// AddList adds a list section at path holding values. Values of a type
// other than the first are dropped without notice.
func (d *Declaration) AddList(path string, values ...any) *node.Node {
	parts := node.SplitPath(path)
	if parts == nil {
		d.f.emitf("cannot create list %q: bad path", path)
		return nil
	}
	key, parts := parts[len(parts)-1], parts[:len(parts)-1]
	parent := d.sections(parts)
	if parent == nil {
		return nil
	}
	list := node.NewListSection(node.JoinPath(parent.Path, key), key)
	for _, x := range values {
		v, err := node.ValueOf(x)
		if err != nil {
			d.f.emitf("list %s: %v", list.Path, err)
			continue
		}
		list.AddValue(v)
	}
	parent.Add(list)
	return list
}

func splitKey(key string, parts []string) (string, []string) {
	last := parts[len(parts)-1]
	if key == "" || key == last {
		return last, parts[:len(parts)-1]
	}
	return key, parts
}

func (d *Declaration) validKey(path, key string) bool {
	if key == "" || strings.Contains(key, ".") {
		d.f.emitf("cannot create %q under %q: bad key", key, path)
		return false
	}
	return true
}

func (d *Declaration) parent(path string) *node.Node {
	if path == "" {
		return d.f.root
	}
	return d.AddSection(path)
}

// sections walks parts from the root, creating plain sections where
// none exist.
func (d *Declaration) sections(parts []string) *node.Node {
	cur := d.f.root
	for _, part := range parts {
		ex := cur.Child(part)
		switch {
		case ex == nil:
			sec := node.NewSection(node.JoinPath(cur.Path, part), part)
			cur.Add(sec)
			cur = sec
		case ex.Kind == node.SectionKind:
			cur = ex
		default:
			d.f.emitf("cannot create section %s: %s is a %s", node.JoinPath(cur.Path, part), ex.Path, ex.Kind)
			return nil
		}
	}
	return cur
}
