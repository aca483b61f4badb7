package node

import "fmt"

type Kind int

const (
	CommentKind Kind = iota
	BlankKind
	ScalarKind
	ListScalarKind
	SectionKind
	ListSectionKind
	RootKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		CommentKind:     "Comment",
		BlankKind:       "Blank",
		ScalarKind:      "Scalar",
		ListScalarKind:  "ListScalar",
		SectionKind:     "Section",
		ListSectionKind: "ListSection",
		RootKind:        "Root",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Comment":     CommentKind,
		"Blank":       BlankKind,
		"Scalar":      ScalarKind,
		"ListScalar":  ListScalarKind,
		"Section":     SectionKind,
		"ListSection": ListSectionKind,
		"Root":        RootKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsContainer reports whether nodes of kind k hold children.
func (k Kind) IsContainer() bool {
	switch k {
	case SectionKind, ListSectionKind, RootKind:
		return true
	default:
		return false
	}
}

// IsKeyed reports whether nodes of kind k carry a key and a path.
func (k Kind) IsKeyed() bool {
	switch k {
	case ScalarKind, SectionKind, ListSectionKind:
		return true
	default:
		return false
	}
}
