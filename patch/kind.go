package patch

import "fmt"

type Kind int

const (
	JSONPatch Kind = iota
	MergePatch
)

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"json":  JSONPatch,
		"6902":  JSONPatch,
		"merge": MergePatch,
		"7396":  MergePatch,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	switch k {
	case JSONPatch:
		return "json"
	case MergePatch:
		return "merge"
	}
	return "<unknown patch kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	v, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
