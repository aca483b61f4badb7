package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/node"
)

// Conf renders a node in the native format when printed.
type Conf struct{ *node.Node }

func (c Conf) String() string {
	s, err := encode.String(c.Node)
	if err != nil {
		return fmt.Sprintf("[raw *node.Node] %v", c.Node)
	}
	return s
}

// Logf writes to stderr. Trees and JSON-like values in args are
// rendered first.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *node.Node:
			args[i] = Conf{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
