package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/keepconf/node"
)

// Rule is a named boolean expression.
type Rule struct {
	Name string
	Expr string
}

// ParseRule reads a rule written as name=expression.
func ParseRule(s string) (Rule, error) {
	name, src, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	src = strings.TrimSpace(src)
	if !ok || name == "" || src == "" {
		return Rule{}, fmt.Errorf("%w: %q is not name=expression", ErrRule, s)
	}
	return Rule{Name: name, Expr: src}, nil
}

func (r Rule) String() string {
	return r.Name + "=" + r.Expr
}

// Failure is a rule that did not hold, or could not be evaluated.
type Failure struct {
	Rule Rule
	Err  error
}

func (f Failure) Error() string {
	return f.Rule.Name + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Check evaluates each rule against root and returns the failures, in
// rule order. A rule fails when it evaluates to false (ErrFailed), to a
// non boolean (ErrNotBool) or not at all (ErrEval).
func Check(root *node.Node, rules []Rule, opts ...EvalOption) []Failure {
	var res []Failure
	for _, r := range rules {
		v, err := Eval(r.Expr, root, opts...)
		switch {
		case err != nil:
		case v == false:
			err = ErrFailed
		case v != true:
			err = fmt.Errorf("%w: got %T", ErrNotBool, v)
		}
		if err != nil {
			res = append(res, Failure{Rule: r, Err: err})
		}
	}
	return res
}
