package eval

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/keepconf/debug"
	"github.com/signadot/keepconf/node"
)

type evalOpts struct {
	vars map[string]any
}

type EvalOption func(*evalOpts)

// EvalVars adds variables to the environment. They shadow top level keys
// of the tree with the same name.
func EvalVars(vars map[string]any) EvalOption {
	return func(o *evalOpts) {
		if o.vars == nil {
			o.vars = map[string]any{}
		}
		maps.Copy(o.vars, vars)
	}
}

// Env returns the variables an expression sees for root.
func Env(root *node.Node, opts ...EvalOption) map[string]any {
	o := &evalOpts{}
	for _, opt := range opts {
		opt(o)
	}
	env, _ := ToAny(root).(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	maps.Copy(env, o.vars)
	return env
}

// Compile compiles src for evaluation against root.
func Compile(src string, root *node.Node, opts ...EvalOption) (*vm.Program, map[string]any, error) {
	env := Env(root, opts...)
	prg, err := expr.Compile(src, append(exprOpts(root), expr.Env(env))...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return prg, env, nil
}

// Eval evaluates src against root and returns the result.
func Eval(src string, root *node.Node, opts ...EvalOption) (any, error) {
	prg, env, err := Compile(src, root, opts...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", src, res)
	}
	return res, nil
}
