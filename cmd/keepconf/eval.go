package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/eval"
)

func evalFiles(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := needArgs("eval", args, 1, "an expression"); err != nil {
		return err
	}
	src := args[0]
	files := filesOrStdin(args[1:])
	for i, file := range files {
		root, _, err := readConf(file, cfg.sink())
		if err != nil {
			return err
		}
		res, err := eval.Eval(src, root, eval.EvalVars(cfg.Env))
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := writeResult(cc.Out, res); err != nil {
			return err
		}
		separate(cc.Out, i, len(files))
	}
	return nil
}

func writeResult(w io.Writer, res any) error {
	switch res.(type) {
	case map[string]any, []any:
		d, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	_, err := fmt.Fprintln(w, res)
	return err
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s, already a value", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
