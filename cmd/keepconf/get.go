package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/node"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := needArgs("get", args, 1, "a dotted path"); err != nil {
		return err
	}
	path := args[0]
	if node.SplitPath(path) == nil {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	for _, file := range filesOrStdin(args[1:]) {
		root, _, err := readConf(file, cfg.sink())
		if err != nil {
			return err
		}
		n := root.Child(path)
		if n == nil {
			// nothing there, and nothing to complain about
			continue
		}
		if n.Kind == node.ScalarKind {
			fmt.Fprintln(cc.Out, n.Value.Literal())
			continue
		}
		if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s of %s: %w", path, file, err)
		}
	}
	return nil
}
