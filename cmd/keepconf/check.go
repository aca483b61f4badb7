package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/eval"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	rules := make([]eval.Rule, 0, len(cfg.Rules))
	for _, s := range cfg.Rules {
		r, err := eval.ParseRule(s)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rules = append(rules, r)
	}
	coll := &diag.Collector{}
	sink := diag.Tee(coll, diag.Console(cc.Out, cfg.useColor(cc.Out)))
	bad := 0
	for _, file := range filesOrStdin(args) {
		coll.Reset()
		root, _, err := readConf(file, sink)
		if err != nil {
			return err
		}
		bad += coll.Len()
		for _, f := range eval.Check(root, rules) {
			diag.Emitf(sink, file, "rule %s", f)
			bad++
		}
	}
	if bad != 0 {
		fmt.Fprintf(cc.Out, "%d problems\n", bad)
		return cli.ExitCodeErr(1)
	}
	ok := "ok"
	if cfg.useColor(cc.Out) {
		ok = color.GreenString(ok)
	}
	fmt.Fprintln(cc.Out, ok)
	return nil
}
