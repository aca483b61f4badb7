package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := needArgs("diff", args, 2, "two files"); err != nil {
		return err
	}
	from, _, err := readConf(args[0], cfg.sink())
	if err != nil {
		return err
	}
	to, _, err := readConf(args[1], cfg.sink())
	if err != nil {
		return err
	}
	useColor := cfg.useColor(cc.Out)
	if cfg.Tree {
		changes := libdiff.Tree(from, to)
		for _, c := range changes {
			s := c.String()
			if useColor {
				s = treeColor(c.Op)("%s", s)
			}
			fmt.Fprintln(cc.Out, s)
		}
		if len(changes) != 0 {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	a, err := encode.String(from)
	if err != nil {
		return err
	}
	b, err := encode.String(to)
	if err != nil {
		return err
	}
	lines := libdiff.Lines(a, b)
	if !libdiff.HasChanges(lines) {
		return nil
	}
	if err := libdiff.Write(cc.Out, lines, useColor); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func treeColor(op libdiff.Op) func(string, ...any) string {
	switch op {
	case libdiff.Delete:
		return color.RedString
	case libdiff.Insert:
		return color.GreenString
	case libdiff.Replace:
		return color.YellowString
	case libdiff.Move:
		return color.CyanString
	}
	return fmt.Sprintf
}
