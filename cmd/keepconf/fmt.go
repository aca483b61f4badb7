package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/config"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/libdiff"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w needs files", cli.ErrUsage)
	}
	log := cfg.logger()
	for _, file := range filesOrStdin(args) {
		root, d, err := readConf(file, cfg.sink())
		if err != nil {
			return err
		}
		out, err := encode.String(root)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if cfg.Diff {
			lines := libdiff.Lines(string(d), out)
			if libdiff.HasChanges(lines) {
				fmt.Fprintf(cc.Out, "%s:\n", file)
				if err := libdiff.Write(cc.Out, lines, cfg.useColor(cc.Out)); err != nil {
					return err
				}
			}
		}
		switch {
		case cfg.Write:
			if out == string(d) {
				continue
			}
			perm := os.FileMode(0644)
			if fi, err := os.Stat(file); err == nil {
				perm = fi.Mode().Perm()
			}
			if err := config.WriteFile(file, []byte(out), perm); err != nil {
				return fmt.Errorf("error writing %s: %w", file, err)
			}
			log.Info("formatted", "file", file)
		case !cfg.Diff:
			fmt.Fprintln(cc.Out, out)
		}
	}
	return nil
}
