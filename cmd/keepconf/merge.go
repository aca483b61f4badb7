package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/config"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/merge"
)

func mergeFiles(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := needArgs("merge", args, 2, "a declared file and a disk file"); err != nil {
		return err
	}
	declared, _, err := readConf(args[0], cfg.sink())
	if err != nil {
		return err
	}
	disk, _, err := readConf(args[1], cfg.sink())
	if err != nil {
		return err
	}
	res := merge.Reconcile(disk, declared, cfg.policy())
	log := cfg.logger()
	for _, p := range res.Conflicts {
		log.Warn("kind conflict", "path", p)
	}
	log.Debug("merged", "policy", cfg.policy(), "updated", res.Updated, "added", res.Added, "lines", res.Lines)
	if cfg.Write {
		if args[1] == "-" {
			return fmt.Errorf("%w: -w cannot write stdin", cli.ErrUsage)
		}
		out, err := encode.String(declared)
		if err != nil {
			return err
		}
		if err := config.WriteFile(args[1], []byte(out), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", args[1], err)
		}
		log.Info("merged", "file", args[1], "changed", res.Changed())
		return nil
	}
	return encode.Encode(declared, cc.Out, cfg.encOpts(cc.Out)...)
}
