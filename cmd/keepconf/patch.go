package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/config"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/patch"
)

func patchFile(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := needArgs("patch", args, 2, "a patch file and a target file"); err != nil {
		return err
	}
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	target := args[1]
	root, _, err := readConf(target, cfg.sink())
	if err != nil {
		return err
	}
	kind := patch.JSONPatch
	if cfg.Merge {
		kind = patch.MergePatch
	}
	res, err := patch.Apply(root, kind, doc)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	log := cfg.logger()
	log.Debug("patched", "file", target, "kind", kind,
		"updated", res.Updated, "added", res.Added, "removed", res.Removed)
	if !cfg.Write {
		return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
	}
	if target == "-" {
		return fmt.Errorf("%w: -w cannot write stdin", cli.ErrUsage)
	}
	if !res.Changed() {
		return nil
	}
	out, err := encode.String(root)
	if err != nil {
		return err
	}
	perm := os.FileMode(0644)
	if fi, err := os.Stat(target); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := config.WriteFile(target, []byte(out), perm); err != nil {
		return fmt.Errorf("error writing %s: %w", target, err)
	}
	log.Info("patched", "file", target)
	return nil
}
