package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := filesOrStdin(args)
	for i, file := range files {
		root, _, err := readConf(file, cfg.sink())
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		separate(cc.Out, i, len(files))
	}
	return nil
}
