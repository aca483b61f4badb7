package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/node"
	"github.com/signadot/keepconf/parse"
)

func kcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readConf parses the file at p, or stdin for "-". Diagnostics go to
// sink under the file's name.
func readConf(p string, sink diag.Sink) (*node.Node, []byte, error) {
	var r io.Reader
	if p == "-" {
		r = os.Stdin
		p = "<stdin>"
	} else {
		f, err := os.Open(p)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open %q: %w", p, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %s: %w", p, err)
	}
	root, err := parse.Parse(d, parse.ParseFilename(p), parse.ParseSink(sink))
	if err != nil {
		return nil, nil, err
	}
	return root, d, nil
}

// filesOrStdin is args, or stdin when args is empty.
func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func separate(w io.Writer, i, n int) {
	if i < n-1 {
		io.WriteString(w, "\n---\n")
	}
}
