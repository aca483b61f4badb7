package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/format"
	"github.com/signadot/keepconf/merge"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color output even when not on a terminal'"`
	NoColor bool `cli:"name=nocolor desc='never color output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.ConfFormat
}

// useColor reports whether output to w is colored: -color and -nocolor
// win, otherwise w must be a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeTrailingNewline(true),
	}
	if cfg.outFormat().IsConf() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) sink() diag.Sink {
	return diag.Console(os.Stderr, cfg.useColor(os.Stderr))
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	return theLog
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the file'"`
	Diff  bool `cli:"name=d desc='show what would change'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Rules []string

	Check *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Open  bool `cli:"name=open desc='take unknown keys, comments and blank lines from disk'"`
	Write bool `cli:"name=w desc='write the merged result to the disk file'"`

	Merge *cli.Command
}

func (cfg *MergeConfig) policy() merge.Policy {
	if cfg.Open {
		return merge.Open
	}
	return merge.Closed
}

type DiffConfig struct {
	*MainConfig
	Tree bool `cli:"name=tree desc='compare structure instead of lines'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is a JSON merge patch (RFC 7396)'"`
	Write bool `cli:"name=w desc='write the result back to the file'"`

	Patch *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Gops    bool   `cli:"name=gops desc='start a gops agent'"`
	Ext     string `cli:"name=ext desc='suffix of files to watch when none are named' default=.conf"`
	Metrics string `cli:"name=metrics desc='serve prometheus metrics on this address'"`

	Watch *cli.Command
}
