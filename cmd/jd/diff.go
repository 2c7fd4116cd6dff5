package main

import (
	"fmt"

	"github.com/axfmt/jsondoc"

	"github.com/scott-cotton/cli"
)

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	from, err := loadDoc(args[0], cc.In)
	if err != nil {
		return err
	}
	to, err := loadDoc(args[1], cc.In)
	if err != nil {
		return err
	}
	out := jsondoc.DiffText(from, to)
	if cfg.Color || isTTY(cc.Out) {
		out = jsondoc.Diff(from, to)
	}
	_, err = fmt.Fprintln(cc.Out, out)
	return err
}
