package main

import (
	"fmt"
	"io"

	"github.com/axfmt/jsondoc"

	"github.com/scott-cotton/cli"
)

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := loadDoc(file, cc.In)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

// writeDoc prints the canonical encoding plus a final newline, colorized
// for terminals.
func writeDoc(cfg *MainConfig, w io.Writer, doc jsondoc.Doc) error {
	if err := doc.Encode(w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
