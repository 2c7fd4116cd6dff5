package main

import (
	"fmt"
	"os"

	"github.com/axfmt/jsondoc"

	"github.com/scott-cotton/cli"
)

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchDoc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", jsondoc.ErrUnreadable, args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := loadDoc(file, cc.In)
		if err != nil {
			return err
		}
		patched, err := jsondoc.Patch(doc, patchDoc)
		if err != nil {
			return fmt.Errorf("patching %s: %w", file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, patched); err != nil {
			return err
		}
	}
	return nil
}
