package main

import (
	"fmt"

	"github.com/axfmt/jsondoc"

	"github.com/scott-cotton/cli"
)

type MatchConfig struct {
	*MainConfig
	Match *cli.Command
}

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a rule", cli.ErrUsage)
	}
	rule := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := loadDoc(file, cc.In)
		if err != nil {
			return err
		}
		hits, err := jsondoc.Filter(doc, rule)
		if err != nil {
			return err
		}
		for _, hit := range hits {
			if err := writeDoc(cfg.MainConfig, cc.Out, hit); err != nil {
				return err
			}
		}
	}
	return nil
}
