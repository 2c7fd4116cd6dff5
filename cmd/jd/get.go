package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/axfmt/jsondoc"

	"github.com/scott-cotton/cli"
)

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := loadDoc(file, cc.In)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, atPath(doc, path)); err != nil {
			return err
		}
	}
	return nil
}

// atPath walks a dotted path; numeric segments index arrays, everything
// else keys objects. Lookups follow facade semantics, so a missing key
// upserts on the in-memory copy and mismatched shapes yield empty values.
func atPath(doc jsondoc.Doc, path string) jsondoc.Doc {
	if path == "" || path == "." {
		return doc
	}
	for _, seg := range strings.Split(path, ".") {
		if i, err := strconv.Atoi(seg); err == nil && doc.IsArray() {
			doc = doc.Index(i)
			continue
		}
		doc = doc.Key(seg)
	}
	return doc
}
