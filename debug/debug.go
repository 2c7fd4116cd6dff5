// Package debug provides env-gated debug logging for document
// operations. Flags are read once at init from JSONDOC_DEBUG_* variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONDOC_DEBUG_PARSE")
	d.Patch = boolEnv("JSONDOC_DEBUG_PATCH")
	d.Match = boolEnv("JSONDOC_DEBUG_MATCH")
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

func Parse() bool { return d.Parse }
func Patch() bool { return d.Patch }
func Match() bool { return d.Match }
