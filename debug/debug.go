package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
	Watch bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("KEEPCONF_DEBUG_PARSE")
	d.Merge = boolEnv("KEEPCONF_DEBUG_MERGE")
	d.Watch = boolEnv("KEEPCONF_DEBUG_WATCH")
	d.Patch = boolEnv("KEEPCONF_DEBUG_PATCH")
	d.Eval = boolEnv("KEEPCONF_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Watch() bool {
	return d.Watch
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
