// Package debug holds env-gated trace switches for development. Switches
// are read once at startup from RENDERTREE_DEBUG_* variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Engine   bool
	Traverse bool
	RPC      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Engine = boolEnv("RENDERTREE_DEBUG_ENGINE")
	d.Traverse = boolEnv("RENDERTREE_DEBUG_TRAVERSE")
	d.RPC = boolEnv("RENDERTREE_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Engine() bool {
	return d.Engine
}
func Traverse() bool {
	return d.Traverse
}
func RPC() bool {
	return d.RPC
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
