package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Expand  bool
	Lift    bool
	Resolve bool
	Eval    bool
	Lsp     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Expand = boolEnv("QUOTEFOLD_DEBUG_EXPAND")
	d.Lift = boolEnv("QUOTEFOLD_DEBUG_LIFT")
	d.Resolve = boolEnv("QUOTEFOLD_DEBUG_RESOLVE")
	d.Eval = boolEnv("QUOTEFOLD_DEBUG_EVAL")
	d.Lsp = boolEnv("QUOTEFOLD_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Expand() bool {
	return d.Expand
}
func Lift() bool {
	return d.Lift
}
func Resolve() bool {
	return d.Resolve
}
func Eval() bool {
	return d.Eval
}
func Lsp() bool {
	return d.Lsp
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
