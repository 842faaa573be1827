package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Parse bool
	Query bool
	Diff  bool
	Patch bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("TOMLCORE_DEBUG_SCAN")
	d.Parse = boolEnv("TOMLCORE_DEBUG_PARSE")
	d.Query = boolEnv("TOMLCORE_DEBUG_QUERY")
	d.Diff = boolEnv("TOMLCORE_DEBUG_DIFF")
	d.Patch = boolEnv("TOMLCORE_DEBUG_PATCH")
	d.LSP = boolEnv("TOMLCORE_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool  { return d.Scan }
func Parse() bool { return d.Parse }
func Query() bool { return d.Query }
func Diff() bool  { return d.Diff }
func Patch() bool { return d.Patch }
func LSP() bool   { return d.LSP }

// LogAny writes v to stderr as JSON, falling back to %v if it cannot be
// marshaled.
func LogAny(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(b)
}
