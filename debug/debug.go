// Package debug gates per-area diagnostics behind NBFMT_DEBUG_*
// environment variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk   bool
	Filter bool
	Select bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("NBFMT_DEBUG_WALK")
	d.Filter = boolEnv("NBFMT_DEBUG_FILTER")
	d.Select = boolEnv("NBFMT_DEBUG_SELECT")
	d.Parse = boolEnv("NBFMT_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Filter() bool {
	return d.Filter
}
func Select() bool {
	return d.Select
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any, json.Number:
			b, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(b)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func JSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
