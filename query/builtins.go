package query

import "sort"

func init() {
	Register(Symbol{
		Name: "keys",
		Doc:  "keys(table) returns a table's keys, sorted",
		Fn: func(m map[string]any) []string {
			out := make([]string, 0, len(m))
			for k := range m {
				out = append(out, k)
			}
			sort.Strings(out)
			return out
		},
	})
	Register(Symbol{
		Name: "has",
		Doc:  "has(table, key) reports whether key is present",
		Fn: func(m map[string]any, key string) bool {
			_, ok := m[key]
			return ok
		},
	})
}
