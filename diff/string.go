// Package diff compares two parsed TOML documents, either as rendered
// text (Strings) or structurally as a JSON merge patch (Tables).
// Grounded on the teacher's libdiff package, which diffed ir.Node pairs
// the same two ways.
package diff

import (
	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Strings returns a human-readable diff of from and to, the way the
// teacher's DiffString diffed two ir.Node string values.
func Strings(from, to string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
