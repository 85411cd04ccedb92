// Package treediff renders character-level diffs between two render tree
// dumps, for comparing the layout of two documents.
package treediff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Dumps diffs two traversal dumps and returns a terminal-colorized
// rendering (insertions green, deletions red). Returns "" when the dumps
// are equal.
func Dumps(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}

// Plain is Dumps without terminal escapes: deleted runs are wrapped in
// [-...-], inserted runs in {+...+}.
func Plain(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(diff.Text)
			b.WriteString("+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(diff.Text)
			b.WriteString("-]")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
