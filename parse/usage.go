package parse

import (
	"regexp"
	"strings"
)

// Usage text for one element is regularly spread over several physical table
// rows: the element's own row carries the first line and the rows below
// carry additional coded-value definitions with an empty code column. The
// continuation heuristics differ between the two conventions and are kept
// separate deliberately; unifying them would change which lines fold in for
// one of the formats.
var (
	faureciaContinuation = regexp.MustCompile(`^['"]?[A-Z0-9]+['"]?\s*=`)

	vdaCodedContinuation  = regexp.MustCompile(`^['"]?[A-Z0-9]+['"]?\s*=`)
	vdaPhraseContinuation = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z]`)
)

func vdaContinues(s string) bool {
	return vdaCodedContinuation.MatchString(s) || vdaPhraseContinuation.MatchString(s)
}

// consolidateUsage folds continuation rows following rows[start] into one
// newline-joined usage string. first is the usage text of the starting row
// itself. The scan stops at rows shorter than minCols, rows whose code
// column opens a new element or group, and rows whose usage column (at
// usageCol) fails the convention's continuation test.
//
// It returns the consolidated text and the index of the first row the
// caller should process next, so consumed continuation rows are never
// re-emitted as separate elements.
func consolidateUsage(rows [][]string, start int, first string, minCols, usageCol int, continues func(string) bool) (string, int) {
	parts := []string{strings.TrimSpace(first)}
	next := start + 1
	for next < len(rows) {
		row := rows[next]
		if len(row) < minCols {
			break
		}
		code := cell(row, 0)
		if elementCode.MatchString(code) || groupCode.MatchString(code) {
			break
		}
		usage := cell(row, usageCol)
		if usage == "" || !continues(usage) {
			break
		}
		parts = append(parts, usage)
		next++
	}
	return strings.Join(parts, "\n"), next
}
