package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Mandatory/conditional usage indicators bleeding from the status
	// columns into the description column, e.g. "Party qualifier M C".
	statusSuffix = regexp.MustCompile(`\s+[MC]\s+[MCN](\s+.*)?$`)

	notUsedSuffix = regexp.MustCompile(`\s+NOT\s+USED$`)
)

// Normalize cleans a description: NFC-folds the text (PDF extraction tends
// to emit decomposed accents), strips a trailing status-code pair and a
// trailing "NOT USED" marker, and trims surrounding whitespace.
//
// Normalize is idempotent; empty input yields the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	cleaned := norm.NFC.String(text)
	cleaned = statusSuffix.ReplaceAllString(cleaned, "")
	cleaned = notUsedSuffix.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// collapseSpaces rewrites any run of whitespace as a single space. Format
// specifiers arrive with line breaks when the column is narrow.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
