// Package detect classifies a guideline document into one of the known
// publisher table conventions by inspecting its early pages.
package detect

import (
	"regexp"
	"strings"

	"segmap/source"
)

// Convention identifies a publisher table layout.
type Convention string

const (
	// Faurecia is the linear layout: positional table columns with segment
	// header rows embedded in the tables.
	Faurecia Convention = "faurecia"

	// VDA4932 is the sectioned layout of VDA recommendation 4932: segment
	// headers in the page text, tables carrying only element rows.
	VDA4932 Convention = "vda4932"
)

func (c Convention) String() string { return string(c) }

// DefaultPages is how many leading pages Detect inspects.
const DefaultPages = 10

var (
	vdaHeader      = regexp.MustCompile(`Segment:\s+[A-Z]{3}\s+Cons\.\s*No\.:`)
	faureciaInline = regexp.MustCompile(`Segment:.*Pos\.:\s*\d+.*Level:`)
	faureciaSplit  = regexp.MustCompile(`Segment:\s+Pos\.:\s*\d+\s+Level:`)
	knownMnemonic  = regexp.MustCompile(`\b(UNH|BGM|DTM|NAD|LIN|MOA)\b`)
)

// Detect classifies the document by matching convention markers against the
// text of its first pages (at most the given number, DefaultPages when the
// argument is not positive). Rules are tried in priority order per page and
// the first match wins.
//
// Detection never fails: when no marker matches, the Faurecia convention is
// returned as the fallback. The second return value reports whether a marker
// actually matched, so callers can surface the fallback.
func Detect(doc source.Document, pages int) (Convention, bool) {
	if pages <= 0 {
		pages = DefaultPages
	}
	if n := doc.PageCount(); n < pages {
		pages = n
	}

	for i := 0; i < pages; i++ {
		text := doc.PageText(i)
		if text == "" {
			continue
		}
		switch {
		case vdaHeader.MatchString(text):
			return VDA4932, true
		case faureciaInline.MatchString(text):
			return Faurecia, true
		case faureciaSplit.MatchString(text):
			return Faurecia, true
		case strings.Contains(text, "Pos.:") && knownMnemonic.MatchString(text):
			return Faurecia, true
		}
	}
	return Faurecia, false
}
