// Package segmap provides a fluent API for extracting normalized EDI message
// grammar (segments, composite groups, data elements) from guideline PDFs.
//
// Basic usage:
//
//	segments, warnings, err := segmap.Open("guideline.pdf").Segments()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", segmap.FormatWarnings(warnings))
//	}
//
// With options:
//
//	segments, _, err := segmap.Open("guideline.pdf").
//	    DetectPages(5).
//	    ForceConvention(detect.VDA4932).
//	    Segments()
//
// Callers that already hold extracted page text and table grids can bypass
// the PDF adapter with FromDocument.
package segmap

import (
	"strings"

	"segmap/source"
)

// Open prepares an Extractor over a PDF file. The file is not touched until
// a terminal operation runs.
//
// Example:
//
//	segments, warnings, err := segmap.Open("guideline.pdf").Segments()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument prepares an Extractor over an already materialized document,
// typically a source.MemDocument in tests.
func FromDocument(doc source.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Warning reports a non-fatal extraction anomaly: the run succeeded but the
// result may be incomplete or rest on a fallback decision.
type Warning struct {
	Code    string
	Message string
}

// Warning codes.
const (
	// WarnDetectFallback: no convention marker matched and the Faurecia
	// convention was assumed.
	WarnDetectFallback = "detect-fallback"

	// WarnOrphanTables: tables appeared before any segment header and had
	// to be dropped.
	WarnOrphanTables = "orphan-tables"
)

// FormatWarnings renders warnings as a single human-readable line.
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(w.Code)
		sb.WriteString(": ")
		sb.WriteString(w.Message)
	}
	return sb.String()
}
