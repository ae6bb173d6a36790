// Package source supplies the raw material the parsers consume: per-page
// plain text and per-page grids of string cells.
//
// The [Document] interface is the seam between grammar parsing and PDF
// mechanics. [PDFDocument] implements it on top of the tabula extraction
// library and fully materializes every page when opened, so parsing itself
// performs no I/O. [MemDocument] implements it over in-memory slices for
// tests and for callers that already hold extracted content.
package source
