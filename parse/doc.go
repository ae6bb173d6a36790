// Package parse turns the raw page text and ragged cell grids of a guideline
// document into the grammar tree of package model.
//
// One [Parser] exists per publisher convention. Both parsers are
// best-effort: table-grid extraction quality varies wildly between documents,
// so rows that fail a pattern are skipped silently and only whole-document
// problems surface as errors elsewhere.
//
// Parsing state (the accumulating segment map plus the segment and group
// currently open) is carried in an explicit [Context] threaded through the
// calls, which keeps the dependency of each table on prior pages visible and
// testable.
package parse
