// Package model provides the intermediate representation (IR) for extracted
// EDI message grammar.
//
// This package defines the user-facing data structures produced by every
// extraction, regardless of which publisher convention the source document
// follows.
//
// # Structure
//
// A document yields a set of [Segment] values, each identified by a
// three-letter uppercase mnemonic (NAD, BGM, ...). A segment owns an ordered
// list of [Node] children in document order. A node is either a simple data
// [Element] (4-digit code) or a composite [Group] (S or C plus three digits,
// e.g. C082). Groups hold elements only; they do not nest.
//
// # Accumulation
//
// The [SegmentMap] accumulator keeps segments unique by mnemonic while
// remembering creation order, so a mnemonic seen again later in the document
// merges into the existing entry instead of duplicating it.
//
// # JSON boundary
//
// The documented export shape distinguishes elements from groups by key
// shape ("champ" vs "groupe"). That ambiguity exists only at the
// serialization boundary: [EncodeJSON] and [DecodeJSON] translate between it
// and the explicit Node sum type.
package model
