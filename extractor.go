package segmap

import (
	"fmt"

	"segmap/detect"
	"segmap/edifact"
	"segmap/model"
	"segmap/parse"
	"segmap/source"
)

// Extractor provides a fluent interface for extracting grammar from one
// guideline document. Each configuration method returns a new Extractor
// instance, so a configured extractor can be shared and reused safely.
//
// One extractor works on one document; parsing is strictly sequential
// because later tables depend on the segment state left by earlier pages.
// Run independent extractors to process several documents concurrently.
type Extractor struct {
	filename string
	doc      source.Document

	options extractOptions

	// Accumulated error (fail-fast)
	err error

	warnings []Warning
}

// clone creates a copy of the Extractor so configuration methods never
// mutate the receiver.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options,
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// DetectPages overrides how many leading pages format detection inspects.
//
// Example:
//
//	segments, _, err := segmap.Open("doc.pdf").DetectPages(5).Segments()
func (e *Extractor) DetectPages(n int) *Extractor {
	newExt := e.clone()
	if n > 0 {
		newExt.options.detectPages = n
	}
	return newExt
}

// ForceConvention skips format detection and parses with the given
// convention.
//
// Example:
//
//	segments, _, err := segmap.Open("doc.pdf").ForceConvention(detect.VDA4932).Segments()
func (e *Extractor) ForceConvention(c detect.Convention) *Extractor {
	newExt := e.clone()
	newExt.options.convention = c
	return newExt
}

// ensureDocument opens the source adapter if no document was supplied.
func (e *Extractor) ensureDocument() error {
	if e.doc != nil {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no input specified")
	}
	doc, err := source.OpenPDF(e.filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	e.doc = doc
	return nil
}

// Convention returns the convention the document will be parsed with,
// running detection unless one was forced.
func (e *Extractor) Convention() (detect.Convention, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.options.convention != "" {
		return e.options.convention, nil
	}
	if err := e.ensureDocument(); err != nil {
		return "", err
	}
	convention, _ := detect.Detect(e.doc, e.options.detectPages)
	return convention, nil
}

// Segments runs the full pipeline (detect, parse every page and table in
// source order, enrich, aggregate) and returns the grammar ordered by
// ascending segment mnemonic. Child order inside each segment stays in
// document order.
//
// Returns the segments, any warnings collected along the way, and an error.
// An extraction that recognizes nothing returns ErrNoSegments.
func (e *Extractor) Segments() ([]*model.Segment, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}

	warnings := append([]Warning(nil), e.warnings...)

	convention := e.options.convention
	if convention == "" {
		detected, matched := detect.Detect(e.doc, e.options.detectPages)
		convention = detected
		if !matched {
			warnings = append(warnings, Warning{
				Code:    WarnDetectFallback,
				Message: "no convention marker found, assuming " + convention.String(),
			})
		}
	}

	parser := parse.ForConvention(convention)
	ctx := parse.NewContext()
	for i := 0; i < e.doc.PageCount(); i++ {
		parser.ParsePage(ctx, e.doc, i)
	}
	if ctx.OrphanTables > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnOrphanTables,
			Message: fmt.Sprintf("%d table(s) appeared before any segment header and were dropped", ctx.OrphanTables),
		})
	}

	segments := ctx.Segments.Sorted()
	if len(segments) == 0 {
		return nil, warnings, ErrNoSegments
	}
	enrich(segments)
	return segments, warnings, nil
}

// Stats runs the extraction and returns aggregate counts over the result.
func (e *Extractor) Stats() (model.Stats, []Warning, error) {
	segments, warnings, err := e.Segments()
	if err != nil {
		return model.Stats{}, warnings, err
	}
	return model.Collect(segments), warnings, nil
}

// enrich re-normalizes segment descriptions and substitutes the canonical
// EDIFACT name when a well-known segment carries no usable description.
// Unknown mnemonics keep whatever they have, including nothing.
func enrich(segments []*model.Segment) {
	for _, seg := range segments {
		seg.Description = parse.Normalize(seg.Description)
		if edifact.Placeholder(seg.Description) {
			if name, ok := edifact.Name(seg.Code); ok {
				seg.Description = name
			}
		}
	}
}
