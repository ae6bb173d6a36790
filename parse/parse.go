package parse

import (
	"regexp"
	"strings"

	"segmap/detect"
	"segmap/model"
	"segmap/source"
)

// Context carries the mutable state of one document extraction: the
// accumulating segment map plus the segment and group currently open.
// A fresh Context is used per document; contexts are not safe for
// concurrent use.
type Context struct {
	Segments *model.SegmentMap
	Segment  *model.Segment
	Group    *model.Group

	// OrphanTables counts tables that had to be dropped because no segment
	// was open yet when they were visited.
	OrphanTables int
}

// NewContext creates a context with an empty segment map.
func NewContext() *Context {
	return &Context{Segments: model.NewSegmentMap()}
}

// Parser folds one page of source material into a Context, under an already
// detected convention.
type Parser interface {
	Name() detect.Convention
	ParsePage(ctx *Context, doc source.Document, page int)
}

// ForConvention returns the parser implementing the given convention.
// Unknown values fall back to the Faurecia parser, mirroring the detector's
// fallback.
func ForConvention(c detect.Convention) Parser {
	if c == detect.VDA4932 {
		return &VDAParser{}
	}
	return &FaureciaParser{}
}

var (
	elementCode = regexp.MustCompile(`^\d{4}$`)
	groupCode   = regexp.MustCompile(`^[SC]\d{3}$`)
)

// classify routes one recognized row into the tree: group codes open a new
// group under the current segment, element codes append to the open group or
// directly to the segment. Codes matching neither pattern are dropped.
func classify(ctx *Context, code, description, format, value, usage string) {
	if ctx.Segment == nil {
		return
	}
	switch {
	case groupCode.MatchString(code):
		g := &model.Group{Code: code, Description: description}
		ctx.Segment.Add(g)
		ctx.Group = g
	case elementCode.MatchString(code):
		e := &model.Element{
			Code:        code,
			Description: description,
			Format:      format,
			Value:       value,
			Usage:       usage,
		}
		if ctx.Group != nil {
			ctx.Group.Add(e)
		} else {
			ctx.Segment.Add(e)
		}
	}
}

// cell returns the trimmed cell at index i, or "" when the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// rowText joins the trimmed cells of a row into one string, the form the
// segment-header patterns match against.
func rowText(row []string) string {
	cells := make([]string, len(row))
	for i := range row {
		cells[i] = strings.TrimSpace(row[i])
	}
	return strings.Join(cells, " ")
}
