package parse

import (
	"regexp"
	"strings"

	"segmap/detect"
	"segmap/source"
)

// VDAParser reads the sectioned layout of VDA recommendation 4932. Segment
// headers live in the page text ("Segment: NAD Cons. No.: 14 Level: 1 Name
// and address"); the tables that follow carry only element and group rows
// and belong to the most recently declared segment, which may sit on an
// earlier page.
type VDAParser struct{}

func (p *VDAParser) Name() detect.Convention { return detect.VDA4932 }

const vdaMinRows = 3

var (
	vdaSegmentHeader = regexp.MustCompile(`Segment:\s+([A-Z]{3})\s+Cons\.\s*No\.:\s*(\d+)\s+Level:\s*(\d+)\s+(.*)`)

	// Code and description share the first column: "3035 Party qualifier",
	// "C082 Party identification details".
	vdaCombinedCell = regexp.MustCompile(`^([SC]?\d{3,4})\s+(.+)$`)
)

// Columns of a VDA data row after the combined first column.
const (
	vdaColFormat = 1
	vdaColValue  = 2
	vdaColUsage  = 3
)

func (p *VDAParser) ParsePage(ctx *Context, doc source.Document, page int) {
	for _, m := range vdaSegmentHeader.FindAllStringSubmatch(doc.PageText(page), -1) {
		ctx.Segment = ctx.Segments.Open(m[1], Normalize(m[4]))
	}
	for _, table := range doc.PageTables(page) {
		if len(table) < vdaMinRows {
			continue
		}
		p.parseTable(ctx, table)
	}
}

func (p *VDAParser) parseTable(ctx *Context, rows [][]string) {
	// A table is attributed to the last segment declared anywhere in the
	// document so far. Tables seen before any segment are counted and
	// dropped; the facade surfaces them as a warning.
	seg := ctx.Segments.Last()
	if seg == nil {
		ctx.OrphanTables++
		return
	}
	ctx.Segment = seg
	ctx.Group = nil

	for i := 0; i < len(rows); {
		row := rows[i]
		if len(row) < 2 {
			i++
			continue
		}

		col0 := cell(row, 0)
		if col0 == "" || strings.HasPrefix(col0, "S.Format") || strings.Contains(col0, "Segment can/must") {
			i++
			continue
		}
		m := vdaCombinedCell.FindStringSubmatch(col0)
		if m == nil {
			i++
			continue
		}

		usage := ""
		next := i + 1
		if raw := cell(row, vdaColUsage); raw != "" && raw != "--" {
			usage, next = consolidateUsage(rows, i, raw, 4, vdaColUsage, vdaContinues)
		}

		classify(ctx,
			m[1],
			Normalize(m[2]),
			cell(row, vdaColFormat),
			cell(row, vdaColValue),
			usage)
		i = next
	}
}
