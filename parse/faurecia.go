package parse

import (
	"regexp"

	"segmap/detect"
	"segmap/source"
)

// FaureciaParser reads the linear layout used by Faurecia EDI guidelines.
// Segment headers appear as rows inside the data tables themselves and the
// remaining rows carry positional columns: code, description, format,
// example value and usage.
type FaureciaParser struct{}

func (p *FaureciaParser) Name() detect.Convention { return detect.Faurecia }

// Tables below this row count are page furniture, not segment tables.
const faureciaMinRows = 5

var (
	faureciaSegmentRow  = regexp.MustCompile(`Segment:\s*([A-Z]{3})`)
	faureciaSegmentDesc = regexp.MustCompile(`Pos\.:\s*\d+.*?([A-Z][\w\s/]+)$`)
)

// Positional columns of a Faurecia data row.
const (
	faureciaColCode   = 0
	faureciaColDesc   = 1
	faureciaColFormat = 4
	faureciaColValue  = 6
	faureciaColUsage  = 7
)

func (p *FaureciaParser) ParsePage(ctx *Context, doc source.Document, page int) {
	for _, table := range doc.PageTables(page) {
		if len(table) < faureciaMinRows {
			continue
		}
		p.parseTable(ctx, table)
	}
}

func (p *FaureciaParser) parseTable(ctx *Context, rows [][]string) {
	// Segment and group state never leaks from one table into the next.
	ctx.Segment = nil
	ctx.Group = nil

	for i := 0; i < len(rows); {
		row := rows[i]
		joined := rowText(row)

		if m := faureciaSegmentRow.FindStringSubmatch(joined); m != nil {
			description := ""
			if dm := faureciaSegmentDesc.FindStringSubmatch(joined); dm != nil {
				description = dm[1]
			}
			ctx.Segment = ctx.Segments.Open(m[1], Normalize(description))
			ctx.Group = nil
			i++
			continue
		}
		if ctx.Segment == nil {
			// Rows above the first segment header are column headings.
			i++
			continue
		}

		usage := ""
		next := i + 1
		if raw := cell(row, faureciaColUsage); raw != "" {
			usage, next = consolidateUsage(rows, i, raw, 8, faureciaColUsage, faureciaContinuation.MatchString)
		}

		classify(ctx,
			cell(row, faureciaColCode),
			Normalize(cell(row, faureciaColDesc)),
			collapseSpaces(cell(row, faureciaColFormat)),
			cell(row, faureciaColValue),
			usage)
		i = next
	}
}
