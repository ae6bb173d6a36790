package source

import (
	"fmt"

	"github.com/tsawler/tabula"
	tmodel "github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	ttext "github.com/tsawler/tabula/text"
)

// PDFDocument is a Document backed by a PDF file. All pages are read when
// the document is opened; the file handle is released before OpenPDF
// returns.
type PDFDocument struct {
	pages []pdfPage
}

type pdfPage struct {
	text   string
	tables [][][]string
}

// OpenPDF extracts the text and table grids of every page of the file. An
// unreadable file is an error; pages that fail to extract degrade to empty
// pages instead, since partial recognition is expected from real-world
// guideline PDFs.
func OpenPDF(path string) (*PDFDocument, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("page count of %s: %w", path, err)
	}

	detector := tables.GetDetector("geometric")

	doc := &PDFDocument{pages: make([]pdfPage, count)}
	for i := 0; i < count; i++ {
		// FromReader does not transfer ownership, so the terminal Text()
		// call leaves the reader open for the next page.
		if text, _, err := tabula.FromReader(r).Pages(i + 1).Text(); err == nil {
			doc.pages[i].text = text
		}
		doc.pages[i].tables = extractGrids(r, detector, i)
	}
	return doc, nil
}

func (d *PDFDocument) PageCount() int {
	return len(d.pages)
}

func (d *PDFDocument) PageText(i int) string {
	if i < 0 || i >= len(d.pages) {
		return ""
	}
	return d.pages[i].text
}

func (d *PDFDocument) PageTables(i int) [][][]string {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i].tables
}

// extractGrids runs tabula's geometric table detector over one page and
// flattens the detected tables into plain string grids.
func extractGrids(r *reader.Reader, detector tables.Detector, index int) [][][]string {
	page, err := r.GetPage(index)
	if err != nil {
		return nil
	}
	fragments, err := r.ExtractTextFragments(page)
	if err != nil {
		return nil
	}

	width, _ := page.Width()
	height, _ := page.Height()
	mp := tmodel.NewPage(width, height)
	mp.Number = index + 1
	mp.RawText = toModelFragments(fragments)

	detected, err := detector.Detect(mp)
	if err != nil {
		return nil
	}

	grids := make([][][]string, 0, len(detected))
	for _, table := range detected {
		grid := make([][]string, len(table.Rows))
		for ri, row := range table.Rows {
			cells := make([]string, len(row))
			for ci, c := range row {
				cells[ci] = c.Text
			}
			grid[ri] = cells
		}
		grids = append(grids, grid)
	}
	return grids
}

func toModelFragments(fragments []ttext.TextFragment) []tmodel.TextFragment {
	out := make([]tmodel.TextFragment, len(fragments))
	for i, f := range fragments {
		out[i] = tmodel.TextFragment{
			Text:     f.Text,
			BBox:     tmodel.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontName: f.FontName,
			FontSize: f.FontSize,
		}
	}
	return out
}
