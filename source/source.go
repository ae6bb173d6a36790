package source

// Document is a fully materialized input document. Implementations must
// tolerate out-of-range access by returning zero values, never panicking,
// and must return cells as empty strings rather than absent.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText returns the plain text of page i (0-indexed), or "" when i
	// is out of range or the page carries no text layer.
	PageText(i int) string

	// PageTables returns the tables of page i in page order. Each table is
	// a grid of rows of cells.
	PageTables(i int) [][][]string
}

// MemDocument is a slice-backed Document. Texts and Tables are indexed by
// page; they may have different lengths, the page count is the larger one.
type MemDocument struct {
	Texts  []string
	Tables [][][][]string // page -> table -> row -> cell
}

func (d *MemDocument) PageCount() int {
	if len(d.Texts) > len(d.Tables) {
		return len(d.Texts)
	}
	return len(d.Tables)
}

func (d *MemDocument) PageText(i int) string {
	if i < 0 || i >= len(d.Texts) {
		return ""
	}
	return d.Texts[i]
}

func (d *MemDocument) PageTables(i int) [][][]string {
	if i < 0 || i >= len(d.Tables) {
		return nil
	}
	return d.Tables[i]
}
