package parse

import (
	"testing"

	"segmap/model"
	"segmap/source"
)

func runVDA(t *testing.T, doc source.Document) *Context {
	t.Helper()
	ctx := NewContext()
	p := &VDAParser{}
	for i := 0; i < doc.PageCount(); i++ {
		p.ParsePage(ctx, doc, i)
	}
	return ctx
}

func TestVDASegmentFromPageText(t *testing.T) {
	doc := &source.MemDocument{
		Texts: []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address M C\nmore text"},
	}

	ctx := runVDA(t, doc)
	seg := ctx.Segments.Get("NAD")
	if seg == nil {
		t.Fatal("segment NAD not created from page text")
	}
	if seg.Description != "Name and address" {
		t.Errorf("description = %q, want normalized %q", seg.Description, "Name and address")
	}
}

func TestVDATableRows(t *testing.T) {
	table := [][]string{
		{"3035 Party qualifier", "an..3", "SU", "'SU' = Supplier"},
		{"C082 Party identification details", "", "", ""},
		{"3039 Party id identification", "an..35", "", "--"},
	}
	doc := &source.MemDocument{
		Texts:  []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address"},
		Tables: [][][][]string{{table}},
	}

	ctx := runVDA(t, doc)
	seg := ctx.Segments.Get("NAD")
	if seg == nil {
		t.Fatal("segment NAD not created")
	}
	if len(seg.Elements) != 2 {
		t.Fatalf("segment has %d children, want 2", len(seg.Elements))
	}

	e := seg.Elements[0].(*model.Element)
	if e.Code != "3035" || e.Description != "Party qualifier" || e.Format != "an..3" || e.Value != "SU" {
		t.Errorf("element = %+v", e)
	}
	if e.Usage != "'SU' = Supplier" {
		t.Errorf("usage = %q", e.Usage)
	}

	g := seg.Elements[1].(*model.Group)
	if g.Code != "C082" || len(g.Elements) != 1 {
		t.Fatalf("group = %+v", g)
	}
	if g.Elements[0].Usage != "" {
		t.Errorf("a -- usage cell should read as empty, got %q", g.Elements[0].Usage)
	}
}

func TestVDAUsageContinuationVariants(t *testing.T) {
	tests := []struct {
		name         string
		continuation string
		folded       bool
	}{
		{"quoted coded value", "'BY' = Buyer", true},
		{"bare coded value", "BY = Buyer", true},
		{"capitalized phrase", "Supplier Number", true},
		{"lowercase phrase", "see remarks below", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := [][]string{
				{"3035 Party qualifier", "an..3", "SU", "'SU' = Supplier"},
				{"", "", "", tt.continuation},
				{"3036 Party name", "an..35", "", ""},
			}
			doc := &source.MemDocument{
				Texts:  []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address"},
				Tables: [][][][]string{{table}},
			}

			ctx := runVDA(t, doc)
			e := ctx.Segments.Get("NAD").Elements[0].(*model.Element)

			want := "'SU' = Supplier"
			if tt.folded {
				want += "\n" + tt.continuation
			}
			if e.Usage != want {
				t.Errorf("usage = %q, want %q", e.Usage, want)
			}
		})
	}
}

func TestVDAHeaderNoiseSkipped(t *testing.T) {
	table := [][]string{
		{"S.Format St Example", "", "", ""},
		{"Segment can/must be used once", "", "", ""},
		{"stray text without code", "", "", ""},
		{"1004 Document number", "an..35", "", ""},
	}
	doc := &source.MemDocument{
		Texts:  []string{"Segment: BGM Cons. No.: 2 Level: 0 Beginning of message"},
		Tables: [][][][]string{{table}},
	}

	ctx := runVDA(t, doc)
	seg := ctx.Segments.Get("BGM")
	if len(seg.Elements) != 1 {
		t.Fatalf("segment has %d children, want 1 (noise rows skipped)", len(seg.Elements))
	}
	if seg.Elements[0].(*model.Element).Code != "1004" {
		t.Error("data row lost among noise rows")
	}
}

func TestVDAAttributionAcrossPages(t *testing.T) {
	table := [][]string{
		{"3035 Party qualifier", "an..3", "", ""},
		{"3036 Party name", "an..35", "", ""},
		{"3039 Party id identification", "an..35", "", ""},
	}
	doc := &source.MemDocument{
		Texts:  []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address", ""},
		Tables: [][][][]string{nil, {table}},
	}

	ctx := runVDA(t, doc)
	seg := ctx.Segments.Get("NAD")
	if len(seg.Elements) != 3 {
		t.Errorf("table on the following page should attach to NAD, got %d children", len(seg.Elements))
	}
}

func TestVDATableBeforeAnySegment(t *testing.T) {
	table := [][]string{
		{"3035 Party qualifier", "an..3", "", ""},
		{"3036 Party name", "an..35", "", ""},
		{"3039 Party id identification", "an..35", "", ""},
	}
	doc := &source.MemDocument{
		Texts:  []string{"no header here"},
		Tables: [][][][]string{{table}},
	}

	ctx := runVDA(t, doc)
	if ctx.Segments.Len() != 0 {
		t.Errorf("got %d segments, want 0", ctx.Segments.Len())
	}
	if ctx.OrphanTables != 1 {
		t.Errorf("OrphanTables = %d, want 1", ctx.OrphanTables)
	}
}

func TestVDAShortTableSkipped(t *testing.T) {
	table := [][]string{
		{"3035 Party qualifier", "an..3", "", ""},
		{"3036 Party name", "an..35", "", ""},
	}
	doc := &source.MemDocument{
		Texts:  []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address"},
		Tables: [][][][]string{{table}},
	}

	ctx := runVDA(t, doc)
	if len(ctx.Segments.Get("NAD").Elements) != 0 {
		t.Error("a 2-row table is noise and must contribute nothing")
	}
}

func TestVDAUnmatchedCodeDropped(t *testing.T) {
	table := [][]string{
		{"123 Too short a code", "an..3", "", ""},
		{"12345 Too long a code", "an..3", "", ""},
		{"3035 Party qualifier", "an..3", "", ""},
	}
	doc := &source.MemDocument{
		Texts:  []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address"},
		Tables: [][][][]string{{table}},
	}

	ctx := runVDA(t, doc)
	seg := ctx.Segments.Get("NAD")
	if len(seg.Elements) != 1 {
		t.Fatalf("segment has %d children, want 1", len(seg.Elements))
	}
}
