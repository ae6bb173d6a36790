package segmap

import (
	"errors"
	"testing"

	"segmap/detect"
	"segmap/model"
	"segmap/source"
)

// guidelineDoc is a small Faurecia-style document with two segments. The MOA
// header carries no description so enrichment has something to fill in.
func guidelineDoc() source.Document {
	moa := [][]string{
		{"Segment: MOA Pos.: 050 Level: 2"},
		{"5025", "Monetary amount type qualifier", "", "", "an..3", "", "", ""},
		{"5004", "Monetary amount value", "", "", "n..35", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
	}
	bgm := [][]string{
		{"Segment: BGM Pos.: 020 Level: 0 Beginning of message"},
		{"1001", "Document name code", "", "", "an..3", "", "220", ""},
		{"1004", "Document number", "", "", "an..35", "", "", ""},
		{"", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
	}
	return &source.MemDocument{
		Texts:  []string{"Segment: UNH Pos.: 010 Level: 0"},
		Tables: [][][][]string{{moa, bgm}},
	}
}

func TestExtractorSegments(t *testing.T) {
	segments, warnings, err := FromDocument(guidelineDoc()).Segments()
	if err != nil {
		t.Fatalf("Segments() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}

	// Ascending mnemonic order.
	if segments[0].Code != "BGM" || segments[1].Code != "MOA" {
		t.Errorf("order = %s, %s, want BGM, MOA", segments[0].Code, segments[1].Code)
	}
	if segments[0].Description != "Beginning of message" {
		t.Errorf("BGM description = %q", segments[0].Description)
	}
	// MOA had no description in the document and gets the canonical name.
	if segments[1].Description != "Monetary amount" {
		t.Errorf("MOA description = %q, want enriched canonical name", segments[1].Description)
	}
}

func TestExtractorStats(t *testing.T) {
	stats, _, err := FromDocument(guidelineDoc()).Stats()
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	want := model.Stats{
		Segments:       2,
		SimpleElements: 4,
		WithFormat:     4,
		WithValue:      1,
	}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestExtractorEmptyDocument(t *testing.T) {
	segments, warnings, err := FromDocument(&source.MemDocument{}).Segments()
	if !errors.Is(err, ErrNoSegments) {
		t.Fatalf("err = %v, want ErrNoSegments", err)
	}
	if segments != nil {
		t.Errorf("segments = %v, want nil", segments)
	}

	var sawFallback bool
	for _, w := range warnings {
		if w.Code == WarnDetectFallback {
			sawFallback = true
		}
	}
	if !sawFallback {
		t.Error("an undetectable document should carry a detect-fallback warning")
	}
}

func TestExtractorForceConventionSkipsFallbackWarning(t *testing.T) {
	// No convention marker in the page text, so detection would fall back;
	// forcing the convention keeps the run warning-free.
	doc := guidelineDoc().(*source.MemDocument)
	doc.Texts = []string{"cover page"}

	segments, warnings, err := FromDocument(doc).ForceConvention(detect.Faurecia).Segments()
	if err != nil {
		t.Fatalf("Segments() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(segments) != 2 {
		t.Errorf("got %d segments, want 2", len(segments))
	}
}

func TestExtractorConvention(t *testing.T) {
	vda := &source.MemDocument{
		Texts: []string{"Segment: NAD Cons. No.: 14 Level: 1 Name and address"},
	}

	got, err := FromDocument(vda).Convention()
	if err != nil {
		t.Fatalf("Convention() error: %v", err)
	}
	if got != detect.VDA4932 {
		t.Errorf("Convention() = %s, want vda4932", got)
	}

	forced, err := FromDocument(vda).ForceConvention(detect.Faurecia).Convention()
	if err != nil {
		t.Fatalf("Convention() error: %v", err)
	}
	if forced != detect.Faurecia {
		t.Errorf("forced Convention() = %s, want faurecia", forced)
	}
}

func TestExtractorConfigurationDoesNotMutate(t *testing.T) {
	base := FromDocument(guidelineDoc())
	configured := base.DetectPages(3).ForceConvention(detect.VDA4932)

	if base.options.detectPages != detect.DefaultPages || base.options.convention != "" {
		t.Error("configuring a derived extractor changed the original")
	}
	if configured.options.detectPages != 3 || configured.options.convention != detect.VDA4932 {
		t.Errorf("derived options = %+v", configured.options)
	}

	// Non-positive page counts are ignored.
	if kept := base.DetectPages(0); kept.options.detectPages != detect.DefaultPages {
		t.Error("DetectPages(0) should keep the default")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open("testdata/does-not-exist.pdf").Segments()
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Errorf("err = %v, want ErrSourceUnreadable", err)
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Code: WarnDetectFallback, Message: "no marker"},
		{Code: WarnOrphanTables, Message: "2 dropped"},
	}
	want := "detect-fallback: no marker; orphan-tables: 2 dropped"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
}
