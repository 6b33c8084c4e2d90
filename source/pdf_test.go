package source

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/headline/model"
)

func makeRun(s string, x, y, w, size float64, font string) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: size, Font: font}
}

func TestGroupRows_TopToBottom(t *testing.T) {
	// PDF coordinates: larger Y is closer to the top of the page.
	texts := []pdf.Text{
		makeRun("bottom", 50, 100, 40, 11, "Helvetica"),
		makeRun("top", 50, 700, 30, 11, "Helvetica"),
		makeRun("middle", 50, 400, 45, 11, "Helvetica"),
	}

	rows := groupRows(texts)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	order := []string{rows[0][0].S, rows[1][0].S, rows[2][0].S}
	want := []string{"top", "middle", "bottom"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestGroupRows_BaselineTolerance(t *testing.T) {
	// Runs within the baseline tolerance belong to one rendering line,
	// ordered left to right.
	texts := []pdf.Text{
		makeRun("World", 120, 701.5, 40, 12, "Helvetica"),
		makeRun("Hello", 50, 700, 40, 12, "Helvetica"),
	}

	rows := groupRows(texts)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0].S != "Hello" || rows[0][1].S != "World" {
		t.Errorf("row order = %q, %q; want Hello, World", rows[0][0].S, rows[0][1].S)
	}
}

func TestGroupRows_DropsNewlineRuns(t *testing.T) {
	texts := []pdf.Text{
		makeRun("text", 50, 700, 30, 11, "Helvetica"),
		makeRun("\n", 80, 700, 0, 11, "Helvetica"),
	}

	rows := groupRows(texts)
	if len(rows) != 1 || len(rows[0]) != 1 {
		t.Fatalf("expected a single one-run row, got %v", rows)
	}
}

func TestAssembleSpans_MergesSameStyleRuns(t *testing.T) {
	row := []pdf.Text{
		makeRun("He", 50, 700, 12, 12, "Helvetica"),
		makeRun("llo", 62, 700, 16, 12, "Helvetica"),
	}

	spans := assembleSpans(row, 792)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "Hello" {
		t.Errorf("merged text = %q, want %q", spans[0].Text, "Hello")
	}
	if spans[0].BBox.Left != 50 || spans[0].BBox.Right != 78 {
		t.Errorf("merged box = %+v, want left 50 right 78", spans[0].BBox)
	}
}

func TestAssembleSpans_InsertsWordGap(t *testing.T) {
	// Gap of 10pt at 12pt font is well past the word-boundary threshold.
	row := []pdf.Text{
		makeRun("Hello", 50, 700, 30, 12, "Helvetica"),
		makeRun("World", 90, 700, 30, 12, "Helvetica"),
	}

	spans := assembleSpans(row, 792)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "Hello World" {
		t.Errorf("text = %q, want %q", spans[0].Text, "Hello World")
	}
}

func TestAssembleSpans_SplitsOnStyleChange(t *testing.T) {
	row := []pdf.Text{
		makeRun("Bold", 50, 700, 28, 12, "Helvetica-Bold"),
		makeRun("plain", 80, 700, 30, 12, "Helvetica"),
	}

	spans := assembleSpans(row, 792)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if !spans[0].Bold {
		t.Error("first span should be bold")
	}
	if spans[1].Bold {
		t.Error("second span should not be bold")
	}
}

func TestGlyphBox_ConvertsToTopLeftOrigin(t *testing.T) {
	// Baseline at Y=700 on a 792pt page with a 12pt font: the glyph box
	// spans 80..92 from the top of the page.
	box := glyphBox(makeRun("x", 50, 700, 10, 12, "Helvetica"), 792)

	if box.Top != 80 || box.Bottom != 92 {
		t.Errorf("box = %+v, want top 80 bottom 92", box)
	}
	if box.Left != 50 || box.Right != 60 {
		t.Errorf("box = %+v, want left 50 right 60", box)
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"ArialBoldMT", true},
		{"Avenir-Heavy", true},
		{"Helvetica", false},
		{"Times-Italic", false},
	}

	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

func TestStaticSource(t *testing.T) {
	src := &Static{
		Pages: [][][]model.Span{
			{{{Text: "only line", FontName: "Helvetica", FontSize: 11}}},
		},
	}

	if src.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", src.PageCount())
	}
	if got := src.Lines(1); len(got) != 1 || got[0][0].Text != "only line" {
		t.Errorf("Lines(1) = %v, want the single configured line", got)
	}
	if src.Lines(0) != nil || src.Lines(2) != nil {
		t.Error("out-of-range pages should yield nil")
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
