package source

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/headline/model"
)

const (
	// rowTolerance is the maximum baseline difference, in points, for two
	// text runs to share a rendering line.
	rowTolerance = 3.0

	// wordGapRatio is the horizontal gap, as a fraction of font size, above
	// which a space is inserted between adjacent runs.
	wordGapRatio = 0.3

	// defaultPageHeight is used when a page carries no MediaBox (US Letter).
	defaultPageHeight = 792.0
)

// PDFDocument is a Source backed by a PDF file's embedded text layer.
// Scanned, image-only PDFs yield no spans. The text layer does not expose
// fill color, so every span reports color 0; boldness is derived from the
// font name.
type PDFDocument struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path and returns a span source over its pages.
func Open(path string) (*PDFDocument, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &PDFDocument{file: f, reader: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *PDFDocument) PageCount() int {
	if d.reader == nil {
		return 0
	}
	return d.reader.NumPage()
}

// Close closes the underlying file. It is safe to call multiple times.
func (d *PDFDocument) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.reader = nil
	return err
}

// Lines returns the rendering lines of the given 1-indexed page. Pages that
// cannot be read yield nil rather than an error.
func (d *PDFDocument) Lines(page int) [][]model.Span {
	if d.reader == nil || page < 1 || page > d.reader.NumPage() {
		return nil
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil
	}

	content := p.Content()
	if len(content.Text) == 0 {
		return nil
	}

	pageHeight := mediaBoxHeight(p)
	rows := groupRows(content.Text)

	lines := make([][]model.Span, 0, len(rows))
	for _, row := range rows {
		if spans := assembleSpans(row, pageHeight); len(spans) > 0 {
			lines = append(lines, spans)
		}
	}
	return lines
}

// mediaBoxHeight reads the page height from the MediaBox, falling back to
// US Letter when absent.
func mediaBoxHeight(p pdf.Page) float64 {
	box := p.V.Key("MediaBox")
	if box.Kind() == pdf.Array && box.Len() >= 4 {
		if h := box.Index(3).Float64(); h > 0 {
			return h
		}
	}
	return defaultPageHeight
}

// groupRows buckets text runs by baseline and orders the result top to
// bottom (descending Y in the PDF's bottom-left coordinate space), each row
// left to right.
func groupRows(texts []pdf.Text) [][]pdf.Text {
	runs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if t.S == "" || t.S == "\n" {
			continue
		}
		runs = append(runs, t)
	}
	if len(runs) == 0 {
		return nil
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].Y-runs[j].Y) > rowTolerance {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var rows [][]pdf.Text
	for _, t := range runs {
		if len(rows) > 0 {
			row := rows[len(rows)-1]
			if math.Abs(t.Y-row[0].Y) <= rowTolerance {
				rows[len(rows)-1] = append(row, t)
				continue
			}
		}
		rows = append(rows, []pdf.Text{t})
	}
	return rows
}

// assembleSpans merges a row's consecutive same-style runs into spans,
// inserting a space where the horizontal gap between runs indicates a word
// boundary. Many PDFs emit one run per glyph, so merging keeps span counts
// proportional to styled segments rather than characters.
func assembleSpans(row []pdf.Text, pageHeight float64) []model.Span {
	var spans []model.Span
	for _, t := range row {
		box := glyphBox(t, pageHeight)

		if n := len(spans); n > 0 {
			prev := &spans[n-1]
			if prev.FontName == t.Font && prev.FontSize == t.FontSize {
				if t.X-prev.BBox.Right > t.FontSize*wordGapRatio {
					prev.Text += " "
				}
				prev.Text += t.S
				prev.BBox = prev.BBox.Union(box)
				continue
			}
		}

		spans = append(spans, model.Span{
			Text:     t.S,
			BBox:     box,
			FontName: t.Font,
			FontSize: t.FontSize,
			Bold:     isBoldFont(t.Font),
			Color:    0,
		})
	}

	// Drop rows that carry only whitespace.
	keep := spans[:0]
	for _, s := range spans {
		if strings.TrimSpace(s.Text) != "" {
			keep = append(keep, s)
		}
	}
	return keep
}

// glyphBox converts a text run's baseline position (bottom-left origin) to
// a top-left-origin bounding box. The glyph box height is approximated by
// the nominal font size above the baseline.
func glyphBox(t pdf.Text, pageHeight float64) model.BBox {
	return model.NewBBox(t.X, pageHeight-t.Y-t.FontSize, t.X+t.W, pageHeight-t.Y)
}

// isBoldFont reports whether a font name indicates a bold face.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "heavy")
}
