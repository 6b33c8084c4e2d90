package model

import (
	"strings"
	"unicode/utf8"
)

// Style identifies the typographic style of a span, line, or block.
// Font sizes are rounded to the nearest integer before comparison, so two
// spans differing by a fractional point share a style.
type Style struct {
	FontSize int
	FontName string
	Bold     bool
	Color    int
}

// Span is a run of text sharing one font and style, as reported by a span
// source, with its own bounding box. Spans exist only during line
// aggregation and are not retained afterwards.
type Span struct {
	Text     string
	BBox     BBox
	FontName string
	FontSize float64
	Bold     bool
	Color    int
}

// Style returns the style tuple for this span, with the font size rounded
// to the nearest integer.
func (s Span) Style() Style {
	return Style{
		FontSize: roundSize(s.FontSize),
		FontName: s.FontName,
		Bold:     s.Bold,
		Color:    s.Color,
	}
}

// roundSize rounds a font size to the nearest integer, matching the
// precision span sources report.
func roundSize(size float64) int {
	if size < 0 {
		return -int(-size + 0.5)
	}
	return int(size + 0.5)
}

// Line is a single rendering line: the concatenated text of its spans, the
// union of their boxes, and one dominant style chosen by character-weighted
// majority among the spans. Lines are consumed immediately by block merging.
type Line struct {
	Text  string
	BBox  BBox
	Style Style
}

// Block is a merged run of consecutive same-style, vertically close lines,
// treated as one logical content unit. A block never spans pages. The
// feature fields are zero until feature engineering populates them.
type Block struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
	BBox       BBox   `json:"bbox"`
	FontSize   int    `json:"font_size"`
	FontName   string `json:"font_name"`
	Bold       bool   `json:"is_bold"`
	Color      int    `json:"color"`

	// Derived layout features, populated after filtering.
	RelativeFontSize float64 `json:"relative_font_size"`
	BoldIndicator    int     `json:"is_bold_numeric"`
	CharCount        int     `json:"char_count"`
	WordCount        int     `json:"word_count"`
	VerticalPosition float64 `json:"vertical_position"`
}

// Style returns the block's style tuple, taken from its first line at merge
// time.
func (b Block) Style() Style {
	return Style{
		FontSize: b.FontSize,
		FontName: b.FontName,
		Bold:     b.Bold,
		Color:    b.Color,
	}
}

// TextLength returns the number of characters (runes) in the block text.
func (b Block) TextLength() int {
	return utf8.RuneCountInString(b.Text)
}

// Words returns the number of whitespace-delimited tokens in the block text.
func (b Block) Words() int {
	return len(strings.Fields(b.Text))
}
