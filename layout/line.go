package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/headline/model"
)

// AssembleLine builds a Line from one rendering line's spans: text is the
// concatenation of span text with no separator, the bounding box is the
// union of span boxes, and the style is the span style with the largest
// cumulative character count (ties broken by first appearance). The second
// return value is false when the line's trimmed text is empty and the line
// should be discarded.
func AssembleLine(spans []model.Span) (model.Line, bool) {
	if len(spans) == 0 {
		return model.Line{}, false
	}

	var (
		text  strings.Builder
		box   model.BBox
		tally = make(map[model.Style]int)
		seen  []model.Style
	)

	for _, span := range spans {
		text.WriteString(span.Text)
		box = box.Union(span.BBox)

		style := span.Style()
		if _, ok := tally[style]; !ok {
			seen = append(seen, style)
		}
		tally[style] += utf8.RuneCountInString(span.Text)
	}

	if strings.TrimSpace(text.String()) == "" {
		return model.Line{}, false
	}

	return model.Line{
		Text:  text.String(),
		BBox:  box,
		Style: dominantStyle(tally, seen),
	}, true
}

// dominantStyle picks the style with the largest weight. seen preserves
// first-appearance order so ties resolve to the earliest style.
func dominantStyle(tally map[model.Style]int, seen []model.Style) model.Style {
	var (
		best       model.Style
		bestWeight = -1
	)
	for _, style := range seen {
		if tally[style] > bestWeight {
			best = style
			bestWeight = tally[style]
		}
	}
	return best
}
