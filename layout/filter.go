package layout

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/headline/model"
)

var (
	// whitespaceRun collapses internal whitespace to a single space.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// edgePunct strips leading and trailing non-word characters. Word
	// characters are letters, digits, and underscore in any script, so
	// accented headings keep their edges.
	edgePunct = regexp.MustCompile(`^[^\p{L}\p{N}_]+|[^\p{L}\p{N}_]+$`)

	// hasLetter requires at least one alphabetic character for a block to
	// survive cleanup; pure punctuation or numeric fragments are dropped.
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
)

// FilterConfig holds the thresholds for the block filter pipeline.
type FilterConfig struct {
	// NominalPageHeight is the fixed page height, in page units, used for
	// header/footer bands and vertical-position normalization. US Letter
	// at 72 dpi (default: 792). Actual page geometry is deliberately not
	// consulted; changing this silently would alter filtering on A4
	// documents.
	NominalPageHeight float64

	// HeaderMargin is the fraction of the nominal page height forming the
	// header band at the top of the page (default: 0.12)
	HeaderMargin float64

	// FooterMargin is the fraction of the nominal page height forming the
	// footer band at the bottom of the page (default: 0.12)
	FooterMargin float64

	// RepeatRatio is the minimum fraction of pages a text must appear on
	// to count as boilerplate (default: 0.5)
	RepeatRatio float64

	// MaxWords is the word count above which a block is considered body
	// text (default: 20)
	MaxWords int

	// LargeFontRatio exempts a long block from removal when its font size
	// exceeds the weighted mean by this factor (default: 1.5)
	LargeFontRatio float64
}

// DefaultFilterConfig returns sensible default configuration.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		NominalPageHeight: 792.0,
		HeaderMargin:      0.12,
		FooterMargin:      0.12,
		RepeatRatio:       0.5,
		MaxWords:          20,
		LargeFontRatio:    1.5,
	}
}

// RemoveHeadersFooters removes blocks whose text repeats across a large
// fraction of pages and whose box sits in the header or footer band of the
// nominal page. Non-repeating blocks are never removed here, so a genuine
// top-of-page title on a single page is spared.
func (c FilterConfig) RemoveHeadersFooters(blocks []model.Block, pageCount int) []model.Block {
	if len(blocks) == 0 {
		return nil
	}

	repeating := RepeatingTexts(blocks, pageCount, c.RepeatRatio)
	if len(repeating) == 0 {
		return blocks
	}

	headerBand := c.NominalPageHeight * c.HeaderMargin
	footerBand := c.NominalPageHeight * (1 - c.FooterMargin)

	kept := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		inHeader := b.BBox.Top < headerBand
		inFooter := b.BBox.Bottom > footerBand
		if repeating[b.Text] && (inHeader || inFooter) {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// RemoveLongBlocks removes blocks whose word count exceeds MaxWords unless
// the block's font size exceeds weightedMean*LargeFontRatio; very large
// text is assumed to be a title or heading even when verbose.
func (c FilterConfig) RemoveLongBlocks(blocks []model.Block, weightedMean float64) []model.Block {
	if len(blocks) == 0 {
		return nil
	}

	kept := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		long := b.Words() > c.MaxWords
		largeFont := float64(b.FontSize) > weightedMean*c.LargeFontRatio
		if !long || largeFont {
			kept = append(kept, b)
		}
	}
	return kept
}

// RemoveBodyText keeps a block only when it shows at least one
// heading-like trait: font size above the weighted mean, boldness, or a
// color different from the majority color of the remaining blocks. The
// decision is single-pass; one trait suffices.
func (c FilterConfig) RemoveBodyText(blocks []model.Block, weightedMean float64) []model.Block {
	if len(blocks) == 0 {
		return nil
	}

	majority := majorityColor(blocks)

	kept := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		if float64(b.FontSize) > weightedMean || b.Bold || b.Color != majority {
			kept = append(kept, b)
		}
	}
	return kept
}

// majorityColor returns the most frequent color among blocks, ties broken
// by the color that reached the highest count first.
func majorityColor(blocks []model.Block) int {
	counts := make(map[int]int)
	var order []int

	for _, b := range blocks {
		if _, ok := counts[b.Color]; !ok {
			order = append(order, b.Color)
		}
		counts[b.Color]++
	}

	var (
		majority int
		best     int
	)
	for _, color := range order {
		if counts[color] > best {
			majority = color
			best = counts[color]
		}
	}
	return majority
}

// CleanText normalizes each block's text (Unicode NFC, trimmed, internal
// whitespace collapsed to single spaces, leading/trailing non-word
// characters stripped) and drops blocks whose cleaned text is empty or has
// no alphabetic character. Running it twice over already-clean blocks
// yields an identical collection.
func (c FilterConfig) CleanText(blocks []model.Block) []model.Block {
	if len(blocks) == 0 {
		return nil
	}

	kept := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		text := norm.NFC.String(b.Text)
		text = strings.TrimSpace(text)
		text = whitespaceRun.ReplaceAllString(text, " ")
		text = edgePunct.ReplaceAllString(text, "")

		if text == "" || !hasLetter.MatchString(text) {
			continue
		}

		b.Text = text
		kept = append(kept, b)
	}
	return kept
}
