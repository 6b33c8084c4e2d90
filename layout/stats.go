package layout

import "github.com/tsawler/headline/model"

// WeightedMeanFontSize returns the character-weighted mean font size of a
// block collection: sum(size*chars)/sum(chars). It returns 0 for an empty
// collection or when the total character count is 0. The result always lies
// between the minimum and maximum block font size. It is computed once,
// after header/footer removal, and passed into the filters that need it.
func WeightedMeanFontSize(blocks []model.Block) float64 {
	if len(blocks) == 0 {
		return 0
	}

	var totalChars, weightedSum float64
	for _, b := range blocks {
		chars := float64(b.TextLength())
		totalChars += chars
		weightedSum += float64(b.FontSize) * chars
	}
	if totalChars == 0 {
		return 0
	}
	return weightedSum / totalChars
}

// RepeatingTexts returns the set of block texts that occur on at least
// max(2, floor(pageCount*minRatio)) distinct pages. Only exact string
// equality counts. This models running headers and footers that repeat on
// most pages.
func RepeatingTexts(blocks []model.Block, pageCount int, minRatio float64) map[string]bool {
	repeating := make(map[string]bool)
	if len(blocks) == 0 || pageCount == 0 {
		return repeating
	}

	textPages := make(map[string]map[int]bool)
	for _, b := range blocks {
		pages := textPages[b.Text]
		if pages == nil {
			pages = make(map[int]bool)
			textPages[b.Text] = pages
		}
		pages[b.PageNumber] = true
	}

	minPages := int(float64(pageCount) * minRatio)
	if minPages < 2 {
		minPages = 2
	}

	for text, pages := range textPages {
		if len(pages) >= minPages {
			repeating[text] = true
		}
	}
	return repeating
}

// ModalFontSize returns the most frequently occurring font size among
// blocks with a positive size, with ties resolved to the size encountered
// first. It returns 0 when no block has a positive size.
func ModalFontSize(blocks []model.Block) int {
	counts := make(map[int]int)
	var order []int

	for _, b := range blocks {
		if b.FontSize <= 0 {
			continue
		}
		if _, ok := counts[b.FontSize]; !ok {
			order = append(order, b.FontSize)
		}
		counts[b.FontSize]++
	}

	var (
		modal int
		best  int
	)
	for _, size := range order {
		if counts[size] > best {
			modal = size
			best = counts[size]
		}
	}
	return modal
}
