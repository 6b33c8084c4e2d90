package layout

import "github.com/tsawler/headline/model"

// EngineerFeatures returns a copy of the block collection with the derived
// layout features populated: font size relative to the modal size (0 when
// no block has a positive size), a 0/1 bold indicator, character and word
// counts, and the top edge normalized by the nominal page height. The
// vertical position is not clamped and can exceed 1 for content below the
// nominal height.
func EngineerFeatures(blocks []model.Block, nominalPageHeight float64) []model.Block {
	if len(blocks) == 0 {
		return nil
	}

	modal := ModalFontSize(blocks)

	out := make([]model.Block, len(blocks))
	for i, b := range blocks {
		if modal > 0 {
			b.RelativeFontSize = float64(b.FontSize) / float64(modal)
		} else {
			b.RelativeFontSize = 0
		}

		b.BoldIndicator = 0
		if b.Bold {
			b.BoldIndicator = 1
		}

		b.CharCount = b.TextLength()
		b.WordCount = b.Words()

		if nominalPageHeight > 0 {
			b.VerticalPosition = b.BBox.Top / nominalPageHeight
		} else {
			b.VerticalPosition = 0
		}

		out[i] = b
	}
	return out
}
