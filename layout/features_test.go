package layout

import (
	"math"
	"testing"

	"github.com/tsawler/headline/model"
)

func TestEngineerFeatures_Empty(t *testing.T) {
	if got := EngineerFeatures(nil, 792); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestEngineerFeatures_RelativeFontSize(t *testing.T) {
	// Modal size of {18,18,11,11,11} is 11; the 18pt blocks get 18/11.
	blocks := []model.Block{
		{Text: "big a", FontSize: 18},
		{Text: "big b", FontSize: 18},
		{Text: "small a", FontSize: 11},
		{Text: "small b", FontSize: 11},
		{Text: "small c", FontSize: 11},
	}

	out := EngineerFeatures(blocks, 792)

	if math.Abs(out[0].RelativeFontSize-18.0/11.0) > 1e-9 {
		t.Errorf("relative size = %v, want %v", out[0].RelativeFontSize, 18.0/11.0)
	}
	if out[2].RelativeFontSize != 1.0 {
		t.Errorf("modal-size block relative size = %v, want 1", out[2].RelativeFontSize)
	}
}

func TestEngineerFeatures_NoModalSize(t *testing.T) {
	blocks := []model.Block{{Text: "sizeless", FontSize: 0}}

	out := EngineerFeatures(blocks, 792)
	if out[0].RelativeFontSize != 0 {
		t.Errorf("relative size without modal = %v, want 0", out[0].RelativeFontSize)
	}
}

func TestEngineerFeatures_CountsAndBoldIndicator(t *testing.T) {
	blocks := []model.Block{
		{Text: "Two Words", FontSize: 12, Bold: true},
		{Text: "three small words", FontSize: 12},
	}

	out := EngineerFeatures(blocks, 792)

	if out[0].BoldIndicator != 1 || out[1].BoldIndicator != 0 {
		t.Errorf("bold indicators = %d, %d; want 1, 0", out[0].BoldIndicator, out[1].BoldIndicator)
	}
	if out[0].CharCount != 9 {
		t.Errorf("char count = %d, want 9", out[0].CharCount)
	}
	if out[0].WordCount != 2 || out[1].WordCount != 3 {
		t.Errorf("word counts = %d, %d; want 2, 3", out[0].WordCount, out[1].WordCount)
	}
}

func TestEngineerFeatures_VerticalPosition(t *testing.T) {
	blocks := []model.Block{
		{Text: "near top", FontSize: 12, BBox: model.NewBBox(50, 79.2, 200, 95)},
		{Text: "below nominal height", FontSize: 12, BBox: model.NewBBox(50, 800, 200, 815)},
	}

	out := EngineerFeatures(blocks, 792)

	if math.Abs(out[0].VerticalPosition-0.1) > 1e-9 {
		t.Errorf("vertical position = %v, want 0.1", out[0].VerticalPosition)
	}
	// Not clamped: content below the nominal page height exceeds 1.
	if out[1].VerticalPosition <= 1 {
		t.Errorf("vertical position = %v, want > 1", out[1].VerticalPosition)
	}
}

func TestEngineerFeatures_DoesNotMutateInput(t *testing.T) {
	blocks := []model.Block{{Text: "original", FontSize: 12, Bold: true}}

	_ = EngineerFeatures(blocks, 792)

	if blocks[0].BoldIndicator != 0 || blocks[0].CharCount != 0 {
		t.Errorf("input mutated: %+v", blocks[0])
	}
}
