package headline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/headline/model"
)

// ExportJSON writes blocks to w as a single JSON array. The persisted form
// matches the Block JSON encoding: feature fields are included, and the
// bounding box is the compact [left, top, right, bottom] array.
//
// Example:
//
//	candidates, _, err := headline.Open("document.pdf").Candidates()
//	if err != nil {
//	    // handle error
//	}
//	err = headline.ExportJSON(candidates, os.Stdout)
func ExportJSON(blocks []model.Block, w io.Writer) error {
	if blocks == nil {
		blocks = []model.Block{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(blocks)
}

// ExportJSONL writes blocks to w as JSON Lines, one object per line. This
// form suits streaming consumers and line-oriented tooling.
func ExportJSONL(blocks []model.Block, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, block := range blocks {
		if err := encoder.Encode(block); err != nil {
			return fmt.Errorf("encoding block %d: %w", i, err)
		}
	}
	return nil
}

// SaveJSON writes blocks to the named file as a JSON array, creating or
// truncating it.
func SaveJSON(blocks []model.Block, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return ExportJSON(blocks, f)
}
