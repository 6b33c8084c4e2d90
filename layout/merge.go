package layout

import (
	"regexp"

	"github.com/tsawler/headline/model"
)

// listItemPattern matches a leading bullet character or "1."-style marker
// followed by whitespace. A line matching it always opens a new block so
// each list entry becomes its own candidate.
var listItemPattern = regexp.MustCompile(`^\s*([•\-]|\d+\.)\s+`)

// MergeConfig holds configuration for merging lines into blocks.
type MergeConfig struct {
	// ProximityThreshold is the maximum vertical gap, in page units,
	// between a line's top edge and the previous line's bottom edge for
	// the two to merge (default: 4.0)
	ProximityThreshold float64
}

// DefaultMergeConfig returns sensible default configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		ProximityThreshold: 4.0,
	}
}

// Merger merges a page's lines into logical blocks.
type Merger struct {
	config MergeConfig
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return &Merger{config: DefaultMergeConfig()}
}

// NewMergerWithConfig creates a merger with custom configuration.
func NewMergerWithConfig(config MergeConfig) *Merger {
	return &Merger{config: config}
}

// MergePage scans one page's lines top to bottom and merges each run of
// consecutive lines into a block when the line's style equals the block's
// style, the vertical gap to the previous line is below the proximity
// threshold, and the line is not a list item. Any failed condition closes
// the current block and opens a new one. Blocks never span pages;
// pageNumber is recorded 1-based on every block.
func (m *Merger) MergePage(lines []model.Line, pageNumber int) []model.Block {
	if len(lines) == 0 {
		return nil
	}

	var blocks []model.Block
	current := newBlock(lines[0], pageNumber)

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		prev := lines[i-1]

		sameStyle := line.Style == current.Style()
		near := line.BBox.Top-prev.BBox.Bottom < m.config.ProximityThreshold
		listItem := listItemPattern.MatchString(line.Text)

		if sameStyle && near && !listItem {
			current.Text += " " + line.Text
			current.BBox = current.BBox.Union(line.BBox)
			continue
		}

		blocks = append(blocks, current)
		current = newBlock(line, pageNumber)
	}

	return append(blocks, current)
}

// newBlock starts a block from its first line; the block takes that line's
// style.
func newBlock(line model.Line, pageNumber int) model.Block {
	return model.Block{
		PageNumber: pageNumber,
		Text:       line.Text,
		BBox:       line.BBox,
		FontSize:   line.Style.FontSize,
		FontName:   line.Style.FontName,
		Bold:       line.Style.Bold,
		Color:      line.Style.Color,
	}
}

// IsListItem reports whether a line of text begins with a list marker.
func IsListItem(text string) bool {
	return listItemPattern.MatchString(text)
}
