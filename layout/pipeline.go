package layout

import "github.com/tsawler/headline/model"

// Pipeline runs the ordered filter and feature stages over a document's
// merged blocks. The order is fixed: headers and footers are removed
// first so the weighted mean font size reflects content, long blocks and
// body text are pruned against that single mean, text is cleaned, and the
// survivors get their layout features.
type Pipeline struct {
	config FilterConfig
}

// NewPipeline creates a pipeline with default configuration.
func NewPipeline() *Pipeline {
	return &Pipeline{config: DefaultFilterConfig()}
}

// NewPipelineWithConfig creates a pipeline with custom configuration.
func NewPipelineWithConfig(config FilterConfig) *Pipeline {
	return &Pipeline{config: config}
}

// Config returns the pipeline's filter configuration.
func (p *Pipeline) Config() FilterConfig {
	return p.config
}

// Run filters the whole-document block collection and returns the
// feature-annotated survivors. Page order and, within a page, top-to-bottom
// order are preserved. An empty input yields an empty output.
func (p *Pipeline) Run(blocks []model.Block, pageCount int) []model.Block {
	if len(blocks) == 0 {
		return nil
	}

	blocks = p.config.RemoveHeadersFooters(blocks, pageCount)

	mean := WeightedMeanFontSize(blocks)

	blocks = p.config.RemoveLongBlocks(blocks, mean)
	blocks = p.config.RemoveBodyText(blocks, mean)
	blocks = p.config.CleanText(blocks)

	return EngineerFeatures(blocks, p.config.NominalPageHeight)
}
