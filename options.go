package headline

import "github.com/tsawler/headline/layout"

// ExtractOptions holds the tunable parameters for the extraction pipeline.
// All fields have sensible defaults; use the corresponding Extractor methods
// to adjust them.
type ExtractOptions struct {
	// ProximityThreshold is the maximum vertical gap, in points, between
	// consecutive same-style lines that are merged into one block.
	ProximityThreshold float64
	// MaxWords is the word count above which a block is considered body
	// prose and removed, unless its font is much larger than average.
	MaxWords int
	// RepeatRatio is the fraction of pages a text must appear on before it
	// is treated as repeating boilerplate.
	RepeatRatio float64
	// HeaderMargin is the fraction of the nominal page height from the top
	// within which repeating text counts as a header.
	HeaderMargin float64
	// FooterMargin is the fraction of the nominal page height from the
	// bottom within which repeating text counts as a footer.
	FooterMargin float64
}

func defaultOptions() ExtractOptions {
	fc := layout.DefaultFilterConfig()
	mc := layout.DefaultMergeConfig()
	return ExtractOptions{
		ProximityThreshold: mc.ProximityThreshold,
		MaxWords:           fc.MaxWords,
		RepeatRatio:        fc.RepeatRatio,
		HeaderMargin:       fc.HeaderMargin,
		FooterMargin:       fc.FooterMargin,
	}
}

func (o ExtractOptions) filterConfig() layout.FilterConfig {
	cfg := layout.DefaultFilterConfig()
	cfg.MaxWords = o.MaxWords
	cfg.RepeatRatio = o.RepeatRatio
	cfg.HeaderMargin = o.HeaderMargin
	cfg.FooterMargin = o.FooterMargin
	return cfg
}

func (o ExtractOptions) mergeConfig() layout.MergeConfig {
	return layout.MergeConfig{ProximityThreshold: o.ProximityThreshold}
}
