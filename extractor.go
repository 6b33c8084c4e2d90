package headline

import (
	"fmt"

	"github.com/tsawler/headline/layout"
	"github.com/tsawler/headline/model"
	"github.com/tsawler/headline/source"
)

// Extractor provides a fluent interface for extracting heading candidates
// from a document. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	source   source.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor. This ensures immutability -
// each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options,
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the source if not already open. A document that cannot
// be opened is recorded as a warning, not an error: the terminal operation
// then produces empty results.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := source.Open(e.filename)
	if err != nil {
		e.warnings = append(e.warnings, Warning{
			Code:    WarnOpenFailed,
			Message: fmt.Sprintf("failed to open %s: %v", e.filename, err),
		})
		e.sourceOpened = true
		return nil
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// ProximityThreshold sets the maximum vertical gap, in points, between
// consecutive same-style lines that are merged into a single block.
// The default is 4.
//
// Example:
//
//	candidates, _, err := headline.Open("doc.pdf").ProximityThreshold(6).Candidates()
func (e *Extractor) ProximityThreshold(points float64) *Extractor {
	newExt := e.clone()
	newExt.options.ProximityThreshold = points
	return newExt
}

// MaxWords sets the word count above which a block is treated as body
// prose and removed, unless its font is much larger than the document
// average. The default is 20.
//
// Example:
//
//	candidates, _, err := headline.Open("doc.pdf").MaxWords(30).Candidates()
func (e *Extractor) MaxWords(n int) *Extractor {
	newExt := e.clone()
	newExt.options.MaxWords = n
	return newExt
}

// RepeatRatio sets the fraction of pages a text must appear on before it is
// treated as repeating boilerplate. The default is 0.5.
//
// Example:
//
//	candidates, _, err := headline.Open("doc.pdf").RepeatRatio(0.3).Candidates()
func (e *Extractor) RepeatRatio(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.RepeatRatio = ratio
	return newExt
}

// HeaderMargin sets the fraction of the nominal page height, measured from
// the top, within which repeating text is removed as a header. The default
// is 0.12.
//
// Example:
//
//	candidates, _, err := headline.Open("doc.pdf").HeaderMargin(0.1).Candidates()
func (e *Extractor) HeaderMargin(fraction float64) *Extractor {
	newExt := e.clone()
	newExt.options.HeaderMargin = fraction
	return newExt
}

// FooterMargin sets the fraction of the nominal page height, measured from
// the bottom, within which repeating text is removed as a footer. The
// default is 0.12.
//
// Example:
//
//	candidates, _, err := headline.Open("doc.pdf").FooterMargin(0.1).Candidates()
func (e *Extractor) FooterMargin(fraction float64) *Extractor {
	newExt := e.clone()
	newExt.options.FooterMargin = fraction
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the number of pages in the document. A document that
// could not be opened reports zero pages.
//
// Example:
//
//	n, err := headline.Open("document.pdf").PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	defer e.Close()

	if e.source == nil {
		return 0, nil
	}
	return e.source.PageCount(), nil
}

// Blocks assembles the document's raw logical blocks: lines merged by shared
// style and vertical proximity, before any filtering. This is a terminal
// operation that closes the underlying source if the Extractor opened it.
//
// Returns the blocks in reading order, any warnings encountered during
// processing, and an error if extraction failed.
//
// Example:
//
//	blocks, warnings, err := headline.Open("document.pdf").Blocks()
func (e *Extractor) Blocks() ([]model.Block, []Warning, error) {
	if e.err != nil {
		return nil, e.warnings, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, e.warnings, err
	}
	defer e.Close()

	blocks, _ := e.assembleBlocks()
	return blocks, e.warnings, nil
}

// Candidates runs the full extraction pipeline and returns the heading
// candidates: blocks that survive header/footer removal, long-block removal,
// body-text removal and text cleanup, annotated with layout features. This
// is a terminal operation that closes the underlying source if the Extractor
// opened it.
//
// Returns the candidates in reading order, any warnings encountered during
// processing, and an error if extraction failed. A document that could not
// be opened yields no candidates and a warning.
//
// Example:
//
//	candidates, warnings, err := headline.Open("document.pdf").Candidates()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", headline.FormatWarnings(warnings))
//	}
func (e *Extractor) Candidates() ([]model.Block, []Warning, error) {
	if e.err != nil {
		return nil, e.warnings, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, e.warnings, err
	}
	defer e.Close()

	blocks, pageCount := e.assembleBlocks()
	pipeline := layout.NewPipelineWithConfig(e.options.filterConfig())
	return pipeline.Run(blocks, pageCount), e.warnings, nil
}

// assembleBlocks walks every page of the source, turning span groups into
// lines and lines into merged blocks. It returns the blocks in reading order
// along with the page count.
func (e *Extractor) assembleBlocks() ([]model.Block, int) {
	if e.source == nil {
		return nil, 0
	}

	merger := layout.NewMergerWithConfig(e.options.mergeConfig())
	pageCount := e.source.PageCount()

	var blocks []model.Block
	for page := 1; page <= pageCount; page++ {
		var lines []model.Line
		for _, spans := range e.source.Lines(page) {
			line, ok := layout.AssembleLine(spans)
			if !ok {
				continue
			}
			lines = append(lines, line)
		}
		blocks = append(blocks, merger.MergePage(lines, page)...)
	}

	if len(blocks) == 0 && pageCount > 0 {
		e.warnings = append(e.warnings, Warning{
			Code:    WarnNoText,
			Message: fmt.Sprintf("document has %d pages but no extractable text", pageCount),
		})
	}
	return blocks, pageCount
}
