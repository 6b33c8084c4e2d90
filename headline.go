// Package headline extracts ranked heading-candidate text blocks, with
// layout features, from page-structured styled text. It aggregates the
// spans a source reports into lines, merges lines into logical blocks by
// style and vertical proximity, prunes body text and repeating boilerplate
// with document-wide statistics, and annotates the survivors with the
// numeric features a downstream classifier consumes.
//
// Basic usage:
//
//	candidates, warnings, err := headline.Open("document.pdf").Candidates()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", headline.FormatWarnings(warnings))
//	}
//
// With options:
//
//	candidates, _, err := headline.Open("report.pdf").
//	    ProximityThreshold(6).
//	    MaxWords(30).
//	    Candidates()
package headline

import "github.com/tsawler/headline/source"

// Open prepares an Extractor over the document at filename for fluent
// configuration. The document is opened lazily by the first terminal
// operation; a document that cannot be opened yields empty results and a
// warning rather than an error.
//
// Example:
//
//	candidates, warnings, err := headline.Open("document.pdf").Candidates()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-open span source. This is
// useful for tests and for callers that obtain spans from something other
// than a PDF file. The caller remains responsible for closing the source.
//
// Example:
//
//	src, err := source.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	candidates, warnings, err := headline.FromSource(src).Candidates()
func FromSource(src source.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := headline.Must(headline.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustBlocks is a helper that wraps a call to Blocks() or Candidates() and
// panics if the error is non-nil. It discards warnings and returns just the
// value. It is intended for use in scripts or tests where error handling
// would be cumbersome.
//
// Example:
//
//	candidates := headline.MustBlocks(headline.Open("document.pdf").Candidates())
func MustBlocks[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
