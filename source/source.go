package source

import "github.com/tsawler/headline/model"

// Source provides styled text spans grouped by rendering line, one page at
// a time. Implementations do not fail per page: a page that cannot be read
// simply yields no lines.
type Source interface {
	// PageCount returns the total number of pages in the document.
	PageCount() int

	// Lines returns the rendering lines of a page (1-indexed), each line
	// being the spans it is composed of, in top-to-bottom page order.
	// Pages out of range yield nil.
	Lines(page int) [][]model.Span

	// Close releases any resources held by the source. It is safe to call
	// Close multiple times.
	Close() error
}

// Static is an in-memory Source. Pages holds one entry per page, each a
// slice of rendering lines, each line a slice of spans. It is useful in
// tests and for callers that already have span data.
type Static struct {
	Pages [][][]model.Span
}

// PageCount returns the number of pages.
func (s *Static) PageCount() int {
	return len(s.Pages)
}

// Lines returns the rendering lines for the given 1-indexed page.
func (s *Static) Lines(page int) [][]model.Span {
	if page < 1 || page > len(s.Pages) {
		return nil
	}
	return s.Pages[page-1]
}

// Close is a no-op for in-memory sources.
func (s *Static) Close() error {
	return nil
}
