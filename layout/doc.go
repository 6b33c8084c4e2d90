// Package layout turns styled text spans into ranked heading-candidate
// blocks. It aggregates spans into lines, merges lines into logical blocks
// by style and vertical proximity, computes document-wide font and
// repetition statistics, prunes body text and boilerplate through an
// ordered filter pipeline, and derives the numeric layout features handed
// to downstream classification.
package layout
