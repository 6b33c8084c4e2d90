// Package source supplies styled text spans to the layout pipeline.
//
// A Source yields, for each page, the page's rendering lines as groups of
// spans carrying text, a bounding box in top-left-origin page coordinates,
// font name, font size, a bold flag, and an integer-encoded color. The
// package includes a PDF-backed implementation and an in-memory one for
// tests and callers that obtain spans elsewhere.
package source
