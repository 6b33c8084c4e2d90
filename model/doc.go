// Package model defines the shared data types used throughout headline:
// bounding-box geometry, styled text spans as reported by a span source,
// aggregated lines, and the logical text blocks that flow through the
// layout pipeline and out to callers.
package model
