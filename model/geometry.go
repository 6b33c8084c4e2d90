package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// BBox represents a rectangle in page coordinates with a top-left origin:
// Y increases downward, so Top <= Bottom for any well-formed box. This is
// the coordinate space span sources are required to report in.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBBox creates a bounding box from its four edges.
func NewBBox(left, top, right, bottom float64) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// IsZero reports whether the box is the zero value.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Union returns the smallest box containing both b and other.
// The result always fully contains each input box.
func (b BBox) Union(other BBox) BBox {
	if b.IsZero() {
		return other
	}
	if other.IsZero() {
		return b
	}
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Contains reports whether other lies entirely within b.
func (b BBox) Contains(other BBox) bool {
	return other.Left >= b.Left && other.Top >= b.Top &&
		other.Right <= b.Right && other.Bottom <= b.Bottom
}

// Intersects reports whether b and other overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// MarshalJSON encodes the box as a four-element [left, top, right, bottom]
// array, the form used by the persisted block records.
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.Left, b.Top, b.Right, b.Bottom})
}

// UnmarshalJSON decodes a four-element [left, top, right, bottom] array.
func (b *BBox) UnmarshalJSON(data []byte) error {
	var edges [4]float64
	if err := json.Unmarshal(data, &edges); err != nil {
		return fmt.Errorf("bbox: %w", err)
	}
	b.Left, b.Top, b.Right, b.Bottom = edges[0], edges[1], edges[2], edges[3]
	return nil
}
