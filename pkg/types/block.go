// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Rect is an axis-aligned box in PDF user space (points, origin at the
// bottom-left corner of the page).
type Rect struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Point is a position in PDF user space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// TextBlock is one run of nearby lines found on a page. Blocks exist only
// while a document is being edited; the YAML form lets the CLI hand them to an
// editor and read them back.
type TextBlock struct {
	// Page is the 1-indexed page the block was found on.
	Page int `json:"page" yaml:"page"`

	// Text is the block's lines joined by single spaces.
	Text string `json:"text" yaml:"text"`

	// Origin is the baseline start of the first glyph. Revised text is
	// stamped here.
	Origin Point `json:"origin" yaml:"origin"`

	// BBox estimates the area covered by the text, from the lowest baseline
	// to one font size above the highest.
	BBox Rect `json:"bbox" yaml:"bbox"`

	// FontSize is the effective size of the first glyph.
	FontSize float64 `json:"font_size" yaml:"font_size"`
}

// BlockSet is the on-disk form of extracted blocks.
type BlockSet struct {
	// Source is the PDF the blocks were extracted from.
	Source string `json:"source" yaml:"source"`

	Blocks []TextBlock `json:"blocks" yaml:"blocks"`
}
