// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document defines the narrow interface between the page-labelling
// pipeline and the PDF library that does the actual parsing, drawing and
// serialization. Swapping the PDF library means writing a new Opener; the
// label mapping and page iteration never see library types.
package document

// Anchor names a reference point on the page for placing text. The values
// follow the usual two-letter convention: vertical (t, c, b) then horizontal
// (l, c, r).
type Anchor string

const (
	AnchorBottomCenter Anchor = "bc"
	AnchorBottomRight  Anchor = "br"
	AnchorBottomLeft   Anchor = "bl"
	AnchorTopCenter    Anchor = "tc"
	AnchorTopRight     Anchor = "tr"
	AnchorTopLeft      Anchor = "tl"
)

// Position places text relative to an anchor. DX and DY are in PDF points;
// positive DY moves the text up.
type Position struct {
	Anchor Anchor
	DX, DY float64
}

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	// FontName is one of the 14 standard PDF fonts (e.g. "Helvetica").
	FontName string

	// FontSize is the font size in points.
	FontSize int

	// Color is an RGB hex triplet such as "#808080".
	Color string

	// Opacity ranges from 0 (invisible) to 1 (opaque).
	Opacity float64

	Position Position
}

// Document is an open PDF. Implementations own any underlying file handle
// until Close is called.
type Document interface {
	// Path returns the path the document was opened from.
	Path() string

	// PageCount returns the number of pages.
	PageCount() int

	// DrawText draws text on the page with 0-based index page. The original
	// page content is kept and the text is composited on top of it.
	DrawText(page int, text string, style TextStyle) error

	// Save writes the document, including everything drawn so far, to path.
	// An existing file at path is replaced.
	Save(path string) error

	// Close releases the resources held by the document.
	Close() error
}

// Opener opens documents by path.
type Opener interface {
	Open(path string) (Document, error)
}
