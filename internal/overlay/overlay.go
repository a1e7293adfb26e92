// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package overlay draws page labels onto the pages of a target document.
package overlay

import (
	"fmt"
	"iter"

	"github.com/pdiddy/pagesync/internal/document"
	"github.com/pdiddy/pagesync/internal/labels"
)

// Fixed label appearance: grey 10pt Helvetica, centred 30pt above the
// bottom edge.
const (
	defaultFont    = "Helvetica"
	defaultSize    = 10
	defaultColor   = "#808080"
	defaultBottomY = 30
)

// DefaultStyle returns the style every label is drawn with.
func DefaultStyle() document.TextStyle {
	return document.TextStyle{
		FontName: defaultFont,
		FontSize: defaultSize,
		Color:    defaultColor,
		Opacity:  1,
		Position: document.Position{
			Anchor: document.AnchorBottomCenter,
			DY:     defaultBottomY,
		},
	}
}

// ProgressFunc is called after page i (0-based) of n has been drawn.
type ProgressFunc func(i, n int)

// Render draws every label of seq onto doc in style. The label for index i
// goes on page i; each page receives exactly the label computed from its own
// index, whatever the source document looks like. onPage may be nil.
func Render(doc document.Document, seq iter.Seq2[int, labels.Label], style document.TextStyle, onPage ProgressFunc) error {
	n := doc.PageCount()
	for i, label := range seq {
		if err := doc.DrawText(i, label.String(), style); err != nil {
			return fmt.Errorf("drawing label %s on page %d: %w", label, i+1, err)
		}
		if onPage != nil {
			onPage(i, n)
		}
	}
	return nil
}
