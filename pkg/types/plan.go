// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LabelPlan lists the label each target page would receive. It is what the
// labels command prints instead of writing a stamped PDF.
type LabelPlan struct {
	// Target is the path of the target PDF.
	Target string `json:"target" yaml:"target"`

	// Offset is the offset the labels were computed with.
	Offset int `json:"offset" yaml:"offset"`

	// Pages is the number of pages in the target.
	Pages int `json:"pages" yaml:"pages"`

	Labels []PageLabel `json:"labels" yaml:"labels"`
}

// PageLabel pairs a 1-based target page number with its label text.
type PageLabel struct {
	Page  int    `json:"page" yaml:"page"`
	Label string `json:"label" yaml:"label"`
}
