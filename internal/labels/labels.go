// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package labels maps target page indices to the page numbers stamped on
// them. The mapping is purely arithmetic: label(i) = i + 1 + offset. Source
// page content is never consulted, so a wrong offset gives systematically
// wrong labels without any way to detect it here.
package labels

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// DefaultOffset is the offset used when none is supplied.
const DefaultOffset = 0

// Label is the page number displayed on a target page. Zero and negative
// values are valid output.
type Label int

// String returns the decimal representation of l.
func (l Label) String() string {
	return strconv.Itoa(int(l))
}

// Options configures the mapping.
type Options struct {
	// Offset is added to the 1-based target page number. It may be negative.
	Offset int `json:"offset" yaml:"offset"`
}

// DefaultOptions returns Options{Offset: DefaultOffset}.
func DefaultOptions() Options {
	return Options{Offset: DefaultOffset}
}

// For returns the label for the 0-based target page index i.
func For(i int, opt Options) Label {
	return Label(i + 1 + opt.Offset)
}

// Sequence lazily yields (i, For(i, opt)) for i = 0..n-1. Nothing is
// yielded when n <= 0.
func Sequence(n int, opt Options) iter.Seq2[int, Label] {
	return func(yield func(int, Label) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, For(i, opt)) {
				return
			}
		}
	}
}

// Collect returns the n labels of Sequence(n, opt) as a slice.
func Collect(n int, opt Options) []Label {
	if n <= 0 {
		return nil
	}
	out := make([]Label, 0, n)
	for _, l := range Sequence(n, opt) {
		out = append(out, l)
	}
	return out
}

// ErrInvalidOffset is matched by errors returned from ParseOffset.
var ErrInvalidOffset = errors.New("invalid offset")

// OffsetError reports an offset argument that is not an integer.
type OffsetError struct {
	Value string
	Err   error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%s %q: must be an integer", ErrInvalidOffset, e.Value)
}

func (e *OffsetError) Unwrap() []error { return []error{ErrInvalidOffset, e.Err} }

// ParseOffset parses a decimal offset argument, which may carry a sign.
// An empty (or all-space) string yields DefaultOffset.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultOffset, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &OffsetError{Value: s, Err: err}
	}
	return n, nil
}
