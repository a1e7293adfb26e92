// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testpdf builds small, valid PDF files for tests and reads back
// what a stamped file contains.
package testpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func init() {
	api.DisableConfigDir()
}

// Letter page size in points.
const (
	Width  = 612
	Height = 792
)

// Blank returns a PDF with the given number of US Letter pages. Each page
// carries a short content stream drawing a line so that it is not empty.
func Blank(pages int) []byte {
	return build(pages, false)
}

// Text returns a PDF like Blank whose pages each show the line
// "Original page N" in Helvetica, with N counting from 1.
func Text(pages int) []byte {
	return build(pages, true)
}

// TextLine is the line Text draws on page i (0-based).
func TextLine(i int) string {
	return fmt.Sprintf("Original page %d", i+1)
}

func build(pages int, text bool) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	// 1: catalog, 2: page tree, then (page, contents) pairs from 3 on.
	// The font, when present, follows the last page.
	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))

	resources := "<< >>"
	if text {
		resources = fmt.Sprintf("<< /Font << /F1 %d 0 R >> >>", 3+2*pages)
	}
	for i := 0; i < pages; i++ {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources %s /Contents %d 0 R >>",
			Width, Height, resources, 4+2*i))
		content := fmt.Sprintf("%d w 72 72 m 540 720 l S", i+1)
		if text {
			content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", TextLine(i))
		}
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}
	if text {
		obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Contents summarizes a PDF for assertions.
type Contents struct {
	// Streams is the decoded content of every stream object, concatenated
	// in no particular order.
	// Drawn text shows up in it as "(text) Tj" operands.
	Streams string

	// Sizes holds the media box dimensions of each page in order.
	Sizes []types.Dim
}

// Inspect parses data and returns its decoded streams and page sizes.
func Inspect(data []byte) (Contents, error) {
	ctx, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return Contents{}, fmt.Errorf("reading PDF: %w", err)
	}

	var c Contents
	var streams strings.Builder
	for _, entry := range ctx.XRefTable.Table {
		if entry == nil || entry.Free {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		// Image and font programs may use filters pdfcpu does not decode.
		if err := sd.Decode(); err != nil {
			continue
		}
		streams.Write(sd.Content)
		streams.WriteByte('\n')
	}
	c.Streams = streams.String()

	if c.Sizes, err = ctx.PageDims(); err != nil {
		return Contents{}, fmt.Errorf("reading page sizes: %w", err)
	}
	return c, nil
}
