// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pagesync/internal/document"
	"github.com/pdiddy/pagesync/internal/testpdf"
	ptypes "github.com/pdiddy/pagesync/pkg/types"
)

var testStyle = document.TextStyle{
	FontName: "Helvetica",
	FontSize: 10,
	Color:    "#808080",
	Opacity:  1,
	Position: document.Position{Anchor: document.AnchorBottomCenter, DY: 30},
}

// memFS returns an in-memory filesystem holding a pages-page PDF at
// /in/target.pdf.
func memFS(t *testing.T, pages int) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/in", 0o755))
	require.NoError(t, fsys.MkdirAll("/out", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/in/target.pdf", testpdf.Blank(pages), 0o644))
	return fsys
}

func TestOpen(t *testing.T) {
	fsys := memFS(t, 3)
	require.NoError(t, afero.WriteFile(fsys, "/in/notes.txt", []byte("just some text, not a PDF\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/in/empty.pdf", nil, 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/in/nopages.pdf", testpdf.Blank(0), 0o644))

	tests := []struct {
		name      string
		path      string
		wantPages int
		wantKind  error
	}{
		{name: "valid document", path: "/in/target.pdf", wantPages: 3},
		{name: "missing file", path: "/in/missing.pdf", wantKind: document.ErrInputNotFound},
		{name: "directory", path: "/in", wantKind: document.ErrInputNotFound},
		{name: "text file", path: "/in/notes.txt", wantKind: document.ErrInvalidDocument},
		{name: "empty file", path: "/in/empty.pdf", wantKind: document.ErrInvalidDocument},
		{name: "no pages", path: "/in/nopages.pdf", wantKind: document.ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewOpener(fsys, ptypes.ValidationRelaxed).Open(tt.path)
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Contains(t, err.Error(), tt.path)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			defer doc.Close()
			assert.Equal(t, tt.wantPages, doc.PageCount())
			assert.Equal(t, tt.path, doc.Path())
		})
	}
}

func TestOpenMissingWrapsNotExist(t *testing.T) {
	_, err := NewOpener(afero.NewMemMapFs(), "").Open("/nowhere.pdf")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDrawTextRejectsBadPages(t *testing.T) {
	doc, err := NewOpener(memFS(t, 2), "").Open("/in/target.pdf")
	require.NoError(t, err)
	defer doc.Close()

	assert.Error(t, doc.DrawText(-1, "0", testStyle))
	assert.Error(t, doc.DrawText(2, "3", testStyle))

	require.NoError(t, doc.DrawText(0, "1", testStyle))
	err = doc.DrawText(0, "1", testStyle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already stamped")
}

func TestSaveRoundTrip(t *testing.T) {
	fsys := memFS(t, 4)
	opener := NewOpener(fsys, "")

	doc, err := opener.Open("/in/target.pdf")
	require.NoError(t, err)
	for i := 0; i < doc.PageCount(); i++ {
		require.NoError(t, doc.DrawText(i, strconv.Itoa(i+1), testStyle))
	}
	require.NoError(t, doc.Save("/out/stamped.pdf"))
	require.NoError(t, doc.Close())

	out, err := opener.Open("/out/stamped.pdf")
	require.NoError(t, err)
	defer out.Close()
	assert.Equal(t, 4, out.PageCount())

	entries, err := afero.ReadDir(fsys, "/out")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must not be left behind")
	assert.Equal(t, "stamped.pdf", entries[0].Name())

	// The input is untouched.
	in, err := afero.ReadFile(fsys, "/in/target.pdf")
	require.NoError(t, err)
	assert.Equal(t, testpdf.Blank(4), in)
}

func TestSaveStampsLabelsOverExistingContent(t *testing.T) {
	fsys := memFS(t, 1)
	require.NoError(t, afero.WriteFile(fsys, "/in/text.pdf", testpdf.Text(10), 0o644))

	doc, err := NewOpener(fsys, "").Open("/in/text.pdf")
	require.NoError(t, err)
	defer doc.Close()
	for i := range 10 {
		require.NoError(t, doc.DrawText(i, strconv.Itoa(i+1), testStyle))
	}
	require.NoError(t, doc.Save("/out/stamped.pdf"))

	data, err := afero.ReadFile(fsys, "/out/stamped.pdf")
	require.NoError(t, err)
	got, err := testpdf.Inspect(data)
	require.NoError(t, err)

	for i := range 10 {
		assert.Contains(t, got.Streams, "("+strconv.Itoa(i+1)+")", "label on page %d", i+1)
		assert.Contains(t, got.Streams, "("+testpdf.TextLine(i)+")", "original text on page %d", i+1)
	}
	require.Len(t, got.Sizes, 10)
	for i, d := range got.Sizes {
		assert.Equal(t, float64(testpdf.Width), d.Width, "page %d width", i+1)
		assert.Equal(t, float64(testpdf.Height), d.Height, "page %d height", i+1)
	}
}

func TestSaveWithoutDrawingAddsNoLabels(t *testing.T) {
	fsys := memFS(t, 1)
	require.NoError(t, afero.WriteFile(fsys, "/in/text.pdf", testpdf.Text(2), 0o644))

	doc, err := NewOpener(fsys, "").Open("/in/text.pdf")
	require.NoError(t, err)
	defer doc.Close()
	require.NoError(t, doc.Save("/out/plain.pdf"))

	data, err := afero.ReadFile(fsys, "/out/plain.pdf")
	require.NoError(t, err)
	got, err := testpdf.Inspect(data)
	require.NoError(t, err)
	assert.Contains(t, got.Streams, "("+testpdf.TextLine(0)+")")
	assert.NotContains(t, got.Streams, "(1)")
	assert.NotContains(t, got.Streams, "(2)")
}

func TestSaveOverwritesExisting(t *testing.T) {
	fsys := memFS(t, 2)
	require.NoError(t, afero.WriteFile(fsys, "/out/stamped.pdf", []byte("old contents"), 0o644))

	doc, err := NewOpener(fsys, "").Open("/in/target.pdf")
	require.NoError(t, err)
	defer doc.Close()
	require.NoError(t, doc.DrawText(0, "1", testStyle))
	require.NoError(t, doc.Save("/out/stamped.pdf"))

	data, err := afero.ReadFile(fsys, "/out/stamped.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "output should be a PDF")
}

func TestSaveUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "target.pdf")
	require.NoError(t, os.WriteFile(in, testpdf.Blank(1), 0o644))

	doc, err := NewOpener(nil, "").Open(in)
	require.NoError(t, err)
	defer doc.Close()
	require.NoError(t, doc.DrawText(0, "1", testStyle))

	out := filepath.Join(dir, "missing", "out.pdf")
	err = doc.Save(out)
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrOutputWrite)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file after a failed save")
}

func TestCloseTwice(t *testing.T) {
	doc, err := NewOpener(memFS(t, 1), "").Open("/in/target.pdf")
	require.NoError(t, err)
	assert.NoError(t, doc.Close())
	assert.NoError(t, doc.Close())
}

func TestDescription(t *testing.T) {
	got := Description(testStyle)
	assert.Equal(t,
		"fontname:Helvetica, points:10, position:bc, offset:0 30, scalefactor:1 abs, rotation:0, fillcolor:#808080, opacity:1",
		got)

	noAnchor := testStyle
	noAnchor.Position = document.Position{}
	assert.Contains(t, Description(noAnchor), "position:bc")
}
