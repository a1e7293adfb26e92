// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc implements document.Opener on top of pdfcpu. Files are read
// and written through an afero filesystem so tests can run in memory.
package pdfdoc

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/spf13/afero"

	"github.com/pdiddy/pagesync/internal/document"
	ptypes "github.com/pdiddy/pagesync/pkg/types"
)

func init() {
	// pdfcpu otherwise creates and reads a config directory under the
	// user's home on first use.
	api.DisableConfigDir()
}

// Opener opens PDF documents from Fs.
type Opener struct {
	fs         afero.Fs
	validation ptypes.ValidationMode
}

// NewOpener returns an Opener reading from fsys. A nil fsys means the OS
// filesystem.
func NewOpener(fsys afero.Fs, validation ptypes.ValidationMode) *Opener {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if validation == "" {
		validation = ptypes.ValidationRelaxed
	}
	return &Opener{fs: fsys, validation: validation}
}

func (o *Opener) config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.ADDWATERMARKS
	if o.validation == ptypes.ValidationStrict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}

// Open opens and validates the PDF at path. The file stays open until the
// returned document is closed.
func (o *Opener) Open(path string) (document.Document, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return nil, document.NotFound(path, err)
	}
	if info.IsDir() {
		return nil, document.NotFound(path, errors.New("is a directory"))
	}

	f, err := o.fs.Open(path)
	if err != nil {
		return nil, document.NotFound(path, err)
	}

	ctx, err := o.read(f)
	if err != nil {
		f.Close()
		return nil, document.Invalid(path, err)
	}

	return &Document{
		path:    path,
		fs:      o.fs,
		file:    f,
		ctx:     ctx,
		pending: make(map[int]*model.Watermark),
	}, nil
}

// read parses, validates and optimizes the PDF in f. pdfcpu can panic on
// badly malformed input; that is reported as an error.
func (o *Opener) read(f afero.File) (ctx *model.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("parsing PDF: %v", r)
		}
	}()

	ctx, err = api.ReadContext(f, o.config())
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("validating PDF: %w", err)
	}
	if err := api.OptimizeContext(ctx); err != nil {
		return nil, fmt.Errorf("optimizing PDF: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("counting pages: %w", err)
	}
	if ctx.PageCount < 1 {
		return nil, errors.New("document has no pages")
	}
	return ctx, nil
}

// Document is an open PDF backed by a pdfcpu context.
type Document struct {
	path string
	fs   afero.Fs
	file afero.File
	ctx  *model.Context

	// pending holds the stamps drawn since the last Save, keyed by 1-based
	// page number. pdfcpu applies them in one pass.
	pending map[int]*model.Watermark
}

var _ document.Document = (*Document)(nil)

func (d *Document) Path() string { return d.path }

func (d *Document) PageCount() int { return d.ctx.PageCount }

// DrawText queues text for page. The stamp is composited when the document
// is saved.
func (d *Document) DrawText(page int, text string, style document.TextStyle) error {
	if page < 0 || page >= d.ctx.PageCount {
		return fmt.Errorf("page index %d out of range [0, %d)", page, d.ctx.PageCount)
	}
	if _, dup := d.pending[page+1]; dup {
		return fmt.Errorf("page index %d already stamped", page)
	}
	wm, err := api.TextWatermark(text, Description(style), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("preparing text for page %d: %w", page+1, err)
	}
	d.pending[page+1] = wm
	return nil
}

// Description renders style in pdfcpu's stamp description syntax.
func Description(style document.TextStyle) string {
	anchor := style.Position.Anchor
	if anchor == "" {
		anchor = document.AnchorBottomCenter
	}
	return fmt.Sprintf(
		"fontname:%s, points:%d, position:%s, offset:%g %g, scalefactor:1 abs, rotation:0, fillcolor:%s, opacity:%g",
		style.FontName, style.FontSize, anchor,
		style.Position.DX, style.Position.DY,
		style.Color, style.Opacity,
	)
}

// Save applies queued stamps and writes the document to path. The bytes go
// to a temporary file next to path which is renamed into place only after a
// complete write, so a failed Save leaves no file at path.
func (d *Document) Save(path string) error {
	if len(d.pending) > 0 {
		if err := pdfcpu.AddWatermarksMap(d.ctx, d.pending); err != nil {
			return fmt.Errorf("stamping %s: %w", d.path, err)
		}
		d.pending = make(map[int]*model.Watermark)
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(d.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return document.WriteFailed(path, err)
	}
	tmpName := tmp.Name()

	if err := api.WriteContext(d.ctx, tmp); err != nil {
		tmp.Close()
		d.fs.Remove(tmpName)
		return document.WriteFailed(path, err)
	}
	if err := tmp.Close(); err != nil {
		d.fs.Remove(tmpName)
		return document.WriteFailed(path, err)
	}
	if err := d.fs.Rename(tmpName, path); err != nil {
		d.fs.Remove(tmpName)
		return document.WriteFailed(path, err)
	}
	return nil
}

// Close releases the input file. It is safe to call more than once.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	if err != nil && !errors.Is(err, fs.ErrClosed) {
		return fmt.Errorf("closing %s: %w", d.path, err)
	}
	return nil
}
