// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one stamping job: load the source and target PDFs,
// map target pages to labels, draw the labels, and write the result.
// The steps run strictly in order and the first failure ends the run.
// A written output is re-opened to check that it kept every target page.
package pipeline

import (
	"fmt"
	"io"

	"github.com/pdiddy/pagesync/internal/document"
	"github.com/pdiddy/pagesync/internal/labels"
	"github.com/pdiddy/pagesync/internal/overlay"
)

// Request describes a stamping job.
type Request struct {
	// SourcePath is the PDF with the reference pagination. Only its page
	// count is read.
	SourcePath string

	// TargetPath is the PDF to stamp. It is not modified on disk.
	TargetPath string

	// OutputPath receives the stamped PDF. An existing file is replaced.
	OutputPath string

	Options labels.Options
	Style   document.TextStyle
}

// Result summarizes a run.
type Result struct {
	// Stage is StageDone on success and StageFailed otherwise.
	Stage Stage

	// FailedAt is the last stage completed before the failing step. It is
	// only meaningful when Stage is StageFailed.
	FailedAt Stage

	SourcePages int
	TargetPages int
	OutputPages int
}

// Run executes req, writing status lines to w. Both input documents are
// closed before Run returns. The returned error is a *StageError wrapping a
// document or render error. A run that fails before the write step leaves
// no output file; a file that fails verification is left for inspection.
func Run(opener document.Opener, req Request, w io.Writer) (Result, error) {
	res := Result{Stage: StageStart}
	fail := func(step string, err error) (Result, error) {
		res.FailedAt = res.Stage
		res.Stage = StageFailed
		return res, &StageError{Step: step, Err: err}
	}

	src, err := opener.Open(req.SourcePath)
	if err != nil {
		return fail("load", err)
	}
	defer src.Close()

	tgt, err := opener.Open(req.TargetPath)
	if err != nil {
		return fail("load", err)
	}
	defer tgt.Close()

	res.SourcePages = src.PageCount()
	res.TargetPages = tgt.PageCount()
	fmt.Fprintf(w, "source: %s (%d pages)\n", req.SourcePath, res.SourcePages)
	fmt.Fprintf(w, "target: %s (%d pages)\n", req.TargetPath, res.TargetPages)
	if res.TargetPages != res.SourcePages {
		fmt.Fprintf(w, "warning: page counts differ; labels follow target page order and offset only\n")
	}
	if req.Options.Offset != 0 {
		fmt.Fprintf(w, "offset: %d\n", req.Options.Offset)
	}
	res.Stage = StageLoaded

	seq := labels.Sequence(res.TargetPages, req.Options)
	res.Stage = StageMapped

	bar := newProgress(w, res.TargetPages)
	err = overlay.Render(tgt, seq, req.Style, bar.update)
	bar.finish()
	if err != nil {
		return fail("render", err)
	}
	res.Stage = StageRendered

	fmt.Fprintf(w, "saving: %s\n", req.OutputPath)
	if err := tgt.Save(req.OutputPath); err != nil {
		return fail("write", err)
	}
	res.Stage = StageWritten

	res.OutputPages, err = countPages(opener, req.OutputPath)
	if err != nil {
		return fail("verify", err)
	}
	if res.OutputPages != res.TargetPages {
		return fail("verify", fmt.Errorf("%s has %d pages, want %d", req.OutputPath, res.OutputPages, res.TargetPages))
	}

	first := labels.For(0, req.Options)
	last := labels.For(res.TargetPages-1, req.Options)
	fmt.Fprintf(w, "done: stamped %d pages, labels %s to %s\n", res.TargetPages, first, last)
	res.Stage = StageDone
	return res, nil
}

func countPages(opener document.Opener, path string) (int, error) {
	doc, err := opener.Open(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()
	return doc.PageCount(), nil
}
