// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const barWidth = 40

// progress redraws a one-line bar while pages are stamped. It only draws
// when the writer is a terminal; logs and pipes get the summary lines alone.
type progress struct {
	w     io.Writer
	total int
	width int
	drawn bool
}

func newProgress(w io.Writer, total int) *progress {
	p := &progress{w: w, total: total}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p
	}
	p.width = barWidth
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < barWidth+30 {
		p.width = max(cols-30, 10)
	}
	return p
}

func (p *progress) enabled() bool { return p.width > 0 }

func (p *progress) update(i, n int) {
	if !p.enabled() || n <= 0 {
		return
	}
	fmt.Fprint(p.w, "\r"+renderBar(i+1, n, p.width))
	p.drawn = true
}

// finish ends the bar line so following output starts on a fresh line.
func (p *progress) finish() {
	if p.drawn {
		fmt.Fprintln(p.w)
		p.drawn = false
	}
}

// renderBar formats "Page done/total [####----] pct%".
func renderBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := width * done / total
	filled = min(max(filled, 0), width)
	pct := 100 * float64(done) / float64(total)
	return fmt.Sprintf("Page %d/%d [%s%s] %5.1f%%",
		done, total, strings.Repeat("#", filled), strings.Repeat("-", width-filled), pct)
}
