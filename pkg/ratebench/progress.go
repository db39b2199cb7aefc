package ratebench

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// progressPrinter writes transient status updates. On an interactive
// terminal updates rewrite themselves in place with \r; anywhere else only
// the final update is emitted, as a plain line, so captured output stays
// readable.
type progressPrinter struct {
	w     io.Writer
	tty   bool
	dirty bool   // tty: an in-place line is pending its newline
	last  string // non-tty: most recent transient update
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	return &progressPrinter{w: w, tty: tty}
}

// Updatef replaces the current transient status.
func (p *progressPrinter) Updatef(format string, a ...any) {
	if p.tty {
		fmt.Fprintf(p.w, "\r"+format, a...)
		p.dirty = true
		return
	}
	p.last = fmt.Sprintf(format, a...)
}

// Done terminates the transient status: on a terminal it ends the in-place
// line, otherwise it emits the last update as a full line.
func (p *progressPrinter) Done() {
	if p.tty {
		if p.dirty {
			fmt.Fprintln(p.w)
			p.dirty = false
		}
		return
	}
	if p.last != "" {
		fmt.Fprintln(p.w, p.last)
		p.last = ""
	}
}

// Linef writes a complete line, terminating any pending transient status
// first.
func (p *progressPrinter) Linef(format string, a ...any) {
	p.Done()
	fmt.Fprintf(p.w, format+"\n", a...)
}
