package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/aalvaropc/solidlab/internal/ports"
)

// Reporter writes each reported line to an io.Writer.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

var _ ports.Reporter = (*Reporter)(nil)

func (r *Reporter) Report(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, line)
}

// Lines collects reported lines in memory. The TUI renders from it and
// tests assert against it.
type Lines struct {
	mu    sync.Mutex
	lines []string
}

var _ ports.Reporter = (*Lines)(nil)

func (l *Lines) Report(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

// All returns a copy of the collected lines.
func (l *Lines) All() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
