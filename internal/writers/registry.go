// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"hairpin-core/layout"
	"hairpin/internal/engine"
)

// Options shared by all report writers.
type Options struct {
	Header bool          // emit a header line (text)
	Sort   bool          // buffer and order by (SourceFile, ID)
	Layout layout.Config // geometry for the SVG writer
}

// A writerFunc renders a full batch of reports.
type writerFunc func(w io.Writer, reports []engine.Report, opt Options) error

// reportWriters maps format → handler. Formats register from init()
// blocks in their own files.
var reportWriters = map[string]writerFunc{}

func register(format string, fn writerFunc) { reportWriters[format] = fn }

// Formats lists the registered format names, sorted, for CLI
// validation and error messages.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for k := range reportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// Start spins up a writer goroutine consuming Reports for the given
// format. Reports are buffered so --sort can order the batch; the
// engine's per-record cost dwarfs the memory of a report slice.
func Start(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, ok := reportWriters[format]
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown output format %q", format)
			return
		}
		var buf []engine.Report
		for r := range in {
			buf = append(buf, r)
		}
		if opt.Sort {
			SortReports(buf)
		}
		errCh <- fn(out, buf, opt)
	}()

	return in, errCh
}
