package diag

import (
	"fmt"
	"io"

	"cinder/internal/source"
)

// Sink is the host-facing build-error channel. Line is 1-based, col is
// 0-based, and path uses platform-style backslash separators regardless of
// how the file was addressed. Host/editor integrations implement this; the
// orchestrator never reaches into host internals directly.
type Sink interface {
	ReportBuildError(msg, path string, line, col int)
	ReportInfo(msg string)
}

// WriterSink renders located build errors to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) ReportBuildError(msg, path string, line, col int) {
	if s.W == nil {
		return
	}
	fmt.Fprintf(s.W, "%s:%d:%d: error: %s\n", path, line, col, msg)
}

func (s WriterSink) ReportInfo(msg string) {
	if s.W == nil {
		return
	}
	fmt.Fprintln(s.W, msg)
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) ReportBuildError(string, string, int, int) {}
func (NopSink) ReportInfo(string)                         {}

// Deliver resolves a diagnostic's primary span against the file set and
// forwards it to the sink with host coordinate conventions applied.
// Diagnostics without a resolvable span are delivered unlocated.
func Deliver(sink Sink, fs *source.FileSet, d Diagnostic) {
	if sink == nil {
		return
	}
	if fs == nil {
		sink.ReportBuildError(d.Message, "", 0, 0)
		return
	}
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	sink.ReportBuildError(d.Message, source.HostPath(f.Path), int(start.Line), int(start.Col)-1)
}
