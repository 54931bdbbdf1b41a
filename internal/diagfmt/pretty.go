package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"cinder/internal/diag"
	"cinder/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	spanColor = color.New(color.FgGreen)
)

// Pretty renders every diagnostic in the bag. Each entry prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a caret underline and, when
// enabled, any notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if w == nil || bag == nil {
		return
	}
	for _, d := range bag.Items() {
		prettyOne(w, fs, d, opts)
	}
}

func prettyOne(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	sev := severityLabel(d.Severity)
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	if fs != nil {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, sev, d.Code, d.Message)
		writeSpanContext(w, fs, d.Primary, opts)
	} else {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code, d.Message)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			if fs != nil {
				start, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %s (line %d)\n", n.Msg, start.Line)
			} else {
				fmt.Fprintf(w, "  note: %s\n", n.Msg)
			}
		}
	}
}

// writeSpanContext prints the source line holding the span start with a
// caret underline beneath the offending range.
func writeSpanContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	lineText, lineStart := lineAt(f, start.Line)
	if lineText == "" && lineStart == 0 && start.Line > 1 {
		return
	}

	fmt.Fprintf(w, "  %s\n", strings.TrimRight(lineText, "\n"))

	caretStart := int(start.Col) - 1
	caretLen := 1
	if end.Line == start.Line && int(end.Col) > int(start.Col) {
		caretLen = int(end.Col) - int(start.Col)
	}
	underline := strings.Repeat(" ", caretStart) + "^" + strings.Repeat("~", caretLen-1)
	if opts.Color {
		underline = spanColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

// lineAt returns the text of a 1-based line and its starting offset.
func lineAt(f *source.File, line uint32) (string, uint32) {
	if line == 0 {
		return "", 0
	}
	var startOff uint32
	if line > 1 {
		idx := int(line) - 2
		if idx >= len(f.LineIdx) {
			return "", 0
		}
		startOff = f.LineIdx[idx] + 1
	}
	endOff := uint32(len(f.Content))
	if idx := int(line) - 1; idx < len(f.LineIdx) {
		endOff = f.LineIdx[idx]
	}
	if startOff > endOff {
		return "", 0
	}
	return string(f.Content[startOff:endOff]), startOff
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
