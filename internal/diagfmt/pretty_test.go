package diagfmt

import (
	"strings"
	"testing"

	"cinder/internal/diag"
	"cinder/internal/source"
)

func TestPrettyUnderlinesSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("app.cin", []byte("class C {\n\tpublic int x\n}\n"))

	bag := diag.NewBag(8)
	// Span covers "int" on line 2 (offsets 18..21).
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{File: id, Start: 18, End: 21},
		"expected ';' after field declaration"))

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	got := b.String()

	if !strings.Contains(got, "app.cin:2:") {
		t.Errorf("location missing:\n%s", got)
	}
	if !strings.Contains(got, "error CIN2002: expected ';'") {
		t.Errorf("header missing:\n%s", got)
	}
	if !strings.Contains(got, "^~~") {
		t.Errorf("underline missing:\n%s", got)
	}
}

func TestPrettyShowsNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("app.cin", []byte("class C {}\n"))

	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 5}, "unexpected token").
		WithNote(source.Span{File: id, Start: 6, End: 7}, "declared here")
	bag := diag.NewBag(8)
	bag.Add(d)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(b.String(), "note: declared here") {
		t.Errorf("note missing:\n%s", b.String())
	}
}
