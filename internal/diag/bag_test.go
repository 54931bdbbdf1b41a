package diag

import (
	"strings"
	"testing"

	"cinder/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(SynUnexpectedToken, source.Span{}, "one")) {
		t.Fatal("first add should succeed")
	}
	if !bag.Add(NewError(SynUnexpectedToken, source.Span{}, "two")) {
		t.Fatal("second add should succeed")
	}
	if bag.Add(NewError(SynUnexpectedToken, source.Span{}, "three")) {
		t.Fatal("third add should be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, UnknownCode, source.Span{}, "warn"))
	if bag.HasErrors() {
		t.Fatal("warning only bag must not report errors")
	}
	bag.Add(NewError(LowUnsupported, source.Span{}, "boom"))
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	if bag.ErrorCount() != 1 {
		t.Fatalf("error count = %d, want 1", bag.ErrorCount())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	mk := func(start uint32, sev Severity) Diagnostic {
		return New(sev, UnknownCode, source.Span{File: 0, Start: start, End: start + 1}, "m")
	}
	bag := NewBag(10)
	bag.Add(mk(10, SevWarning))
	bag.Add(mk(3, SevError))
	bag.Add(mk(10, SevError))
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Start != 3 {
		t.Errorf("expected earliest span first, got %d", items[0].Primary.Start)
	}
	if items[1].Severity != SevError {
		t.Errorf("at equal spans errors sort before warnings")
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	d := NewError(LexUnknownChar, source.Span{Start: 1, End: 2}, "bad char")
	bag.Add(d)
	bag.Add(d)
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
}

func TestDeliverHostConventions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("pkg/app.cin", []byte("class A {\n  oops\n}\n"))

	var sb strings.Builder
	sink := WriterSink{W: &sb}
	Deliver(sink, fs, NewError(SynUnexpectedToken, source.Span{File: id, Start: 12, End: 16}, "unexpected token"))

	got := sb.String()
	// Line is 1-based, column 0-based, separators are backslashes.
	want := `pkg\app.cin:2:2: error: unexpected token` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
