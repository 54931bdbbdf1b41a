package asm

import "testing"

func TestBuilderIndentation(t *testing.T) {
	b := NewBuilder()
	b.Text(DataStart)
	b.Indent()
	b.Line(".export x_1")
	b.Blank()
	b.Text(Decl("x_1", "SystemInt32", "null"))
	b.Dedent()
	b.Text(DataEnd)

	want := ".data_start\n" +
		"    .export x_1\n" +
		"\n" +
		"    x_1: %SystemInt32, null\n" +
		".data_end\n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuilderTextKeepsVerbsLiteral(t *testing.T) {
	b := NewBuilder()
	b.Indent()
	b.Text("x_1: %SystemInt32, null")
	got := b.String()
	want := "    x_1: %SystemInt32, null\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderRawIgnoresIndent(t *testing.T) {
	b := NewBuilder()
	b.Indent()
	b.Raw("label_1:")
	b.Line("jump label_1")
	got := b.String()
	want := "label_1:\n    jump label_1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderEmpty(t *testing.T) {
	if NewBuilder().String() != "" {
		t.Error("empty builder should render empty string")
	}
}

func TestDedentBelowZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewBuilder().Dedent()
}

func TestFormatHelpers(t *testing.T) {
	if got := Export("count_2"); got != ".export count_2" {
		t.Errorf("Export = %q", got)
	}
	if got := Decl("count_2", "SystemInt32", "null"); got != "count_2: %SystemInt32, null" {
		t.Errorf("Decl = %q", got)
	}
	if got := Decl("this_1", "AppCounter", "this"); got != "this_1: %AppCounter, this" {
		t.Errorf("Decl = %q", got)
	}
}
