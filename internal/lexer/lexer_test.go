package lexer

import (
	"testing"

	"cinder/internal/diag"
	"cinder/internal/source"
	"cinder/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cin", []byte(src))
	bag := diag.NewBag(16)
	toks := Tokenize(fs.Get(id), diag.BagReporter{Bag: bag})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexDeclaration(t *testing.T) {
	toks, bag := lexAll(t, "public int x;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	want := []token.Kind{token.KwPublic, token.KwInt, token.Ident, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[2].Text != "x" {
		t.Errorf("ident text = %q, want x", toks[2].Text)
	}
}

func TestLexOperators(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"==", token.EqEq},
		{"=", token.Assign},
		{"!=", token.BangEq},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
		{"%", token.Percent},
	}
	for _, tt := range tests {
		toks, bag := lexAll(t, tt.src)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics", tt.src)
			continue
		}
		if toks[0].Kind != tt.kind {
			t.Errorf("%q lexed as %v, want %v", tt.src, toks[0].Kind, tt.kind)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	toks, bag := lexAll(t, "42 3.14")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if toks[0].Kind != token.IntLit || toks[0].Text != "42" {
		t.Errorf("int literal = %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.FloatLit || toks[1].Text != "3.14" {
		t.Errorf("float literal = %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexBadNumber(t *testing.T) {
	toks, bag := lexAll(t, "12abc")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if toks[0].Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", toks[0].Kind)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, bag := lexAll(t, `"a\"b\n"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if toks[0].Kind != token.StringLit {
		t.Fatalf("kind = %v", toks[0].Kind)
	}
	if toks[0].Text != "a\"b\n" {
		t.Errorf("decoded = %q", toks[0].Text)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `"abc`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestLexComments(t *testing.T) {
	toks, bag := lexAll(t, "// line\nclass /* block */ Foo")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	want := []token.Kind{token.KwClass, token.Ident, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexSpans(t *testing.T) {
	toks, _ := lexAll(t, "class Foo")
	if toks[1].Span.Start != 6 || toks[1].Span.End != 9 {
		t.Errorf("span = %v, want 6-9", toks[1].Span)
	}
}
