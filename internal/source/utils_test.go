package source

import "testing"

func TestToLineCol(t *testing.T) {
	content := []byte("int x;\nclass Foo {\n}\n")
	idx := buildLineIndex(content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"middle of first line", 4, LineCol{Line: 1, Col: 5}},
		{"newline belongs to its line", 6, LineCol{Line: 1, Col: 7}},
		{"start of second line", 7, LineCol{Line: 2, Col: 1}},
		{"inside second line", 13, LineCol{Line: 2, Col: 7}},
		{"third line brace", 19, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(idx, tt.off)
			if got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	got := toLineCol(nil, 5)
	if got != (LineCol{Line: 1, Col: 6}) {
		t.Errorf("got %+v", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("got %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Fatal("unexpected change")
	}
	if string(out) != "plain\n" {
		t.Errorf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Errorf("got %q had=%v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Errorf("got %q had=%v", out, had)
	}
}

func TestHostPath(t *testing.T) {
	got := HostPath("src/app/main.cin")
	if got != `src\app\main.cin` {
		t.Errorf("got %q", got)
	}
}

func TestAddNormalizesEveryEntryPoint(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("class A {\r\n}\r\n")...)

	fs := NewFileSet()
	id := fs.AddVirtual("test.cin", raw)
	f := fs.Get(id)

	if string(f.Content) != "class A {\n}\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("BOM flag missing")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("CRLF flag missing")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual flag missing")
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.cin", []byte("class A {\n  int x;\n}\n"))
	start, _ := fs.Resolve(Span{File: id, Start: 12, End: 15})
	if start.Line != 2 || start.Col != 3 {
		t.Errorf("got %+v, want line 2 col 3", start)
	}
}
