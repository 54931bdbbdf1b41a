package symbols

import "testing"

func TestResolveBuiltins(t *testing.T) {
	ctx := NewContext()
	tests := []struct{ src, want string }{
		{"int", "SystemInt32"},
		{"bool", "SystemBoolean"},
		{"string", "SystemString"},
		{"float", "SystemSingle"},
		{"void", "SystemVoid"},
	}
	for _, tt := range tests {
		got, ok := ctx.ResolveType(tt.src)
		if !ok || got != tt.want {
			t.Errorf("ResolveType(%q) = %q, %v; want %q", tt.src, got, ok, tt.want)
		}
	}
	if _, ok := ctx.ResolveType("Widget"); ok {
		t.Error("unregistered class should not resolve")
	}
}

func TestDefineClassQualifiesName(t *testing.T) {
	ctx := NewContext()
	resolved := ctx.DefineClass("App.Core", "Counter")
	if resolved != "AppCoreCounter" {
		t.Fatalf("resolved = %q", resolved)
	}
	got, ok := ctx.ResolveType("Counter")
	if !ok || got != "AppCoreCounter" {
		t.Fatalf("ResolveType = %q, %v", got, ok)
	}
	if !ctx.IsClass("AppCoreCounter") {
		t.Error("IsClass should report registered class")
	}
}

func TestNamespaces(t *testing.T) {
	ctx := NewContext()
	ctx.AddNamespace("System")
	ctx.AddNamespace("")
	if !ctx.HasNamespace("System") {
		t.Error("System should be visible")
	}
	if ctx.Namespaces() != 1 {
		t.Errorf("Namespaces = %d, want 1 (empty names ignored)", ctx.Namespaces())
	}
}

func TestSignatureSet(t *testing.T) {
	set := NewSignatureSet()
	err := set.Add(&Signature{Class: "C", Name: "Foo", Return: "SystemVoid"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := set.Add(&Signature{Class: "C", Name: "Foo"}); err == nil {
		t.Fatal("duplicate method should error")
	}
	if _, ok := set.Lookup("C", "Foo"); !ok {
		t.Fatal("Lookup failed")
	}
	if _, ok := set.Lookup("C", "Bar"); ok {
		t.Fatal("unknown method should not resolve")
	}
}

func TestLabelTable(t *testing.T) {
	lt := NewLabelTable()
	a := lt.New("while_head")
	b := lt.New("while_head")
	if a == b {
		t.Fatalf("labels must be unique: %s", a)
	}
	lt.Reference(a)
	lt.Reference(a)
	lt.Define(a)
	if lt.Definitions(a) != 1 {
		t.Errorf("definitions = %d", lt.Definitions(a))
	}
	refs := lt.Referenced()
	if len(refs) != 1 || refs[0] != a {
		t.Errorf("referenced = %v", refs)
	}
}
