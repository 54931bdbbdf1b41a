package parser_test

import (
	"testing"

	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/parser"
	"cinder/internal/source"
	"cinder/internal/token"
)

func parseSrc(t *testing.T, src string) (*ast.Unit, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cin", []byte(src))
	bag := diag.NewBag(32)
	unit := parser.ParseUnit(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return unit, bag
}

func TestParseClassWithField(t *testing.T) {
	unit, bag := parseSrc(t, `
using System;

namespace App {
	class Counter {
		public int count;
		private string name;
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(unit.Usings) != 1 || unit.Usings[0].Name != "System" {
		t.Fatalf("usings = %+v", unit.Usings)
	}
	if unit.Namespace == nil || unit.Namespace.Name != "App" {
		t.Fatalf("namespace = %+v", unit.Namespace)
	}
	classes := unit.AllClasses()
	if len(classes) != 1 {
		t.Fatalf("classes = %d", len(classes))
	}
	c := classes[0]
	if c.Name != "Counter" || len(c.Fields) != 2 {
		t.Fatalf("class = %+v", c)
	}
	if c.Fields[0].Vis != ast.VisPublic || c.Fields[0].Type.Name != "int" {
		t.Errorf("field 0 = %+v", c.Fields[0])
	}
	if c.Fields[1].Vis != ast.VisPrivate || c.Fields[1].Type.Name != "string" {
		t.Errorf("field 1 = %+v", c.Fields[1])
	}
}

func TestParseMethod(t *testing.T) {
	unit, bag := parseSrc(t, `
class Math {
	public int Add(int a, int b) {
		return a + b;
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	c := unit.AllClasses()[0]
	if len(c.Methods) != 1 {
		t.Fatalf("methods = %d", len(c.Methods))
	}
	m := c.Methods[0]
	if m.Name != "Add" || m.Return.Name != "int" || len(m.Params) != 2 {
		t.Fatalf("method = %+v", m)
	}
	if len(m.Body.Stmts) != 1 {
		t.Fatalf("body statements = %d", len(m.Body.Stmts))
	}
	ret, ok := m.Body.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("stmt = %T", m.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != token.Plus {
		t.Fatalf("return value = %+v", ret.Value)
	}
}

func TestParseControlFlow(t *testing.T) {
	unit, bag := parseSrc(t, `
class Flow {
	public int Classify(int n) {
		int result = 0;
		while (n > 0) {
			n = n - 1;
			result = result + n;
		}
		if (result > 10) {
			return 1;
		} else if (result > 5) {
			return 2;
		} else {
			return 3;
		}
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	body := unit.AllClasses()[0].Methods[0].Body
	if len(body.Stmts) != 3 {
		t.Fatalf("statements = %d", len(body.Stmts))
	}
	if _, ok := body.Stmts[0].(*ast.LocalDecl); !ok {
		t.Errorf("stmt 0 = %T", body.Stmts[0])
	}
	if _, ok := body.Stmts[1].(*ast.While); !ok {
		t.Errorf("stmt 1 = %T", body.Stmts[1])
	}
	ifStmt, ok := body.Stmts[2].(*ast.If)
	if !ok {
		t.Fatalf("stmt 2 = %T", body.Stmts[2])
	}
	elseIf, ok := ifStmt.Else.(*ast.If)
	if !ok {
		t.Fatalf("else = %T", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.Block); !ok {
		t.Errorf("final else = %T", elseIf.Else)
	}
}

func TestParsePrecedence(t *testing.T) {
	unit, bag := parseSrc(t, `
class P {
	public int F() {
		return 1 + 2 * 3;
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	ret := unit.AllClasses()[0].Methods[0].Body.Stmts[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	if !ok || top.Op != token.Plus {
		t.Fatalf("top op = %+v", ret.Value)
	}
	right, ok := top.Y.(*ast.Binary)
	if !ok || right.Op != token.Star {
		t.Fatalf("right = %+v", top.Y)
	}
}

func TestParseThisAndCalls(t *testing.T) {
	unit, bag := parseSrc(t, `
class C {
	int x;
	public void Set(int v) {
		this.x = v;
		this.Log(v, 2);
	}
	private void Log(int a, int b) {
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	body := unit.AllClasses()[0].Methods[0].Body
	assign, ok := body.Stmts[0].(*ast.Assign)
	if !ok {
		t.Fatalf("stmt 0 = %T", body.Stmts[0])
	}
	member, ok := assign.Target.(*ast.Member)
	if !ok || member.Name != "x" {
		t.Fatalf("target = %+v", assign.Target)
	}
	call, ok := body.Stmts[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("stmt 1 = %T", body.Stmts[1])
	}
	if c, ok := call.X.(*ast.Call); !ok || len(c.Args) != 2 {
		t.Fatalf("call = %+v", call.X)
	}
}

func TestParseMissingSemicolonReportsError(t *testing.T) {
	_, bag := parseSrc(t, `
class C {
	int x
	int y;
}
`)
	if !bag.HasErrors() {
		t.Fatal("expected a syntax diagnostic")
	}
}

func TestParseRecoversAfterBadMember(t *testing.T) {
	unit, bag := parseSrc(t, `
class C {
	int 42;
	public int ok;
}
`)
	if !bag.HasErrors() {
		t.Fatal("expected a syntax diagnostic")
	}
	c := unit.AllClasses()[0]
	found := false
	for _, f := range c.Fields {
		if f.Name == "ok" {
			found = true
		}
	}
	if !found {
		t.Error("parser did not recover to parse the next member")
	}
}

func TestParseConstRequiresInitializer(t *testing.T) {
	_, bag := parseSrc(t, `
class C {
	const int limit;
}
`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for const without initializer")
	}
}

func TestParseNewExpression(t *testing.T) {
	unit, bag := parseSrc(t, `
class C {
	public void F() {
		C other = new C();
		other.Ping();
	}
	public void Ping() {
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	body := unit.AllClasses()[0].Methods[0].Body
	decl, ok := body.Stmts[0].(*ast.LocalDecl)
	if !ok || decl.Type.Name != "C" {
		t.Fatalf("stmt 0 = %+v", body.Stmts[0])
	}
	if _, ok := decl.Init.(*ast.New); !ok {
		t.Fatalf("init = %T", decl.Init)
	}
}
