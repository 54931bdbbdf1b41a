// Package lower implements the tree passes of the compilation pipeline:
// namespace resolution, signature harvesting, lowering to instructions,
// and post-lowering integrity verification.
//
// Passes return a structured *Failure instead of panicking; the
// orchestrator converts failures into located diagnostics using the AST
// node recorded at the point of failure.
package lower

import (
	"strings"

	"cinder/internal/asm"
	"cinder/internal/ast"
	"cinder/internal/symbols"
)

// Result is the raw output of lowering: the instruction text destined for
// the code block, plus the symbol references recorded for verification.
type Result struct {
	Code       *asm.Builder
	SymbolRefs []string // unique names, first-reference order
}

// Lowerer is the state of the third pass over one compilation unit.
type Lowerer struct {
	ctx     *symbols.Context
	dir     *symbols.Directory
	labels  *symbols.LabelTable
	harvest *Harvest

	code    *asm.Builder
	refs    []string
	refSeen map[string]bool

	// current is the node being lowered, recorded so the orchestrator
	// can locate failures raised deep inside expression lowering.
	current ast.Node

	ns     string
	class  *ast.Class
	scope  *symbols.Directory // innermost scope while lowering a body
	method *ast.Method
}

// NewLowerer wires the pass to the unit's shared compilation state.
func NewLowerer(ctx *symbols.Context, dir *symbols.Directory, labels *symbols.LabelTable, harvest *Harvest) *Lowerer {
	return &Lowerer{
		ctx:     ctx,
		dir:     dir,
		labels:  labels,
		harvest: harvest,
		code:    asm.NewBuilder(),
		refSeen: make(map[string]bool),
	}
}

// LowerUnit translates every method body into instructions. On failure the
// partial result is still returned so the orchestrator can attempt
// best-effort emission.
func (l *Lowerer) LowerUnit(unit *ast.Unit) (*Result, *Failure) {
	l.at(unit)
	if unit.Namespace != nil {
		l.ns = unit.Namespace.Name
	}

	var fail *Failure
	for _, c := range unit.AllClasses() {
		if fail = l.lowerClass(c); fail != nil {
			break
		}
	}
	return &Result{Code: l.code, SymbolRefs: l.refs}, fail
}

func (l *Lowerer) lowerClass(c *ast.Class) *Failure {
	l.at(c)
	l.class = c
	classScope := l.harvest.ClassScopes[c]
	if classScope == nil {
		return failf(c, "class %s was not harvested", c.Name)
	}

	if fail := l.lowerConstInit(c, classScope); fail != nil {
		return fail
	}

	for _, m := range c.Methods {
		if fail := l.lowerMethod(c, classScope, m); fail != nil {
			return fail
		}
	}
	return nil
}

// lowerConstInit emits the class initializer that assigns constant field
// values; data-block initializers are fixed to this/null, so constants get
// their values in code.
func (l *Lowerer) lowerConstInit(c *ast.Class, classScope *symbols.Directory) *Failure {
	var consts []*ast.Field
	for _, f := range c.Fields {
		if f.IsConst && f.Init != nil {
			consts = append(consts, f)
		}
	}
	if len(consts) == 0 {
		return nil
	}

	l.scope = classScope
	l.method = nil
	l.defineLabel(MangleMethod(l.ns, c.Name, "init"))
	l.code.Indent()
	for _, f := range consts {
		l.at(f)
		def, ok := classScope.Lookup(f.Name)
		if !ok {
			l.code.Dedent()
			return failf(f, "const field %s.%s has no symbol", c.Name, f.Name)
		}
		operand, _, fail := l.lowerExpr(f.Init)
		if fail != nil {
			l.code.Dedent()
			return fail
		}
		l.emit("mov %s, %s", l.use(def.UniqueName), operand)
	}
	l.emit("ret")
	l.code.Dedent()
	return nil
}

func (l *Lowerer) lowerMethod(c *ast.Class, classScope *symbols.Directory, m *ast.Method) *Failure {
	l.at(m)
	l.method = m
	l.scope = classScope.Child()

	sig, ok := l.harvest.Signatures.Lookup(c.Name, m.Name)
	if !ok {
		return failf(m, "method %s.%s was not harvested", c.Name, m.Name)
	}

	for i, p := range m.Params {
		l.scope.Declare(p.Name, sig.Params[i], 0)
	}

	l.defineLabel(sig.Label)
	l.code.Indent()
	fail := l.lowerBlock(m.Body)
	if fail == nil && !endsWithReturn(m.Body) {
		l.emit("ret")
	}
	l.code.Dedent()
	return fail
}

// endsWithReturn reports whether the block's last statement returns, so
// void methods get an implicit ret only when they need one.
func endsWithReturn(b *ast.Block) bool {
	if len(b.Stmts) == 0 {
		return false
	}
	_, ok := b.Stmts[len(b.Stmts)-1].(*ast.Return)
	return ok
}

// at records the node currently being lowered.
func (l *Lowerer) at(n ast.Node) {
	if n != nil {
		l.current = n
	}
}

func (l *Lowerer) emit(format string, args ...any) {
	l.code.Line(format, args...)
}

// use records a symbol reference for integrity verification and returns
// the name unchanged, so it can be inlined into emit calls.
func (l *Lowerer) use(uniqueName string) string {
	if !l.refSeen[uniqueName] {
		l.refSeen[uniqueName] = true
		l.refs = append(l.refs, uniqueName)
	}
	return uniqueName
}

// defineLabel emits a label definition line at column zero.
func (l *Lowerer) defineLabel(name string) {
	l.labels.Define(name)
	l.code.Raw(name + ":")
}

// jump emits an unconditional jump and records the label reference.
func (l *Lowerer) jump(label string) {
	l.labels.Reference(label)
	l.emit("jump %s", label)
}

// jumpFalse emits a conditional jump taken when cond is false.
func (l *Lowerer) jumpFalse(cond, label string) {
	l.labels.Reference(label)
	l.emit("jumpf %s, %s", cond, label)
}

// temp allocates a compiler-generated temporary in the current scope.
func (l *Lowerer) temp(typeName string) *symbols.Definition {
	return l.scope.Declare("t", typeName, 0)
}

// MangleMethod builds the code-block entry label for a method:
// namespace, class, and method joined by underscores, dots flattened.
func MangleMethod(ns, class, method string) string {
	parts := make([]string, 0, 3)
	if ns != "" {
		parts = append(parts, strings.ReplaceAll(ns, ".", "_"))
	}
	parts = append(parts, class, method)
	return strings.Join(parts, "_")
}
