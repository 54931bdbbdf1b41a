package ast

import "cinder/internal/source"

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Block is a braced statement list.
type Block struct {
	Stmts []Stmt
	Sp    source.Span
}

// LocalDecl declares a local variable with an optional initializer.
type LocalDecl struct {
	Type TypeRef
	Name string
	Init Expr // may be nil
	Sp   source.Span
}

// Assign stores Value into Target (identifier or field access).
type Assign struct {
	Target Expr
	Value  Expr
	Sp     source.Span
}

// If is a conditional with an optional else branch.
// Else is either *Block or *If (else-if chain), or nil.
type If struct {
	Cond Expr
	Then *Block
	Else Stmt
	Sp   source.Span
}

// While is a pre-test loop.
type While struct {
	Cond Expr
	Body *Block
	Sp   source.Span
}

// Return exits the enclosing method, with an optional value.
type Return struct {
	Value Expr // may be nil
	Sp    source.Span
}

// ExprStmt evaluates an expression for its side effects (calls).
type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (s *Block) Span() source.Span     { return s.Sp }
func (s *LocalDecl) Span() source.Span { return s.Sp }
func (s *Assign) Span() source.Span    { return s.Sp }
func (s *If) Span() source.Span        { return s.Sp }
func (s *While) Span() source.Span     { return s.Sp }
func (s *Return) Span() source.Span    { return s.Sp }
func (s *ExprStmt) Span() source.Span  { return s.Sp }

func (*Block) stmtNode()     {}
func (*LocalDecl) stmtNode() {}
func (*Assign) stmtNode()    {}
func (*If) stmtNode()        {}
func (*While) stmtNode()     {}
func (*Return) stmtNode()    {}
func (*ExprStmt) stmtNode()  {}
