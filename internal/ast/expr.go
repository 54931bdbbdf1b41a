package ast

import (
	"cinder/internal/source"
	"cinder/internal/token"
)

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// IntLit is a decimal integer literal. Value keeps the source spelling.
type IntLit struct {
	Value string
	Sp    source.Span
}

// FloatLit is a decimal floating-point literal.
type FloatLit struct {
	Value string
	Sp    source.Span
}

// StringLit carries the decoded, NFC-normalized string value.
type StringLit struct {
	Value string
	Sp    source.Span
}

// BoolLit is true or false.
type BoolLit struct {
	Value bool
	Sp    source.Span
}

// NullLit is the null reference literal.
type NullLit struct {
	Sp source.Span
}

// Ident names a local, parameter, field, or method.
type Ident struct {
	Name string
	Sp   source.Span
}

// This refers to the receiver of the enclosing method.
type This struct {
	Sp source.Span
}

// Member is a dotted access: Recv.Name.
type Member struct {
	Recv Expr
	Name string
	Sp   source.Span
}

// Unary applies '-' or '!' to X.
type Unary struct {
	Op token.Kind
	X  Expr
	Sp source.Span
}

// Binary applies an arithmetic, comparison, or logical operator.
type Binary struct {
	Op   token.Kind
	X, Y Expr
	Sp   source.Span
}

// Call invokes a method. Target is an *Ident or *Member.
type Call struct {
	Target Expr
	Args   []Expr
	Sp     source.Span
}

// New allocates a class instance on the heap.
type New struct {
	Type TypeRef
	Sp   source.Span
}

func (e *IntLit) Span() source.Span    { return e.Sp }
func (e *FloatLit) Span() source.Span  { return e.Sp }
func (e *StringLit) Span() source.Span { return e.Sp }
func (e *BoolLit) Span() source.Span   { return e.Sp }
func (e *NullLit) Span() source.Span   { return e.Sp }
func (e *Ident) Span() source.Span     { return e.Sp }
func (e *This) Span() source.Span      { return e.Sp }
func (e *Member) Span() source.Span    { return e.Sp }
func (e *Unary) Span() source.Span     { return e.Sp }
func (e *Binary) Span() source.Span    { return e.Sp }
func (e *Call) Span() source.Span      { return e.Sp }
func (e *New) Span() source.Span       { return e.Sp }

func (*IntLit) exprNode()    {}
func (*FloatLit) exprNode()  {}
func (*StringLit) exprNode() {}
func (*BoolLit) exprNode()   {}
func (*NullLit) exprNode()   {}
func (*Ident) exprNode()     {}
func (*This) exprNode()      {}
func (*Member) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Call) exprNode()      {}
func (*New) exprNode()       {}
