package ast

import "cinder/internal/source"

// Unit is one parsed source file: usings, an optional namespace, and the
// classes declared in it.
type Unit struct {
	FileID    source.FileID
	Usings    []*Using
	Namespace *Namespace
	Classes   []*Class
	Sp        source.Span
}

func (u *Unit) Span() source.Span { return u.Sp }

// AllClasses returns the unit's classes, including those nested in the
// namespace, in declaration order.
func (u *Unit) AllClasses() []*Class {
	if u.Namespace == nil {
		return u.Classes
	}
	out := make([]*Class, 0, len(u.Classes)+len(u.Namespace.Classes))
	out = append(out, u.Classes...)
	out = append(out, u.Namespace.Classes...)
	return out
}

// Using is a namespace import directive.
type Using struct {
	Name string
	Sp   source.Span
}

func (d *Using) Span() source.Span { return d.Sp }

// Namespace wraps the classes declared inside a namespace block.
type Namespace struct {
	Name    string
	Classes []*Class
	Sp      source.Span
}

func (n *Namespace) Span() source.Span { return n.Sp }

// Class is a class declaration with its fields and methods.
type Class struct {
	Name     string
	NameSpan source.Span
	Fields   []*Field
	Methods  []*Method
	Sp       source.Span
}

func (c *Class) Span() source.Span { return c.Sp }

// Field is a class field declaration. Init is non-nil only for constants.
type Field struct {
	Vis      Visibility
	IsConst  bool
	Type     TypeRef
	Name     string
	NameSpan source.Span
	Init     Expr
	Sp       source.Span
}

func (f *Field) Span() source.Span { return f.Sp }

// Method is a method declaration with its body.
type Method struct {
	Vis      Visibility
	IsStatic bool
	Return   TypeRef
	Name     string
	NameSpan source.Span
	Params   []*Param
	Body     *Block
	Sp       source.Span
}

func (m *Method) Span() source.Span { return m.Sp }

// Param is one method parameter.
type Param struct {
	Type TypeRef
	Name string
	Sp   source.Span
}

func (p *Param) Span() source.Span { return p.Sp }
