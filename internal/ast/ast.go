// Package ast defines the syntax tree produced by the parser.
// Every node carries the source span it was parsed from; the lowering
// pass relies on that to locate internal failures.
package ast

import "cinder/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Visibility is the declared access level of a class member.
type Visibility uint8

const (
	// VisPrivate is the default visibility.
	VisPrivate Visibility = iota
	// VisPublic marks exported members.
	VisPublic
	// VisInternal marks module-private members.
	VisInternal
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisInternal:
		return "internal"
	default:
		return "private"
	}
}

// TypeRef is a reference to a type by name, either a built-in keyword or
// a class identifier. Resolution happens in the resolver, not here.
type TypeRef struct {
	Name string
	Sp   source.Span
}

func (t TypeRef) Span() source.Span { return t.Sp }
