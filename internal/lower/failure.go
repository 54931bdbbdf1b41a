package lower

import (
	"fmt"

	"cinder/internal/ast"
)

// FailKind classifies an internal pass failure.
type FailKind uint8

const (
	// FailLowering is any failure raised while translating the tree.
	FailLowering FailKind = iota
	// FailVerify is raised by integrity verification on a dangling
	// symbol or label reference.
	FailVerify
)

func (k FailKind) String() string {
	switch k {
	case FailVerify:
		return "verification"
	default:
		return "lowering"
	}
}

// Failure is the structured error returned by the lowering and
// verification passes. Node points at the AST node being processed when
// the failure was raised, so the orchestrator can attach a source
// location; it may be nil when no node is known.
type Failure struct {
	Kind    FailKind
	Message string
	Node    ast.Node
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s failure: %s", f.Kind, f.Message)
}

func failf(node ast.Node, format string, args ...any) *Failure {
	return &Failure{
		Kind:    FailLowering,
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	}
}

func verifyFail(format string, args ...any) *Failure {
	return &Failure{
		Kind:    FailVerify,
		Message: fmt.Sprintf(format, args...),
	}
}
