package lower

import (
	"cinder/internal/ast"
	"cinder/internal/symbols"
)

// ResolveNamespaces is the first pass: a single read-only walk that
// registers every using directive and the unit's own namespace into the
// resolver context. It emits no code and no symbols, and must run before
// signature harvesting and lowering so unqualified type names resolve.
func ResolveNamespaces(unit *ast.Unit, ctx *symbols.Context) {
	for _, u := range unit.Usings {
		ctx.AddNamespace(u.Name)
	}
	if unit.Namespace != nil {
		ctx.AddNamespace(unit.Namespace.Name)
	}
}
