package lower

import (
	"cinder/internal/ast"
	"cinder/internal/symbols"
)

// Harvest is the product of the signature-harvesting pass, consumed by
// lowering: every method's callable shape plus the per-class scopes
// holding field and receiver symbols.
type Harvest struct {
	Signatures  *symbols.SignatureSet
	ClassScopes map[*ast.Class]*symbols.Directory
	ClassTypes  map[*ast.Class]string // resolved storage type name
	ClassByType map[string]*ast.Class // reverse: resolved type -> class
}

// HarvestSignatures is the second pass: a single walk that registers every
// class type, every field symbol, and every method signature. Call sites
// lowered later resolve against this harvest
// regardless of declaration order, which is what makes forward and
// mutually-recursive calls work. Method bodies are not touched.
func HarvestSignatures(unit *ast.Unit, ctx *symbols.Context, dir *symbols.Directory) (*Harvest, *Failure) {
	h := &Harvest{
		Signatures:  symbols.NewSignatureSet(),
		ClassScopes: make(map[*ast.Class]*symbols.Directory),
		ClassTypes:  make(map[*ast.Class]string),
		ClassByType: make(map[string]*ast.Class),
	}

	ns := ""
	if unit.Namespace != nil {
		ns = unit.Namespace.Name
	}

	// Register all class types first so fields and signatures can refer
	// to classes declared later in the file.
	for _, c := range unit.AllClasses() {
		resolved := ctx.DefineClass(ns, c.Name)
		h.ClassTypes[c] = resolved
		h.ClassByType[resolved] = c
	}

	for _, c := range unit.AllClasses() {
		scope := dir.Child()
		h.ClassScopes[c] = scope

		for _, f := range c.Fields {
			typeName, ok := ctx.ResolveType(f.Type.Name)
			if !ok {
				return nil, failf(f, "unknown type %q for field %s.%s", f.Type.Name, c.Name, f.Name)
			}
			scope.Declare(f.Name, typeName, fieldFlags(f))
		}

		for _, m := range c.Methods {
			sig, fail := methodSignature(ctx, ns, c, m)
			if fail != nil {
				return nil, fail
			}
			if err := h.Signatures.Add(sig); err != nil {
				return nil, failf(m, "%s", err.Error())
			}
		}
	}
	return h, nil
}

func fieldFlags(f *ast.Field) symbols.DeclFlags {
	var flags symbols.DeclFlags
	switch f.Vis {
	case ast.VisPublic:
		flags |= symbols.FlagPublic
	case ast.VisInternal:
		flags |= symbols.FlagInternal
	default:
		flags |= symbols.FlagPrivate
	}
	if f.IsConst {
		flags |= symbols.FlagConstant
	}
	return flags
}

func methodSignature(ctx *symbols.Context, ns string, c *ast.Class, m *ast.Method) (*symbols.Signature, *Failure) {
	ret, ok := ctx.ResolveType(m.Return.Name)
	if !ok {
		return nil, failf(m, "unknown return type %q for method %s.%s", m.Return.Name, c.Name, m.Name)
	}
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		pt, ok := ctx.ResolveType(p.Type.Name)
		if !ok {
			return nil, failf(p, "unknown type %q for parameter %s", p.Type.Name, p.Name)
		}
		params = append(params, pt)
	}
	return &symbols.Signature{
		Class:    c.Name,
		Name:     m.Name,
		Params:   params,
		Return:   ret,
		IsStatic: m.IsStatic,
		Label:    MangleMethod(ns, c.Name, m.Name),
	}, nil
}
