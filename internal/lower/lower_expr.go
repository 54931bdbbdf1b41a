package lower

import (
	"strconv"

	"cinder/internal/ast"
	"cinder/internal/symbols"
	"cinder/internal/token"
)

// binaryOps maps operator tokens to instruction mnemonics.
var binaryOps = map[token.Kind]string{
	token.Plus:    "add",
	token.Minus:   "sub",
	token.Star:    "mul",
	token.Slash:   "div",
	token.Percent: "mod",
	token.EqEq:    "ceq",
	token.BangEq:  "cne",
	token.Lt:      "clt",
	token.LtEq:    "cle",
	token.Gt:      "cgt",
	token.GtEq:    "cge",
	token.AndAnd:  "and",
	token.OrOr:    "or",
}

// boolResult reports whether the operator yields a SystemBoolean
// regardless of its operand types.
func boolResult(op token.Kind) bool {
	switch op {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr:
		return true
	}
	return false
}

// lowerExpr translates an expression into zero or more instructions and
// returns the operand holding its value plus the value's resolved type.
func (l *Lowerer) lowerExpr(e ast.Expr) (string, string, *Failure) {
	l.at(e)
	switch e := e.(type) {
	case *ast.IntLit:
		return e.Value, "SystemInt32", nil
	case *ast.FloatLit:
		return e.Value, "SystemSingle", nil
	case *ast.StringLit:
		return strconv.Quote(e.Value), "SystemString", nil
	case *ast.BoolLit:
		if e.Value {
			return "true", "SystemBoolean", nil
		}
		return "false", "SystemBoolean", nil
	case *ast.NullLit:
		return "null", "SystemObject", nil
	case *ast.Ident:
		def, ok := l.scope.Lookup(e.Name)
		if !ok {
			return "", "", failf(e, "unknown name %q", e.Name)
		}
		return l.use(def.UniqueName), def.TypeName, nil
	case *ast.This:
		return l.lowerThis(e)
	case *ast.Member:
		return l.lowerLoadMember(e)
	case *ast.Unary:
		return l.lowerUnary(e)
	case *ast.Binary:
		return l.lowerBinary(e)
	case *ast.Call:
		return l.lowerCall(e)
	case *ast.New:
		return l.lowerNew(e)
	default:
		return "", "", failf(e, "unsupported expression")
	}
}

func (l *Lowerer) lowerThis(e *ast.This) (string, string, *Failure) {
	if l.method != nil && l.method.IsStatic {
		return "", "", failf(e, "this is not available in a static method")
	}
	// The receiver symbol is minted on first use so classes whose
	// methods never name `this` stay out of the data block.
	scope := l.harvest.ClassScopes[l.class]
	def, ok := scope.Lookup("this")
	if !ok {
		def = scope.Declare("this", l.harvest.ClassTypes[l.class], symbols.FlagThis)
	}
	return l.use(def.UniqueName), def.TypeName, nil
}

// resolveMember finds the field symbol behind recv.name. The returned
// receiver operand is empty when the receiver is the current instance,
// in which case callers address the field storage directly.
func (l *Lowerer) resolveMember(m *ast.Member) (*symbols.Definition, string, *Failure) {
	if _, isThis := m.Recv.(*ast.This); isThis {
		if l.method != nil && l.method.IsStatic {
			return nil, "", failf(m, "this is not available in a static method")
		}
		scope := l.harvest.ClassScopes[l.class]
		def, ok := scope.Lookup(m.Name)
		if !ok {
			return nil, "", failf(m, "class %s has no field %q", l.class.Name, m.Name)
		}
		return def, "", nil
	}

	recv, recvType, fail := l.lowerExpr(m.Recv)
	if fail != nil {
		return nil, "", fail
	}
	l.at(m)
	class, ok := l.harvest.ClassByType[recvType]
	if !ok {
		return nil, "", failf(m, "type %s has no field %q", recvType, m.Name)
	}
	def, ok := l.harvest.ClassScopes[class].Lookup(m.Name)
	if !ok {
		return nil, "", failf(m, "class %s has no field %q", class.Name, m.Name)
	}
	return def, recv, nil
}

func (l *Lowerer) lowerLoadMember(e *ast.Member) (string, string, *Failure) {
	field, recv, fail := l.resolveMember(e)
	if fail != nil {
		return "", "", fail
	}
	if recv == "" {
		return l.use(field.UniqueName), field.TypeName, nil
	}
	dst := l.temp(field.TypeName)
	l.emit("ldfld %s, %s, %s", l.use(dst.UniqueName), recv, l.use(field.UniqueName))
	return dst.UniqueName, field.TypeName, nil
}

func (l *Lowerer) lowerUnary(e *ast.Unary) (string, string, *Failure) {
	operand, typeName, fail := l.lowerExpr(e.X)
	if fail != nil {
		return "", "", fail
	}
	l.at(e)

	var op string
	switch e.Op {
	case token.Minus:
		op = "neg"
	case token.Bang:
		op = "not"
		typeName = "SystemBoolean"
	default:
		return "", "", failf(e, "unsupported unary operator %q", e.Op.String())
	}
	dst := l.temp(typeName)
	l.emit("%s %s, %s", op, l.use(dst.UniqueName), operand)
	return dst.UniqueName, typeName, nil
}

func (l *Lowerer) lowerBinary(e *ast.Binary) (string, string, *Failure) {
	op, ok := binaryOps[e.Op]
	if !ok {
		return "", "", failf(e, "unsupported binary operator %q", e.Op.String())
	}

	left, leftType, fail := l.lowerExpr(e.X)
	if fail != nil {
		return "", "", fail
	}
	right, _, fail := l.lowerExpr(e.Y)
	if fail != nil {
		return "", "", fail
	}
	l.at(e)

	resultType := leftType
	if boolResult(e.Op) {
		resultType = "SystemBoolean"
	}
	dst := l.temp(resultType)
	l.emit("%s %s, %s, %s", op, l.use(dst.UniqueName), left, right)
	return dst.UniqueName, resultType, nil
}

func (l *Lowerer) lowerCall(e *ast.Call) (string, string, *Failure) {
	sig, recv, fail := l.resolveCallTarget(e)
	if fail != nil {
		return "", "", fail
	}
	_ = recv // instance identity is implicit: fields live in module storage

	if len(e.Args) != len(sig.Params) {
		return "", "", failf(e, "method %s.%s expects %d argument(s), got %d",
			sig.Class, sig.Name, len(sig.Params), len(e.Args))
	}

	args := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		operand, _, fail := l.lowerExpr(a)
		if fail != nil {
			return "", "", fail
		}
		args = append(args, operand)
	}
	l.at(e)
	l.labels.Reference(sig.Label)

	if sig.Return == "SystemVoid" {
		l.emit("call %s", joinOperands(sig.Label, args))
		return "", "SystemVoid", nil
	}
	dst := l.temp(sig.Return)
	l.emit("call %s, %s", l.use(dst.UniqueName), joinOperands(sig.Label, args))
	return dst.UniqueName, sig.Return, nil
}

// resolveCallTarget maps the call target expression to a harvested
// signature. Bare names and this.name resolve within the current class;
// qualified names resolve through the receiver's type, or through the
// class itself for static calls spelled ClassName.Method().
func (l *Lowerer) resolveCallTarget(e *ast.Call) (*symbols.Signature, string, *Failure) {
	switch t := e.Target.(type) {
	case *ast.Ident:
		sig, ok := l.harvest.Signatures.Lookup(l.class.Name, t.Name)
		if !ok {
			return nil, "", failf(e, "class %s has no method %q", l.class.Name, t.Name)
		}
		return sig, "", nil
	case *ast.Member:
		if _, isThis := t.Recv.(*ast.This); isThis {
			sig, ok := l.harvest.Signatures.Lookup(l.class.Name, t.Name)
			if !ok {
				return nil, "", failf(e, "class %s has no method %q", l.class.Name, t.Name)
			}
			return sig, "", nil
		}
		if id, isIdent := t.Recv.(*ast.Ident); isIdent {
			if _, bound := l.scope.Lookup(id.Name); !bound {
				// Not a value in scope: treat the receiver as a class
				// name for a static call.
				typeName, okType := l.ctx.ResolveType(id.Name)
				class, okClass := l.harvest.ClassByType[typeName]
				if !okType || !okClass {
					return nil, "", failf(id, "unknown name %q", id.Name)
				}
				sig, ok := l.harvest.Signatures.Lookup(class.Name, t.Name)
				if !ok || !sig.IsStatic {
					return nil, "", failf(e, "class %s has no static method %q", class.Name, t.Name)
				}
				return sig, "", nil
			}
		}
		recv, recvType, fail := l.lowerExpr(t.Recv)
		if fail != nil {
			return nil, "", fail
		}
		class, ok := l.harvest.ClassByType[recvType]
		if !ok {
			return nil, "", failf(t, "type %s has no method %q", recvType, t.Name)
		}
		sig, ok := l.harvest.Signatures.Lookup(class.Name, t.Name)
		if !ok {
			return nil, "", failf(t, "class %s has no method %q", class.Name, t.Name)
		}
		return sig, recv, nil
	default:
		return nil, "", failf(e, "expression is not callable")
	}
}

func (l *Lowerer) lowerNew(e *ast.New) (string, string, *Failure) {
	typeName, ok := l.ctx.ResolveType(e.Type.Name)
	if !ok || !l.ctx.IsClass(typeName) {
		return "", "", failf(e, "unknown class %q", e.Type.Name)
	}
	dst := l.temp(typeName)
	l.emit("new %s, %%%s", l.use(dst.UniqueName), typeName)
	return dst.UniqueName, typeName, nil
}

func joinOperands(label string, args []string) string {
	out := label
	for _, a := range args {
		out += ", " + a
	}
	return out
}
