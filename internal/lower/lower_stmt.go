package lower

import (
	"cinder/internal/ast"
	"cinder/internal/symbols"
)

func (l *Lowerer) lowerBlock(b *ast.Block) *Failure {
	outer := l.scope
	l.scope = outer.Child()
	defer func() { l.scope = outer }()

	for _, s := range b.Stmts {
		if fail := l.lowerStmt(s); fail != nil {
			return fail
		}
	}
	return nil
}

func (l *Lowerer) lowerStmt(s ast.Stmt) *Failure {
	l.at(s)
	switch s := s.(type) {
	case *ast.Block:
		return l.lowerBlock(s)
	case *ast.LocalDecl:
		return l.lowerLocalDecl(s)
	case *ast.Assign:
		return l.lowerAssign(s)
	case *ast.If:
		return l.lowerIf(s)
	case *ast.While:
		return l.lowerWhile(s)
	case *ast.Return:
		return l.lowerReturn(s)
	case *ast.ExprStmt:
		_, _, fail := l.lowerExpr(s.X)
		return fail
	default:
		return failf(s, "unsupported statement")
	}
}

func (l *Lowerer) lowerLocalDecl(s *ast.LocalDecl) *Failure {
	typeName, ok := l.ctx.ResolveType(s.Type.Name)
	if !ok {
		return failf(s, "unknown type %q", s.Type.Name)
	}
	def := l.scope.Declare(s.Name, typeName, 0)
	if s.Init != nil {
		operand, _, fail := l.lowerExpr(s.Init)
		if fail != nil {
			return fail
		}
		l.emit("mov %s, %s", l.use(def.UniqueName), operand)
	}
	return nil
}

func (l *Lowerer) lowerAssign(s *ast.Assign) *Failure {
	value, _, fail := l.lowerExpr(s.Value)
	if fail != nil {
		return fail
	}
	l.at(s)

	switch target := s.Target.(type) {
	case *ast.Ident:
		def, ok := l.scope.Lookup(target.Name)
		if !ok {
			return failf(target, "unknown name %q", target.Name)
		}
		if def.Is(symbols.FlagConstant) {
			return failf(target, "cannot assign to constant %q", target.Name)
		}
		l.emit("mov %s, %s", l.use(def.UniqueName), value)
		return nil
	case *ast.Member:
		return l.lowerStoreMember(target, value)
	default:
		return failf(s.Target, "expression is not assignable")
	}
}

func (l *Lowerer) lowerStoreMember(target *ast.Member, value string) *Failure {
	field, recv, fail := l.resolveMember(target)
	if fail != nil {
		return fail
	}
	if field.Is(symbols.FlagConstant) {
		return failf(target, "cannot assign to constant field %q", target.Name)
	}
	if recv == "" {
		// Receiver is `this`: fields are module storage, store directly.
		l.emit("mov %s, %s", l.use(field.UniqueName), value)
		return nil
	}
	l.emit("stfld %s, %s, %s", recv, l.use(field.UniqueName), value)
	return nil
}

func (l *Lowerer) lowerIf(s *ast.If) *Failure {
	cond, _, fail := l.lowerExpr(s.Cond)
	if fail != nil {
		return fail
	}

	elseLabel := l.labels.New("if_else")
	endLabel := l.labels.New("if_end")

	target := endLabel
	if s.Else != nil {
		target = elseLabel
	}
	l.jumpFalse(cond, target)

	if fail := l.lowerBlock(s.Then); fail != nil {
		return fail
	}

	if s.Else != nil {
		l.jump(endLabel)
		l.defineLabel(elseLabel)
		if fail := l.lowerStmt(s.Else); fail != nil {
			return fail
		}
	}

	l.defineLabel(endLabel)
	return nil
}

func (l *Lowerer) lowerWhile(s *ast.While) *Failure {
	head := l.labels.New("while_head")
	end := l.labels.New("while_end")

	l.defineLabel(head)

	cond, _, fail := l.lowerExpr(s.Cond)
	if fail != nil {
		return fail
	}
	l.jumpFalse(cond, end)

	if fail := l.lowerBlock(s.Body); fail != nil {
		return fail
	}
	l.jump(head)

	l.defineLabel(end)
	return nil
}

func (l *Lowerer) lowerReturn(s *ast.Return) *Failure {
	if s.Value == nil {
		l.emit("ret")
		return nil
	}
	operand, _, fail := l.lowerExpr(s.Value)
	if fail != nil {
		return fail
	}
	l.emit("ret %s", operand)
	return nil
}
