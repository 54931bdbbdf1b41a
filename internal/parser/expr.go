package parser

import (
	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/token"
)

// Binding powers, loosest first. Unary binds tighter than any binary op.
var binaryPrec = map[token.Kind]int{
	token.OrOr:    1,
	token.AndAnd:  2,
	token.EqEq:    3,
	token.BangEq:  3,
	token.Lt:      4,
	token.LtEq:    4,
	token.Gt:      4,
	token.GtEq:    4,
	token.Plus:    5,
	token.Minus:   5,
	token.Star:    6,
	token.Slash:   6,
	token.Percent: 6,
}

func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		op := p.lx.Peek().Kind
		prec, isOp := binaryPrec[op]
		if !isOp || prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.Binary{
			Op: op,
			X:  left,
			Y:  right,
			Sp: left.Span().Cover(right.Span()),
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	peek := p.lx.Peek()
	if peek.Kind == token.Minus || peek.Kind == token.Bang {
		opTok := p.advance()
		x, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Unary{Op: opTok.Kind, X: x, Sp: opTok.Span.Cover(x.Span())}, true
	}
	prim, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	return p.parsePostfix(prim)
}

// parsePostfix applies member accesses and call argument lists to prim.
func (p *Parser) parsePostfix(prim ast.Expr) (ast.Expr, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected member name after '.'")
			if !ok {
				return nil, false
			}
			prim = &ast.Member{Recv: prim, Name: name.Text, Sp: prim.Span().Cover(name.Span)}
		case token.LParen:
			args, ok := p.parseArgs()
			if !ok {
				return nil, false
			}
			prim = &ast.Call{Target: prim, Args: args, Sp: prim.Span().Cover(p.lastSpan)}
		default:
			return prim, true
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expr, bool) {
	p.advance() // '('
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if len(args) > 0 {
			if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' between arguments"); !ok {
				return nil, false
			}
		}
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments"); !ok {
		return nil, false
	}
	return args, true
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	peek := p.lx.Peek()
	switch peek.Kind {
	case token.IntLit:
		tok := p.advance()
		return &ast.IntLit{Value: tok.Text, Sp: tok.Span}, true
	case token.FloatLit:
		tok := p.advance()
		return &ast.FloatLit{Value: tok.Text, Sp: tok.Span}, true
	case token.StringLit:
		tok := p.advance()
		return &ast.StringLit{Value: tok.Text, Sp: tok.Span}, true
	case token.KwTrue:
		tok := p.advance()
		return &ast.BoolLit{Value: true, Sp: tok.Span}, true
	case token.KwFalse:
		tok := p.advance()
		return &ast.BoolLit{Value: false, Sp: tok.Span}, true
	case token.KwNull:
		tok := p.advance()
		return &ast.NullLit{Sp: tok.Span}, true
	case token.KwThis:
		tok := p.advance()
		return &ast.This{Sp: tok.Span}, true
	case token.Ident:
		tok := p.advance()
		return &ast.Ident{Name: tok.Text, Sp: tok.Span}, true
	case token.KwNew:
		kw := p.advance()
		typ, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after new type"); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' (constructor arguments are not supported)"); !ok {
			return nil, false
		}
		return &ast.New{Type: typ, Sp: kw.Span.Cover(p.lastSpan)}, true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return nil, false
		}
		return inner, true
	default:
		p.err(diag.SynUnexpectedToken, "expected expression")
		return nil, false
	}
}
