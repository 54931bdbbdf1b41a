package parser

import (
	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/source"
	"cinder/internal/token"
)

func (p *Parser) parseBlock() (*ast.Block, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	if !ok {
		return nil, false
	}
	block := &ast.Block{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.syncTo(token.Semicolon, token.RBrace)
			p.eatSemi()
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	block.Sp = open.Span.Cover(p.lastSpan)
	return block, true
}

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	peek := p.lx.Peek()
	switch {
	case peek.Kind == token.LBrace:
		return p.parseBlock()
	case peek.Kind == token.KwIf:
		return p.parseIf()
	case peek.Kind == token.KwWhile:
		return p.parseWhile()
	case peek.Kind == token.KwReturn:
		return p.parseReturn()
	case peek.IsTypeKeyword():
		return p.parseLocalDecl()
	case peek.Kind == token.Ident, peek.Kind == token.KwThis:
		return p.parseSimpleStmt()
	default:
		p.err(diag.SynUnexpectedToken, "expected statement")
		return nil, false
	}
}

func (p *Parser) parseIf() (ast.Stmt, bool) {
	kw := p.advance() // 'if'
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after if"); !ok {
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition"); !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := &ast.If{Cond: cond, Then: then}
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			elseIf, ok := p.parseIf()
			if !ok {
				return nil, false
			}
			stmt.Else = elseIf
		} else {
			elseBlock, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			stmt.Else = elseBlock
		}
	}
	stmt.Sp = kw.Span.Cover(p.lastSpan)
	return stmt, true
}

func (p *Parser) parseWhile() (ast.Stmt, bool) {
	kw := p.advance() // 'while'
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after while"); !ok {
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition"); !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.While{Cond: cond, Body: body, Sp: kw.Span.Cover(p.lastSpan)}, true
}

func (p *Parser) parseReturn() (ast.Stmt, bool) {
	kw := p.advance() // 'return'
	stmt := &ast.Return{}
	if !p.at(token.Semicolon) {
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Value = value
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return"); !ok {
		return nil, false
	}
	stmt.Sp = kw.Span.Cover(p.lastSpan)
	return stmt, true
}

// parseLocalDecl parses '<builtin-type> name [= init];'. Class-typed locals
// start with an identifier and are disambiguated in parseSimpleStmt.
func (p *Parser) parseLocalDecl() (ast.Stmt, bool) {
	typTok := p.advance()
	return p.parseLocalDeclRest(ast.TypeRef{Name: typTok.Text, Sp: typTok.Span})
}

func (p *Parser) parseLocalDeclRest(typ ast.TypeRef) (ast.Stmt, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected variable name")
	if !ok {
		return nil, false
	}
	stmt := &ast.LocalDecl{Type: typ, Name: nameTok.Text}
	if p.at(token.Assign) {
		p.advance()
		init, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Init = init
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration"); !ok {
		return nil, false
	}
	stmt.Sp = typ.Sp.Cover(p.lastSpan)
	return stmt, true
}

// parseSimpleStmt handles statements that start with an identifier or
// 'this': a class-typed local declaration, an assignment, or a call.
func (p *Parser) parseSimpleStmt() (ast.Stmt, bool) {
	start := p.lx.Peek().Span

	// Two consecutive identifiers ('Type name ...') is a declaration.
	if p.at(token.Ident) {
		identTok := p.advance()
		if p.at(token.Ident) {
			return p.parseLocalDeclRest(ast.TypeRef{Name: identTok.Text, Sp: identTok.Span})
		}
		return p.parseAssignOrCall(&ast.Ident{Name: identTok.Text, Sp: identTok.Span}, start)
	}

	thisTok := p.advance() // 'this'
	return p.parseAssignOrCall(&ast.This{Sp: thisTok.Span}, start)
}

func (p *Parser) parseAssignOrCall(prim ast.Expr, start source.Span) (ast.Stmt, bool) {
	target, ok := p.parsePostfix(prim)
	if !ok {
		return nil, false
	}

	if p.at(token.Assign) {
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after assignment"); !ok {
			return nil, false
		}
		return &ast.Assign{Target: target, Value: value, Sp: start.Cover(p.lastSpan)}, true
	}

	if _, isCall := target.(*ast.Call); !isCall {
		p.err(diag.SynUnexpectedToken, "expected '=' or call")
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after call"); !ok {
		return nil, false
	}
	return &ast.ExprStmt{X: target, Sp: start.Cover(p.lastSpan)}, true
}
