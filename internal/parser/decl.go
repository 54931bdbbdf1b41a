package parser

import (
	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/token"
)

func (p *Parser) parseUnit() *ast.Unit {
	unit := &ast.Unit{FileID: p.file.ID}
	start := p.lx.Peek().Span

	for p.at(token.KwUsing) {
		if u := p.parseUsing(); u != nil {
			unit.Usings = append(unit.Usings, u)
		}
	}

	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwNamespace:
			ns := p.parseNamespace()
			if ns == nil {
				continue
			}
			if unit.Namespace != nil {
				p.report(diag.SynUnexpectedToken, ns.Sp, "only one namespace per file is supported")
				continue
			}
			unit.Namespace = ns
		case token.KwClass:
			if c := p.parseClass(); c != nil {
				unit.Classes = append(unit.Classes, c)
			}
		default:
			p.err(diag.SynUnexpectedToken, "expected namespace or class declaration")
			p.advance()
			p.syncTo(token.KwNamespace, token.KwClass, token.KwUsing)
		}
	}

	unit.Sp = start.Cover(p.lastSpan)
	return unit
}

func (p *Parser) parseUsing() *ast.Using {
	kw := p.advance() // 'using'
	name, ok := p.parseQualifiedName()
	if !ok {
		p.syncTo(token.Semicolon, token.KwUsing, token.KwNamespace, token.KwClass)
		p.eatSemi()
		return nil
	}
	sp := kw.Span.Cover(p.lastSpan)
	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after using directive"); ok {
		sp = sp.Cover(semi.Span)
	}
	return &ast.Using{Name: name, Sp: sp}
}

func (p *Parser) parseNamespace() *ast.Namespace {
	kw := p.advance() // 'namespace'
	name, ok := p.parseQualifiedName()
	if !ok {
		p.syncTo(token.LBrace, token.KwClass)
		name = ""
	}
	ns := &ast.Namespace{Name: name}
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after namespace name"); !ok {
		p.syncTo(token.KwClass)
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.KwClass) {
			if c := p.parseClass(); c != nil {
				ns.Classes = append(ns.Classes, c)
			}
			continue
		}
		p.err(diag.SynUnexpectedToken, "expected class declaration inside namespace")
		p.advance()
		p.syncTo(token.KwClass, token.RBrace)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close namespace")
	ns.Sp = kw.Span.Cover(p.lastSpan)
	return ns
}

// parseQualifiedName parses Ident ('.' Ident)* into a dotted string.
func (p *Parser) parseQualifiedName() (string, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected identifier")
	if !ok {
		return "", false
	}
	name := first.Text
	for p.at(token.Dot) {
		p.advance()
		part, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected identifier after '.'")
		if !ok {
			return name, false
		}
		name += "." + part.Text
	}
	return name, true
}

func (p *Parser) parseClass() *ast.Class {
	kw := p.advance() // 'class'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected class name")
	if !ok {
		p.syncTo(token.LBrace, token.KwClass)
	}
	c := &ast.Class{Name: nameTok.Text, NameSpan: nameTok.Span}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after class name"); !ok {
		p.syncTo(token.KwClass)
		c.Sp = kw.Span.Cover(p.lastSpan)
		return c
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.parseMember(c)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close class")
	c.Sp = kw.Span.Cover(p.lastSpan)
	return c
}

// parseMember parses one field or method and appends it to c.
func (p *Parser) parseMember(c *ast.Class) {
	start := p.lx.Peek().Span

	vis := ast.VisPrivate
	isStatic := false
	isConst := false
	for p.lx.Peek().IsModifier() {
		switch p.advance().Kind {
		case token.KwPublic:
			vis = ast.VisPublic
		case token.KwPrivate:
			vis = ast.VisPrivate
		case token.KwInternal:
			vis = ast.VisInternal
		case token.KwStatic:
			isStatic = true
		case token.KwConst:
			isConst = true
		}
	}

	typ, ok := p.parseTypeRef()
	if !ok {
		p.syncMember()
		return
	}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected member name")
	if !ok {
		p.syncMember()
		return
	}

	if p.at(token.LParen) {
		if isConst {
			p.report(diag.SynBadModifier, nameTok.Span, "methods cannot be const")
		}
		m := p.parseMethodRest(vis, isStatic, typ, nameTok)
		if m != nil {
			m.Sp = start.Cover(p.lastSpan)
			c.Methods = append(c.Methods, m)
		}
		return
	}

	f := &ast.Field{
		Vis:      vis,
		IsConst:  isConst,
		Type:     typ,
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
	}
	if isStatic {
		p.report(diag.SynBadModifier, nameTok.Span, "fields cannot be static")
	}
	if p.at(token.Assign) {
		p.advance()
		init, ok := p.parseExpr()
		if !ok {
			p.syncMember()
			return
		}
		f.Init = init
	}
	if isConst && f.Init == nil {
		p.report(diag.SynConstInitializer, nameTok.Span, "const field requires an initializer")
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after field declaration")
	f.Sp = start.Cover(p.lastSpan)
	c.Fields = append(c.Fields, f)
}

func (p *Parser) parseMethodRest(vis ast.Visibility, isStatic bool, ret ast.TypeRef, name token.Token) *ast.Method {
	m := &ast.Method{
		Vis:      vis,
		IsStatic: isStatic,
		Return:   ret,
		Name:     name.Text,
		NameSpan: name.Span,
	}
	p.advance() // '('
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if len(m.Params) > 0 {
			if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' between parameters"); !ok {
				p.syncTo(token.RParen, token.LBrace)
				break
			}
		}
		pStart := p.lx.Peek().Span
		typ, ok := p.parseTypeRef()
		if !ok {
			p.syncTo(token.Comma, token.RParen, token.LBrace)
			continue
		}
		pname, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected parameter name")
		if !ok {
			p.syncTo(token.Comma, token.RParen, token.LBrace)
			continue
		}
		m.Params = append(m.Params, &ast.Param{
			Type: typ,
			Name: pname.Text,
			Sp:   pStart.Cover(pname.Span),
		})
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameter list")

	body, ok := p.parseBlock()
	if !ok {
		return nil
	}
	m.Body = body
	return m
}

// parseTypeRef accepts a built-in type keyword or a class identifier.
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	peek := p.lx.Peek()
	if peek.IsTypeKeyword() || peek.Kind == token.Ident {
		tok := p.advance()
		return ast.TypeRef{Name: tok.Text, Sp: tok.Span}, true
	}
	p.err(diag.SynExpectType, "expected type name")
	return ast.TypeRef{}, false
}

func (p *Parser) eatSemi() {
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// syncMember resynchronizes after a malformed member declaration.
func (p *Parser) syncMember() {
	p.syncTo(token.Semicolon, token.RBrace, token.KwPublic, token.KwPrivate, token.KwInternal, token.KwClass)
	p.eatSemi()
}
