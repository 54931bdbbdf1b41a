// Package parser builds the syntax tree for one Cinder source file.
// Parse errors are reported through diag.Reporter and recovery synchronizes
// to the next declaration or statement boundary, so one bad construct does
// not hide the rest of the file's diagnostics.
package parser

import (
	"cinder/internal/ast"
	"cinder/internal/diag"
	"cinder/internal/lexer"
	"cinder/internal/source"
	"cinder/internal/token"
)

// Options tune a single parse.
type Options struct {
	MaxErrors uint // 0 means unlimited
	Reporter  diag.Reporter
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	errors   uint
	lastSpan source.Span
}

// ParseUnit is the entry point for one source file. Syntax diagnostics go
// to opts.Reporter; the returned unit is always non-nil, possibly partial.
func ParseUnit(file *source.File, opts Options) *ast.Unit {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	p := &Parser{
		lx:   lexer.New(file, opts.Reporter),
		file: file,
		opts: opts,
	}
	return p.parseUnit()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the best span for a diagnostic at the current position.
// At EOF the position right after the last consumed token reads better
// than an empty span at offset zero.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports and returns ok=false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.errors++
	if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}

// syncTo skips tokens until one of the given kinds (or EOF). The matching
// token is left for the caller.
func (p *Parser) syncTo(kinds ...token.Kind) {
	for {
		peek := p.lx.Peek()
		if peek.Kind == token.EOF {
			return
		}
		for _, k := range kinds {
			if peek.Kind == k {
				return
			}
		}
		p.advance()
	}
}
