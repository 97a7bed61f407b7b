package parser

import (
	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/token"
)

// parseType parses a type expression: an optional leading quantifier,
// then a right-associative chain of arrows (spec.md §4.2.3).
func (p *Parser) parseType() ast.TypeExpr {
	switch p.cur.Type {
	case token.FORALL:
		tok := p.cur
		p.advance()
		vars := p.readQuantifierVars()
		return &ast.Forall{Token: tok, Vars: vars, Body: p.parseType()}
	case token.EXISTS:
		tok := p.cur
		p.advance()
		vars := p.readQuantifierVars()
		return &ast.Exists{Token: tok, Vars: vars, Body: p.parseType()}
	}
	return p.parseFunctionType()
}

func (p *Parser) readQuantifierVars() []string {
	var vars []string
	for p.cur.Type == token.IDENT {
		vars = append(vars, p.cur.Lexeme)
		p.advance()
	}
	p.expect(token.DOT)
	return vars
}

func (p *Parser) parseFunctionType() ast.TypeExpr {
	left := p.parseTypeApp()
	if p.cur.Type == token.ARROW {
		tok := p.cur
		p.advance()
		right := p.parseFunctionType()
		return &ast.TypeArrow{Token: tok, From: left, To: right}
	}
	return left
}

func (p *Parser) parseTypeApp() ast.TypeExpr {
	head := p.parseTypeAtom()
	if tc, ok := head.(*ast.TypeCon); ok {
		for p.canStartTypeAtom() {
			tc.Args = append(tc.Args, p.parseTypeAtom())
		}
		return tc
	}
	for p.canStartTypeAtom() {
		tok := p.cur
		arg := p.parseTypeAtom()
		head = &ast.TypeApp{Token: tok, Fn: head, Arg: arg}
	}
	return head
}

func (p *Parser) canStartTypeAtom() bool {
	switch p.cur.Type {
	case token.CONSTRUCTOR, token.IDENT, token.LPAREN, token.LBRACKET:
		return true
	}
	return false
}

func (p *Parser) parseTypeAtom() ast.TypeExpr {
	tok := p.cur
	switch tok.Type {
	case token.CONSTRUCTOR:
		p.advance()
		return &ast.TypeCon{Token: tok, Name: tok.Lexeme}
	case token.IDENT:
		p.advance()
		return &ast.TypeVar{Token: tok, Name: tok.Lexeme}
	case token.LPAREN:
		p.advance()
		inner := p.parseType()
		p.expect(token.RPAREN)
		return inner
	case token.LBRACKET:
		p.advance()
		elem := p.parseType()
		p.expect(token.RBRACKET)
		return &ast.TypeCon{Token: tok, Name: "List", Args: []ast.TypeExpr{elem}}
	}
	p.fatalf("unexpected token in type: %q", tok.Lexeme)
	return nil
}
