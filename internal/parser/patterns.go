package parser

import (
	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/token"
)

// parsePattern parses a full pattern, including the infix cons
// operator `p : q` (or `p :: q`), which binds right-associatively
// (spec.md §4.2.2).
func (p *Parser) parsePattern() ast.Pattern {
	left := p.parsePrimaryPattern()
	if p.cur.Type == token.COLON || p.cur.Type == token.CONS {
		tok := p.cur
		p.advance()
		right := p.parsePattern()
		return &ast.ConsPat{Token: tok, Constructor: "::", Args: []ast.Pattern{left, right}}
	}
	return left
}

// canStartPrimaryPattern reports whether the current token can begin
// a primary pattern; used both to terminate parameter lists and to
// drive the application-like constructor-argument loop.
func (p *Parser) canStartPrimaryPattern() bool {
	switch p.cur.Type {
	case token.IDENT, token.CONSTRUCTOR, token.INT, token.FLOAT, token.BIG_INT,
		token.STRING, token.CHAR, token.TRUE, token.FALSE,
		token.LPAREN, token.LBRACKET, token.LBRACE, token.CONS:
		return true
	case token.MINUS:
		return isNumericType(p.peek().Type)
	}
	return false
}

func isNumericType(t token.Type) bool {
	return t == token.INT || t == token.FLOAT || t == token.BIG_INT
}

// parsePrimaryPattern parses one non-cons pattern (spec.md §4.2.2):
// wildcard, variable, literal, constructor application, parenthesized
// pattern, list pattern, record pattern, or a prefix `::` application.
func (p *Parser) parsePrimaryPattern() ast.Pattern {
	tok := p.cur

	if tok.Type == token.MINUS && isNumericType(p.peek().Type) {
		p.advance()
		return &ast.LitPat{Token: tok, Value: p.parseNegatedLiteral(tok)}
	}

	switch tok.Type {
	case token.IDENT:
		p.advance()
		if tok.Lexeme == "_" {
			return &ast.WildcardPat{Token: tok}
		}
		return &ast.VarPat{Token: tok, Name: tok.Lexeme}
	case token.INT, token.FLOAT, token.BIG_INT, token.STRING, token.CHAR, token.TRUE, token.FALSE:
		lit := p.parseAtomLiteral()
		return &ast.LitPat{Token: tok, Value: lit}
	case token.CONSTRUCTOR:
		p.advance()
		var args []ast.Pattern
		for p.canStartPrimaryPattern() {
			args = append(args, p.parsePrimaryPattern())
		}
		return &ast.ConsPat{Token: tok, Constructor: tok.Lexeme, Args: args}
	case token.CONS:
		p.advance()
		head := p.parsePrimaryPattern()
		tail := p.parsePrimaryPattern()
		return &ast.ConsPat{Token: tok, Constructor: "::", Args: []ast.Pattern{head, tail}}
	case token.LPAREN:
		p.advance()
		inner := p.parsePattern()
		p.expect(token.RPAREN)
		return inner
	case token.LBRACKET:
		p.advance()
		if p.cur.Type == token.RBRACKET {
			p.advance()
			return &ast.ListPat{Token: tok}
		}
		elems := []ast.Pattern{p.parsePattern()}
		for p.cur.Type == token.COMMA {
			p.advance()
			elems = append(elems, p.parsePattern())
		}
		p.expect(token.RBRACKET)
		return &ast.ListPat{Token: tok, Elements: elems}
	case token.LBRACE:
		p.advance()
		if p.cur.Type == token.RBRACE {
			p.advance()
			return &ast.RecordPat{Token: tok}
		}
		fields := []ast.RecordFieldPat{p.parseRecordFieldPat()}
		for p.cur.Type == token.COMMA {
			p.advance()
			fields = append(fields, p.parseRecordFieldPat())
		}
		p.expect(token.RBRACE)
		return &ast.RecordPat{Token: tok, Fields: fields}
	}

	p.fatalf("unexpected token in pattern: %q", tok.Lexeme)
	return nil
}

func (p *Parser) parseRecordFieldPat() ast.RecordFieldPat {
	name := p.expectName(token.IDENT, "record field name").Lexeme
	p.expect(token.ASSIGN)
	return ast.RecordFieldPat{Name: name, Pattern: p.parsePattern()}
}
