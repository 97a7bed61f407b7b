package parser

import (
	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/token"
)

// parseBracedExpr disambiguates a '{' atom (spec.md §4.2.1). When
// isDo is true the brace was already confirmed to open a do-block by
// its caller and disambiguation is skipped entirely. Otherwise one
// brace-suppressed element is read and what follows it picks the
// shape: '=' a record literal, '|' a record update, '<-' a monadic
// bind, anything else a plain block.
func (p *Parser) parseBracedExpr(isDo bool) ast.Expression {
	braceTok := p.expect(token.LBRACE)

	if isDo {
		return p.parseBlockBody(braceTok, true)
	}

	if p.cur.Type == token.RBRACE {
		p.advance()
		return &ast.RecordLit{Token: braceTok}
	}

	if p.cur.Type == token.LET {
		first := p.parseLetStatementUnitBody()
		return p.parseBlockContinuation(braceTok, []ast.Expression{first}, false)
	}

	first := p.parseExpressionBraceSuppressed()

	switch {
	case p.cur.Type == token.ASSIGN:
		v, ok := first.(*ast.Var)
		if !ok {
			p.fatalf("expected a field name before '=' in a record literal")
		}
		return p.parseRecordLiteralBody(braceTok, v.Name)
	case p.cur.Type == token.PIPE:
		return p.parseRecordUpdateBody(braceTok, first)
	case p.cur.Type == token.LARROW:
		v, ok := first.(*ast.Var)
		if !ok {
			p.fatalf("expected a variable pattern before '<-' in a monadic bind")
		}
		return p.parseBindBody(braceTok, &ast.VarPat{Token: v.Token, Name: v.Name})
	default:
		return p.parseBlockContinuation(braceTok, []ast.Expression{first}, false)
	}
}

func (p *Parser) parseRecordLiteralBody(braceTok token.Token, firstName string) ast.Expression {
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	fields := []ast.RecordField{{Name: firstName, Value: value}}
	for p.cur.Type == token.COMMA {
		p.advance()
		name := p.expectIdentOrCon("record field name").Lexeme
		p.expect(token.ASSIGN)
		v := p.parseExpression()
		fields = append(fields, ast.RecordField{Name: name, Value: v})
	}
	p.expect(token.RBRACE)
	return &ast.RecordLit{Token: braceTok, Fields: fields}
}

func (p *Parser) parseRecordUpdateBody(braceTok token.Token, base ast.Expression) ast.Expression {
	p.expect(token.PIPE)
	var updates []ast.RecordField
	for {
		name := p.expectIdentOrCon("record field name").Lexeme
		p.expect(token.ASSIGN)
		v := p.parseExpression()
		updates = append(updates, ast.RecordField{Name: name, Value: v})
		if p.cur.Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return &ast.RecordUpdate{Token: braceTok, Base: base, Updates: updates}
}

func (p *Parser) parseBindBody(braceTok token.Token, pat ast.Pattern) ast.Expression {
	p.expect(token.LARROW)
	action := p.parseExpression()
	p.expect(token.SEMI)
	body := p.parseExpression()
	p.expect(token.RBRACE)
	return &ast.Bind{Token: braceTok, Pattern: pat, Action: action, Body: body}
}

// parseBlockBody parses the statements of a braced block whose opening
// '{' has already been consumed, handling the case where the very
// first token is '}' (an empty block) or 'let' (the unit-body form).
func (p *Parser) parseBlockBody(braceTok token.Token, isDo bool) ast.Expression {
	if p.cur.Type == token.RBRACE {
		p.advance()
		return &ast.Block{Token: braceTok, IsDo: isDo}
	}
	var first ast.Expression
	if p.cur.Type == token.LET {
		first = p.parseLetStatementUnitBody()
	} else {
		first = p.parseExpression()
	}
	return p.parseBlockContinuation(braceTok, []ast.Expression{first}, isDo)
}

// parseBlockContinuation consumes any further ';'-separated statements
// and the closing '}', given statements already collected.
func (p *Parser) parseBlockContinuation(braceTok token.Token, stmts []ast.Expression, isDo bool) ast.Expression {
	for p.cur.Type == token.SEMI {
		p.advance()
		if p.cur.Type == token.RBRACE {
			break
		}
		var stmt ast.Expression
		if p.cur.Type == token.LET {
			stmt = p.parseLetStatementUnitBody()
		} else {
			stmt = p.parseExpression()
		}
		stmts = append(stmts, stmt)
	}
	p.expect(token.RBRACE)
	return &ast.Block{Token: braceTok, Statements: stmts, IsDo: isDo}
}
