package parser

import (
	"math/big"

	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/token"
)

// parseExpression is the expression entry point (spec.md §4.2): `let`,
// `match`, `if`, `\`, and `do` each dispatch to a specialized parser;
// anything else falls through to the binary-operator level.
func (p *Parser) parseExpression() ast.Expression {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetExpr()
	case token.MATCH:
		return p.parseMatchExpr()
	case token.IF:
		return p.parseIfExpr()
	case token.BACKSLSH:
		return p.parseLambdaExpr()
	case token.DO:
		return p.parseDoExpr()
	default:
		return p.parseBinOpExpr()
	}
}

// parseExpressionBraceSuppressed parses an expression with '{' masked
// out of the application-continuation token set, so the brace opening
// a match's arm list or an if's branch isn't mistaken for a function
// argument (spec.md §4.2.1).
func (p *Parser) parseExpressionBraceSuppressed() ast.Expression {
	save := p.noBraceArg
	p.noBraceArg = true
	e := p.parseExpression()
	p.noBraceArg = save
	return e
}

// parseBinOpExpr implements spec.md §9's deliberately precedence-free
// binary operator grammar: an AppExpr, optionally followed by an
// operator and another full binary-operator expression, right-leaning
// by construction (`x * y + 5` parses as `x * (y + 5)`).
func (p *Parser) parseBinOpExpr() ast.Expression {
	left := p.parseAppExpr()
	if token.BinaryOperators[string(p.cur.Type)] {
		tok := p.cur
		op := tok.Lexeme
		p.advance()
		right := p.parseBinOpExpr()
		return &ast.BinOp{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

// parseAppExpr parses an application head, eagerly resolving any
// `.field` chain on it, then left-folds further atoms as arguments
// (spec.md §4.2: "f a b" is App(App(f, a), b)).
func (p *Parser) parseAppExpr() ast.Expression {
	head := p.parseAtom()
	for p.cur.Type == token.DOT {
		dotTok := p.cur
		p.advance()
		field := p.expectIdentOrCon("record field name")
		head = &ast.RecordAccess{Token: dotTok, Record: head, Field: field.Lexeme}
	}
	for p.canStartAtom() {
		arg := p.parseAtom()
		head = &ast.App{Token: head.GetToken(), Fn: head, Arg: arg}
	}
	return head
}

func (p *Parser) canStartAtom() bool {
	switch p.cur.Type {
	case token.INT, token.FLOAT, token.BIG_INT, token.STRING, token.CHAR,
		token.TRUE, token.FALSE, token.IDENT, token.CONSTRUCTOR,
		token.LPAREN, token.LBRACKET, token.BANG:
		return true
	case token.LBRACE:
		return !p.noBraceArg
	}
	return false
}

// parseAtom parses one atomic expression (spec.md §4.2): a possibly
// signed literal, a variable/constructor reference, a parenthesized
// expression, a list literal, a disambiguated braced expression, or a
// strict-force prefix.
func (p *Parser) parseAtom() ast.Expression {
	tok := p.cur

	if tok.Type == token.MINUS && isNumericType(p.peek().Type) {
		p.advance()
		return p.parseNegatedLiteral(tok)
	}

	switch tok.Type {
	case token.INT, token.FLOAT, token.BIG_INT, token.STRING, token.CHAR, token.TRUE, token.FALSE:
		return p.parseAtomLiteral()
	case token.IDENT, token.CONSTRUCTOR:
		p.advance()
		return &ast.Var{Token: tok, Name: tok.Lexeme}
	case token.LPAREN:
		p.advance()
		e := p.parseExpression()
		p.expect(token.RPAREN)
		return e
	case token.LBRACKET:
		return p.parseListLit()
	case token.LBRACE:
		return p.parseBracedExpr(false)
	case token.BANG:
		p.advance()
		operand := p.parseAtom()
		return &ast.Strict{Token: tok, Operand: operand}
	}

	p.fatalf("unexpected token: %q", tok.Lexeme)
	return nil
}

// parseAtomLiteral consumes the current literal token and returns its
// expression node. Character literals fold into one-character string
// literals (spec.md §3 carries no separate char expression variant).
func (p *Parser) parseAtomLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	switch tok.Type {
	case token.INT:
		return &ast.IntLit{Token: tok, Value: tok.Literal.(int64)}
	case token.FLOAT:
		return &ast.FloatLit{Token: tok, Value: tok.Literal.(float64)}
	case token.BIG_INT:
		return &ast.BigIntLit{Token: tok, Value: tok.Literal.(*big.Int)}
	case token.STRING:
		return &ast.StringLit{Token: tok, Value: tok.Literal.(string)}
	case token.CHAR:
		return &ast.StringLit{Token: tok, Value: tok.Literal.(string)}
	case token.TRUE:
		return &ast.BoolLit{Token: tok, Value: true}
	case token.FALSE:
		return &ast.BoolLit{Token: tok, Value: false}
	}
	p.fatalf("unreachable literal token %q", tok.Lexeme)
	return nil
}

// parseNegatedLiteral folds a leading '-' immediately followed by a
// numeric literal token into that literal's negation (spec.md §4.2).
// signTok is the already-consumed '-' token; the lexer's current token
// is the numeric literal itself.
func (p *Parser) parseNegatedLiteral(signTok token.Token) ast.Expression {
	tok := p.cur
	lit := p.parseAtomLiteral()
	switch v := lit.(type) {
	case *ast.IntLit:
		return &ast.IntLit{Token: signTok, Value: -v.Value}
	case *ast.FloatLit:
		return &ast.FloatLit{Token: signTok, Value: -v.Value}
	case *ast.BigIntLit:
		neg := new(big.Int).Neg(v.Value)
		return &ast.BigIntLit{Token: signTok, Value: neg}
	}
	p.fatalf("unreachable: non-numeric literal after '-' at %q", tok.Lexeme)
	return nil
}

func (p *Parser) parseListLit() ast.Expression {
	tok := p.expect(token.LBRACKET)
	if p.cur.Type == token.RBRACKET {
		p.advance()
		return &ast.ListLit{Token: tok}
	}
	elems := []ast.Expression{p.parseExpression()}
	for p.cur.Type == token.COMMA {
		p.advance()
		elems = append(elems, p.parseExpression())
	}
	p.expect(token.RBRACKET)
	return &ast.ListLit{Token: tok, Elements: elems}
}

// parseLetExpr parses `let pattern = value [; | in] body`, defaulting
// Body to `true` when neither separator follows Value (spec.md §4.2).
func (p *Parser) parseLetExpr() ast.Expression {
	tok := p.expect(token.LET)
	pat := p.parsePattern()
	p.expect(token.ASSIGN)
	value := p.parseExpression()

	var body ast.Expression
	switch p.cur.Type {
	case token.SEMI:
		p.advance()
		body = p.parseExpression()
	case token.IN:
		p.advance()
		body = p.parseExpression()
	default:
		body = &ast.BoolLit{Token: tok, Value: true}
	}
	return &ast.Let{Token: tok, Pattern: pat, Value: value, Body: body}
}

// parseLetStatementUnitBody parses a let-statement inside a block in
// its unit-body form: the value is parsed, Body is always `true`, and
// neither `;` nor `in` is consumed here — the enclosing block's own
// ';'-separated statement loop owns that separator (spec.md §4.2.1).
func (p *Parser) parseLetStatementUnitBody() ast.Expression {
	tok := p.expect(token.LET)
	pat := p.parsePattern()
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	return &ast.Let{Token: tok, Pattern: pat, Value: value, Body: &ast.BoolLit{Token: tok, Value: true}}
}

func (p *Parser) parseMatchExpr() ast.Expression {
	tok := p.expect(token.MATCH)
	scrutinee := p.parseExpressionBraceSuppressed()
	p.expect(token.LBRACE)
	var arms []ast.MatchArm
	for {
		pat := p.parsePattern()
		p.expect(token.IMPLY)
		body := p.parseExpression()
		arms = append(arms, ast.MatchArm{Pattern: pat, Body: body})
		if p.cur.Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return &ast.Match{Token: tok, Scrutinee: scrutinee, Arms: arms}
}

// parseIfExpr supports both surface forms: `if c then a else b` and
// `if c { a } else { b }` (spec.md §4.2).
func (p *Parser) parseIfExpr() ast.Expression {
	tok := p.expect(token.IF)
	cond := p.parseExpressionBraceSuppressed()

	if p.cur.Type == token.THEN {
		p.advance()
		thenE := p.parseExpression()
		p.expect(token.ELSE)
		elseE := p.parseExpression()
		return &ast.If{Token: tok, Cond: cond, Then: thenE, Else: elseE}
	}
	if p.cur.Type == token.LBRACE {
		p.advance()
		thenE := p.parseExpression()
		p.expect(token.RBRACE)
		p.expect(token.ELSE)
		p.expect(token.LBRACE)
		elseE := p.parseExpression()
		p.expect(token.RBRACE)
		return &ast.If{Token: tok, Cond: cond, Then: thenE, Else: elseE}
	}
	p.fatalf("expected 'then' or '{' after if condition, got %q", p.cur.Lexeme)
	return nil
}

func (p *Parser) parseLambdaExpr() ast.Expression {
	tok := p.expect(token.BACKSLSH)
	var params []ast.Pattern
	for p.canStartPrimaryPattern() {
		params = append(params, p.parsePrimaryPattern())
	}
	if len(params) == 0 {
		p.fatalf("lambda requires at least one parameter")
	}
	p.expect(token.ARROW)
	body := p.parseExpression()
	return &ast.Lambda{Token: tok, Params: params, Body: body}
}

func (p *Parser) parseDoExpr() ast.Expression {
	p.expect(token.DO)
	p.expect(token.LBRACE)
	return p.parseBlockBody(p.prev, true)
}
