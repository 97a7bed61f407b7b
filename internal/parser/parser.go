// Package parser implements solis's handwritten recursive-descent
// parser: one token of lookahead (two in the two places spec.md §4.2
// calls out — negative literals and record/block brace
// disambiguation), never table-driven. A parse error inside an
// expression is fatal and unwinds via panic/recover up to
// ParseModule, which resynchronizes at the next declaration boundary;
// ParseExpression and ParseDeclaration used standalone (§6's library
// surface) simply propagate the panic to their caller.
package parser

import (
	"fmt"

	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/diagnostics"
	"github.com/chrismichaelps/solis/internal/lexer"
	"github.com/chrismichaelps/solis/internal/token"
)

// parseError is the panic payload a fatal parse error unwinds with.
type parseError struct {
	err *diagnostics.Error
}

// Parser holds an index into a fixed token slice; no hidden global
// state (spec.md §9: "Parser state... an index plus a token vector").
type Parser struct {
	toks []token.Token
	pos  int
	cur  token.Token
	prev token.Token

	// noBraceArg suppresses '{' as an application-continuation argument
	// starter; set while parsing a match scrutinee, an if condition, or
	// the first element read during brace disambiguation (spec.md §4.2.1).
	noBraceArg bool
}

// New constructs a Parser over a complete token stream (which must end
// in an EOF token, as produced by lexer.Tokenize).
func New(toks []token.Token) *Parser {
	if len(toks) == 0 {
		toks = []token.Token{{Type: token.EOF}}
	}
	return &Parser{toks: toks, cur: toks[0]}
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) peek() token.Token { return p.peekAt(1) }

func (p *Parser) advance() {
	p.prev = p.cur
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.cur = p.toks[p.pos]
}

func (p *Parser) position() diagnostics.Position {
	return diagnostics.Position{Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) fatalf(format string, args ...interface{}) {
	err := diagnostics.Newf(diagnostics.PhaseParser, diagnostics.CodeParseError, p.position(), format, args...)
	panic(parseError{err})
}

// expect consumes the current token if it has type t, else raises a
// fatal parse error naming what was expected.
func (p *Parser) expect(t token.Type) token.Token {
	if p.cur.Type != t {
		p.fatalf("unexpected token %q: expected %q", p.cur.Lexeme, t)
	}
	tok := p.cur
	p.advance()
	return tok
}

// IsAtEnd reports whether the parser has consumed every token.
func (p *Parser) IsAtEnd() bool { return p.cur.Type == token.EOF }

// ParseModule parses a full Module, resynchronizing after any
// declaration that fails to parse (spec.md §4.2.4).
func (p *Parser) ParseModule() (*ast.Module, []*diagnostics.Error) {
	mod := &ast.Module{}
	var errs []*diagnostics.Error

	if p.cur.Type == token.MODULE {
		header, err := p.parseModuleDeclRecover()
		if err != nil {
			errs = append(errs, err)
		} else {
			mod.Header = header
		}
	}
	for p.cur.Type == token.IMPORT {
		imp, err := p.parseImportDeclRecover()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		mod.Imports = append(mod.Imports, imp)
	}
	for p.cur.Type != token.EOF {
		start := p.pos
		decl, err := p.parseDeclarationRecover()
		if err != nil {
			errs = append(errs, err)
			if p.pos == start {
				// resync stops before `module`/`import`; skip the token
				// so a misplaced one cannot stall the loop.
				p.advance()
			}
			continue
		}
		if decl != nil {
			mod.Decls = append(mod.Decls, decl)
		}
	}
	return mod, errs
}

// parseDeclarationRecover parses one declaration, converting a fatal
// parse error into a diagnostic and resynchronizing rather than
// propagating the panic — the module-level recovery spec.md §4.2
// describes.
func (p *Parser) parseDeclarationRecover() (decl ast.Decl, err *diagnostics.Error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe.err
			p.resync()
		}
	}()
	decl = p.ParseDeclaration()
	return decl, nil
}

// parseModuleDeclRecover parses the module header, converting a fatal
// parse error into a diagnostic and resynchronizing instead of letting
// the panic escape ParseModule (spec.md §8: no uncaught panic).
func (p *Parser) parseModuleDeclRecover() (header *ast.ModuleDecl, err *diagnostics.Error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe.err
			p.resync()
		}
	}()
	header = p.parseModuleDecl()
	return header, nil
}

// parseImportDeclRecover parses one import declaration with the same
// panic-to-diagnostic-and-resync recovery as declarations.
func (p *Parser) parseImportDeclRecover() (imp *ast.ImportDecl, err *diagnostics.Error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe.err
			p.resync()
		}
	}()
	imp = p.parseImportDecl()
	return imp, nil
}

// resync discards tokens until after the next ';' or just before the
// next declaration-starting keyword (spec.md §4.2).
func (p *Parser) resync() {
	for p.cur.Type != token.EOF {
		if p.cur.Type == token.SEMI {
			p.advance()
			return
		}
		switch p.cur.Type {
		case token.LET, token.TYPE, token.DATA, token.MODULE, token.IMPORT:
			return
		}
		p.advance()
	}
}

// ParseDeclaration parses exactly one declaration at the current
// position (part of §6's library surface). A leading `export` is
// skipped and the following declaration is parsed in its place.
func (p *Parser) ParseDeclaration() ast.Decl {
	if p.cur.Type == token.EXPORT {
		p.advance()
		return p.ParseDeclaration()
	}
	switch p.cur.Type {
	case token.LET:
		return p.parseFunctionDecl()
	case token.TYPE, token.DATA:
		return p.parseTypeDecl()
	case token.TRAIT:
		return p.parseTraitDecl()
	case token.IMPL:
		return p.parseImplDecl()
	default:
		p.fatalf("unexpected token at declaration level: %q", p.cur.Lexeme)
		return nil
	}
}

func (p *Parser) parseModuleDecl() *ast.ModuleDecl {
	tok := p.expect(token.MODULE)
	name := []string{p.expectName(token.CONSTRUCTOR, "module name").Lexeme}
	for p.cur.Type == token.DOT {
		p.advance()
		name = append(name, p.expectName(token.CONSTRUCTOR, "module name segment").Lexeme)
	}
	var exports []string
	if p.cur.Type == token.LPAREN {
		p.advance()
		if p.cur.Type != token.RPAREN {
			for {
				exports = append(exports, p.expectIdentOrCon("export name").Lexeme)
				if p.cur.Type == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
	}
	p.expect(token.WHERE)
	return &ast.ModuleDecl{Token: tok, Name: name, Exports: exports}
}

func (p *Parser) parseImportDecl() *ast.ImportDecl {
	tok := p.expect(token.IMPORT)
	qualified := false
	if p.cur.Type == token.QUALIFIED {
		qualified = true
		p.advance()
	}
	path := []string{p.expectName(token.CONSTRUCTOR, "import path").Lexeme}
	for p.cur.Type == token.DOT {
		p.advance()
		path = append(path, p.expectName(token.CONSTRUCTOR, "import path segment").Lexeme)
	}
	alias := ""
	if p.cur.Type == token.AS {
		p.advance()
		alias = p.expectName(token.CONSTRUCTOR, "import alias").Lexeme
	}
	var hiding, only []string
	if p.cur.Type == token.HIDING {
		p.advance()
		p.expect(token.LPAREN)
		if p.cur.Type != token.RPAREN {
			for {
				hiding = append(hiding, p.expectIdentOrCon("hidden name").Lexeme)
				if p.cur.Type == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
	} else if p.cur.Type == token.LPAREN {
		p.advance()
		if p.cur.Type != token.RPAREN {
			for {
				only = append(only, p.expectIdentOrCon("imported name").Lexeme)
				if p.cur.Type == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
	}
	return &ast.ImportDecl{Token: tok, Qualified: qualified, Path: path, Alias: alias, Hiding: hiding, Only: only}
}

func (p *Parser) expectName(t token.Type, what string) token.Token {
	if p.cur.Type != t {
		p.fatalf("expected %s, got %q", what, p.cur.Lexeme)
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) expectIdentOrCon(what string) token.Token {
	if p.cur.Type != token.IDENT && p.cur.Type != token.CONSTRUCTOR {
		p.fatalf("expected %s, got %q", what, p.cur.Lexeme)
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	tok := p.expect(token.LET)
	name := p.expectName(token.IDENT, "function name")
	var params []ast.Pattern
	for p.canStartPrimaryPattern() {
		params = append(params, p.parsePrimaryPattern())
	}
	var typeAnnot ast.TypeExpr
	if p.cur.Type == token.COLON {
		p.advance()
		typeAnnot = p.parseType()
	}
	p.expect(token.ASSIGN)
	body := p.parseExpression()
	return &ast.FunctionDecl{Token: tok, Name: name.Lexeme, TypeAnnot: typeAnnot, Params: params, Body: body, EndToken: p.prev}
}

func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	tok := p.cur
	if tok.Type != token.TYPE && tok.Type != token.DATA {
		p.fatalf("expected 'type' or 'data'")
	}
	p.advance()
	name := p.expectName(token.CONSTRUCTOR, "type name")
	var params []ast.TypeParam
	for p.cur.Type == token.IDENT || p.cur.Type == token.LPAREN {
		if p.cur.Type == token.IDENT {
			params = append(params, ast.TypeParam{Name: p.cur.Lexeme})
			p.advance()
			continue
		}
		p.advance() // (
		pname := p.expectName(token.IDENT, "type parameter name").Lexeme
		p.expect(token.COLON)
		kind := p.parseType()
		p.expect(token.RPAREN)
		params = append(params, ast.TypeParam{Name: pname, Kind: kind})
	}
	p.expect(token.ASSIGN)
	rhs := p.parseTypeRHS()
	return &ast.TypeDecl{Token: tok, Name: name.Lexeme, TypeParams: params, RHS: rhs}
}

func (p *Parser) parseTypeRHS() ast.TypeRHS {
	if p.cur.Type == token.LBRACE {
		p.advance()
		var fields []ast.RecordFieldType
		if p.cur.Type != token.RBRACE {
			for {
				fname := p.expectName(token.IDENT, "record field name").Lexeme
				p.expect(token.COLON)
				ftype := p.parseType()
				fields = append(fields, ast.RecordFieldType{Name: fname, Type: ftype})
				if p.cur.Type == token.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RBRACE)
		return ast.RecordRHS{Fields: fields}
	}
	if p.cur.Type == token.CONSTRUCTOR {
		var ctors []ast.ConstructorDef
		for {
			name := p.cur.Lexeme
			p.advance()
			var args []ast.TypeExpr
			for p.canStartTypeAtom() {
				args = append(args, p.parseTypeAtom())
			}
			ctors = append(ctors, ast.ConstructorDef{Name: name, Args: args})
			if p.cur.Type == token.PIPE {
				p.advance()
				continue
			}
			break
		}
		return ast.ADTRHS{Constructors: ctors}
	}
	return ast.AliasRHS{Type: p.parseType()}
}

func (p *Parser) parseTraitDecl() *ast.TraitDecl {
	tok := p.expect(token.TRAIT)
	name := p.expectName(token.CONSTRUCTOR, "trait name")
	var params []ast.TypeParam
	for p.cur.Type == token.IDENT {
		params = append(params, ast.TypeParam{Name: p.cur.Lexeme})
		p.advance()
	}
	p.expect(token.WHERE)
	var methods []ast.MethodSig
	for p.cur.Type == token.IDENT {
		mname := p.cur.Lexeme
		p.advance()
		p.expect(token.CONS)
		mtype := p.parseType()
		methods = append(methods, ast.MethodSig{Name: mname, Type: mtype})
		if p.cur.Type == token.SEMI {
			p.advance()
		}
	}
	return &ast.TraitDecl{Token: tok, Name: name.Lexeme, TypeParams: params, Methods: methods}
}

// parseImplDecl disambiguates `impl Type { ... }` (structural) from
// `impl Trait Type where ...` (classic) the same way it reads either
// way: a single type atom, then what follows picks the branch. A
// structural target that is itself an application needs parentheses
// (`impl (List Int) { ... }`) — without them the first atom is read
// as a trait name and the form is reinterpreted as classic, which
// then fails at `where` vs. `{` with a clear parse error.
func (p *Parser) parseImplDecl() *ast.ImplDecl {
	tok := p.expect(token.IMPL)
	candidate := p.parseTypeAtom()

	if p.cur.Type == token.LBRACE {
		p.advance()
		methods := p.parseMethodDefs()
		p.expect(token.RBRACE)
		return &ast.ImplDecl{Token: tok, TraitName: "", Target: candidate, Methods: methods}
	}

	traitName, ok := bareTypeConName(candidate)
	if !ok {
		p.fatalf("expected a trait name before the implementation target")
	}
	target := p.parseTypeApp()
	p.expect(token.WHERE)
	methods := p.parseMethodDefs()
	return &ast.ImplDecl{Token: tok, TraitName: traitName, Target: target, Methods: methods}
}

func bareTypeConName(t ast.TypeExpr) (string, bool) {
	tc, ok := t.(*ast.TypeCon)
	if !ok || len(tc.Args) != 0 {
		return "", false
	}
	return tc.Name, true
}

func (p *Parser) parseMethodDefs() []*ast.FunctionDecl {
	var methods []*ast.FunctionDecl
	for p.cur.Type == token.IDENT {
		tok := p.cur
		name := p.cur.Lexeme
		p.advance()
		var params []ast.Pattern
		for p.canStartPrimaryPattern() {
			params = append(params, p.parsePrimaryPattern())
		}
		var typeAnnot ast.TypeExpr
		if p.cur.Type == token.COLON {
			p.advance()
			typeAnnot = p.parseType()
		}
		p.expect(token.ASSIGN)
		body := p.parseExpression()
		methods = append(methods, &ast.FunctionDecl{Token: tok, Name: name, TypeAnnot: typeAnnot, Params: params, Body: body, EndToken: p.prev})
		if p.cur.Type == token.SEMI {
			p.advance()
		}
	}
	return methods
}

// ParseExpressionFromSource is a pure convenience that rebuilds a
// fresh lexer and parser over src (spec.md §6).
func ParseExpressionFromSource(src string) (ast.Expression, error) {
	toks := lexer.Tokenize(src)
	p := New(toks)
	return p.parseExpressionCatching()
}

func (p *Parser) parseExpressionCatching() (expr ast.Expression, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%s", pe.err.Error())
		}
	}()
	expr = p.parseExpression()
	return expr, nil
}

// ParseExpression parses a single expression at the current position
// (part of §6's library surface); a fatal error panics to the caller.
func (p *Parser) ParseExpression() ast.Expression {
	return p.parseExpression()
}
