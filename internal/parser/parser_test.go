package parser_test

import (
	"testing"

	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/lexer"
	"github.com/chrismichaelps/solis/internal/parser"
	"github.com/chrismichaelps/solis/internal/pipeline"
)

// parse is a test helper: lexes+parses input and fails on any diagnostic.
func parse(t *testing.T, input string) *ast.Module {
	t.Helper()
	ctx := &pipeline.Context{SourceCode: input}
	ctx = (&lexer.Processor{}).Process(ctx)
	ctx = (&parser.Processor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			t.Errorf("parse error: %s", e)
		}
		t.FailNow()
	}
	return ctx.Module
}

func decl(t *testing.T, mod *ast.Module, idx int) ast.Decl {
	t.Helper()
	if idx >= len(mod.Decls) {
		t.Fatalf("expected at least %d decls, got %d", idx+1, len(mod.Decls))
	}
	return mod.Decls[idx]
}

func funcDecl(t *testing.T, mod *ast.Module, idx int) *ast.FunctionDecl {
	t.Helper()
	d := decl(t, mod, idx)
	fd, ok := d.(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("decl %d: expected *ast.FunctionDecl, got %T", idx, d)
	}
	return fd
}

func TestParseSimpleLetFunction(t *testing.T) {
	mod := parse(t, "let add x y = x + y")
	fd := funcDecl(t, mod, 0)
	if fd.Name != "add" {
		t.Fatalf("got name %q", fd.Name)
	}
	if len(fd.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fd.Params))
	}
	bin, ok := fd.Body.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected BinOp body, got %T", fd.Body)
	}
	if bin.Op != "+" {
		t.Fatalf("got op %q", bin.Op)
	}
}

func TestParseBinOpIsRightAssociativeNoPrecedence(t *testing.T) {
	// spec.md §4.2/§8 scenario 6: "10 * 20 + 5" groups as 10 * (20 + 5).
	mod := parse(t, "let main = 10 * 20 + 5")
	fd := funcDecl(t, mod, 0)
	outer, ok := fd.Body.(*ast.BinOp)
	if !ok || outer.Op != "*" {
		t.Fatalf("expected outer '*' BinOp, got %#v", fd.Body)
	}
	inner, ok := outer.Right.(*ast.BinOp)
	if !ok || inner.Op != "+" {
		t.Fatalf("expected right-hand '+' BinOp, got %#v", outer.Right)
	}
	if _, ok := outer.Left.(*ast.IntLit); !ok {
		t.Fatalf("expected left operand to stay a literal, got %#v", outer.Left)
	}
}

func TestParseApplicationBindsTighterThanBinOp(t *testing.T) {
	mod := parse(t, "let r = f x + g y")
	fd := funcDecl(t, mod, 0)
	bin, ok := fd.Body.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected BinOp, got %T", fd.Body)
	}
	if _, ok := bin.Left.(*ast.App); !ok {
		t.Fatalf("expected left operand to be an App, got %T", bin.Left)
	}
	if _, ok := bin.Right.(*ast.App); !ok {
		t.Fatalf("expected right operand to be an App, got %T", bin.Right)
	}
}

func TestParseConsPattern(t *testing.T) {
	mod := parse(t, "let head xs = match xs { x :: rest => x }")
	fd := funcDecl(t, mod, 0)
	m, ok := fd.Body.(*ast.Match)
	if !ok {
		t.Fatalf("expected Match, got %T", fd.Body)
	}
	if len(m.Arms) != 1 {
		t.Fatalf("expected 1 arm, got %d", len(m.Arms))
	}
	cons, ok := m.Arms[0].Pattern.(*ast.ConsPat)
	if !ok {
		t.Fatalf("expected ConsPat, got %T", m.Arms[0].Pattern)
	}
	if cons.Constructor != "::" {
		t.Fatalf("got constructor %q", cons.Constructor)
	}
}

func TestParseLetExprConsumesInAndSemicolon(t *testing.T) {
	mod := parse(t, "let f = let x = 1 in x + 1")
	fd := funcDecl(t, mod, 0)
	let, ok := fd.Body.(*ast.Let)
	if !ok {
		t.Fatalf("expected Let, got %T", fd.Body)
	}
	if _, ok := let.Body.(*ast.BinOp); !ok {
		t.Fatalf("expected let-body to be the BinOp after 'in', got %T", let.Body)
	}
}

func TestParseRecordLiteralAndUpdateDisambiguation(t *testing.T) {
	mod := parse(t, "let p = { x = 1, y = 2 }")
	fd := funcDecl(t, mod, 0)
	if _, ok := fd.Body.(*ast.RecordLit); !ok {
		t.Fatalf("expected RecordLit, got %T", fd.Body)
	}

	mod2 := parse(t, "let q = { p | x = 3 }")
	fd2 := funcDecl(t, mod2, 0)
	if _, ok := fd2.Body.(*ast.RecordUpdate); !ok {
		t.Fatalf("expected RecordUpdate, got %T", fd2.Body)
	}
}

func TestParseDoBlockIsBlockWithIsDoSet(t *testing.T) {
	// spec.md §4.2.1 rule 1: a '{' introduced by 'do' is always a
	// plain block, never disambiguated into a monadic bind.
	mod := parse(t, "let f = do { let x = 10; let y = 20; x + y }")
	fd := funcDecl(t, mod, 0)
	block, ok := fd.Body.(*ast.Block)
	if !ok {
		t.Fatalf("expected Block, got %T", fd.Body)
	}
	if !block.IsDo {
		t.Fatalf("expected IsDo to be true")
	}
	if len(block.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(block.Statements))
	}
}

func TestParseMonadicBindRequiresNonDoBrace(t *testing.T) {
	mod := parse(t, "let f = { x <- getX; x }")
	fd := funcDecl(t, mod, 0)
	bind, ok := fd.Body.(*ast.Bind)
	if !ok {
		t.Fatalf("expected Bind, got %T", fd.Body)
	}
	if bind.Pattern.(*ast.VarPat).Name != "x" {
		t.Fatalf("got pattern %#v", bind.Pattern)
	}
}

func TestParseTypeDeclADT(t *testing.T) {
	mod := parse(t, "type Maybe a = Just a | Nothing")
	td, ok := decl(t, mod, 0).(*ast.TypeDecl)
	if !ok {
		t.Fatalf("expected TypeDecl, got %T", decl(t, mod, 0))
	}
	adt, ok := td.RHS.(ast.ADTRHS)
	if !ok {
		t.Fatalf("expected ADTRHS, got %T", td.RHS)
	}
	if len(adt.Constructors) != 2 {
		t.Fatalf("got %d constructors, want 2", len(adt.Constructors))
	}
	if adt.Constructors[0].Name != "Just" || len(adt.Constructors[0].Args) != 1 {
		t.Fatalf("got %#v", adt.Constructors[0])
	}
	if adt.Constructors[1].Name != "Nothing" || len(adt.Constructors[1].Args) != 0 {
		t.Fatalf("got %#v", adt.Constructors[1])
	}
}

func TestParseImplClassicFormSeparatesTraitAndType(t *testing.T) {
	mod := parse(t, "impl Eq Point where eq p q = true")
	id, ok := decl(t, mod, 0).(*ast.ImplDecl)
	if !ok {
		t.Fatalf("expected ImplDecl, got %T", decl(t, mod, 0))
	}
	if id.TraitName != "Eq" {
		t.Fatalf("got trait name %q, want Eq", id.TraitName)
	}
	tc, ok := id.Target.(*ast.TypeCon)
	if !ok || tc.Name != "Point" {
		t.Fatalf("got target %#v, want TypeCon Point", id.Target)
	}
}

func TestParseImplStructuralFormHasNoTraitName(t *testing.T) {
	mod := parse(t, "impl Point { show p = \"point\" }")
	id, ok := decl(t, mod, 0).(*ast.ImplDecl)
	if !ok {
		t.Fatalf("expected ImplDecl, got %T", decl(t, mod, 0))
	}
	if id.TraitName != "" {
		t.Fatalf("got trait name %q, want empty (structural form)", id.TraitName)
	}
	if len(id.Methods) != 1 {
		t.Fatalf("got %d methods, want 1", len(id.Methods))
	}
}

func TestParseNegatedLiteral(t *testing.T) {
	mod := parse(t, "let n = -5")
	fd := funcDecl(t, mod, 0)
	lit, ok := fd.Body.(*ast.IntLit)
	if !ok || lit.Value != -5 {
		t.Fatalf("got %#v, want IntLit(-5)", fd.Body)
	}
}

func TestParseDeclarationErrorRecoveryResyncsAtNextLet(t *testing.T) {
	ctx := &pipeline.Context{SourceCode: "let a = + ; let b = 2"}
	ctx = (&lexer.Processor{}).Process(ctx)
	ctx = (&parser.Processor{}).Process(ctx)
	if len(ctx.Errors) == 0 {
		t.Fatalf("expected at least one diagnostic from the malformed first declaration")
	}
	if len(ctx.Module.Decls) != 1 {
		t.Fatalf("expected resync to recover the second declaration, got %d decls", len(ctx.Module.Decls))
	}
	fd, ok := ctx.Module.Decls[0].(*ast.FunctionDecl)
	if !ok || fd.Name != "b" {
		t.Fatalf("expected recovered decl 'b', got %#v", ctx.Module.Decls[0])
	}
}
