package evaluator_test

import (
	"testing"

	"github.com/chrismichaelps/solis/internal/evaluator"
	"github.com/chrismichaelps/solis/internal/lexer"
	"github.com/chrismichaelps/solis/internal/parser"
	"github.com/chrismichaelps/solis/internal/pipeline"
)

// run loads src's declarations into a fresh interpreter and returns
// that interpreter.
func run(t *testing.T, src string) *evaluator.Interpreter {
	t.Helper()
	ctx := &pipeline.Context{SourceCode: src}
	ctx = (&lexer.Processor{}).Process(ctx)
	ctx = (&parser.Processor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			t.Errorf("parse error: %s", e)
		}
		t.FailNow()
	}
	interp := evaluator.New()
	if err := interp.EvalModule(ctx.Module); err != nil {
		t.Fatalf("eval error: %s", err)
	}
	return interp
}

func bindingString(t *testing.T, interp *evaluator.Interpreter, name string) string {
	t.Helper()
	v, ok := interp.GetBinding(name)
	if !ok {
		t.Fatalf("no binding named %q", name)
	}
	s, err := interp.ValueToString(v)
	if err != nil {
		t.Fatalf("rendering %q: %s", name, err)
	}
	return s
}

// spec.md §8 scenario: "add 5 3 -> 8"
func TestAddTwoArgs(t *testing.T) {
	interp := run(t, "let add x y = x + y\nlet result = add 5 3")
	if got := bindingString(t, interp, "result"); got != "8" {
		t.Fatalf("got %s, want 8", got)
	}
}

// spec.md §8 scenario: "fact 5 -> 120", via a recursive one-parameter
// function that finds itself through the global environment.
func TestFactorialRecursion(t *testing.T) {
	interp := run(t, `
let fact n = match n { 0 => 1, n => n * fact (n - 1) }
let result = fact 5
`)
	if got := bindingString(t, interp, "result"); got != "120" {
		t.Fatalf("got %s, want 120", got)
	}
}

// spec.md §8 scenario: cons-pattern match on [10,20,30] -> 10.
func TestConsPatternMatchBindsHead(t *testing.T) {
	interp := run(t, `
let head xs = match xs { x :: rest => x }
let result = head [10, 20, 30]
`)
	if got := bindingString(t, interp, "result"); got != "10" {
		t.Fatalf("got %s, want 10", got)
	}
}

// spec.md §8 scenario: record-update round-trip; the updated x plus the
// unchanged y gives 32.
func TestRecordUpdateRoundTrip(t *testing.T) {
	interp := run(t, `
let p = { x = 1, y = 2 }
let q = { p | x = 30 }
let result = q.x + q.y
`)
	if got := bindingString(t, interp, "result"); got != "32" {
		t.Fatalf("got %s, want 32 (30 + y=2)", got)
	}
}

// spec.md §8 scenario: do-block evaluates to 30.
func TestDoBlockSequencesStatements(t *testing.T) {
	interp := run(t, `
let result = do { let x = 10; let y = 20; x + y }
`)
	if got := bindingString(t, interp, "result"); got != "30" {
		t.Fatalf("got %s, want 30", got)
	}
}

// spec.md §8 scenario 6: right-associative, no-precedence main example.
func TestRightAssociativeNoPrecedenceArithmetic(t *testing.T) {
	interp := run(t, "let result = 10 * 20 + 5")
	if got := bindingString(t, interp, "result"); got != "250" {
		t.Fatalf("got %s, want 250 (10 * (20 + 5))", got)
	}
}

// spec.md §8 scenario: Maybe ADT match -> 42.
func TestMaybeADTMatch(t *testing.T) {
	interp := run(t, `
data Maybe a = Just a | Nothing
let unwrap m = match m { Just x => x, Nothing => 0 }
let result = unwrap (Just 42)
`)
	if got := bindingString(t, interp, "result"); got != "42" {
		t.Fatalf("got %s, want 42", got)
	}
}

func TestEmptyListAndRecordLiterals(t *testing.T) {
	interp := run(t, `
let xs = []
let r = {}
`)
	if got := bindingString(t, interp, "xs"); got != "[]" {
		t.Fatalf("got %s, want []", got)
	}
	if got := bindingString(t, interp, "r"); got != "{}" {
		t.Fatalf("got %s, want {}", got)
	}
}

func TestThunkComputesAtMostOnce(t *testing.T) {
	interp := run(t, `
let count = uuid 0
let a = count
let b = count
`)
	a := bindingString(t, interp, "a")
	b := bindingString(t, interp, "b")
	if a != b {
		t.Fatalf("forcing the same thunk twice produced different values: %s vs %s", a, b)
	}
}

func TestShortCircuitAndDoesNotForceRightOperand(t *testing.T) {
	// The right operand references an unbound name; if && forced it
	// unconditionally this would fail with an UnboundVariable error.
	interp := run(t, "let result = false && undefinedName")
	if got := bindingString(t, interp, "result"); got != "false" {
		t.Fatalf("got %s, want false", got)
	}
}

func TestLazyVariablePatternNeverForcesBinding(t *testing.T) {
	// Binding an unused variable pattern to a divergent/erroring thunk
	// must not force it; only using the bound name would.
	interp := run(t, `
let f = let x = 1 / 0 in 99
let result = f
`)
	if got := bindingString(t, interp, "result"); got != "99" {
		t.Fatalf("got %s, want 99 (the unused binding must never be forced)", got)
	}
}

func TestListConcatLengthProperty(t *testing.T) {
	interp := run(t, `
let xs = [1, 2, 3]
let ys = [4, 5]
let zs = xs ++ ys
`)
	if got := bindingString(t, interp, "zs"); got != "[1, 2, 3, 4, 5]" {
		t.Fatalf("got %s", got)
	}
}

func TestLambdaAndApplicationCurrying(t *testing.T) {
	interp := run(t, `
let add = \x y -> x + y
let result = add 2 3
`)
	if got := bindingString(t, interp, "result"); got != "5" {
		t.Fatalf("got %s, want 5", got)
	}
}

func TestIfExpressionBothSurfaceForms(t *testing.T) {
	interp := run(t, `
let a = if true then 1 else 2
let b = if false { 1 } else { 2 }
`)
	if got := bindingString(t, interp, "a"); got != "1" {
		t.Fatalf("got %s", got)
	}
	if got := bindingString(t, interp, "b"); got != "2" {
		t.Fatalf("got %s", got)
	}
}
