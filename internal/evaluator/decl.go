package evaluator

import (
	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/diagnostics"
)

// EvalDecl installs one declaration into env (spec.md §4.4's
// "Installing a declaration"). Type declarations install their data
// constructors as bindings; trait/impl/module/import declarations are
// accepted and install nothing.
func EvalDecl(decl ast.Decl, env *Environment) error {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		return installFunctionDecl(d, env)
	case *ast.TypeDecl:
		return installTypeDecl(d, env)
	case *ast.TraitDecl, *ast.ImplDecl, *ast.ModuleDecl, *ast.ImportDecl:
		return nil
	}
	return diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeTypeMismatch, diagnostics.Position{}, "unsupported declaration")
}

// installFunctionDecl implements the zero-parameter ("thunk, created
// before its body is evaluated so recursion closes over its own
// binding") and curried-function cases of spec.md §4.4.
func installFunctionDecl(d *ast.FunctionDecl, env *Environment) error {
	if len(d.Params) == 0 {
		body := d.Body
		t := NewThunk(nil)
		t.compute = func() (Value, error) { return Eval(body, env) }
		env.Set(d.Name, t)
		return nil
	}
	env.Set(d.Name, makeCurriedLambda(d.Params, d.Body, env))
	return nil
}

// installTypeDecl registers an ADT's data constructors as ordinary
// bindings: nullary constructors become zero-arg Constructor values
// directly; n-ary constructors become curried Functions that
// accumulate arguments before producing the Constructor (spec.md
// §4.4). Record and alias right-hand sides have no runtime
// representation — they exist purely for the external type checker.
func installTypeDecl(d *ast.TypeDecl, env *Environment) error {
	adt, ok := d.RHS.(ast.ADTRHS)
	if !ok {
		return nil
	}
	for _, ctor := range adt.Constructors {
		env.Set(ctor.Name, makeConstructor(ctor.Name, len(ctor.Args)))
	}
	return nil
}

func makeConstructor(name string, arity int) Value {
	if arity == 0 {
		return &Constructor{Name: name}
	}
	return curriedConstructor(name, arity, nil)
}

func curriedConstructor(name string, arity int, collected []Value) *Function {
	return &Function{Name: name, Apply: func(arg Value) (Value, error) {
		next := make([]Value, len(collected)+1)
		copy(next, collected)
		next[len(collected)] = arg
		if len(next) == arity {
			return &Constructor{Name: name, Args: next}, nil
		}
		return curriedConstructor(name, arity, next), nil
	}}
}
