package evaluator

import (
	"math/big"

	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/diagnostics"
)

// MatchPattern implements match_pattern(pat, val, env) -> bool
// (spec.md §4.4): it forces val only as much as each pattern variant
// needs, and on success extends env in place with every binding the
// pattern introduces. A failed match leaves env untouched by only
// committing bindings after the whole pattern succeeds.
func MatchPattern(pat ast.Pattern, val Value, env *Environment) (bool, error) {
	var bindings []struct {
		name string
		v    Value
	}
	ok, err := matchInto(pat, val, &bindings)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	for _, b := range bindings {
		env.Set(b.name, b.v)
	}
	return true, nil
}

func matchInto(pat ast.Pattern, val Value, bindings *[]struct {
	name string
	v    Value
}) (bool, error) {
	switch p := pat.(type) {
	case *ast.WildcardPat:
		return true, nil

	case *ast.VarPat:
		*bindings = append(*bindings, struct {
			name string
			v    Value
		}{p.Name, val})
		return true, nil

	case *ast.LitPat:
		forced, err := Force(val)
		if err != nil {
			return false, err
		}
		want, err := literalValue(p.Value)
		if err != nil {
			return false, err
		}
		eq, err := valuesEqual(forced, want)
		if err != nil {
			return false, err
		}
		return eq, nil

	case *ast.ListPat:
		forced, err := Force(val)
		if err != nil {
			return false, err
		}
		lst, ok := forced.(*List)
		if !ok || len(lst.Elements) != len(p.Elements) {
			return false, nil
		}
		for i, sub := range p.Elements {
			matched, err := matchInto(sub, lst.Elements[i], bindings)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case *ast.ConsPat:
		if p.Constructor == "::" {
			forced, err := Force(val)
			if err != nil {
				return false, err
			}
			lst, ok := forced.(*List)
			if !ok || len(lst.Elements) == 0 {
				return false, nil
			}
			head, tail := p.Args[0], p.Args[1]
			matchedHead, err := matchInto(head, lst.Elements[0], bindings)
			if err != nil || !matchedHead {
				return false, err
			}
			return matchInto(tail, &List{Elements: lst.Elements[1:]}, bindings)
		}
		forced, err := Force(val)
		if err != nil {
			return false, err
		}
		ctor, ok := forced.(*Constructor)
		if !ok || ctor.Name != p.Constructor || len(ctor.Args) != len(p.Args) {
			return false, nil
		}
		for i, sub := range p.Args {
			matched, err := matchInto(sub, ctor.Args[i], bindings)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case *ast.RecordPat:
		forced, err := Force(val)
		if err != nil {
			return false, err
		}
		rec, ok := forced.(*Record)
		if !ok {
			return false, nil
		}
		for _, f := range p.Fields {
			fv, present := rec.get(f.Name)
			if !present {
				return false, nil
			}
			matched, err := matchInto(f.Pattern, fv, bindings)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil
	}
	return false, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeMatchFailure, diagnostics.Position{}, "unsupported pattern")
}

// literalValue evaluates a LitPat's literal expression node to a
// runtime Value for comparison; literal expressions never need an
// environment.
func literalValue(e ast.Expression) (Value, error) {
	switch l := e.(type) {
	case *ast.IntLit:
		return Int(l.Value), nil
	case *ast.FloatLit:
		return Float(l.Value), nil
	case *ast.StringLit:
		return Str(l.Value), nil
	case *ast.BoolLit:
		return Bool(l.Value), nil
	case *ast.BigIntLit:
		return &BigInt{V: new(big.Int).Set(l.Value)}, nil
	}
	return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeTypeMismatch, diagnostics.Position{}, "non-literal pattern value")
}
