package evaluator

import (
	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/diagnostics"
	"github.com/chrismichaelps/solis/internal/token"
)

func posOf(tok token.Token) diagnostics.Position {
	return diagnostics.Position{Line: tok.Line, Column: tok.Column}
}

// Eval implements eval(Expr, Env) -> Value per spec.md §4.4's table.
// It returns as soon as expr's variant has a value, deferring any
// further work (argument evaluation, record/list element evaluation)
// to the thunks it builds rather than forcing them here.
func Eval(expr ast.Expression, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.Var:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeUnboundVariable, posOf(e.Token), e.Name)
		}
		return v, nil

	case *ast.IntLit:
		return Int(e.Value), nil
	case *ast.FloatLit:
		return Float(e.Value), nil
	case *ast.StringLit:
		return Str(e.Value), nil
	case *ast.BoolLit:
		return Bool(e.Value), nil
	case *ast.BigIntLit:
		return &BigInt{V: e.Value}, nil

	case *ast.Lambda:
		return makeCurriedLambda(e.Params, e.Body, env), nil

	case *ast.App:
		return evalApp(e, env)

	case *ast.Let:
		return evalLet(e, env)

	case *ast.Match:
		return evalMatch(e, env)

	case *ast.If:
		return evalIf(e, env)

	case *ast.BinOp:
		return evalBinOp(e, env)

	case *ast.ListLit:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			el := el
			elems[i] = NewThunk(func() (Value, error) { return Eval(el, env) })
		}
		return &List{Elements: elems}, nil

	case *ast.RecordLit:
		fields := make([]RecordFieldValue, len(e.Fields))
		for i, f := range e.Fields {
			f := f
			fields[i] = RecordFieldValue{Name: f.Name, Value: NewThunk(func() (Value, error) { return Eval(f.Value, env) })}
		}
		return &Record{Fields: fields}, nil

	case *ast.RecordAccess:
		return evalRecordAccess(e, env)

	case *ast.RecordUpdate:
		return evalRecordUpdate(e, env)

	case *ast.Block:
		return evalBlock(e.Statements, env)

	case *ast.Bind:
		return evalBind(e, env)

	case *ast.Strict:
		v, err := Eval(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return Force(v)
	}
	return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeTypeMismatch, diagnostics.Position{}, "unsupported expression node")
}

// makeCurriedLambda builds a (possibly multi-parameter) Function that
// curries: applying it to one argument binds the first pattern and
// either evaluates the body (last parameter) or returns a Function
// for the next one.
func makeCurriedLambda(params []ast.Pattern, body ast.Expression, env *Environment) *Function {
	param := params[0]
	rest := params[1:]
	return &Function{Apply: func(arg Value) (Value, error) {
		callEnv := env.Extend()
		ok, err := MatchPattern(param, arg, callEnv)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeMatchFailure, diagnostics.Position{}, "lambda parameter")
		}
		if len(rest) == 0 {
			return Eval(body, callEnv)
		}
		return makeCurriedLambda(rest, body, callEnv), nil
	}}
}

func evalApp(e *ast.App, env *Environment) (Value, error) {
	fnVal, err := Eval(e.Fn, env)
	if err != nil {
		return nil, err
	}
	fnVal, err = Force(fnVal)
	if err != nil {
		return nil, err
	}
	fn, ok := fnVal.(*Function)
	if !ok {
		return nil, typeMismatch(posOf(e.Token), "application target is not a function")
	}
	argExpr := e.Arg
	argThunk := NewThunk(func() (Value, error) { return Eval(argExpr, env) })
	return fn.Apply(argThunk)
}

func evalLet(e *ast.Let, env *Environment) (Value, error) {
	letEnv := env.Extend()
	value := e.Value
	valueThunk := NewThunk(func() (Value, error) { return Eval(value, letEnv) })
	ok, err := MatchPattern(e.Pattern, valueThunk, letEnv)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeMatchFailure, posOf(e.Token), "let binding")
	}
	return Eval(e.Body, letEnv)
}

func evalMatch(e *ast.Match, env *Environment) (Value, error) {
	scrutineeExpr := e.Scrutinee
	scrutinee := NewThunk(func() (Value, error) { return Eval(scrutineeExpr, env) })
	for _, arm := range e.Arms {
		armEnv := env.Extend()
		ok, err := MatchPattern(arm.Pattern, scrutinee, armEnv)
		if err != nil {
			return nil, err
		}
		if ok {
			return Eval(arm.Body, armEnv)
		}
	}
	return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeMatchFailure, posOf(e.Token), "no arm matched")
}

func evalIf(e *ast.If, env *Environment) (Value, error) {
	condVal, err := Eval(e.Cond, env)
	if err != nil {
		return nil, err
	}
	condVal, err = Force(condVal)
	if err != nil {
		return nil, err
	}
	b, ok := condVal.(Bool)
	if !ok {
		return nil, typeMismatch(posOf(e.Token), "if condition is not a boolean")
	}
	if bool(b) {
		return Eval(e.Then, env)
	}
	return Eval(e.Else, env)
}

func evalBinOp(e *ast.BinOp, env *Environment) (Value, error) {
	switch e.Op {
	case "&&":
		lv, err := forceEval(e.Left, env)
		if err != nil {
			return nil, err
		}
		lb, ok := lv.(Bool)
		if !ok {
			return nil, typeMismatch(posOf(e.Token), "'&&' requires boolean operands")
		}
		if !bool(lb) {
			return Bool(false), nil
		}
		rv, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := rv.(Bool)
		if !ok {
			return nil, typeMismatch(posOf(e.Token), "'&&' requires boolean operands")
		}
		return rb, nil

	case "||":
		lv, err := forceEval(e.Left, env)
		if err != nil {
			return nil, err
		}
		lb, ok := lv.(Bool)
		if !ok {
			return nil, typeMismatch(posOf(e.Token), "'||' requires boolean operands")
		}
		if bool(lb) {
			return Bool(true), nil
		}
		rv, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := rv.(Bool)
		if !ok {
			return nil, typeMismatch(posOf(e.Token), "'||' requires boolean operands")
		}
		return rb, nil

	case "::", ":":
		left, err := Eval(e.Left, env)
		if err != nil {
			return nil, err
		}
		rv, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		tail, ok := rv.(*List)
		if !ok {
			return nil, typeMismatch(posOf(e.Token), "cons operator requires a list on the right")
		}
		elems := make([]Value, 0, len(tail.Elements)+1)
		elems = append(elems, left)
		elems = append(elems, tail.Elements...)
		return &List{Elements: elems}, nil

	case "|>":
		fnVal, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		fn, ok := fnVal.(*Function)
		if !ok {
			return nil, typeMismatch(posOf(e.Token), "'|>' right-hand side is not a function")
		}
		argExpr := e.Left
		argThunk := NewThunk(func() (Value, error) { return Eval(argExpr, env) })
		return fn.Apply(argThunk)

	case "++":
		l, err := forceEval(e.Left, env)
		if err != nil {
			return nil, err
		}
		r, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		return concat(posOf(e.Token), l, r)

	case "==", "!=":
		l, err := Eval(e.Left, env)
		if err != nil {
			return nil, err
		}
		r, err := Eval(e.Right, env)
		if err != nil {
			return nil, err
		}
		eq, err := valuesEqual(l, r)
		if err != nil {
			return nil, err
		}
		if e.Op == "!=" {
			eq = !eq
		}
		return Bool(eq), nil

	case "<", ">", "<=", ">=":
		l, err := forceEval(e.Left, env)
		if err != nil {
			return nil, err
		}
		r, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		cmp, err := compareValues(posOf(e.Token), l, r)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case "<":
			return Bool(cmp < 0), nil
		case ">":
			return Bool(cmp > 0), nil
		case "<=":
			return Bool(cmp <= 0), nil
		default:
			return Bool(cmp >= 0), nil
		}

	case "+", "-", "*", "/", "%":
		l, err := forceEval(e.Left, env)
		if err != nil {
			return nil, err
		}
		r, err := forceEval(e.Right, env)
		if err != nil {
			return nil, err
		}
		return arithmetic(posOf(e.Token), e.Op, l, r)
	}
	return nil, typeMismatch(posOf(e.Token), "unknown operator "+e.Op)
}

func forceEval(expr ast.Expression, env *Environment) (Value, error) {
	v, err := Eval(expr, env)
	if err != nil {
		return nil, err
	}
	return Force(v)
}

func evalRecordAccess(e *ast.RecordAccess, env *Environment) (Value, error) {
	rv, err := forceEval(e.Record, env)
	if err != nil {
		return nil, err
	}
	rec, ok := rv.(*Record)
	if !ok {
		return nil, typeMismatch(posOf(e.Token), "'.' requires a record")
	}
	fv, present := rec.get(e.Field)
	if !present {
		return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeNoSuchField, posOf(e.Token), e.Field)
	}
	return Force(fv)
}

func evalRecordUpdate(e *ast.RecordUpdate, env *Environment) (Value, error) {
	baseVal, err := forceEval(e.Base, env)
	if err != nil {
		return nil, err
	}
	base, ok := baseVal.(*Record)
	if !ok {
		return nil, typeMismatch(posOf(e.Token), "record update requires a record base")
	}
	fields := make([]RecordFieldValue, len(base.Fields))
	copy(fields, base.Fields)
	for _, upd := range e.Updates {
		upd := upd
		newVal := NewThunk(func() (Value, error) { return Eval(upd.Value, env) })
		found := false
		for i := range fields {
			if fields[i].Name == upd.Name {
				fields[i].Value = newVal
				found = true
				break
			}
		}
		if !found {
			fields = append(fields, RecordFieldValue{Name: upd.Name, Value: newVal})
		}
	}
	return &Record{Fields: fields}, nil
}

// evalBlock implements spec.md §4.4's Block/do-block semantics: each
// let-statement installs a binding into a local copy of the
// environment visible to subsequent statements; the last statement's
// value is the block's value.
func evalBlock(stmts []ast.Expression, env *Environment) (Value, error) {
	blockEnv := env.Extend()
	var result Value = Bool(true)
	for i, stmt := range stmts {
		if let, ok := stmt.(*ast.Let); ok {
			value := let.Value
			valueThunk := NewThunk(func() (Value, error) { return Eval(value, blockEnv) })
			ok, err := MatchPattern(let.Pattern, valueThunk, blockEnv)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeMatchFailure, posOf(let.Token), "block let binding")
			}
			result = Bool(true)
			continue
		}
		v, err := Eval(stmt, blockEnv)
		if err != nil {
			return nil, err
		}
		if i == len(stmts)-1 {
			result = v
		}
	}
	return result, nil
}

func evalBind(e *ast.Bind, env *Environment) (Value, error) {
	actionVal, err := Eval(e.Action, env)
	if err != nil {
		return nil, err
	}
	bindEnv := env.Extend()
	ok, err := MatchPattern(e.Pattern, actionVal, bindEnv)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeMatchFailure, posOf(e.Token), "monadic bind")
	}
	return Eval(e.Body, bindEnv)
}
