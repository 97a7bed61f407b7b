package evaluator

import (
	"math/big"

	"github.com/chrismichaelps/solis/internal/diagnostics"
)

func isNumeric(v Value) bool {
	switch v.(type) {
	case Int, Float, *BigInt:
		return true
	}
	return false
}

func typeMismatch(pos diagnostics.Position, detail string) error {
	return diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeTypeMismatch, pos, detail)
}

// asBigInt widens an Int or *BigInt to *big.Int; Float is rejected by
// the caller before this is reached.
func asBigInt(v Value) *big.Int {
	switch n := v.(type) {
	case Int:
		return big.NewInt(int64(n))
	case *BigInt:
		return n.V
	}
	return nil
}

func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	case *BigInt:
		f := new(big.Float).SetInt(n.V)
		out, _ := f.Float64()
		return out, true
	}
	return 0, false
}

// arithmetic implements §4.5's mixed-arithmetic widening: an Int with a
// BigInt widens to BigInt, an Int with a Float widens to Float, and a
// BigInt with a Float is a type mismatch. op is one of + - * / %.
func arithmetic(pos diagnostics.Position, op string, l, r Value) (Value, error) {
	if !isNumeric(l) || !isNumeric(r) {
		return nil, typeMismatch(pos, "arithmetic operator requires numeric operands")
	}
	_, lBig := l.(*BigInt)
	_, rBig := r.(*BigInt)
	if lBig || rBig {
		_, lFloat := l.(Float)
		_, rFloat := r.(Float)
		if lFloat || rFloat {
			return nil, typeMismatch(pos, "cannot mix BigInt and Float operands")
		}
		return bigArithmetic(pos, op, asBigInt(l), asBigInt(r))
	}
	_, lFloat := l.(Float)
	_, rFloat := r.(Float)
	if lFloat || rFloat {
		lf, _ := asFloat(l)
		rf, _ := asFloat(r)
		return floatArithmetic(pos, op, lf, rf)
	}
	li, _ := l.(Int)
	ri, _ := r.(Int)
	return intArithmetic(pos, op, int64(li), int64(ri))
}

func intArithmetic(pos diagnostics.Position, op string, l, r int64) (Value, error) {
	switch op {
	case "+":
		return Int(l + r), nil
	case "-":
		return Int(l - r), nil
	case "*":
		return Int(l * r), nil
	case "/":
		if r == 0 {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeDivisionByZero, pos)
		}
		return Int(l / r), nil
	case "%":
		if r == 0 {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeDivisionByZero, pos)
		}
		return Int(l % r), nil
	}
	return nil, typeMismatch(pos, "unknown arithmetic operator "+op)
}

func floatArithmetic(pos diagnostics.Position, op string, l, r float64) (Value, error) {
	switch op {
	case "+":
		return Float(l + r), nil
	case "-":
		return Float(l - r), nil
	case "*":
		return Float(l * r), nil
	case "/":
		return Float(l / r), nil
	case "%":
		return nil, typeMismatch(pos, "'%' is not defined on floats")
	}
	return nil, typeMismatch(pos, "unknown arithmetic operator "+op)
}

func bigArithmetic(pos diagnostics.Position, op string, l, r *big.Int) (Value, error) {
	out := new(big.Int)
	switch op {
	case "+":
		out.Add(l, r)
	case "-":
		out.Sub(l, r)
	case "*":
		out.Mul(l, r)
	case "/":
		if r.Sign() == 0 {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeDivisionByZero, pos)
		}
		out.Quo(l, r)
	case "%":
		if r.Sign() == 0 {
			return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeDivisionByZero, pos)
		}
		out.Rem(l, r)
	default:
		return nil, typeMismatch(pos, "unknown arithmetic operator "+op)
	}
	return &BigInt{V: out}, nil
}

// valuesEqual is structural equality after forcing both sides
// (spec.md §4.3): scalars compare by value, lists/records/constructors
// compare element-wise, forcing nested elements as needed.
func valuesEqual(a, b Value) (bool, error) {
	a, err := Force(a)
	if err != nil {
		return false, err
	}
	b, err = Force(b)
	if err != nil {
		return false, err
	}
	if isNumeric(a) && isNumeric(b) {
		cmp, err := compareNumeric(a, b)
		if err != nil {
			return false, err
		}
		return cmp == 0, nil
	}
	switch x := a.(type) {
	case Str:
		y, ok := b.(Str)
		return ok && x == y, nil
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y, nil
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false, nil
		}
		for i := range x.Elements {
			eq, err := valuesEqual(x.Elements[i], y.Elements[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *Record:
		y, ok := b.(*Record)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false, nil
		}
		for _, f := range x.Fields {
			yv, present := y.get(f.Name)
			if !present {
				return false, nil
			}
			eq, err := valuesEqual(f.Value, yv)
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *Constructor:
		y, ok := b.(*Constructor)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false, nil
		}
		for i := range x.Args {
			eq, err := valuesEqual(x.Args[i], y.Args[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *Function:
		return false, nil
	}
	return false, nil
}

func compareNumeric(a, b Value) (int, error) {
	_, aBig := a.(*BigInt)
	_, bBig := b.(*BigInt)
	if aBig || bBig {
		_, aFloat := a.(Float)
		_, bFloat := b.(Float)
		if aFloat || bFloat {
			return 0, typeMismatch(diagnostics.Position{}, "cannot mix BigInt and Float operands")
		}
		return asBigInt(a).Cmp(asBigInt(b)), nil
	}
	_, aFloat := a.(Float)
	_, bFloat := b.(Float)
	if aFloat || bFloat {
		af, _ := asFloat(a)
		bf, _ := asFloat(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	ai, bi := int64(a.(Int)), int64(b.(Int))
	switch {
	case ai < bi:
		return -1, nil
	case ai > bi:
		return 1, nil
	default:
		return 0, nil
	}
}

// compareValues implements the ordering operators: numeric comparison
// for numbers, lexicographic for strings, element-wise for lists of
// comparable elements (spec.md §4.3).
func compareValues(pos diagnostics.Position, a, b Value) (int, error) {
	if isNumeric(a) && isNumeric(b) {
		return compareNumeric(a, b)
	}
	if as, ok := a.(Str); ok {
		bs, ok := b.(Str)
		if !ok {
			return 0, typeMismatch(pos, "cannot compare string with non-string")
		}
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if al, ok := a.(*List); ok {
		bl, ok := b.(*List)
		if !ok {
			return 0, typeMismatch(pos, "cannot compare list with non-list")
		}
		n := len(al.Elements)
		if len(bl.Elements) < n {
			n = len(bl.Elements)
		}
		for i := 0; i < n; i++ {
			ea, err := Force(al.Elements[i])
			if err != nil {
				return 0, err
			}
			eb, err := Force(bl.Elements[i])
			if err != nil {
				return 0, err
			}
			c, err := compareValues(pos, ea, eb)
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		switch {
		case len(al.Elements) < len(bl.Elements):
			return -1, nil
		case len(al.Elements) > len(bl.Elements):
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, typeMismatch(pos, "values are not comparable")
}

// concat implements `++`: string concatenation or list concatenation.
func concat(pos diagnostics.Position, a, b Value) (Value, error) {
	if as, ok := a.(Str); ok {
		bs, ok := b.(Str)
		if !ok {
			return nil, typeMismatch(pos, "'++' requires both operands to be strings")
		}
		return as + bs, nil
	}
	if al, ok := a.(*List); ok {
		bl, ok := b.(*List)
		if !ok {
			return nil, typeMismatch(pos, "'++' requires both operands to be lists")
		}
		out := make([]Value, 0, len(al.Elements)+len(bl.Elements))
		out = append(out, al.Elements...)
		out = append(out, bl.Elements...)
		return &List{Elements: out}, nil
	}
	return nil, typeMismatch(pos, "'++' requires two strings or two lists")
}
