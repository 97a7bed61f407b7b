// Package evaluator implements solis's call-by-need tree-walking
// interpreter: the runtime value model, environments, thunks, pattern
// matching, and the eval dispatch table of spec.md §4.4.
package evaluator

import "math/big"

// Value is the closed sum of every runtime value (spec.md §3). Unlike
// the AST's Node, Value carries no common behavior beyond tagging —
// each evaluator function switches on the concrete type it expects.
type Value interface {
	valueNode()
}

// Int is a 64-bit signed machine integer.
type Int int64

func (Int) valueNode() {}

// Float is an IEEE-754 double.
type Float float64

func (Float) valueNode() {}

// Str is a string value.
type Str string

func (Str) valueNode() {}

// Bool is a boolean value.
type Bool bool

func (Bool) valueNode() {}

// BigInt is an arbitrary-precision signed integer (spec.md §4.5).
type BigInt struct {
	V *big.Int
}

func (*BigInt) valueNode() {}

// List is a finite ordered sequence of value handles. The cons cell
// `x :: xs` is a List produced by prepending x to xs's forced
// elements, not a Constructor (spec.md §3).
type List struct {
	Elements []Value
}

func (*List) valueNode() {}

// RecordFieldValue pairs a field name with its value handle,
// preserving declaration order for formatting.
type RecordFieldValue struct {
	Name  string
	Value Value
}

// Record is an ordered field→value mapping.
type Record struct {
	Fields []RecordFieldValue
}

func (*Record) valueNode() {}

func (r *Record) get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Constructor is a tagged tuple `(name, [v1...vn])` produced by
// applying a data constructor; nullary constructors carry no args.
type Constructor struct {
	Name string
	Args []Value
}

func (*Constructor) valueNode() {}

// Function is a one-argument mapping from a Value handle to a Value
// handle. Both user lambdas/curried constructors and native builtins
// are represented as a Go closure — there is no separate AST-walking
// "Closure" type, since a Go func already closes over whatever
// environment it needs (spec.md §9: "closing over an Environment").
type Function struct {
	Name  string // for diagnostics and value_to_string; may be ""
	Apply func(arg Value) (Value, error)
}

func (*Function) valueNode() {}

// Thunk is a suspended computation with a one-shot memoization cell
// and reentrancy detection (spec.md §4.4, §9).
type Thunk struct {
	compute func() (Value, error)
	cache   Value
	cached  bool
	forcing bool
}

func (*Thunk) valueNode() {}

// NewThunk wraps a deferred computation. compute is guaranteed to run
// at most once across the thunk's lifetime (spec.md §8): Force caches
// its result, or its error, on first use.
func NewThunk(compute func() (Value, error)) *Thunk {
	return &Thunk{compute: compute}
}

// Ready wraps an already-known value as a pre-forced thunk; useful
// when a caller needs a Value handle but has no deferred work to do.
func Ready(v Value) *Thunk {
	return &Thunk{cache: v, cached: true}
}
