package evaluator

// Environment is an ordered, chained name→value mapping (spec.md §3).
// Lookups walk outward through parents; Set always binds in the
// receiver's own frame, so rebinding a name shadows an outer binding
// without mutating it (spec.md's invariant: "a binding, once
// installed, is never mutated").
type Environment struct {
	vars   map[string]Value
	order  []string
	parent *Environment
}

// NewEnvironment returns an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Extend returns a new child frame whose lookups fall back to e.
func (e *Environment) Extend() *Environment {
	return &Environment{vars: make(map[string]Value), parent: e}
}

// Get looks up name, walking outward through parent frames.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name to v in this frame, shadowing any outer binding of
// the same name for lookups through this frame.
func (e *Environment) Set(name string, v Value) {
	if _, exists := e.vars[name]; !exists {
		e.order = append(e.order, name)
	}
	e.vars[name] = v
}

// Has reports whether name is bound in this frame or an ancestor.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Names returns the names bound directly in this frame, in the order
// they were first set.
func (e *Environment) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}
