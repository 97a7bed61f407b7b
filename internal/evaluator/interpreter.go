package evaluator

import "github.com/chrismichaelps/solis/internal/ast"

// ModuleResolver is the external hook an embedder attaches to resolve
// import declarations to other modules. The core never implements
// resolution itself (spec.md §9: "the resolver's behavior is an
// external concern") — it only carries the handle.
type ModuleResolver interface {
	Resolve(path []string) (*ast.Module, error)
}

// NamespaceManager is the external hook that tracks qualified and
// unqualified symbol visibility across resolved modules (spec.md §9).
type NamespaceManager interface {
	Qualified(qualifier, name string) (interface{}, bool)
	Unqualified(name string) ([]interface{}, bool)
}

// Interpreter is the single stateful object of a program evaluation
// (spec.md §9: "construct one per program evaluation"). It owns the
// global environment, the running list of installed declarations, and
// the external-collaborator hooks described in §6.
type Interpreter struct {
	env            *Environment
	declarations   []ast.Decl
	currentDir     string
	moduleResolver ModuleResolver
	namespaceMgr   NamespaceManager
}

// New constructs an Interpreter with a fresh global environment
// pre-populated with the builtin bindings.
func New() *Interpreter {
	env := NewEnvironment()
	for name, v := range Builtins() {
		env.Set(name, v)
	}
	return &Interpreter{env: env}
}

// EvalExpr evaluates expr under the interpreter's global environment.
func (i *Interpreter) EvalExpr(expr ast.Expression) (Value, error) {
	return Eval(expr, i.env)
}

// EvalExprIn evaluates expr under an explicit environment, for
// callers (tests, a REPL) that want a scratch frame distinct from the
// global one.
func (i *Interpreter) EvalExprIn(expr ast.Expression, env *Environment) (Value, error) {
	return Eval(expr, env)
}

// EvalDecl installs decl into the global environment without
// retaining it in GetDeclarations (spec.md §6: distinct from
// EvalAndStore).
func (i *Interpreter) EvalDecl(decl ast.Decl) error {
	return EvalDecl(decl, i.env)
}

// EvalAndStore installs decl and retains it so GetDeclarations can
// return it later (spec.md §6: "takes ownership and retains the AST
// so that thunks holding references remain valid").
func (i *Interpreter) EvalAndStore(decl ast.Decl) error {
	if err := EvalDecl(decl, i.env); err != nil {
		return err
	}
	i.declarations = append(i.declarations, decl)
	return nil
}

// EvalModule installs every declaration of mod in source order,
// stopping at (and returning) the first error. Because the global
// environment is shared and mutated only by successful Set calls,
// earlier successful declarations remain visible even if a later one
// fails (spec.md §7: errors never mutate the environment for the
// declaration that failed, but prior ones already committed stand).
func (i *Interpreter) EvalModule(mod *ast.Module) error {
	for _, decl := range mod.Decls {
		if err := i.EvalAndStore(decl); err != nil {
			return err
		}
	}
	return nil
}

// AddBinding installs a single name/value pair directly, bypassing
// declaration parsing — the embedding surface's escape hatch (spec.md
// §6: "add_binding").
func (i *Interpreter) AddBinding(name string, v Value) {
	i.env.Set(name, v)
}

// ValueToString renders v the way the REPL/CLI prints results.
func (i *Interpreter) ValueToString(v Value) (string, error) {
	return ValueToString(v)
}

// GetBindingNames returns every name bound at the top level, in
// insertion order.
func (i *Interpreter) GetBindingNames() []string {
	return i.env.Names()
}

// GetBinding looks up a top-level binding by name.
func (i *Interpreter) GetBinding(name string) (Value, bool) {
	return i.env.Get(name)
}

// HasBinding reports whether name is bound at the top level.
func (i *Interpreter) HasBinding(name string) bool {
	return i.env.Has(name)
}

// GetDeclarations returns every declaration installed via
// EvalAndStore, in installation order.
func (i *Interpreter) GetDeclarations() []ast.Decl {
	out := make([]ast.Decl, len(i.declarations))
	copy(out, i.declarations)
	return out
}

// SetModuleResolver attaches the external module resolver hook.
func (i *Interpreter) SetModuleResolver(r ModuleResolver) { i.moduleResolver = r }

// GetModuleResolver returns the attached module resolver hook, if any.
func (i *Interpreter) GetModuleResolver() ModuleResolver { return i.moduleResolver }

// SetNamespaceManager attaches the external namespace manager hook.
func (i *Interpreter) SetNamespaceManager(n NamespaceManager) { i.namespaceMgr = n }

// GetNamespaceManager returns the attached namespace manager hook, if any.
func (i *Interpreter) GetNamespaceManager() NamespaceManager { return i.namespaceMgr }

// SetCurrentDirectory records the directory relative module imports
// resolve against.
func (i *Interpreter) SetCurrentDirectory(dir string) { i.currentDir = dir }

// GetCurrentDirectory returns the directory set by SetCurrentDirectory.
func (i *Interpreter) GetCurrentDirectory() string { return i.currentDir }

// GlobalEnv exposes the interpreter's global environment directly, for
// callers (e.g. the CLI) that need to extend it before evaluation.
func (i *Interpreter) GlobalEnv() *Environment { return i.env }
