// Package modules provides a default, filesystem-backed implementation
// of the evaluator's ModuleResolver and NamespaceManager hooks. The
// core evaluator never implements import resolution itself (spec.md
// §9: "the resolver's behavior is an external concern") — this package
// is the concrete collaborator the CLI wires in, the same way the
// teacher keeps module/package resolution out of its core evaluator
// and pushed into a separate loader.
package modules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/config"
	"github.com/chrismichaelps/solis/internal/lexer"
	"github.com/chrismichaelps/solis/internal/parser"
)

// Resolver resolves a dotted module path (e.g. []string{"List", "Extra"})
// to a parsed module by locating "List/Extra.solis" under Root.
type Resolver struct {
	Root  string
	cache map[string]*ast.Module
}

// NewResolver constructs a Resolver rooted at dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{Root: dir, cache: make(map[string]*ast.Module)}
}

// Resolve implements evaluator.ModuleResolver.
func (r *Resolver) Resolve(path []string) (*ast.Module, error) {
	key := strings.Join(path, ".")
	if mod, ok := r.cache[key]; ok {
		return mod, nil
	}
	rel := filepath.Join(path...) + config.FileExtension
	full := filepath.Join(r.Root, rel)
	src, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	toks := lexer.Tokenize(string(src))
	p := parser.New(toks)
	mod, errs := p.ParseModule()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	r.cache[key] = mod
	return mod, nil
}

// Symbol is the bookkeeping unit the NamespaceManager tracks: a name
// exported by a specific module path, paired with the declaration that
// introduced it.
type Symbol struct {
	ModulePath []string
	Decl       ast.Decl
}

// Namespace tracks qualified ("Qualifier.name") and unqualified
// ("name") symbol visibility across every module resolved so far
// (spec.md §9). Multiple unqualified imports can shadow-collide on the
// same bare name, so Unqualified returns every candidate and leaves
// ambiguity resolution to the caller.
type Namespace struct {
	qualified   map[string]map[string]Symbol
	unqualified map[string][]Symbol
}

// NewNamespace constructs an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		qualified:   make(map[string]map[string]Symbol),
		unqualified: make(map[string][]Symbol),
	}
}

// AddQualified registers sym under qualifier.name.
func (n *Namespace) AddQualified(qualifier, name string, sym Symbol) {
	bucket, ok := n.qualified[qualifier]
	if !ok {
		bucket = make(map[string]Symbol)
		n.qualified[qualifier] = bucket
	}
	bucket[name] = sym
}

// AddUnqualified registers sym as additionally reachable by its bare name.
func (n *Namespace) AddUnqualified(name string, sym Symbol) {
	n.unqualified[name] = append(n.unqualified[name], sym)
}

// Qualified implements evaluator.NamespaceManager.
func (n *Namespace) Qualified(qualifier, name string) (interface{}, bool) {
	bucket, ok := n.qualified[qualifier]
	if !ok {
		return nil, false
	}
	sym, ok := bucket[name]
	return sym, ok
}

// Unqualified implements evaluator.NamespaceManager.
func (n *Namespace) Unqualified(name string) ([]interface{}, bool) {
	syms, ok := n.unqualified[name]
	if !ok {
		return nil, false
	}
	out := make([]interface{}, len(syms))
	for i, s := range syms {
		out[i] = s
	}
	return out, true
}
