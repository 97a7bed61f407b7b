package ast

import "github.com/chrismichaelps/solis/internal/token"

// FunctionDecl is `let name p1 p2 ... [: Type] = body`. With zero
// parameters this installs a memoizing thunk; with one or more it
// installs a curried Function value (spec.md §4.4).
type FunctionDecl struct {
	Token      token.Token // the `let` token; the method name token for impl methods
	Name       string
	TypeAnnot  TypeExpr // nil if absent
	Params     []Pattern
	Body       Expression
	EndToken   token.Token // last token of the body; span start..end is the decl's source location
}

func (d *FunctionDecl) declNode()         {}
func (d *FunctionDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *FunctionDecl) GetToken() token.Token { return d.Token }

// TypeParam is a type-declaration parameter: a bare name, or
// `(name : kind)` whose kind is parsed but not used by the core
// (spec.md §4.2: "kind is parsed and currently discarded").
type TypeParam struct {
	Name string
	Kind TypeExpr // nil unless explicitly annotated
}

// TypeRHS is the right-hand side of a type/data declaration: a record
// shape, an ADT constructor list, or an alias to another type.
type TypeRHS interface {
	typeRHSNode()
}

// RecordFieldType is one `name : Type` entry of a record type.
type RecordFieldType struct {
	Name string
	Type TypeExpr
}

// RecordRHS is `type Name = { f1 : T1, f2 : T2 }`.
type RecordRHS struct {
	Fields []RecordFieldType
}

func (RecordRHS) typeRHSNode() {}

// ConstructorDef is one `Con Type*` alternative of an ADT.
type ConstructorDef struct {
	Name string
	Args []TypeExpr
}

// ADTRHS is `data Name = Con1 T* | Con2 T* | ...`.
type ADTRHS struct {
	Constructors []ConstructorDef
}

func (ADTRHS) typeRHSNode() {}

// AliasRHS is `type Name = SomeType`.
type AliasRHS struct {
	Type TypeExpr
}

func (AliasRHS) typeRHSNode() {}

// TypeDecl is a `type` or `data` declaration.
type TypeDecl struct {
	Token      token.Token // the `type` or `data` token
	Name       string
	TypeParams []TypeParam
	RHS        TypeRHS
}

func (d *TypeDecl) declNode()         {}
func (d *TypeDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *TypeDecl) GetToken() token.Token { return d.Token }

// MethodSig is one `method :: Type` signature inside a trait.
type MethodSig struct {
	Name string
	Type TypeExpr
}

// TraitDecl is `trait Name p1 p2 ... where method :: Type ...`.
type TraitDecl struct {
	Token      token.Token // the `trait` token
	Name       string
	TypeParams []TypeParam
	Methods    []MethodSig
}

func (d *TraitDecl) declNode()         {}
func (d *TraitDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *TraitDecl) GetToken() token.Token { return d.Token }

// ImplDecl is either a structural impl (`impl Type { ... }`, TraitName
// empty) or a classic trait impl (`impl Trait Type where ...`).
type ImplDecl struct {
	Token     token.Token // the `impl` token
	TraitName string      // "" for structural impls
	Target    TypeExpr
	Methods   []*FunctionDecl
}

func (d *ImplDecl) declNode()         {}
func (d *ImplDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *ImplDecl) GetToken() token.Token { return d.Token }

// ModuleDecl is the optional `module A.B.C (exports) where` header.
type ModuleDecl struct {
	Token   token.Token // the `module` token
	Name    []string    // dotted segments, e.g. ["A", "B", "C"]
	Exports []string    // nil when no export list was given
}

func (d *ModuleDecl) declNode()         {}
func (d *ModuleDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *ModuleDecl) GetToken() token.Token { return d.Token }

// ImportDecl is `import [qualified] A.B.C [as Alias] [hiding (ids)|(ids)]`.
// Hiding and Only are mutually exclusive per spec.md §4.2.
type ImportDecl struct {
	Token     token.Token // the `import` token
	Qualified bool
	Path      []string
	Alias     string // "" if absent
	Hiding    []string
	Only      []string
}

func (d *ImportDecl) declNode()         {}
func (d *ImportDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *ImportDecl) GetToken() token.Token { return d.Token }
