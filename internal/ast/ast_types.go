package ast

import "github.com/chrismichaelps/solis/internal/token"

// TypeVar is a lowercase type variable, e.g. `a` in `List a`.
type TypeVar struct {
	Token token.Token
	Name  string
}

func (t *TypeVar) typeNode()         {}
func (t *TypeVar) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeVar) GetToken() token.Token { return t.Token }

// TypeCon is a named type constructor applied to zero or more
// argument types, e.g. `Int`, `Maybe a`, `List Int`. `[T]` sugar
// desugars to TypeCon{Name: "List", Args: []TypeExpr{T}} at parse
// time (spec.md §4.2.3).
type TypeCon struct {
	Token token.Token
	Name  string
	Args  []TypeExpr
}

func (t *TypeCon) typeNode()         {}
func (t *TypeCon) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeCon) GetToken() token.Token { return t.Token }

// TypeApp is left-associative juxtaposition of a type-level function
// and an argument, for applications the TypeCon sugar doesn't already
// cover (e.g. a type variable applied to an argument: `f a`).
type TypeApp struct {
	Token token.Token
	Fn    TypeExpr
	Arg   TypeExpr
}

func (t *TypeApp) typeNode()         {}
func (t *TypeApp) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeApp) GetToken() token.Token { return t.Token }

// TypeArrow is a right-associative function type `From -> To`.
type TypeArrow struct {
	Token token.Token // the `->` token
	From  TypeExpr
	To    TypeExpr
}

func (t *TypeArrow) typeNode()         {}
func (t *TypeArrow) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeArrow) GetToken() token.Token { return t.Token }

// Forall is a universal quantifier `forall a b . Type`.
type Forall struct {
	Token token.Token
	Vars  []string
	Body  TypeExpr
}

func (t *Forall) typeNode()         {}
func (t *Forall) TokenLiteral() string { return t.Token.Lexeme }
func (t *Forall) GetToken() token.Token { return t.Token }

// Exists is an existential quantifier `exists a . Type`.
type Exists struct {
	Token token.Token
	Vars  []string
	Body  TypeExpr
}

func (t *Exists) typeNode()         {}
func (t *Exists) TokenLiteral() string { return t.Token.Lexeme }
func (t *Exists) GetToken() token.Token { return t.Token }
