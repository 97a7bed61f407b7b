package ast

import (
	"math/big"

	"github.com/chrismichaelps/solis/internal/token"
)

// Var is a bare identifier or constructor name used as a value.
type Var struct {
	Token token.Token
	Name  string
}

func (v *Var) expressionNode()      {}
func (v *Var) TokenLiteral() string { return v.Token.Lexeme }
func (v *Var) GetToken() token.Token { return v.Token }

// IntLit is a 64-bit signed integer literal.
type IntLit struct {
	Token token.Token
	Value int64
}

func (l *IntLit) expressionNode()      {}
func (l *IntLit) TokenLiteral() string { return l.Token.Lexeme }
func (l *IntLit) GetToken() token.Token { return l.Token }

// FloatLit is an IEEE-754 double literal.
type FloatLit struct {
	Token token.Token
	Value float64
}

func (l *FloatLit) expressionNode()      {}
func (l *FloatLit) TokenLiteral() string { return l.Token.Lexeme }
func (l *FloatLit) GetToken() token.Token { return l.Token }

// StringLit is a double-quoted string literal with escapes resolved.
type StringLit struct {
	Token token.Token
	Value string
}

func (l *StringLit) expressionNode()      {}
func (l *StringLit) TokenLiteral() string { return l.Token.Lexeme }
func (l *StringLit) GetToken() token.Token { return l.Token }

// BoolLit is `true` or `false`.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (l *BoolLit) expressionNode()      {}
func (l *BoolLit) TokenLiteral() string { return l.Token.Lexeme }
func (l *BoolLit) GetToken() token.Token { return l.Token }

// BigIntLit is an arbitrary-precision integer literal (`123n`).
type BigIntLit struct {
	Token token.Token
	Value *big.Int
}

func (l *BigIntLit) expressionNode()      {}
func (l *BigIntLit) TokenLiteral() string { return l.Token.Lexeme }
func (l *BigIntLit) GetToken() token.Token { return l.Token }

// Lambda is `\p1 p2 ... -> body`.
type Lambda struct {
	Token   token.Token // the `\` token
	Params  []Pattern
	Body    Expression
}

func (l *Lambda) expressionNode()      {}
func (l *Lambda) TokenLiteral() string { return l.Token.Lexeme }
func (l *Lambda) GetToken() token.Token { return l.Token }

// App is unary function application; multi-argument calls are
// left-nested Apps (`f a b` parses as `App(App(f, a), b)`).
type App struct {
	Token token.Token // the token starting the function expression
	Fn    Expression
	Arg   Expression
}

func (a *App) expressionNode()      {}
func (a *App) TokenLiteral() string { return a.Token.Lexeme }
func (a *App) GetToken() token.Token { return a.Token }

// Let is `let pat = value [; | in] body`. Body defaults to a
// BoolLit(true) placeholder when neither `;` nor `in` follows Value.
type Let struct {
	Token   token.Token // the `let` token
	Pattern Pattern
	Value   Expression
	Body    Expression
}

func (l *Let) expressionNode()      {}
func (l *Let) TokenLiteral() string { return l.Token.Lexeme }
func (l *Let) GetToken() token.Token { return l.Token }

// MatchArm is one `pattern => body` arm of a Match.
type MatchArm struct {
	Pattern Pattern
	Body    Expression
}

// Match is `match scrutinee { arm, arm, ... }`.
type Match struct {
	Token     token.Token // the `match` token
	Scrutinee Expression
	Arms      []MatchArm
}

func (m *Match) expressionNode()      {}
func (m *Match) TokenLiteral() string { return m.Token.Lexeme }
func (m *Match) GetToken() token.Token { return m.Token }

// If is either surface syntax (`if c then a else b` or
// `if c { a } else { b }`); both parse to this one node.
type If struct {
	Token token.Token // the `if` token
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (i *If) expressionNode()      {}
func (i *If) TokenLiteral() string { return i.Token.Lexeme }
func (i *If) GetToken() token.Token { return i.Token }

// BinOp is an infix binary operator application. Per spec.md §4.2/§9,
// operators are right-associative with no precedence: the parser
// builds these right-leaning, never grouped by precedence.
type BinOp struct {
	Token token.Token // the operator token
	Op    string
	Left  Expression
	Right Expression
}

func (b *BinOp) expressionNode()      {}
func (b *BinOp) TokenLiteral() string { return b.Token.Lexeme }
func (b *BinOp) GetToken() token.Token { return b.Token }

// ListLit is `[e1, e2, ...]` or `[]`.
type ListLit struct {
	Token    token.Token // the `[` token
	Elements []Expression
}

func (l *ListLit) expressionNode()      {}
func (l *ListLit) TokenLiteral() string { return l.Token.Lexeme }
func (l *ListLit) GetToken() token.Token { return l.Token }

// RecordField pairs a field name with its value expression,
// preserving source order (spec.md §3: "ordered map field→expression").
type RecordField struct {
	Name  string
	Value Expression
}

// RecordLit is `{ f1 = e1, f2 = e2, ... }` or `{}`.
type RecordLit struct {
	Token  token.Token // the `{` token
	Fields []RecordField
}

func (r *RecordLit) expressionNode()      {}
func (r *RecordLit) TokenLiteral() string { return r.Token.Lexeme }
func (r *RecordLit) GetToken() token.Token { return r.Token }

// RecordAccess is `record.field`.
type RecordAccess struct {
	Token  token.Token // the `.` token
	Record Expression
	Field  string
}

func (r *RecordAccess) expressionNode()      {}
func (r *RecordAccess) TokenLiteral() string { return r.Token.Lexeme }
func (r *RecordAccess) GetToken() token.Token { return r.Token }

// RecordUpdate is `{ base | f1 = e1, f2 = e2, ... }`.
type RecordUpdate struct {
	Token   token.Token // the `{` token
	Base    Expression
	Updates []RecordField
}

func (r *RecordUpdate) expressionNode()      {}
func (r *RecordUpdate) TokenLiteral() string { return r.Token.Lexeme }
func (r *RecordUpdate) GetToken() token.Token { return r.Token }

// Block is a braced `{ s1; s2; ...; sN }` sequence. IsDo records
// whether the block was introduced by `do` purely for formatter
// round-trip (spec.md glossary: "Do-block"); it has no semantic
// effect on evaluation.
type Block struct {
	Token      token.Token // the `{` token
	Statements []Expression
	IsDo       bool
}

func (b *Block) expressionNode()      {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token { return b.Token }

// Bind is a monadic-bind statement `pat <- action ; body` inside a
// braced block.
type Bind struct {
	Token   token.Token // the `{` token opening the bind
	Pattern Pattern
	Action  Expression
	Body    Expression
}

func (b *Bind) expressionNode()      {}
func (b *Bind) TokenLiteral() string { return b.Token.Lexeme }
func (b *Bind) GetToken() token.Token { return b.Token }

// Strict is the prefix `!e` strict-force marker.
type Strict struct {
	Token    token.Token // the `!` token
	Operand  Expression
}

func (s *Strict) expressionNode()      {}
func (s *Strict) TokenLiteral() string { return s.Token.Lexeme }
func (s *Strict) GetToken() token.Token { return s.Token }
