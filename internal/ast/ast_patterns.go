package ast

import "github.com/chrismichaelps/solis/internal/token"

// WildcardPat is `_`: always matches, binds nothing.
type WildcardPat struct {
	Token token.Token
}

func (p *WildcardPat) patternNode()       {}
func (p *WildcardPat) TokenLiteral() string { return p.Token.Lexeme }
func (p *WildcardPat) GetToken() token.Token { return p.Token }

// VarPat binds the matched value (unforced) to Name.
type VarPat struct {
	Token token.Token
	Name  string
}

func (p *VarPat) patternNode()       {}
func (p *VarPat) TokenLiteral() string { return p.Token.Lexeme }
func (p *VarPat) GetToken() token.Token { return p.Token }

// LitPat matches a literal value (int, float, string, bool, big-int).
type LitPat struct {
	Token token.Token
	Value Expression // one of the *Lit expression nodes, for its value
}

func (p *LitPat) patternNode()       {}
func (p *LitPat) TokenLiteral() string { return p.Token.Lexeme }
func (p *LitPat) GetToken() token.Token { return p.Token }

// ListPat matches a list of exactly len(Elements) items.
type ListPat struct {
	Token    token.Token // the `[` token
	Elements []Pattern
}

func (p *ListPat) patternNode()       {}
func (p *ListPat) TokenLiteral() string { return p.Token.Lexeme }
func (p *ListPat) GetToken() token.Token { return p.Token }

// ConsPat matches a constructor application `Name p1 p2 ...`. The
// cons cell `x :: xs` is represented with Constructor == "::" (see
// spec.md §3); list-headed values are recognized specially for this
// one constructor name during matching rather than built as
// Constructor runtime values.
type ConsPat struct {
	Token       token.Token
	Constructor string
	Args        []Pattern
}

func (p *ConsPat) patternNode()       {}
func (p *ConsPat) TokenLiteral() string { return p.Token.Lexeme }
func (p *ConsPat) GetToken() token.Token { return p.Token }

// RecordFieldPat pairs a field name with its subpattern.
type RecordFieldPat struct {
	Name    string
	Pattern Pattern
}

// RecordPat matches a record whose named fields each satisfy their
// subpattern; extra fields in the value are ignored.
type RecordPat struct {
	Token  token.Token // the `{` token
	Fields []RecordFieldPat
}

func (p *RecordPat) patternNode()       {}
func (p *RecordPat) TokenLiteral() string { return p.Token.Lexeme }
func (p *RecordPat) GetToken() token.Token { return p.Token }
