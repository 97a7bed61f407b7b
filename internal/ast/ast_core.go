// Package ast defines the tree produced by the parser: expressions,
// patterns, type expressions, and declarations, plus the Module that
// collects them. Each variant is a closed sum implemented as a small
// concrete struct carrying its defining token for error reporting.
package ast

import "github.com/chrismichaelps/solis/internal/token"

// Node is the base of every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Expression is a Node that yields a runtime value.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a Node that can be matched against a runtime value.
type Pattern interface {
	Node
	patternNode()
}

// TypeExpr is a Node describing a type (never evaluated; carried for
// the benefit of the external type checker).
type TypeExpr interface {
	Node
	typeNode()
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Module is the root of every parsed source file: an optional module
// header, its imports, and its declarations in source order (though
// order does not affect name resolution — see spec.md §3 invariants).
type Module struct {
	Header  *ModuleDecl // nil if the source had no `module ... where` header
	Imports []*ImportDecl
	Decls   []Decl
}

func (m *Module) TokenLiteral() string {
	if m.Header != nil {
		return m.Header.TokenLiteral()
	}
	if len(m.Decls) > 0 {
		return m.Decls[0].TokenLiteral()
	}
	return ""
}

func (m *Module) GetToken() token.Token {
	if m.Header != nil {
		return m.Header.GetToken()
	}
	if len(m.Decls) > 0 {
		return m.Decls[0].GetToken()
	}
	return token.Token{}
}
