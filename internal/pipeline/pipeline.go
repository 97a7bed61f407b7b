// Package pipeline carries state between the lexer and parser stages
// so each stage can be driven, tested, and replaced independently.
package pipeline

import (
	"github.com/chrismichaelps/solis/internal/ast"
	"github.com/chrismichaelps/solis/internal/diagnostics"
	"github.com/chrismichaelps/solis/internal/token"
)

// Context flows through Process calls, accumulating tokens, the
// resulting AST, and any diagnostics raised along the way.
type Context struct {
	FilePath    string
	SourceCode  string
	TokenStream []token.Token
	Module      *ast.Module
	Errors      []*diagnostics.Error
}

// Processor is implemented by each pipeline stage (lexer, parser).
type Processor interface {
	Process(ctx *Context) *Context
}
