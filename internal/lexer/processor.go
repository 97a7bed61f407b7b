package lexer

import (
	"github.com/chrismichaelps/solis/internal/pipeline"
)

// Processor is the pipeline.Processor adapter that drives the lexer
// over ctx.SourceCode and stores the resulting token stream.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.TokenStream = Tokenize(ctx.SourceCode)
	return ctx
}
