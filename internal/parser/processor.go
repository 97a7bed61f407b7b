package parser

import "github.com/chrismichaelps/solis/internal/pipeline"

// Processor is the pipeline.Processor adapter that drives the parser
// over ctx.TokenStream and stores the resulting module (and any
// diagnostics) back onto the context.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	parser := New(ctx.TokenStream)
	module, errs := parser.ParseModule()
	ctx.Module = module
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
