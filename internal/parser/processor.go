package parser

import "github.com/funvibe/ecmaparse/internal/pipeline"

// Processor implements pipeline.Processor: it runs the full parser over
// ctx.SourceCode with ctx.Options, populating ctx.AstRoot and appending any
// diagnostics to ctx.Errors. Unlike lexer.Processor it does not consume
// ctx.TokenStream -- the parser drives its own lexer directly so it can
// supply the exprAllowed/template context token-by-token (spec.md §3).
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, errs := Parse(ctx.SourceCode, ctx.Options)
	ctx.AstRoot = prog
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
