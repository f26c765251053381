// Package pipeline chains two stages: a lexer.Processor producing a
// pipeline.TokenStream, then a parser.Processor that parses ctx.SourceCode
// into a *ast.Program with its own lexer. Kept deliberately generic (it only knows
// about Processor/PipelineContext, not about tokens or AST nodes) so either
// stage can be swapped or tested in isolation; internal/parser/processor.go
// and internal/lexer/processor.go are where the ecmaparse-specific wiring
// actually lives.
package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline that runs processors in order; the ecmaparse stages
// are &lexer.Processor{} and &parser.Processor{} (Process has pointer
// receivers).
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, threading the same PipelineContext through
// every stage in order. Recoverable diagnostics accumulate on
// ctx.Errors without stopping the run; a Fatal parse error never reaches
// Run as a panic, because the parser stage calls the public Parse in
// internal/parser/parser.go, whose one recover point returns it as an error.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
