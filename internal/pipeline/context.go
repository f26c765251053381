package pipeline

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/config"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
)

// PipelineContext holds all the data passed between pipeline stages: the
// lexer/parser processors read and write it in sequence as the Pipeline
// runs them.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // path to the source file, if any
	TokenStream TokenStream
	AstRoot     *ast.Program
	Options     config.Options
	Errors      []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext with the
// default Options; callers that need non-default options set ctx.Options
// after construction, before running the pipeline.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Options:    config.Default(),
		Errors:     []*diagnostics.DiagnosticError{},
	}
}
