package pipeline

import (
	"github.com/funvibe/ecmaparse/internal/token"
)

// Processor is any component that can process a
// PipelineContext and return a modified context. ecmaparse has exactly two:
// internal/lexer's Processor, which fills in ctx.TokenStream, and
// internal/parser's Processor, which parses ctx.SourceCode with its own
// lexer (it does not read ctx.TokenStream) and fills in ctx.AstRoot.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream defines the contract for a buffered token stream with
// lookahead (Peek as well as Next). The parser does not consume it; it
// drives *lexer.Lexer directly.
type TokenStream interface {
	// Next consumes and returns the next token from the stream.
	Next() token.Token

	// Peek returns the next n tokens without consuming them.
	// If the stream has fewer than n tokens, it returns all remaining tokens.
	Peek(n int) []token.Token
}
