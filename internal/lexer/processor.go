package lexer

import (
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/token"
)

const lookaheadBufferSize = 10

// flatTokenStream drives the lexer with exprAllowed always true, a simplification
// for flat tokenization where no parser grammar context exists to
// disambiguate `/`. Neither the CLI `tokens` subcommand (it uses
// Lexer.AllTokens) nor the real Parser uses this type; the Parser drives
// *Lexer directly so it can supply the correct exprAllowed/regexp/template
// context at every token.
type flatTokenStream struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

// NewTokenStream wraps l as a pipeline.TokenStream for consumers that only
// need a flat, context-free token sequence.
func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &flatTokenStream{l: l}
}

func (bl *flatTokenStream) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		tok := bl.buffer[bl.pos]
		bl.pos++
		return tok
	}
	return bl.l.NextToken(true)
}

func (bl *flatTokenStream) Peek(n int) []token.Token {
	if len(bl.buffer)-bl.pos == 0 {
		bl.buffer = append(bl.buffer, bl.l.NextToken(true))
	}
	for len(bl.buffer)-bl.pos < n {
		next := bl.buffer[len(bl.buffer)-1]
		if next.Type == token.EOF {
			break
		}
		bl.buffer = append(bl.buffer, bl.l.NextToken(true))
	}
	if bl.pos > lookaheadBufferSize {
		bl.buffer = bl.buffer[bl.pos:]
		bl.pos = 0
	}
	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}
	return bl.buffer[bl.pos:end]
}

var _ pipeline.TokenStream = (*flatTokenStream)(nil)

// Processor implements pipeline.Processor: it tokenizes ctx.SourceCode into
// a flat TokenStream for pipeline consumers that want tokens without
// running the full parser.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	if ctx.Options.AllowHashBang {
		l.ReadHashbang()
	}
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}
