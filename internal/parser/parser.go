// Package parser implements the ECMAScript statement and expression parser:
// a recursive-descent driver over an operator-precedence expression
// subparser, with supporting machinery for destructuring conversion,
// lvalue validation, scope/label tracking, and class private-name
// resolution.
package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/config"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/lexer"
	"github.com/funvibe/ecmaparse/internal/token"
)

// Parser owns all mutable state for one parse: the lexer it pulls tokens
// from, the current/previous token, and every contextual stack spec.md §3
// lists under "Parser state". Re-entrancy happens only through the
// parser's own recursive descent; there is no concurrent mutation.
type Parser struct {
	lex    *lexer.Lexer
	opts   config.Options
	source string

	cur           token.Token
	exprAllowed   bool // drives the lexer's division-vs-regexp disambiguation
	lastTokEnd    int
	lastTokEndLoc ast.Position

	strict   bool
	inModule bool

	yieldPos      int
	awaitPos      int
	awaitIdentPos int

	potentialArrowAt         int
	potentialArrowInForAwait bool

	labels           []labelRecord
	scopeStack       []*scope
	privateNameStack []*privateNameFrame

	undefinedExports map[string]int
	exports          map[string]bool

	errors []*diagnostics.DiagnosticError
}

// labelRecord is one entry of the label stack (spec.md §4.C3): name is
// empty for an unlabeled loop/switch frame; kind is "loop", "switch", or
// "" for a labeled statement wrapping neither.
type labelRecord struct {
	name           string
	kind           string
	statementStart int
}

const noPos = -1

// NewParser constructs a Parser over source with the given options, ready
// for a single call to its parseTopLevel driver (wrapped by the package
// level Parse function).
func NewParser(source string, opts config.Options) *Parser {
	p := &Parser{
		source:           source,
		opts:             opts,
		inModule:         opts.SourceType == config.SourceTypeModule,
		yieldPos:         noPos,
		awaitPos:         noPos,
		awaitIdentPos:    noPos,
		potentialArrowAt: noPos,
		undefinedExports: make(map[string]int),
		exports:          make(map[string]bool),
	}
	p.strict = p.inModule
	p.lex = lexer.New(source)
	if opts.AllowHashBang {
		p.lex.ReadHashbang()
	}
	p.exprAllowed = true
	p.init()
	return p
}

// Parse runs the parser to completion, recovering a Fatal diagnostic raised
// anywhere in the call tree (this package's only recover point, per
// spec.md §5) and returning it as the sole error alongside whatever
// Recoverable diagnostics were collected before the fatal one.
func Parse(source string, opts config.Options) (prog *ast.Program, errs []*diagnostics.DiagnosticError) {
	p := NewParser(source, opts)
	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*diagnostics.DiagnosticError); ok {
				errs = append(p.errors, de)
				return
			}
			panic(r)
		}
	}()
	prog = p.parseTopLevel()
	errs = p.errors
	return prog, errs
}

// next advances past the current token, recording its end as the position
// the next node-finishing call will use.
func (p *Parser) next() {
	p.lastTokEnd = p.cur.End
	p.lastTokEndLoc = ast.Position{Line: p.cur.Line, Column: p.cur.Column + (p.cur.End - p.cur.Start)}
	p.cur = p.lex.NextToken(p.exprAllowed)
	p.exprAllowed = p.cur.Type.BeforeExpr
}

// init reads the first token, bootstrapping cur.
func (p *Parser) init() {
	p.cur = p.lex.NextToken(true)
	p.exprAllowed = p.cur.Type.BeforeExpr
}

func (p *Parser) is(t token.Type) bool { return p.cur.Type.Label == t.Label }

func (p *Parser) eat(t token.Type) bool {
	if p.is(t) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(t token.Type) {
	if !p.eat(t) {
		p.raise(ErrP003, t.Label, p.cur.Type.Label)
	}
}

// isContextual reports whether the current token is a plain, non-escaped
// Name token spelled exactly name -- the test every contextual keyword
// (async, await, let, of, from, as, get, set, static, yield, target, meta)
// must pass before the parser treats it specially.
func (p *Parser) isContextual(name string) bool {
	return p.cur.Type.Label == token.Name.Label && !p.cur.ContainsEsc && p.cur.Value == name
}

func (p *Parser) eatContextual(name string) bool {
	if p.isContextual(name) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.raise(ErrP003, name, p.cur.Type.Label)
	}
}

// canInsertSemicolon implements the ASI test: the next token is `}`/EOF, or
// a line terminator preceded the current token.
func (p *Parser) canInsertSemicolon() bool {
	return p.is(token.BraceR) || p.is(token.EOF) || p.cur.NewlineBefore
}

// semicolon consumes a `;` or, failing that, applies ASI if legal; it
// raises otherwise.
func (p *Parser) semicolon() {
	if p.eat(token.Semi) {
		return
	}
	if p.canInsertSemicolon() {
		if p.opts.OnInsertedSemicolon != nil {
			p.opts.OnInsertedSemicolon(p.lastTokEnd, p.lastTokEndLoc.Line, p.lastTokEndLoc.Column)
		}
		return
	}
	p.raise(ErrP013)
}

func (p *Parser) afterTrailingComma() {
	if p.opts.OnTrailingComma != nil {
		p.opts.OnTrailingComma(p.lastTokEnd, p.lastTokEndLoc.Line, p.lastTokEndLoc.Column)
	}
}

func (p *Parser) unexpected() {
	p.raise(ErrP001, "", p.cur.Type.Label)
}
