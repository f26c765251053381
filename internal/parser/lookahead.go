package parser

import "github.com/funvibe/ecmaparse/internal/token"

// peekNextToken reports the token that would follow p.cur without
// consuming it. Lexer is a small value type with no pointer-backed internal
// buffers, so cloning it and scanning once is cheap and leaves p.lex
// untouched -- the standard way this parser resolves the one-token
// lookahead the `async`/`get`/`set` contextual-keyword-vs-property-name
// ambiguities need, since ordinary parsing only ever looks at p.cur.
func (p *Parser) peekNextToken() token.Token {
	clone := *p.lex
	return clone.NextToken(p.exprAllowed)
}

// peekStartsPropertyName reports whether the token following the current
// one could begin a property key -- the test that distinguishes `{ async: 1
// }` (async used as the key) from `{ async foo() {} }` (async modifying a
// method) without a general pushback buffer.
func (p *Parser) peekStartsPropertyName() bool {
	next := p.peekNextToken()
	switch next.Type.Label {
	case token.Name.Label, token.String.Label, token.Num.Label, token.BracketL.Label,
		token.PrivateName.Label, token.Star.Label:
		return true
	}
	return next.Type.Keyword != ""
}
