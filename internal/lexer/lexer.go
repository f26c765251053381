// Package lexer implements the tokenizer that feeds the parser: a
// byte/rune scanner producing token.Token values, including the
// context-sensitive rescans (regular expressions, template literal chunks)
// that the parser triggers once it knows which reading is grammatically
// valid at the current position.
package lexer

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

// Lexer scans UTF-8 source text into tokens. Position bookkeeping (line,
// column, byte offset) is kept exactly the way the parser's node builder
// expects it: offsets are byte offsets into the original input, lines are
// 1-based, columns are 0-based counts of bytes since the last line start.
type Lexer struct {
	input string
	pos   int // byte offset of the next unread rune
	line  int
	lineStart int // byte offset where the current line began

	// ch/chWidth are the rune at pos and its UTF-8 byte width.
	ch      rune
	chWidth int

	// newlineBefore accumulates across skipSpace calls so NextToken can
	// stamp the token it returns with whether a line terminator preceded it
	// (consulted by the parser's automatic-semicolon-insertion logic).
	newlineBefore bool
}

// New constructs a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, lineStart: 0}
	l.ch, l.chWidth = utf8.DecodeRuneInString(l.input[l.pos:])
	return l
}

func (l *Lexer) column() int {
	return l.pos - l.lineStart
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.pos + l.chWidth
	}
	l.pos += l.chWidth
	if l.pos >= len(l.input) {
		l.ch = 0
		l.chWidth = 0
		return
	}
	l.ch, l.chWidth = utf8.DecodeRuneInString(l.input[l.pos:])
}

func (l *Lexer) peekRune() rune {
	if l.pos+l.chWidth >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+l.chWidth:])
	return r
}

func (l *Lexer) fail(code diagnostics.ErrorCode, args ...interface{}) {
	panic(diagnostics.NewLexerError(code, token.Token{Line: l.line, Column: l.column()}, args...))
}

// ReadHashbang consumes a leading `#!...` line when present, as permitted by
// the allowHashBang option; it must be called, if at all, before the first
// NextToken.
func (l *Lexer) ReadHashbang() {
	if l.ch == '#' && l.peekRune() == '!' {
		for l.ch != '\n' && l.ch != 0 {
			l.advance()
		}
	}
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func isIDStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIDContinue(r rune) bool {
	return r == '$' || r == '_' || r == '\u200C' || r == '\u200D' ||
		unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Nd, r) || unicode.Is(unicode.Pc, r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// skipSpace advances past whitespace and comments, recording whether a line
// terminator was crossed.
func (l *Lexer) skipSpace() {
	l.newlineBefore = false
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\v' || l.ch == '\f' || l.ch == '\u00A0' || l.ch == '\uFEFF':
			l.advance()
		case isLineTerminator(l.ch):
			l.newlineBefore = true
			l.advance()
		case l.ch == '/' && l.peekRune() == '/':
			l.advance()
			l.advance()
			for l.ch != 0 && !isLineTerminator(l.ch) {
				l.advance()
			}
		case l.ch == '/' && l.peekRune() == '*':
			l.advance()
			l.advance()
			closed := false
			for l.ch != 0 {
				if isLineTerminator(l.ch) {
					l.newlineBefore = true
				}
				if l.ch == '*' && l.peekRune() == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				l.fail(diagnostics.ErrL004)
			}
		default:
			if unicode.IsSpace(l.ch) {
				l.advance()
				continue
			}
			return
		}
	}
}

func (l *Lexer) finish(typ token.Type, value interface{}, startPos, startLine, startCol int) token.Token {
	return token.Token{
		Type:          typ,
		Value:         value,
		Start:         startPos,
		End:           l.pos,
		Line:          startLine,
		Column:        startCol,
		NewlineBefore: l.newlineBefore,
	}
}

// NextToken scans and returns the next token. exprAllowed tells the scanner
// whether an expression may begin here; it is the disambiguator between
// division and a regular-expression literal at a bare `/`; the parser
// derives it from the BeforeExpr property of the previously returned token,
// mirroring how a one-token-lookahead ECMAScript tokenizer must be driven
// by its consumer.
func (l *Lexer) NextToken(exprAllowed bool) token.Token {
	l.skipSpace()
	startPos, startLine, startCol := l.pos, l.line, l.column()

	if l.ch == 0 {
		return l.finish(token.EOF, nil, startPos, startLine, startCol)
	}

	switch {
	case isIDStart(l.ch):
		return l.readWord(startPos, startLine, startCol)
	case isDigit(l.ch):
		return l.readNumber(startPos, startLine, startCol)
	case l.ch == '.' && isDigit(l.peekRune()):
		return l.readNumber(startPos, startLine, startCol)
	}

	switch l.ch {
	case '"', '\'':
		return l.readString(startPos, startLine, startCol)
	case '`':
		l.advance()
		return l.finish(token.BackQuote, nil, startPos, startLine, startCol)
	case '#':
		if isIDStart(l.peekRune()) {
			l.advance()
			name := l.readIdentifierName()
			return l.finish(token.PrivateName, name, startPos, startLine, startCol)
		}
		l.advance()
		return l.finish(token.Hash, nil, startPos, startLine, startCol)
	case '/':
		if exprAllowed {
			return l.readRegexpFrom(startPos, startLine, startCol)
		}
		l.advance()
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "/=", startPos, startLine, startCol)
		}
		return l.finish(token.Slash, "/", startPos, startLine, startCol)
	case '(':
		l.advance()
		return l.finish(token.ParenL, nil, startPos, startLine, startCol)
	case ')':
		l.advance()
		return l.finish(token.ParenR, nil, startPos, startLine, startCol)
	case '[':
		l.advance()
		return l.finish(token.BracketL, nil, startPos, startLine, startCol)
	case ']':
		l.advance()
		return l.finish(token.BracketR, nil, startPos, startLine, startCol)
	case '{':
		l.advance()
		return l.finish(token.BraceL, nil, startPos, startLine, startCol)
	case '}':
		l.advance()
		return l.finish(token.BraceR, nil, startPos, startLine, startCol)
	case ',':
		l.advance()
		return l.finish(token.Comma, nil, startPos, startLine, startCol)
	case ';':
		l.advance()
		return l.finish(token.Semi, nil, startPos, startLine, startCol)
	case ':':
		l.advance()
		return l.finish(token.Colon, nil, startPos, startLine, startCol)
	case '~':
		l.advance()
		return l.finish(token.Tilde, "~", startPos, startLine, startCol)
	case '.':
		l.advance()
		if l.ch == '.' && l.peekRune() == '.' {
			l.advance()
			l.advance()
			return l.finish(token.Ellipsis, nil, startPos, startLine, startCol)
		}
		return l.finish(token.Dot, nil, startPos, startLine, startCol)
	case '?':
		l.advance()
		if l.ch == '.' && !isDigit(l.peekRune()) {
			l.advance()
			return l.finish(token.QuestionDot, nil, startPos, startLine, startCol)
		}
		if l.ch == '?' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.LogicalAssign, "??=", startPos, startLine, startCol)
			}
			return l.finish(token.NullishCoalescing, "??", startPos, startLine, startCol)
		}
		return l.finish(token.Question, "?", startPos, startLine, startCol)
	case '=':
		l.advance()
		if l.ch == '>' {
			l.advance()
			return l.finish(token.Arrow, nil, startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.Equality, "===", startPos, startLine, startCol)
			}
			return l.finish(token.Equality, "==", startPos, startLine, startCol)
		}
		return l.finish(token.Eq, "=", startPos, startLine, startCol)
	case '!':
		l.advance()
		if l.ch == '=' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.Equality, "!==", startPos, startLine, startCol)
			}
			return l.finish(token.Equality, "!=", startPos, startLine, startCol)
		}
		return l.finish(token.Bang, "!", startPos, startLine, startCol)
	case '<':
		l.advance()
		if l.ch == '<' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.AssignOp, "<<=", startPos, startLine, startCol)
			}
			return l.finish(token.BitShift, "<<", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.Relational, "<=", startPos, startLine, startCol)
		}
		return l.finish(token.Relational, "<", startPos, startLine, startCol)
	case '>':
		l.advance()
		if l.ch == '>' {
			l.advance()
			if l.ch == '>' {
				l.advance()
				if l.ch == '=' {
					l.advance()
					return l.finish(token.AssignOp, ">>>=", startPos, startLine, startCol)
				}
				return l.finish(token.BitShift, ">>>", startPos, startLine, startCol)
			}
			if l.ch == '=' {
				l.advance()
				return l.finish(token.AssignOp, ">>=", startPos, startLine, startCol)
			}
			return l.finish(token.BitShift, ">>", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.Relational, ">=", startPos, startLine, startCol)
		}
		return l.finish(token.Relational, ">", startPos, startLine, startCol)
	case '+':
		l.advance()
		if l.ch == '+' {
			l.advance()
			return l.finish(token.IncDec, "++", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "+=", startPos, startLine, startCol)
		}
		return l.finish(token.Plus, "+", startPos, startLine, startCol)
	case '-':
		l.advance()
		if l.ch == '-' {
			l.advance()
			return l.finish(token.IncDec, "--", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "-=", startPos, startLine, startCol)
		}
		return l.finish(token.Minus, "-", startPos, startLine, startCol)
	case '*':
		l.advance()
		if l.ch == '*' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.AssignOp, "**=", startPos, startLine, startCol)
			}
			return l.finish(token.StarStar, "**", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "*=", startPos, startLine, startCol)
		}
		return l.finish(token.Star, "*", startPos, startLine, startCol)
	case '%':
		l.advance()
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "%=", startPos, startLine, startCol)
		}
		return l.finish(token.Modulo, "%", startPos, startLine, startCol)
	case '&':
		l.advance()
		if l.ch == '&' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.LogicalAssign, "&&=", startPos, startLine, startCol)
			}
			return l.finish(token.LogicalAnd, "&&", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "&=", startPos, startLine, startCol)
		}
		return l.finish(token.BitwiseAnd, "&", startPos, startLine, startCol)
	case '|':
		l.advance()
		if l.ch == '|' {
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.LogicalAssign, "||=", startPos, startLine, startCol)
			}
			return l.finish(token.LogicalOr, "||", startPos, startLine, startCol)
		}
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "|=", startPos, startLine, startCol)
		}
		return l.finish(token.BitwiseOr, "|", startPos, startLine, startCol)
	case '^':
		l.advance()
		if l.ch == '=' {
			l.advance()
			return l.finish(token.AssignOp, "^=", startPos, startLine, startCol)
		}
		return l.finish(token.BitwiseXor, "^", startPos, startLine, startCol)
	case '\\':
		if l.peekRune() == 'u' {
			return l.readWord(startPos, startLine, startCol)
		}
		l.fail(diagnostics.ErrL001, string(l.ch))
	}

	ch := l.ch
	l.fail(diagnostics.ErrL001, string(ch))
	panic("unreachable")
}

// readWord scans an identifier or reserved word, including the
// `\uXXXX`/`\u{X...}` escape forms legal within identifier names.
func (l *Lexer) readWord(startPos, startLine, startCol int) token.Token {
	var b strings.Builder
	escaped := false
	first := true
	for {
		if l.ch == '\\' && l.peekRune() == 'u' {
			escaped = true
			l.advance() // backslash
			l.advance() // u
			r := l.readUnicodeEscape()
			if first && !isIDStart(r) || !first && !isIDContinue(r) {
				l.fail(diagnostics.ErrL007)
			}
			b.WriteRune(r)
			first = false
			continue
		}
		if first {
			if !isIDStart(l.ch) {
				break
			}
		} else if !isIDContinue(l.ch) {
			break
		}
		b.WriteRune(l.ch)
		l.advance()
		first = false
	}
	name := b.String()
	if kwType, ok := token.LookupKeyword(name); ok && !escaped {
		tok := l.finish(kwType, name, startPos, startLine, startCol)
		return tok
	}
	tok := l.finish(token.Name, name, startPos, startLine, startCol)
	tok.ContainsEsc = escaped
	return tok
}

func (l *Lexer) readIdentifierName() string {
	var b strings.Builder
	for isIDStart(l.ch) || (b.Len() > 0 && isIDContinue(l.ch)) {
		b.WriteRune(l.ch)
		l.advance()
	}
	return b.String()
}

func (l *Lexer) readUnicodeEscape() rune {
	if l.ch == '{' {
		l.advance()
		start := l.pos
		for l.ch != '}' && l.ch != 0 {
			l.advance()
		}
		hex := l.input[start:l.pos]
		l.advance() // }
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			l.fail(diagnostics.ErrL007)
		}
		return rune(v)
	}
	var hex strings.Builder
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.ch) {
			l.fail(diagnostics.ErrL007)
		}
		hex.WriteRune(l.ch)
		l.advance()
	}
	v, _ := strconv.ParseInt(hex.String(), 16, 32)
	return rune(v)
}

// readString scans a single- or double-quoted string literal, producing the
// cooked value in tok.Value and the exact source text (without quotes) is
// recoverable from [Start+1, End-1).
func (l *Lexer) readString(startPos, startLine, startCol int) token.Token {
	quote := l.ch
	l.advance()
	var b strings.Builder
	for {
		if l.ch == 0 || isLineTerminator(l.ch) {
			l.fail(diagnostics.ErrL002)
		}
		if l.ch == quote {
			l.advance()
			break
		}
		if l.ch == '\\' {
			l.advance()
			l.readEscapeInto(&b)
			continue
		}
		b.WriteRune(l.ch)
		l.advance()
	}
	return l.finish(token.String, b.String(), startPos, startLine, startCol)
}

// readEscapeInto consumes one escape sequence (the lexer is already
// positioned just past the backslash) and appends its cooked value to b.
func (l *Lexer) readEscapeInto(b *strings.Builder) {
	switch l.ch {
	case 'n':
		b.WriteByte('\n')
		l.advance()
	case 't':
		b.WriteByte('\t')
		l.advance()
	case 'r':
		b.WriteByte('\r')
		l.advance()
	case 'b':
		b.WriteByte('\b')
		l.advance()
	case 'f':
		b.WriteByte('\f')
		l.advance()
	case 'v':
		b.WriteByte('\v')
		l.advance()
	case '0':
		if !isDigit(l.peekRune()) {
			b.WriteByte(0)
			l.advance()
		} else {
			l.fail(diagnostics.ErrL008)
		}
	case 'x':
		l.advance()
		var hex strings.Builder
		for i := 0; i < 2; i++ {
			if !isHexDigit(l.ch) {
				l.fail(diagnostics.ErrL007)
			}
			hex.WriteRune(l.ch)
			l.advance()
		}
		v, _ := strconv.ParseInt(hex.String(), 16, 32)
		b.WriteRune(rune(v))
	case 'u':
		l.advance()
		b.WriteRune(l.readUnicodeEscape())
	case '\r':
		l.advance()
		if l.ch == '\n' {
			l.advance()
		}
	case '\n', ' ', ' ':
		l.advance()
	default:
		if isDigit(l.ch) {
			l.fail(diagnostics.ErrL008)
		}
		b.WriteRune(l.ch)
		l.advance()
	}
}

// ReadTemplateToken scans one chunk of a template literal starting right
// after a backtick or a closing `}` of an interpolation, up to the next
// `${` or closing backtick. The parser calls this explicitly; it cannot be
// reached through ordinary NextToken dispatch since a `}` is ambiguous
// between "end of block" and "end of template hole" without grammar
// context.
func (l *Lexer) ReadTemplateToken() token.Token {
	startPos, startLine, startCol := l.pos, l.line, l.column()
	var raw strings.Builder
	var cooked strings.Builder
	invalid := false
	for {
		if l.ch == 0 {
			l.fail(diagnostics.ErrL003)
		}
		if l.ch == '`' {
			tail := true
			l.advance()
			return l.finishTemplate(startPos, startLine, startCol, raw.String(), cooked.String(), tail, invalid)
		}
		if l.ch == '$' && l.peekRune() == '{' {
			l.advance()
			l.advance()
			return l.finishTemplate(startPos, startLine, startCol, raw.String(), cooked.String(), false, invalid)
		}
		if l.ch == '\\' {
			raw.WriteByte('\\')
			l.advance()
			before := l.pos
			func() {
				defer func() {
					if r := recover(); r != nil {
						invalid = true
					}
				}()
				l.readEscapeInto(&cooked)
			}()
			raw.WriteString(l.input[before:l.pos])
			continue
		}
		if l.ch == '\r' {
			raw.WriteByte('\n')
			cooked.WriteByte('\n')
			l.advance()
			if l.ch == '\n' {
				l.advance()
			}
			continue
		}
		raw.WriteRune(l.ch)
		cooked.WriteRune(l.ch)
		l.advance()
	}
}

func (l *Lexer) finishTemplate(startPos, startLine, startCol int, raw, cooked string, tail, invalid bool) token.Token {
	typ := token.Template
	if invalid {
		typ = token.InvalidTemplate
	}
	tok := l.finish(typ, struct {
		Raw    string
		Cooked string
		Tail   bool
	}{raw, cooked, tail}, startPos, startLine, startCol)
	return tok
}

// readRegexpFrom scans a /pattern/flags literal; called only when the
// parser has determined (via exprAllowed) that a regexp may start here.
func (l *Lexer) readRegexpFrom(startPos, startLine, startCol int) token.Token {
	l.advance() // opening /
	inClass := false
	var pattern strings.Builder
	for {
		if l.ch == 0 || isLineTerminator(l.ch) {
			l.fail(diagnostics.ErrL001, "/")
		}
		if l.ch == '\\' {
			pattern.WriteRune(l.ch)
			l.advance()
			if l.ch == 0 || isLineTerminator(l.ch) {
				l.fail(diagnostics.ErrL001, "/")
			}
			pattern.WriteRune(l.ch)
			l.advance()
			continue
		}
		if l.ch == '[' {
			inClass = true
		} else if l.ch == ']' {
			inClass = false
		} else if l.ch == '/' && !inClass {
			l.advance()
			break
		}
		pattern.WriteRune(l.ch)
		l.advance()
	}
	var flags strings.Builder
	for isIDContinue(l.ch) {
		flags.WriteRune(l.ch)
		l.advance()
	}
	return l.finish(token.Regexp, struct {
		Pattern string
		Flags   string
	}{pattern.String(), flags.String()}, startPos, startLine, startCol)
}

// readNumber scans a numeric literal: decimal, hex/octal/binary (0x/0o/0b),
// legacy octal, float, exponent, and the `n` BigInt suffix via math/big.
func (l *Lexer) readNumber(startPos, startLine, startCol int) token.Token {
	base := 10
	isFloat := false
	if l.ch == '0' {
		switch l.peekRune() {
		case 'x', 'X':
			l.advance()
			l.advance()
			base = 16
		case 'o', 'O':
			l.advance()
			l.advance()
			base = 8
		case 'b', 'B':
			l.advance()
			l.advance()
			base = 2
		}
	}

	digitOK := func(r rune) bool {
		switch base {
		case 16:
			return isHexDigit(r) || r == '_'
		case 8:
			return (r >= '0' && r <= '7') || r == '_'
		case 2:
			return r == '0' || r == '1' || r == '_'
		default:
			return isDigit(r) || r == '_'
		}
	}
	for digitOK(l.ch) {
		l.advance()
	}

	if base == 10 {
		if l.ch == '.' {
			isFloat = true
			l.advance()
			for isDigit(l.ch) || l.ch == '_' {
				l.advance()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			isFloat = true
			l.advance()
			if l.ch == '+' || l.ch == '-' {
				l.advance()
			}
			for isDigit(l.ch) {
				l.advance()
			}
		}
	}

	isBigInt := false
	if l.ch == 'n' && !isFloat {
		isBigInt = true
		l.advance()
	}

	raw := l.input[startPos:l.pos]
	clean := strings.ReplaceAll(raw, "_", "")

	if isBigInt {
		digits := clean[:len(clean)-1]
		val := new(big.Int)
		if _, ok := val.SetString(digits, 0); !ok {
			l.fail(diagnostics.ErrL005, raw)
		}
		tok := l.finish(token.BigIntLit, val, startPos, startLine, startCol)
		return tok
	}

	if isFloat {
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			l.fail(diagnostics.ErrL005, raw)
		}
		return l.finish(token.Num, v, startPos, startLine, startCol)
	}

	v, err := strconv.ParseInt(clean, 0, 64)
	if err != nil {
		if f, ferr := strconv.ParseFloat(clean, 64); ferr == nil {
			return l.finish(token.Num, f, startPos, startLine, startCol)
		}
		l.fail(diagnostics.ErrL005, raw)
	}
	return l.finish(token.Num, float64(v), startPos, startLine, startCol)
}

// AllTokens drains the lexer into a flat slice, ending with (and including)
// the EOF token. It tracks exprAllowed the same way the parser's next()
// does (token.Type.BeforeExpr of the previous token), so the `tokens` CLI
// subcommand gets the same division-vs-regexp disambiguation a real parse
// would, unlike this package's always-true flatTokenStream.
func (l *Lexer) AllTokens() []token.Token {
	var toks []token.Token
	exprAllowed := true
	for {
		tok := l.NextToken(exprAllowed)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
		exprAllowed = tok.Type.BeforeExpr
	}
}
