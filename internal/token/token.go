// Package token defines the lexical token vocabulary consumed by the parser.
package token

import "fmt"

// Type describes a class of token together with the syntactic properties the
// parser needs to drive its decisions: whether a regexp may follow it,
// whether it can start a primary expression, whether it is a loop keyword,
// an assignment operator, a prefix/postfix unary operator, or a binary
// operator at some precedence. These properties live on the type, not the
// instance, matching a tokenizer contract that classifies tokens by kind.
type Type struct {
	Label string

	// Keyword is non-empty when this type represents a reserved word; the
	// identifier-or-keyword dispatch in the lexer consults it.
	Keyword string

	BeforeExpr bool
	StartsExpr bool
	IsLoop     bool
	IsAssign   bool
	Prefix     bool
	Postfix    bool

	// Binop is the binary-operator precedence, 1..10, or 0 when this type is
	// not a binary operator.
	Binop int
}

func (t Type) String() string { return t.Label }

// Token is one lexical unit of the input: a type, an optional literal value,
// the half-open byte range [Start,End) it spans, and its starting line/column.
type Token struct {
	Type   Type
	Value  interface{}
	Start  int
	End    int
	Line   int
	Column int

	// ContainsEsc is true when the token's source text contained a Unicode
	// escape sequence (`\u{...}`) — relevant to reject keywords spelled with
	// an escape where a plain identifier is required, and to make contextual
	// keyword checks fail on escaped spellings.
	ContainsEsc bool

	// NewlineBefore is true when at least one LineTerminator sequence
	// appeared between the previous token and this one. Used by ASI.
	NewlineBefore bool
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %v", t.Line, t.Column, t.Type.Label, t.Value)
}

func binop(label string, prec int) Type { return Type{Label: label, BeforeExpr: true, Binop: prec} }

func kw(name string, props Type) Type {
	props.Label = name
	props.Keyword = name
	return props
}

func binopKeyword(name string, prec int) Type {
	t := kw(name, Type{BeforeExpr: true})
	t.Binop = prec
	return t
}

// Punctuation and literal token types.
var (
	EOF         = Type{Label: "eof"}
	Num         = Type{Label: "num", StartsExpr: true}
	BigIntLit   = Type{Label: "bigint", StartsExpr: true}
	Regexp      = Type{Label: "regexp", StartsExpr: true}
	String      = Type{Label: "string", StartsExpr: true}
	Name        = Type{Label: "name", StartsExpr: true}
	PrivateName = Type{Label: "privateName", StartsExpr: true}

	// Template tokens: a quasi chunk, and the invalid sentinel for cooked
	// errors that must be deferred until it is known whether the template is
	// tagged (where an invalid escape is legal — just uncooked).
	Template        = Type{Label: "template"}
	InvalidTemplate = Type{Label: "invalidTemplate"}

	BracketL    = Type{Label: "[", BeforeExpr: true, StartsExpr: true}
	BracketR    = Type{Label: "]"}
	BraceL      = Type{Label: "{", BeforeExpr: true, StartsExpr: true}
	BraceR      = Type{Label: "}"}
	ParenL      = Type{Label: "(", BeforeExpr: true, StartsExpr: true}
	ParenR      = Type{Label: ")"}
	Comma       = Type{Label: ",", BeforeExpr: true}
	Semi        = Type{Label: ";", BeforeExpr: true}
	Colon       = Type{Label: ":", BeforeExpr: true}
	Dot         = Type{Label: "."}
	Question    = Type{Label: "?", BeforeExpr: true}
	QuestionDot = Type{Label: "?."}
	Arrow       = Type{Label: "=>", BeforeExpr: true}
	Ellipsis    = Type{Label: "...", BeforeExpr: true}
	BackQuote   = Type{Label: "`", StartsExpr: true}
	DollarBraceL = Type{Label: "${", BeforeExpr: true, StartsExpr: true}
	Hash        = Type{Label: "#", StartsExpr: true}

	Eq         = Type{Label: "=", BeforeExpr: true, IsAssign: true}
	AssignOp   = Type{Label: "_=", BeforeExpr: true, IsAssign: true}
	IncDec     = Type{Label: "++/--", Prefix: true, Postfix: true, StartsExpr: true}
	Bang       = Type{Label: "!", BeforeExpr: true, Prefix: true, StartsExpr: true}
	Tilde      = Type{Label: "~", BeforeExpr: true, Prefix: true, StartsExpr: true}
	LogicalOr  = binop("||", 1)
	LogicalAnd = binop("&&", 2)
	BitwiseOr  = binop("|", 3)
	BitwiseXor = binop("^", 4)
	BitwiseAnd = binop("&", 5)
	Equality   = binop("==/!=", 6)
	Relational = binop("</>", 7)
	BitShift   = binop("<</>>", 8)
	Plus       = Type{Label: "+", BeforeExpr: true, Binop: 9, Prefix: true, StartsExpr: true}
	Minus      = Type{Label: "-", BeforeExpr: true, Binop: 9, Prefix: true, StartsExpr: true}
	Modulo     = binop("%", 10)
	Star       = binop("*", 10)
	Slash      = binop("/", 10)
	StarStar   = Type{Label: "**", BeforeExpr: true}

	NullishCoalescing = binop("??", 1)

	LogicalAssign = Type{Label: "&&=/||=/??=", BeforeExpr: true, IsAssign: true}
)

// Reserved-word token types. Each is also installed into the keyword table
// below so the lexer's identifier scan can recognize it.
var (
	Break      = kw("break", Type{})
	Case       = kw("case", Type{BeforeExpr: true})
	Catch      = kw("catch", Type{})
	Continue   = kw("continue", Type{})
	Debugger   = kw("debugger", Type{})
	Default    = kw("default", Type{BeforeExpr: true})
	Do         = kw("do", Type{IsLoop: true, BeforeExpr: true})
	Else       = kw("else", Type{BeforeExpr: true})
	Finally    = kw("finally", Type{})
	For        = kw("for", Type{IsLoop: true})
	Function   = kw("function", Type{StartsExpr: true})
	If         = kw("if", Type{})
	Return     = kw("return", Type{BeforeExpr: true})
	Switch     = kw("switch", Type{})
	Throw      = kw("throw", Type{BeforeExpr: true})
	Try        = kw("try", Type{})
	Var        = kw("var", Type{})
	Const      = kw("const", Type{})
	While      = kw("while", Type{IsLoop: true})
	With       = kw("with", Type{})
	New        = kw("new", Type{BeforeExpr: true, StartsExpr: true})
	This       = kw("this", Type{StartsExpr: true})
	Super      = kw("super", Type{StartsExpr: true})
	Class      = kw("class", Type{StartsExpr: true})
	Extends    = kw("extends", Type{BeforeExpr: true})
	Export     = kw("export", Type{})
	Import     = kw("import", Type{StartsExpr: true})
	Null       = kw("null", Type{StartsExpr: true})
	True       = kw("true", Type{StartsExpr: true})
	False      = kw("false", Type{StartsExpr: true})
	In         = binopKeyword("in", 7)
	InstanceOf = binopKeyword("instanceof", 7)
	Typeof     = kw("typeof", Type{BeforeExpr: true, Prefix: true, StartsExpr: true})
	Void       = kw("void", Type{BeforeExpr: true, Prefix: true, StartsExpr: true})
	Delete     = kw("delete", Type{BeforeExpr: true, Prefix: true, StartsExpr: true})
)

// keywordTable maps reserved-word spelling to its Type, consulted by the
// lexer when an identifier-shaped run of source text is scanned; anything
// not present is a plain Name token and may still be a contextual keyword.
var keywordTable = map[string]Type{
	"break": Break, "case": Case, "catch": Catch, "continue": Continue,
	"debugger": Debugger, "default": Default, "do": Do, "else": Else,
	"finally": Finally, "for": For, "function": Function, "if": If,
	"return": Return, "switch": Switch, "throw": Throw, "try": Try,
	"var": Var, "const": Const, "while": While, "with": With, "new": New,
	"this": This, "super": Super, "class": Class, "extends": Extends,
	"export": Export, "import": Import, "null": Null, "true": True,
	"false": False, "in": In, "instanceof": InstanceOf, "typeof": Typeof,
	"void": Void, "delete": Delete,
}

// LookupKeyword reports whether ident names a reserved word and, if so,
// returns its Type. Identifiers that are not reserved words are plain Name
// tokens — it is up to the parser's contextual-keyword helpers
// (isContextual, etc.) to treat specific spellings specially in specific
// grammatical positions.
func LookupKeyword(ident string) (Type, bool) {
	t, ok := keywordTable[ident]
	return t, ok
}

// ContextualKeywords lists identifiers that are keywords only in specific
// positions (async, await, let, of, from, as, get, set, static, yield,
// target, meta) — the lexer never promotes these to a dedicated Type; they
// stay Name tokens and the parser's isContextual/eatContextual family
// recognizes them by value.
var ContextualKeywords = map[string]bool{
	"async": true, "await": true, "let": true, "of": true, "from": true,
	"as": true, "get": true, "set": true, "static": true, "yield": true,
	"target": true, "meta": true,
}

// StrictReserved are words only reserved in strict mode (future-reserved
// words carried over from older editions, plus contextual ones that strict
// mode promotes).
var StrictReserved = map[string]bool{
	"implements": true, "interface": true, "package": true, "private": true,
	"protected": true, "public": true, "static": true, "yield": true,
	"let": true,
}
