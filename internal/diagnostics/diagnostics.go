// Package diagnostics defines the error value shape shared by the lexer and
// parser: a coded, phased DiagnosticError with a Severity distinguishing a
// fatal abort from a recoverable, append-and-continue defect.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/ecmaparse/internal/token"
)

// Phase identifies which pass raised a diagnostic.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

// Severity distinguishes a diagnostic that must unwind the parse (Fatal,
// delivered via panic/recover at the public entry point) from one that is
// recorded and parsing continues past it (Recoverable).
type Severity string

const (
	Fatal       Severity = "fatal"
	Recoverable Severity = "recoverable"
)

type ErrorCode string

const (
	// Lexer errors.
	ErrL001 ErrorCode = "L001" // invalid or unexpected character
	ErrL002 ErrorCode = "L002" // unterminated string literal
	ErrL003 ErrorCode = "L003" // unterminated template literal
	ErrL004 ErrorCode = "L004" // unterminated comment
	ErrL005 ErrorCode = "L005" // invalid number literal
	ErrL006 ErrorCode = "L006" // invalid regular expression flags
	ErrL007 ErrorCode = "L007" // invalid unicode escape sequence
	ErrL008 ErrorCode = "L008" // octal literals not allowed in strict mode

	// Parser syntax errors.
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unexpected end of input
	ErrP003 ErrorCode = "P003" // expected a specific token
	ErrP004 ErrorCode = "P004" // no prefix parse available for token
	ErrP005 ErrorCode = "P005" // invalid assignment target
	ErrP006 ErrorCode = "P006" // invalid destructuring target
	ErrP007 ErrorCode = "P007" // unexpected reserved word
	ErrP008 ErrorCode = "P008" // 'return' outside function
	ErrP009 ErrorCode = "P009" // 'await' outside async context
	ErrP010 ErrorCode = "P010" // 'yield' outside generator
	ErrP011 ErrorCode = "P011" // 'super' outside method
	ErrP012 ErrorCode = "P012" // invalid or unexpected 'new.target'
	ErrP013 ErrorCode = "P013" // missing semicolon (ASI failure)
	ErrP014 ErrorCode = "P014" // trailing comma disallowed here
	ErrP015 ErrorCode = "P015" // invalid import/export syntax

	// Early (static-semantics) errors.
	ErrE001 ErrorCode = "E001" // duplicate lexical declaration
	ErrE002 ErrorCode = "E002" // redeclaration of 'let'/'const' binding
	ErrE003 ErrorCode = "E003" // undefined label
	ErrE004 ErrorCode = "E004" // duplicate label
	ErrE005 ErrorCode = "E005" // 'break'/'continue' not inside loop or labeled statement
	ErrE006 ErrorCode = "E006" // invalid private name reference
	ErrE007 ErrorCode = "E007" // duplicate private name in class body
	ErrE008 ErrorCode = "E008" // 'with' statement not allowed in strict mode
	ErrE009 ErrorCode = "E009" // invalid left-hand side in prefix/postfix operation
	ErrE010 ErrorCode = "E010" // duplicate parameter name in a function declaration
	ErrE011 ErrorCode = "E011" // more than one constructor in a class body
	ErrE012 ErrorCode = "E012" // constructor declared async/generator/getter/setter
	ErrE013 ErrorCode = "E013" // static class member named 'prototype'
	ErrE014 ErrorCode = "E014" // class field named 'constructor'
	ErrE015 ErrorCode = "E015" // getter declared with formal parameters
	ErrE016 ErrorCode = "E016" // setter not declared with exactly one non-rest parameter

	// Parser syntax errors, continued.
	ErrP016 ErrorCode = "P016" // optional chaining in the callee of a 'new' expression
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid or unexpected character: '%s'",
	ErrL002: "unterminated string literal",
	ErrL003: "unterminated template literal",
	ErrL004: "unterminated comment",
	ErrL005: "invalid number literal: '%s'",
	ErrL006: "invalid regular expression flags: '%s'",
	ErrL007: "invalid unicode escape sequence",
	ErrL008: "octal literals are not allowed in strict mode",

	ErrP001: "unexpected token: expected '%s', but got '%s'",
	ErrP002: "unexpected end of input",
	ErrP003: "expected '%s', but got '%s' instead",
	ErrP004: "cannot parse expression starting with '%s'",
	ErrP005: "invalid assignment target",
	ErrP006: "invalid destructuring assignment target",
	ErrP007: "unexpected reserved word '%s'",
	ErrP008: "'return' outside of function",
	ErrP009: "'await' is only valid in async functions and the top level of modules",
	ErrP010: "'yield' is only valid inside generator functions",
	ErrP011: "'super' keyword is only valid inside a class method",
	ErrP012: "'new.target' can only be used inside a function",
	ErrP013: "missing semicolon",
	ErrP014: "trailing comma is not allowed here",
	ErrP015: "%s",

	ErrE001: "identifier '%s' has already been declared",
	ErrE002: "redeclaration of lexical binding '%s'",
	ErrE003: "undefined label '%s'",
	ErrE004: "label '%s' is already declared",
	ErrE005: "'%s' statement not inside a loop or labeled statement",
	ErrE006: "private field '#%s' must be declared in an enclosing class",
	ErrE007: "identifier '#%s' has already been declared in this class body",
	ErrE008: "'with' statement is not allowed in strict mode",
	ErrE009: "invalid left-hand side expression in %s operation",
	ErrE010: "duplicate parameter name '%s' not allowed in this context",
	ErrE011: "a class may have only one constructor",
	ErrE012: "class constructor may not be a %s",
	ErrE013: "classes may not have a static property named 'prototype'",
	ErrE014: "classes may not have a field named 'constructor'",
	ErrE015: "getter '%s' must have no formal parameters",
	ErrE016: "setter '%s' must have exactly one parameter, and it may not be a rest parameter",

	ErrP016: "Optional chaining cannot appear in the callee of new expressions",
}

// DiagnosticError is the error value shape raised by every pass. Code
// selects the message template; Args are interpolated into it; Token
// anchors the position; Severity decides whether the public entry point
// aborts or merely records it.
type DiagnosticError struct {
	Code     ErrorCode
	Phase    Phase
	Severity Severity
	Args     []interface{}
	Token    token.Token
	File     string
	Hint     string
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	var result string
	if e.Token.Line > 0 {
		result = fmt.Sprintf("%s%serror at %d:%d [%s]: %s", prefix, phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	} else {
		result = fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
	}
	if e.Hint != "" {
		result += "\n  hint: " + e.Hint
	}
	return result
}

// NewFatal builds a Fatal-severity parser diagnostic, meant to be delivered
// via panic at the raise call site.
func NewFatal(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Phase:    PhaseParser,
		Severity: Fatal,
		Token:    tok,
		Args:     args,
	}
}

// NewRecoverable builds a Recoverable-severity diagnostic, meant to be
// appended to the running error list and parsing continued.
func NewRecoverable(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Phase:    PhaseParser,
		Severity: Recoverable,
		Token:    tok,
		Args:     args,
	}
}

// NewLexerError builds a Fatal-severity lexer diagnostic.
func NewLexerError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Phase:    PhaseLexer,
		Severity: Fatal,
		Token:    tok,
		Args:     args,
	}
}
