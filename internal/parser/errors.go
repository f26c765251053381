package parser

import (
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

type ErrorCode = diagnostics.ErrorCode

const (
	ErrP001 = diagnostics.ErrP001
	ErrP002 = diagnostics.ErrP002
	ErrP003 = diagnostics.ErrP003
	ErrP004 = diagnostics.ErrP004
	ErrP005 = diagnostics.ErrP005
	ErrP006 = diagnostics.ErrP006
	ErrP007 = diagnostics.ErrP007
	ErrP008 = diagnostics.ErrP008
	ErrP009 = diagnostics.ErrP009
	ErrP010 = diagnostics.ErrP010
	ErrP011 = diagnostics.ErrP011
	ErrP012 = diagnostics.ErrP012
	ErrP013 = diagnostics.ErrP013
	ErrP014 = diagnostics.ErrP014
	ErrP015 = diagnostics.ErrP015
	ErrP016 = diagnostics.ErrP016

	ErrE001 = diagnostics.ErrE001
	ErrE002 = diagnostics.ErrE002
	ErrE003 = diagnostics.ErrE003
	ErrE004 = diagnostics.ErrE004
	ErrE005 = diagnostics.ErrE005
	ErrE006 = diagnostics.ErrE006
	ErrE007 = diagnostics.ErrE007
	ErrE008 = diagnostics.ErrE008
	ErrE009 = diagnostics.ErrE009
	ErrE010 = diagnostics.ErrE010
	ErrE011 = diagnostics.ErrE011
	ErrE012 = diagnostics.ErrE012
	ErrE013 = diagnostics.ErrE013
	ErrE014 = diagnostics.ErrE014
	ErrE015 = diagnostics.ErrE015
	ErrE016 = diagnostics.ErrE016
)

// raise is a Fatal diagnostic delivered by panicking with the
// DiagnosticError; the single recover() in the public Parse entry point
// unwinds back to it. Scope and label pushes whose pop is not deferred (see
// exitScope) are left on their stacks by the unwind; Parse returns without
// using the Parser again, so the imbalance is never observed.
func (p *Parser) raise(code ErrorCode, args ...interface{}) {
	panic(diagnostics.NewFatal(code, p.cur, args...))
}

// raiseAt is raise at an explicit offset rather than the current token,
// used by the scope/private-name machinery which detects a violation after
// the offending token has already been consumed.
func (p *Parser) raiseAt(pos int, code ErrorCode, args ...interface{}) {
	tok := token.Token{Start: pos, Line: p.cur.Line, Column: p.cur.Column}
	panic(diagnostics.NewFatal(code, tok, args...))
}

// raiseRecoverable appends to the running error list and lets parsing
// continue, matching spec.md §7's "violation of a static rule but the
// program is otherwise well-formed" channel.
func (p *Parser) raiseRecoverable(code ErrorCode, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.NewRecoverable(code, p.cur, args...))
}

func (p *Parser) raiseRecoverableAt(pos int, code ErrorCode, args ...interface{}) {
	tok := token.Token{Start: pos, Line: p.cur.Line, Column: p.cur.Column}
	p.errors = append(p.errors, diagnostics.NewRecoverable(code, tok, args...))
}

// destructuringErrors records the earliest offset of each "maybe becomes a
// pattern" defect encountered while parsing a construct whose eventual role
// (expression vs. pattern) is not yet known (spec.md §7/§9). A value of -1
// means "not yet seen".
type destructuringErrors struct {
	shorthandAssign    int
	trailingComma      int
	parenthesizedAssign int
	parenthesizedBind  int
	doubleProto        int
}

func newDestructuringErrors() *destructuringErrors {
	return &destructuringErrors{-1, -1, -1, -1, -1}
}

// checkExpressionErrors promotes any delayed defect to a real error because
// the surrounding construct turned out to be an expression, not a pattern.
// andThrow selects between a fatal raise (the defect makes this an invalid
// expression outright) and merely reporting it.
func (p *Parser) checkExpressionErrors(de *destructuringErrors, andThrow bool) bool {
	if de == nil {
		return false
	}
	found := de.shorthandAssign >= 0 || de.doubleProto >= 0
	if !found {
		return false
	}
	if andThrow {
		if de.shorthandAssign >= 0 {
			p.raiseAt(de.shorthandAssign, ErrP006)
		}
		if de.doubleProto >= 0 {
			p.raiseAt(de.doubleProto, ErrE001, "__proto__")
		}
	}
	return true
}

// checkPatternErrors promotes any delayed defect because the surrounding
// construct turned out to be a binding/assignment pattern.
func (p *Parser) checkPatternErrors(de *destructuringErrors, isBinding bool) {
	if de == nil {
		return
	}
	if de.trailingComma >= 0 {
		p.raiseAt(de.trailingComma, ErrP014)
	}
	pos := de.parenthesizedAssign
	if isBinding {
		pos = de.parenthesizedBind
	}
	if pos >= 0 {
		p.raiseAt(pos, ErrP006)
	}
}
