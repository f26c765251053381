package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseTopLevel is the C10 driver: it runs parseStatement in a loop over
// the whole source, collects a leading directive prologue (which promotes
// `"use strict"` into p.strict), and performs the module-level
// undefined-export check once the program is fully parsed (spec.md §4.C9).
func (p *Parser) parseTopLevel() *ast.Program {
	ns := p.startNode()
	prog := &ast.Program{SourceType: p.opts.SourceType}

	topFlags := scopeTopLevel
	if p.inModule {
		topFlags |= scopeAsync
	}
	p.enterScope(topFlags)
	defer p.exitScope()

	inDirectivePrologue := true
	for !p.is(token.EOF) {
		stmt := p.parseStatement(true)
		if inDirectivePrologue {
			if es, ok := stmt.(*ast.ExpressionStatement); ok {
				if lit, ok := es.Expression.(*ast.Literal); ok {
					if raw, ok := lit.Value.(string); ok && (p.source[es.Start()] == '"' || p.source[es.Start()] == '\'') {
						es.Directive = raw
						if raw == "use strict" {
							p.strict = true
						}
						prog.Body = append(prog.Body, stmt)
						continue
					}
				}
			}
			inDirectivePrologue = false
		}
		prog.Body = append(prog.Body, stmt)
	}

	if p.inModule {
		for name, pos := range p.undefinedExports {
			if !p.topLevelBindingExists(name) {
				p.raiseAt(pos, ErrP015, "'"+name+"' is not defined")
			}
		}
	}

	p.finish(ns, &prog.Base)
	return prog
}

// parseStatement dispatches on the current token; topLevel permits the
// module-only import/export declarations (spec.md §4.C8's largest single
// dispatch).
func (p *Parser) parseStatement(topLevel bool) ast.Statement {
	switch {
	case p.is(token.Semi):
		return p.parseEmptyStatement()
	case p.is(token.BraceL):
		return p.parseBlock()
	case p.is(token.If):
		return p.parseIf()
	case p.is(token.Return):
		return p.parseReturn()
	case p.is(token.Switch):
		return p.parseSwitch()
	case p.is(token.Throw):
		return p.parseThrow()
	case p.is(token.Try):
		return p.parseTry()
	case p.is(token.While):
		return p.parseWhile()
	case p.is(token.Do):
		return p.parseDoWhile()
	case p.is(token.For):
		return p.parseFor()
	case p.is(token.Break):
		return p.parseBreak()
	case p.is(token.Continue):
		return p.parseContinue()
	case p.is(token.Var), p.is(token.Const):
		return p.parseVarStatement(p.cur.Type.Keyword)
	case p.is(token.Function):
		return p.parseFunctionDeclaration(false)
	case p.is(token.Class):
		return p.parseClassDeclaration()
	case p.is(token.With):
		return p.parseWith()
	case p.is(token.Debugger):
		return p.parseDebugger()
	case p.is(token.Import):
		if topLevel && p.inModule {
			next := p.peekNextToken()
			if next.Type.Label != token.Dot.Label && next.Type.Label != token.ParenL.Label {
				return p.parseImportDeclaration()
			}
		}
		return p.parseExpressionOrLabeledStatement()
	case p.is(token.Export):
		if !topLevel || !p.inModule {
			p.raise(ErrP015, "'export' is only valid at the top level of a module")
		}
		return p.parseExportDeclaration()
	case p.isContextual("let") && p.letStartsDeclaration():
		return p.parseVarStatement("let")
	case p.isContextual("async") && p.asyncStartsFunctionDeclaration():
		p.next()
		return p.parseFunctionDeclaration(true)
	default:
		return p.parseExpressionOrLabeledStatement()
	}
}

// letStartsDeclaration resolves `let` as a declaration keyword only when
// followed by a binding-pattern start; otherwise it is a plain identifier
// (pre-ES2015 code may use `let` as a variable name in sloppy mode).
func (p *Parser) letStartsDeclaration() bool {
	next := p.peekNextToken()
	switch next.Type.Label {
	case token.Name.Label, token.BraceL.Label, token.BracketL.Label:
		return true
	}
	return false
}

func (p *Parser) asyncStartsFunctionDeclaration() bool {
	if p.cur.ContainsEsc {
		return false
	}
	next := p.peekNextToken()
	return next.Type.Label == token.Function.Label && !next.NewlineBefore
}

func (p *Parser) parseEmptyStatement() ast.Statement {
	ns := p.startNode()
	p.next()
	n := &ast.EmptyStatement{}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	ns := p.startNode()
	p.expect(token.BraceL)
	p.enterScope(scopeBlock)
	defer p.exitScope()
	var body []ast.Statement
	for !p.eat(token.BraceR) {
		body = append(body, p.parseStatement(false))
	}
	n := &ast.BlockStatement{Body: body}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseIf() ast.Statement {
	ns := p.startNode()
	p.next()
	p.expect(token.ParenL)
	test := p.parseExpression(false, nil)
	p.expect(token.ParenR)
	cons := p.parseStatement(false)
	var alt ast.Statement
	if p.eat(token.Else) {
		alt = p.parseStatement(false)
	}
	n := &ast.IfStatement{Test: test, Consequent: cons, Alternate: alt}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseReturn() ast.Statement {
	ns := p.startNode()
	if !p.inFunction() && !p.opts.AllowReturnOutsideFunction {
		p.raise(ErrP008)
	}
	p.next()
	var arg ast.Expression
	if !p.canInsertSemicolon() && !p.is(token.Semi) {
		arg = p.parseExpression(false, nil)
	}
	p.semicolon()
	n := &ast.ReturnStatement{Argument: arg}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseSwitch() ast.Statement {
	ns := p.startNode()
	p.next()
	p.expect(token.ParenL)
	disc := p.parseExpression(false, nil)
	p.expect(token.ParenR)
	p.expect(token.BraceL)
	p.enterScope(scopeBlock)
	defer p.exitScope()

	p.labels = append(p.labels, labelRecord{kind: "switch"})
	defer func() { p.labels = p.labels[:len(p.labels)-1] }()

	var cases []*ast.SwitchCase
	sawDefault := false
	for !p.eat(token.BraceR) {
		caseNs := p.startNode()
		var test ast.Expression
		if p.eat(token.Case) {
			test = p.parseExpression(false, nil)
		} else {
			p.expect(token.Default)
			if sawDefault {
				p.raise(ErrP015, "a switch statement may only have one default clause")
			}
			sawDefault = true
		}
		p.expect(token.Colon)
		var body []ast.Statement
		for !p.is(token.Case) && !p.is(token.Default) && !p.is(token.BraceR) {
			body = append(body, p.parseStatement(false))
		}
		sc := &ast.SwitchCase{Test: test, Consequent: body}
		p.finish(caseNs, &sc.Base)
		cases = append(cases, sc)
	}
	n := &ast.SwitchStatement{Discriminant: disc, Cases: cases}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseThrow() ast.Statement {
	ns := p.startNode()
	p.next()
	if p.cur.NewlineBefore {
		p.raise(ErrP015, "illegal newline after 'throw'")
	}
	arg := p.parseExpression(false, nil)
	p.semicolon()
	n := &ast.ThrowStatement{Argument: arg}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseTry() ast.Statement {
	ns := p.startNode()
	p.next()
	block := p.parseBlock()
	var handler *ast.CatchClause
	if p.eat(token.Catch) {
		cns := p.startNode()
		var param ast.Pattern
		simple := false
		if p.eat(token.ParenL) {
			param = p.parseBindingAtom()
			simple = true
			if _, ok := param.(*ast.Identifier); !ok {
				simple = false
			}
			p.expect(token.ParenR)
		}
		flags := scopeBlock
		if simple {
			flags = scopeSimpleCatch
		}
		p.enterScope(flags)
		if param != nil {
			kind := bindLexical
			if simple {
				kind = bindSimpleCatch
			}
			p.checkLValPattern(param, kind, param.Start())
		}
		p.expect(token.BraceL)
		var body []ast.Statement
		for !p.eat(token.BraceR) {
			body = append(body, p.parseStatement(false))
		}
		p.exitScope()
		bodyNode := &ast.BlockStatement{Body: body}
		catch := &ast.CatchClause{Param: param, Body: bodyNode}
		p.finish(cns, &catch.Base)
		handler = catch
	}
	var finalizer *ast.BlockStatement
	if p.eat(token.Finally) {
		finalizer = p.parseBlock()
	}
	if handler == nil && finalizer == nil {
		p.raise(ErrP015, "missing catch or finally after try")
	}
	n := &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseWhile() ast.Statement {
	ns := p.startNode()
	p.next()
	p.expect(token.ParenL)
	test := p.parseExpression(false, nil)
	p.expect(token.ParenR)
	p.labels = append(p.labels, labelRecord{kind: "loop"})
	body := p.parseStatement(false)
	p.labels = p.labels[:len(p.labels)-1]
	n := &ast.WhileStatement{Test: test, Body: body}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseDoWhile() ast.Statement {
	ns := p.startNode()
	p.next()
	p.labels = append(p.labels, labelRecord{kind: "loop"})
	body := p.parseStatement(false)
	p.labels = p.labels[:len(p.labels)-1]
	p.expect(token.While)
	p.expect(token.ParenL)
	test := p.parseExpression(false, nil)
	p.expect(token.ParenR)
	p.eat(token.Semi)
	n := &ast.DoWhileStatement{Body: body, Test: test}
	p.finish(ns, &n.Base)
	return n
}

// parseFor disambiguates the four for-statement forms: C-style,
// for-in, for-of, and for-await-of (spec.md §4.C8/§7's worked example).
func (p *Parser) parseFor() ast.Statement {
	ns := p.startNode()
	p.next()
	await := false
	if p.inAsync() && p.isContextual("await") {
		await = true
		p.next()
	}
	p.expect(token.ParenL)
	p.enterScope(scopeBlock)
	defer p.exitScope()

	if p.is(token.Semi) {
		return p.finishForCStyle(ns, nil, await)
	}

	if p.is(token.Var) || p.is(token.Const) || (p.isContextual("let") && p.letStartsDeclaration()) {
		kind := p.cur.Type.Keyword
		if kind == "" {
			kind = "let"
		}
		declNs := p.startNode()
		p.next()
		first := p.parseVarDeclarator(kind, true)
		decl := &ast.VariableDeclaration{Kind: kind, Declarations: []*ast.VariableDeclarator{first}}

		if (p.is(token.In) || p.isContextual("of")) && first.Init == nil {
			return p.finishForInOf(ns, decl, await)
		}

		for p.eat(token.Comma) {
			decl.Declarations = append(decl.Declarations, p.parseVarDeclarator(kind, true))
		}
		p.finish(declNs, &decl.Base)
		for _, d := range decl.Declarations {
			bk := bindLexical
			if kind == "var" {
				bk = bindVar
			}
			p.checkLValPattern(d.Id, bk, d.Start())
		}
		return p.finishForCStyle(ns, decl, await)
	}

	initNs := p.startNode()
	de := newDestructuringErrors()
	init := p.parseExpression(true, de)
	if p.is(token.In) || p.isContextual("of") {
		target := p.toAssignable(init, false, de)
		p.checkLValPattern(target, bindNone, initNs.start)
		return p.finishForInOf(ns, target, await)
	}
	p.checkExpressionErrors(de, true)
	return p.finishForCStyle(ns, init, await)
}

func (p *Parser) finishForInOf(ns nodeState, left ast.Node, await bool) ast.Statement {
	isOf := p.isContextual("of")
	p.next()
	var right ast.Expression
	if isOf {
		right = p.parseMaybeAssign(false, nil)
	} else {
		right = p.parseExpression(false, nil)
	}
	p.expect(token.ParenR)
	p.labels = append(p.labels, labelRecord{kind: "loop"})
	body := p.parseStatement(false)
	p.labels = p.labels[:len(p.labels)-1]
	if isOf {
		n := &ast.ForOfStatement{Left: left, Right: right, Body: body, Await: await}
		p.finish(ns, &n.Base)
		return n
	}
	if await {
		p.raise(ErrP015, "for-await is only valid with 'of'")
	}
	n := &ast.ForInStatement{Left: left, Right: right, Body: body}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) finishForCStyle(ns nodeState, init ast.Node, await bool) ast.Statement {
	if await {
		p.raise(ErrP015, "for-await is only valid with 'of'")
	}
	p.expect(token.Semi)
	var test ast.Expression
	if !p.is(token.Semi) {
		test = p.parseExpression(false, nil)
	}
	p.expect(token.Semi)
	var update ast.Expression
	if !p.is(token.ParenR) {
		update = p.parseExpression(false, nil)
	}
	p.expect(token.ParenR)
	p.labels = append(p.labels, labelRecord{kind: "loop"})
	body := p.parseStatement(false)
	p.labels = p.labels[:len(p.labels)-1]
	n := &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseBreak() ast.Statement {
	ns := p.startNode()
	p.next()
	label := p.parseBreakContinueLabel()
	p.semicolon()
	if label != nil {
		if !p.findLabel(label.Name) {
			p.raiseAt(ns.start, ErrE003, label.Name)
		}
	} else if !p.inLoopOrSwitch(false) {
		p.raiseAt(ns.start, ErrE005, "break")
	}
	n := &ast.BreakStatement{Label: label}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseContinue() ast.Statement {
	ns := p.startNode()
	p.next()
	label := p.parseBreakContinueLabel()
	p.semicolon()
	if label != nil {
		// unlike break, continue's named label must itself label a loop --
		// labeling a block or switch isn't enough, even if some unrelated
		// loop happens to enclose the continue (spec.md §4.C8).
		kind, ok := p.labelKind(label.Name)
		if !ok {
			p.raiseAt(ns.start, ErrE003, label.Name)
		} else if kind != "loop" {
			p.raiseAt(ns.start, ErrE005, "continue")
		}
	} else if !p.inLoopOrSwitch(true) {
		p.raiseAt(ns.start, ErrE005, "continue")
	}
	n := &ast.ContinueStatement{Label: label}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseVarStatement(kind string) ast.Statement {
	ns := p.startNode()
	p.next()
	decl := p.parseVar(kind, false)
	p.semicolon()
	p.finish(ns, &decl.Base)
	return decl
}

// parseVar parses the declarator list of a var/let/const statement. The
// declaration-form for-loop head does not come through here: parseFor calls
// parseVarDeclarator itself with noIn set, so `for (var x in y)` parses
// correctly.
func (p *Parser) parseVar(kind string, noIn bool) *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{Kind: kind}
	decl.Declarations = append(decl.Declarations, p.parseVarDeclarator(kind, noIn))
	for p.eat(token.Comma) {
		decl.Declarations = append(decl.Declarations, p.parseVarDeclarator(kind, noIn))
	}
	bk := bindLexical
	if kind == "var" {
		bk = bindVar
	}
	for _, d := range decl.Declarations {
		p.checkLValPattern(d.Id, bk, d.Start())
	}
	return decl
}

func (p *Parser) parseVarDeclarator(kind string, noIn bool) *ast.VariableDeclarator {
	ns := p.startNode()
	id := p.parseBindingAtom()
	var init ast.Expression
	if p.eat(token.Eq) {
		init = p.parseMaybeAssign(noIn, nil)
	} else if kind == "const" && !noIn {
		if _, ok := id.(*ast.Identifier); ok {
			p.raise(ErrP015, "missing initializer in const declaration")
		}
	} else if _, ok := id.(*ast.Identifier); !ok && !noIn {
		p.raise(ErrP015, "missing initializer in destructuring declaration")
	}
	n := &ast.VariableDeclarator{Id: id, Init: init}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
	ns := p.startNode()
	p.next()
	generator := p.eat(token.Star)
	idNs := p.startNode()
	name := p.parseIdentifierName()
	id := &ast.Identifier{Name: name}
	p.finish(idNs, &id.Base)
	p.declareName(name, bindFunction, idNs.start)

	fn := &ast.FunctionDeclaration{Id: id, Async: async, Generator: generator}
	flags := scopeFunction | scopeTopLevel
	if generator {
		flags |= scopeGenerator
	}
	if async {
		flags |= scopeAsync
	}
	p.enterScope(flags)
	clashes := make(checkClashes)
	fn.Params = p.parseFunctionParams(clashes)
	fn.Body = p.parseFunctionBody(true)
	p.exitScope()
	p.finish(ns, &fn.Base)
	return fn
}

func (p *Parser) parseWith() ast.Statement {
	ns := p.startNode()
	if p.strict {
		p.raise(ErrE008)
	}
	p.next()
	p.expect(token.ParenL)
	obj := p.parseExpression(false, nil)
	p.expect(token.ParenR)
	body := p.parseStatement(false)
	n := &ast.WithStatement{Object: obj, Body: body}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseDebugger() ast.Statement {
	ns := p.startNode()
	p.next()
	p.semicolon()
	n := &ast.DebuggerStatement{}
	p.finish(ns, &n.Base)
	return n
}

// parseExpressionOrLabeledStatement parses a bare expression statement, or
// re-interprets it as a LabeledStatement when the expression turns out to
// be a single Identifier immediately followed by `:` (spec.md §4.C8's
// retroactive-reinterpretation case).
func (p *Parser) parseExpressionOrLabeledStatement() ast.Statement {
	ns := p.startNode()
	startTok := p.cur

	if p.is(token.Name) {
		expr := p.parseExpression(false, nil)
		if id, ok := expr.(*ast.Identifier); ok && p.eat(token.Colon) {
			return p.finishLabeledStatement(ns, id, startTok.Start)
		}
		return p.finishExpressionStatement(ns, expr)
	}

	expr := p.parseExpression(false, nil)
	return p.finishExpressionStatement(ns, expr)
}

func (p *Parser) finishExpressionStatement(ns nodeState, expr ast.Expression) ast.Statement {
	p.semicolon()
	n := &ast.ExpressionStatement{Expression: expr}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) finishLabeledStatement(ns nodeState, label *ast.Identifier, pos int) ast.Statement {
	if p.findLabel(label.Name) {
		p.raiseAt(pos, ErrE004, label.Name)
	}
	kind := ""
	if p.is(token.For) || p.is(token.While) || p.is(token.Do) {
		kind = "loop"
	} else if p.is(token.Switch) {
		kind = "switch"
	}
	// `L: M: while (...)` parses M's LabeledStatement starting exactly
	// where L recorded its own nested statement as beginning (see the
	// statementStart assignment below), so a chain of directly-nested
	// labels retroactively inherits the kind of whatever they actually
	// wrap, not just the placeholder kind seen one token ahead.
	for i := len(p.labels) - 1; i >= 0; i-- {
		if p.labels[i].statementStart != ns.start {
			break
		}
		p.labels[i].kind = kind
	}
	p.labels = append(p.labels, labelRecord{name: label.Name, kind: kind, statementStart: p.cur.Start})
	body := p.parseStatement(false)
	p.labels = p.labels[:len(p.labels)-1]
	n := &ast.LabeledStatement{Label: label, Body: body}
	p.finish(ns, &n.Base)
	return n
}

// parseBreakContinueLabel reads an optional label identifier immediately
// following `break`/`continue`; ASI forbids a line terminator between the
// keyword and its label, so a newline there means the label is absent.
func (p *Parser) parseBreakContinueLabel() *ast.Identifier {
	if p.is(token.Name) && !p.cur.NewlineBefore {
		ns := p.startNode()
		name, _ := p.cur.Value.(string)
		p.next()
		id := &ast.Identifier{Name: name}
		p.finish(ns, &id.Base)
		return id
	}
	return nil
}

func (p *Parser) findLabel(name string) bool {
	for _, l := range p.labels {
		if l.name == name {
			return true
		}
	}
	return false
}

// labelKind returns the named label's own kind ("loop", "switch", or "" for
// a label wrapping neither), and whether that label exists at all.
func (p *Parser) labelKind(name string) (string, bool) {
	for _, l := range p.labels {
		if l.name == name {
			return l.kind, true
		}
	}
	return "", false
}

func (p *Parser) inLoopOrSwitch(wantLoop bool) bool {
	for _, l := range p.labels {
		if wantLoop && l.kind == "loop" {
			return true
		}
		if !wantLoop && (l.kind == "loop" || l.kind == "switch") {
			return true
		}
	}
	return false
}
