package parser

import (
	"math/big"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseExpression parses a full expression, including the top-level comma
// operator (spec.md §4.C7).
func (p *Parser) parseExpression(noIn bool, de *destructuringErrors) ast.Expression {
	ns := p.startNode()
	expr := p.parseMaybeAssign(noIn, de)
	if p.is(token.Comma) {
		exprs := []ast.Expression{expr}
		for p.eat(token.Comma) {
			exprs = append(exprs, p.parseMaybeAssign(noIn, de))
		}
		seq := &ast.SequenceExpression{Expressions: exprs}
		p.finish(ns, &seq.Base)
		return seq
	}
	return expr
}

// parseMaybeAssign is the entry point for anything that might be an
// assignment expression: it also handles yield and the arrow-function
// detection that can only be confirmed after parsing a parenthesized list
// or a bare identifier followed by `=>` (spec.md §4.C7/§7).
func (p *Parser) parseMaybeAssign(noIn bool, de *destructuringErrors) ast.Expression {
	if p.inGenerator() && p.isContextual("yield") {
		return p.parseYield(noIn)
	}

	ns := p.startNode()
	ownDE := de
	if ownDE == nil {
		ownDE = newDestructuringErrors()
	}
	startPos := p.cur.Start

	if p.is(token.ParenL) || p.is(token.Name) {
		p.potentialArrowAt = p.cur.Start
	}

	left := p.parseMaybeConditional(noIn, ownDE)

	if p.cur.Type.IsAssign {
		op, _ := p.cur.Value.(string)
		if op == "" {
			op = "="
		}
		target := p.toAssignable(left, false, ownDE)
		ownDE.shorthandAssign = -1
		ownDE.trailingComma = -1
		ownDE.doubleProto = -1
		p.checkLValPattern(target, bindNone, startPos)
		p.next()
		right := p.parseMaybeAssign(noIn, nil)
		assign := &ast.AssignmentExpression{Operator: op, Left: target, Right: right}
		p.finish(ns, &assign.Base)
		return assign
	}

	if de == nil {
		p.checkExpressionErrors(ownDE, true)
	}
	return left
}

// parseYield handles `yield`, `yield expr`, and `yield* expr`.
func (p *Parser) parseYield(noIn bool) ast.Expression {
	ns := p.startNode()
	p.next()
	y := &ast.YieldExpression{}
	if p.is(token.Star) {
		y.Delegate = true
		p.next()
		y.Argument = p.parseMaybeAssign(noIn, nil)
	} else if !p.canInsertSemicolon() && !p.is(token.Semi) && !p.is(token.ParenR) && !p.is(token.BracketR) &&
		!p.is(token.BraceR) && !p.is(token.Colon) && !p.is(token.Comma) && !p.is(token.EOF) {
		y.Argument = p.parseMaybeAssign(noIn, nil)
	}
	p.finish(ns, &y.Base)
	return y
}

func (p *Parser) parseMaybeConditional(noIn bool, de *destructuringErrors) ast.Expression {
	ns := p.startNode()
	expr := p.parseExprOps(noIn, de)
	if p.is(token.Question) {
		if p.checkExpressionErrors(de, true) {
			return expr
		}
		p.next()
		cons := p.parseMaybeAssign(false, nil)
		p.expect(token.Colon)
		alt := p.parseMaybeAssign(noIn, nil)
		cond := &ast.ConditionalExpression{Test: expr, Consequent: cons, Alternate: alt}
		p.finish(ns, &cond.Base)
		return cond
	}
	return expr
}

func (p *Parser) parseExprOps(noIn bool, de *destructuringErrors) ast.Expression {
	ns := p.startNode()
	expr := p.parseMaybeUnary(de, false)
	if p.checkExpressionErrors(de, false) {
		return expr
	}
	return p.parseExprOp(expr, ns, 0, noIn)
}

// opPrec reports the binding power of the current token as a binary
// operator, treating `**` as a higher-than-multiplicative, right-associative
// operator that the shared token.Type table does not otherwise distinguish.
func (p *Parser) opPrec(noIn bool) int {
	if p.is(token.In) && noIn {
		return 0
	}
	if p.is(token.StarStar) {
		return 11
	}
	return p.cur.Type.Binop
}

func (p *Parser) parseExprOp(left ast.Expression, leftNs nodeState, minPrec int, noIn bool) ast.Expression {
	prec := p.opPrec(noIn)
	if prec > minPrec {
		logical := p.is(token.LogicalAnd) || p.is(token.LogicalOr) || p.is(token.NullishCoalescing)
		op := p.operatorText()
		p.next()
		rightStart := p.startNode()
		rightAssoc := prec == 11
		nextMin := prec
		if rightAssoc {
			nextMin = prec - 1
		} else if op == "??" {
			nextMin = token.LogicalAnd.Binop
		}
		right := p.parseExprOp(p.parseMaybeUnary(nil, false), rightStart, nextMin, noIn)
		node := p.buildBinary(leftNs, left, op, right, logical)
		if op == "??" || (logical && (op == "&&" || op == "||")) {
			p.rejectMixedLogicalNode(node)
		}
		return p.parseExprOp(node, leftNs, minPrec, noIn)
	}
	return left
}

func (p *Parser) operatorText() string {
	if s, ok := p.cur.Value.(string); ok && s != "" {
		return s
	}
	return p.cur.Type.Label
}

func (p *Parser) buildBinary(ns nodeState, left ast.Expression, op string, right ast.Expression, logical bool) ast.Expression {
	if logical {
		n := &ast.LogicalExpression{Operator: op, Left: left, Right: right}
		p.finish(ns, &n.Base)
		return n
	}
	n := &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	p.finish(ns, &n.Base)
	return n
}

// rejectMixedLogicalNode raises when a freshly built logical node is directly
// followed by an unparenthesized operator it may not mix with: `&&`/`||`
// after a `??` node, or `??` after an `&&`/`||` node. A parenthesized
// operand is already complete by then, so `(a && b) ?? c` is accepted.
func (p *Parser) rejectMixedLogicalNode(node ast.Expression) {
	l, ok := node.(*ast.LogicalExpression)
	if !ok {
		return
	}
	if l.Operator == "??" {
		if p.is(token.LogicalAnd) || p.is(token.LogicalOr) {
			p.raise(ErrP015, "the '??' operator requires parentheses when mixed with '&&' or '||'")
		}
	} else {
		if p.is(token.NullishCoalescing) {
			p.raise(ErrP015, "the '??' operator requires parentheses when mixed with '&&' or '||'")
		}
	}
}

// parseMaybeUnary handles prefix unary/update operators, `await`, and the
// `**` right-operand restriction against an unparenthesized unary
// expression on the left (`-x ** y` is a syntax error; `(-x) ** y` is not).
func (p *Parser) parseMaybeUnary(de *destructuringErrors, sawUnary bool) ast.Expression {
	ns := p.startNode()
	if p.inAsync() && p.isContextual("await") {
		await := p.parseAwait()
		if p.is(token.StarStar) {
			p.raise(ErrP015, "unary expression cannot appear on the left-hand side of '**'; wrap it in parentheses")
		}
		return await
	}
	if p.cur.Type.Prefix {
		op := p.operatorText()
		update := p.is(token.IncDec)
		p.next()
		argument := p.parseMaybeUnary(nil, true)
		if update {
			p.checkLValSimple(argument, bindNone, ns.start)
		} else if op == "delete" {
			if id, ok := argument.(*ast.Identifier); ok && p.strict {
				p.raiseAt(ns.start, ErrP015, "delete of an unqualified identifier '"+id.Name+"' in strict mode")
			}
		}
		if update {
			n := &ast.UpdateExpression{Operator: op, Prefix: true, Argument: argument}
			p.finish(ns, &n.Base)
			return n
		}
		n := &ast.UnaryExpression{Operator: op, Prefix: true, Argument: argument}
		p.finish(ns, &n.Base)
		if p.is(token.StarStar) {
			p.raise(ErrP015, "unary expression cannot appear on the left-hand side of '**'; wrap it in parentheses")
		}
		return n
	}

	expr := p.parseExprSubscripts(de)
	if p.checkExpressionErrors(de, false) {
		return expr
	}
	for p.cur.Type.Postfix && !p.canInsertSemicolon() {
		op := p.operatorText()
		p.checkLValSimple(expr, bindNone, ns.start)
		p.next()
		n := &ast.UpdateExpression{Operator: op, Prefix: false, Argument: expr}
		p.finish(ns, &n.Base)
		expr = n
	}
	return expr
}

func (p *Parser) parseAwait() ast.Expression {
	ns := p.startNode()
	p.next()
	n := &ast.AwaitExpression{Argument: p.parseMaybeUnary(nil, true)}
	p.finish(ns, &n.Base)
	return n
}

// parseExprSubscripts parses a primary expression followed by any chain of
// member accesses, calls, and tagged templates, wrapping the whole spine in
// a ChainExpression when an optional-chaining `?.` appeared anywhere in it.
func (p *Parser) parseExprSubscripts(de *destructuringErrors) ast.Expression {
	ns := p.startNode()
	expr := p.parseExprAtom(de)
	result, sawOptional := p.parseSubscripts(expr, ns, false)
	if sawOptional {
		chain := &ast.ChainExpression{Expression: result}
		p.finish(ns, &chain.Base)
		return chain
	}
	return result
}

func (p *Parser) parseSubscripts(base ast.Expression, ns nodeState, noCalls bool) (ast.Expression, bool) {
	sawOptional := false
	for {
		optional := false
		if p.is(token.QuestionDot) {
			optional = true
			sawOptional = true
			p.next()
			if p.is(token.ParenL) {
				if noCalls {
					return base, sawOptional
				}
				args := p.parseExprList(token.ParenR)
				n := &ast.CallExpression{Callee: base, Arguments: args, Optional: true}
				p.finish(ns, &n.Base)
				base = n
				continue
			}
			if p.is(token.BracketL) {
				p.next()
				prop := p.parseExpression(false, nil)
				p.expect(token.BracketR)
				n := &ast.MemberExpression{Object: base, Property: prop, Computed: true, Optional: true}
				p.finish(ns, &n.Base)
				base = n
				continue
			}
			prop := p.parsePropertyAccessName()
			n := &ast.MemberExpression{Object: base, Property: prop, Computed: false, Optional: true}
			p.finish(ns, &n.Base)
			base = n
			continue
		}
		if p.eat(token.Dot) {
			prop := p.parsePropertyAccessName()
			n := &ast.MemberExpression{Object: base, Property: prop, Computed: false, Optional: optional}
			p.finish(ns, &n.Base)
			base = n
			continue
		}
		if p.eat(token.BracketL) {
			prop := p.parseExpression(false, nil)
			p.expect(token.BracketR)
			n := &ast.MemberExpression{Object: base, Property: prop, Computed: true, Optional: optional}
			p.finish(ns, &n.Base)
			base = n
			continue
		}
		if !noCalls && p.is(token.ParenL) {
			args := p.parseExprList(token.ParenR)
			n := &ast.CallExpression{Callee: base, Arguments: args, Optional: optional}
			p.finish(ns, &n.Base)
			base = n
			continue
		}
		if p.is(token.BackQuote) {
			if sawOptional {
				p.raise(ErrP015, "tagged templates cannot be used with optional chaining")
			}
			quasi := p.parseTemplateLiteral()
			n := &ast.TaggedTemplateExpression{Tag: base, Quasi: quasi}
			p.finish(ns, &n.Base)
			base = n
			continue
		}
		break
	}
	return base, sawOptional
}

// parsePropertyAccessName parses the `.name`/`.#name` member name, i.e. any
// identifier name (keywords included) or a private name.
func (p *Parser) parsePropertyAccessName() ast.Expression {
	if p.is(token.PrivateName) {
		ns := p.startNode()
		name, _ := p.cur.Value.(string)
		p.usePrivateName(name, ns.start)
		p.next()
		n := &ast.PrivateIdentifier{Name: name}
		p.finish(ns, &n.Base)
		return n
	}
	ns := p.startNode()
	name := p.identifierNameFromCurrent()
	p.next()
	n := &ast.Identifier{Name: name}
	p.finish(ns, &n.Base)
	return n
}

// identifierNameFromCurrent reads the spelling of the current token as a
// property name, accepting any reserved word since member names are never
// restricted.
func (p *Parser) identifierNameFromCurrent() string {
	if p.cur.Type.Keyword != "" {
		return p.cur.Type.Keyword
	}
	if s, ok := p.cur.Value.(string); ok {
		return s
	}
	p.unexpected()
	return ""
}

// parseExprList parses a parenthesized, comma-separated, closeTok-terminated
// argument list (call and `new` arguments); entries may be *ast.SpreadElement.
func (p *Parser) parseExprList(closeTok token.Type) []ast.Expression {
	p.expect(token.ParenL)
	var list []ast.Expression
	first := true
	for !p.eat(closeTok) {
		if !first {
			p.expect(token.Comma)
			if p.eat(closeTok) {
				break
			}
		}
		first = false
		if p.is(token.Ellipsis) {
			ns := p.startNode()
			p.next()
			n := &ast.SpreadElement{Argument: p.parseMaybeAssign(false, nil)}
			p.finish(ns, &n.Base)
			list = append(list, n)
			continue
		}
		list = append(list, p.parseMaybeAssign(false, nil))
	}
	return list
}

// parseExprAtom parses a primary (terminal) expression: the large dispatch
// spec.md §4.C7 describes as "the heaviest single function in the parser".
func (p *Parser) parseExprAtom(de *destructuringErrors) ast.Expression {
	switch {
	case p.is(token.Num):
		return p.parseLiteral(p.cur.Value)
	case p.is(token.BigIntLit):
		ns := p.startNode()
		v, _ := p.cur.Value.(*big.Int)
		n := &ast.Literal{Value: v, BigInt: v.String()}
		p.next()
		p.finish(ns, &n.Base)
		return n
	case p.is(token.String):
		return p.parseLiteral(p.cur.Value)
	case p.is(token.Regexp):
		ns := p.startNode()
		info, _ := p.cur.Value.(struct {
			Pattern string
			Flags   string
		})
		n := &ast.Literal{Regex: &ast.RegexLiteralInfo{Pattern: info.Pattern, Flags: info.Flags}}
		p.next()
		p.finish(ns, &n.Base)
		return n
	case p.is(token.Null):
		ns := p.startNode()
		p.next()
		n := &ast.Literal{Value: nil, Raw: "null"}
		p.finish(ns, &n.Base)
		return n
	case p.is(token.True), p.is(token.False):
		ns := p.startNode()
		v := p.is(token.True)
		p.next()
		n := &ast.Literal{Value: v}
		p.finish(ns, &n.Base)
		return n
	case p.is(token.This):
		ns := p.startNode()
		p.next()
		n := &ast.ThisExpression{}
		p.finish(ns, &n.Base)
		return n
	case p.is(token.Super):
		ns := p.startNode()
		if !p.allowSuper() {
			p.raise(ErrP011)
		}
		p.next()
		if !p.is(token.Dot) && !p.is(token.BracketL) && !p.is(token.ParenL) {
			p.unexpected()
		}
		if p.is(token.ParenL) && !p.allowDirectSuper() {
			p.raise(ErrP011)
		}
		n := &ast.Super{}
		p.finish(ns, &n.Base)
		return n
	case p.is(token.BracketL):
		return p.parseArrayExpr()
	case p.is(token.BraceL):
		return p.parseObj(false, de).(ast.Expression)
	case p.is(token.Function):
		return p.parseFunctionExpr(false)
	case p.is(token.Class):
		return p.parseClass(false)
	case p.is(token.New):
		return p.parseNewExpr()
	case p.is(token.BackQuote):
		return p.parseTemplateLiteral()
	case p.is(token.ParenL):
		return p.parseParenAndDistinguishExpression(p.startNode(), false)
	case p.is(token.PrivateName):
		ns := p.startNode()
		name, _ := p.cur.Value.(string)
		p.usePrivateName(name, ns.start)
		p.next()
		n := &ast.PrivateIdentifier{Name: name}
		p.finish(ns, &n.Base)
		return n
	case p.is(token.Import):
		return p.parseImportExprOrMeta()
	case p.isContextual("async") && !p.cur.ContainsEsc:
		return p.parseAsyncAtom(de)
	case p.is(token.Name):
		return p.parseIdentOrArrow(de)
	}
	p.unexpected()
	return nil
}

func (p *Parser) parseLiteral(value interface{}) ast.Expression {
	ns := p.startNode()
	n := &ast.Literal{Value: value}
	p.next()
	p.finish(ns, &n.Base)
	return n
}

// parseIdentOrArrow parses a bare identifier, treating it as the sole
// parameter of a single-identifier arrow function when it is immediately
// followed by `=>` on the same line.
func (p *Parser) parseIdentOrArrow(de *destructuringErrors) ast.Expression {
	ns := p.startNode()
	name := p.parseIdentifierName()
	id := &ast.Identifier{Name: name}
	p.finish(ns, &id.Base)
	if !p.canInsertSemicolon() && p.is(token.Arrow) {
		return p.parseArrowExpression(ns, []ast.Pattern{id}, false)
	}
	return id
}

// parseIdentifierName reads the current Name token's spelling, validating
// against strict-mode reserved words and always-reserved words.
func (p *Parser) parseIdentifierName() string {
	if !p.is(token.Name) {
		p.unexpected()
	}
	name, _ := p.cur.Value.(string)
	if p.strict && token.StrictReserved[name] {
		p.raise(ErrP007, name)
	}
	p.next()
	return name
}

// parseAsyncAtom handles the many roles the contextual keyword `async` can
// play: a plain identifier, `async function`, `async (params) => body`, and
// `async ident => body`.
func (p *Parser) parseAsyncAtom(de *destructuringErrors) ast.Expression {
	ns := p.startNode()
	asyncStart := p.cur.Start
	p.next()
	if p.canInsertSemicolon() {
		id := &ast.Identifier{Name: "async"}
		p.finishAt(ns, &id.Base, asyncStart+len("async"), ns.startLoc)
		return id
	}
	if p.is(token.Function) {
		return p.parseFunctionExprFrom(ns, true)
	}
	if p.is(token.Name) && !p.cur.ContainsEsc {
		paramName, _ := p.cur.Value.(string)
		p.next()
		if !p.canInsertSemicolon() && p.is(token.Arrow) {
			id := &ast.Identifier{Name: paramName}
			return p.parseArrowExpression(ns, []ast.Pattern{id}, true)
		}
		id := &ast.Identifier{Name: "async"}
		p.finishAt(ns, &id.Base, asyncStart+len("async"), ns.startLoc)
		result, _ := p.parseSubscripts(id, ns, false)
		return result
	}
	if p.is(token.ParenL) && p.potentialArrowAt == asyncStart {
		return p.parseParenAndDistinguishExpression(ns, true)
	}
	id := &ast.Identifier{Name: "async"}
	p.finishAt(ns, &id.Base, asyncStart+len("async"), ns.startLoc)
	return id
}

func (p *Parser) parseImportExprOrMeta() ast.Expression {
	ns := p.startNode()
	p.next()
	if p.is(token.Dot) {
		p.next()
		p.expectContextual("meta")
		meta := &ast.Identifier{Name: "import"}
		prop := &ast.Identifier{Name: "meta"}
		n := &ast.MetaProperty{Meta: meta, Property: prop}
		p.finish(ns, &n.Base)
		return n
	}
	p.expect(token.ParenL)
	src := p.parseMaybeAssign(false, nil)
	p.eat(token.Comma)
	p.expect(token.ParenR)
	n := &ast.ImportExpression{Source: src}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseArrayExpr() ast.Expression {
	ns := p.startNode()
	p.expect(token.BracketL)
	var elems []ast.Expression
	for !p.eat(token.BracketR) {
		if p.is(token.Comma) {
			p.next()
			elems = append(elems, nil)
			continue
		}
		if p.is(token.Ellipsis) {
			spNs := p.startNode()
			p.next()
			sp := &ast.SpreadElement{Argument: p.parseMaybeAssign(false, nil)}
			p.finish(spNs, &sp.Base)
			elems = append(elems, sp)
		} else {
			elems = append(elems, p.parseMaybeAssign(false, nil))
		}
		if !p.is(token.BracketR) {
			p.expect(token.Comma)
		}
	}
	n := &ast.ArrayExpression{Elements: elems}
	p.finish(ns, &n.Base)
	return n
}

// parseObj parses an object literal (isPattern false) or an object binding
// pattern (isPattern true) directly, as opposed to via the assignable
// converter -- used for declaration/parameter destructuring where the
// pattern role is already known up front.
func (p *Parser) parseObj(isPattern bool, de *destructuringErrors) ast.Node {
	ns := p.startNode()
	p.expect(token.BraceL)
	var props []ast.Node
	first := true
	sawProto := false
	for !p.eat(token.BraceR) {
		if !first {
			p.expect(token.Comma)
			if p.is(token.BraceR) {
				if de != nil {
					de.trailingComma = p.lastTokEnd
				}
				p.next()
				break
			}
		}
		first = false

		if p.is(token.Ellipsis) {
			spNs := p.startNode()
			p.next()
			if isPattern {
				rest := &ast.RestElement{Argument: p.toAssignable(p.parseMaybeAssign(false, nil), true, de).(ast.Pattern)}
				p.finish(spNs, &rest.Base)
				props = append(props, rest)
			} else {
				sp := &ast.SpreadElement{Argument: p.parseMaybeAssign(false, nil)}
				p.finish(spNs, &sp.Base)
				props = append(props, sp)
			}
			continue
		}

		prop, isProto := p.parseProperty(isPattern, de)
		if isProto {
			if sawProto && de != nil && de.doubleProto < 0 {
				de.doubleProto = prop.Start()
			}
			sawProto = true
		}
		props = append(props, prop)
	}
	if isPattern {
		n := &ast.ObjectPattern{Properties: props}
		p.finish(ns, &n.Base)
		return n
	}
	n := &ast.ObjectExpression{Properties: props}
	p.finish(ns, &n.Base)
	return n
}

// parseProperty parses one object literal/pattern member, returning whether
// it is a plain, non-computed, non-shorthand, non-method `__proto__: value`
// entry (relevant to the duplicate-__proto__ early error; spec.md §9 notes
// the legacy pre-ES6 variant of this check is an intentional omission).
func (p *Parser) parseProperty(isPattern bool, de *destructuringErrors) (ast.Node, bool) {
	ns := p.startNode()

	if !isPattern && p.isContextual("async") && !p.cur.NewlineBefore && p.peekStartsPropertyName() {
		p.next()
		generator := p.eat(token.Star)
		key, computed := p.parsePropertyName()
		return p.finishMethodProperty(ns, key, computed, "init", true, generator), false
	}

	if !isPattern && p.is(token.Star) {
		p.next()
		key, computed := p.parsePropertyName()
		return p.finishMethodProperty(ns, key, computed, "init", false, true), false
	}

	if !isPattern && (p.isContextual("get") || p.isContextual("set")) && p.peekStartsPropertyName() {
		kind := p.cur.Value.(string)
		p.next()
		key, computed := p.parsePropertyName()
		return p.finishMethodProperty(ns, key, computed, kind, false, false), false
	}

	key, computed := p.parsePropertyName()

	if !computed && !isPattern && p.is(token.ParenL) {
		return p.finishMethodProperty(ns, key, computed, "init", false, false), isLiteralProtoKey(key)
	}

	prop := &ast.Property{Key: key, Computed: computed, Kind: "init"}
	if p.eat(token.Colon) {
		if isPattern {
			prop.Value = p.toAssignable(p.parseMaybeAssign(false, de), true, de)
		} else {
			prop.Value = p.parseMaybeAssign(false, de)
		}
	} else if p.is(token.Eq) {
		prop.Shorthand = true
		p.next()
		right := p.parseMaybeAssign(false, nil)
		if id, ok := key.(*ast.Identifier); ok {
			ap := &ast.AssignmentPattern{Left: id, Right: right}
			p.finishAt(ns, &ap.Base, p.lastTokEnd, p.lastTokEndLoc)
			prop.Value = ap
		}
		if de != nil && de.shorthandAssign < 0 {
			de.shorthandAssign = ns.start
		}
	} else {
		prop.Shorthand = true
		prop.Value = key
	}
	p.finish(ns, &prop.Base)
	return prop, !computed && !prop.Shorthand && isLiteralProtoKey(key)
}

func isLiteralProtoKey(key ast.Expression) bool {
	if id, ok := key.(*ast.Identifier); ok {
		return id.Name == "__proto__"
	}
	if lit, ok := key.(*ast.Literal); ok {
		if s, ok := lit.Value.(string); ok {
			return s == "__proto__"
		}
	}
	return false
}


func (p *Parser) finishMethodProperty(ns nodeState, key ast.Expression, computed bool, kind string, async bool, generator bool) ast.Node {
	fn := p.parseMethodFunction(async, generator)
	prop := &ast.Property{Key: key, Value: fn, Kind: kind, Computed: computed, Method: kind == "init"}
	p.finish(ns, &prop.Base)
	return prop
}

// parseMethodFunction parses a method's `(params) { body }` with `this`
// bound (no separate function name; super is allowed, direct super is not).
func (p *Parser) parseMethodFunction(async, generator bool) *ast.FunctionExpression {
	ns := p.startNode()
	fn := &ast.FunctionExpression{Async: async, Generator: generator}
	flags := scopeFunction
	if generator {
		flags |= scopeGenerator
	}
	if async {
		flags |= scopeAsync
	}
	flags |= scopeSuperAllowed
	p.enterScope(flags)
	defer p.exitScope()
	fn.Params = p.parseFunctionParams(nil)
	fn.Body = p.parseFunctionBody(false)
	p.finish(ns, &fn.Base)
	return fn
}

// parsePropertyName parses a property key: a plain name, string, number, or
// a `[computed]` expression.
func (p *Parser) parsePropertyName() (ast.Expression, bool) {
	if p.eat(token.BracketL) {
		expr := p.parseMaybeAssign(false, nil)
		p.expect(token.BracketR)
		return expr, true
	}
	ns := p.startNode()
	switch {
	case p.is(token.String), p.is(token.Num):
		n := &ast.Literal{Value: p.cur.Value}
		p.next()
		p.finish(ns, &n.Base)
		return n, false
	case p.is(token.PrivateName):
		name, _ := p.cur.Value.(string)
		p.next()
		n := &ast.PrivateIdentifier{Name: name}
		p.finish(ns, &n.Base)
		return n, false
	default:
		name := p.identifierNameFromCurrent()
		p.next()
		n := &ast.Identifier{Name: name}
		p.finish(ns, &n.Base)
		return n, false
	}
}

func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	ns := p.startNode()
	if !p.is(token.BackQuote) {
		p.unexpected()
	}
	var quasis []*ast.TemplateElement
	var exprs []ast.Expression
	for {
		qns := p.startNode()
		tok := p.lex.ReadTemplateToken()
		val, _ := tok.Value.(struct {
			Raw    string
			Cooked string
			Tail   bool
		})
		el := &ast.TemplateElement{Raw: val.Raw, Cooked: val.Cooked, Tail: val.Tail}
		p.finishAt(qns, &el.Base, tok.End, ast.Position{Line: tok.Line, Column: tok.Column})
		quasis = append(quasis, el)
		p.cur = tok
		p.next()
		if val.Tail {
			break
		}
		exprs = append(exprs, p.parseExpression(false, nil))
		if !p.is(token.BraceR) {
			p.unexpected()
		}
	}
	n := &ast.TemplateLiteral{Quasis: quasis, Expressions: exprs}
	p.finish(ns, &n.Base)
	return n
}

// parseParenAndDistinguishExpression parses a `(...)` group that might be a
// parenthesized expression, an arrow-function parameter list, or (if
// preserveParens is set) a ParenthesizedExpression wrapper -- the single
// most structurally ambiguous production in the grammar (spec.md §7).
func (p *Parser) parseParenAndDistinguishExpression(arrowNs nodeState, async bool) ast.Expression {
	ns := p.startNode()
	startPos := p.cur.Start
	canBeArrow := async || startPos == p.potentialArrowAt
	p.expect(token.ParenL)

	de := newDestructuringErrors()
	var exprs []ast.Expression
	first := true
	sawSpread := false
	for !p.is(token.ParenR) {
		if !first {
			p.expect(token.Comma)
			if p.is(token.ParenR) {
				de.trailingComma = p.lastTokEnd
				break
			}
		}
		first = false
		if p.is(token.Ellipsis) {
			sawSpread = true
			spNs := p.startNode()
			p.next()
			sp := &ast.SpreadElement{Argument: p.parseMaybeAssign(false, nil)}
			p.finish(spNs, &sp.Base)
			exprs = append(exprs, sp)
			break
		}
		exprs = append(exprs, p.parseMaybeAssign(false, de))
	}
	p.expect(token.ParenR)

	if !p.canInsertSemicolon() && p.is(token.Arrow) && canBeArrow {
		params := p.toAssignableList(exprs)
		return p.parseArrowExpression(arrowNs, params, async)
	}

	if sawSpread || len(exprs) == 0 {
		p.unexpected()
	}

	p.checkExpressionErrors(de, true)
	p.checkPatternErrors(de, false)

	var result ast.Expression
	if len(exprs) == 1 {
		result = exprs[0]
	} else {
		seq := &ast.SequenceExpression{Expressions: exprs}
		p.finishAt(ns, &seq.Base, p.lastTokEnd, p.lastTokEndLoc)
		result = seq
	}

	if p.opts.PreserveParens {
		wrap := &ast.ParenthesizedExpression{Expression: result}
		p.finish(ns, &wrap.Base)
		return wrap
	}
	return result
}

// parseArrowExpression finishes an arrow function once `=>` has been
// recognized; params have already been parsed as an assignable list.
func (p *Parser) parseArrowExpression(ns nodeState, params []ast.Pattern, async bool) ast.Expression {
	p.expect(token.Arrow)
	fn := &ast.ArrowFunctionExpression{Params: params, Async: async}
	flags := scopeFunction | scopeArrow
	if async {
		flags |= scopeAsync
	}
	p.enterScope(flags)
	defer p.exitScope()
	clashes := make(checkClashes)
	for _, param := range params {
		p.checkLValPattern(param, bindLexical, param.Start())
		p.checkParamClash(param, clashes, param.Start())
	}
	if p.is(token.BraceL) {
		fn.Body = p.parseFunctionBody(false)
	} else {
		fn.Body = p.parseMaybeAssign(false, nil)
	}
	p.finish(ns, &fn.Base)
	return fn
}

// parseFunctionExpr and parseFunctionExprFrom parse `[async] function [*]
// [Id] (Params) Body` as an expression; the function's own name, if any, is
// visible inside its own body (a named function expression scope) but is
// not declared into the enclosing scope.
func (p *Parser) parseFunctionExpr(async bool) ast.Expression {
	ns := p.startNode()
	return p.parseFunctionExprFrom(ns, async)
}

func (p *Parser) parseFunctionExprFrom(ns nodeState, async bool) ast.Expression {
	p.expect(token.Function)
	generator := p.eat(token.Star)
	fn := &ast.FunctionExpression{Async: async, Generator: generator}
	flags := scopeFunction | scopeTopLevel
	if generator {
		flags |= scopeGenerator
	}
	if async {
		flags |= scopeAsync
	}
	p.enterScope(flags)
	defer p.exitScope()
	if p.is(token.Name) {
		idNs := p.startNode()
		name := p.parseIdentifierName()
		id := &ast.Identifier{Name: name}
		p.finish(idNs, &id.Base)
		fn.Id = id
		p.declareName(name, bindFunction, idNs.start)
	}
	fn.Params = p.parseFunctionParams(nil)
	fn.Body = p.parseFunctionBody(false)
	p.finish(ns, &fn.Base)
	return fn
}

// parseFunctionParams parses a `(Pattern, ...)` list; clashes, when
// non-nil, is reused so declaration- and parameter-level duplicate checks
// can share one table (only used by the statement-level function
// declaration path).
func (p *Parser) parseFunctionParams(clashes checkClashes) []ast.Pattern {
	p.expect(token.ParenL)
	var params []ast.Pattern
	first := true
	for !p.eat(token.ParenR) {
		if !first {
			p.expect(token.Comma)
			if p.eat(token.ParenR) {
				break
			}
		}
		first = false
		if p.is(token.Ellipsis) {
			ns := p.startNode()
			p.next()
			rest := &ast.RestElement{Argument: p.parseBindingAtom()}
			p.finish(ns, &rest.Base)
			params = append(params, rest)
			if clashes != nil {
				p.checkParamClash(rest, clashes, ns.start)
			} else {
				p.checkLValPattern(rest, bindLexical, ns.start)
			}
			p.expect(token.ParenR)
			break
		}
		param := p.parseBindingAtomWithDefault()
		if clashes != nil {
			p.checkParamClash(param, clashes, param.Start())
		} else {
			p.checkLValPattern(param, bindLexical, param.Start())
		}
		params = append(params, param)
	}
	return params
}

// parseBindingAtom parses a single binding target: identifier, object
// pattern, or array pattern (no default value).
func (p *Parser) parseBindingAtom() ast.Pattern {
	switch {
	case p.is(token.BraceL):
		return p.parseObj(true, nil).(ast.Pattern)
	case p.is(token.BracketL):
		return p.parseArrayPattern()
	default:
		ns := p.startNode()
		name := p.parseIdentifierName()
		id := &ast.Identifier{Name: name}
		p.finish(ns, &id.Base)
		return id
	}
}

// parseBindingAtomWithDefault wraps parseBindingAtom with the
// `pattern = default` form parameters and destructured declarators share.
func (p *Parser) parseBindingAtomWithDefault() ast.Pattern {
	ns := p.startNode()
	left := p.parseBindingAtom()
	if p.eat(token.Eq) {
		right := p.parseMaybeAssign(false, nil)
		ap := &ast.AssignmentPattern{Left: left, Right: right}
		p.finish(ns, &ap.Base)
		return ap
	}
	return left
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	ns := p.startNode()
	p.expect(token.BracketL)
	var elems []ast.Pattern
	first := true
	for !p.eat(token.BracketR) {
		if !first {
			p.expect(token.Comma)
			if p.eat(token.BracketR) {
				break
			}
		}
		first = false
		if p.is(token.Comma) {
			elems = append(elems, nil)
			continue
		}
		if p.is(token.Ellipsis) {
			rns := p.startNode()
			p.next()
			rest := &ast.RestElement{Argument: p.parseBindingAtom()}
			p.finish(rns, &rest.Base)
			elems = append(elems, rest)
			continue
		}
		elems = append(elems, p.parseBindingAtomWithDefault())
	}
	n := &ast.ArrayPattern{Elements: elems}
	p.finish(ns, &n.Base)
	return n
}

// parseFunctionBody parses a `{ ... }` block as a function body via parseBlock;
// allowDirectives is not consulted, and no directive prologue is recognised
// inside function bodies. Class static blocks do not come through here:
// parseStaticBlock reads their statements itself.
func (p *Parser) parseFunctionBody(allowDirectives bool) *ast.BlockStatement {
	return p.parseBlock()
}

func (p *Parser) parseNewExpr() ast.Expression {
	ns := p.startNode()
	p.next()
	if p.is(token.Dot) {
		p.next()
		p.expectContextual("target")
		if !p.inFunction() && !p.inClassFieldInit() {
			p.raise(ErrP012)
		}
		meta := &ast.Identifier{Name: "new"}
		prop := &ast.Identifier{Name: "target"}
		n := &ast.MetaProperty{Meta: meta, Property: prop}
		p.finish(ns, &n.Base)
		return n
	}
	calleeNs := p.startNode()
	callee := p.parseExprSubscriptsNoCall(calleeNs)
	var args []ast.Expression
	if p.is(token.ParenL) {
		args = p.parseExprList(token.ParenR)
	}
	n := &ast.NewExpression{Callee: callee, Arguments: args}
	p.finish(ns, &n.Base)
	return n
}

// parseExprSubscriptsNoCall parses a new-expression's callee: member
// accesses bind into it, but a trailing `(` belongs to the `new` itself, not
// a call on the callee. spec.md §8 scenario 6: a `?.` anywhere in that
// callee is illegal ("new a?.b()"), since `new` can't be short-circuited.
func (p *Parser) parseExprSubscriptsNoCall(ns nodeState) ast.Expression {
	expr := p.parseExprAtom(nil)
	result, sawOptional := p.parseSubscripts(expr, ns, true)
	if sawOptional {
		p.raiseAt(ns.start, ErrP016)
	}
	return result
}
