package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseClassDeclaration parses a class declaration statement; the name is
// mandatory here (spec.md §4.C8) -- the anonymous form is only legal as an
// export-default declaration, handled separately in module.go.
func (p *Parser) parseClassDeclaration() ast.Statement {
	ns := p.startNode()
	p.next()
	id, super, body := p.parseClassTail(true)
	n := &ast.ClassDeclaration{Id: id, SuperClass: super, Body: body}
	p.finish(ns, &n.Base)
	if id != nil {
		p.declareName(id.Name, bindLexical, id.Start())
	}
	return n
}

// parseClass parses a class expression; idRequired is always false here --
// the parameter exists so callers read like the object/method dispatch this
// package already uses for similarly-shaped optional-name productions.
func (p *Parser) parseClass(idRequired bool) ast.Expression {
	ns := p.startNode()
	p.next()
	id, super, body := p.parseClassTail(idRequired)
	n := &ast.ClassExpression{Id: id, SuperClass: super, Body: body}
	p.finish(ns, &n.Base)
	return n
}

// parseClassTail parses everything after the `class` keyword: the optional
// name, the optional `extends` clause, and the body.
func (p *Parser) parseClassTail(idRequired bool) (*ast.Identifier, ast.Expression, *ast.ClassBody) {
	var id *ast.Identifier
	if p.is(token.Name) {
		idNs := p.startNode()
		name := p.parseIdentifierName()
		id = &ast.Identifier{Name: name}
		p.finish(idNs, &id.Base)
	} else if idRequired {
		p.unexpected()
	}

	var super ast.Expression
	hasSuper := false
	if p.eat(token.Extends) {
		hasSuper = true
		super = p.parseExprSubscripts(nil)
	}

	body := p.parseClassBody(hasSuper)
	return id, super, body
}

// parseClassBody parses the `{ ... }` member list, tracking private-name
// declarations for the whole class body (spec.md §4.C4).
func (p *Parser) parseClassBody(hasSuperclass bool) *ast.ClassBody {
	ns := p.startNode()
	p.expect(token.BraceL)
	p.enterClassBody()
	defer p.exitClassBody()

	var members []ast.Node
	for !p.eat(token.BraceR) {
		if p.eat(token.Semi) {
			continue
		}
		members = append(members, p.parseClassElement(hasSuperclass))
	}
	n := &ast.ClassBody{Body: members}
	p.finish(ns, &n.Base)
	return n
}

// parseClassElement parses one method, field, or static block, resolving
// the static/async/generator/get/set modifiers the same one-token lookahead
// way parseProperty resolves them for object literals.
func (p *Parser) parseClassElement(hasSuperclass bool) ast.Node {
	ns := p.startNode()

	static := false
	if p.isContextual("static") {
		next := p.peekNextToken()
		if next.Type.Label == token.BraceL.Label {
			p.next()
			return p.parseStaticBlock(ns)
		}
		if p.peekStartsPropertyName() {
			static = true
			p.next()
		}
	}

	async := false
	generator := false
	kind := "method"

	if p.isContextual("async") && !p.cur.NewlineBefore && p.peekStartsPropertyName() {
		async = true
		p.next()
	}
	if p.is(token.Star) {
		generator = true
		p.next()
	}
	if !generator && (p.isContextual("get") || p.isContextual("set")) && p.peekStartsPropertyName() {
		kind = p.cur.Value.(string)
		p.next()
	}

	key, computed := p.parsePropertyName()

	// spec.md §3: no static member, method or field, may be named
	// 'prototype'; the name is only a problem when it isn't computed, since
	// `static ["prototype"]() {}` names the property dynamically.
	if static && !computed && isLiteralNamed(key, "prototype") {
		p.raiseAt(ns.start, ErrE013)
	}

	if p.is(token.ParenL) {
		named := !static && !computed && isLiteralNamed(key, "constructor")
		isConstructor := named && kind == "method" && !generator && !async
		if named && !isConstructor {
			p.raiseAt(ns.start, ErrE012, constructorViolation(async, generator, kind))
		}
		if isConstructor {
			kind = "constructor"
			p.markConstructor(ns.start)
		}
		if priv, ok := key.(*ast.PrivateIdentifier); ok {
			p.declarePrivateName(priv.Name, privateSlot(kind, static), ns.start)
		}
		fn := p.parseClassMethodFunction(async, generator, isConstructor && hasSuperclass)
		checkAccessorArity(p, kind, keyName(key), fn)
		n := &ast.MethodDefinition{Key: key, Value: fn, Kind: kind, Computed: computed, Static: static}
		p.finish(ns, &n.Base)
		return n
	}

	// spec.md §3: no field (static or instance) may be named 'constructor'.
	if !computed && isLiteralNamed(key, "constructor") {
		p.raiseAt(ns.start, ErrE014)
	}

	if priv, ok := key.(*ast.PrivateIdentifier); ok {
		p.declarePrivateName(priv.Name, "true", ns.start)
	}

	var value ast.Expression
	if p.eat(token.Eq) {
		flags := scopeClassFieldInit | scopeSuperAllowed
		p.enterScope(flags)
		value = p.parseMaybeAssign(false, nil)
		p.exitScope()
	}
	p.semicolon()
	n := &ast.PropertyDefinition{Key: key, Value: value, Computed: computed, Static: static}
	p.finish(ns, &n.Base)
	return n
}

// constructorViolation names which modifier makes a method named
// 'constructor' illegal, for ErrE012's message.
func constructorViolation(async, generator bool, kind string) string {
	switch {
	case async:
		return "async method"
	case generator:
		return "generator"
	case kind == "get":
		return "getter"
	case kind == "set":
		return "setter"
	default:
		return kind
	}
}

// checkAccessorArity enforces spec.md §3's getter/setter arity rule (0
// params / exactly 1 non-rest param) on the recoverable channel, matching
// spec.md §7's explicit listing of getter/setter arity as a
// raiseRecoverable case.
func checkAccessorArity(p *Parser, kind, name string, fn *ast.FunctionExpression) {
	switch kind {
	case "get":
		if len(fn.Params) != 0 {
			p.raiseRecoverableAt(fn.Start(), ErrE015, name)
		}
	case "set":
		if len(fn.Params) != 1 {
			p.raiseRecoverableAt(fn.Start(), ErrE016, name)
			return
		}
		if _, ok := fn.Params[0].(*ast.RestElement); ok {
			p.raiseRecoverableAt(fn.Start(), ErrE016, name)
		}
	}
}

// keyName returns a display name for a property key, used only in
// diagnostics; computed keys have no static name, so they fall back to a
// generic placeholder.
func keyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.PrivateIdentifier:
		return "#" + k.Name
	case *ast.Literal:
		if s, ok := k.Value.(string); ok {
			return s
		}
	}
	return "<computed>"
}

func (p *Parser) parseStaticBlock(ns nodeState) ast.Node {
	p.expect(token.BraceL)
	p.enterScope(scopeStaticBlock | scopeSuperAllowed | scopeTopLevel)
	var body []ast.Statement
	for !p.eat(token.BraceR) {
		body = append(body, p.parseStatement(false))
	}
	p.exitScope()
	n := &ast.StaticBlock{Body: body}
	p.finish(ns, &n.Base)
	return n
}

// parseClassMethodFunction is parseMethodFunction plus the direct-super
// permission a derived class's constructor alone carries.
func (p *Parser) parseClassMethodFunction(async, generator, allowDirectSuper bool) *ast.FunctionExpression {
	ns := p.startNode()
	fn := &ast.FunctionExpression{Async: async, Generator: generator}
	flags := scopeFunction | scopeSuperAllowed
	if generator {
		flags |= scopeGenerator
	}
	if async {
		flags |= scopeAsync
	}
	if allowDirectSuper {
		flags |= scopeDirectSuperAllowed
	}
	p.enterScope(flags)
	defer p.exitScope()
	fn.Params = p.parseFunctionParams(nil)
	fn.Body = p.parseFunctionBody(false)
	p.finish(ns, &fn.Base)
	return fn
}

func privateSlot(kind string, static bool) string {
	switch kind {
	case "get":
		if static {
			return "sget"
		}
		return "iget"
	case "set":
		if static {
			return "sset"
		}
		return "iset"
	default:
		return "true"
	}
}

func isLiteralNamed(key ast.Expression, name string) bool {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name == name
	case *ast.Literal:
		s, ok := k.Value.(string)
		return ok && s == name
	}
	return false
}
