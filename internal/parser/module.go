package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// parseModuleSource reads a string-literal module specifier, the `"source"`
// half of every import/export-from form.
func (p *Parser) parseModuleSource() *ast.Literal {
	if !p.is(token.String) {
		p.unexpected()
	}
	ns := p.startNode()
	n := &ast.Literal{Value: p.cur.Value}
	p.next()
	p.finish(ns, &n.Base)
	return n
}

// parseIdentNameNode reads any identifier-shaped spelling, reserved words
// included, as an Identifier node -- used for the Imported/Exported half of
// a specifier, which unlike a bound Local name is never restricted.
func (p *Parser) parseIdentNameNode() *ast.Identifier {
	ns := p.startNode()
	name := p.identifierNameFromCurrent()
	p.next()
	n := &ast.Identifier{Name: name}
	p.finish(ns, &n.Base)
	return n
}

// markExported records name as exported, raising on a second export of the
// same name (spec.md §4.C9's duplicate-export early error).
func (p *Parser) markExported(name string, pos int) {
	if p.exports[name] {
		p.raiseAt(pos, ErrP015, "duplicate export '"+name+"'")
	}
	p.exports[name] = true
}

// topLevelBindingExists reports whether name was bound anywhere in the
// module's top-level scope, the check parseTopLevel runs once parsing
// finishes against every bare `export { name }` it recorded.
func (p *Parser) topLevelBindingExists(name string) bool {
	s := p.scopeStack[0]
	return s.vars[name] || s.lexical[name] || s.functions[name]
}

// parseImportDeclaration parses a static import (spec.md §4.C9); the
// dynamic `import(...)`/`import.meta` forms are expressions handled by
// parseImportExprOrMeta in expressions.go and never reach here because
// parseStatement peeks ahead before dispatching.
func (p *Parser) parseImportDeclaration() ast.Statement {
	ns := p.startNode()
	p.next()

	if p.is(token.String) {
		src := p.parseModuleSource()
		p.semicolon()
		n := &ast.ImportDeclaration{Source: src}
		p.finish(ns, &n.Base)
		return n
	}

	var specifiers []ast.Node
	if p.is(token.Name) {
		idNs := p.startNode()
		name := p.parseIdentifierName()
		id := &ast.Identifier{Name: name}
		p.finish(idNs, &id.Base)
		p.checkLValSimple(id, bindLexical, idNs.start)
		spec := &ast.ImportDefaultSpecifier{Local: id}
		p.finish(idNs, &spec.Base)
		specifiers = append(specifiers, spec)
		if p.eat(token.Comma) {
			if p.is(token.Star) {
				specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
			} else {
				specifiers = append(specifiers, p.parseImportNamedSpecifiers()...)
			}
		}
	} else if p.is(token.Star) {
		specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
	} else if p.is(token.BraceL) {
		specifiers = append(specifiers, p.parseImportNamedSpecifiers()...)
	} else {
		p.unexpected()
	}

	p.expectContextual("from")
	src := p.parseModuleSource()
	p.semicolon()
	n := &ast.ImportDeclaration{Specifiers: specifiers, Source: src}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseImportNamespaceSpecifier() ast.Node {
	ns := p.startNode()
	p.next()
	p.expectContextual("as")
	idNs := p.startNode()
	name := p.parseIdentifierName()
	id := &ast.Identifier{Name: name}
	p.finish(idNs, &id.Base)
	p.checkLValSimple(id, bindLexical, idNs.start)
	n := &ast.ImportNamespaceSpecifier{Local: id}
	p.finish(ns, &n.Base)
	return n
}

func (p *Parser) parseImportNamedSpecifiers() []ast.Node {
	p.expect(token.BraceL)
	var specs []ast.Node
	first := true
	for !p.eat(token.BraceR) {
		if !first {
			p.expect(token.Comma)
			if p.eat(token.BraceR) {
				break
			}
		}
		first = false
		ns := p.startNode()
		imported := p.parseIdentNameNode()
		local := imported
		if p.eatContextual("as") {
			localNs := p.startNode()
			name := p.parseIdentifierName()
			local = &ast.Identifier{Name: name}
			p.finish(localNs, &local.Base)
		}
		p.checkLValSimple(local, bindLexical, local.Start())
		spec := &ast.ImportSpecifier{Imported: imported, Local: local}
		p.finish(ns, &spec.Base)
		specs = append(specs, spec)
	}
	return specs
}

// parseExportDeclaration parses every `export` form (spec.md §4.C9):
// re-export-all, named-list (with or without a source), default, and
// wrapping a var/function/class declaration.
func (p *Parser) parseExportDeclaration() ast.Statement {
	ns := p.startNode()
	p.next()

	if p.eat(token.Star) {
		var exported *ast.Identifier
		if p.eatContextual("as") {
			exported = p.parseIdentNameNode()
			p.markExported(exported.Name, exported.Start())
		}
		p.expectContextual("from")
		src := p.parseModuleSource()
		p.semicolon()
		n := &ast.ExportAllDeclaration{Exported: exported, Source: src}
		p.finish(ns, &n.Base)
		return n
	}

	if p.eat(token.Default) {
		return p.parseExportDefaultDeclaration(ns)
	}

	if p.is(token.BraceL) {
		specs := p.parseExportNamedSpecifiers()
		var src *ast.Literal
		if p.eatContextual("from") {
			src = p.parseModuleSource()
		}
		for _, spec := range specs {
			name := spec.Exported.Name
			p.markExported(name, spec.Exported.Start())
			if src == nil {
				p.undefinedExports[spec.Local.Name] = spec.Local.Start()
			}
		}
		p.semicolon()
		n := &ast.ExportNamedDeclaration{Specifiers: specs, Source: src}
		p.finish(ns, &n.Base)
		return n
	}

	decl := p.parseStatement(false)
	p.walkBoundNames(declaredNamesOf(decl), func(name string) {
		p.markExported(name, ns.start)
		delete(p.undefinedExports, name)
	})
	n := &ast.ExportNamedDeclaration{Declaration: decl}
	p.finish(ns, &n.Base)
	return n
}

// declaredNamesOf adapts the Id(s) a var/function/class declaration
// statement binds into the single-node shape walkBoundNames expects.
func declaredNamesOf(decl ast.Statement) ast.Node {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		ids := make([]ast.Pattern, len(d.Declarations))
		for i, dd := range d.Declarations {
			ids[i] = dd.Id
		}
		return &ast.ArrayPattern{Elements: ids}
	case *ast.FunctionDeclaration:
		return d.Id
	case *ast.ClassDeclaration:
		return d.Id
	}
	return nil
}

func (p *Parser) parseExportNamedSpecifiers() []*ast.ExportSpecifier {
	p.expect(token.BraceL)
	var specs []*ast.ExportSpecifier
	first := true
	for !p.eat(token.BraceR) {
		if !first {
			p.expect(token.Comma)
			if p.eat(token.BraceR) {
				break
			}
		}
		first = false
		ns := p.startNode()
		local := p.parseIdentNameNode()
		exported := local
		if p.eatContextual("as") {
			exported = p.parseIdentNameNode()
		}
		spec := &ast.ExportSpecifier{Local: local, Exported: exported}
		p.finish(ns, &spec.Base)
		specs = append(specs, spec)
	}
	return specs
}

// parseExportDefaultDeclaration parses the `default` half of export;
// reusing parseFunctionExprFrom/parseClass (both of which already allow an
// absent name) means the anonymous forms Just Work without a separate
// anonymous-declaration code path.
func (p *Parser) parseExportDefaultDeclaration(ns nodeState) ast.Statement {
	var decl ast.Node
	switch {
	case p.is(token.Function):
		fnNs := p.startNode()
		decl = p.parseFunctionExprFrom(fnNs, false)
	case p.isContextual("async") && !p.cur.NewlineBefore:
		next := p.peekNextToken()
		if next.Type.Label == token.Function.Label {
			p.next()
			fnNs := p.startNode()
			decl = p.parseFunctionExprFrom(fnNs, true)
		} else {
			decl = p.parseMaybeAssign(false, nil)
			p.semicolon()
		}
	case p.is(token.Class):
		decl = p.parseClass(false)
	default:
		decl = p.parseMaybeAssign(false, nil)
		p.semicolon()
	}
	p.markExported("default", ns.start)
	n := &ast.ExportDefaultDeclaration{Declaration: decl}
	p.finish(ns, &n.Base)
	return n
}
