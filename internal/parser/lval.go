package parser

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/token"
)

// checkLValSimple validates a node that must resolve to a single binding
// name or an assignment-target expression (spec.md §4.C6): an Identifier
// raises on strict-mode reserved words and, when kind is not bindNone, is
// recorded via declareName; a MemberExpression is accepted only outside
// binding position.
func (p *Parser) checkLValSimple(node ast.Node, kind bindingKind, pos int) {
	switch n := node.(type) {
	case *ast.Identifier:
		if p.strict && token.StrictReserved[n.Name] {
			p.raiseAt(pos, ErrP007, n.Name)
		}
		if kind != bindNone {
			p.declareName(n.Name, kind, pos)
		}
	case *ast.MemberExpression:
		if kind != bindNone {
			p.raiseAt(pos, ErrP005)
		}
	case *ast.ParenthesizedExpression:
		p.checkLValSimple(n.Expression, kind, pos)
	default:
		p.raiseAt(pos, ErrP005)
	}
}

// checkLValPattern dispatches between checkLValSimple and the structural
// recursion checkLValInnerPattern needs for Object/Array/Assignment
// patterns and rest elements.
func (p *Parser) checkLValPattern(node ast.Node, kind bindingKind, pos int) {
	switch node.(type) {
	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignmentPattern, *ast.RestElement:
		p.checkLValInnerPattern(node, kind, pos)
	default:
		p.checkLValSimple(node, kind, pos)
	}
}

// checkLValInnerPattern recurses into a destructuring pattern's elements,
// applying checkLValPattern to each binding position it contains.
func (p *Parser) checkLValInnerPattern(node ast.Node, kind bindingKind, pos int) {
	switch n := node.(type) {
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				p.checkLValPattern(pr.Value, kind, pos)
			case *ast.RestElement:
				p.checkLValPattern(pr.Argument, kind, pos)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el == nil {
				continue
			}
			p.checkLValPattern(el, kind, pos)
		}
	case *ast.AssignmentPattern:
		p.checkLValPattern(n.Left, kind, pos)
	case *ast.RestElement:
		p.checkLValPattern(n.Argument, kind, pos)
	default:
		p.checkLValSimple(node, kind, pos)
	}
}

// checkClashes, when non-nil, accumulates parameter names seen so far so a
// function's parameter list can be checked for duplicates in one pass. Only
// function declarations pass a table, and they reject every duplicate with
// ErrE010 regardless of strictness or list shape. Other parameter lists
// declare each name with bindLexical, so a duplicate there raises ErrE001
// from declareName. No parameter list accepts duplicate names.
type checkClashes = map[string]bool

func (p *Parser) checkParamClash(node ast.Node, clashes checkClashes, pos int) {
	if clashes == nil {
		return
	}
	p.walkBoundNames(node, func(name string) {
		if clashes[name] {
			p.raiseAt(pos, ErrE010, name)
		}
		clashes[name] = true
	})
}

// walkBoundNames visits every identifier name a binding pattern introduces.
func (p *Parser) walkBoundNames(node ast.Node, visit func(name string)) {
	switch n := node.(type) {
	case *ast.Identifier:
		visit(n.Name)
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				p.walkBoundNames(pr.Value, visit)
			case *ast.RestElement:
				p.walkBoundNames(pr.Argument, visit)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el == nil {
				continue
			}
			p.walkBoundNames(el, visit)
		}
	case *ast.AssignmentPattern:
		p.walkBoundNames(n.Left, visit)
	case *ast.RestElement:
		p.walkBoundNames(n.Argument, visit)
	}
}
