package parser

import "github.com/funvibe/ecmaparse/internal/ast"

// toAssignable converts an already-parsed expression subtree into the
// corresponding pattern subtree (spec.md §4.C5). The reference
// implementation mutates the node's type tag in place; because Go's static
// typing makes that impossible, this is the functional variant spec.md §9
// explicitly permits: it builds and returns a new node of the pattern type,
// leaving the original expression subtree untouched.
//
// isBinding selects whether a MemberExpression is acceptable (false, a
// destructuring-assignment target) or an error (true, a binding position
// where only names/patterns are legal).
func (p *Parser) toAssignable(node ast.Node, isBinding bool, de *destructuringErrors) ast.Node {
	switch n := node.(type) {
	case *ast.Identifier:
		return n
	case *ast.MemberExpression:
		if isBinding {
			p.raise(ErrP006)
		}
		return n
	case *ast.ParenthesizedExpression:
		return p.toAssignable(n.Expression, isBinding, de)
	case *ast.ObjectExpression:
		pat := &ast.ObjectPattern{Base: n.Base}
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				if pr.Kind != "init" || pr.Method {
					p.raise(ErrP006)
				}
				converted := &ast.Property{
					Base:      pr.Base,
					Key:       pr.Key,
					Kind:      "init",
					Computed:  pr.Computed,
					Shorthand: pr.Shorthand,
				}
				converted.Value = p.toAssignable(pr.Value.(ast.Node), isBinding, de)
				pat.Properties = append(pat.Properties, converted)
			case *ast.SpreadElement:
				rest := &ast.RestElement{Base: pr.Base}
				rest.Argument = p.toAssignable(pr.Argument, isBinding, de).(ast.Pattern)
				pat.Properties = append(pat.Properties, rest)
			default:
				p.raise(ErrP006)
			}
		}
		return pat
	case *ast.ArrayExpression:
		pat := &ast.ArrayPattern{Base: n.Base}
		for _, el := range n.Elements {
			if el == nil {
				pat.Elements = append(pat.Elements, nil)
				continue
			}
			if spread, ok := el.(*ast.SpreadElement); ok {
				rest := &ast.RestElement{Base: spread.Base}
				rest.Argument = p.toAssignable(spread.Argument, isBinding, de).(ast.Pattern)
				pat.Elements = append(pat.Elements, rest)
				continue
			}
			converted := p.toAssignable(el, isBinding, de)
			pat.Elements = append(pat.Elements, converted.(ast.Pattern))
		}
		return pat
	case *ast.AssignmentExpression:
		if n.Operator != "=" {
			p.raise(ErrP006)
		}
		ap := &ast.AssignmentPattern{Base: n.Base, Right: n.Right}
		ap.Left = p.toAssignable(n.Left, isBinding, de).(ast.Pattern)
		return ap
	case *ast.AssignmentPattern, *ast.ObjectPattern, *ast.ArrayPattern, *ast.RestElement:
		return n
	case *ast.ChainExpression:
		p.raise(ErrP006)
		return nil
	default:
		p.raise(ErrP006)
		return nil
	}
}

// toAssignableList converts a parenthesized expression list — parsed
// before it was known whether `(...)` would be followed by `=>` — into an
// arrow-function parameter list (spec.md §4.C7's
// parseParenAndDistinguishExpression).
func (p *Parser) toAssignableList(exprs []ast.Expression) []ast.Pattern {
	params := make([]ast.Pattern, len(exprs))
	for i, e := range exprs {
		if spread, ok := e.(*ast.SpreadElement); ok {
			if i != len(exprs)-1 {
				p.raise(ErrP006)
			}
			rest := &ast.RestElement{Base: spread.Base}
			rest.Argument = p.toAssignable(spread.Argument, true, nil).(ast.Pattern)
			params[i] = rest
			continue
		}
		params[i] = p.toAssignable(e, true, nil).(ast.Pattern)
	}
	return params
}
