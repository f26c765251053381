package ast

// ObjectPattern is a destructuring `{a, b: c, ...rest}` binding/assignment
// target, produced either directly by the parser (declaration/parameter
// position) or by the assignable converter from an ObjectExpression.
type ObjectPattern struct {
	Base
	Properties []Node // *Property (Value is a Pattern) or *RestElement
}

func (n *ObjectPattern) Accept(v Visitor) { v.VisitObjectPattern(n) }
func (n *ObjectPattern) patternNode()     {}

// ArrayPattern's Elements may contain nil entries for elisions (`[a,,b]`).
type ArrayPattern struct {
	Base
	Elements []Pattern
}

func (n *ArrayPattern) Accept(v Visitor) { v.VisitArrayPattern(n) }
func (n *ArrayPattern) patternNode()     {}

// AssignmentPattern is `Left = Right`, the default-value form of a
// destructuring element or parameter.
type AssignmentPattern struct {
	Base
	Left  Pattern
	Right Expression
}

func (n *AssignmentPattern) Accept(v Visitor) { v.VisitAssignmentPattern(n) }
func (n *AssignmentPattern) patternNode()     {}

// RestElement is `...Argument` in binding/pattern position (as opposed to
// *SpreadElement, its expression-position counterpart).
type RestElement struct {
	Base
	Argument Pattern
}

func (n *RestElement) Accept(v Visitor) { v.VisitRestElement(n) }
func (n *RestElement) patternNode()     {}
