package ast

// VariableDeclaration is `var|let|const Declarations...`. Kind is one of
// "var", "let", "const".
type VariableDeclaration struct {
	Base
	Kind         string
	Declarations []*VariableDeclarator
}

func (n *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) statementNode()   {}

// VariableDeclarator is `Id = Init` (Init nil unless required). Id is a
// Pattern — an Identifier for the simple case, or Object/ArrayPattern for
// destructuring.
type VariableDeclarator struct {
	Base
	Id   Pattern
	Init Expression
}

func (n *VariableDeclarator) Accept(v Visitor) { v.VisitVariableDeclarator(n) }

// FunctionDeclaration is `[async] function [*] Id (Params...) Body`.
type FunctionDeclaration struct {
	Base
	Id        *Identifier // always set; `export default function () {}` yields a FunctionExpression
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (n *FunctionDeclaration) Accept(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) statementNode()   {}

// ClassDeclaration is `class Id [extends Super] Body`.
type ClassDeclaration struct {
	Base
	Id         *Identifier // always set; `export default class {}` yields a ClassExpression
	SuperClass Expression
	Body       *ClassBody
}

func (n *ClassDeclaration) Accept(v Visitor) { v.VisitClassDeclaration(n) }
func (n *ClassDeclaration) statementNode()   {}
