package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/ecmaparse/internal/ast"
)

// TreePrinter renders an AST as an indented tree, one line per node, for
// debugging and snapshot testing. It implements ast.Visitor directly rather
// than through a generic walker so each node kind controls exactly which of
// its fields are worth a line.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) line(s string) {
	p.writeIndent()
	p.write(s)
	p.write("\n")
}

func (p *TreePrinter) enter(label string) {
	p.line(label)
	p.indent++
}

func (p *TreePrinter) leave() {
	p.indent--
}

// child visits n under an optional "Field:" header; it is a no-op for a nil
// interface value (the common case for optional fields like IfStatement.Alternate).
func (p *TreePrinter) child(field string, n ast.Node) {
	if isNilNode(n) {
		return
	}
	if field != "" {
		p.line(field + ":")
		p.indent++
		n.Accept(p)
		p.indent--
		return
	}
	n.Accept(p)
}

func (p *TreePrinter) children(field string, nodes []ast.Node) {
	p.line(fmt.Sprintf("%s[%d]:", field, len(nodes)))
	p.indent++
	for _, n := range nodes {
		p.child("", n)
	}
	p.indent--
}

func isNilNode(n ast.Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *ast.Identifier:
		return v == nil
	case *ast.Literal:
		return v == nil
	case *ast.BlockStatement:
		return v == nil
	case *ast.ClassBody:
		return v == nil
	case *ast.FunctionExpression:
		return v == nil
	default:
		return false
	}
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.enter(fmt.Sprintf("Program (%s)", n.SourceType))
	for _, stmt := range n.Body {
		stmt.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitEmptyStatement(n *ast.EmptyStatement) {
	p.line("EmptyStatement")
}

func (p *TreePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	p.enter("BlockStatement")
	for _, stmt := range n.Body {
		stmt.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n.Directive != "" {
		p.line("ExpressionStatement (directive " + n.Directive + ")")
		return
	}
	p.enter("ExpressionStatement")
	n.Expression.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.enter("IfStatement")
	p.child("Test", n.Test)
	p.child("Consequent", n.Consequent)
	if n.Alternate != nil {
		p.child("Alternate", n.Alternate)
	}
	p.leave()
}

func (p *TreePrinter) VisitLabeledStatement(n *ast.LabeledStatement) {
	p.enter("LabeledStatement " + n.Label.Name)
	n.Body.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitBreakStatement(n *ast.BreakStatement) {
	if n.Label != nil {
		p.line("BreakStatement " + n.Label.Name)
		return
	}
	p.line("BreakStatement")
}

func (p *TreePrinter) VisitContinueStatement(n *ast.ContinueStatement) {
	if n.Label != nil {
		p.line("ContinueStatement " + n.Label.Name)
		return
	}
	p.line("ContinueStatement")
}

func (p *TreePrinter) VisitWithStatement(n *ast.WithStatement) {
	p.enter("WithStatement")
	p.child("Object", n.Object)
	p.child("Body", n.Body)
	p.leave()
}

func (p *TreePrinter) VisitSwitchStatement(n *ast.SwitchStatement) {
	p.enter("SwitchStatement")
	p.child("Discriminant", n.Discriminant)
	for _, c := range n.Cases {
		c.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitSwitchCase(n *ast.SwitchCase) {
	if n.Test != nil {
		p.enter("SwitchCase")
		p.child("Test", n.Test)
	} else {
		p.enter("SwitchCase (default)")
	}
	for _, stmt := range n.Consequent {
		stmt.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Argument == nil {
		p.line("ReturnStatement")
		return
	}
	p.enter("ReturnStatement")
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitThrowStatement(n *ast.ThrowStatement) {
	p.enter("ThrowStatement")
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitTryStatement(n *ast.TryStatement) {
	p.enter("TryStatement")
	p.child("Block", n.Block)
	if n.Handler != nil {
		n.Handler.Accept(p)
	}
	if n.Finalizer != nil {
		p.line("Finalizer:")
		p.indent++
		n.Finalizer.Accept(p)
		p.indent--
	}
	p.leave()
}

func (p *TreePrinter) VisitCatchClause(n *ast.CatchClause) {
	p.enter("CatchClause")
	if n.Param != nil {
		p.child("Param", n.Param)
	}
	n.Body.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.enter("WhileStatement")
	p.child("Test", n.Test)
	p.child("Body", n.Body)
	p.leave()
}

func (p *TreePrinter) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	p.enter("DoWhileStatement")
	p.child("Body", n.Body)
	p.child("Test", n.Test)
	p.leave()
}

func (p *TreePrinter) VisitForStatement(n *ast.ForStatement) {
	p.enter("ForStatement")
	if n.Init != nil {
		p.child("Init", n.Init)
	}
	if n.Test != nil {
		p.child("Test", n.Test)
	}
	if n.Update != nil {
		p.child("Update", n.Update)
	}
	p.child("Body", n.Body)
	p.leave()
}

func (p *TreePrinter) VisitForInStatement(n *ast.ForInStatement) {
	p.enter("ForInStatement")
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.child("Body", n.Body)
	p.leave()
}

func (p *TreePrinter) VisitForOfStatement(n *ast.ForOfStatement) {
	label := "ForOfStatement"
	if n.Await {
		label += " (await)"
	}
	p.enter(label)
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.child("Body", n.Body)
	p.leave()
}

func (p *TreePrinter) VisitDebuggerStatement(n *ast.DebuggerStatement) {
	p.line("DebuggerStatement")
}

func (p *TreePrinter) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	p.enter("VariableDeclaration " + n.Kind)
	for _, d := range n.Declarations {
		d.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	p.enter("VariableDeclarator")
	p.child("Id", n.Id)
	if n.Init != nil {
		p.child("Init", n.Init)
	}
	p.leave()
}

func (p *TreePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.line(functionHeader("FunctionDeclaration", funcName(n.Id), n.Generator, n.Async))
	p.indent++
	p.printParamsAndBody(n.Params, n.Body)
	p.indent--
}

func (p *TreePrinter) VisitClassDeclaration(n *ast.ClassDeclaration) {
	p.printClass("ClassDeclaration", n.Id, n.SuperClass, n.Body)
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.line("Identifier " + n.Name)
}

func (p *TreePrinter) VisitPrivateIdentifier(n *ast.PrivateIdentifier) {
	p.line("PrivateIdentifier #" + n.Name)
}

func (p *TreePrinter) VisitLiteral(n *ast.Literal) {
	if n.Regex != nil {
		p.line(fmt.Sprintf("Literal /%s/%s", n.Regex.Pattern, n.Regex.Flags))
		return
	}
	if n.BigInt != "" {
		p.line("Literal " + n.BigInt + "n")
		return
	}
	p.line(fmt.Sprintf("Literal %v", n.Value))
}

func (p *TreePrinter) VisitTemplateLiteral(n *ast.TemplateLiteral) {
	p.enter("TemplateLiteral")
	for i, q := range n.Quasis {
		q.Accept(p)
		if i < len(n.Expressions) {
			n.Expressions[i].Accept(p)
		}
	}
	p.leave()
}

func (p *TreePrinter) VisitTemplateElement(n *ast.TemplateElement) {
	tail := ""
	if n.Tail {
		tail = " (tail)"
	}
	p.line("TemplateElement `" + n.Cooked + "`" + tail)
}

func (p *TreePrinter) VisitTaggedTemplateExpression(n *ast.TaggedTemplateExpression) {
	p.enter("TaggedTemplateExpression")
	p.child("Tag", n.Tag)
	n.Quasi.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitArrayExpression(n *ast.ArrayExpression) {
	p.enter(fmt.Sprintf("ArrayExpression[%d]", len(n.Elements)))
	for _, el := range n.Elements {
		if el == nil {
			p.line("<elision>")
			continue
		}
		el.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitObjectExpression(n *ast.ObjectExpression) {
	p.enter(fmt.Sprintf("ObjectExpression[%d]", len(n.Properties)))
	for _, prop := range n.Properties {
		prop.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitProperty(n *ast.Property) {
	label := "Property"
	if n.Method {
		label = "Property (method " + n.Kind + ")"
	} else if n.Kind != "init" {
		label = "Property (" + n.Kind + ")"
	} else if n.Shorthand {
		label = "Property (shorthand)"
	}
	if n.Computed {
		label += " [computed]"
	}
	p.enter(label)
	p.child("Key", n.Key)
	p.child("Value", n.Value)
	p.leave()
}

func (p *TreePrinter) VisitFunctionExpression(n *ast.FunctionExpression) {
	p.line(functionHeader("FunctionExpression", funcName(n.Id), n.Generator, n.Async))
	p.indent++
	p.printParamsAndBody(n.Params, n.Body)
	p.indent--
}

func (p *TreePrinter) VisitArrowFunctionExpression(n *ast.ArrowFunctionExpression) {
	label := "ArrowFunctionExpression"
	if n.Async {
		label = "async " + label
	}
	p.enter(label)
	p.children("Params", patternsToNodes(n.Params))
	p.child("Body", n.Body)
	p.leave()
}

func (p *TreePrinter) VisitClassExpression(n *ast.ClassExpression) {
	p.printClass("ClassExpression", n.Id, n.SuperClass, n.Body)
}

func (p *TreePrinter) VisitClassBody(n *ast.ClassBody) {
	p.enter("ClassBody")
	for _, m := range n.Body {
		m.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitMethodDefinition(n *ast.MethodDefinition) {
	label := "MethodDefinition (" + n.Kind + ")"
	if n.Static {
		label = "static " + label
	}
	if n.Computed {
		label += " [computed]"
	}
	p.enter(label)
	p.child("Key", n.Key)
	n.Value.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitPropertyDefinition(n *ast.PropertyDefinition) {
	label := "PropertyDefinition"
	if n.Static {
		label = "static " + label
	}
	if n.Computed {
		label += " [computed]"
	}
	p.enter(label)
	p.child("Key", n.Key)
	if n.Value != nil {
		p.child("Value", n.Value)
	}
	p.leave()
}

func (p *TreePrinter) VisitStaticBlock(n *ast.StaticBlock) {
	p.enter("StaticBlock")
	for _, stmt := range n.Body {
		stmt.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitMetaProperty(n *ast.MetaProperty) {
	p.line("MetaProperty " + n.Meta.Name + "." + n.Property.Name)
}

func (p *TreePrinter) VisitSequenceExpression(n *ast.SequenceExpression) {
	p.enter("SequenceExpression")
	for _, e := range n.Expressions {
		e.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitUnaryExpression(n *ast.UnaryExpression) {
	p.enter("UnaryExpression " + n.Operator)
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitUpdateExpression(n *ast.UpdateExpression) {
	pos := "prefix"
	if !n.Prefix {
		pos = "postfix"
	}
	p.enter(fmt.Sprintf("UpdateExpression %s (%s)", n.Operator, pos))
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.enter("BinaryExpression " + n.Operator)
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.leave()
}

func (p *TreePrinter) VisitLogicalExpression(n *ast.LogicalExpression) {
	p.enter("LogicalExpression " + n.Operator)
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.leave()
}

func (p *TreePrinter) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	p.enter("AssignmentExpression " + n.Operator)
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.leave()
}

func (p *TreePrinter) VisitConditionalExpression(n *ast.ConditionalExpression) {
	p.enter("ConditionalExpression")
	p.child("Test", n.Test)
	p.child("Consequent", n.Consequent)
	p.child("Alternate", n.Alternate)
	p.leave()
}

func (p *TreePrinter) VisitCallExpression(n *ast.CallExpression) {
	label := fmt.Sprintf("CallExpression[%d]", len(n.Arguments))
	if n.Optional {
		label += " (optional)"
	}
	p.enter(label)
	p.child("Callee", n.Callee)
	for _, a := range n.Arguments {
		a.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitNewExpression(n *ast.NewExpression) {
	p.enter(fmt.Sprintf("NewExpression[%d]", len(n.Arguments)))
	p.child("Callee", n.Callee)
	for _, a := range n.Arguments {
		a.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitMemberExpression(n *ast.MemberExpression) {
	label := "MemberExpression"
	if n.Computed {
		label += " [computed]"
	}
	if n.Optional {
		label += " (optional)"
	}
	p.enter(label)
	p.child("Object", n.Object)
	p.child("Property", n.Property)
	p.leave()
}

func (p *TreePrinter) VisitChainExpression(n *ast.ChainExpression) {
	p.enter("ChainExpression")
	n.Expression.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitImportExpression(n *ast.ImportExpression) {
	p.enter("ImportExpression")
	n.Source.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitSpreadElement(n *ast.SpreadElement) {
	p.enter("SpreadElement")
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitYieldExpression(n *ast.YieldExpression) {
	label := "YieldExpression"
	if n.Delegate {
		label += "*"
	}
	if n.Argument == nil {
		p.line(label)
		return
	}
	p.enter(label)
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitAwaitExpression(n *ast.AwaitExpression) {
	p.enter("AwaitExpression")
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitThisExpression(n *ast.ThisExpression) {
	p.line("ThisExpression")
}

func (p *TreePrinter) VisitSuper(n *ast.Super) {
	p.line("Super")
}

func (p *TreePrinter) VisitParenthesizedExpression(n *ast.ParenthesizedExpression) {
	p.enter("ParenthesizedExpression")
	n.Expression.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitObjectPattern(n *ast.ObjectPattern) {
	p.enter(fmt.Sprintf("ObjectPattern[%d]", len(n.Properties)))
	for _, prop := range n.Properties {
		prop.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitArrayPattern(n *ast.ArrayPattern) {
	p.enter(fmt.Sprintf("ArrayPattern[%d]", len(n.Elements)))
	for _, el := range n.Elements {
		if el == nil {
			p.line("<elision>")
			continue
		}
		el.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitAssignmentPattern(n *ast.AssignmentPattern) {
	p.enter("AssignmentPattern")
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.leave()
}

func (p *TreePrinter) VisitRestElement(n *ast.RestElement) {
	p.enter("RestElement")
	n.Argument.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitImportDeclaration(n *ast.ImportDeclaration) {
	p.enter(fmt.Sprintf("ImportDeclaration[%d]", len(n.Specifiers)))
	for _, s := range n.Specifiers {
		s.Accept(p)
	}
	n.Source.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitImportSpecifier(n *ast.ImportSpecifier) {
	p.line("ImportSpecifier " + n.Imported.Name + " as " + n.Local.Name)
}

func (p *TreePrinter) VisitImportDefaultSpecifier(n *ast.ImportDefaultSpecifier) {
	p.line("ImportDefaultSpecifier " + n.Local.Name)
}

func (p *TreePrinter) VisitImportNamespaceSpecifier(n *ast.ImportNamespaceSpecifier) {
	p.line("ImportNamespaceSpecifier * as " + n.Local.Name)
}

func (p *TreePrinter) VisitExportNamedDeclaration(n *ast.ExportNamedDeclaration) {
	p.enter("ExportNamedDeclaration")
	if n.Declaration != nil {
		n.Declaration.Accept(p)
	}
	for _, s := range n.Specifiers {
		s.Accept(p)
	}
	if n.Source != nil {
		n.Source.Accept(p)
	}
	p.leave()
}

func (p *TreePrinter) VisitExportDefaultDeclaration(n *ast.ExportDefaultDeclaration) {
	p.enter("ExportDefaultDeclaration")
	n.Declaration.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitExportAllDeclaration(n *ast.ExportAllDeclaration) {
	if n.Exported != nil {
		p.enter("ExportAllDeclaration as " + n.Exported.Name)
	} else {
		p.enter("ExportAllDeclaration")
	}
	n.Source.Accept(p)
	p.leave()
}

func (p *TreePrinter) VisitExportSpecifier(n *ast.ExportSpecifier) {
	p.line("ExportSpecifier " + n.Local.Name + " as " + n.Exported.Name)
}

func (p *TreePrinter) printParamsAndBody(params []ast.Pattern, body *ast.BlockStatement) {
	p.children("Params", patternsToNodes(params))
	body.Accept(p)
}

func (p *TreePrinter) printClass(label string, id *ast.Identifier, super ast.Expression, body *ast.ClassBody) {
	name := funcName(id)
	if name != "" {
		label += " " + name
	}
	p.enter(label)
	if super != nil {
		p.child("SuperClass", super)
	}
	body.Accept(p)
	p.leave()
}

func funcName(id *ast.Identifier) string {
	if id == nil {
		return ""
	}
	return id.Name
}

func functionHeader(kind, name string, generator, async bool) string {
	s := kind
	if name != "" {
		s += " " + name
	}
	if generator {
		s += " *"
	}
	if async {
		s = "async " + s
	}
	return s
}

func patternsToNodes(patterns []ast.Pattern) []ast.Node {
	nodes := make([]ast.Node, len(patterns))
	for i, pt := range patterns {
		nodes[i] = pt
	}
	return nodes
}
