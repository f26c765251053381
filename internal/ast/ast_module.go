package ast

// ImportDeclaration is a static `import ... from "source"`. Specifiers holds
// zero or more of *ImportSpecifier, *ImportDefaultSpecifier,
// *ImportNamespaceSpecifier in source order.
type ImportDeclaration struct {
	Base
	Specifiers []Node
	Source     *Literal
}

func (n *ImportDeclaration) Accept(v Visitor) { v.VisitImportDeclaration(n) }
func (n *ImportDeclaration) statementNode()   {}

// ImportSpecifier is one `Imported [as Local]` named-import binding.
type ImportSpecifier struct {
	Base
	Imported *Identifier
	Local    *Identifier
}

func (n *ImportSpecifier) Accept(v Visitor) { v.VisitImportSpecifier(n) }

// ImportDefaultSpecifier is the `Local` of `import Local from "..."`.
type ImportDefaultSpecifier struct {
	Base
	Local *Identifier
}

func (n *ImportDefaultSpecifier) Accept(v Visitor) { v.VisitImportDefaultSpecifier(n) }

// ImportNamespaceSpecifier is the `Local` of `import * as Local from "..."`.
type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier
}

func (n *ImportNamespaceSpecifier) Accept(v Visitor) { v.VisitImportNamespaceSpecifier(n) }

// ExportNamedDeclaration covers `export Declaration`, `export {Specifiers}`,
// and `export {Specifiers} from "source"`. Declaration is non-nil only for
// the first form, in which case Specifiers is empty and Source is nil.
type ExportNamedDeclaration struct {
	Base
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

func (n *ExportNamedDeclaration) Accept(v Visitor) { v.VisitExportNamedDeclaration(n) }
func (n *ExportNamedDeclaration) statementNode()   {}

// ExportDefaultDeclaration is `export default Declaration`. Declaration is a
// *FunctionExpression for the function forms, a *ClassExpression for the
// class forms (named or not), or the Expression of `export default <expr>;`.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node
}

func (n *ExportDefaultDeclaration) Accept(v Visitor) { v.VisitExportDefaultDeclaration(n) }
func (n *ExportDefaultDeclaration) statementNode()   {}

// ExportAllDeclaration is `export * [as Exported] from "source"`. Exported
// is nil for the bare re-export-everything form.
type ExportAllDeclaration struct {
	Base
	Exported *Identifier
	Source   *Literal
}

func (n *ExportAllDeclaration) Accept(v Visitor) { v.VisitExportAllDeclaration(n) }
func (n *ExportAllDeclaration) statementNode()   {}

// ExportSpecifier is one `Local [as Exported]` entry of a named export list.
type ExportSpecifier struct {
	Base
	Local    *Identifier
	Exported *Identifier
}

func (n *ExportSpecifier) Accept(v Visitor) { v.VisitExportSpecifier(n) }
