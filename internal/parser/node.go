package parser

import "github.com/funvibe/ecmaparse/internal/ast"

// nodeState captures the pending start position/location a node will be
// finished with; startNode records it, finish closes it with the last
// consumed token's end. The Go type itself is the tag spec.md's C1 asks
// finishNode to stamp, so nodeState only carries position bookkeeping.
type nodeState struct {
	start    int
	startLoc ast.Position
}

// startNode records the current token's start as the future node's start.
func (p *Parser) startNode() nodeState {
	return nodeState{start: p.cur.Start, startLoc: ast.Position{Line: p.cur.Line, Column: p.cur.Column}}
}

// startNodeAt begins a node at an already-known offset. No production calls
// it: constructs discovered retroactively (e.g. a MemberExpression built
// around a previously parsed object) reuse the nodeState taken at their head.
func (p *Parser) startNodeAt(pos int, loc ast.Position) nodeState {
	return nodeState{start: pos, startLoc: loc}
}

// finish stamps base with ns's start and the last consumed token's end,
// attaching loc/range only when the corresponding options are enabled.
func (p *Parser) finish(ns nodeState, base *ast.Base) {
	base.StartPos = ns.start
	base.SetEnd(p.lastTokEnd, nil)
	if p.opts.Locations {
		base.Loc = &ast.SourceLocation{Start: ns.startLoc, End: p.lastTokEndLoc}
	}
	if p.opts.Ranges {
		base.Range = &[2]int{ns.start, p.lastTokEnd}
	}
	if p.opts.DirectSourceFile != "" {
		base.SourceFile = p.opts.DirectSourceFile
	}
}

// finishAt is finish with an explicit end offset/location, used for nodes
// whose extent is known out of band (C1's finishNodeAt).
func (p *Parser) finishAt(ns nodeState, base *ast.Base, endPos int, endLoc ast.Position) {
	base.StartPos = ns.start
	base.SetEnd(endPos, &endLoc)
	if p.opts.Locations {
		base.Loc = &ast.SourceLocation{Start: ns.startLoc, End: endLoc}
	}
	if p.opts.Ranges {
		base.Range = &[2]int{ns.start, endPos}
	}
	if p.opts.DirectSourceFile != "" {
		base.SourceFile = p.opts.DirectSourceFile
	}
}
