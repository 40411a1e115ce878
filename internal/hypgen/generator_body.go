package hypgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hypgen/hyp"
)

// bodyGen emits the statements of a single rendering closure. Static output
// is coalesced into one WriteString call per run; dynamic nodes flush the
// pending run and emit their own statements.
type bodyGen struct {
	g    *Generator
	out  string // output buffer variable name
	attr bool   // true inside an attr template (attribute escaping context)

	pending strings.Builder
}

func newBodyGen(g *Generator, out string, attr bool) *bodyGen {
	return &bodyGen{g: g, out: out, attr: attr}
}

// attrExpr returns the expression yielding the attribute buffer.
func (b *bodyGen) attrExpr() string {
	if b.attr {
		return b.out
	}
	return b.out + ".Attr()"
}

// raw appends pre-escaped markup to the pending static run.
func (b *bodyGen) raw(s string) {
	b.pending.WriteString(s)
}

// text appends literal text, escaped for the content context.
func (b *bodyGen) text(s string) {
	b.pending.WriteString(hyp.EscapeString(s))
}

// attrText appends literal text, escaped for the attribute value context.
func (b *bodyGen) attrText(s string) {
	b.pending.WriteString(hyp.EscapeAttrString(s))
}

// flush writes the pending static run as a single WriteString call.
func (b *bodyGen) flush() {
	if b.pending.Len() == 0 {
		return
	}
	b.g.writef("%s.WriteString(%s)\n", b.out, strconv.Quote(b.pending.String()))
	b.pending.Reset()
}

// mapExpr records a source map entry for a raw Go expression emitted at the
// current output line. goCol is the column where the expression starts.
func (b *bodyGen) mapExpr(pos Position, goCol, length int) {
	b.g.sourceMap.AddMapping(SourceMapping{
		GoLine:  b.g.currentLine,
		GoCol:   goCol,
		HypLine: pos.Line - 1,
		HypCol:  pos.Column - 1,
		Length:  length,
	})
}

// spliceValue returns the Go expression rendered for a splice, wrapping
// display and debug modes in their runtime adapters.
func spliceValue(s *SpliceExpr) string {
	switch s.Mode {
	case SpliceDisplay:
		return fmt.Sprintf("hyp.Displayed{Value: %s}", s.Code)
	case SpliceDebug:
		return fmt.Sprintf("hyp.Debugged{Value: %s}", s.Code)
	}
	return s.Code
}

// spliceOffset returns the column offset of s.Code within its rendered form.
func spliceOffset(s *SpliceExpr) int {
	switch s.Mode {
	case SpliceDisplay:
		return len("hyp.Displayed{Value: ")
	case SpliceDebug:
		return len("hyp.Debugged{Value: ")
	}
	return 0
}

// renderContent emits a child list in element content context.
func (b *bodyGen) renderContent(nodes []Node) {
	if hasLetBinding(nodes) {
		b.flush()
		b.g.writeln("{")
		b.g.indent++
		for _, n := range nodes {
			b.contentNode(n)
		}
		b.flush()
		b.g.indent--
		b.g.writeln("}")
		return
	}
	for _, n := range nodes {
		b.contentNode(n)
	}
}

func (b *bodyGen) contentNode(node Node) {
	switch n := node.(type) {
	case *Doctype:
		b.raw("<!DOCTYPE html>")
	case *Literal:
		b.text(n.Value)
	case *SpliceExpr:
		b.flush()
		prefix := fmt.Sprintf("hyp.RenderTo(%s, ", b.out)
		b.mapExpr(n.Position, b.g.indent+len(prefix)+spliceOffset(n), len(n.Code))
		b.g.writef("%s%s)\n", prefix, spliceValue(n))
	case *Element:
		b.renderElement(n)
	case *Component:
		b.renderComponent(n)
	case *Group:
		b.renderContent(n.Children)
	case *LetBinding:
		b.renderLet(n)
	case *IfStmt:
		b.renderIf(n, b.renderContent)
	case *ForLoop:
		b.renderFor(n, b.renderContent)
	case *WhileLoop:
		b.renderWhile(n, b.renderContent)
	case *MatchStmt:
		b.renderMatch(n, b.renderContent)
	}
}

// renderAttrParts emits a child list in attribute value context.
func (b *bodyGen) renderAttrParts(nodes []Node) {
	if hasLetBinding(nodes) {
		b.flush()
		b.g.writeln("{")
		b.g.indent++
		for _, n := range nodes {
			b.attrNode(n)
		}
		b.flush()
		b.g.indent--
		b.g.writeln("}")
		return
	}
	for _, n := range nodes {
		b.attrNode(n)
	}
}

func (b *bodyGen) attrNode(node Node) {
	switch n := node.(type) {
	case *Literal:
		b.attrText(n.Value)
	case *SpliceExpr:
		b.flush()
		prefix := fmt.Sprintf("hyp.RenderAttrTo(%s, ", b.attrExpr())
		b.mapExpr(n.Position, b.g.indent+len(prefix)+spliceOffset(n), len(n.Code))
		b.g.writef("%s%s)\n", prefix, spliceValue(n))
	case *Group:
		b.renderAttrParts(n.Children)
	case *LetBinding:
		b.renderLet(n)
	case *IfStmt:
		b.renderIf(n, b.renderAttrParts)
	case *ForLoop:
		b.renderFor(n, b.renderAttrParts)
	case *WhileLoop:
		b.renderWhile(n, b.renderAttrParts)
	case *MatchStmt:
		b.renderMatch(n, b.renderAttrParts)
	}
}

// renderLet emits a binding statement. The := form requires a value; the
// typed form emits a var declaration.
func (b *bodyGen) renderLet(n *LetBinding) {
	b.flush()
	switch {
	case n.Type == "":
		b.g.writef("%s := %s\n", n.Name, n.Value)
	case n.Value == "":
		b.g.writef("var %s %s\n", n.Name, n.Type)
	default:
		b.g.writef("var %s %s = %s\n", n.Name, n.Type, n.Value)
	}
}

func (b *bodyGen) renderIf(n *IfStmt, body func([]Node)) {
	b.flush()
	b.mapExpr(n.Position, b.g.indent+len("if "), len(n.Cond))
	b.g.writef("if %s {\n", n.Cond)
	b.g.indent++
	body(n.Then)
	b.flush()
	b.g.indent--
	for _, ei := range n.ElseIfs {
		b.g.writef("} else if %s {\n", ei.Cond)
		b.g.indent++
		body(ei.Body)
		b.flush()
		b.g.indent--
	}
	if n.HasElse {
		b.g.writeln("} else {")
		b.g.indent++
		body(n.Else)
		b.flush()
		b.g.indent--
	}
	b.g.writeln("}")
}

func (b *bodyGen) renderFor(n *ForLoop, body func([]Node)) {
	b.flush()
	b.mapExpr(n.Position, b.g.indent+len("for "), len(n.Header))
	b.g.writef("for %s {\n", n.Header)
	b.g.indent++
	body(n.Body)
	b.flush()
	b.g.indent--
	b.g.writeln("}")
}

func (b *bodyGen) renderWhile(n *WhileLoop, body func([]Node)) {
	b.flush()
	b.mapExpr(n.Position, b.g.indent+len("for "), len(n.Cond))
	b.g.writef("for %s {\n", n.Cond)
	b.g.indent++
	body(n.Body)
	b.flush()
	b.g.indent--
	b.g.writeln("}")
}

func (b *bodyGen) renderMatch(n *MatchStmt, body func([]Node)) {
	b.flush()
	b.mapExpr(n.Position, b.g.indent+len("switch "), len(n.Subject))
	b.g.writef("switch %s {\n", n.Subject)
	for _, c := range n.Cases {
		b.g.writef("case %s:\n", c.Exprs)
		b.g.indent++
		body(c.Body)
		b.flush()
		b.g.indent--
	}
	if n.HasDflt {
		b.g.writeln("default:")
		b.g.indent++
		body(n.Default)
		b.flush()
		b.g.indent--
	}
	b.g.writeln("}")
}

// hasLetBinding reports whether a child list introduces bindings, which need
// their own block scope.
func hasLetBinding(nodes []Node) bool {
	for _, n := range nodes {
		if _, ok := n.(*LetBinding); ok {
			return true
		}
	}
	return false
}
