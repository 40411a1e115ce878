package hypgen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hypgen/hyp"
)

// generateTemplate writes one template declaration: the rendering function,
// its component struct, and its validation block.
func (g *Generator) generateTemplate(t *Template) error {
	if t.Static {
		return g.generateStaticTemplate(t)
	}

	attr := t.Syntax == SyntaxAttr
	retType, bufType := "hyp.Lazy", "*hyp.Buffer"
	if attr {
		retType, bufType = "hyp.AttrLazy", "*hyp.AttrBuffer"
	}

	g.writeDoc(t.Doc)
	if t.Recv != "" {
		g.writef("func (%s) %s(%s) %s {\n", t.Recv, t.Name, paramList(t.Params), retType)
	} else {
		g.writef("func %s(%s) %s {\n", t.Name, paramList(t.Params), retType)
	}
	g.indent++
	g.writef("return func(__hyp_out %s) {\n", bufType)
	g.indent++

	b := newBodyGen(g, "__hyp_out", attr)
	if attr {
		b.renderAttrParts(t.Body)
	} else {
		b.renderContent(t.Body)
	}
	b.flush()

	g.indent--
	g.writeln("}")
	g.indent--
	g.writeln("}")
	g.writeln("")

	if t.Recv == "" && !attr {
		g.generateComponentStruct(t)
	}
	g.emitChecks(t)
	return nil
}

// generateStaticTemplate folds the whole body into a single constant.
func (g *Generator) generateStaticTemplate(t *Template) error {
	var sb strings.Builder
	attr := t.Syntax == SyntaxAttr
	if err := foldStatic(t.Body, attr, &sb); err != nil {
		return err
	}

	constType := "hyp.Rendered"
	if attr {
		constType = "hyp.RenderedAttribute"
	}

	g.writeDoc(t.Doc)
	g.writef("const %s %s = %s\n", t.Name, constType, strconv.Quote(sb.String()))
	g.writeln("")
	g.emitChecks(t)
	return nil
}

// foldStatic serializes a dynamic-free child list into its final markup.
func foldStatic(nodes []Node, attr bool, sb *strings.Builder) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *Doctype:
			sb.WriteString("<!DOCTYPE html>")
		case *Literal:
			if attr {
				sb.WriteString(hyp.EscapeAttrString(n.Value))
			} else {
				sb.WriteString(hyp.EscapeString(n.Value))
			}
		case *Group:
			if err := foldStatic(n.Children, attr, sb); err != nil {
				return err
			}
		case *Element:
			if err := foldStaticElement(n, sb); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: dynamic node in static template", node.Pos())
		}
	}
	return nil
}

func foldStaticElement(elem *Element, sb *strings.Builder) error {
	name := elem.Name.String()
	sb.WriteString("<" + name)
	for _, a := range elem.Attrs {
		if err := foldStaticAttr(a, sb); err != nil {
			return err
		}
	}
	sb.WriteString(">")
	if IsVoidElement(name) || elem.Void {
		return nil
	}
	if err := foldStatic(elem.Children, false, sb); err != nil {
		return err
	}
	sb.WriteString("</" + name + ">")
	return nil
}

func foldStaticAttr(a *Attribute, sb *strings.Builder) error {
	switch a.Kind {
	case AttrEmpty:
		sb.WriteString(" " + a.Name.String())
		return nil
	case AttrValue:
		var vb strings.Builder
		if err := foldStatic(a.Value, true, &vb); err != nil {
			return err
		}
		sb.WriteString(" " + a.Name.String() + `="` + vb.String() + `"`)
		return nil
	case AttrClassList:
		var vb strings.Builder
		for i, cls := range a.Classes {
			if i > 0 {
				vb.WriteString(" ")
			}
			if err := foldStatic([]Node{cls.Value}, true, &vb); err != nil {
				return err
			}
		}
		sb.WriteString(` class="` + vb.String() + `"`)
		return nil
	}
	return fmt.Errorf("%s: dynamic attribute in static template", a.Position)
}

// generateComponentStruct writes the struct form of a template so it can be
// invoked as an element from other templates. Parameters become exported
// fields; a children parameter becomes the Children field that call sites
// with a child list populate. Passing children to a template without one
// fails to compile at the call site.
func (g *Generator) generateComponentStruct(t *Template) {
	structName := t.Name + "Component"

	g.writef("// %s invokes %s as an element.\n", structName, t.Name)
	g.writef("type %s struct {\n", structName)
	g.indent++
	for _, p := range t.Params {
		g.writef("%s %s\n", exportIdent(p.Name), p.Type)
	}
	g.indent--
	g.writeln("}")
	g.writeln("")

	args := make([]string, len(t.Params))
	for i, p := range t.Params {
		args[i] = "c." + exportIdent(p.Name)
	}

	g.writef("func (c %s) RenderTo(out *hyp.Buffer) {\n", structName)
	g.indent++
	g.writef("%s(%s)(out)\n", t.Name, strings.Join(args, ", "))
	g.indent--
	g.writeln("}")
	g.writeln("")
}

// paramList renders template parameters as a Go parameter list.
func paramList(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// exportIdent capitalizes the first rune of a parameter name to form its
// struct field.
func exportIdent(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
