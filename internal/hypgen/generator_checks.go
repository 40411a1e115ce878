package hypgen

import (
	"fmt"
	"strings"
)

// templateChecks collects the compile-time validation statements for a
// template: one element check per distinct tag and one attribute reference
// per distinct checkable attribute name. Custom elements carry no vocabulary
// and produce nothing.
func templateChecks(t *Template) []string {
	c := &checkSet{seen: make(map[string]bool)}
	c.walk(t.Body)
	return c.checks
}

type checkSet struct {
	checks []string
	seen   map[string]bool
}

func (c *checkSet) add(s string) {
	if c.seen[s] {
		return
	}
	c.seen[s] = true
	c.checks = append(c.checks, s)
}

func (c *checkSet) walk(nodes []Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *Element:
			c.element(n)
			c.walk(n.Children)
		case *Component:
			c.walk(n.Children)
		case *Group:
			c.walk(n.Children)
		case *IfStmt:
			c.walk(n.Then)
			for _, ei := range n.ElseIfs {
				c.walk(ei.Body)
			}
			c.walk(n.Else)
		case *ForLoop:
			c.walk(n.Body)
		case *WhileLoop:
			c.walk(n.Body)
		case *MatchStmt:
			for _, mc := range n.Cases {
				c.walk(mc.Body)
			}
			c.walk(n.Default)
		}
	}
}

func (c *checkSet) element(elem *Element) {
	name := elem.Name.String()
	if strings.Contains(name, "-") {
		return
	}
	if !IsKnownElement(name) {
		return
	}

	// The kind comes from how the element is written, not the vocabulary,
	// so a normal element used with a void terminator fails to compile.
	structName := elem.Name.ExportedIdent()
	kind := "Normal"
	if elem.Void {
		kind = "Void"
	}
	c.add(fmt.Sprintf("validation.CheckElement[htmlelements.%s, validation.%s]()", structName, kind))

	for _, attr := range elem.Attrs {
		c.attribute(attr, name, structName)
	}
}

func (c *checkSet) attribute(attr *Attribute, element, structName string) {
	switch attr.Name.Kind {
	case AttrNameNormal:
		attrName := attr.Name.String()
		if !HasAttrField(element, attrName) {
			return
		}
		c.add(fmt.Sprintf("var _ validation.Attribute = htmlelements.%s{}.%s",
			structName, attr.Name.Name.ExportedIdent()))
	case AttrNameNamespace:
		ns := attr.Name.Namespace.String()
		if !attrNamespaces[ns] {
			return
		}
		c.add(fmt.Sprintf("var _ validation.AttributeNamespace = htmlelements.GlobalAttributes{}.%s",
			attr.Name.Namespace.ExportedIdent()))
	case AttrNameSymbol:
		field := "At"
		if attr.Name.Symbol == ':' {
			field = "Colon"
		}
		c.add(fmt.Sprintf("var _ validation.AttributeSymbol = htmlelements.GlobalAttributes{}.%s", field))
	}
	if attr.Kind == AttrClassList {
		c.add(fmt.Sprintf("var _ validation.Attribute = htmlelements.%s{}.Class", structName))
	}
}

// emitChecks writes the validation block for a template. The block is a
// discarded function value evaluated at package init, so every referenced
// element and attribute must type-check.
func (g *Generator) emitChecks(t *Template) {
	checks := templateChecks(t)
	if len(checks) == 0 {
		return
	}
	g.writeln("var _ = func() struct{} {")
	g.indent++
	for _, chk := range checks {
		g.writeln(chk)
	}
	g.writeln("return struct{}{}")
	g.indent--
	g.writeln("}()")
	g.writeln("")
}

// fileHasChecks reports whether any template in the file produces a
// validation block, which decides the validation imports.
func fileHasChecks(file *File) bool {
	for _, t := range file.Templates() {
		if len(templateChecks(t)) > 0 {
			return true
		}
	}
	return false
}
