package hypgen

import (
	"fmt"
	"strings"
)

// renderElement emits an element: open tag, attributes, children, close tag.
// Void elements and elements terminated with ; get no closing tag.
func (b *bodyGen) renderElement(elem *Element) {
	name := elem.Name.String()

	b.raw("<" + name)
	for _, attr := range elem.Attrs {
		b.renderAttribute(attr)
	}
	b.raw(">")

	if IsVoidElement(name) || elem.Void {
		return
	}
	b.renderContent(elem.Children)
	b.raw("</" + name + ">")
}

// renderAttribute emits one attribute inside an open tag.
func (b *bodyGen) renderAttribute(attr *Attribute) {
	name := attr.Name.String()

	switch attr.Kind {
	case AttrClassList:
		b.renderClassList(attr)

	case AttrEmpty:
		b.withToggle(attr.Toggle, func() {
			b.raw(" " + name)
		})

	case AttrValue:
		b.withToggle(attr.Toggle, func() {
			b.raw(" " + name + `="`)
			b.renderAttrParts(attr.Value)
			b.raw(`"`)
		})

	case AttrOption:
		b.flush()
		v := b.g.nextVar()
		b.g.writef("if %s := hyp.Unwrap(%s); %s != nil {\n", v, attr.OptionExpr, v)
		b.g.indent++
		b.raw(" " + name + `="`)
		b.flush()
		b.g.writef("hyp.RenderAttrTo(%s, %s)\n", b.attrExpr(), v)
		b.raw(`"`)
		b.flush()
		b.g.indent--
		b.g.writeln("}")
	}
}

// renderClassList emits the class attribute built from .class shorthand
// entries. Entries after the first are separated by a space, which stays
// with its entry inside any toggle.
func (b *bodyGen) renderClassList(attr *Attribute) {
	b.raw(` class="`)
	for i, cls := range attr.Classes {
		sep := ""
		if i > 0 {
			sep = " "
		}
		b.withToggle(cls.Toggle, func() {
			b.raw(sep)
			b.renderAttrParts([]Node{cls.Value})
		})
	}
	b.raw(`"`)
}

// withToggle wraps emission in an if statement when a toggle condition is
// present.
func (b *bodyGen) withToggle(toggle string, emit func()) {
	if toggle == "" {
		emit()
		return
	}
	b.flush()
	b.g.writef("if %s {\n", toggle)
	b.g.indent++
	emit()
	b.flush()
	b.g.indent--
	b.g.writeln("}")
}

// renderComponent emits a component invocation as a struct literal rendered
// through the runtime. Attribute names map to exported struct fields and the
// child list binds to the Children field.
func (b *bodyGen) renderComponent(comp *Component) {
	b.flush()
	name := comp.Name.String()

	var fields []string
	for _, attr := range comp.Attrs {
		field := attr.Name.Name.ExportedIdent()
		fields = append(fields, fmt.Sprintf("%s: %s", field, componentAttrValue(attr)))
	}

	if comp.HasChildren || len(comp.Children) > 0 {
		b.g.writef("hyp.RenderTo(%s, %sComponent{\n", b.out, name)
		b.g.indent++
		for _, f := range fields {
			b.g.writef("%s,\n", f)
		}
		b.g.writef("Children: func(%s *hyp.Buffer) {\n", b.out)
		b.g.indent++
		b.renderContent(comp.Children)
		b.flush()
		b.g.indent--
		b.g.writeln("},")
		b.g.indent--
		b.g.writeln("})")
		return
	}

	b.g.writef("hyp.RenderTo(%s, %sComponent{%s})\n", b.out, name, strings.Join(fields, ", "))
}

// componentAttrValue returns the Go expression for a component attribute
// value. Literals become typed Go literals; splices pass through verbatim.
func componentAttrValue(attr *Attribute) string {
	if attr.Kind == AttrEmpty {
		return "true"
	}
	if len(attr.Value) != 1 {
		return `""`
	}
	switch v := attr.Value[0].(type) {
	case *Literal:
		if v.Kind == LitString {
			return fmt.Sprintf("%q", v.Value)
		}
		return v.Value
	case *SpliceExpr:
		return v.Code
	}
	return `""`
}
