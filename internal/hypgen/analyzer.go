package hypgen

import (
	"fmt"
	"strings"
)

// Analyzer performs semantic validation on a parsed file before code
// generation. It checks element and attribute names against the HTML
// vocabulary, enforces void element rules, and rejects dynamic content
// inside static templates.
type Analyzer struct {
	file   *File
	errors *ErrorList

	// templateDefs maps template names defined in this file to their
	// declarations, for cross-reference checks.
	templateDefs map[string]*Template

	usesRuntime bool
}

// NewAnalyzer creates an analyzer for the given file.
func NewAnalyzer(file *File) *Analyzer {
	return &Analyzer{
		file:         file,
		errors:       NewErrorList(),
		templateDefs: make(map[string]*Template),
	}
}

// Analyze runs all semantic checks and returns any errors found.
func (a *Analyzer) Analyze() error {
	// Pass 1: collect template definitions.
	for _, decl := range a.file.Decls {
		tmpl, ok := decl.(*Template)
		if !ok {
			continue
		}
		if prev, exists := a.templateDefs[tmpl.Name]; exists && tmpl.Recv == "" && prev.Recv == "" {
			a.errors.AddErrorf(tmpl.Position,
				"template %s is already defined at line %d", tmpl.Name, prev.Position.Line)
			continue
		}
		if tmpl.Recv == "" {
			a.templateDefs[tmpl.Name] = tmpl
		}
	}

	// Pass 2: analyze template bodies.
	for _, decl := range a.file.Decls {
		if tmpl, ok := decl.(*Template); ok {
			a.analyzeTemplate(tmpl)
		}
	}

	a.addMissingImports()

	if a.errors.HasErrors() {
		return a.errors
	}
	return nil
}

// Errors returns the accumulated error list.
func (a *Analyzer) Errors() *ErrorList {
	return a.errors
}

func (a *Analyzer) analyzeTemplate(tmpl *Template) {
	a.usesRuntime = true
	if tmpl.Static && tmpl.Recv != "" {
		a.errors.AddErrorf(tmpl.Position,
			"static template %s cannot have a method receiver", tmpl.Name)
	}
	if tmpl.Static {
		a.checkStatic(tmpl.Body, tmpl.Name)
	}
	for _, node := range tmpl.Body {
		a.analyzeNode(node, tmpl.Syntax)
	}
}

// checkStatic rejects dynamic constructs inside a static template, which
// must fold to a single compile-time constant.
func (a *Analyzer) checkStatic(nodes []Node, name string) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *SpliceExpr:
			a.errors.Add(NewErrorWithHint(n.Position,
				fmt.Sprintf("static template %s cannot contain spliced expressions", name),
				"remove the static modifier or inline the value as a literal"))
		case *LetBinding:
			a.errors.AddErrorf(n.Position,
				"static template %s cannot contain @let bindings", name)
		case *IfStmt:
			a.errors.AddErrorf(n.Position,
				"static template %s cannot contain @if", name)
		case *ForLoop:
			a.errors.AddErrorf(n.Position,
				"static template %s cannot contain @for", name)
		case *WhileLoop:
			a.errors.AddErrorf(n.Position,
				"static template %s cannot contain @while", name)
		case *MatchStmt:
			a.errors.AddErrorf(n.Position,
				"static template %s cannot contain @match", name)
		case *Component:
			a.errors.AddErrorf(n.Position,
				"static template %s cannot invoke component %s", name, n.Name.String())
		case *Element:
			a.checkStaticAttrs(n, name)
			a.checkStatic(n.Children, name)
		case *Group:
			a.checkStatic(n.Children, name)
		}
	}
}

func (a *Analyzer) checkStaticAttrs(elem *Element, name string) {
	for _, attr := range elem.Attrs {
		if attr.Kind == AttrOption {
			a.errors.AddErrorf(attr.Position,
				"static template %s cannot use optional attribute %s", name, attr.Name.String())
			continue
		}
		if attr.Toggle != "" {
			a.errors.AddErrorf(attr.Position,
				"static template %s cannot use toggled attribute %s", name, attr.Name.String())
		}
		for _, v := range attr.Value {
			if _, ok := v.(*SpliceExpr); ok {
				a.errors.AddErrorf(attr.Position,
					"static template %s cannot splice into attribute %s", name, attr.Name.String())
			}
		}
		for _, cls := range attr.Classes {
			if cls.Toggle != "" {
				a.errors.AddErrorf(attr.Position,
					"static template %s cannot use toggled class on <%s>", name, elem.Name.String())
			}
		}
	}
}

func (a *Analyzer) analyzeNode(node Node, syntax Syntax) {
	switch n := node.(type) {
	case *Element:
		a.analyzeElement(n, syntax)
	case *Component:
		a.analyzeComponent(n, syntax)
	case *Group:
		for _, child := range n.Children {
			a.analyzeNode(child, syntax)
		}
	case *IfStmt:
		for _, child := range n.Then {
			a.analyzeNode(child, syntax)
		}
		for _, ei := range n.ElseIfs {
			for _, child := range ei.Body {
				a.analyzeNode(child, syntax)
			}
		}
		for _, child := range n.Else {
			a.analyzeNode(child, syntax)
		}
	case *ForLoop:
		for _, child := range n.Body {
			a.analyzeNode(child, syntax)
		}
	case *WhileLoop:
		for _, child := range n.Body {
			a.analyzeNode(child, syntax)
		}
	case *MatchStmt:
		for _, c := range n.Cases {
			for _, child := range c.Body {
				a.analyzeNode(child, syntax)
			}
		}
		for _, child := range n.Default {
			a.analyzeNode(child, syntax)
		}
	}
}

func (a *Analyzer) analyzeElement(elem *Element, syntax Syntax) {
	name := elem.Name.String()
	custom := strings.Contains(name, "-")

	if !custom && !IsKnownElement(name) {
		err := NewErrorRange(elem.Name.Position, elem.Name.End(),
			fmt.Sprintf("unknown element <%s>", name))
		if similar := SuggestElement(name); similar != "" {
			err.Hint = fmt.Sprintf("did you mean <%s>?", similar)
		}
		a.errors.Add(err)
	}

	if IsVoidElement(name) && len(elem.Children) > 0 {
		a.errors.AddErrorf(elem.Position,
			"<%s> is a void element and cannot have children", name)
	}

	if !custom && elem.Void && IsKnownElement(name) && !IsVoidElement(name) {
		a.errors.Add(NewErrorWithHint(elem.Position,
			fmt.Sprintf("<%s> is not a void element and must have a body", name),
			"use { } for children or an empty body"))
	}

	seen := make(map[string]Position)
	for _, attr := range elem.Attrs {
		attrName := attr.Name.String()
		if prev, dup := seen[attrName]; dup {
			a.errors.AddErrorf(attr.Position,
				"duplicate attribute %s on <%s> (first used at line %d)",
				attrName, name, prev.Line)
		} else {
			seen[attrName] = attr.Position
		}
		a.analyzeAttribute(attr, name, custom, syntax)
	}

	for _, child := range elem.Children {
		a.analyzeNode(child, syntax)
	}
}

func (a *Analyzer) analyzeAttribute(attr *Attribute, element string, custom bool, syntax Syntax) {
	switch attr.Name.Kind {
	case AttrNameNormal:
		if custom {
			return
		}
		name := attr.Name.String()
		if !IsKnownAttribute(element, name) {
			err := NewErrorRange(attr.Name.Name.Position, attr.Name.Name.End(),
				fmt.Sprintf("unknown attribute %s on <%s>", name, element))
			if similar := SuggestAttribute(element, name); similar != "" {
				err.Hint = fmt.Sprintf("did you mean %s?", similar)
			}
			a.errors.Add(err)
		}
	case AttrNameNamespace:
		ns := attr.Name.Namespace.String()
		if !attrNamespaces[ns] {
			a.errors.Add(NewErrorWithHint(attr.Position,
				fmt.Sprintf("unknown attribute namespace %s:", ns),
				"known namespaces are xml:, xmlns:, and xlink:"))
		}
	}
	// Data, symbol, and quoted names carry no vocabulary to check.
}

func (a *Analyzer) analyzeComponent(comp *Component, syntax Syntax) {
	name := comp.Name.String()

	if def, defined := a.templateDefs[name]; defined {
		if def.Syntax == SyntaxAttr {
			a.errors.AddErrorf(comp.Position,
				"%s is an attribute template and cannot be used as an element", name)
		}
	}
	// Names defined in other files resolve at compile time of the
	// generated code.

	for _, attr := range comp.Attrs {
		switch {
		case attr.Kind == AttrOption:
			a.errors.AddErrorf(attr.Position,
				"component %s cannot take an optional attribute", name)
		case attr.Kind == AttrClassList:
			a.errors.AddErrorf(attr.Position,
				"component %s cannot take class shorthand", name)
		case attr.Toggle != "":
			a.errors.AddErrorf(attr.Position,
				"component %s cannot take a toggled attribute", name)
		case attr.Kind == AttrValue && len(attr.Value) != 1:
			a.errors.AddErrorf(attr.Position,
				"component attribute %s needs a single value", attr.Name.String())
		}
		if attr.Name.Kind != AttrNameNormal {
			a.errors.AddErrorf(attr.Position,
				"component attribute names must be plain identifiers")
		}
	}

	for _, child := range comp.Children {
		a.analyzeNode(child, syntax)
	}
}

// addMissingImports ensures the runtime package is imported when any
// template body will reference it in generated code.
func (a *Analyzer) addMissingImports() {
	if !a.usesRuntime {
		return
	}
	for _, imp := range a.file.Imports {
		if imp.Path == "github.com/hypgen/hyp" {
			return
		}
	}
	a.file.Imports = append(a.file.Imports, &Import{
		Alias: "hyp",
		Path:  "github.com/hypgen/hyp",
	})
}
