package hypgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()
	Pos() Position
}

// Comment represents a single comment in the source.
type Comment struct {
	Text            string // includes // or /* */ markers
	Position        Position
	EndLine         int
	EndCol          int
	IsBlock         bool
	BlankLineBefore bool // true if a blank line separated this comment from the previous one
}

// CommentGroup is a sequence of comments with no blank lines between them.
type CommentGroup struct {
	Comments []*Comment
	Position Position
}

func (c *CommentGroup) node()         {}
func (c *CommentGroup) Pos() Position { return c.Position }

// Text returns the comment text with markers stripped.
func (c *CommentGroup) Text() string {
	var parts []string
	for _, comment := range c.Comments {
		text := comment.Text
		if comment.IsBlock {
			text = strings.TrimPrefix(text, "/*")
			text = strings.TrimSuffix(text, "*/")
		} else {
			text = strings.TrimPrefix(text, "//")
		}
		parts = append(parts, strings.TrimSpace(text))
	}
	return strings.Join(parts, "\n")
}

// File is the root node of a parsed .hyp file.
type File struct {
	Package    string
	PackagePos Position
	Imports    []*Import
	Decls      []Node // *Template, *GoDecl, *GoFunc in source order
	Position   Position
}

func (f *File) node()         {}
func (f *File) Pos() Position { return f.Position }

// Templates returns the template declarations of the file in source order.
func (f *File) Templates() []*Template {
	var out []*Template
	for _, d := range f.Decls {
		if t, ok := d.(*Template); ok {
			out = append(out, t)
		}
	}
	return out
}

// Import represents a single import declaration.
type Import struct {
	Path     string
	Alias    string // optional alias
	Position Position
}

func (i *Import) node()         {}
func (i *Import) Pos() Position { return i.Position }

// Syntax selects the template syntax of a declaration body.
type Syntax int

const (
	SyntaxMaud Syntax = iota // brace-structured syntax
	SyntaxRsx                // angle-bracket syntax
	SyntaxAttr               // attribute-value syntax
)

// String returns the declaration keyword for the syntax.
func (s Syntax) String() string {
	switch s {
	case SyntaxMaud:
		return "maud"
	case SyntaxRsx:
		return "rsx"
	case SyntaxAttr:
		return "attr"
	}
	return "unknown"
}

// Template is a template declaration: maud/rsx/attr, optionally static,
// optionally with a method receiver, with a body of template nodes.
type Template struct {
	Syntax      Syntax
	Static      bool
	Recv        string // raw receiver source, e.g. "p Page"; empty for plain functions
	Name        string
	Params      []*Param
	IncludePath string // set when the body comes from include "path"
	IncludePos  Position
	Body        []Node
	Doc         *CommentGroup
	Position    Position
}

func (t *Template) node()         {}
func (t *Template) Pos() Position { return t.Position }

// Param is a single template parameter with its raw Go type.
type Param struct {
	Name     string
	Type     string
	Position Position
}

func (p *Param) node()         {}
func (p *Param) Pos() Position { return p.Position }

// GoDecl is a passthrough type/const/var declaration copied into the output.
type GoDecl struct {
	Keyword  string // "type", "const", or "var"
	Source   string // raw declaration source including the keyword
	Doc      *CommentGroup
	Position Position
}

func (g *GoDecl) node()         {}
func (g *GoDecl) Pos() Position { return g.Position }

// GoFunc is a passthrough func declaration copied into the output.
type GoFunc struct {
	Source   string
	Doc      *CommentGroup
	Position Position
}

func (g *GoFunc) node()         {}
func (g *GoFunc) Pos() Position { return g.Position }

// Doctype renders the literal <!DOCTYPE html> preamble.
type Doctype struct {
	Position Position
}

func (d *Doctype) node()         {}
func (d *Doctype) Pos() Position { return d.Position }

// Element is an HTML element with attributes and an optional child list.
// Void elements have no children and no closing tag.
type Element struct {
	Name     *Name
	Attrs    []*Attribute
	Void     bool
	Children []Node
	Position Position
}

func (e *Element) node()         {}
func (e *Element) Pos() Position { return e.Position }

// Component is an invocation of another template by its exported name.
// Attributes map to struct fields; the child list binds to Children lazily.
type Component struct {
	Name        *Name
	Attrs       []*Attribute
	HasChildren bool
	Children    []Node
	Position    Position
}

func (c *Component) node()         {}
func (c *Component) Pos() Position { return c.Position }

// LitKind distinguishes literal flavors.
type LitKind int

const (
	LitString LitKind = iota
	LitInt
	LitFloat
	LitBool
)

// Literal is a literal rendered with context-appropriate escaping.
// Value holds the unquoted string value for strings and the source text
// for numbers and bools.
type Literal struct {
	Kind     LitKind
	Value    string
	Position Position
}

func (l *Literal) node()         {}
func (l *Literal) Pos() Position { return l.Position }

// SpliceMode selects how a dynamic splice is rendered.
type SpliceMode int

const (
	SpliceRender  SpliceMode = iota // (expr) or {expr}: Renderable protocol
	SpliceDisplay                   // %(expr): fmt.Sprint, escaped
	SpliceDebug                     // ?(expr): %#v, escaped
)

// SpliceExpr is a dynamic splice of a raw Go expression.
type SpliceExpr struct {
	Mode     SpliceMode
	Code     string // raw Go expression source
	Position Position
	End      Position
}

func (s *SpliceExpr) node()         {}
func (s *SpliceExpr) Pos() Position { return s.Position }

// Group is a brace-delimited child list with no element of its own.
type Group struct {
	Children []Node
	Position Position
}

func (g *Group) node()         {}
func (g *Group) Pos() Position { return g.Position }

// LetBinding introduces a binding scoped to the enclosing child list.
type LetBinding struct {
	Name     string
	Type     string // optional; empty for := form
	Value    string // raw Go expression; may be empty when a type is given
	Position Position
}

func (l *LetBinding) node()         {}
func (l *LetBinding) Pos() Position { return l.Position }

// IfStmt is a conditional with optional else-if chain and else branch.
type IfStmt struct {
	Cond     string // raw Go condition
	Then     []Node
	ElseIfs  []*ElseIf
	Else     []Node
	HasElse  bool
	Position Position
}

func (i *IfStmt) node()         {}
func (i *IfStmt) Pos() Position { return i.Position }

// ElseIf is one @else if branch.
type ElseIf struct {
	Cond     string
	Body     []Node
	Position Position
}

// ForLoop repeats its body per the raw Go for-header.
type ForLoop struct {
	Header   string // everything between @for and {, e.g. "i, v := range items"
	Body     []Node
	Position Position
}

func (f *ForLoop) node()         {}
func (f *ForLoop) Pos() Position { return f.Position }

// WhileLoop repeats its body while the condition holds.
type WhileLoop struct {
	Cond     string
	Body     []Node
	Position Position
}

func (w *WhileLoop) node()         {}
func (w *WhileLoop) Pos() Position { return w.Position }

// MatchStmt renders the arm whose case matches the subject.
type MatchStmt struct {
	Subject  string // raw Go expression
	Cases    []*MatchCase
	Default  []Node
	HasDflt  bool
	Position Position
}

func (m *MatchStmt) node()         {}
func (m *MatchStmt) Pos() Position { return m.Position }

// MatchCase is one @case arm with a raw comma-separated expression list.
type MatchCase struct {
	Exprs    string
	Body     []Node
	Position Position
}

// AttrKind distinguishes the attribute value forms.
type AttrKind int

const (
	AttrValue     AttrKind = iota // name=value
	AttrEmpty                     // bare name
	AttrOption                    // name=[expr], rendered only when present
	AttrClassList                 // .a .b shorthand, collected into class=""
)

// Attribute is a single attribute on an element or component.
type Attribute struct {
	Name       *AttrName
	Kind       AttrKind
	Value      []Node // value parts for AttrValue (Literal or SpliceExpr)
	OptionExpr string // raw expression for AttrOption
	Toggle     string // raw toggle condition; empty when unconditional
	Classes    []*ClassEntry
	Position   Position
}

func (a *Attribute) node()         {}
func (a *Attribute) Pos() Position { return a.Position }

// ClassEntry is one member of a class list, optionally toggled.
type ClassEntry struct {
	Value    Node
	Toggle   string
	Position Position
}

// AttrNameKind classifies attribute names for validation purposes.
type AttrNameKind int

const (
	AttrNameNormal    AttrNameKind = iota // checked against the attribute table
	AttrNameData                          // data-*: never checked
	AttrNameNamespace                     // ns:rest: only the namespace is checked
	AttrNameSymbol                        // @name / :name: only the symbol is checked
	AttrNameUnchecked                     // quoted string name: charset-validated only
)

// AttrName is an attribute name with its validation classification.
type AttrName struct {
	Kind      AttrNameKind
	Name      *Name  // full name as written (nil for unchecked)
	Namespace *Name  // namespace part for AttrNameNamespace
	Symbol    rune   // '@' or ':' for AttrNameSymbol
	Raw       string // literal content for AttrNameUnchecked
	Position  Position
}

// String returns the attribute name as it is rendered into HTML.
func (a *AttrName) String() string {
	switch a.Kind {
	case AttrNameUnchecked:
		return a.Raw
	case AttrNameSymbol:
		return string(a.Symbol) + a.Name.String()
	default:
		return a.Name.String()
	}
}

// Name is an unquoted name made of adjacent fragments
// (identifiers, numbers, and the separators - : .).
type Name struct {
	Fragments []NameFragment
	Position  Position
}

// NameFragment is one piece of an unquoted name.
type NameFragment struct {
	Text     string
	Position Position
}

func (n *Name) node()         {}
func (n *Name) Pos() Position { return n.Position }

// End returns the position just past the last fragment. Fragments are
// byte-adjacent, so the whole name sits on one line.
func (n *Name) End() Position {
	last := n.Fragments[len(n.Fragments)-1]
	end := last.Position
	end.Column += len(last.Text)
	return end
}

// String returns the name as written in the source.
func (n *Name) String() string {
	var sb strings.Builder
	for _, f := range n.Fragments {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// IsComponent reports whether the name is a single identifier fragment
// starting with an uppercase letter.
func (n *Name) IsComponent() bool {
	if len(n.Fragments) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(n.Fragments[0].Text)
	return unicode.IsUpper(r)
}

// goKeywords are names that need a leading underscore to be valid Go idents.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true,
	"for": true, "func": true, "go": true, "goto": true, "if": true,
	"import": true, "interface": true, "map": true, "package": true,
	"range": true, "return": true, "select": true, "struct": true,
	"switch": true, "type": true, "var": true, "_": true,
}

// GoIdent returns the name as a Go identifier: hyphens become underscores,
// and names that collide with Go keywords or start with a digit get a
// leading underscore.
func (n *Name) GoIdent() string {
	s := strings.ReplaceAll(n.String(), "-", "_")
	r, _ := utf8.DecodeRuneInString(s)
	if goKeywords[s] || unicode.IsDigit(r) {
		return "_" + s
	}
	return s
}

// ExportedIdent returns the name as an exported Go identifier, camel-casing
// hyphen-separated parts: accept-charset becomes AcceptCharset.
func (n *Name) ExportedIdent() string {
	parts := strings.Split(n.String(), "-")
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(p[size:])
	}
	return sb.String()
}
