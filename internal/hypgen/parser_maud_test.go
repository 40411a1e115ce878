package hypgen

import (
	"strings"
	"testing"
)

// parseSource parses a complete .hyp source and fails the test on any error.
func parseSource(t *testing.T, input string) *File {
	t.Helper()
	l := NewLexer("test.hyp", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return file
}

// parseSourceErrors parses source expected to fail and returns the errors.
func parseSourceErrors(t *testing.T, input string) []*Error {
	t.Helper()
	l := NewLexer("test.hyp", input)
	p := NewParser(l)
	_, err := p.ParseFile()
	if err == nil {
		t.Fatal("expected parse errors, got none")
	}
	return p.Errors().Errors()
}

// firstTemplate returns the first template declaration in the file.
func firstTemplate(t *testing.T, file *File) *Template {
	t.Helper()
	templates := file.Templates()
	if len(templates) == 0 {
		t.Fatal("no templates parsed")
	}
	return templates[0]
}

func TestParser_MaudTemplateHeader(t *testing.T) {
	type tc struct {
		input      string
		wantName   string
		wantSyntax Syntax
		wantStatic bool
		wantRecv   string
		wantParams int
	}

	tests := map[string]tc{
		"no params": {
			input:      "package views\nmaud Page() {\n}\n",
			wantName:   "Page",
			wantSyntax: SyntaxMaud,
		},
		"one param": {
			input:      "package views\nmaud Greeting(name string) {\n}\n",
			wantName:   "Greeting",
			wantSyntax: SyntaxMaud,
			wantParams: 1,
		},
		"grouped params": {
			input:      "package views\nmaud Pair(a, b int) {\n}\n",
			wantName:   "Pair",
			wantSyntax: SyntaxMaud,
			wantParams: 2,
		},
		"static": {
			input:      "package views\nstatic maud Footer() {\n}\n",
			wantName:   "Footer",
			wantSyntax: SyntaxMaud,
			wantStatic: true,
		},
		"receiver": {
			input:      "package views\nmaud (p Page) Header() {\n}\n",
			wantName:   "Header",
			wantSyntax: SyntaxMaud,
			wantRecv:   "p Page",
		},
		"rsx": {
			input:      "package views\nrsx App() {\n}\n",
			wantName:   "App",
			wantSyntax: SyntaxRsx,
		},
		"attr": {
			input:      "package views\nattr ItemClass(active bool) {\n}\n",
			wantName:   "ItemClass",
			wantSyntax: SyntaxAttr,
			wantParams: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tmpl := firstTemplate(t, parseSource(t, tt.input))
			if tmpl.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.wantName)
			}
			if tmpl.Syntax != tt.wantSyntax {
				t.Errorf("Syntax = %v, want %v", tmpl.Syntax, tt.wantSyntax)
			}
			if tmpl.Static != tt.wantStatic {
				t.Errorf("Static = %v, want %v", tmpl.Static, tt.wantStatic)
			}
			if tmpl.Recv != tt.wantRecv {
				t.Errorf("Recv = %q, want %q", tmpl.Recv, tt.wantRecv)
			}
			if len(tmpl.Params) != tt.wantParams {
				t.Errorf("len(Params) = %d, want %d", len(tmpl.Params), tt.wantParams)
			}
		})
	}
}

func TestParser_MaudElement(t *testing.T) {
	input := `package views
maud Page(title string) {
	div {
		h1 { (title) }
		p { "Hello, world" }
	}
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	if len(tmpl.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(tmpl.Body))
	}

	div, ok := tmpl.Body[0].(*Element)
	if !ok {
		t.Fatalf("Body[0] = %T, want *Element", tmpl.Body[0])
	}
	if div.Name.String() != "div" {
		t.Errorf("element name = %q, want %q", div.Name.String(), "div")
	}
	if len(div.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(div.Children))
	}

	h1 := div.Children[0].(*Element)
	if len(h1.Children) != 1 {
		t.Fatalf("h1 children = %d, want 1", len(h1.Children))
	}
	splice, ok := h1.Children[0].(*SpliceExpr)
	if !ok {
		t.Fatalf("h1 child = %T, want *SpliceExpr", h1.Children[0])
	}
	if splice.Code != "title" {
		t.Errorf("splice code = %q, want %q", splice.Code, "title")
	}
	if splice.Mode != SpliceRender {
		t.Errorf("splice mode = %v, want SpliceRender", splice.Mode)
	}

	p := div.Children[1].(*Element)
	lit, ok := p.Children[0].(*Literal)
	if !ok {
		t.Fatalf("p child = %T, want *Literal", p.Children[0])
	}
	if lit.Value != "Hello, world" {
		t.Errorf("literal = %q, want %q", lit.Value, "Hello, world")
	}
}

func TestParser_MaudVoidElement(t *testing.T) {
	input := `package views
maud Form() {
	input type="text" name="q";
	br;
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	if len(tmpl.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(tmpl.Body))
	}

	in := tmpl.Body[0].(*Element)
	if !in.Void {
		t.Error("input element: Void = false, want true")
	}
	if len(in.Attrs) != 2 {
		t.Errorf("len(Attrs) = %d, want 2", len(in.Attrs))
	}
	if in.Attrs[0].Name.String() != "type" {
		t.Errorf("attr 0 = %q, want %q", in.Attrs[0].Name.String(), "type")
	}

	br := tmpl.Body[1].(*Element)
	if br.Name.String() != "br" || !br.Void {
		t.Errorf("second element = %q Void=%v, want br Void=true", br.Name.String(), br.Void)
	}
}

func TestParser_MaudIDClassShorthand(t *testing.T) {
	input := `package views
maud Card() {
	div #main .card ."wide one" .(extra) {
	}
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	div := tmpl.Body[0].(*Element)
	if len(div.Attrs) != 2 {
		t.Fatalf("len(Attrs) = %d, want 2 (id plus class list)", len(div.Attrs))
	}

	id := div.Attrs[0]
	if id.Name.String() != "id" {
		t.Errorf("attr 0 name = %q, want id", id.Name.String())
	}
	lit := id.Value[0].(*Literal)
	if lit.Value != "main" {
		t.Errorf("id value = %q, want main", lit.Value)
	}

	class := div.Attrs[1]
	if class.Kind != AttrClassList {
		t.Fatalf("attr 1 kind = %v, want AttrClassList", class.Kind)
	}
	if len(class.Classes) != 3 {
		t.Fatalf("len(Classes) = %d, want 3", len(class.Classes))
	}
	if v := class.Classes[0].Value.(*Literal).Value; v != "card" {
		t.Errorf("class 0 = %q, want card", v)
	}
	if v := class.Classes[1].Value.(*Literal).Value; v != "wide one" {
		t.Errorf("class 1 = %q, want %q", v, "wide one")
	}
	if _, ok := class.Classes[2].Value.(*SpliceExpr); !ok {
		t.Errorf("class 2 = %T, want *SpliceExpr", class.Classes[2].Value)
	}
}

func TestParser_MaudClassToggle(t *testing.T) {
	input := `package views
maud Item(active bool) {
	li .item .active[active] {
	}
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	li := tmpl.Body[0].(*Element)
	class := li.Attrs[0]
	if class.Kind != AttrClassList {
		t.Fatalf("kind = %v, want AttrClassList", class.Kind)
	}
	if class.Classes[0].Toggle != "" {
		t.Errorf("class 0 toggle = %q, want empty", class.Classes[0].Toggle)
	}
	if class.Classes[1].Toggle != "active" {
		t.Errorf("class 1 toggle = %q, want %q", class.Classes[1].Toggle, "active")
	}
}

func TestParser_MaudAttributeForms(t *testing.T) {
	input := `package views
maud Link(href string, title *string, external bool) {
	a href=(href) title=[title] target="_blank"[external] download {
	}
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	a := tmpl.Body[0].(*Element)
	if len(a.Attrs) != 4 {
		t.Fatalf("len(Attrs) = %d, want 4", len(a.Attrs))
	}

	href := a.Attrs[0]
	if href.Kind != AttrValue {
		t.Errorf("href kind = %v, want AttrValue", href.Kind)
	}
	if _, ok := href.Value[0].(*SpliceExpr); !ok {
		t.Errorf("href value = %T, want *SpliceExpr", href.Value[0])
	}

	title := a.Attrs[1]
	if title.Kind != AttrOption {
		t.Errorf("title kind = %v, want AttrOption", title.Kind)
	}
	if title.OptionExpr != "title" {
		t.Errorf("title OptionExpr = %q, want %q", title.OptionExpr, "title")
	}

	target := a.Attrs[2]
	if target.Kind != AttrValue {
		t.Errorf("target kind = %v, want AttrValue", target.Kind)
	}
	if target.Toggle != "external" {
		t.Errorf("target toggle = %q, want %q", target.Toggle, "external")
	}

	download := a.Attrs[3]
	if download.Kind != AttrEmpty {
		t.Errorf("download kind = %v, want AttrEmpty", download.Kind)
	}
}

func TestParser_MaudUnquotedAttrValue(t *testing.T) {
	input := `package views
maud Media(src string) {
	video src=src preload=auto type=video.mp4;
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	video := tmpl.Body[0].(*Element)
	if len(video.Attrs) != 3 {
		t.Fatalf("len(Attrs) = %d, want 3", len(video.Attrs))
	}

	// bare identifiers are host variables
	src, ok := video.Attrs[0].Value[0].(*SpliceExpr)
	if !ok {
		t.Fatalf("src value = %T, want *SpliceExpr", video.Attrs[0].Value[0])
	}
	if src.Code != "src" {
		t.Errorf("src code = %q, want src", src.Code)
	}
	if _, ok := video.Attrs[1].Value[0].(*SpliceExpr); !ok {
		t.Errorf("preload value = %T, want *SpliceExpr", video.Attrs[1].Value[0])
	}

	// multi-fragment names stay literal text
	mime, ok := video.Attrs[2].Value[0].(*Literal)
	if !ok {
		t.Fatalf("type value = %T, want *Literal", video.Attrs[2].Value[0])
	}
	if mime.Value != "video.mp4" {
		t.Errorf("type value = %q, want video.mp4", mime.Value)
	}
}

func TestParser_MaudSpliceModes(t *testing.T) {
	input := `package views
maud Out(v any) {
	span { (v) %(v) ?(v) }
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	span := tmpl.Body[0].(*Element)
	if len(span.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(span.Children))
	}

	modes := []SpliceMode{SpliceRender, SpliceDisplay, SpliceDebug}
	for i, want := range modes {
		s, ok := span.Children[i].(*SpliceExpr)
		if !ok {
			t.Fatalf("child %d = %T, want *SpliceExpr", i, span.Children[i])
		}
		if s.Mode != want {
			t.Errorf("child %d mode = %v, want %v", i, s.Mode, want)
		}
	}
}

func TestParser_MaudDoctype(t *testing.T) {
	input := `package views
maud Page() {
	!DOCTYPE
	html {
	}
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	if _, ok := tmpl.Body[0].(*Doctype); !ok {
		t.Fatalf("Body[0] = %T, want *Doctype", tmpl.Body[0])
	}
}

func TestParser_MaudComponent(t *testing.T) {
	input := `package views
maud Page() {
	Button label="Save" count=(n);
	Card {
		p { "body" }
	}
}
`
	tmpl := firstTemplate(t, parseSource(t, input))
	if len(tmpl.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(tmpl.Body))
	}

	btn, ok := tmpl.Body[0].(*Component)
	if !ok {
		t.Fatalf("Body[0] = %T, want *Component", tmpl.Body[0])
	}
	if btn.Name.String() != "Button" {
		t.Errorf("name = %q, want Button", btn.Name.String())
	}
	if len(btn.Attrs) != 2 {
		t.Fatalf("len(Attrs) = %d, want 2", len(btn.Attrs))
	}
	if btn.HasChildren {
		t.Error("Button HasChildren = true, want false")
	}

	card := tmpl.Body[1].(*Component)
	if !card.HasChildren || len(card.Children) != 1 {
		t.Errorf("Card HasChildren=%v children=%d, want true/1", card.HasChildren, len(card.Children))
	}
}

func TestParser_MaudErrors(t *testing.T) {
	type tc struct {
		input   string
		wantMsg string
	}

	tests := map[string]tc{
		"misplaced id shorthand": {
			input:   "package views\nmaud T() {\n\tdiv .card #main {\n\t}\n}\n",
			wantMsg: "#id",
		},
		"unknown at keyword": {
			input:   "package views\nmaud T() {\n\t@bogus\n}\n",
			wantMsg: "unknown @ keyword",
		},
		"static params": {
			input:   "package views\nstatic maud T(x int) {\n}\n",
			wantMsg: "static template cannot declare parameters",
		},
		"empty splice": {
			input:   "package views\nmaud T() {\n\tspan { () }\n}\n",
			wantMsg: "empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errors := parseSourceErrors(t, tt.input)
			found := false
			for _, e := range errors {
				if strings.Contains(e.Message, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error containing %q; got %v", tt.wantMsg, errors)
			}
		})
	}
}

func TestParser_GoPassthrough(t *testing.T) {
	input := `package views

import (
	"strings"
)

type Item struct {
	Name string
}

func upper(s string) string {
	return strings.ToUpper(s)
}

maud List(items []Item) {
	ul {
		@for _, it := range items {
			li { (upper(it.Name)) }
		}
	}
}
`
	file := parseSource(t, input)
	if file.Package != "views" {
		t.Errorf("Package = %q, want views", file.Package)
	}
	if len(file.Imports) != 1 || file.Imports[0].Path != "strings" {
		t.Fatalf("Imports = %v, want one strings import", file.Imports)
	}

	var decl *GoDecl
	var fn *GoFunc
	for _, d := range file.Decls {
		switch v := d.(type) {
		case *GoDecl:
			decl = v
		case *GoFunc:
			fn = v
		}
	}
	if decl == nil || !strings.Contains(decl.Source, "type Item struct") {
		t.Errorf("missing type declaration passthrough: %+v", decl)
	}
	if fn == nil || !strings.Contains(fn.Source, "strings.ToUpper") {
		t.Errorf("missing func passthrough: %+v", fn)
	}
	if len(file.Templates()) != 1 {
		t.Errorf("len(Templates) = %d, want 1", len(file.Templates()))
	}
}
