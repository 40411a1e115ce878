package hypgen

import (
	"strings"
	"testing"
)

// analyzeSource parses and analyzes source, returning the analyzer errors.
func analyzeSource(t *testing.T, input string) []*Error {
	t.Helper()
	l := NewLexer("test.hyp", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	a := NewAnalyzer(file)
	a.Analyze()
	return a.Errors().Errors()
}

// hasError reports whether any error message contains the substring.
func hasError(errors []*Error, substr string) bool {
	for _, e := range errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// hasHint reports whether any error hint contains the substring.
func hasHint(errors []*Error, substr string) bool {
	for _, e := range errors {
		if strings.Contains(e.Hint, substr) {
			return true
		}
	}
	return false
}

func TestAnalyzer_ValidTemplate(t *testing.T) {
	input := `package views
maud Page(title string) {
	!DOCTYPE
	html {
		head {
			title { (title) }
			meta charset="utf-8";
		}
		body {
			div #main .wrap {
				a href="/" { "home" }
				input type="text" name="q";
			}
		}
	}
}
`
	if errors := analyzeSource(t, input); len(errors) != 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestAnalyzer_ElementErrors(t *testing.T) {
	type tc struct {
		input    string
		wantMsg  string
		wantHint string
	}

	tests := map[string]tc{
		"unknown element": {
			input:    "package views\nmaud T() {\n\tdivv {\n\t}\n}\n",
			wantMsg:  "unknown element <divv>",
			wantHint: "did you mean <div>?",
		},
		"void element with children": {
			input:   "package views\nmaud T() {\n\tbr {\n\t\t\"x\"\n\t}\n}\n",
			wantMsg: "void element and cannot have children",
		},
		"normal element with void terminator": {
			input:    "package views\nmaud T() {\n\tdiv;\n}\n",
			wantMsg:  "<div> is not a void element and must have a body",
			wantHint: "use { } for children",
		},
		"normal element self-closed": {
			input:   "package views\nrsx T() {\n\t<div/>\n}\n",
			wantMsg: "<div> is not a void element and must have a body",
		},
		"unknown attribute": {
			input:    "package views\nmaud T() {\n\ta hre=\"/\" {\n\t}\n}\n",
			wantMsg:  "unknown attribute hre on <a>",
			wantHint: "did you mean href?",
		},
		"duplicate attribute": {
			input:   "package views\nmaud T() {\n\tdiv id=\"a\" id=\"b\" {\n\t}\n}\n",
			wantMsg: "duplicate attribute id",
		},
		"unknown namespace": {
			input:    "package views\nmaud T() {\n\tsvg foo:bar=\"1\" {\n\t}\n}\n",
			wantMsg:  "unknown attribute namespace foo:",
			wantHint: "xml:, xmlns:, and xlink:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errors := analyzeSource(t, tt.input)
			if !hasError(errors, tt.wantMsg) {
				t.Errorf("no error containing %q; got %v", tt.wantMsg, errors)
			}
			if tt.wantHint != "" && !hasHint(errors, tt.wantHint) {
				t.Errorf("no hint containing %q; got %v", tt.wantHint, errors)
			}
		})
	}
}

// Name errors carry an end position so tooling can underline the whole name.
func TestAnalyzer_ErrorSpansName(t *testing.T) {
	errors := analyzeSource(t, "package views\nmaud T() {\n\tdivv {\n\t}\n}\n")
	for _, e := range errors {
		if !strings.Contains(e.Message, "unknown element") {
			continue
		}
		if e.EndPos.Line != e.Pos.Line {
			t.Errorf("EndPos.Line = %d, want %d", e.EndPos.Line, e.Pos.Line)
		}
		if got := e.EndPos.Column - e.Pos.Column; got != len("divv") {
			t.Errorf("span width = %d, want %d", got, len("divv"))
		}
		return
	}
	t.Fatal("no unknown element error reported")
}

func TestAnalyzer_AcceptedNames(t *testing.T) {
	type tc struct {
		input string
	}

	tests := map[string]tc{
		"custom element skips checks": {
			input: "package views\nmaud T() {\n\tmy-widget anything=\"1\" {\n\t}\n}\n",
		},
		"custom element void terminator": {
			input: "package views\nmaud T() {\n\tmy-widget;\n}\n",
		},
		"data attribute": {
			input: "package views\nmaud T() {\n\tdiv data-label=\"x\" {\n\t}\n}\n",
		},
		"event handler": {
			input: "package views\nmaud T() {\n\tbutton onclick=\"go()\" {\n\t}\n}\n",
		},
		"quoted unchecked name": {
			input: "package views\nmaud T() {\n\tdiv \"hx-get\"=\"/api\" {\n\t}\n}\n",
		},
		"symbol prefix": {
			input: "package views\nmaud T() {\n\tbutton @click=\"go\" :disabled=\"busy\" {\n\t}\n}\n",
		},
		"known namespace": {
			input: "package views\nmaud T() {\n\tsvg xmlns:xlink=\"uri\" {\n\t}\n}\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if errors := analyzeSource(t, tt.input); len(errors) != 0 {
				t.Errorf("expected no errors, got %v", errors)
			}
		})
	}
}

func TestAnalyzer_DuplicateTemplate(t *testing.T) {
	input := `package views
maud Page() {
}
maud Page() {
}
`
	errors := analyzeSource(t, input)
	if !hasError(errors, "already defined") {
		t.Errorf("no duplicate template error; got %v", errors)
	}
}

func TestAnalyzer_MethodTemplatesMayShareName(t *testing.T) {
	input := `package views
maud (a Admin) Nav() {
}
maud (u User) Nav() {
}
`
	if errors := analyzeSource(t, input); len(errors) != 0 {
		t.Errorf("expected no errors for distinct receivers, got %v", errors)
	}
}

func TestAnalyzer_StaticViolations(t *testing.T) {
	type tc struct {
		input   string
		wantMsg string
	}

	tests := map[string]tc{
		"splice": {
			input:   "package views\nstatic maud T() {\n\tspan { (now()) }\n}\n",
			wantMsg: "cannot contain spliced expressions",
		},
		"if": {
			input:   "package views\nstatic maud T() {\n\t@if true {\n\t}\n}\n",
			wantMsg: "cannot contain @if",
		},
		"component": {
			input:   "package views\nstatic maud T() {\n\tButton;\n}\n",
			wantMsg: "cannot invoke component Button",
		},
		"toggled attribute": {
			input:   "package views\nstatic maud T() {\n\tdiv hidden[true] {\n\t}\n}\n",
			wantMsg: "cannot use toggled attribute",
		},
		"attribute splice": {
			input:   "package views\nstatic maud T() {\n\ta href=(url) {\n\t}\n}\n",
			wantMsg: "cannot splice into attribute",
		},
		"receiver": {
			input:   "package views\nstatic maud (p Page) T() {\n}\n",
			wantMsg: "cannot have a method receiver",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errors := analyzeSource(t, tt.input)
			if !hasError(errors, tt.wantMsg) {
				t.Errorf("no error containing %q; got %v", tt.wantMsg, errors)
			}
		})
	}
}

func TestAnalyzer_ComponentErrors(t *testing.T) {
	type tc struct {
		input   string
		wantMsg string
	}

	tests := map[string]tc{
		"attr template used as element": {
			input:   "package views\nattr Cls() {\n\t\"a\"\n}\nmaud T() {\n\tCls;\n}\n",
			wantMsg: "attribute template and cannot be used as an element",
		},
		"toggled component attribute": {
			input:   "package views\nmaud T() {\n\tButton label=\"x\"[cond];\n}\n",
			wantMsg: "cannot take a toggled attribute",
		},
		"multi part value": {
			input:   "package views\nmaud T() {\n\tButton label={\"a\" \"b\"};\n}\n",
			wantMsg: "needs a single value",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errors := analyzeSource(t, tt.input)
			if !hasError(errors, tt.wantMsg) {
				t.Errorf("no error containing %q; got %v", tt.wantMsg, errors)
			}
		})
	}
}

func TestAnalyzer_AddsRuntimeImport(t *testing.T) {
	input := `package views
maud T() {
	div {
	}
}
`
	l := NewLexer("test.hyp", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := NewAnalyzer(file).Analyze(); err != nil {
		t.Fatalf("analyze error: %v", err)
	}

	found := false
	for _, imp := range file.Imports {
		if imp.Path == "github.com/hypgen/hyp" {
			found = true
		}
	}
	if !found {
		t.Error("runtime import not added")
	}
}
