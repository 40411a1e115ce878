package hypgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveIncludes(t *testing.T) {
	dir := t.TempDir()
	body := `div {
	h1 { (title) }
}
`
	if err := os.WriteFile(filepath.Join(dir, "page_body.hyp"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	input := `package views
maud Page(title string) include "page_body.hyp"
`
	file := parseSource(t, input)
	errs := NewErrorList()
	ResolveIncludes(file, dir, errs)
	if errs.HasErrors() {
		t.Fatalf("resolve errors: %v", errs.Errors())
	}

	tmpl := firstTemplate(t, file)
	if len(tmpl.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(tmpl.Body))
	}
	div, ok := tmpl.Body[0].(*Element)
	if !ok || div.Name.String() != "div" {
		t.Fatalf("Body[0] = %+v, want div element", tmpl.Body[0])
	}
}

func TestResolveIncludes_Subdirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "partials"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "partials", "nav.hyp"), []byte("nav {\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	input := `package views
maud Nav() include "partials/nav.hyp"
`
	file := parseSource(t, input)
	errs := NewErrorList()
	ResolveIncludes(file, dir, errs)
	if errs.HasErrors() {
		t.Fatalf("resolve errors: %v", errs.Errors())
	}
}

func TestResolveIncludes_Errors(t *testing.T) {
	type tc struct {
		path    string
		wantMsg string
	}

	tests := map[string]tc{
		"absolute path": {
			path:    "/etc/body.hyp",
			wantMsg: "must be relative",
		},
		"escapes directory": {
			path:    "../body.hyp",
			wantMsg: "escapes the source directory",
		},
		"missing file": {
			path:    "nope.hyp",
			wantMsg: "cannot read include",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input := "package views\nmaud T() include \"" + tt.path + "\"\n"
			file := parseSource(t, input)
			errs := NewErrorList()
			ResolveIncludes(file, t.TempDir(), errs)
			if !errs.HasErrors() {
				t.Fatal("expected resolve errors")
			}
			found := false
			for _, e := range errs.Errors() {
				if strings.Contains(e.Message, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error containing %q; got %v", tt.wantMsg, errs.Errors())
			}
		})
	}
}

// Included bodies parse in the including template's syntax and flow through
// generation like inline bodies.
func TestResolveIncludes_Generation(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "body.hyp"), []byte("p { (msg) }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := `package views
maud Note(msg string) include "body.hyp"
`
	srcPath := filepath.Join(dir, "note.hyp")
	out, err := parseAndGenerateSkipImports(srcPath, src)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	code := string(out)
	if !strings.Contains(code, "hyp.RenderTo(__hyp_out, msg)") {
		t.Errorf("included body not generated\n---\n%s", code)
	}
}
