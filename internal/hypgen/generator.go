package hypgen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// Generator transforms a validated AST into Go source code. Every template
// becomes a function returning a rendering closure, plus a component struct
// and a compile-time validation block for the HTML names it uses.
type Generator struct {
	buf        bytes.Buffer
	indent     int
	varCounter int
	sourceFile string // original .hyp filename for the header comment

	// templateDefs maps local template names to their declarations, so
	// component invocations can line up children with a children param.
	templateDefs map[string]*Template

	// SkipImports uses format.Source instead of imports.Process
	// (faster for tests)
	SkipImports bool

	// Source map tracking
	sourceMap   *SourceMap
	currentLine int // current line in generated output (0-indexed)
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces Go source code from a parsed and analyzed AST. Returns
// the generated code as a byte slice, or an error if generation fails.
func (g *Generator) Generate(file *File, sourceFile string) ([]byte, error) {
	g.buf.Reset()
	g.varCounter = 0
	g.sourceFile = sourceFile
	g.sourceMap = NewSourceMap(sourceFile)
	g.currentLine = 0
	g.templateDefs = make(map[string]*Template)

	for _, tmpl := range file.Templates() {
		if tmpl.Recv == "" {
			g.templateDefs[tmpl.Name] = tmpl
		}
	}

	g.generateHeader()
	g.generatePackage(file.Package)
	g.generateImports(file)

	// Track where content after imports starts (for source map adjustment)
	firstContentLine := g.currentLine

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *GoDecl:
			g.generateGoDecl(d)
		case *GoFunc:
			g.generateGoFunc(d)
		case *Template:
			if err := g.generateTemplate(d); err != nil {
				return nil, err
			}
		}
	}

	// For tests: just format without import processing (much faster)
	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}

	preOutput := g.buf.Bytes()
	postOutput, err := imports.Process(g.sourceFile, preOutput, nil)
	if err != nil {
		return nil, err
	}

	g.adjustSourceMapForGoimports(postOutput, firstContentLine)

	return postOutput, nil
}

// adjustSourceMapForGoimports shifts source map line numbers after goimports
// rewrites the import section. Only the import block changes, so every
// mapping after it moves by the same amount.
func (g *Generator) adjustSourceMapForGoimports(post []byte, firstContentLine int) {
	postContentStart := findFirstContentLineAfterImports(post)
	lineShift := postContentStart - firstContentLine
	if lineShift == 0 {
		return
	}
	for i := range g.sourceMap.Mappings {
		if g.sourceMap.Mappings[i].GoLine >= firstContentLine {
			g.sourceMap.Mappings[i].GoLine += lineShift
		}
	}
}

// findFirstContentLineAfterImports finds the first non-blank line after the
// import block.
func findFirstContentLineAfterImports(code []byte) int {
	lines := bytes.Split(code, []byte("\n"))
	inImportBlock := false
	importBlockEnded := false

	for i, line := range lines {
		trimmed := bytes.TrimSpace(line)

		if bytes.HasPrefix(trimmed, []byte("import (")) {
			inImportBlock = true
			continue
		}
		if inImportBlock && len(trimmed) == 1 && trimmed[0] == ')' {
			inImportBlock = false
			importBlockEnded = true
			continue
		}
		if bytes.HasPrefix(trimmed, []byte("import ")) && !bytes.HasPrefix(trimmed, []byte("import (")) {
			importBlockEnded = true
			continue
		}

		if importBlockEnded && len(trimmed) > 0 {
			return i
		}
	}

	return len(lines)
}

// GetSourceMap returns the source map generated during code generation.
// Must be called after Generate().
func (g *Generator) GetSourceMap() *SourceMap {
	return g.sourceMap
}

// generateHeader writes the "DO NOT EDIT" comment.
func (g *Generator) generateHeader() {
	g.writeln("// Code generated by hyp generate. DO NOT EDIT.")
	if g.sourceFile != "" {
		g.writef("// Source: %s\n", g.sourceFile)
	}
	g.writeln("")
}

// generatePackage writes the package declaration.
func (g *Generator) generatePackage(pkg string) {
	g.writef("package %s\n\n", pkg)
}

// generateImports writes the import block. The analyzer appends the runtime
// import when a template body needs it; the validation imports are added
// here when any template produces a validation block.
func (g *Generator) generateImports(file *File) {
	imps := file.Imports
	if fileHasChecks(file) {
		imps = appendMissing(imps,
			&Import{Path: "github.com/hypgen/hyp/htmlelements"},
			&Import{Path: "github.com/hypgen/hyp/validation"},
		)
	}
	if len(imps) == 0 {
		return
	}

	g.writeln("import (")
	g.indent++
	for _, imp := range imps {
		if imp.Alias != "" {
			g.writef("%s %q\n", imp.Alias, imp.Path)
		} else {
			g.writef("%q\n", imp.Path)
		}
	}
	g.indent--
	g.writeln(")")
	g.writeln("")
}

// appendMissing adds imports not already present by path.
func appendMissing(imps []*Import, add ...*Import) []*Import {
	out := imps
	for _, a := range add {
		found := false
		for _, imp := range imps {
			if imp.Path == a.Path {
				found = true
				break
			}
		}
		if !found {
			out = append(out, a)
		}
	}
	return out
}

// generateGoDecl writes a passthrough type/const/var declaration.
func (g *Generator) generateGoDecl(decl *GoDecl) {
	g.writeDoc(decl.Doc)
	g.write(decl.Source)
	g.writeln("")
	g.writeln("")
}

// generateGoFunc writes a passthrough func declaration.
func (g *Generator) generateGoFunc(fn *GoFunc) {
	g.writeDoc(fn.Doc)
	g.write(fn.Source)
	g.writeln("")
	g.writeln("")
}

// writeDoc writes a doc comment group above a declaration.
func (g *Generator) writeDoc(doc *CommentGroup) {
	if doc == nil {
		return
	}
	for _, c := range doc.Comments {
		g.writeln(c.Text)
	}
}

// nextVar returns the next unique variable name.
func (g *Generator) nextVar() string {
	name := fmt.Sprintf("__hyp_%d", g.varCounter)
	g.varCounter++
	return name
}

// write writes a string without indentation and tracks line numbers.
func (g *Generator) write(s string) {
	g.buf.WriteString(s)
	for _, c := range s {
		if c == '\n' {
			g.currentLine++
		}
	}
}

// writef writes a formatted string with indentation and tracks line numbers.
func (g *Generator) writef(format string, args ...interface{}) {
	g.writeIndent()
	s := fmt.Sprintf(format, args...)
	g.buf.WriteString(s)
	for _, c := range s {
		if c == '\n' {
			g.currentLine++
		}
	}
}

// writeln writes a line with indentation and tracks line numbers.
func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		g.currentLine++
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
	g.currentLine++
}

// writeIndent writes the current indentation.
func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}

// GenerateString is a convenience method that returns the generated code as
// a string.
func (g *Generator) GenerateString(file *File, sourceFile string) (string, error) {
	data, err := g.Generate(file, sourceFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseAndGenerate compiles .hyp source into Go code in one step: parse,
// resolve includes, analyze, generate.
func ParseAndGenerate(filename, source string) ([]byte, error) {
	return parseAndGenerate(filename, source, false)
}

// parseAndGenerateSkipImports is like ParseAndGenerate but uses
// format.Source instead of imports.Process. This is much faster for tests.
func parseAndGenerateSkipImports(filename, source string) ([]byte, error) {
	return parseAndGenerate(filename, source, true)
}

func parseAndGenerate(filename, source string, skipImports bool) ([]byte, error) {
	lexer := NewLexer(filename, source)
	parser := NewParser(lexer)

	file, err := parser.ParseFile()
	if err != nil {
		return nil, err
	}

	incErrs := NewErrorList()
	ResolveIncludes(file, filepath.Dir(filename), incErrs)
	if incErrs.HasErrors() {
		return nil, incErrs
	}

	analyzer := NewAnalyzer(file)
	if err := analyzer.Analyze(); err != nil {
		return nil, err
	}

	gen := NewGenerator()
	gen.SkipImports = skipImports
	return gen.Generate(file, filename)
}
