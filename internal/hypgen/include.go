package hypgen

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveIncludes loads the body of every include-form template in the file.
// Paths resolve relative to dir (the directory of the .hyp source). Absolute
// paths and paths escaping the source directory are rejected.
func ResolveIncludes(file *File, dir string, errors *ErrorList) {
	for _, tmpl := range file.Templates() {
		if tmpl.IncludePath == "" {
			continue
		}

		if filepath.IsAbs(tmpl.IncludePath) {
			errors.AddErrorWithHint(tmpl.IncludePos,
				"include path must be relative",
				"paths resolve relative to the directory of the .hyp file")
			continue
		}
		clean := filepath.Clean(tmpl.IncludePath)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			errors.AddError(tmpl.IncludePos, "include path escapes the source directory")
			continue
		}

		full := filepath.Join(dir, clean)
		data, err := os.ReadFile(full)
		if err != nil {
			errors.AddErrorf(tmpl.IncludePos, "cannot read include %q: %v", tmpl.IncludePath, err)
			continue
		}

		lexer := NewLexer(full, string(data))
		sub := NewParser(lexer)
		sub.skipNewlines()
		tmpl.Body = sub.parseBody(tmpl.Syntax, TokenEOF)

		for _, e := range lexer.Errors().Errors() {
			errors.Add(e)
		}
		for _, e := range sub.Errors().Errors() {
			errors.Add(e)
		}
	}
}
