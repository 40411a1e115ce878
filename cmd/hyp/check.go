package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hypgen/hyp/internal/hypgen"
)

// runCheck implements the check subcommand. It parses and analyzes .hyp
// files without generating code, for syntax checking and CI.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectHypFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .hyp files found")
	}

	if verbose {
		fmt.Printf("Checking %d .hyp file(s)\n", len(files))
	}

	var errorCount int
	for _, inputPath := range files {
		if verbose {
			fmt.Printf("Checking %s\n", inputPath)
		}

		if err := checkFile(inputPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}

	return nil
}

// checkFile parses and analyzes a single .hyp file.
func checkFile(inputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	filename := filepath.Base(inputPath)

	lexer := hypgen.NewLexer(filename, string(source))
	parser := hypgen.NewParser(lexer)

	file, err := parser.ParseFile()
	if err != nil {
		return err
	}

	incErrs := hypgen.NewErrorList()
	hypgen.ResolveIncludes(file, filepath.Dir(inputPath), incErrs)
	if incErrs.HasErrors() {
		return incErrs
	}

	analyzer := hypgen.NewAnalyzer(file)
	return analyzer.Analyze()
}
