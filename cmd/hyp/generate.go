package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hypgen/hyp/internal/hypgen"
)

// runGenerate implements the generate subcommand. It compiles .hyp files
// into Go source files, one goroutine per file.
func runGenerate(args []string) error {
	verbose := false
	sourcemap := false
	var paths []string

	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "-sourcemap", "--sourcemap":
			sourcemap = true
		default:
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
		fmt.Printf("Found %d .hyp file(s)\n", len(files))
	}

	var errorCount atomic.Int64
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, inputPath := range files {
		g.Go(func() error {
			outputPath := outputFileName(inputPath)

			if verbose {
				fmt.Printf("Processing %s -> %s\n", inputPath, outputPath)
			}

			if err := generateFile(inputPath, outputPath, sourcemap); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				errorCount.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if n := errorCount.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}

	if verbose {
		fmt.Printf("Successfully generated %d file(s)\n", len(files))
	}

	return nil
}

// collectHypFiles finds all .hyp files from the given paths.
// Supports:
//   - Direct file paths: "page.hyp"
//   - Directory paths: "./views"
//   - Recursive pattern: "./..."
func collectHypFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".hyp") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".hyp") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".hyp") {
			files = append(files, path)
		}
	}

	return files, nil
}

// outputFileName converts a .hyp filename to its output .go filename.
// Examples:
//
//	page.hyp     -> page_hyp.go
//	my-page.hyp  -> my_page_hyp.go
func outputFileName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)

	name := strings.TrimSuffix(base, ".hyp")
	name = strings.ReplaceAll(name, "-", "_")

	return filepath.Join(dir, name+"_hyp.go")
}

// generateFile compiles one .hyp file and writes the corresponding Go file,
// plus a source map when requested.
func generateFile(inputPath, outputPath string, sourcemap bool) error {
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
	if err := analyzer.Analyze(); err != nil {
		return err
	}

	generator := hypgen.NewGenerator()
	output, err := generator.Generate(file, filename)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	if sourcemap {
		data, err := generator.GetSourceMap().ToJSON()
		if err != nil {
			return fmt.Errorf("encoding source map: %w", err)
		}
		mapPath := hypgen.SourceMapFileName(outputPath)
		if err := os.WriteFile(mapPath, data, 0644); err != nil {
			return fmt.Errorf("writing source map: %w", err)
		}
	}

	return nil
}
