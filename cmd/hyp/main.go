// Package main provides the CLI for the .hyp template compiler.
//
// Usage:
//
//	hyp generate [path...]    Generate Go code from .hyp files
//	hyp check [path...]       Check .hyp files without generating
//	hyp help                  Show help
//
// Examples:
//
//	hyp generate ./...        Recursively find and compile all .hyp files
//	hyp generate ./views      Process a specific directory
//	hyp generate page.hyp     Process a specific file
//	hyp check page.hyp        Check syntax without generating
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `hyp - compiler for .hyp HTML templates

Usage:
  hyp <command> [options] [path...]

Commands:
  generate    Generate Go code from .hyp files
  check       Check .hyp files without generating code
  version     Print version information
  help        Show this help message

Options:
  -v           Verbose output
  -sourcemap   Write a .map file next to each generated file

Examples:
  hyp generate ./...              Recursively process all .hyp files
  hyp generate ./views            Process files in a directory
  hyp generate page.hyp           Process a specific file
  hyp generate -v ./...           Verbose output during generation
  hyp generate -sourcemap ./...   Also emit source maps
  hyp check page.hyp              Check syntax without generating
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("hyp version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
