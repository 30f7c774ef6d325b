package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/compiler"
	"github.com/fern-lang/fernc/internal/loader"
)

const usage = `fernc - The Fern tree compiler

Usage:
  fernc gen [-o <out.js>] <tree.yaml>    Generate formatted JavaScript
  fernc check [--dump-ast] <tree.yaml>   Load and validate only
  fernc lint <tree.yaml>                 Run lint checks on the tree

Options:
  -o <out.js>    Write generated JavaScript to out.js instead of <tree>.js
  --dump-ast     Print the decoded expression tree after validation

Examples:
  fernc gen hello.yaml            Generate hello.js
  fernc gen -o dist/out.js hello.yaml
  fernc check hello.yaml          Check for errors without generating
  fernc lint hello.yaml           Warn about unreachable or unused clauses
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "gen":
		handleGen(os.Args[2:])
	case "check":
		handleCheck(os.Args[2:])
	case "lint":
		handleLint(os.Args[2:])
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func handleGen(args []string) {
	var outPath string
	var filePath string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -o requires a path")
				os.Exit(1)
			}
			i++
			outPath = args[i]
		default:
			if strings.HasPrefix(args[i], "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
				os.Exit(1)
			}
			filePath = args[i]
		}
	}

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		outPath = base + ".js"
	}

	res := compiler.Compile(filePath)
	if res.Diagnostics.HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", res.Diagnostics.Format(filePath))
		os.Exit(1)
	}
	for _, w := range res.Diagnostics.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}

	if err := os.WriteFile(outPath, []byte(res.JSSource), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", outPath)
}

func handleCheck(args []string) {
	dumpAST := false
	var filePath string

	for _, arg := range args {
		switch arg {
		case "--dump-ast":
			dumpAST = true
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				os.Exit(1)
			}
			filePath = arg
		}
	}

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	diag := compiler.Check(filePath)
	if diag.HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", diag.Format(filePath))
		os.Exit(1)
	}

	if dumpAST {
		expr, _ := loader.Load(filePath)
		fmt.Print(ast.Print(expr))
	}

	fmt.Println("No errors found.")
}

func handleLint(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	filePath := args[0]

	diag := compiler.Lint(filePath)
	if diag.HasErrors() {
		fmt.Fprintf(os.Stderr, "%s\n", diag.Format(filePath))
		os.Exit(1)
	}

	warnings := diag.Warnings()
	if len(warnings) == 0 {
		fmt.Println("No lint warnings.")
		return
	}

	fmt.Print(diag.Format(filePath))
	fmt.Println()
	fmt.Printf("%d warning(s) found.\n", len(warnings))
}
