// Package compiler wires the pipeline together: load a tree file,
// validate it, lint it, and generate JavaScript.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/diagnostic"
	"github.com/fern-lang/fernc/internal/jsbe"
	"github.com/fern-lang/fernc/internal/linter"
	"github.com/fern-lang/fernc/internal/loader"
)

// Result holds the output of a compilation.
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	JSSource    string
}

// Compile runs the full pipeline on a tree file: load -> validate ->
// lint -> generate. Lint warnings are carried in Diagnostics but never
// stop code generation.
func Compile(path string) *Result {
	expr, diags := loader.Load(path)
	if diags.HasErrors() {
		return &Result{Diagnostics: diags}
	}
	return CompileTree(expr)
}

// CompileSource is Compile for in-memory YAML.
func CompileSource(source []byte) *Result {
	expr, diags := loader.Parse(source)
	if diags.HasErrors() {
		return &Result{Diagnostics: diags}
	}
	return CompileTree(expr)
}

// CompileTree runs validation, linting, and code generation on an
// already-decoded expression.
func CompileTree(expr ast.Expression) *Result {
	res := &Result{Diagnostics: diagnostic.New()}

	res.Diagnostics.Append(ast.Validate(expr))
	if res.Diagnostics.HasErrors() {
		return res
	}

	res.Diagnostics.Append(linter.Lint(expr))
	res.JSSource = jsbe.Generate(expr) + "\n"
	return res
}

// Check runs load + validate only (no linting, no codegen).
func Check(path string) *diagnostic.Diagnostics {
	expr, diags := loader.Load(path)
	if diags.HasErrors() {
		return diags
	}
	diags.Append(ast.Validate(expr))
	return diags
}

// Lint runs load + validate + lint (no codegen).
func Lint(path string) *diagnostic.Diagnostics {
	expr, diags := loader.Load(path)
	if diags.HasErrors() {
		return diags
	}
	diags.Append(ast.Validate(expr))
	if diags.HasErrors() {
		return diags
	}
	diags.Append(linter.Lint(expr))
	return diags
}

// EmitJS runs the full pipeline and writes the JavaScript to outPath.
func EmitJS(path, outPath string) error {
	res := Compile(path)
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format(path))
	}

	outDir := filepath.Dir(outPath)
	if outDir != "." && outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	return os.WriteFile(outPath, []byte(res.JSSource), 0644)
}
