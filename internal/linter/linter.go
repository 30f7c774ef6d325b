// Package linter performs best-practice checks on Fern expression
// trees before generation. It reports warnings (never errors) using the
// diagnostic system; structural errors are the validator's job.
package linter

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/diagnostic"
	"github.com/fern-lang/fernc/internal/doc"
	"github.com/fern-lang/fernc/internal/jsbe"
)

// Linter walks one expression tree and accumulates warnings.
type Linter struct {
	diag *diagnostic.Diagnostics
}

// Lint runs all lint rules on the given tree and returns diagnostics.
func Lint(e ast.Expression) *diagnostic.Diagnostics {
	l := &Linter{diag: diagnostic.New()}
	l.lintExpr(e, "expr", nil)
	return l.diag
}

func (l *Linter) lintExpr(e ast.Expression, path string, scope []string) {
	switch n := e.(type) {
	case *ast.IntLit, *ast.StringLit, *ast.BoolLit, *ast.Variable, nil:

	case *ast.List:
		for i, item := range n.Items {
			l.lintExpr(item, fmt.Sprintf("%s.items[%d]", path, i), scope)
		}

	case *ast.Binop:
		l.lintExpr(n.Left, path+".left", scope)
		l.lintExpr(n.Right, path+".right", scope)

	case *ast.Let:
		l.checkShadowedLet(n, path, scope)
		l.lintExpr(n.Value, path+".value", scope)
		l.lintExpr(n.Body, path+".body", extend(scope, n.Name))

	case *ast.Apply:
		l.lintExpr(n.Function, path+".fn", scope)
		for i, arg := range n.Args {
			l.lintExpr(arg, fmt.Sprintf("%s.args[%d]", path, i), scope)
		}

	case *ast.Lambda:
		l.lintExpr(n.Body, path+".body", extend(scope, n.Params...))

	case *ast.Match:
		l.lintMatch(n, path, scope)
	}
}

func (l *Linter) lintMatch(m *ast.Match, path string, scope []string) {
	l.lintExpr(m.Subject, path+".subject", scope)

	if len(m.Clauses) == 0 {
		l.diag.Warningf(path, "match has no clauses; it always throws")
		return
	}

	subject := doc.Text("$")
	caught := false
	for i, clause := range m.Clauses {
		clausePath := fmt.Sprintf("%s.clauses[%d]", path, i)

		if caught {
			l.diag.WarnWithHint(clausePath,
				"clause is unreachable and will not be emitted",
				"an earlier clause is a catch-all")
			continue
		}

		compiled := jsbe.CompilePattern(clause.Pattern, subject)
		l.checkUnusedBindings(compiled, clause.Body, clausePath)

		bound := make([]string, 0, len(compiled.Bindings))
		for _, b := range compiled.Bindings {
			bound = append(bound, b.Name)
		}
		l.lintExpr(clause.Body, clausePath+".body", extend(scope, bound...))

		if compiled.CatchAll() {
			caught = true
		}
	}

	if !caught {
		l.diag.WarnWithHint(path,
			"match has no catch-all clause",
			"generated code throws a non-exhaustive match error at runtime")
	}
}

// extend returns a fresh scope slice so sibling subtrees never share a
// backing array.
func extend(scope []string, names ...string) []string {
	out := make([]string, 0, len(scope)+len(names))
	out = append(out, scope...)
	out = append(out, names...)
	return out
}

// checkShadowedLet warns when a let rebinds a name already in scope.
func (l *Linter) checkShadowedLet(n *ast.Let, path string, scope []string) {
	if slices.Contains(scope, n.Name) {
		l.diag.Warningf(path, "let '%s' shadows an outer binding of the same name", n.Name)
	}
}

// checkUnusedBindings warns about pattern variables never read in the
// clause body.
func (l *Linter) checkUnusedBindings(compiled *jsbe.CompiledPattern, body ast.Expression, path string) {
	used := map[string]bool{}
	collectUsedNames(body, used)
	for _, b := range compiled.Bindings {
		if !used[b.Name] {
			l.diag.Warningf(path, "pattern binds '%s' but the clause body never uses it", b.Name)
		}
	}
}

// collectUsedNames records every variable name referenced anywhere in
// an expression. Inner scopes may rebind a name; for lint purposes any
// reference counts as a use.
func collectUsedNames(e ast.Expression, used map[string]bool) {
	switch n := e.(type) {
	case *ast.Variable:
		used[n.Name] = true
	case *ast.List:
		for _, item := range n.Items {
			collectUsedNames(item, used)
		}
	case *ast.Binop:
		collectUsedNames(n.Left, used)
		collectUsedNames(n.Right, used)
	case *ast.Let:
		collectUsedNames(n.Value, used)
		collectUsedNames(n.Body, used)
	case *ast.Apply:
		collectUsedNames(n.Function, used)
		for _, arg := range n.Args {
			collectUsedNames(arg, used)
		}
	case *ast.Lambda:
		collectUsedNames(n.Body, used)
	case *ast.Match:
		collectUsedNames(n.Subject, used)
		for _, clause := range n.Clauses {
			collectUsedNames(clause.Body, used)
		}
	}
}
