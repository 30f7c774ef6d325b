package jsbe

import (
	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/doc"
)

// subjectName is the reserved identifier the match subject is bound to.
// `$` is not a legal Fern name, so generated clauses can never collide
// with it.
const subjectName = "$"

// nonExhaustiveThrow is the terminal failure appended when no clause is
// a catch-all, so control can never fall through a match silently.
const nonExhaustiveThrow = `throw new Error("non-exhaustive match clauses");`

// matchExpr assembles a match expression into an IIFE:
//
//  1. bind the subject to `$` so it is evaluated exactly once;
//  2. one conditional block per clause, in input order, testing the
//     clause's compiled checks and defining its bindings;
//  3. a clause that compiles to zero checks is a catch-all: its body is
//     emitted unconditionally and every later clause is discarded;
//  4. without a catch-all, the non-exhaustive throw terminates the block.
func matchExpr(m *ast.Match) doc.Doc {
	parts := []doc.Doc{
		doc.Text("const " + subjectName + " = "),
		Expr(m.Subject),
		doc.Text(";"),
	}
	subject := doc.Text(subjectName)

	caught := false
	for _, clause := range m.Clauses {
		compiled := CompilePattern(clause.Pattern, subject)
		if compiled.CatchAll() {
			parts = append(parts, doc.Line, clauseBody(compiled, clause.Body))
			caught = true
			break
		}
		parts = append(parts, doc.Line, conditional(compiled, clause.Body))
	}

	if !caught {
		parts = append(parts, doc.Line, doc.Text(nonExhaustiveThrow))
	}

	return iife(doc.Concat(parts...))
}

// conditional renders one guarded clause:
//
//	if (<checks joined by &&>) {
//	  <bindings>
//	  return <body>;
//	}
//
// The condition is a group: it stays on one line when it fits and
// otherwise breaks with one check per line.
func conditional(compiled *CompiledPattern, body ast.Expression) doc.Doc {
	cond := doc.Group(doc.Concat(
		doc.Text("if ("),
		doc.Nest(doc.Concat(doc.SoftBreak, andChecks(compiled.Checks)), indentWidth),
		doc.SoftBreak,
		doc.Text(") {"),
	))

	return doc.Concat(
		cond,
		doc.Nest(doc.Concat(doc.Line, clauseBody(compiled, body)), indentWidth),
		doc.Line,
		doc.Text("}"),
	)
}

// clauseBody renders a clause's bindings as definitions, in traversal
// order, followed by the return of its body.
func clauseBody(compiled *CompiledPattern, body ast.Expression) doc.Doc {
	var parts []doc.Doc
	for _, b := range compiled.bindingDefs() {
		parts = append(parts,
			doc.Text("const "+b.Name+" = "),
			b.Ref,
			doc.Text(";"),
			doc.Line,
		)
	}
	parts = append(parts, returnStmt(body))
	return doc.Concat(parts...)
}
