// Package jsbe generates formatted JavaScript source from Fern
// expression trees. Expressions become document trees (internal/doc)
// so that lists, argument groups and match conditions wrap to the
// 80-column width budget; match clauses are lowered through the pattern
// compiler in pattern.go.
package jsbe

import (
	"strconv"
	"strings"

	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/doc"
)

// maxWidth is the line width budget for generated code.
const maxWidth = 80

// indentWidth is the indentation step for broken groups and blocks.
const indentWidth = 2

// Generate renders an expression tree as JavaScript source text. It is
// a pure function of the tree: the same tree always yields byte
// identical output, and no error path exists for well-formed input.
func Generate(e ast.Expression) string {
	return doc.Render(Expr(e), maxWidth)
}

// Expr renders an expression as a document fragment.
func Expr(e ast.Expression) doc.Doc {
	switch t := e.(type) {
	case *ast.IntLit:
		return doc.Text(strconv.FormatInt(t.Value, 10))

	case *ast.StringLit:
		return doc.Text(quoteString(t.Value))

	case *ast.BoolLit:
		return doc.Text(strconv.FormatBool(t.Value))

	case *ast.Variable:
		return doc.Text(t.Name)

	case *ast.List:
		items := make([]doc.Doc, len(t.Items))
		for i, item := range t.Items {
			items[i] = Expr(item)
		}
		return commaGroup("[", items, "]")

	case *ast.Binop:
		return doc.Concat(Expr(t.Left), doc.Text(" "+t.Op+" "), Expr(t.Right))

	case *ast.Let:
		return iife(doc.Concat(
			doc.Text("const "+t.Name+" = "),
			Expr(t.Value),
			doc.Text(";"),
			doc.Line,
			returnStmt(t.Body),
		))

	case *ast.Apply:
		args := make([]doc.Doc, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Expr(arg)
		}
		return doc.Concat(Expr(t.Function), commaGroup("(", args, ")"))

	case *ast.Lambda:
		params := make([]doc.Doc, len(t.Params))
		for i, p := range t.Params {
			params[i] = doc.Text(p)
		}
		return doc.Group(doc.Concat(
			commaGroup("(", params, ")"),
			doc.Text(" =>"),
			doc.Nest(doc.Concat(doc.Sep(" ", ""), doc.SoftBreak, Expr(t.Body)), indentWidth),
		))

	case *ast.Match:
		return matchExpr(t)

	default:
		return doc.Text("undefined")
	}
}

// commaGroup renders a bracketed, comma-separated, width-aware group.
// Flat: `[a, b]`. Broken: one element per line, nested one step, with a
// trailing comma before the closing bracket.
func commaGroup(open string, items []doc.Doc, close string) doc.Doc {
	if len(items) == 0 {
		return doc.Text(open + close)
	}

	inner := []doc.Doc{doc.SoftBreak}
	for i, item := range items {
		if i > 0 {
			inner = append(inner, doc.Sep(", ", ","), doc.SoftBreak)
		}
		inner = append(inner, item)
	}

	return doc.Group(doc.Concat(
		doc.Text(open),
		doc.Nest(doc.Concat(inner...), indentWidth),
		doc.Sep("", ","),
		doc.SoftBreak,
		doc.Text(close),
	))
}

// iife wraps a statement body as an immediately invoked function
// expression, the self-contained block shape shared by Let and Match:
//
//	(() => {
//	  <body>
//	})()
func iife(body doc.Doc) doc.Doc {
	return doc.Concat(
		doc.Text("(() => {"),
		doc.Nest(doc.Concat(doc.Line, body), indentWidth),
		doc.Line,
		doc.Text("})()"),
	)
}

func returnStmt(e ast.Expression) doc.Doc {
	return doc.Concat(doc.Text("return "), Expr(e), doc.Text(";"))
}

// quoteString escapes and double-quotes a string literal for JavaScript.
func quoteString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return "\"" + s + "\""
}
