package ast

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/fern-lang/fernc/internal/diagnostic"
)

// Validate walks an expression tree and reports structural errors that
// generation would otherwise paper over. The backend itself is total
// over well-formed trees, so this is the place where malformed input is
// rejected: duplicate binding names within one pattern and missing
// (nil) subtrees.
func Validate(e Expression) *diagnostic.Diagnostics {
	diags := diagnostic.New()
	validateExpr(e, "expr", diags)
	return diags
}

func validateExpr(e Expression, path string, diags *diagnostic.Diagnostics) {
	if e == nil {
		diags.Errorf(path, "missing expression")
		return
	}

	switch n := e.(type) {
	case *IntLit, *StringLit, *BoolLit, *Variable:
		// leaves

	case *List:
		for i, item := range n.Items {
			validateExpr(item, fmt.Sprintf("%s.items[%d]", path, i), diags)
		}

	case *Binop:
		validateExpr(n.Left, path+".left", diags)
		validateExpr(n.Right, path+".right", diags)

	case *Let:
		validateExpr(n.Value, path+".value", diags)
		validateExpr(n.Body, path+".body", diags)

	case *Apply:
		validateExpr(n.Function, path+".fn", diags)
		for i, arg := range n.Args {
			validateExpr(arg, fmt.Sprintf("%s.args[%d]", path, i), diags)
		}

	case *Lambda:
		validateExpr(n.Body, path+".body", diags)

	case *Match:
		validateExpr(n.Subject, path+".subject", diags)
		for i, clause := range n.Clauses {
			clausePath := fmt.Sprintf("%s.clauses[%d]", path, i)
			validatePattern(clause.Pattern, clausePath+".pattern", diags)
			validateExpr(clause.Body, clausePath+".body", diags)
		}
	}
}

func validatePattern(p Pattern, path string, diags *diagnostic.Diagnostics) {
	if p == nil {
		diags.Errorf(path, "missing pattern")
		return
	}
	var seen []string
	checkBindings(p, path, &seen, diags)
}

// checkBindings collects every name a pattern binds, depth first, and
// reports a name bound twice within the same pattern. Generation would
// silently let the later binding win; that shadowing is almost never
// intended, so it is a defined error here.
func checkBindings(p Pattern, path string, seen *[]string, diags *diagnostic.Diagnostics) {
	switch n := p.(type) {
	case *VarPattern:
		if slices.Contains(*seen, n.Name) {
			diags.Errorf(path, "name '%s' is bound more than once in this pattern", n.Name)
			return
		}
		*seen = append(*seen, n.Name)

	case *WildcardPattern, *IntPattern, *StringPattern, *BoolPattern:
		// bind nothing

	case *ListPattern:
		for i, item := range n.Items {
			checkBindings(item, fmt.Sprintf("%s[%d]", path, i), seen, diags)
		}

	case *TailPattern:
		for i, item := range n.Items {
			checkBindings(item, fmt.Sprintf("%s[%d]", path, i), seen, diags)
		}
		if slices.Contains(*seen, n.TailName) {
			diags.Errorf(path, "name '%s' is bound more than once in this pattern", n.TailName)
			return
		}
		*seen = append(*seen, n.TailName)
	}
}
