package ast

import (
	"fmt"
	"strings"
)

// Print returns a tree-like string representation of an expression for
// debugging.
func Print(e Expression) string {
	var sb strings.Builder
	printExpr(&sb, e, 0)
	return sb.String()
}

func printExpr(sb *strings.Builder, e Expression, indent int) {
	prefix := strings.Repeat("  ", indent)
	if e == nil {
		sb.WriteString(prefix + "<nil>\n")
		return
	}

	switch n := e.(type) {
	case *IntLit:
		fmt.Fprintf(sb, "%sInt: %d\n", prefix, n.Value)

	case *StringLit:
		fmt.Fprintf(sb, "%sString: %q\n", prefix, n.Value)

	case *BoolLit:
		fmt.Fprintf(sb, "%sBool: %t\n", prefix, n.Value)

	case *Variable:
		fmt.Fprintf(sb, "%sVariable: %s\n", prefix, n.Name)

	case *List:
		fmt.Fprintf(sb, "%sList (%d items)\n", prefix, len(n.Items))
		for _, item := range n.Items {
			printExpr(sb, item, indent+1)
		}

	case *Binop:
		fmt.Fprintf(sb, "%sBinop: %s\n", prefix, n.Op)
		printExpr(sb, n.Left, indent+1)
		printExpr(sb, n.Right, indent+1)

	case *Let:
		fmt.Fprintf(sb, "%sLet: %s\n", prefix, n.Name)
		printExpr(sb, n.Value, indent+1)
		fmt.Fprintf(sb, "%s  In:\n", prefix)
		printExpr(sb, n.Body, indent+2)

	case *Apply:
		fmt.Fprintf(sb, "%sApply (%d args)\n", prefix, len(n.Args))
		printExpr(sb, n.Function, indent+1)
		for _, arg := range n.Args {
			printExpr(sb, arg, indent+1)
		}

	case *Lambda:
		fmt.Fprintf(sb, "%sLambda: (%s)\n", prefix, strings.Join(n.Params, ", "))
		printExpr(sb, n.Body, indent+1)

	case *Match:
		fmt.Fprintf(sb, "%sMatch (%d clauses)\n", prefix, len(n.Clauses))
		printExpr(sb, n.Subject, indent+1)
		for _, clause := range n.Clauses {
			fmt.Fprintf(sb, "%s  Clause: %s\n", prefix, PatternString(clause.Pattern))
			printExpr(sb, clause.Body, indent+2)
		}

	default:
		fmt.Fprintf(sb, "%s<unknown>\n", prefix)
	}
}

// PatternString returns a compact single-line rendering of a pattern.
func PatternString(p Pattern) string {
	switch n := p.(type) {
	case *ListPattern:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = PatternString(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case *TailPattern:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = PatternString(item)
		}
		return "[" + strings.Join(parts, ", ") + ", .." + n.TailName + "]"

	case *VarPattern:
		return n.Name

	case *WildcardPattern:
		return "_"

	case *IntPattern:
		return fmt.Sprintf("%d", n.Value)

	case *StringPattern:
		return fmt.Sprintf("%q", n.Value)

	case *BoolPattern:
		return fmt.Sprintf("%t", n.Value)

	default:
		return "<unknown>"
	}
}
