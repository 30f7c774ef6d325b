package jsbe

import (
	"strings"
	"testing"

	"github.com/fern-lang/fernc/internal/ast"
)

func TestGenerateLiterals(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{"int", &ast.IntLit{Value: 42}, "42"},
		{"negative int", &ast.IntLit{Value: -7}, "-7"},
		{"string", &ast.StringLit{Value: "hello"}, `"hello"`},
		{"string escapes", &ast.StringLit{Value: "a\"b\\c\nd"}, `"a\"b\\c\nd"`},
		{"bool true", &ast.BoolLit{Value: true}, "true"},
		{"bool false", &ast.BoolLit{Value: false}, "false"},
		{"variable", &ast.Variable{Name: "count"}, "count"},
	}

	for _, tt := range tests {
		if got := Generate(tt.expr); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestGenerateBinop(t *testing.T) {
	expr := &ast.Binop{
		Op:    "+",
		Left:  &ast.IntLit{Value: 1},
		Right: &ast.Binop{Op: "*", Left: &ast.IntLit{Value: 2}, Right: &ast.IntLit{Value: 3}},
	}

	// Operators pass through verbatim with single-space padding; no
	// parens are inserted, nesting must be explicit in the tree.
	if got := Generate(expr); got != "1 + 2 * 3" {
		t.Errorf("Expected verbatim operator chain, got %q", got)
	}
}

func TestGenerateListFlat(t *testing.T) {
	expr := &ast.List{Items: []ast.Expression{
		&ast.IntLit{Value: 1},
		&ast.IntLit{Value: 2},
		&ast.IntLit{Value: 3},
	}}

	if got := Generate(expr); got != "[1, 2, 3]" {
		t.Errorf("Expected flat list, got %q", got)
	}
}

func TestGenerateListBroken(t *testing.T) {
	long := strings.Repeat("a", 40)
	expr := &ast.List{Items: []ast.Expression{
		&ast.StringLit{Value: long},
		&ast.StringLit{Value: long},
	}}

	want := "[\n  \"" + long + "\",\n  \"" + long + "\",\n]"
	if got := Generate(expr); got != want {
		t.Errorf("Expected one element per line with trailing comma, got:\n%s", got)
	}
}

func TestGenerateEmptyList(t *testing.T) {
	if got := Generate(&ast.List{}); got != "[]" {
		t.Errorf("Expected [], got %q", got)
	}
}

func TestGenerateLet(t *testing.T) {
	expr := &ast.Let{
		Name:  "x",
		Value: &ast.IntLit{Value: 1},
		Body:  &ast.Variable{Name: "x"},
	}

	want := "(() => {\n  const x = 1;\n  return x;\n})()"
	if got := Generate(expr); got != want {
		t.Errorf("Expected IIFE let block, got:\n%s", got)
	}
}

func TestGenerateNestedLet(t *testing.T) {
	expr := &ast.Let{
		Name:  "x",
		Value: &ast.IntLit{Value: 1},
		Body: &ast.Let{
			Name:  "y",
			Value: &ast.IntLit{Value: 2},
			Body:  &ast.Binop{Op: "+", Left: &ast.Variable{Name: "x"}, Right: &ast.Variable{Name: "y"}},
		},
	}

	got := Generate(expr)
	if !strings.Contains(got, "  return (() => {\n    const y = 2;\n    return x + y;\n  })();") {
		t.Errorf("Expected nested IIFE indented one level, got:\n%s", got)
	}
}

func TestGenerateApply(t *testing.T) {
	expr := &ast.Apply{
		Function: &ast.Variable{Name: "add"},
		Args:     []ast.Expression{&ast.IntLit{Value: 1}, &ast.IntLit{Value: 2}},
	}

	if got := Generate(expr); got != "add(1, 2)" {
		t.Errorf("Expected add(1, 2), got %q", got)
	}
}

func TestGenerateLambdaFlat(t *testing.T) {
	expr := &ast.Lambda{
		Params: []string{"x", "y"},
		Body:   &ast.Binop{Op: "+", Left: &ast.Variable{Name: "x"}, Right: &ast.Variable{Name: "y"}},
	}

	if got := Generate(expr); got != "(x, y) => x + y" {
		t.Errorf("Expected flat lambda, got %q", got)
	}
}

func TestGenerateLambdaBrokenBody(t *testing.T) {
	expr := &ast.Lambda{
		Params: []string{"x"},
		Body:   &ast.StringLit{Value: strings.Repeat("a", 90)},
	}

	want := "(x) =>\n  \"" + strings.Repeat("a", 90) + "\""
	if got := Generate(expr); got != want {
		t.Errorf("Expected body on its own indented line, got:\n%s", got)
	}
}

func TestGenerateMatchScenario(t *testing.T) {
	subject := &ast.List{Items: []ast.Expression{
		&ast.StringLit{Value: "hello there"},
		&ast.BoolLit{Value: false},
		&ast.IntLit{Value: 3},
	}}
	expr := &ast.Match{
		Subject: subject,
		Clauses: []*ast.Clause{
			{
				Pattern: &ast.ListPattern{Items: []ast.Pattern{
					&ast.StringPattern{Value: "hello there"},
					&ast.BoolPattern{Value: false},
					&ast.IntPattern{Value: 3},
				}},
				Body: &ast.StringLit{Value: "first case"},
			},
			{
				Pattern: &ast.TailPattern{
					Items:    []ast.Pattern{&ast.VarPattern{Name: "head"}},
					TailName: "tail",
				},
				Body: &ast.StringLit{Value: "pattern variables are defined"},
			},
			{
				Pattern: &ast.VarPattern{Name: "anything"},
				Body:    &ast.StringLit{Value: "catch-all case"},
			},
			{
				Pattern: &ast.WildcardPattern{},
				Body:    &ast.StringLit{Value: "unreachable"},
			},
		},
	}

	want := `(() => {
  const $ = ["hello there", false, 3];
  if (
    Array.isArray($) && $.length === 3 &&
    $[0] === "hello there" &&
    $[1] === false &&
    $[2] === 3
  ) {
    return "first case";
  }
  if (Array.isArray($) && $.length >= 1) {
    const head = $[0];
    const tail = $.slice(1);
    return "pattern variables are defined";
  }
  const anything = $;
  return "catch-all case";
})()`

	got := Generate(expr)
	if got != want {
		t.Errorf("Expected:\n%s\n\nGot:\n%s", want, got)
	}
	if strings.Contains(got, "unreachable") {
		t.Error("Clause after the catch-all must never be emitted")
	}
}

func TestGenerateMatchCatchAllShortCircuit(t *testing.T) {
	expr := &ast.Match{
		Subject: &ast.Variable{Name: "xs"},
		Clauses: []*ast.Clause{
			{Pattern: &ast.ListPattern{}, Body: &ast.StringLit{Value: "empty"}},
			{Pattern: &ast.WildcardPattern{}, Body: &ast.StringLit{Value: "other"}},
			{Pattern: &ast.IntPattern{Value: 9}, Body: &ast.StringLit{Value: "nine"}},
		},
	}

	got := Generate(expr)
	if strings.Contains(got, "nine") || strings.Contains(got, "=== 9") {
		t.Errorf("Clauses after a catch-all must be discarded, got:\n%s", got)
	}
	if strings.Contains(got, "non-exhaustive") {
		t.Errorf("A match ending in a catch-all needs no fallback, got:\n%s", got)
	}
}

func TestGenerateMatchExhaustivenessFallback(t *testing.T) {
	expr := &ast.Match{
		Subject: &ast.Variable{Name: "xs"},
		Clauses: []*ast.Clause{
			{Pattern: &ast.ListPattern{}, Body: &ast.StringLit{Value: "empty"}},
			{
				Pattern: &ast.TailPattern{
					Items:    []ast.Pattern{&ast.VarPattern{Name: "x"}},
					TailName: "rest",
				},
				Body: &ast.Variable{Name: "x"},
			},
		},
	}

	got := Generate(expr)
	fallback := `throw new Error("non-exhaustive match clauses");`
	if !strings.Contains(got, fallback) {
		t.Errorf("Expected terminal failure statement, got:\n%s", got)
	}
	// The throw comes after the last conditional block.
	if strings.Index(got, fallback) < strings.Index(got, "return x;") {
		t.Errorf("Fallback must follow the last conditional, got:\n%s", got)
	}
}

func TestGenerateMatchNoClauses(t *testing.T) {
	expr := &ast.Match{Subject: &ast.IntLit{Value: 1}}

	want := "(() => {\n  const $ = 1;\n  throw new Error(\"non-exhaustive match clauses\");\n})()"
	if got := Generate(expr); got != want {
		t.Errorf("Expected subject binding plus fallback, got:\n%s", got)
	}
}

func TestGenerateMatchSubjectEvaluatedOnce(t *testing.T) {
	// The subject expression appears exactly once, bound to $.
	expr := &ast.Match{
		Subject: &ast.Apply{Function: &ast.Variable{Name: "sideEffect"}, Args: nil},
		Clauses: []*ast.Clause{
			{Pattern: &ast.ListPattern{}, Body: &ast.IntLit{Value: 0}},
			{Pattern: &ast.WildcardPattern{}, Body: &ast.IntLit{Value: 1}},
		},
	}

	got := Generate(expr)
	if strings.Count(got, "sideEffect()") != 1 {
		t.Errorf("Expected the subject to be evaluated once, got:\n%s", got)
	}
	if !strings.Contains(got, "const $ = sideEffect();") {
		t.Errorf("Expected subject bound to $, got:\n%s", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	expr := &ast.Match{
		Subject: &ast.List{Items: []ast.Expression{&ast.IntLit{Value: 1}}},
		Clauses: []*ast.Clause{
			{
				Pattern: &ast.TailPattern{
					Items:    []ast.Pattern{&ast.VarPattern{Name: "h"}},
					TailName: "t",
				},
				Body: &ast.Variable{Name: "h"},
			},
			{Pattern: &ast.WildcardPattern{}, Body: &ast.IntLit{Value: 0}},
		},
	}

	first := Generate(expr)
	second := Generate(expr)
	if first != second {
		t.Error("Generation must be deterministic for the same tree")
	}
}
