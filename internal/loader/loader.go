// Package loader decodes Fern expression trees from YAML tree files.
//
// Every expression and pattern is a single-key mapping whose key names
// the node kind:
//
//	match:
//	  subject: {var: xs}
//	  clauses:
//	    - pattern:
//	        tail:
//	          items: [{var: head}]
//	          bind: rest
//	      body: {var: head}
//	    - pattern: {wildcard: }
//	      body: {int: 0}
//
// Expression kinds: int, string, bool, var, list, binop, let, apply,
// lambda, match. Pattern kinds: int, string, bool, var, wildcard,
// list, tail. Decoding errors carry the YAML line and column.
package loader

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/diagnostic"
)

// Load reads and decodes a tree file.
func Load(path string) (ast.Expression, *diagnostic.Diagnostics) {
	data, err := os.ReadFile(path)
	if err != nil {
		diags := diagnostic.New()
		diags.Errorf("", "cannot read tree file: %v", err)
		return nil, diags
	}
	return Parse(data)
}

// Parse decodes a tree from YAML bytes. The returned expression is nil
// when the diagnostics contain errors.
func Parse(data []byte) (ast.Expression, *diagnostic.Diagnostics) {
	diags := diagnostic.New()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		diags.Errorf("", "invalid YAML: %v", err)
		return nil, diags
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		diags.Errorf("", "tree file is empty")
		return nil, diags
	}

	expr := decodeExpr(root.Content[0], diags)
	if diags.HasErrors() {
		return nil, diags
	}
	return expr, diags
}

// kindOf unwraps the single-key mapping every node must be.
func kindOf(n *yaml.Node, diags *diagnostic.Diagnostics) (string, *yaml.Node, bool) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		diags.ErrorfAt(n.Line, n.Column, "expected a single-key mapping naming the node kind")
		return "", nil, false
	}
	return n.Content[0].Value, n.Content[1], true
}

// fields turns a mapping node into a name -> value lookup.
func fields(n *yaml.Node, diags *diagnostic.Diagnostics) map[string]*yaml.Node {
	if n.Kind != yaml.MappingNode {
		diags.ErrorfAt(n.Line, n.Column, "expected a mapping")
		return nil
	}
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		m[n.Content[i].Value] = n.Content[i+1]
	}
	return m
}

func field(m map[string]*yaml.Node, name string, parent *yaml.Node, diags *diagnostic.Diagnostics) *yaml.Node {
	n, ok := m[name]
	if !ok {
		diags.ErrorfAt(parent.Line, parent.Column, "missing field '%s'", name)
	}
	return n
}

func scalarString(n *yaml.Node, diags *diagnostic.Diagnostics) string {
	if n.Kind != yaml.ScalarNode {
		diags.ErrorfAt(n.Line, n.Column, "expected a string scalar")
		return ""
	}
	return n.Value
}

func scalarInt(n *yaml.Node, diags *diagnostic.Diagnostics) int64 {
	if n.Kind != yaml.ScalarNode {
		diags.ErrorfAt(n.Line, n.Column, "expected an integer scalar")
		return 0
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		diags.ErrorfAt(n.Line, n.Column, "invalid integer '%s'", n.Value)
		return 0
	}
	return v
}

func scalarBool(n *yaml.Node, diags *diagnostic.Diagnostics) bool {
	if n.Kind != yaml.ScalarNode || (n.Value != "true" && n.Value != "false") {
		diags.ErrorfAt(n.Line, n.Column, "expected true or false")
		return false
	}
	return n.Value == "true"
}

func sequence(n *yaml.Node, diags *diagnostic.Diagnostics) []*yaml.Node {
	if n.Kind != yaml.SequenceNode {
		diags.ErrorfAt(n.Line, n.Column, "expected a sequence")
		return nil
	}
	return n.Content
}

func decodeExpr(n *yaml.Node, diags *diagnostic.Diagnostics) ast.Expression {
	kind, value, ok := kindOf(n, diags)
	if !ok {
		return nil
	}

	switch kind {
	case "int":
		return &ast.IntLit{Value: scalarInt(value, diags)}

	case "string":
		return &ast.StringLit{Value: scalarString(value, diags)}

	case "bool":
		return &ast.BoolLit{Value: scalarBool(value, diags)}

	case "var":
		return &ast.Variable{Name: scalarString(value, diags)}

	case "list":
		var items []ast.Expression
		for _, item := range sequence(value, diags) {
			items = append(items, decodeExpr(item, diags))
		}
		return &ast.List{Items: items}

	case "binop":
		m := fields(value, diags)
		if m == nil {
			return nil
		}
		node := &ast.Binop{Op: stringField(m, "op", value, diags)}
		if left := field(m, "left", value, diags); left != nil {
			node.Left = decodeExpr(left, diags)
		}
		if right := field(m, "right", value, diags); right != nil {
			node.Right = decodeExpr(right, diags)
		}
		return node

	case "let":
		m := fields(value, diags)
		if m == nil {
			return nil
		}
		node := &ast.Let{Name: stringField(m, "name", value, diags)}
		if v := field(m, "value", value, diags); v != nil {
			node.Value = decodeExpr(v, diags)
		}
		if body := field(m, "body", value, diags); body != nil {
			node.Body = decodeExpr(body, diags)
		}
		return node

	case "apply":
		m := fields(value, diags)
		if m == nil {
			return nil
		}
		node := &ast.Apply{}
		if fn := field(m, "fn", value, diags); fn != nil {
			node.Function = decodeExpr(fn, diags)
		}
		if args, ok := m["args"]; ok {
			for _, arg := range sequence(args, diags) {
				node.Args = append(node.Args, decodeExpr(arg, diags))
			}
		}
		return node

	case "lambda":
		m := fields(value, diags)
		if m == nil {
			return nil
		}
		node := &ast.Lambda{}
		if params, ok := m["params"]; ok {
			for _, p := range sequence(params, diags) {
				node.Params = append(node.Params, scalarString(p, diags))
			}
		}
		if body := field(m, "body", value, diags); body != nil {
			node.Body = decodeExpr(body, diags)
		}
		return node

	case "match":
		m := fields(value, diags)
		if m == nil {
			return nil
		}
		node := &ast.Match{}
		if subject := field(m, "subject", value, diags); subject != nil {
			node.Subject = decodeExpr(subject, diags)
		}
		if clauses := field(m, "clauses", value, diags); clauses != nil {
			for _, clause := range sequence(clauses, diags) {
				node.Clauses = append(node.Clauses, decodeClause(clause, diags))
			}
		}
		return node

	default:
		diags.ErrorfAt(n.Line, n.Column, "unknown expression kind '%s'", kind)
		return nil
	}
}

func decodeClause(n *yaml.Node, diags *diagnostic.Diagnostics) *ast.Clause {
	m := fields(n, diags)
	if m == nil {
		return &ast.Clause{}
	}
	clause := &ast.Clause{}
	if pattern := field(m, "pattern", n, diags); pattern != nil {
		clause.Pattern = decodePattern(pattern, diags)
	}
	if body := field(m, "body", n, diags); body != nil {
		clause.Body = decodeExpr(body, diags)
	}
	return clause
}

func decodePattern(n *yaml.Node, diags *diagnostic.Diagnostics) ast.Pattern {
	kind, value, ok := kindOf(n, diags)
	if !ok {
		return nil
	}

	switch kind {
	case "int":
		return &ast.IntPattern{Value: scalarInt(value, diags)}

	case "string":
		return &ast.StringPattern{Value: scalarString(value, diags)}

	case "bool":
		return &ast.BoolPattern{Value: scalarBool(value, diags)}

	case "var":
		return &ast.VarPattern{Name: scalarString(value, diags)}

	case "wildcard":
		return &ast.WildcardPattern{}

	case "list":
		var items []ast.Pattern
		for _, item := range sequence(value, diags) {
			items = append(items, decodePattern(item, diags))
		}
		return &ast.ListPattern{Items: items}

	case "tail":
		m := fields(value, diags)
		if m == nil {
			return nil
		}
		node := &ast.TailPattern{TailName: stringField(m, "bind", value, diags)}
		if items, ok := m["items"]; ok {
			for _, item := range sequence(items, diags) {
				node.Items = append(node.Items, decodePattern(item, diags))
			}
		}
		return node

	default:
		diags.ErrorfAt(n.Line, n.Column, "unknown pattern kind '%s'", kind)
		return nil
	}
}

// stringField reads a required string field.
func stringField(m map[string]*yaml.Node, name string, parent *yaml.Node, diags *diagnostic.Diagnostics) string {
	n := field(m, name, parent, diags)
	if n == nil {
		return ""
	}
	return scalarString(n, diags)
}
