// Package ast defines the Fern expression and pattern trees consumed by
// the JavaScript backend. Trees are built by callers (or decoded by the
// loader) before generation begins and are never mutated.
package ast

// Expression is the interface for all Fern expression nodes.
type Expression interface {
	exprNode()
}

// IntLit represents an integer literal.
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode() {}

// StringLit represents a string literal. Value holds the raw, unescaped
// text; quoting and escaping happen at generation time.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode() {}

// Variable references a name in scope.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}

// List represents a list literal.
type List struct {
	Items []Expression
}

func (*List) exprNode() {}

// Binop represents a binary operation. Op is passed through verbatim to
// the generated code; precedence must be explicit in the tree.
type Binop struct {
	Op    string
	Left  Expression
	Right Expression
}

func (*Binop) exprNode() {}

// Let binds a name to a value for the scope of Body.
type Let struct {
	Name  string
	Value Expression
	Body  Expression
}

func (*Let) exprNode() {}

// Apply represents a function application.
type Apply struct {
	Function Expression
	Args     []Expression
}

func (*Apply) exprNode() {}

// Lambda represents an anonymous function.
type Lambda struct {
	Params []string
	Body   Expression
}

func (*Lambda) exprNode() {}

// Match tests a subject expression against clauses in order. The first
// clause whose pattern matches supplies the result.
type Match struct {
	Subject Expression
	Clauses []*Clause
}

func (*Match) exprNode() {}

// Clause is a single pattern/body pair in a match expression.
type Clause struct {
	Pattern Pattern
	Body    Expression
}

// Pattern is the interface for all match pattern nodes.
type Pattern interface {
	patternNode()
}

// ListPattern matches a sequence of exactly len(Items) elements, each
// against the corresponding item pattern.
type ListPattern struct {
	Items []Pattern
}

func (*ListPattern) patternNode() {}

// TailPattern matches a sequence of at least len(Items) elements and
// binds the remaining suffix to TailName.
type TailPattern struct {
	Items    []Pattern
	TailName string
}

func (*TailPattern) patternNode() {}

// VarPattern always matches and binds Name to the subject.
type VarPattern struct {
	Name string
}

func (*VarPattern) patternNode() {}

// WildcardPattern always matches and binds nothing.
type WildcardPattern struct{}

func (*WildcardPattern) patternNode() {}

// IntPattern matches an integer by equality.
type IntPattern struct {
	Value int64
}

func (*IntPattern) patternNode() {}

// StringPattern matches a string by equality.
type StringPattern struct {
	Value string
}

func (*StringPattern) patternNode() {}

// BoolPattern matches a boolean by equality.
type BoolPattern struct {
	Value bool
}

func (*BoolPattern) patternNode() {}
