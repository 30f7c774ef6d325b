package jsbe

import (
	"strconv"

	"github.com/fern-lang/fernc/internal/ast"
	"github.com/fern-lang/fernc/internal/doc"
)

// Check is one boolean test a compiled pattern requires of its subject.
type Check interface {
	checkNode()

	// Doc renders the check as a boolean JavaScript expression fragment.
	Doc() doc.Doc
}

// LengthCheck asserts that the subject is an array whose length equals
// (AtLeast=false) or is at least (AtLeast=true) Length.
type LengthCheck struct {
	Subject doc.Doc
	Length  int
	AtLeast bool
}

func (*LengthCheck) checkNode() {}

func (c *LengthCheck) Doc() doc.Doc {
	op := "==="
	if c.AtLeast {
		op = ">="
	}
	return doc.Concat(
		doc.Text("Array.isArray("),
		c.Subject,
		doc.Text(") && "),
		c.Subject,
		doc.Text(".length "+op+" "+strconv.Itoa(c.Length)),
	)
}

// EqualityCheck asserts strict equality between the subject and a
// rendered literal.
type EqualityCheck struct {
	Subject doc.Doc
	Literal doc.Doc
}

func (*EqualityCheck) checkNode() {}

func (c *EqualityCheck) Doc() doc.Doc {
	return doc.Concat(c.Subject, doc.Text(" === "), c.Literal)
}

// Binding associates a pattern variable with a subject-derived reference.
type Binding struct {
	Name string
	Ref  doc.Doc
}

// CompiledPattern is the result of compiling one pattern against a
// subject reference: the checks that must all hold for the pattern to
// match, and the names it binds. Both lists are in traversal order
// (depth first, left to right); check order is observable in generated
// code. Values are ephemeral, produced and consumed per clause.
type CompiledPattern struct {
	Checks   []Check
	Bindings []Binding
}

// CatchAll reports whether the pattern matches unconditionally. A
// pattern that emitted no checks always matches.
func (c *CompiledPattern) CatchAll() bool {
	return len(c.Checks) == 0
}

// Ref returns the subject reference bound to name, or nil if the
// pattern does not bind it. If a name was bound more than once the last
// occurrence wins.
func (c *CompiledPattern) Ref(name string) doc.Doc {
	for i := len(c.Bindings) - 1; i >= 0; i-- {
		if c.Bindings[i].Name == name {
			return c.Bindings[i].Ref
		}
	}
	return nil
}

// bindingDefs returns the bindings to materialize as definitions, in
// traversal order. A name bound more than once (undefined input; the
// validator rejects it) is emitted once with the winning reference.
func (c *CompiledPattern) bindingDefs() []Binding {
	defs := make([]Binding, 0, len(c.Bindings))
	for i, b := range c.Bindings {
		last := true
		for _, later := range c.Bindings[i+1:] {
			if later.Name == b.Name {
				last = false
				break
			}
		}
		if last {
			defs = append(defs, b)
		}
	}
	return defs
}

// CompilePattern lowers a pattern against a symbolic subject reference
// into the checks and bindings its match requires.
func CompilePattern(p ast.Pattern, subject doc.Doc) *CompiledPattern {
	c := &CompiledPattern{}
	c.walk(p, subject)
	return c
}

func (c *CompiledPattern) walk(p ast.Pattern, subject doc.Doc) {
	switch t := p.(type) {
	case *ast.VarPattern:
		c.Bindings = append(c.Bindings, Binding{Name: t.Name, Ref: subject})

	case *ast.WildcardPattern:
		// no check, no binding

	case *ast.IntPattern:
		c.Checks = append(c.Checks, &EqualityCheck{
			Subject: subject,
			Literal: doc.Text(strconv.FormatInt(t.Value, 10)),
		})

	case *ast.StringPattern:
		c.Checks = append(c.Checks, &EqualityCheck{
			Subject: subject,
			Literal: doc.Text(quoteString(t.Value)),
		})

	case *ast.BoolPattern:
		c.Checks = append(c.Checks, &EqualityCheck{
			Subject: subject,
			Literal: doc.Text(strconv.FormatBool(t.Value)),
		})

	case *ast.ListPattern:
		c.Checks = append(c.Checks, &LengthCheck{
			Subject: subject,
			Length:  len(t.Items),
		})
		for i, item := range t.Items {
			c.walk(item, indexRef(subject, i))
		}

	case *ast.TailPattern:
		c.Checks = append(c.Checks, &LengthCheck{
			Subject: subject,
			Length:  len(t.Items),
			AtLeast: true,
		})
		for i, item := range t.Items {
			c.walk(item, indexRef(subject, i))
		}
		c.Bindings = append(c.Bindings, Binding{
			Name: t.TailName,
			Ref:  sliceRef(subject, len(t.Items)),
		})
	}
}

// indexRef builds the reference "subject[i]".
func indexRef(subject doc.Doc, i int) doc.Doc {
	return doc.Concat(subject, doc.Text("["+strconv.Itoa(i)+"]"))
}

// sliceRef builds the reference "subject.slice(start)".
func sliceRef(subject doc.Doc, start int) doc.Doc {
	return doc.Concat(subject, doc.Text(".slice("+strconv.Itoa(start)+")"))
}

// andChecks joins check fragments with logical AND, in check order. The
// result is breakable: when the enclosing condition group does not fit,
// each check moves to its own line after the " &&".
func andChecks(checks []Check) doc.Doc {
	var parts []doc.Doc
	for i, check := range checks {
		if i > 0 {
			parts = append(parts, doc.Text(" &&"), doc.Sep(" ", ""), doc.SoftBreak)
		}
		parts = append(parts, check.Doc())
	}
	return doc.Concat(parts...)
}
