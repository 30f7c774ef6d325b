// Package doc implements width-aware document layout for generated code.
//
// A Doc is an abstract description of text with optional break points.
// Render chooses a layout: each Group is printed on one line when its
// flattened form fits the remaining width, and broken across lines with
// nesting-controlled indentation otherwise.
//
// The document model follows Wadler's "A prettier printer" as implemented
// in Go pretty-printers: an immutable tree of text, breaks, nesting and
// groups, with all line-width policy confined to Render.
package doc

// Doc is the interface for all document nodes.
type Doc interface {
	isDoc()
}

type text string

type hardLine struct{}

type softBreak struct{}

type sep struct {
	flat   string
	broken string
}

type concat []Doc

type nested struct {
	indent int
	doc    Doc
}

type group struct {
	doc Doc
}

func (text) isDoc()      {}
func (hardLine) isDoc()  {}
func (softBreak) isDoc() {}
func (sep) isDoc()       {}
func (concat) isDoc()    {}
func (nested) isDoc()    {}
func (group) isDoc()     {}

// Text returns an atomic, unbreakable piece of text.
func Text(s string) Doc {
	return text(s)
}

// Concat composes documents in sequence.
func Concat(docs ...Doc) Doc {
	return concat(docs)
}

// Line is a hard line break. It always renders as a newline, and any
// enclosing group that contains one is forced into its broken layout.
var Line Doc = hardLine{}

// SoftBreak renders as nothing when the enclosing group is flat and as a
// newline when it is broken.
var SoftBreak Doc = softBreak{}

// Sep renders as flat when the enclosing group stays on one line and as
// broken otherwise. Typical use is a trailing comma that only appears in
// the broken layout.
func Sep(flat, broken string) Doc {
	return sep{flat: flat, broken: broken}
}

// Nest increases the indentation applied to line breaks inside d.
func Nest(d Doc, indent int) Doc {
	return nested{indent: indent, doc: d}
}

// Group marks a layout choice: render d on a single line if the flattened
// form fits the width budget, otherwise render it broken.
func Group(d Doc) Doc {
	return group{doc: d}
}
