package doc

import "strings"

type mode int

const (
	flatMode mode = iota
	brokenMode
)

// frame is one pending document on the render stack, together with the
// indentation and layout mode it inherited from its context.
type frame struct {
	indent int
	mode   mode
	doc    Doc
}

// Render lays out a document within the given maximum line width and
// returns the final text. Rendering is deterministic: the same document
// and width always produce identical output.
func Render(d Doc, maxWidth int) string {
	var sb strings.Builder
	col := 0

	stack := []frame{{indent: 0, mode: brokenMode, doc: d}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t := f.doc.(type) {
		case text:
			sb.WriteString(string(t))
			col += len(t)

		case hardLine:
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", f.indent))
			col = f.indent

		case softBreak:
			if f.mode == flatMode {
				continue
			}
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", f.indent))
			col = f.indent

		case sep:
			s := t.flat
			if f.mode == brokenMode {
				s = t.broken
			}
			sb.WriteString(s)
			col += len(s)

		case concat:
			for i := len(t) - 1; i >= 0; i-- {
				stack = append(stack, frame{indent: f.indent, mode: f.mode, doc: t[i]})
			}

		case nested:
			stack = append(stack, frame{indent: f.indent + t.indent, mode: f.mode, doc: t.doc})

		case group:
			m := flatMode
			if !fits(maxWidth-col, t.doc) {
				m = brokenMode
			}
			stack = append(stack, frame{indent: f.indent, mode: m, doc: t.doc})
		}
	}

	return sb.String()
}

// fits reports whether d, rendered flat, fits in the given width. A hard
// line anywhere in d means the flat layout is impossible.
func fits(width int, d Doc) bool {
	stack := []Doc{d}
	for len(stack) > 0 {
		if width < 0 {
			return false
		}
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t := d.(type) {
		case text:
			width -= len(t)
		case hardLine:
			return false
		case softBreak:
			// renders as nothing when flat
		case sep:
			width -= len(t.flat)
		case concat:
			for i := len(t) - 1; i >= 0; i-- {
				stack = append(stack, t[i])
			}
		case nested:
			stack = append(stack, t.doc)
		case group:
			stack = append(stack, t.doc)
		}
	}
	return width >= 0
}
