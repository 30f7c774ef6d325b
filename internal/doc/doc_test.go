package doc

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func commaList(items ...string) Doc {
	parts := []Doc{Text("[")}
	var inner []Doc
	inner = append(inner, SoftBreak)
	for i, it := range items {
		if i > 0 {
			inner = append(inner, Sep(", ", ","), SoftBreak)
		}
		inner = append(inner, Text(it))
	}
	parts = append(parts, Nest(Concat(inner...), 2), Sep("", ","), SoftBreak, Text("]"))
	return Group(Concat(parts...))
}

func TestRenderText(t *testing.T) {
	be.Equal(t, Render(Text("hello"), 80), "hello")
}

func TestRenderConcat(t *testing.T) {
	d := Concat(Text("a"), Text("b"), Text("c"))
	be.Equal(t, Render(d, 80), "abc")
}

func TestGroupFits(t *testing.T) {
	d := commaList("1", "2", "3")
	be.Equal(t, Render(d, 80), "[1, 2, 3]")
}

func TestGroupBreaks(t *testing.T) {
	long := strings.Repeat("x", 40)
	d := commaList(long, long)
	want := "[\n  " + long + ",\n  " + long + ",\n]"
	be.Equal(t, Render(d, 80), want)
}

func TestSepFlatAndBroken(t *testing.T) {
	d := Group(Concat(Text("a"), Sep("-flat-", "-broken-"), Text("b")))
	be.Equal(t, Render(d, 80), "a-flat-b")
	be.Equal(t, Render(d, 5), "a-broken-b")
}

func TestHardLineForcesBreak(t *testing.T) {
	// A hard line inside a group rules out the flat layout even when the
	// text alone would fit.
	d := Group(Concat(Text("a"), Nest(Concat(Line, Text("b")), 2)))
	be.Equal(t, Render(d, 80), "a\n  b")
}

func TestNestOnlyAffectsBreaks(t *testing.T) {
	d := Concat(Text("head"), Nest(Concat(Line, Text("body")), 4), Line, Text("tail"))
	be.Equal(t, Render(d, 80), "head\n    body\ntail")
}

func TestNestedGroupsBreakIndependently(t *testing.T) {
	inner := commaList("1", "2")
	outer := commaList(Render(inner, 80))
	// The outer group fits flat, so the inner stays flat too.
	be.Equal(t, Render(outer, 80), "[[1, 2]]")
}

func TestSoftBreakAtWidthBoundary(t *testing.T) {
	// Within the width budget the flat layout is kept.
	d := commaList(strings.Repeat("a", 76))
	be.Equal(t, Render(d, 80), "["+strings.Repeat("a", 76)+"]")

	d = commaList(strings.Repeat("a", 79))
	be.Equal(t, Render(d, 80), "[\n  "+strings.Repeat("a", 79)+",\n]")
}

func TestRenderDeterministic(t *testing.T) {
	d := commaList(strings.Repeat("a", 50), strings.Repeat("b", 50))
	be.Equal(t, Render(d, 80), Render(d, 80))
}
