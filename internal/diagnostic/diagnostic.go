// Package diagnostic collects and formats the errors and warnings the
// tool reports about input trees.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic message.
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single error or warning. Location is either a
// position in the tree file (Line/Column, from the YAML loader) or a
// path into the expression tree (Path, from validation and linting).
type Diagnostic struct {
	Severity Severity
	Message  string
	Path     string // e.g. "match.clauses[2].pattern"
	Line     int
	Column   int
	Hint     string // optional suggestion
}

// Diagnostics manages a collection of diagnostic messages.
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection.
func New() *Diagnostics {
	return &Diagnostics{}
}

// Errorf adds an error located by a tree path.
func (d *Diagnostics) Errorf(path, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	})
}

// Warningf adds a warning located by a tree path.
func (d *Diagnostics) Warningf(path, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	})
}

// ErrorfAt adds an error located by a line and column in the input file.
func (d *Diagnostics) ErrorfAt(line, col int, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// WarnWithHint adds a warning with a suggestion attached.
func (d *Diagnostics) WarnWithHint(path, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Message:  msg,
		Path:     path,
		Hint:     hint,
	})
}

// Append copies all diagnostics from other into d.
func (d *Diagnostics) Append(other *Diagnostics) {
	if other == nil {
		return
	}
	d.items = append(d.items, other.items...)
}

// HasErrors returns true if there are any error-level diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-level diagnostics.
func (d *Diagnostics) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, item := range d.items {
		if item.Severity == Error {
			errs = append(errs, item)
		}
	}
	return errs
}

// Warnings returns only the warning-level diagnostics.
func (d *Diagnostics) Warnings() []Diagnostic {
	var warns []Diagnostic
	for _, item := range d.items {
		if item.Severity == Warning {
			warns = append(warns, item)
		}
	}
	return warns
}

// All returns all diagnostics regardless of severity.
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Count returns the total number of diagnostics.
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// Format returns human-readable messages, one per diagnostic.
// Output format:
//
//	error[trees.yaml:3:10]: unknown expression kind 'float'
//	warning[trees.yaml: match.clauses[3]]: unreachable clause
//	  hint: a catch-all clause ends the match
func (d *Diagnostics) Format(filename string) string {
	if len(d.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, item := range d.items {
		loc := filename
		switch {
		case item.Line > 0:
			loc = fmt.Sprintf("%s:%d:%d", filename, item.Line, item.Column)
		case item.Path != "":
			loc = fmt.Sprintf("%s: %s", filename, item.Path)
		}

		fmt.Fprintf(&sb, "%s[%s]: %s", item.Severity.String(), loc, item.Message)
		if item.Hint != "" {
			fmt.Fprintf(&sb, "\n  hint: %s", item.Hint)
		}
		if i < len(d.items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
