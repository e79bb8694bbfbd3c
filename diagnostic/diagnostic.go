// Package diagnostic records why declarations were dropped from the
// cross-reference graph.
//
// Resolution never fails: incomplete or contradictory annotations are
// expected while a codebase is being edited, so every ambiguous case degrades
// to "no match" and leaves a structured note here instead of raising an
// error.
package diagnostic

import (
	"fmt"
	"strings"

	"xref-assist/internal/common"
)

// Severity is the severity level of a diagnostic.
type Severity int

const (
	// Info marks expected editing-time gaps (dangling imports, members the
	// engine cannot derive an identity for).
	Info Severity = iota
	// Warning marks cases whose behavior the engine pins down but that
	// likely indicate a real inconsistency, such as a constructor mixin
	// against a type with several constructors.
	Warning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is a single drop-reason note.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for the kind of degradation.
	Code string
	// Message is the human-readable description.
	Message string
	// Member is the identity involved, if one was derived (name@location).
	Member string
	// Decl is the display name of the declaration involved, if any.
	Decl string
}

// String formats the diagnostic on one line.
func (d Diagnostic) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s: %s", d.Severity, d.Code, d.Message)

	if d.Member != "" {
		fmt.Fprintf(&sb, " [%s]", d.Member)
	}

	if d.Decl != "" {
		fmt.Fprintf(&sb, " (%s)", d.Decl)
	}

	return sb.String()
}

// Diagnostics collects drop reasons over one build.
type Diagnostics struct {
	Infos    []Diagnostic
	Warnings []Diagnostic
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, member, decl string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: Info,
		Code:     code,
		Message:  message,
		Member:   member,
		Decl:     decl,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, member, decl string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  message,
		Member:   member,
		Decl:     decl,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Infos = append(d.Infos, other.Infos...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsEmpty returns true if nothing was recorded.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Infos) == 0 && len(d.Warnings) == 0
}

// Summary returns a multi-line report, warnings first.
func (d *Diagnostics) Summary() string {
	var sb strings.Builder

	for _, diag := range d.Warnings {
		sb.WriteString(diag.String())
		sb.WriteByte('\n')
	}

	for _, diag := range d.Infos {
		sb.WriteString(diag.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
