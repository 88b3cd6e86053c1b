// Package issues provides the diagnostic record reported for skipped
// endpoints and generation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/mdbind/internal/severity"
)

// Issue represents a single problem found while parsing a reference document
// or generating bindings from it.
type Issue struct {
	// Path is the endpoint path the issue relates to (e.g., "/api/v0/files/write")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Field names the rejection reason or the offending argument
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Line is the 1-based line number of the endpoint header (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// File is the source document path (empty when unknown)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	subject := i.Path
	if i.Field != "" {
		subject = fmt.Sprintf("%s [%s]", i.Path, i.Field)
	}
	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d): %s", symbol, subject, i.Line, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, subject, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line" if file is set, "line N" if only line is set,
// or the endpoint path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d", i.File, i.Line)
	}
	return fmt.Sprintf("line %d", i.Line)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Count returns the number of issues at or above min.
func Count(list []Issue, min severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity.AtLeast(min) {
			n++
		}
	}
	return n
}
