package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"ndarray-bridge/internal/common"
)

// Diagnostics holds all diagnostics of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field identifies which field this relates to (if any), e.g.
	// "tensors[0].value".
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, field string) *Diagnostic {
	d.Errors = append(d.Errors, Diagnostic{Severity: SeverityError, Code: code, Message: message, Field: field})
	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic and returns it for further decoration.
func (d *Diagnostics) AddWarning(code, message, field string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Field: field})
	return &d.Warnings[len(d.Warnings)-1]
}

// AddInfo adds an info diagnostic and returns it for further decoration.
func (d *Diagnostics) AddInfo(code, message, field string) *Diagnostic {
	d.Infos = append(d.Infos, Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Field: field})
	return &d.Infos[len(d.Infos)-1]
}

// Suggest appends suggestions to d.
func (d *Diagnostic) Suggest(s ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, s...)
	return d
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Codes returns the codes of all error diagnostics in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		codes[i] = e.Code
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if d.Field != "" {
		return d.Field + ": " + msg
	}

	return msg
}
