package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/expandgen/errors"
)

// Severity indicates whether a diagnostic blocks generation.
type Severity string

const (
	SeverityError   Severity = "error"   // Prevents code generation
	SeverityWarning Severity = "warning" // Directive has no effect
)

// Kind categorizes diagnostics for programmatic handling.
type Kind string

const (
	KindSyntax           Kind = "syntax"            // Malformed schema text
	KindUnknownDirective Kind = "unknown-directive" // Unrecognized @expand keyword
	KindMalformedPair    Kind = "malformed-pair"    // key = value form broken
	KindMissingArrow     Kind = "missing-arrow"     // test without =>
	KindExpectedString   Kind = "expected-string"   // Value must be a string literal
	KindMissingTemplate  Kind = "missing-template"  // Named variant without template or custom function
	KindUnsupported      Kind = "unsupported"       // Directive placed where it has no meaning
	KindTemplate         Kind = "template"          // Template does not match the fields
	KindTemplateArity    Kind = "template-arity"    // Placeholder count differs from rendered fields
	KindDuplicate        Kind = "duplicate"         // Name declared twice
	KindVersion          Kind = "version"           // requires clause not satisfied
	KindCustomFunc       Kind = "custom-func"       // Custom function missing or mis-typed
	KindShadowed         Kind = "shadowed"          // Directive loses to a higher-priority one
	KindTestArity        Kind = "test-arity"        // Example args do not match the fields
)

// sentinel maps each kind to the error it unwraps to.
var sentinel = map[Kind]error{
	KindSyntax:           errors.ErrSyntax,
	KindUnknownDirective: errors.ErrSyntax,
	KindMalformedPair:    errors.ErrSyntax,
	KindMissingArrow:     errors.ErrSyntax,
	KindExpectedString:   errors.ErrSyntax,
	KindMissingTemplate:  errors.ErrMissingTemplate,
	KindUnsupported:      errors.ErrUnsupported,
	KindTemplate:         errors.ErrTemplate,
	KindTemplateArity:    errors.ErrTemplate,
	KindDuplicate:        errors.ErrDuplicate,
	KindVersion:          errors.ErrVersion,
	KindCustomFunc:       errors.ErrCustomFunc,
	KindShadowed:         errors.ErrUnsupported,
	KindTestArity:        errors.ErrArity,
}

// Diagnostic is a positioned schema error or warning.
type Diagnostic struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Severity Severity `json:"severity" yaml:"severity"`
	Pos      Pos      `json:"pos" yaml:"pos"`
	Message  string   `json:"message" yaml:"message"`
	// Directive is the offending @expand(...) text, if any
	Directive   string   `json:"directive,omitempty" yaml:"directive,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// NewDiagnostic creates an error-severity diagnostic.
func NewDiagnostic(kind Kind, pos Pos, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: SeverityError,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewWarning creates a warning-severity diagnostic.
func NewWarning(kind Kind, pos Pos, format string, args ...interface{}) *Diagnostic {
	d := NewDiagnostic(kind, pos, format, args...)
	d.Severity = SeverityWarning
	return d
}

// WithDirective records the directive text the diagnostic refers to.
func (d *Diagnostic) WithDirective(text string) *Diagnostic {
	d.Directive = text
	return d
}

// WithSuggestions adds possible fixes.
func (d *Diagnostic) WithSuggestions(suggestions ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, suggestions...)
	return d
}

// IsWarning returns true if this diagnostic has warning severity
func (d *Diagnostic) IsWarning() bool {
	return d.Severity == SeverityWarning
}

// Error implements error with the plain format.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Unwrap for errors.Is compatibility with the sentinels in package errors.
func (d *Diagnostic) Unwrap() error {
	return sentinel[d.Kind]
}

// Format renders the diagnostic as "file:line:col: kind: message". With color
// set it uses terminal colors and lists suggestions on separate lines.
func (d *Diagnostic) Format(color bool) string {
	if !color {
		msg := fmt.Sprintf("%s: %s: %s", d.Pos, d.Kind, d.Message)
		if d.Directive != "" {
			msg += fmt.Sprintf(" (in %s)", d.Directive)
		}
		if len(d.Suggestions) > 0 {
			msg += fmt.Sprintf("; %s", strings.Join(d.Suggestions, ", "))
		}
		return msg
	}

	var label string
	switch d.Severity {
	case SeverityWarning:
		label = pterm.Yellow(string(d.Severity))
	default:
		label = pterm.Red(string(d.Severity))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", pterm.Bold.Sprint(d.Pos.String()+":"), label, d.Message)
	if d.Directive != "" {
		fmt.Fprintf(&b, "\n  %s %s", pterm.LightCyan("in"), d.Directive)
	}
	for _, s := range d.Suggestions {
		fmt.Fprintf(&b, "\n  %s %s", pterm.Green("hint:"), s)
	}
	return b.String()
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []*Diagnostic

// Add appends d, ignoring nil.
func (ds *Diagnostics) Add(d *Diagnostic) {
	if d != nil {
		*ds = append(*ds, d)
	}
}

// Errors returns only error-severity diagnostics.
func (ds Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if !d.IsWarning() {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only warning-severity diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.IsWarning() {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic is an error.
func (ds Diagnostics) HasErrors() bool {
	return len(ds.Errors()) > 0
}

// Sort orders diagnostics by file, then position, keeping insertion order for ties.
func (ds Diagnostics) Sort() {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].Pos, ds[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// Err returns the error diagnostics as an error, or nil when there are none.
func (ds Diagnostics) Err() error {
	errs := ds.Errors()
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Error joins all diagnostics, one per line.
func (ds Diagnostics) Error() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes every diagnostic to errors.Is and errors.As.
func (ds Diagnostics) Unwrap() []error {
	out := make([]error, len(ds))
	for i, d := range ds {
		out[i] = d
	}
	return out
}

// Is reports whether any diagnostic matches target.
func (ds Diagnostics) Is(target error) bool {
	for _, d := range ds {
		if errors.Is(d, target) {
			return true
		}
	}
	return false
}

// Format renders all diagnostics, one per line.
func (ds Diagnostics) Format(color bool) string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.Format(color)
	}
	return strings.Join(lines, "\n")
}
