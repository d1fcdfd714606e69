// Package errors provides error handling for expandgen.
//
// It re-exports github.com/cockroachdb/errors so every package wraps and
// inspects errors the same way, and defines the sentinel errors that
// schema diagnostics unwrap to.
//
// Usage:
//
//	if err := parser.ParseFile(path); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", path)
//	}
//
//	if errors.Is(err, errors.ErrMissingTemplate) {
//	    // a named variant has no template
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
	CombineErrors      = crdb.CombineErrors
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors for schema loading, resolution and generation.
// Diagnostics unwrap to one of these so callers can use errors.Is.
var (
	// ErrSyntax indicates the schema text or an @expand directive is malformed
	ErrSyntax = New("syntax error")

	// ErrMissingTemplate indicates a named-field variant has neither template nor custom function
	ErrMissingTemplate = New("missing template")

	// ErrUnsupported indicates a directive is placed where it has no meaning
	ErrUnsupported = New("unsupported directive")

	// ErrTemplate indicates a template does not match the variant's fields
	ErrTemplate = New("invalid template")

	// ErrDuplicate indicates two enums or variants share a name
	ErrDuplicate = New("duplicate declaration")

	// ErrVersion indicates the schema requires a different generator version
	ErrVersion = New("version mismatch")

	// ErrCustomFunc indicates a custom render function is missing or has the wrong shape
	ErrCustomFunc = New("invalid custom function")

	// ErrUnknownVariant indicates a value does not belong to any compiled variant
	ErrUnknownVariant = New("unknown variant")

	// ErrArity indicates a value carries the wrong number of fields for its variant
	ErrArity = New("arity mismatch")

	// ErrOutOfDate indicates generated files on disk differ from fresh output
	ErrOutOfDate = New("generated files out of date")
)

// IsSchemaError reports whether err stems from loading or resolving a schema,
// as opposed to an I/O or environment failure.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	for _, sentinel := range schemaErrors {
		if Is(err, sentinel) {
			return true
		}
	}
	return false
}

var schemaErrors = []error{
	ErrSyntax, ErrMissingTemplate, ErrUnsupported, ErrTemplate,
	ErrDuplicate, ErrVersion, ErrCustomFunc,
}
