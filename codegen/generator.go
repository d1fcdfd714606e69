// Package codegen emits Go source from a resolved schema: a sealed
// interface per enum, one struct per variant with Expand and ExpandCLI
// methods, and a test file built from the variants' examples.
package codegen

import (
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/version"
)

// Generator produces one Go file from a resolved schema.
// Each artifact kind (source, tests) implements this interface.
type Generator interface {
	// Generate returns the formatted file, or nil when there is nothing to emit
	Generate(s *resolve.Schema) ([]byte, error)

	// Suffix is appended to the schema base name to form the file name
	Suffix() string

	// Kind names the artifact (e.g., "source", "test")
	Kind() string
}

// Assertion styles for generated tests.
const (
	AssertTestify = "testify"
	AssertStd     = "std"
)

// RuntimeImport is the import path of the package generated code depends on.
const RuntimeImport = "github.com/teranos/expandgen/expand"

// VersionPrefix starts the header line that records the generator version.
// Up-to-date checks skip this line.
const VersionPrefix = "// Generator version:"

// Options shared by the generators.
type Options struct {
	// Package is the Go package name of the generated files
	Package string
	// Version is recorded in the file header
	Version string
	// Assert selects the assertion style of generated tests
	Assert string
}

func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = version.Version
	}
	if o.Assert == "" {
		o.Assert = AssertTestify
	}
	return o
}

// header writes the generated-code marker recognized by Go tooling.
func header(sb *strings.Builder, s *resolve.Schema, o Options) {
	source := filepath.Base(s.File.Path)
	if s.File.Path == "" {
		source = "<input>"
	}
	sb.WriteString("// Code generated by expandgen from " + source + ". DO NOT EDIT.\n")
	sb.WriteString(VersionPrefix + " " + o.Version + "\n\n")
	sb.WriteString("package " + o.Package + "\n\n")
}

func checkSchema(s *resolve.Schema, o Options) error {
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "cannot generate code for a schema with errors")
	}
	if o.Package == "" {
		return errors.New("no package name for generated code")
	}
	return nil
}

// format runs goimports over src, which adds imports for package-qualified
// field types and drops unused ones.
func format(name string, src []byte) ([]byte, error) {
	out, err := imports.Process(name, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, errors.WithDetail(errors.Wrapf(err, "formatting generated %s", name), string(src))
	}
	return out, nil
}

// quote renders s as a Go string literal, preferring a raw string when s
// contains double quotes.
func quote(s string) string {
	if strings.Contains(s, `"`) && strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
