// Package schema is the in-memory model of an .expand file: enums made of
// variants, their field shapes and the @expand directives attached to them.
//
// A File is built once by the parser and treated as immutable afterwards.
package schema

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pos is a source location. Line and Column are 1-based.
type Pos struct {
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Offset   int    `json:"offset" yaml:"offset"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
}

// IsValid reports whether the position carries a line number.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	name := p.Filename
	if name == "" {
		name = "<input>"
	}
	if !p.IsValid() {
		return name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// Shape is the field layout of a variant.
type Shape int

const (
	Unit Shape = iota
	Positional
	Named
)

func (s Shape) String() string {
	switch s {
	case Unit:
		return "unit"
	case Positional:
		return "positional"
	case Named:
		return "named"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// DirectiveKind identifies one @expand(...) form.
type DirectiveKind int

const (
	// Template is @expand("pattern")
	Template DirectiveKind = iota + 1
	// Custom is @expand(with = "fn")
	Custom
	// Rename is @expand(rename = "Name")
	Rename
	// Test is @expand(test = (args) => "expected")
	Test
	// Ignore is @expand(ignore), legal only on fields
	Ignore
	// Invalid is an annotation that failed to parse, kept verbatim in Text
	Invalid
)

func (k DirectiveKind) String() string {
	switch k {
	case Template:
		return "template"
	case Custom:
		return "with"
	case Rename:
		return "rename"
	case Test:
		return "test"
	case Ignore:
		return "ignore"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("DirectiveKind(%d)", int(k))
	}
}

// Directive is one parsed @expand(...) annotation.
type Directive struct {
	Kind DirectiveKind
	// Value is the pattern, function name, new name or expected output
	Value string
	// Args is the verbatim Go expression list of a Test, without brackets
	Args string
	// Keyed is set when Test args use the {label: value} form
	Keyed bool
	// Text is the directive's source text, used in diagnostics and to
	// reprint Invalid directives
	Text string
	Pos  Pos
}

// Field is one slot of a positional or named variant.
type Field struct {
	// Label is empty for positional fields
	Label string
	Index int
	// Type is a Go type expression, kept verbatim
	Type       string
	Ignore     bool
	Directives []Directive
	Doc        []string
	Pos        Pos
}

// GoName is the exported struct field name generated for f.
func (f Field) GoName() string {
	if f.Label == "" {
		return fmt.Sprintf("F%d", f.Index)
	}
	return Exported(f.Label)
}

// Variant is one alternative of an enum.
type Variant struct {
	Name       string
	Shape      Shape
	Fields     []Field
	Directives []Directive
	// Errors holds directive-level syntax errors found while parsing
	Errors Diagnostics
	Doc    []string
	Pos    Pos
}

// DirectivesOf returns the variant's directives of kind k in declaration order.
func (v *Variant) DirectivesOf(k DirectiveKind) []Directive {
	var out []Directive
	for _, d := range v.Directives {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

// Field returns the named field with the given label.
func (v *Variant) Field(label string) (*Field, bool) {
	for i := range v.Fields {
		if v.Fields[i].Label == label {
			return &v.Fields[i], true
		}
	}
	return nil, false
}

// Rendered returns the fields that take part in rendering, in declaration order.
func (v *Variant) Rendered() []Field {
	var out []Field
	for _, f := range v.Fields {
		if !f.Ignore {
			out = append(out, f)
		}
	}
	return out
}

// Enum is a closed set of variants.
type Enum struct {
	Name     string
	Variants []Variant
	Doc      []string
	Pos      Pos
}

// File is a parsed .expand schema.
type File struct {
	Path string
	// Package is the Go package of generated code, empty if unspecified
	Package string
	// Requires is a semver constraint on the generator version
	Requires string
	Enums    []Enum
}

// Variant looks up a variant by name across all enums.
func (f *File) Variant(name string) (*Enum, *Variant, bool) {
	for i := range f.Enums {
		e := &f.Enums[i]
		for j := range e.Variants {
			if e.Variants[j].Name == name {
				return e, &e.Variants[j], true
			}
		}
	}
	return nil, nil, false
}

// Exported upper-cases the first letter of name.
func Exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Lowered lower-cases the first letter of name.
func Lowered(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// BaseName strips the directory and the .expand extension from a schema path.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	return strings.TrimSuffix(path, Extension)
}

// Extension of schema files.
const Extension = ".expand"
