// Package resolve decides how each variant of a schema renders.
//
// Every variant ends in exactly one terminal State. A custom function wins
// over any template, the first template wins over later ones, and variants
// without either fall back to the default rendering. Problems found along
// the way become diagnostics on the variant's Resolution; a variant with an
// error diagnostic resolves to Error.
package resolve

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/schema"
	"github.com/teranos/expandgen/version"
)

// State is the terminal outcome of resolving one variant.
type State int

const (
	// Error means the variant cannot be rendered
	Error State = iota
	CustomResolved
	TemplateResolved
	DefaultResolved
)

func (s State) String() string {
	switch s {
	case Error:
		return "error"
	case CustomResolved:
		return "custom"
	case TemplateResolved:
		return "template"
	case DefaultResolved:
		return "default"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText renders the state by name for JSON and YAML output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution is the resolved rendering strategy of one variant.
type Resolution struct {
	Enum    string          `json:"enum" yaml:"enum"`
	Variant *schema.Variant `json:"-" yaml:"-"`
	State   State           `json:"state" yaml:"state"`
	// Name is the canonical name: the rename value, or the variant name
	Name string `json:"name" yaml:"name"`
	// Template is set when State is TemplateResolved
	Template *Template `json:"template,omitempty" yaml:"template,omitempty"`
	// Custom is the function name when State is CustomResolved
	Custom      string             `json:"custom,omitempty" yaml:"custom,omitempty"`
	Tests       []schema.Directive `json:"-" yaml:"-"`
	Diagnostics schema.Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// VariantName is the declared name of the variant.
func (r *Resolution) VariantName() string {
	return r.Variant.Name
}

// Enum groups the resolutions of one schema enum.
type Enum struct {
	Name     string
	Doc      []string
	Pos      schema.Pos
	Variants []*Resolution
}

// Schema is a fully resolved schema file.
type Schema struct {
	File  *schema.File
	Enums []*Enum
	// Diagnostics holds file-level and variant diagnostics, sorted by position
	Diagnostics schema.Diagnostics
}

// Err returns the schema's error diagnostics, or nil.
func (s *Schema) Err() error {
	return s.Diagnostics.Err()
}

// All returns every resolution in declaration order.
func (s *Schema) All() []*Resolution {
	var out []*Resolution
	for _, e := range s.Enums {
		out = append(out, e.Variants...)
	}
	return out
}

// Lookup finds the resolution of a variant by its declared name.
func (s *Schema) Lookup(variant string) (*Resolution, bool) {
	for _, e := range s.Enums {
		for _, r := range e.Variants {
			if r.Variant.Name == variant {
				return r, true
			}
		}
	}
	return nil, false
}

// Counts tallies resolutions by state.
func (s *Schema) Counts() map[State]int {
	counts := make(map[State]int)
	for _, r := range s.All() {
		counts[r.State]++
	}
	return counts
}

type options struct {
	version string
}

// Option configures Resolve.
type Option func(*options)

// WithVersion sets the generator version checked against the file's
// requires clause. The default is version.Version.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// Resolve computes the resolution of every variant in f. The returned Schema
// is always complete; the error is non-nil when any diagnostic is an error.
func Resolve(f *schema.File, opts ...Option) (*Schema, error) {
	o := options{version: version.Version}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Schema{File: f}

	if f.Requires != "" {
		s.Diagnostics.Add(checkRequires(f, o.version))
	}

	for i := range f.Enums {
		e := &f.Enums[i]
		re := &Enum{Name: e.Name, Doc: e.Doc, Pos: e.Pos}
		for j := range e.Variants {
			r := Variant(e.Name, &e.Variants[j])
			re.Variants = append(re.Variants, r)
			s.Diagnostics = append(s.Diagnostics, r.Diagnostics...)
		}
		s.Enums = append(s.Enums, re)
	}

	s.Diagnostics.Sort()
	if err := s.Err(); err != nil {
		return s, errors.Wrapf(err, "resolving %s", displayPath(f))
	}
	return s, nil
}

func checkRequires(f *schema.File, v string) *schema.Diagnostic {
	pos := schema.Pos{Filename: f.Path}
	ok, err := version.Satisfies(v, f.Requires)
	if err != nil {
		return schema.NewDiagnostic(schema.KindVersion, pos, "invalid requires constraint %q", f.Requires)
	}
	if !ok {
		return schema.NewDiagnostic(schema.KindVersion, pos, "schema requires expandgen %s, this is %s", f.Requires, v).
			WithSuggestions("upgrade expandgen or relax the requires clause")
	}
	return nil
}

func displayPath(f *schema.File) string {
	if f.Path == "" {
		return "<input>"
	}
	return f.Path
}

// Variant resolves a single variant of the named enum.
func Variant(enum string, v *schema.Variant) *Resolution {
	r := &Resolution{Enum: enum, Variant: v, Name: v.Name}
	r.Diagnostics = append(r.Diagnostics, v.Errors...)

	checkPlacement(r)

	var customs, templates, renames []schema.Directive
	for _, d := range v.Directives {
		switch d.Kind {
		case schema.Custom:
			customs = append(customs, d)
		case schema.Template:
			templates = append(templates, d)
		case schema.Rename:
			renames = append(renames, d)
		case schema.Test:
			r.Tests = append(r.Tests, d)
		}
	}

	if len(renames) > 0 {
		r.Name = renames[0].Value
		if strings.TrimSpace(r.Name) == "" {
			r.Diagnostics.Add(schema.NewDiagnostic(schema.KindUnsupported, renames[0].Pos, "rename of %s must not be empty", v.Name).
				WithDirective(renames[0].Text))
		}
		for _, d := range renames[1:] {
			r.Diagnostics.Add(schema.NewWarning(schema.KindShadowed, d.Pos, "only the first rename of %s applies", v.Name).
				WithDirective(d.Text))
		}
	}

	switch {
	case len(customs) > 0:
		r.State = CustomResolved
		r.Custom = customs[0].Value
		if !token.IsIdentifier(r.Custom) {
			r.Diagnostics.Add(schema.NewDiagnostic(schema.KindCustomFunc, customs[0].Pos, "custom function %q is not a Go identifier", r.Custom).
				WithDirective(customs[0].Text))
		}
		for _, d := range customs[1:] {
			r.Diagnostics.Add(schema.NewWarning(schema.KindShadowed, d.Pos, "custom function %q is never used; %s was declared first", d.Value, r.Custom).
				WithDirective(d.Text))
		}
		for _, d := range templates {
			r.Diagnostics.Add(schema.NewWarning(schema.KindShadowed, d.Pos, "template is never used; custom function %s takes priority", r.Custom).
				WithDirective(d.Text))
		}
		for _, d := range renames {
			r.Diagnostics.Add(schema.NewWarning(schema.KindShadowed, d.Pos, "rename has no effect on custom function %s", r.Custom).
				WithDirective(d.Text))
		}

	case len(templates) > 0:
		r.State = TemplateResolved
		first := templates[0]
		tpl, d := CompileTemplate(first.Value, v, first.Pos)
		if d != nil {
			r.Diagnostics.Add(d.WithDirective(first.Text))
		}
		r.Template = tpl
		for _, d := range templates[1:] {
			r.Diagnostics.Add(schema.NewWarning(schema.KindShadowed, d.Pos, "only the first template of %s applies", v.Name).
				WithDirective(d.Text))
		}
		if len(renames) > 0 && tpl != nil && !tpl.UsesName() {
			r.Diagnostics.Add(schema.NewWarning(schema.KindShadowed, renames[0].Pos, "rename has no effect; the template does not use {$}").
				WithDirective(renames[0].Text))
		}

	default:
		r.State = DefaultResolved
		if v.Shape == schema.Named {
			r.Diagnostics.Add(schema.NewDiagnostic(schema.KindMissingTemplate, v.Pos, "variant %s has named fields but no template", v.Name).
				WithSuggestions(`add @expand("... {label} ...")`, `or @expand(with = "fn")`))
		}
	}

	for _, d := range r.Tests {
		checkTest(r, d)
	}

	if r.Diagnostics.HasErrors() {
		r.State = Error
	}
	return r
}

func checkPlacement(r *Resolution) {
	v := r.Variant
	for _, d := range v.Directives {
		if d.Kind == schema.Ignore {
			r.Diagnostics.Add(schema.NewDiagnostic(schema.KindUnsupported, d.Pos, "ignore applies to fields, not to variant %s", v.Name).
				WithDirective(d.Text))
		}
	}
	for _, f := range v.Fields {
		for _, d := range f.Directives {
			if d.Kind != schema.Ignore && d.Kind != schema.Invalid {
				r.Diagnostics.Add(schema.NewDiagnostic(schema.KindUnsupported, d.Pos, "%s directive is not allowed on a field", d.Kind).
					WithDirective(d.Text))
			}
		}
	}
}

// checkTest reports test directives whose argument form cannot build the
// variant. A wrong argument count is only a warning: the generated test
// fails to compile, which is where such a mistake belongs.
func checkTest(r *Resolution, d schema.Directive) {
	v := r.Variant
	if d.Keyed && v.Shape != schema.Named {
		r.Diagnostics.Add(schema.NewDiagnostic(schema.KindUnsupported, d.Pos, "{label: value} test arguments need named fields, but %s is %s", v.Name, v.Shape).
			WithDirective(d.Text))
		return
	}
	if !d.Keyed && v.Shape == schema.Named {
		r.Diagnostics.Add(schema.NewDiagnostic(schema.KindUnsupported, d.Pos, "variant %s has named fields; write test = {label: value} => ...", v.Name).
			WithDirective(d.Text))
		return
	}

	args, err := d.TestArgs()
	if err != nil {
		r.Diagnostics.Add(schema.NewDiagnostic(schema.KindSyntax, d.Pos, "%v", err).
			WithDirective(d.Text))
		return
	}

	if !d.Keyed {
		if len(args) != len(v.Fields) {
			r.Diagnostics.Add(schema.NewWarning(schema.KindTestArity, d.Pos, "test has %d arguments, %s has %d fields", len(args), v.Name, len(v.Fields)).
				WithDirective(d.Text))
		}
		return
	}

	seen := make(map[string]bool)
	for _, a := range args {
		if _, ok := v.Field(a.Label); !ok {
			r.Diagnostics.Add(schema.NewWarning(schema.KindTestArity, d.Pos, "test sets unknown field %s of %s", a.Label, v.Name).
				WithDirective(d.Text))
		}
		if seen[a.Label] {
			r.Diagnostics.Add(schema.NewWarning(schema.KindTestArity, d.Pos, "test sets field %s twice", a.Label).
				WithDirective(d.Text))
		}
		seen[a.Label] = true
	}
}
