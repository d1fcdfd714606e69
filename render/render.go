// Package render renders variant values through a resolved schema without
// generating code. It backs the render and verify commands and is the
// reference the generated code is tested against.
//
// A Table is built once with Compile and is safe for concurrent use.
package render

import (
	"reflect"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/expand"
	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
)

// CustomFunc renders a whole value to its final argument string.
type CustomFunc func(v any) string

// Instance is a variant value described by name instead of a Go type.
type Instance struct {
	Variant string
	// Args holds positional field values, ignored fields included
	Args []any
	// Named holds named field values by label; missing labels are nil
	Named map[string]any
}

type options struct {
	custom           map[string]CustomFunc
	skipUnregistered bool
	logger           *zap.SugaredLogger
}

// Option configures Compile.
type Option func(*options)

// WithCustom registers the function named by @expand(with = name).
func WithCustom(name string, fn CustomFunc) Option {
	return func(o *options) {
		o.custom[name] = fn
	}
}

// SkipUnregisteredCustom lets Compile succeed when a custom function has no
// registration. Rendering such a variant returns an error.
func SkipUnregisteredCustom() Option {
	return func(o *options) {
		o.skipUnregistered = true
	}
}

// WithLogger sets the logger used while compiling.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

type entry struct {
	res    *resolve.Resolution
	custom CustomFunc
}

// Table maps variant names to their renderers.
type Table struct {
	schema  *resolve.Schema
	entries map[string]*entry
}

// Compile builds the dispatch table of a resolved schema. It fails when any
// variant resolved to an error or when a custom function is not registered.
func Compile(s *resolve.Schema, opts ...Option) (*Table, error) {
	o := options{custom: make(map[string]CustomFunc), logger: logger.ComponentLogger("render")}
	for _, opt := range opts {
		opt(&o)
	}

	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot compile a schema with errors")
	}

	t := &Table{schema: s, entries: make(map[string]*entry)}
	used := make(map[string]bool)
	var missing []string

	for _, r := range s.All() {
		e := &entry{res: r}
		if r.State == resolve.CustomResolved {
			fn, ok := o.custom[r.Custom]
			switch {
			case ok:
				e.custom = fn
				used[r.Custom] = true
			case o.skipUnregistered:
				o.logger.Debugw("Custom function not registered",
					logger.FieldVariant, r.VariantName(),
					"function", r.Custom)
			default:
				missing = append(missing, r.VariantName()+": "+r.Custom)
			}
		}
		t.entries[r.VariantName()] = e
	}

	if len(missing) > 0 {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrCustomFunc, "no registration for custom functions %v", missing),
			"register each function with render.WithCustom")
	}

	for name := range o.custom {
		if !used[name] {
			o.logger.Warnw("Registered custom function is never referenced", "function", name)
		}
	}

	o.logger.Debugw("Compiled render table", logger.FieldCount, len(t.entries))
	return t, nil
}

// Schema returns the resolved schema the table was built from.
func (t *Table) Schema() *resolve.Schema {
	return t.schema
}

// Has reports whether variant is in the table.
func (t *Table) Has(variant string) bool {
	_, ok := t.entries[variant]
	return ok
}

// Variants lists the variant names in declaration order.
func (t *Table) Variants() []string {
	var names []string
	for _, r := range t.schema.All() {
		names = append(names, r.VariantName())
	}
	return names
}

// Render returns the token list of v, an Instance or a struct whose type
// name is a variant name.
func (t *Table) Render(v any) ([]string, error) {
	_, tokens, err := t.render(v)
	return tokens, err
}

// RenderJoined returns the command line argument string of v. Custom
// function output is returned verbatim.
func (t *Table) RenderJoined(v any) (string, error) {
	e, tokens, err := t.render(v)
	if err != nil {
		return "", err
	}
	if e.res.State == resolve.CustomResolved {
		return tokens[0], nil
	}
	return expand.Join(tokens), nil
}

func (t *Table) render(v any) (*entry, []string, error) {
	e, fields, err := t.lookup(v)
	if err != nil {
		return nil, nil, err
	}

	r := e.res
	switch r.State {
	case resolve.CustomResolved:
		if e.custom == nil {
			return nil, nil, errors.Wrapf(errors.ErrCustomFunc, "variant %s: custom function %s is not registered", r.VariantName(), r.Custom)
		}
		return e, []string{e.custom(v)}, nil

	case resolve.TemplateResolved:
		out := r.Template.Execute(r.Name, func(i int) string {
			return expand.Text(fields[i])
		})
		return e, expand.SplitTemplate(out), nil

	case resolve.DefaultResolved:
		var values []string
		for _, f := range r.Variant.Rendered() {
			values = append(values, expand.Text(fields[f.Index]))
		}
		return e, expand.Default(r.Name, values...), nil
	}

	return nil, nil, errors.AssertionFailedf("variant %s in state %s reached the render table", r.VariantName(), r.State)
}

// Join assembles tokens into a single argument string.
func Join(tokens []string) string {
	return expand.Join(tokens)
}

// ShellJoin quotes tokens for display as a shell command line.
func ShellJoin(tokens []string) string {
	return shellquote.Join(tokens...)
}

// lookup finds the entry for v and returns its field values by index.
func (t *Table) lookup(v any) (*entry, []any, error) {
	switch x := v.(type) {
	case Instance:
		return t.instance(&x)
	case *Instance:
		return t.instance(x)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil, errors.Wrapf(errors.ErrUnknownVariant, "cannot render %T", v)
	}

	name := rv.Type().Name()
	e, ok := t.entries[name]
	if !ok {
		return nil, nil, t.unknown(name)
	}

	fields := make([]any, len(e.res.Variant.Fields))
	for i, f := range e.res.Variant.Fields {
		fv := rv.FieldByName(f.GoName())
		if !fv.IsValid() {
			return nil, nil, errors.Wrapf(errors.ErrArity, "struct %s has no field %s", name, f.GoName())
		}
		if fv.CanInterface() {
			fields[i] = fv.Interface()
		}
	}
	return e, fields, nil
}

func (t *Table) unknown(name string) error {
	err := errors.Wrapf(errors.ErrUnknownVariant, "%s", name)
	ranks := fuzzy.RankFindNormalizedFold(name, t.Variants())
	if len(ranks) == 0 {
		return err
	}
	sort.Sort(ranks)
	return errors.WithHintf(err, "did you mean %s?", ranks[0].Target)
}

func (t *Table) instance(in *Instance) (*entry, []any, error) {
	e, ok := t.entries[in.Variant]
	if !ok {
		return nil, nil, t.unknown(in.Variant)
	}

	v := e.res.Variant
	fields := make([]any, len(v.Fields))

	switch v.Shape {
	case schema.Named:
		if len(in.Args) > 0 {
			return nil, nil, errors.Wrapf(errors.ErrArity, "variant %s has named fields, got positional arguments", v.Name)
		}
		for label := range in.Named {
			if _, ok := v.Field(label); !ok {
				return nil, nil, errors.Wrapf(errors.ErrArity, "variant %s has no field %s", v.Name, label)
			}
		}
		for i, f := range v.Fields {
			fields[i] = in.Named[f.Label]
		}
	default:
		if len(in.Named) > 0 {
			return nil, nil, errors.Wrapf(errors.ErrArity, "variant %s is %s, got named arguments", v.Name, v.Shape)
		}
		if len(in.Args) != len(v.Fields) {
			return nil, nil, errors.Wrapf(errors.ErrArity, "variant %s takes %d arguments, got %d", v.Name, len(v.Fields), len(in.Args))
		}
		copy(fields, in.Args)
	}
	return e, fields, nil
}
