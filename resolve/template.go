package resolve

import (
	"fmt"
	"strings"

	"github.com/teranos/expandgen/schema"
)

// SegmentKind identifies a piece of a compiled template.
type SegmentKind int

const (
	// Literal text copied to the output
	Literal SegmentKind = iota
	// FieldRef substitutes the text of one field
	FieldRef
	// NameRef substitutes the canonical variant name
	NameRef
)

func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case FieldRef:
		return "field"
	case NameRef:
		return "name"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a compiled template.
type Segment struct {
	Kind SegmentKind `json:"kind" yaml:"kind"`
	// Text is set for Literal segments
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Field is the field index for FieldRef segments
	Field int `json:"field,omitempty" yaml:"field,omitempty"`
}

// Template is a pattern compiled against one variant's fields.
type Template struct {
	Pattern  string    `json:"pattern" yaml:"pattern"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

// UsesName reports whether the template contains {$}.
func (t *Template) UsesName() bool {
	for _, s := range t.Segments {
		if s.Kind == NameRef {
			return true
		}
	}
	return false
}

// Execute renders the template. field returns the text of the field at index i.
func (t *Template) Execute(name string, field func(i int) string) string {
	var b strings.Builder
	for _, s := range t.Segments {
		switch s.Kind {
		case Literal:
			b.WriteString(s.Text)
		case FieldRef:
			b.WriteString(field(s.Field))
		case NameRef:
			b.WriteString(name)
		}
	}
	return b.String()
}

// CompileTemplate checks pattern against v and splits it into segments.
//
// Placeholders:
//
//	{}       the next non-ignored positional field
//	{label}  the named field with that label
//	{$}      the canonical variant name
//	{{ }}    literal braces
//
// Every non-ignored field must be substituted exactly once by {} or at least
// once by {label}. The returned diagnostic is positioned at pos.
func CompileTemplate(pattern string, v *schema.Variant, pos schema.Pos) (*Template, *schema.Diagnostic) {
	var (
		segs []Segment
		lit  strings.Builder
		used = make(map[int]bool)
		next int
	)

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}
	fail := func(kind schema.Kind, format string, args ...interface{}) (*Template, *schema.Diagnostic) {
		return nil, schema.NewDiagnostic(kind, pos, format, args...)
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '{' && strings.HasPrefix(pattern[i:], "{{"):
			lit.WriteByte('{')
			i += 2
		case c == '}' && strings.HasPrefix(pattern[i:], "}}"):
			lit.WriteByte('}')
			i += 2
		case c == '}':
			return fail(schema.KindTemplate, "unmatched '}' at offset %d of template %q", i, pattern)
		case c == '{':
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return fail(schema.KindTemplate, "unclosed '{' at offset %d of template %q", i, pattern)
			}
			name := pattern[i+1 : i+1+end]
			i += end + 2
			flush()

			switch {
			case name == "":
				if v.Shape == schema.Named {
					d := schema.NewDiagnostic(schema.KindTemplate, pos, "{} cannot be used with named fields of %s", v.Name)
					return nil, d.WithSuggestions(labelHint(v))
				}
				for next < len(v.Fields) && v.Fields[next].Ignore {
					next++
				}
				if next >= len(v.Fields) {
					return fail(schema.KindTemplateArity, "template %q has more {} placeholders than %s has rendered fields (%d)",
						pattern, v.Name, len(v.Rendered()))
				}
				segs = append(segs, Segment{Kind: FieldRef, Field: next})
				used[next] = true
				next++
			case name == "$":
				segs = append(segs, Segment{Kind: NameRef})
			case strings.HasPrefix(name, ":"):
				d := schema.NewDiagnostic(schema.KindTemplate, pos, "format specifier {%s} is not supported", name)
				return nil, d.WithSuggestions("fields render through their String method; use {} or {label}")
			case strings.ContainsRune(name, '{'):
				return fail(schema.KindTemplate, "invalid placeholder {%s} in template %q", name, pattern)
			default:
				if v.Shape != schema.Named {
					return fail(schema.KindTemplate, "placeholder {%s} needs named fields, but %s is %s", name, v.Name, v.Shape)
				}
				f, ok := v.Field(name)
				if !ok {
					d := schema.NewDiagnostic(schema.KindTemplate, pos, "unknown field {%s} in template for %s", name, v.Name)
					return nil, d.WithSuggestions(labelHint(v))
				}
				if f.Ignore {
					return fail(schema.KindTemplate, "field %s of %s is ignored and cannot appear in the template", name, v.Name)
				}
				segs = append(segs, Segment{Kind: FieldRef, Field: f.Index})
				used[f.Index] = true
			}
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	for _, f := range v.Rendered() {
		if used[f.Index] {
			continue
		}
		if f.Label != "" {
			d := schema.NewDiagnostic(schema.KindTemplateArity, pos, "field %s of %s is not used by the template", f.Label, v.Name)
			return nil, d.WithSuggestions(fmt.Sprintf("add {%s} or mark the field @expand(ignore)", f.Label))
		}
		d := schema.NewDiagnostic(schema.KindTemplateArity, pos, "template %q uses %d of %d rendered fields of %s",
			pattern, len(used), len(v.Rendered()), v.Name)
		return nil, d.WithSuggestions("add {} or mark the extra fields @expand(ignore)")
	}

	return &Template{Pattern: pattern, Segments: segs}, nil
}

func labelHint(v *schema.Variant) string {
	var labels []string
	for _, f := range v.Rendered() {
		labels = append(labels, "{"+f.Label+"}")
	}
	if len(labels) == 0 {
		return "all fields are ignored"
	}
	return "fields: " + strings.Join(labels, ", ")
}
