package schema

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Format prints f in canonical .expand syntax. Parsing the output yields a
// File with the same enums, variants, fields and directives in the same order.
// Only doc comments (those directly above a declaration) are preserved.
func Format(f *File) []byte {
	var b bytes.Buffer
	p := printer{&b}

	sections := 0
	if f.Package != "" {
		fmt.Fprintf(&b, "package %s\n", f.Package)
		sections++
	}
	if f.Requires != "" {
		if sections > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "requires %s\n", strconv.Quote(f.Requires))
		sections++
	}
	for _, e := range f.Enums {
		if sections > 0 {
			b.WriteByte('\n')
		}
		p.enum(e)
		sections++
	}
	return b.Bytes()
}

type printer struct {
	b *bytes.Buffer
}

func (p printer) doc(indent string, lines []string) {
	for _, l := range lines {
		p.b.WriteString(indent)
		p.b.WriteString(l)
		p.b.WriteByte('\n')
	}
}

func (p printer) enum(e Enum) {
	p.doc("", e.Doc)
	fmt.Fprintf(p.b, "enum %s {\n", e.Name)
	for i, v := range e.Variants {
		if i > 0 && (len(v.Directives) > 0 || len(v.Doc) > 0) {
			p.b.WriteByte('\n')
		}
		p.variant(v)
	}
	p.b.WriteString("}\n")
}

func (p printer) variant(v Variant) {
	p.doc("\t", v.Doc)
	for _, d := range v.Directives {
		fmt.Fprintf(p.b, "\t%s\n", FormatDirective(d))
	}
	p.b.WriteString("\t" + v.Name)

	switch v.Shape {
	case Positional:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = fieldPrefix(f) + f.Type
		}
		fmt.Fprintf(p.b, "(%s)", strings.Join(parts, ", "))
	case Named:
		if len(v.Fields) == 0 {
			p.b.WriteString(" {}")
			break
		}
		p.b.WriteString(" {\n")
		for _, f := range v.Fields {
			p.doc("\t\t", f.Doc)
			for _, d := range f.Directives {
				fmt.Fprintf(p.b, "\t\t%s\n", FormatDirective(d))
			}
			fmt.Fprintf(p.b, "\t\t%s %s,\n", f.Label, f.Type)
		}
		p.b.WriteString("\t}")
	}
	p.b.WriteByte('\n')
}

// fieldPrefix renders the inline annotations of a positional field.
func fieldPrefix(f Field) string {
	var s strings.Builder
	for _, d := range f.Directives {
		s.WriteString(FormatDirective(d))
		s.WriteByte(' ')
	}
	return s.String()
}

// FormatDirective prints a directive in canonical @expand(...) syntax.
func FormatDirective(d Directive) string {
	switch d.Kind {
	case Template:
		return fmt.Sprintf("@expand(%s)", strconv.Quote(d.Value))
	case Custom:
		return fmt.Sprintf("@expand(with = %s)", strconv.Quote(d.Value))
	case Rename:
		return fmt.Sprintf("@expand(rename = %s)", strconv.Quote(d.Value))
	case Ignore:
		return "@expand(ignore)"
	case Test:
		open, close := "(", ")"
		if d.Keyed {
			open, close = "{", "}"
		}
		return fmt.Sprintf("@expand(test = %s%s%s => %s)", open, d.Args, close, strconv.Quote(d.Value))
	case Invalid:
		return d.Text
	default:
		return d.Text
	}
}
