package codegen

import (
	"fmt"
	"strings"

	"github.com/teranos/expandgen/expand"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
)

// SourceGenerator emits the sum types and their render methods.
type SourceGenerator struct {
	opts   Options
	suffix string
}

// NewSourceGenerator creates a generator writing files named <base><suffix>.
func NewSourceGenerator(opts Options, suffix string) *SourceGenerator {
	return &SourceGenerator{opts: opts.withDefaults(), suffix: suffix}
}

// Kind returns "source"
func (g *SourceGenerator) Kind() string { return "source" }

// Suffix returns the file name suffix
func (g *SourceGenerator) Suffix() string { return g.suffix }

// Generate emits the Go source for every enum of s.
func (g *SourceGenerator) Generate(s *resolve.Schema) ([]byte, error) {
	if err := checkSchema(s, g.opts); err != nil {
		return nil, err
	}

	var sb strings.Builder
	header(&sb, s, g.opts)
	sb.WriteString(fmt.Sprintf("import %q\n", RuntimeImport))

	for _, e := range s.Enums {
		sb.WriteString("\n")
		generateEnum(&sb, e)
	}

	return format(schema.BaseName(s.File.Path)+g.suffix, []byte(sb.String()))
}

func generateEnum(sb *strings.Builder, e *resolve.Enum) {
	writeDoc(sb, "", e.Doc, fmt.Sprintf("%s is one of the variants declared by enum %s.", e.Name, e.Name))
	sb.WriteString(fmt.Sprintf("type %s interface {\n", e.Name))
	sb.WriteString("\t// Expand returns the command line tokens of the value.\n")
	sb.WriteString("\tExpand() []string\n")
	sb.WriteString("\t// ExpandCLI returns the tokens joined into one argument string.\n")
	sb.WriteString("\tExpandCLI() string\n")
	sb.WriteString(fmt.Sprintf("\tis%s()\n", e.Name))
	sb.WriteString("}\n")

	for _, r := range e.Variants {
		sb.WriteString("\n")
		generateVariant(sb, e.Name, r)
	}

	sb.WriteString("\n")
	generateDispatch(sb, e)
}

func generateVariant(sb *strings.Builder, enum string, r *resolve.Resolution) {
	v := r.Variant
	writeDoc(sb, "", v.Doc, "")
	if len(v.Fields) == 0 {
		sb.WriteString(fmt.Sprintf("type %s struct{}\n\n", v.Name))
	} else {
		sb.WriteString(fmt.Sprintf("type %s struct {\n", v.Name))
		for _, f := range v.Fields {
			writeDoc(sb, "\t", f.Doc, "")
			sb.WriteString(fmt.Sprintf("\t%s %s\n", f.GoName(), f.Type))
		}
		sb.WriteString("}\n\n")
	}

	sb.WriteString(fmt.Sprintf("func (%s) is%s() {}\n\n", v.Name, enum))

	recv := v.Name
	if usesReceiver(r) {
		recv = "v " + v.Name
	}

	sb.WriteString(fmt.Sprintf("func (%s) Expand() []string {\n", recv))
	sb.WriteString("\treturn " + expandExpr(r) + "\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("func (v %s) ExpandCLI() string {\n", v.Name))
	if r.State == resolve.CustomResolved {
		sb.WriteString(fmt.Sprintf("\treturn %s(v)\n", r.Custom))
	} else {
		sb.WriteString("\treturn expand.Join(v.Expand())\n")
	}
	sb.WriteString("}\n")
}

func generateDispatch(sb *strings.Builder, e *resolve.Enum) {
	dispatch := func(name, result, method, zero string) {
		sb.WriteString(fmt.Sprintf("func %s(v %s) %s {\n", name, e.Name, result))
		if len(e.Variants) > 0 {
			sb.WriteString("\tswitch v := v.(type) {\n")
			for _, r := range e.Variants {
				sb.WriteString(fmt.Sprintf("\tcase %s:\n", r.VariantName()))
				sb.WriteString(fmt.Sprintf("\t\treturn v.%s()\n", method))
			}
			sb.WriteString("\t}\n")
		}
		sb.WriteString("\treturn " + zero + "\n")
		sb.WriteString("}\n")
	}

	sb.WriteString(fmt.Sprintf("// Expand%s returns the command line tokens of v, or nil when v is nil.\n", e.Name))
	dispatch("Expand"+e.Name, "[]string", "Expand", "nil")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("// Expand%sCLI returns the argument string of v, or \"\" when v is nil.\n", e.Name))
	dispatch("Expand"+e.Name+"CLI", "string", "ExpandCLI", `""`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("// Expand%sArgs concatenates the tokens of vs in order.\n", e.Name))
	sb.WriteString(fmt.Sprintf("func Expand%sArgs(vs ...%s) []string {\n", e.Name, e.Name))
	sb.WriteString("\tvar args []string\n")
	sb.WriteString("\tfor _, v := range vs {\n")
	sb.WriteString("\t\targs = append(args, v.Expand()...)\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn args\n")
	sb.WriteString("}\n")
}

func usesReceiver(r *resolve.Resolution) bool {
	switch r.State {
	case resolve.CustomResolved:
		return true
	case resolve.TemplateResolved:
		for _, seg := range r.Template.Segments {
			if seg.Kind == resolve.FieldRef {
				return true
			}
		}
		return false
	default:
		return len(r.Variant.Rendered()) > 0
	}
}

// expandExpr is the Go expression returned by a variant's Expand method.
func expandExpr(r *resolve.Resolution) string {
	v := r.Variant
	switch r.State {
	case resolve.CustomResolved:
		return fmt.Sprintf("[]string{%s(v)}", r.Custom)

	case resolve.TemplateResolved:
		if !usesReceiver(r) {
			text := r.Template.Execute(r.Name, func(int) string { return "" })
			return stringSlice(expand.SplitTemplate(text))
		}
		return "expand.SplitTemplate(" + templateExpr(r) + ")"

	default:
		args := []string{quote(r.Name)}
		for _, f := range v.Rendered() {
			args = append(args, fieldText(f))
		}
		return "expand.Default(" + strings.Join(args, ", ") + ")"
	}
}

func templateExpr(r *resolve.Resolution) string {
	var (
		parts   []string
		lit     strings.Builder
		pending bool
	)
	flush := func() {
		if pending {
			parts = append(parts, quote(lit.String()))
			lit.Reset()
			pending = false
		}
	}

	for _, seg := range r.Template.Segments {
		switch seg.Kind {
		case resolve.Literal:
			lit.WriteString(seg.Text)
			pending = true
		case resolve.NameRef:
			lit.WriteString(r.Name)
			pending = true
		case resolve.FieldRef:
			flush()
			parts = append(parts, fieldText(r.Variant.Fields[seg.Field]))
		}
	}
	flush()
	return strings.Join(parts, " + ")
}

func fieldText(f schema.Field) string {
	return "expand.Text(v." + f.GoName() + ")"
}

func stringSlice(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// writeDoc copies schema comment lines, or writes fallback as a line comment.
func writeDoc(sb *strings.Builder, indent string, doc []string, fallback string) {
	if len(doc) == 0 {
		if fallback != "" {
			sb.WriteString(indent + "// " + fallback + "\n")
		}
		return
	}
	for _, line := range doc {
		for _, l := range strings.Split(line, "\n") {
			sb.WriteString(indent + strings.TrimRight(l, " \t") + "\n")
		}
	}
}
