package codegen

import (
	"fmt"
	"strings"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
	"github.com/teranos/expandgen/testgen"
)

// TestGenerator emits one Go test per example.
type TestGenerator struct {
	opts   Options
	suffix string
}

// NewTestGenerator creates a generator writing files named <base><suffix>.
func NewTestGenerator(opts Options, suffix string) *TestGenerator {
	return &TestGenerator{opts: opts.withDefaults(), suffix: suffix}
}

// Kind returns "test"
func (g *TestGenerator) Kind() string { return "test" }

// Suffix returns the file name suffix
func (g *TestGenerator) Suffix() string { return g.suffix }

// Generate emits the test file, or nil when the schema has no examples.
func (g *TestGenerator) Generate(s *resolve.Schema) ([]byte, error) {
	if err := checkSchema(s, g.opts); err != nil {
		return nil, err
	}
	if g.opts.Assert != AssertTestify && g.opts.Assert != AssertStd {
		return nil, errors.Newf("unknown assertion style %q", g.opts.Assert)
	}

	cases, err := testgen.Cases(s)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	header(&sb, s, g.opts)
	sb.WriteString("import (\n")
	sb.WriteString("\t\"testing\"\n\n")
	if g.opts.Assert == AssertTestify {
		sb.WriteString("\t\"github.com/stretchr/testify/assert\"\n")
	}
	sb.WriteString(fmt.Sprintf("\t%q\n", RuntimeImport))
	sb.WriteString(")\n")

	for _, c := range cases {
		sb.WriteString("\n")
		if err := g.generateCase(&sb, c); err != nil {
			return nil, err
		}
	}

	return format(schema.BaseName(s.File.Path)+g.suffix, []byte(sb.String()))
}

func (g *TestGenerator) generateCase(sb *strings.Builder, c testgen.Case) error {
	lit, err := c.Literal(c.Variant)
	if err != nil {
		return err
	}

	sb.WriteString(fmt.Sprintf("func %s(t *testing.T) {\n", c.Name))
	sb.WriteString(fmt.Sprintf("\tv := %s\n", lit))
	switch g.opts.Assert {
	case AssertStd:
		sb.WriteString(fmt.Sprintf("\tif got, want := v.ExpandCLI(), %s; got != want {\n", quote(c.Expected)))
		sb.WriteString("\t\tt.Errorf(\"ExpandCLI() = %q, want %q\", got, want)\n")
		sb.WriteString("\t}\n")
	default:
		sb.WriteString(fmt.Sprintf("\tassert.Equal(t, %s, v.ExpandCLI())\n", quote(c.Expected)))
	}
	sb.WriteString("}\n")
	return nil
}
