package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/schema"
)

const sample = `// Flags for the demo.
package demo

requires ">= 0.1.0"

// Flag is a command line flag.
enum Flag {
	// ConfigFile points at a torrc.
	@expand("-f {}")
	@expand(test = ("filename") => "-f \"filename\"")
	ConfigFile(string)

	BandwidthRate(int, SizeUnit)
	ControlPortAuto // trailing comment
	@expand(rename = "SocksPort")
	SocksPortAddress(Address, @expand(ignore) *string)
	@expand(with = "logExpand")
	Log(LogLevel),
}

enum Subcommand {
	@expand("--hash-password {password}")
	@expand(test = {password: "secret"} => "--hash-password \"secret\"")
	HashPassword { password string }
	@expand("--keygen")
	Keygen {
		@expand(ignore)
		password *string,
	}
}
`

func TestParse_Sample(t *testing.T) {
	f, err := Parse("demo.expand", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "demo", f.Package)
	assert.Equal(t, ">= 0.1.0", f.Requires)
	require.Len(t, f.Enums, 2)

	flag := f.Enums[0]
	assert.Equal(t, "Flag", flag.Name)
	assert.Equal(t, []string{"// Flag is a command line flag."}, flag.Doc)

	var names []string
	for _, v := range flag.Variants {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"ConfigFile", "BandwidthRate", "ControlPortAuto", "SocksPortAddress", "Log"}, names)

	cf := flag.Variants[0]
	assert.Equal(t, schema.Positional, cf.Shape)
	assert.Equal(t, []string{"// ConfigFile points at a torrc."}, cf.Doc)
	assert.Equal(t, schema.Pos{Filename: "demo.expand", Offset: cf.Pos.Offset, Line: 11, Column: 2}, cf.Pos)
	require.Len(t, cf.Fields, 1)
	assert.Equal(t, "string", cf.Fields[0].Type)
	assert.Equal(t, "F0", cf.Fields[0].GoName())
	require.Len(t, cf.Directives, 2)
	assert.Equal(t, schema.Template, cf.Directives[0].Kind)
	assert.Equal(t, "-f {}", cf.Directives[0].Value)
	assert.Equal(t, `@expand("-f {}")`, cf.Directives[0].Text)
	assert.Equal(t, 9, cf.Directives[0].Pos.Line)
	assert.Equal(t, schema.Test, cf.Directives[1].Kind)
	assert.Equal(t, `"filename"`, cf.Directives[1].Args)
	assert.Equal(t, `-f "filename"`, cf.Directives[1].Value)
	assert.False(t, cf.Directives[1].Keyed)
	assert.Empty(t, cf.Errors)

	br := flag.Variants[1]
	assert.Equal(t, []string{"int", "SizeUnit"}, []string{br.Fields[0].Type, br.Fields[1].Type})
	assert.Empty(t, br.Doc)

	cpa := flag.Variants[2]
	assert.Equal(t, schema.Unit, cpa.Shape)
	assert.Empty(t, cpa.Fields)

	spa := flag.Variants[3]
	require.Len(t, spa.Fields, 2)
	assert.False(t, spa.Fields[0].Ignore)
	assert.True(t, spa.Fields[1].Ignore)
	assert.Equal(t, "*string", spa.Fields[1].Type)
	assert.Equal(t, 1, spa.Fields[1].Index)
	assert.Len(t, spa.Rendered(), 1)
	assert.Equal(t, "SocksPort", spa.DirectivesOf(schema.Rename)[0].Value)

	lg := flag.Variants[4]
	assert.Equal(t, schema.Custom, lg.Directives[0].Kind)
	assert.Equal(t, "logExpand", lg.Directives[0].Value)

	sub := f.Enums[1]
	hp := sub.Variants[0]
	assert.Equal(t, schema.Named, hp.Shape)
	require.Len(t, hp.Fields, 1)
	assert.Equal(t, "password", hp.Fields[0].Label)
	assert.Equal(t, "Password", hp.Fields[0].GoName())
	assert.True(t, hp.Directives[1].Keyed)
	assert.Equal(t, `password: "secret"`, hp.Directives[1].Args)

	kg := sub.Variants[1]
	require.Len(t, kg.Fields, 1)
	assert.True(t, kg.Fields[0].Ignore)
	assert.Empty(t, kg.Rendered())

	e, v, ok := f.Variant("Keygen")
	require.True(t, ok)
	assert.Equal(t, "Subcommand", e.Name)
	assert.Equal(t, "Keygen", v.Name)
	_, _, ok = f.Variant("Nope")
	assert.False(t, ok)
}

func TestParse_DirectiveErrors(t *testing.T) {
	tests := []struct {
		name       string
		annotation string
		kind       schema.Kind
		suggestion string
	}{
		{"unknown keyword", `@expand(foo = "x")`, schema.KindUnknownDirective, "valid directives"},
		{"misspelled keyword", `@expand(renme = "x")`, schema.KindUnknownDirective, "did you mean rename?"},
		{"missing equals", `@expand(rename "x")`, schema.KindMalformedPair, `rename = "..."`},
		{"rename identifier", `@expand(rename = X)`, schema.KindExpectedString, `rename = "X"`},
		{"with number", `@expand(with = 42)`, schema.KindExpectedString, ""},
		{"with empty", `@expand(with = "")`, schema.KindSyntax, ""},
		{"test without arrow", `@expand(test = (1) "x")`, schema.KindMissingArrow, ""},
		{"test split arrow", `@expand(test = (1) = > "x")`, schema.KindMissingArrow, ""},
		{"test output not string", `@expand(test = (1) => X)`, schema.KindExpectedString, ""},
		{"test bare args", `@expand(test = 1 => "x")`, schema.KindMalformedPair, ""},
		{"test trailing", `@expand(test = (1) => "x" "y")`, schema.KindSyntax, ""},
		{"empty", `@expand()`, schema.KindSyntax, ""},
		{"two templates", `@expand("a" "b")`, schema.KindSyntax, ""},
		{"ignore with value", `@expand(ignore = true)`, schema.KindMalformedPair, ""},
		{"number", `@expand(42)`, schema.KindSyntax, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "enum E {\n\t" + tt.annotation + "\n\tA(int)\n\tB\n}\n"
			f, err := Parse("e.expand", []byte(src))
			require.NoError(t, err)
			require.Len(t, f.Enums[0].Variants, 2)

			a := f.Enums[0].Variants[0]
			require.Len(t, a.Directives, 1)
			assert.Equal(t, schema.Invalid, a.Directives[0].Kind)
			assert.Equal(t, tt.annotation, a.Directives[0].Text)
			require.Len(t, a.Errors, 1)

			d := a.Errors[0]
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.annotation, d.Directive)
			assert.Equal(t, 2, d.Pos.Line)
			assert.True(t, errors.Is(d, errors.ErrSyntax))
			if tt.suggestion != "" {
				require.NotEmpty(t, d.Suggestions)
				assert.Contains(t, d.Suggestions[0], tt.suggestion)
			}

			assert.Empty(t, f.Enums[0].Variants[1].Errors)
		})
	}
}

func TestParse_FieldDirectiveErrorsLandOnVariant(t *testing.T) {
	src := "enum E {\n\tA(@expand(ignor) int, string)\n}\n"
	f, err := Parse("e.expand", []byte(src))
	require.NoError(t, err)

	a := f.Enums[0].Variants[0]
	require.Len(t, a.Fields, 2)
	assert.False(t, a.Fields[0].Ignore)
	require.Len(t, a.Fields[0].Directives, 1)
	assert.Equal(t, schema.Invalid, a.Fields[0].Directives[0].Kind)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, schema.KindUnknownDirective, a.Errors[0].Kind)
	assert.Equal(t, []string{"did you mean ignore?"}, a.Errors[0].Suggestions)
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains string
		sentinel error
	}{
		{"unclosed enum", "enum E {\n\tA\n", "not closed", errors.ErrSyntax},
		{"missing variant name", `enum E { @expand("x") }`, "expected variant name", errors.ErrSyntax},
		{"unbalanced type", `enum E { A(map[string) }`, "unbalanced", errors.ErrSyntax},
		{"invalid type", `enum E { A(int int) }`, "invalid field type", errors.ErrSyntax},
		{"missing type", `enum E { A(, int) }`, "expected field type", errors.ErrSyntax},
		{"missing comma", `enum E { A { x int y int } }`, "invalid field type", errors.ErrSyntax},
		{"empty enum", `enum E {}`, "has no variants", errors.ErrSyntax},
		{"junk at top level", `@expand("x") enum E { A }`, "expected enum declaration", errors.ErrSyntax},
		{"late package", "enum E { A }\npackage p\n", "package clause must come first", errors.ErrSyntax},
		{"late requires", "enum E { A }\nrequires \"^1\"\n", "requires clause", errors.ErrSyntax},
		{"requires not string", "requires 1\n", "string literal", errors.ErrSyntax},
		{"unterminated string", "enum E {\n\t@expand(\"oops)\n\tA\n}\n", "literal not terminated", errors.ErrSyntax},
		{"unbalanced annotation", `enum E { @expand("x" } A }`, "unbalanced", errors.ErrSyntax},
		{"not expand", `enum E { @derive("x") A }`, "expected expand", errors.ErrSyntax},
		{"unclosed annotation", `enum E { @expand("x"`, "not closed", errors.ErrSyntax},
		{"duplicate variant", "enum E { A B A }", "variant A redeclared", errors.ErrDuplicate},
		{"variant shadows enum", "enum E { A }\nenum F { E }", "variant E redeclared", errors.ErrDuplicate},
		{"duplicate enum", "enum E { A }\nenum E { B }", "enum E redeclared", errors.ErrDuplicate},
		{"duplicate field", "enum E { A { x int, X int } }", "field X of A redeclared", errors.ErrDuplicate},
		{"keyword variant", "enum E { A type }", "variant name type is a Go keyword", errors.ErrUnsupported},
		{"predeclared variant", "enum E { A string }", "variant name string is a predeclared Go identifier", errors.ErrUnsupported},
		{"predeclared enum", "enum error { A }", "enum name error is a predeclared Go identifier", errors.ErrUnsupported},
		{"blank variant", "enum E { _ }", "variant name _ is a predeclared", errors.ErrUnsupported},
		{"imported package name", "enum E { expand }", "collides with a package imported", errors.ErrUnsupported},
		{"dispatch function", "enum E { A ExpandE }", "variant ExpandE collides with the generated function of enum E", errors.ErrDuplicate},
		{"args function", "enum E { A }\nenum ExpandFCLI { B }\nenum F { C }", "enum ExpandFCLI collides with the generated function of enum F", errors.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse("e.expand", []byte(tt.src))
			require.Error(t, err)
			assert.Nil(t, f)
			assert.Contains(t, err.Error(), tt.contains)
			assert.True(t, errors.Is(err, tt.sentinel), "error %v does not wrap %v", err, tt.sentinel)
			assert.True(t, strings.HasPrefix(err.Error(), "e.expand:"), err.Error())
		})
	}
}

func TestParse_VariantSeparators(t *testing.T) {
	f, err := Parse("e.expand", []byte(`enum E { A, B(int), C { x int }, D() }`))
	require.NoError(t, err)

	vs := f.Enums[0].Variants
	require.Len(t, vs, 4)
	assert.Equal(t, schema.Unit, vs[0].Shape)
	assert.Equal(t, schema.Positional, vs[1].Shape)
	assert.Equal(t, schema.Named, vs[2].Shape)
	assert.Equal(t, schema.Positional, vs[3].Shape)
	assert.Empty(t, vs[3].Fields)
}

func TestParse_ComplexTypes(t *testing.T) {
	src := "enum E {\n\tA(map[string][]int, expand.List[Flag], func(int) string, *[2]byte)\n}\n"
	f, err := Parse("e.expand", []byte(src))
	require.NoError(t, err)

	var types []string
	for _, fld := range f.Enums[0].Variants[0].Fields {
		types = append(types, fld.Type)
	}
	assert.Equal(t, []string{"map[string][]int", "expand.List[Flag]", "func(int) string", "*[2]byte"}, types)
}

func TestParse_RawStringTemplate(t *testing.T) {
	f, err := Parse("e.expand", []byte("enum E {\n\t@expand(`say \"{}\"`)\n\tA(string)\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, `say "{}"`, f.Enums[0].Variants[0].Directives[0].Value)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.expand")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, path, f.Enums[0].Pos.Filename)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.expand"))
	assert.Error(t, err)
}
