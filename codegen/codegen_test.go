package codegen

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
	"github.com/teranos/expandgen/schema/parser"
)

const flags = `package demo

// Flag is a command line flag.
enum Flag {
	// ConfigFile points at a torrc.
	@expand("-f {}")
	@expand(test = ("filename") => "-f \"filename\"")
	ConfigFile(string)
	BandwidthRate(int, SizeUnit)
	@expand("ControlPort auto")
	ControlPortAuto
	@expand(rename = "SocksPort")
	SocksPortAddress(Address, @expand(ignore) *string)
	@expand(with = "logExpand")
	@expand(test = (Notice) => "Log \"notice\"")
	Log(LogLevel)
	Timeout(time.Duration)
	@expand(rename = "HiddenServiceAuthorizeClient")
	@expand("{$} {}:{}")
	AuthorizeClient(string, string)
}

enum Subcommand {
	@expand("--hash-password {password}")
	@expand(test = {password: "secret"} => "--hash-password \"secret\"")
	HashPassword { password string }
	Version
}
`

func load(t *testing.T, src string) *resolve.Schema {
	t.Helper()
	f, err := parser.Parse("flags.expand", []byte(src))
	require.NoError(t, err)
	s, err := resolve.Resolve(f)
	require.NoError(t, err)
	return s
}

func parseGo(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := goparser.ParseFile(token.NewFileSet(), "out.go", src, goparser.ParseComments)
	require.NoError(t, err, string(src))
	return f
}

func TestSourceGenerator(t *testing.T) {
	g := NewSourceGenerator(Options{Package: "demo", Version: "1.2.3"}, "_expand.go")
	assert.Equal(t, "source", g.Kind())
	assert.Equal(t, "_expand.go", g.Suffix())

	out, err := g.Generate(load(t, flags))
	require.NoError(t, err)
	src := string(out)

	f := parseGo(t, out)
	assert.True(t, ast.IsGenerated(f))
	assert.Equal(t, "demo", f.Name.Name)

	fragments := []string{
		"// Code generated by expandgen from flags.expand. DO NOT EDIT.\n// Generator version: 1.2.3\n",
		`"github.com/teranos/expandgen/expand"`,
		`"time"`,
		"// Flag is a command line flag.\ntype Flag interface {\n",
		"\tExpand() []string\n",
		"\tisFlag()\n",
		"// Subcommand is one of the variants declared by enum Subcommand.\ntype Subcommand interface {\n",

		"// ConfigFile points at a torrc.\ntype ConfigFile struct {\n\tF0 string\n}\n",
		"func (ConfigFile) isFlag() {}\n",
		"func (v ConfigFile) Expand() []string {\n\treturn expand.SplitTemplate(\"-f \" + expand.Text(v.F0))\n}\n",
		"func (v ConfigFile) ExpandCLI() string {\n\treturn expand.Join(v.Expand())\n}\n",

		"type BandwidthRate struct {\n\tF0 int\n\tF1 SizeUnit\n}\n",
		"func (v BandwidthRate) Expand() []string {\n\treturn expand.Default(\"BandwidthRate\", expand.Text(v.F0), expand.Text(v.F1))\n}\n",

		"type ControlPortAuto struct{}\n",
		"func (ControlPortAuto) Expand() []string {\n\treturn []string{\"ControlPort\", \"auto\"}\n}\n",

		"type SocksPortAddress struct {\n\tF0 Address\n\tF1 *string\n}\n",
		"\treturn expand.Default(\"SocksPort\", expand.Text(v.F0))\n",

		"func (v Log) Expand() []string {\n\treturn []string{logExpand(v)}\n}\n",
		"func (v Log) ExpandCLI() string {\n\treturn logExpand(v)\n}\n",

		"type Timeout struct {\n\tF0 time.Duration\n}\n",

		"\treturn expand.SplitTemplate(\"HiddenServiceAuthorizeClient \" + expand.Text(v.F0) + \":\" + expand.Text(v.F1))\n",

		"type HashPassword struct {\n\tPassword string\n}\n",
		"func (v HashPassword) Expand() []string {\n\treturn expand.SplitTemplate(\"--hash-password \" + expand.Text(v.Password))\n}\n",
		"func (Version) Expand() []string {\n\treturn expand.Default(\"Version\")\n}\n",
		"func (Version) isSubcommand() {}\n",

		"func ExpandFlag(v Flag) []string {\n\tswitch v := v.(type) {\n\tcase ConfigFile:\n\t\treturn v.Expand()\n",
		"func ExpandFlagCLI(v Flag) string {\n",
		"\tcase Log:\n\t\treturn v.ExpandCLI()\n",
		"\treturn \"\"\n}\n",
		"func ExpandSubcommandArgs(vs ...Subcommand) []string {\n",
	}
	for _, frag := range fragments {
		assert.Contains(t, src, frag)
	}
}

func TestSourceGenerator_DeclarationOrder(t *testing.T) {
	out, err := NewSourceGenerator(Options{Package: "demo"}, "_expand.go").Generate(load(t, flags))
	require.NoError(t, err)

	var types []string
	for _, decl := range parseGo(t, out).Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		types = append(types, gd.Specs[0].(*ast.TypeSpec).Name.Name)
	}
	assert.Equal(t, []string{
		"Flag", "ConfigFile", "BandwidthRate", "ControlPortAuto", "SocksPortAddress", "Log", "Timeout", "AuthorizeClient",
		"Subcommand", "HashPassword", "Version",
	}, types)
}

func TestSourceGenerator_EmptyEnum(t *testing.T) {
	s := &resolve.Schema{
		File:  &schema.File{Path: "empty.expand"},
		Enums: []*resolve.Enum{{Name: "Empty"}},
	}
	out, err := NewSourceGenerator(Options{Package: "demo"}, "_expand.go").Generate(s)
	require.NoError(t, err)
	parseGo(t, out)
	assert.Contains(t, string(out), "func ExpandEmpty(v Empty) []string {\n\treturn nil\n}\n")
	assert.NotContains(t, string(out), "expandgen/expand\"")
}

func TestTestGenerator(t *testing.T) {
	s := load(t, flags)

	out, err := NewTestGenerator(Options{Package: "demo"}, "_expand_test.go").Generate(s)
	require.NoError(t, err)
	src := string(out)
	parseGo(t, out)

	assert.Contains(t, src, "func TestFlag_ConfigFile_0(t *testing.T) {\n\tv := ConfigFile{\"filename\"}\n\tassert.Equal(t, `-f \"filename\"`, v.ExpandCLI())\n}\n")
	assert.Contains(t, src, "func TestFlag_Log_0(t *testing.T) {\n\tv := Log{Notice}\n")
	assert.Contains(t, src, "\tv := HashPassword{Password: \"secret\"}\n")
	assert.Contains(t, src, `"github.com/stretchr/testify/assert"`)
	assert.NotContains(t, src, "expandgen/expand\"")

	out, err = NewTestGenerator(Options{Package: "demo", Assert: AssertStd}, "_expand_test.go").Generate(s)
	require.NoError(t, err)
	src = string(out)
	parseGo(t, out)
	assert.Contains(t, src, "\tif got, want := v.ExpandCLI(), `-f \"filename\"`; got != want {\n\t\tt.Errorf(\"ExpandCLI() = %q, want %q\", got, want)\n\t}\n")
	assert.NotContains(t, src, "testify")
}

func TestTestGenerator_NoExamples(t *testing.T) {
	out, err := NewTestGenerator(Options{Package: "demo"}, "_expand_test.go").Generate(load(t, "enum E { A }\n"))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGenerate_Errors(t *testing.T) {
	f, err := parser.Parse("bad.expand", []byte("enum E { A { x int } }\n"))
	require.NoError(t, err)
	bad, _ := resolve.Resolve(f)

	_, err = NewSourceGenerator(Options{Package: "demo"}, "_expand.go").Generate(bad)
	assert.True(t, errors.Is(err, errors.ErrMissingTemplate))
	_, err = NewTestGenerator(Options{Package: "demo"}, "_expand_test.go").Generate(bad)
	assert.True(t, errors.Is(err, errors.ErrMissingTemplate))

	_, err = NewSourceGenerator(Options{}, "_expand.go").Generate(load(t, flags))
	assert.Error(t, err)

	_, err = NewTestGenerator(Options{Package: "demo", Assert: "gomega"}, "_expand_test.go").Generate(load(t, flags))
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"-f "`, quote("-f "))
	assert.Equal(t, "`-f \"filename\"`", quote(`-f "filename"`))
	assert.Equal(t, `"a\"b`+"`"+`"`, quote("a\"b`"))
	assert.Equal(t, `"line\n"`, quote("line\n"))
}

const customSrc = `package demo

func logExpand(v Flag) string { return "" }

func wrongResult(v Flag) int { return 0 }

func wrongParam(v Subcommand) string { return "" }

func twoParams(a, b Flag) string { return "" }

type T struct{}

func (T) method(v Flag) string { return "" }
`

func customSchema(t *testing.T) *resolve.Schema {
	t.Helper()
	return load(t, `enum Flag {
	@expand(with = "logExpand")
	A
	@expand(with = "wrongResult")
	B
	@expand(with = "wrongParam")
	C
	@expand(with = "twoParams")
	D
	@expand(with = "method")
	E
	@expand(with = "missing")
	F
	G
}
`)
}

func TestCheckFuncs(t *testing.T) {
	file, err := goparser.ParseFile(token.NewFileSet(), "custom.go", customSrc, 0)
	require.NoError(t, err)

	diags := checkFuncs([]*ast.File{file}, customSchema(t))
	require.Len(t, diags, 5)

	var lines []int
	for _, d := range diags {
		assert.Equal(t, schema.KindCustomFunc, d.Kind)
		lines = append(lines, d.Pos.Line)
	}
	assert.Equal(t, []int{4, 6, 8, 10, 12}, lines)
	assert.Contains(t, diags[3].Message, "method is not declared")
	assert.Equal(t, []string{"declare func missing(v Flag) string"}, diags[4].Suggestions)
}

func TestCheckCustomFuncs_LoadsPackage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.go"), []byte(customSrc), 0o644))

	diags, err := CheckCustomFuncs(dir, customSchema(t))
	require.NoError(t, err)
	assert.Len(t, diags, 5)

	diags, err = CheckCustomFuncs(dir, load(t, "enum E { A }\n"))
	require.NoError(t, err)
	assert.Empty(t, diags)
}
