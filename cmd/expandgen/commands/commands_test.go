package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/expandgen/config"
	"github.com/teranos/expandgen/errors"
)

const demoSchema = `package demo

enum Flag {
	@expand("-f {}")
	@expand(test = ("filename") => ` + "`-f \"filename\"`" + `)
	ConfigFile(string),
	@expand(test = (256, MBits) => ` + "`BandwidthRate \"256 MBits\"`" + `)
	BandwidthRate(int, SizeUnit),
	@expand(with = "logExpand")
	Log(LogLevel),
}
`

// resetFlags restores every flag of the command tree to its default, since
// cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(append([]string{"--no-color"}, args...))
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

// setup writes the demo schema and a config file into a temp dir.
func setup(t *testing.T, schemaSrc string) (dir, schemaPath, configPath string) {
	t.Helper()
	dir = t.TempDir()
	schemaPath = filepath.Join(dir, "flags.expand")
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaSrc), 0o644))

	cfg := config.Default()
	cfg.Generate.CheckCustom = false
	configPath = filepath.Join(dir, config.ProjectFileName)
	require.NoError(t, config.Save(cfg, configPath))
	return dir, schemaPath, configPath
}

func TestVersion_JSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")
}

func TestRender(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	out, err := run(t, "--config", cfg, "render", schemaPath, "BandwidthRate(256, MBits)")
	require.NoError(t, err)
	assert.Equal(t, "BandwidthRate \"256 MBits\"\n", out)

	out, err = run(t, "--config", cfg, "render", "--tokens", schemaPath, `ConfigFile("my torrc")`)
	require.NoError(t, err)
	assert.Equal(t, "[\"-f\",\"my torrc\"]\n", out)

	out, err = run(t, "--config", cfg, "render", "--shell", schemaPath, `ConfigFile("my torrc")`)
	require.NoError(t, err)
	assert.Equal(t, "-f 'my torrc'\n", out)
}

func TestRender_TorSchema(t *testing.T) {
	_, _, cfg := setup(t, demoSchema)
	torSchema := filepath.Join("..", "..", "..", "tor", "flags.expand")

	out, err := run(t, "--config", cfg, "render", torSchema, `HashPassword{password: "pw"}`)
	require.NoError(t, err)
	assert.Equal(t, "--hash-password \"pw\"\n", out)

	out, err = run(t, "--config", cfg, "render", torSchema, `PidFile("/run/tor.pid")`)
	require.NoError(t, err)
	assert.Equal(t, "PidFile \"/run/tor.pid\"\n", out)
}

func TestRender_Errors(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	_, err := run(t, "--config", cfg, "render", schemaPath, "Log(Notice)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCustomFunc))

	_, err = run(t, "--config", cfg, "render", schemaPath, "BandwithRate(256, MBits)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownVariant))

	_, err = run(t, "--config", cfg, "render", schemaPath)
	assert.Error(t, err)
}

func TestGenerateAndCheck(t *testing.T) {
	dir, _, cfg := setup(t, demoSchema)

	_, err := run(t, "--config", cfg, "check", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate))

	_, err = run(t, "--config", cfg, "generate", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "flags_expand.go"))
	assert.FileExists(t, filepath.Join(dir, "flags_expand_test.go"))

	_, err = run(t, "--config", cfg, "check", dir)
	require.NoError(t, err)

	generated := filepath.Join(dir, "flags_expand.go")
	require.NoError(t, os.WriteFile(generated, []byte("package demo\n"), 0o644))
	_, err = run(t, "--config", cfg, "check", dir)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate))
}

func TestGenerate_SchemaError(t *testing.T) {
	dir, _, cfg := setup(t, "package demo\n\nenum Flag {\n\tHashPassword { password string },\n}\n")

	_, err := run(t, "--config", cfg, "generate", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingTemplate))
	assert.NoFileExists(t, filepath.Join(dir, "flags_expand.go"))
}

func TestFmt(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	out, err := run(t, "--config", cfg, "fmt", schemaPath)
	require.NoError(t, err)
	assert.Contains(t, out, "enum Flag {")
	assert.Contains(t, out, "BandwidthRate(int, SizeUnit)")

	_, err = run(t, "--config", cfg, "fmt", "-w", schemaPath)
	require.NoError(t, err)
	written, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))
}

func TestFmt_KeepsMalformedAnnotations(t *testing.T) {
	src := "package demo\n\nenum Flag {\n\t@expand(with = 123)\n\tLog(int)\n}\n"
	_, schemaPath, cfg := setup(t, src)

	_, err := run(t, "--config", cfg, "fmt", "-w", schemaPath)
	require.NoError(t, err)
	written, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	assert.Equal(t, src, string(written))
}

func TestInspect_JSON(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	out, err := run(t, "--config", cfg, "inspect", "--format", "json", schemaPath)
	require.NoError(t, err)

	var rows []variantRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "template", rows[0].State)
	assert.Equal(t, `"-f {}"`, rows[0].Detail)
	assert.Equal(t, 1, rows[0].Examples)
	assert.Equal(t, "default", rows[1].State)
	assert.Equal(t, "custom", rows[2].State)
	assert.Equal(t, "logExpand(v)", rows[2].Detail)
}

func TestInspect_YAMLAndBadFormat(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	out, err := run(t, "--config", cfg, "inspect", "--format", "yaml", schemaPath)
	require.NoError(t, err)
	assert.Contains(t, out, "variant: BandwidthRate")

	_, err = run(t, "--config", cfg, "inspect", "--format", "xml", schemaPath)
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	_, err := run(t, "--config", cfg, "verify", schemaPath)
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "bad.expand")
	require.NoError(t, os.WriteFile(bad, []byte("package demo\n\nenum Flag {\n\t@expand(test = (1) => \"Port 1\")\n\tSocksPort(int),\n}\n"), 0o644))
	_, err = run(t, "--config", cfg, "verify", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 examples failed")
}

func TestVerify_Verbosity(t *testing.T) {
	_, schemaPath, cfg := setup(t, demoSchema)

	out, err := run(t, "--config", cfg, "verify", schemaPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "TestFlag_ConfigFile_0")

	out, err = run(t, "--config", cfg, "-vvv", "verify", schemaPath)
	require.NoError(t, err)
	assert.Contains(t, out, `TestFlag_ConfigFile_0: -f "filename"`)
	assert.Contains(t, out, `TestFlag_BandwidthRate_0: BandwidthRate "256 MBits"`)
}

func TestGenerate_PrintsSourceAtHighestVerbosity(t *testing.T) {
	dir, _, cfg := setup(t, demoSchema)

	out, err := run(t, "--config", cfg, "generate", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "DO NOT EDIT")

	out, err = run(t, "--config", cfg, "-vvvv", "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "// "+filepath.Join(dir, "flags_expand.go"))
	assert.Contains(t, out, "// Code generated by expandgen from flags.expand. DO NOT EDIT.")
	assert.Contains(t, out, "func ExpandFlag(")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expandgen.toml")

	_, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = run(t, "config", "init", path)
	assert.Error(t, err, "init refuses to overwrite")

	_, err = run(t, "--config", path, "config", "validate", path)
	require.NoError(t, err)

	out, err := run(t, "--config", path, "config", "show", "--format", "json")
	require.NoError(t, err)
	var shown config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, config.Default().Generate, shown.Generate)

	typo := filepath.Join(dir, "typo.toml")
	require.NoError(t, os.WriteFile(typo, []byte("[generate]\nasert = \"std\"\n"), 0o644))
	_, err = run(t, "--config", path, "config", "validate", typo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}
