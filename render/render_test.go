package render

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/expand"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema/parser"
)

const flags = `package demo

enum Flag {
	@expand("-f {}")
	ConfigFile(string)
	BandwidthRate(int, SizeUnit)
	DisableNetwork(bool)
	ControlPortAuto
	@expand(rename = "SocksPort")
	SocksPortAddress(string, @expand(ignore) *string)
	@expand(rename = "ControlPort")
	@expand("{$} auto")
	ControlPortAutoNamed
	@expand("HTTPSProxyAuthenticator {}:{}")
	HTTPSProxyAuthenticator(string, string)
	@expand(with = "logExpand")
	Log(LogLevel)
	DataDirectory(*string)
}

enum Subcommand {
	@expand("--hash-password {password}")
	HashPassword { password string }
	@expand("--keygen")
	Keygen {
		@expand(ignore)
		password *string,
	}
}
`

type SizeUnit int

func (u SizeUnit) String() string { return [...]string{"Bytes", "KBytes", "MBits"}[u] }

const MBits SizeUnit = 2

type BandwidthRate struct {
	F0 int
	F1 SizeUnit
}

type HashPassword struct {
	Password string
}

type Log struct {
	F0 string
}

type Broken struct{}

type ConfigFile struct {
	Path string
}

func logExpand(v any) string {
	switch x := v.(type) {
	case Log:
		return fmt.Sprintf("Log %q", strings.ToLower(x.F0))
	case Instance:
		return fmt.Sprintf("Log %q", strings.ToLower(expand.Text(x.Args[0])))
	}
	return ""
}

func compile(t *testing.T, opts ...Option) *Table {
	t.Helper()
	f, err := parser.Parse("flags.expand", []byte(flags))
	require.NoError(t, err)
	s, err := resolve.Resolve(f)
	require.NoError(t, err)
	table, err := Compile(s, append([]Option{WithCustom("logExpand", logExpand)}, opts...)...)
	require.NoError(t, err)
	return table
}

func TestRender(t *testing.T) {
	table := compile(t)
	dir := "/var/lib/tor"

	tests := []struct {
		name   string
		value  any
		tokens []string
		joined string
	}{
		{"template", Instance{Variant: "ConfigFile", Args: []any{"filename"}}, []string{"-f", "filename"}, `-f "filename"`},
		{"default positional", Instance{Variant: "BandwidthRate", Args: []any{256, MBits}}, []string{"BandwidthRate", "256 MBits"}, `BandwidthRate "256 MBits"`},
		{"default bool", Instance{Variant: "DisableNetwork", Args: []any{true}}, []string{"DisableNetwork", "1"}, `DisableNetwork "1"`},
		{"unit", Instance{Variant: "ControlPortAuto"}, []string{"ControlPortAuto"}, "ControlPortAuto"},
		{"rename with ignored field", Instance{Variant: "SocksPortAddress", Args: []any{"127.0.0.1:9050", &dir}}, []string{"SocksPort", "127.0.0.1:9050"}, `SocksPort "127.0.0.1:9050"`},
		{"renamed template", Instance{Variant: "ControlPortAutoNamed"}, []string{"ControlPort", "auto"}, `ControlPort "auto"`},
		{"template without space", Instance{Variant: "HTTPSProxyAuthenticator", Args: []any{"user", "pass"}}, []string{"HTTPSProxyAuthenticator", "user:pass"}, `HTTPSProxyAuthenticator "user:pass"`},
		{"custom", Instance{Variant: "Log", Args: []any{expand.Symbol("Notice")}}, []string{`Log "notice"`}, `Log "notice"`},
		{"nil optional", Instance{Variant: "DataDirectory", Args: []any{nil}}, []string{"DataDirectory", ""}, `DataDirectory ""`},
		{"set optional", &Instance{Variant: "DataDirectory", Args: []any{&dir}}, []string{"DataDirectory", dir}, `DataDirectory "/var/lib/tor"`},
		{"named", Instance{Variant: "HashPassword", Named: map[string]any{"password": "secret"}}, []string{"--hash-password", "secret"}, `--hash-password "secret"`},
		{"named ignored omitted", Instance{Variant: "Keygen"}, []string{"--keygen"}, "--keygen"},
		{"struct positional", BandwidthRate{F0: 1, F1: MBits}, []string{"BandwidthRate", "1 MBits"}, `BandwidthRate "1 MBits"`},
		{"struct pointer", &BandwidthRate{F0: 2}, []string{"BandwidthRate", "2 Bytes"}, `BandwidthRate "2 Bytes"`},
		{"struct named", HashPassword{Password: "pw"}, []string{"--hash-password", "pw"}, `--hash-password "pw"`},
		{"struct custom", Log{F0: "Debug"}, []string{`Log "debug"`}, `Log "debug"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := table.Render(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, tokens)

			joined, err := table.RenderJoined(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.joined, joined)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	table := compile(t)

	tests := []struct {
		name     string
		value    any
		sentinel error
	}{
		{"unknown instance", Instance{Variant: "Nope"}, errors.ErrUnknownVariant},
		{"unknown struct", Broken{}, errors.ErrUnknownVariant},
		{"not a struct", 42, errors.ErrUnknownVariant},
		{"nil", nil, errors.ErrUnknownVariant},
		{"too few args", Instance{Variant: "BandwidthRate", Args: []any{1}}, errors.ErrArity},
		{"too many args", Instance{Variant: "ControlPortAuto", Args: []any{1}}, errors.ErrArity},
		{"named on positional", Instance{Variant: "ConfigFile", Named: map[string]any{"x": 1}}, errors.ErrArity},
		{"positional on named", Instance{Variant: "HashPassword", Args: []any{"pw"}}, errors.ErrArity},
		{"unknown label", Instance{Variant: "HashPassword", Named: map[string]any{"pass": "pw"}}, errors.ErrArity},
		{"struct missing field", ConfigFile{Path: "x"}, errors.ErrArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Render(tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			_, err = table.RenderJoined(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestRender_UnknownVariantHint(t *testing.T) {
	table := compile(t)
	_, err := table.Render(Instance{Variant: "BandwidthRat"})
	require.Error(t, err)
	assert.Equal(t, []string{"did you mean BandwidthRate?"}, errors.GetAllHints(err))
}

func TestCompile_RequiresCustomRegistration(t *testing.T) {
	f, err := parser.Parse("flags.expand", []byte(flags))
	require.NoError(t, err)
	s, err := resolve.Resolve(f)
	require.NoError(t, err)

	_, err = Compile(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCustomFunc))
	assert.Contains(t, err.Error(), "Log: logExpand")

	table, err := Compile(s, SkipUnregisteredCustom())
	require.NoError(t, err)
	_, err = table.Render(Instance{Variant: "Log", Args: []any{"x"}})
	assert.True(t, errors.Is(err, errors.ErrCustomFunc))

	out, err := table.RenderJoined(Instance{Variant: "ControlPortAuto"})
	require.NoError(t, err)
	assert.Equal(t, "ControlPortAuto", out)
}

func TestCompile_RefusesErrors(t *testing.T) {
	f, err := parser.Parse("bad.expand", []byte("enum E {\n\tA { x int }\n}\n"))
	require.NoError(t, err)
	s, err := resolve.Resolve(f)
	require.Error(t, err)

	_, err = Compile(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingTemplate))
}

func TestTable_Accessors(t *testing.T) {
	table := compile(t)
	assert.True(t, table.Has("Keygen"))
	assert.False(t, table.Has("Missing"))
	assert.NotNil(t, table.Schema())
	assert.Equal(t, []string{
		"ConfigFile", "BandwidthRate", "DisableNetwork", "ControlPortAuto", "SocksPortAddress",
		"ControlPortAutoNamed", "HTTPSProxyAuthenticator", "Log", "DataDirectory",
		"HashPassword", "Keygen",
	}, table.Variants())
}

func TestRender_Idempotent(t *testing.T) {
	table := compile(t)
	v := Instance{Variant: "BandwidthRate", Args: []any{256, MBits}}

	first, err := table.RenderJoined(v)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := table.RenderJoined(v)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}()
	}
	wg.Wait()
}

func TestJoin(t *testing.T) {
	assert.Equal(t, `BandwidthRate "256 MBits"`, Join([]string{"BandwidthRate", "256 MBits"}))
	assert.Equal(t, "", Join(nil))
}

func TestShellJoin(t *testing.T) {
	assert.Equal(t, `tor -f 'my torrc' BandwidthRate '256 MBits'`,
		ShellJoin([]string{"tor", "-f", "my torrc", "BandwidthRate", "256 MBits"}))
	assert.Equal(t, "--version", ShellJoin([]string{"--version"}))
}
