// Package config loads expandgen settings from TOML files and the environment.
//
// Precedence (lowest to highest): built-in defaults, user config
// (~/.expandgen/config.toml), project config (expandgen.toml found by walking
// up from the working directory), EXPANDGEN_* environment variables.
package config

// Config is the complete expandgen configuration.
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate" json:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Watch    WatchConfig    `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
}

// GenerateConfig controls artifact naming and emitted test style.
type GenerateConfig struct {
	// OutputSuffix replaces ".expand" in the schema file name for the render code
	OutputSuffix string `mapstructure:"output_suffix" toml:"output_suffix" yaml:"output_suffix" json:"output_suffix"`
	// TestSuffix replaces ".expand" for the synthesized test file
	TestSuffix string `mapstructure:"test_suffix" toml:"test_suffix" yaml:"test_suffix" json:"test_suffix"`
	// Assert selects the assertion style of generated tests: "testify" or "std"
	Assert string `mapstructure:"assert" toml:"assert" yaml:"assert" json:"assert"`
	// Package overrides the Go package name when the schema has no package clause
	Package string `mapstructure:"package" toml:"package" yaml:"package" json:"package"`
	// CheckCustom verifies custom render functions exist in the target package
	CheckCustom bool `mapstructure:"check_custom" toml:"check_custom" yaml:"check_custom" json:"check_custom"`
	// Jobs bounds how many schema files are processed concurrently
	Jobs int `mapstructure:"jobs" toml:"jobs" yaml:"jobs" json:"jobs"`
}

// LogConfig controls logger output format.
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// WatchConfig controls regeneration on file change.
type WatchConfig struct {
	DebounceMS   int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
	MaxPerMinute int `mapstructure:"max_per_minute" toml:"max_per_minute" yaml:"max_per_minute" json:"max_per_minute"`
}

// Assertion styles for generated tests
const (
	AssertTestify = "testify"
	AssertStd     = "std"
)

// File names searched for project and user configuration
const (
	ProjectFileName = "expandgen.toml"
	UserDirName     = ".expandgen"
	UserFileName    = "config.toml"
	EnvPrefix       = "EXPANDGEN"
)
