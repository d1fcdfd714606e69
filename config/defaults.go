package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.output_suffix", "_expand.go")
	v.SetDefault("generate.test_suffix", "_expand_test.go")
	v.SetDefault("generate.assert", AssertTestify)
	v.SetDefault("generate.package", "")
	v.SetDefault("generate.check_custom", true)
	v.SetDefault("generate.jobs", 4)

	v.SetDefault("log.json", false)

	v.SetDefault("watch.debounce_ms", 300)  // Editors write in bursts
	v.SetDefault("watch.max_per_minute", 60) // Regenerations per minute
}

// Default returns a Config populated only from built-in defaults.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always unmarshal; a failure here is a programming error
		panic(err)
	}
	return cfg
}
