package config

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/expandgen/errors"
)

// UnknownKeys decodes the TOML file at path against Config and returns the
// dotted keys that do not map onto any field, sorted. Viper silently drops
// these, so a misspelled key would otherwise fall back to its default.
func UnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys, nil
}
