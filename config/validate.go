package config

import (
	"strings"

	"github.com/teranos/expandgen/errors"
)

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if err := c.Generate.validate(); err != nil {
		return err
	}
	return c.Watch.validate()
}

func (g GenerateConfig) validate() error {
	if !strings.HasSuffix(g.OutputSuffix, ".go") {
		return errors.Newf("generate.output_suffix must end in .go, got %q", g.OutputSuffix)
	}
	if !strings.HasSuffix(g.TestSuffix, "_test.go") {
		return errors.Newf("generate.test_suffix must end in _test.go, got %q", g.TestSuffix)
	}
	if g.OutputSuffix == g.TestSuffix {
		return errors.Newf("generate.output_suffix and generate.test_suffix must differ")
	}
	switch g.Assert {
	case AssertTestify, AssertStd:
	default:
		return errors.WithHint(
			errors.Newf("generate.assert must be %q or %q, got %q", AssertTestify, AssertStd, g.Assert),
			"use std when the target module does not depend on testify")
	}
	if g.Jobs < 1 {
		return errors.Newf("generate.jobs must be at least 1, got %d", g.Jobs)
	}
	return nil
}

func (w WatchConfig) validate() error {
	if w.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms cannot be negative, got %d", w.DebounceMS)
	}
	if w.MaxPerMinute < 0 {
		return errors.Newf("watch.max_per_minute cannot be negative (0 = unlimited), got %d", w.MaxPerMinute)
	}
	return nil
}
