// Package testgen turns the test examples attached to variants into test
// cases. Cases are emitted as Go tests by codegen, and the ones built only
// from literals can also be checked directly against a render.Table.
package testgen

import (
	"fmt"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
)

// Case is one example: a constructor call and the string it must render to.
type Case struct {
	Enum    string `json:"enum" yaml:"enum"`
	Variant string `json:"variant" yaml:"variant"`
	// Index counts the variant's examples from 0
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	// Args are the example arguments; labeled when Keyed
	Args     []schema.Arg `json:"-" yaml:"-"`
	Keyed    bool         `json:"keyed,omitempty" yaml:"keyed,omitempty"`
	Source   string       `json:"args" yaml:"args"`
	Expected string       `json:"expected" yaml:"expected"`
	Pos      schema.Pos   `json:"pos" yaml:"pos"`
}

// Name is the Go test function name of example n of a variant.
func Name(enum, variant string, n int) string {
	return fmt.Sprintf("Test%s_%s_%d", enum, variant, n)
}

// Cases collects the examples of every resolved variant in declaration
// order. Variants that resolved to an error contribute no cases.
func Cases(s *resolve.Schema) ([]Case, error) {
	var cases []Case
	for _, r := range s.All() {
		if r.State == resolve.Error {
			continue
		}
		for n, d := range r.Tests {
			args, err := d.TestArgs()
			if err != nil {
				return nil, errors.Wrapf(err, "%s: test %d of %s", d.Pos, n, r.VariantName())
			}
			cases = append(cases, Case{
				Enum:     r.Enum,
				Variant:  r.VariantName(),
				Index:    n,
				Name:     Name(r.Enum, r.VariantName(), n),
				Args:     args,
				Keyed:    d.Keyed,
				Source:   d.Args,
				Expected: d.Value,
				Pos:      d.Pos,
			})
		}
	}
	return cases, nil
}

// Call renders the example as schema source, such as BandwidthRate(256, MBits).
func (c Case) Call() string {
	if c.Keyed {
		return c.Variant + "{" + c.Source + "}"
	}
	return c.Variant + "(" + c.Source + ")"
}
