package resolve

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/schema"
)

var (
	bandwidth = &schema.Variant{
		Name:  "BandwidthRate",
		Shape: schema.Positional,
		Fields: []schema.Field{
			{Index: 0, Type: "int"},
			{Index: 1, Type: "*string", Ignore: true},
			{Index: 2, Type: "SizeUnit"},
		},
	}
	single = &schema.Variant{
		Name:   "ConfigFile",
		Shape:  schema.Positional,
		Fields: []schema.Field{{Index: 0, Type: "string"}},
	}
	unit = &schema.Variant{Name: "ControlPortAuto", Shape: schema.Unit}
	hash = &schema.Variant{
		Name:  "HashPassword",
		Shape: schema.Named,
		Fields: []schema.Field{
			{Label: "password", Index: 0, Type: "string"},
			{Label: "old", Index: 1, Type: "*string", Ignore: true},
		},
	}
)

func fieldText(i int) string { return "<" + strconv.Itoa(i) + ">" }

func TestCompileTemplate(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		variant  *schema.Variant
		segments []Segment
		output   string
	}{
		{
			name:    "positional skips ignored",
			pattern: "{} {}",
			variant: bandwidth,
			segments: []Segment{
				{Kind: FieldRef, Field: 0},
				{Kind: Literal, Text: " "},
				{Kind: FieldRef, Field: 2},
			},
			output: "<0> <2>",
		},
		{
			name:    "flag prefix",
			pattern: "-f {}",
			variant: single,
			segments: []Segment{
				{Kind: Literal, Text: "-f "},
				{Kind: FieldRef, Field: 0},
			},
			output: "-f <0>",
		},
		{
			name:    "escaped braces",
			pattern: "{{{}}}",
			variant: single,
			segments: []Segment{
				{Kind: Literal, Text: "{"},
				{Kind: FieldRef, Field: 0},
				{Kind: Literal, Text: "}"},
			},
			output: "{<0>}",
		},
		{
			name:    "canonical name",
			pattern: "{$} auto",
			variant: unit,
			segments: []Segment{
				{Kind: NameRef},
				{Kind: Literal, Text: " auto"},
			},
			output: "ControlPort auto",
		},
		{
			name:    "named label used twice",
			pattern: "--hash-password {password} {password}",
			variant: hash,
			segments: []Segment{
				{Kind: Literal, Text: "--hash-password "},
				{Kind: FieldRef, Field: 0},
				{Kind: Literal, Text: " "},
				{Kind: FieldRef, Field: 0},
			},
			output: "--hash-password <0> <0>",
		},
		{
			name:     "literal only",
			pattern:  "--list-fingerprint",
			variant:  unit,
			segments: []Segment{{Kind: Literal, Text: "--list-fingerprint"}},
			output:   "--list-fingerprint",
		},
		{
			name:    "empty",
			pattern: "",
			variant: unit,
			output:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, d := CompileTemplate(tt.pattern, tt.variant, schema.Pos{})
			require.Nil(t, d)
			assert.Equal(t, tt.pattern, tpl.Pattern)
			assert.Equal(t, tt.segments, tpl.Segments)
			assert.Equal(t, tt.output, tpl.Execute("ControlPort", fieldText))
		})
	}
}

func TestCompileTemplate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		variant *schema.Variant
		kind    schema.Kind
	}{
		{"too few placeholders", "{}", bandwidth, schema.KindTemplateArity},
		{"too many placeholders", "{} {} {}", bandwidth, schema.KindTemplateArity},
		{"placeholder on unit", "-x {}", unit, schema.KindTemplateArity},
		{"label on positional", "{value}", single, schema.KindTemplate},
		{"format specifier", "{:?}", single, schema.KindTemplate},
		{"unclosed", "-f {", single, schema.KindTemplate},
		{"unmatched close", "-f {} }", single, schema.KindTemplate},
		{"nested brace", "{a{}", single, schema.KindTemplate},
		{"positional on named", "--hash-password {}", hash, schema.KindTemplate},
		{"unknown label", "--hash-password {pass}", hash, schema.KindTemplate},
		{"ignored label", "{password} {old}", hash, schema.KindTemplate},
		{"unused label", "--hash-password", hash, schema.KindTemplateArity},
	}

	pos := schema.Pos{Filename: "t.expand", Line: 3, Column: 2}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, d := CompileTemplate(tt.pattern, tt.variant, pos)
			assert.Nil(t, tpl)
			require.NotNil(t, d)
			assert.Equal(t, tt.kind, d.Kind, d.Message)
			assert.Equal(t, pos, d.Pos)
			assert.True(t, errors.Is(d, errors.ErrTemplate))
		})
	}
}

func TestCompileTemplate_Suggestions(t *testing.T) {
	_, d := CompileTemplate("{pass}", hash, schema.Pos{})
	require.NotNil(t, d)
	assert.Equal(t, []string{"fields: {password}"}, d.Suggestions)

	_, d = CompileTemplate("-x", hash, schema.Pos{})
	require.NotNil(t, d)
	assert.Contains(t, d.Suggestions[0], "{password}")
}

func TestTemplate_UsesName(t *testing.T) {
	tpl, d := CompileTemplate("{$}", unit, schema.Pos{})
	require.Nil(t, d)
	assert.True(t, tpl.UsesName())

	tpl, d = CompileTemplate("{{$}}", unit, schema.Pos{})
	require.Nil(t, d)
	assert.False(t, tpl.UsesName())
	assert.Equal(t, "{$}", tpl.Execute("X", fieldText))
}
