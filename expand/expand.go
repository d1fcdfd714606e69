// Package expand is the runtime support imported by code that expandgen
// generates. It turns field values into text and token lists into the
// command line argument strings tor-style programs expect.
//
// The package has no dependencies beyond the standard library so generated
// code stays cheap to import.
package expand

import (
	"fmt"
	"reflect"
	"strings"
)

// Text renders one field value.
//
//	nil, nil pointer   ""
//	fmt.Stringer       String()
//	bool               "1" or "0"
//	pointer            the text of the pointee
//	anything else      fmt.Sprint
func Text(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch x := v.(type) {
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	case bool:
		return boolText(x)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return Text(rv.Elem().Interface())
	case reflect.Bool:
		return boolText(rv.Bool())
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}

func boolText(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Join assembles a token list into a single argument string. The first token
// is kept as is and the rest are joined by spaces inside double quotes:
//
//	["BandwidthRate", "256 MBits"]  ->  BandwidthRate "256 MBits"
func Join(tokens []string) string {
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0]
	}
	return tokens[0] + ` "` + strings.Join(tokens[1:], " ") + `"`
}

// SplitTemplate splits rendered template text at its first space into at
// most two tokens.
func SplitTemplate(s string) []string {
	head, rest, ok := strings.Cut(s, " ")
	if !ok {
		return []string{s}
	}
	return []string{head, rest}
}

// Default is the token list of a variant without template or custom
// function: the name, then the field texts joined by spaces.
func Default(name string, values ...string) []string {
	if len(values) == 0 {
		return []string{name}
	}
	return []string{name, strings.Join(values, " ")}
}

// Flatten concatenates token lists.
func Flatten(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
