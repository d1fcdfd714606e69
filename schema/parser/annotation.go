package parser

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/teranos/expandgen/schema"
)

// keywords accepted as the first word of an @expand(...) body.
var keywords = []string{"rename", "with", "test", "ignore"}

// annotations parses zero or more @expand(...) annotations. Directive-level
// problems come back as diagnostics, and the rejected annotation is kept as an
// Invalid directive so it survives formatting. The returned error is structural.
func (p *parser) annotations() ([]schema.Directive, schema.Diagnostics, error) {
	var (
		dirs  []schema.Directive
		diags schema.Diagnostics
	)
	for p.peek().kind == '@' {
		d, diag, err := p.annotation()
		if err != nil {
			return nil, nil, err
		}
		if diag != nil {
			diags.Add(diag)
		}
		dirs = append(dirs, d)
	}
	return dirs, diags, nil
}

func (p *parser) annotation() (schema.Directive, *schema.Diagnostic, error) {
	at := p.next()
	kw := p.next()
	if !kw.is("expand") {
		return schema.Directive{}, nil, p.errorf(kw, "expected expand after '@', found %s", kw.describe())
	}
	open, err := p.expect('(', "'(' after @expand")
	if err != nil {
		return schema.Directive{}, nil, err
	}

	start := p.i
	depth := 0
	var closeTok token
scan:
	for {
		t := p.next()
		switch t.kind {
		case scanner.EOF:
			return schema.Directive{}, nil, p.errorf(open, "@expand( is not closed")
		case '(', '[', '{':
			depth++
		case ']', '}':
			if depth == 0 {
				return schema.Directive{}, nil, p.errorf(t, "unbalanced %q in @expand", t.text)
			}
			depth--
		case ')':
			if depth == 0 {
				closeTok = t
				break scan
			}
			depth--
		}
	}
	body := p.toks[start : p.i-1]

	text := string(p.src[at.pos.Offset:closeTok.end])
	d, diag := directive(body, open, p.src)
	if diag != nil {
		return schema.Directive{Kind: schema.Invalid, Text: text, Pos: at.pos}, diag.WithDirective(text), nil
	}
	d.Text = text
	d.Pos = at.pos
	return d, nil, nil
}

// directive interprets the tokens between the parentheses of @expand(...).
func directive(body []token, open token, src []byte) (schema.Directive, *schema.Diagnostic) {
	if len(body) == 0 {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindSyntax, open.pos, "empty @expand()").
			WithSuggestions(`@expand("template {}")`, `@expand(rename = "Name")`)
	}

	first := body[0]
	switch {
	case first.isString():
		if len(body) > 1 {
			return schema.Directive{}, unexpected(body[1], "template string")
		}
		val, diag := unquote(first)
		return schema.Directive{Kind: schema.Template, Value: val}, diag

	case first.kind == scanner.Ident:
		switch first.text {
		case "ignore":
			if len(body) > 1 {
				return schema.Directive{}, schema.NewDiagnostic(schema.KindMalformedPair, body[1].pos,
					"ignore takes no value")
			}
			return schema.Directive{Kind: schema.Ignore}, nil
		case "rename":
			return pair(body, schema.Rename)
		case "with":
			return pair(body, schema.Custom)
		case "test":
			return test(body, src)
		default:
			return schema.Directive{}, unknownKeyword(first)
		}

	default:
		return schema.Directive{}, schema.NewDiagnostic(schema.KindSyntax, first.pos,
			"expected template string or keyword, found %s", first.describe())
	}
}

// pair parses `key = "value"`.
func pair(body []token, kind schema.DirectiveKind) (schema.Directive, *schema.Diagnostic) {
	key := body[0]
	if len(body) < 2 || body[1].kind != '=' {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindMalformedPair, key.pos,
			"expected '=' after %s", key.text).
			WithSuggestions(key.text + ` = "..."`)
	}
	if len(body) < 3 {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindExpectedString, body[1].pos,
			"expected string literal after %s =", key.text)
	}
	val := body[2]
	if !val.isString() {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindExpectedString, val.pos,
			"%s value must be a string literal, found %s", key.text, val.describe()).
			WithSuggestions(key.text + " = " + strconv.Quote(val.text))
	}
	if len(body) > 3 {
		return schema.Directive{}, unexpected(body[3], key.text+" value")
	}

	s, diag := unquote(val)
	if diag != nil {
		return schema.Directive{}, diag
	}
	if strings.TrimSpace(s) == "" {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindSyntax, val.pos, "%s value cannot be empty", key.text)
	}
	return schema.Directive{Kind: kind, Value: s}, nil
}

// test parses `test = (args) => "expected"` and `test = {label: v} => "expected"`.
func test(body []token, src []byte) (schema.Directive, *schema.Diagnostic) {
	key := body[0]
	if len(body) < 2 || body[1].kind != '=' {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindMalformedPair, key.pos,
			"expected '=' after test").
			WithSuggestions(`test = (args) => "expected"`)
	}
	if len(body) < 3 || (body[2].kind != '(' && body[2].kind != '{') {
		at := key
		if len(body) >= 3 {
			at = body[2]
		}
		return schema.Directive{}, schema.NewDiagnostic(schema.KindMalformedPair, at.pos,
			"test value must be (args) or {label: value}")
	}

	open := body[2]
	closeIdx := matching(body, 2)
	if closeIdx < 0 {
		return schema.Directive{}, schema.NewDiagnostic(schema.KindSyntax, open.pos, "test arguments are not closed")
	}
	args := strings.TrimSpace(string(src[open.end:body[closeIdx].pos.Offset]))

	rest := body[closeIdx+1:]
	if len(rest) < 2 || rest[0].kind != '=' || rest[1].kind != '>' || rest[1].pos.Offset != rest[0].end {
		at := body[closeIdx]
		if len(rest) > 0 {
			at = rest[0]
		}
		return schema.Directive{}, schema.NewDiagnostic(schema.KindMissingArrow, at.pos,
			"expected '=>' after test arguments")
	}
	if len(rest) < 3 || !rest[2].isString() {
		at := rest[1]
		if len(rest) >= 3 {
			at = rest[2]
		}
		return schema.Directive{}, schema.NewDiagnostic(schema.KindExpectedString, at.pos,
			"expected output must be a string literal")
	}
	if len(rest) > 3 {
		return schema.Directive{}, unexpected(rest[3], "expected output")
	}

	expected, diag := unquote(rest[2])
	if diag != nil {
		return schema.Directive{}, diag
	}
	return schema.Directive{Kind: schema.Test, Args: args, Keyed: open.kind == '{', Value: expected}, nil
}

// matching returns the index of the bracket closing body[open], or -1.
func matching(body []token, open int) int {
	depth := 0
	for i := open; i < len(body); i++ {
		switch body[i].kind {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func unquote(t token) (string, *schema.Diagnostic) {
	s, err := strconv.Unquote(t.text)
	if err != nil {
		return "", schema.NewDiagnostic(schema.KindSyntax, t.pos, "invalid string literal %s", t.text)
	}
	return s, nil
}

func unexpected(t token, after string) *schema.Diagnostic {
	return schema.NewDiagnostic(schema.KindSyntax, t.pos, "unexpected %s after %s", t.describe(), after)
}

func unknownKeyword(t token) *schema.Diagnostic {
	d := schema.NewDiagnostic(schema.KindUnknownDirective, t.pos, "unknown directive %q", t.text)
	best, bestDist := "", 3
	for _, kw := range keywords {
		if dist := fuzzy.LevenshteinDistance(strings.ToLower(t.text), kw); dist < bestDist {
			best, bestDist = kw, dist
		}
	}
	if best != "" {
		return d.WithSuggestions("did you mean " + best + "?")
	}
	return d.WithSuggestions("valid directives: a template string, " + strings.Join(keywords, ", "))
}
