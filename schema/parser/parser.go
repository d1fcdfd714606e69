// Package parser reads .expand schema files into a schema.File.
//
// Structural problems (unbalanced brackets, a missing variant name) abort
// parsing of the whole file. Problems inside a single @expand(...) are
// recorded on the variant they belong to and parsing continues, so one bad
// directive does not hide the state of the rest of the schema.
package parser

import (
	goparser "go/parser"
	gotoken "go/token"
	"go/types"
	"os"
	"strconv"
	"text/scanner"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/schema"
)

// ParseFile reads and parses the schema at path.
func ParseFile(path string) (*schema.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema %s", path)
	}
	return Parse(path, src)
}

// Parse parses schema source. filename is used in positions only.
func Parse(filename string, src []byte) (*schema.File, error) {
	toks, eof, err := lex(filename, src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, toks: toks, eof: eof}
	f := &schema.File{Path: filename}

	for {
		t := p.peek()
		switch {
		case t.kind == scanner.EOF:
			if err := validate(f); err != nil {
				return nil, err
			}
			return f, nil

		case t.is("package"):
			if f.Package != "" || f.Requires != "" || len(f.Enums) > 0 {
				return nil, p.errorf(t, "package clause must come first")
			}
			p.next()
			name, err := p.expect(scanner.Ident, "package name")
			if err != nil {
				return nil, err
			}
			f.Package = name.text

		case t.is("requires"):
			if f.Requires != "" || len(f.Enums) > 0 {
				return nil, p.errorf(t, "requires clause must precede enums and appear once")
			}
			p.next()
			lit, err := p.expectString("version constraint")
			if err != nil {
				return nil, err
			}
			f.Requires = lit

		case t.is("enum"):
			e, err := p.enum()
			if err != nil {
				return nil, err
			}
			f.Enums = append(f.Enums, e)

		default:
			return nil, p.errorf(t, "expected enum declaration, found %s", t.describe())
		}
	}
}

type parser struct {
	src  []byte
	toks []token
	eof  token
	i    int
}

func (p *parser) peek() token {
	if p.i < len(p.toks) {
		return p.toks[p.i]
	}
	return p.eof
}

func (p *parser) next() token {
	t := p.peek()
	if p.i < len(p.toks) {
		p.i++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...interface{}) *schema.Diagnostic {
	return schema.NewDiagnostic(schema.KindSyntax, t.pos, format, args...)
}

func (p *parser) expect(kind rune, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", what, t.describe())
	}
	return t, nil
}

func (p *parser) expectString(what string) (string, error) {
	t := p.next()
	if !t.isString() {
		return "", schema.NewDiagnostic(schema.KindExpectedString, t.pos,
			"expected %s as a string literal, found %s", what, t.describe())
	}
	s, err := strconv.Unquote(t.text)
	if err != nil {
		return "", p.errorf(t, "invalid string literal %s", t.text)
	}
	return s, nil
}

func (p *parser) enum() (schema.Enum, error) {
	kw := p.next()
	name, err := p.expect(scanner.Ident, "enum name")
	if err != nil {
		return schema.Enum{}, err
	}
	if _, err := p.expect('{', "'{' after enum name"); err != nil {
		return schema.Enum{}, err
	}

	e := schema.Enum{Name: name.text, Doc: kw.doc, Pos: kw.pos}
	for {
		t := p.peek()
		if t.kind == '}' {
			p.next()
			break
		}
		if t.kind == scanner.EOF {
			return e, p.errorf(kw, "enum %s is not closed", e.Name)
		}
		v, err := p.variant()
		if err != nil {
			return e, err
		}
		e.Variants = append(e.Variants, v)
		if p.peek().kind == ',' {
			p.next()
		}
	}

	if len(e.Variants) == 0 {
		return e, p.errorf(kw, "enum %s has no variants", e.Name)
	}
	return e, nil
}

func (p *parser) variant() (schema.Variant, error) {
	doc := p.peek().doc
	dirs, errs, err := p.annotations()
	if err != nil {
		return schema.Variant{}, err
	}

	name, err := p.expect(scanner.Ident, "variant name")
	if err != nil {
		return schema.Variant{}, err
	}
	if len(doc) == 0 {
		doc = name.doc
	}

	v := schema.Variant{
		Name:       name.text,
		Directives: dirs,
		Errors:     errs,
		Doc:        doc,
		Pos:        name.pos,
	}

	switch p.peek().kind {
	case '(':
		v.Shape = schema.Positional
		err = p.fields(&v, ')', p.positionalField)
	case '{':
		v.Shape = schema.Named
		err = p.fields(&v, '}', p.namedField)
	default:
		v.Shape = schema.Unit
	}
	return v, err
}

// fields parses a bracketed, comma separated field list.
func (p *parser) fields(v *schema.Variant, closer rune, field func(int, rune) (schema.Field, schema.Diagnostics, error)) error {
	open := p.next()
	for {
		t := p.peek()
		if t.kind == closer {
			p.next()
			return nil
		}
		if t.kind == scanner.EOF {
			return p.errorf(open, "field list of %s is not closed", v.Name)
		}

		f, errs, err := field(len(v.Fields), closer)
		if err != nil {
			return err
		}
		v.Fields = append(v.Fields, f)
		v.Errors = append(v.Errors, errs...)

		switch sep := p.peek(); sep.kind {
		case ',':
			p.next()
		case closer:
		default:
			return p.errorf(sep, "expected ',' or %q in fields of %s, found %s", closer, v.Name, sep.describe())
		}
	}
}

func (p *parser) positionalField(index int, closer rune) (schema.Field, schema.Diagnostics, error) {
	doc := p.peek().doc
	dirs, errs, err := p.annotations()
	if err != nil {
		return schema.Field{}, nil, err
	}
	typ, pos, err := p.typeExpr(closer)
	if err != nil {
		return schema.Field{}, nil, err
	}
	return newField("", index, typ, pos, doc, dirs), errs, nil
}

func (p *parser) namedField(index int, closer rune) (schema.Field, schema.Diagnostics, error) {
	doc := p.peek().doc
	dirs, errs, err := p.annotations()
	if err != nil {
		return schema.Field{}, nil, err
	}
	label, err := p.expect(scanner.Ident, "field label")
	if err != nil {
		return schema.Field{}, nil, err
	}
	if len(doc) == 0 {
		doc = label.doc
	}
	typ, _, err := p.typeExpr(closer)
	if err != nil {
		return schema.Field{}, nil, err
	}
	return newField(label.text, index, typ, label.pos, doc, dirs), errs, nil
}

func newField(label string, index int, typ string, pos schema.Pos, doc []string, dirs []schema.Directive) schema.Field {
	f := schema.Field{Label: label, Index: index, Type: typ, Pos: pos, Doc: doc, Directives: dirs}
	for _, d := range dirs {
		if d.Kind == schema.Ignore {
			f.Ignore = true
		}
	}
	return f
}

// typeExpr captures a Go type expression verbatim, up to a ',' or closer at
// bracket depth zero.
func (p *parser) typeExpr(closer rune) (string, schema.Pos, error) {
	start := p.peek()
	var last token
	depth, n := 0, 0
	for {
		t := p.peek()
		if t.kind == scanner.EOF {
			return "", start.pos, p.errorf(t, "unexpected end of file in field type")
		}
		if depth == 0 && (t.kind == ',' || t.kind == closer) {
			break
		}
		switch t.kind {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return "", start.pos, p.errorf(t, "unbalanced %q in field type", t.text)
			}
		}
		last = p.next()
		n++
	}
	if n == 0 {
		return "", start.pos, p.errorf(start, "expected field type, found %s", start.describe())
	}

	text := string(p.src[start.pos.Offset:last.end])
	if _, err := goparser.ParseExpr(text); err != nil {
		return "", start.pos, p.errorf(start, "invalid field type %q", text)
	}
	return text, start.pos, nil
}

// importedNames are the package names the generated source and test files import.
var importedNames = map[string]bool{"expand": true, "assert": true, "testing": true}

// validate reports names that would collide once generated into one Go package.
func validate(f *schema.File) error {
	var diags schema.Diagnostics
	seen := make(map[string]schema.Pos)

	generated := make(map[string]string)
	for _, e := range f.Enums {
		for _, suffix := range []string{"", "CLI", "Args"} {
			generated["Expand"+e.Name+suffix] = e.Name
		}
	}

	declare := func(name string, pos schema.Pos, what string) {
		switch {
		case gotoken.IsKeyword(name):
			diags.Add(schema.NewDiagnostic(schema.KindUnsupported, pos,
				"%s name %s is a Go keyword", what, name))
		case name == "_" || types.Universe.Lookup(name) != nil:
			diags.Add(schema.NewDiagnostic(schema.KindUnsupported, pos,
				"%s name %s is a predeclared Go identifier", what, name))
		case importedNames[name]:
			diags.Add(schema.NewDiagnostic(schema.KindUnsupported, pos,
				"%s name %s collides with a package imported by generated code", what, name))
		}
		if enum, ok := generated[name]; ok {
			diags.Add(schema.NewDiagnostic(schema.KindDuplicate, pos,
				"%s %s collides with the generated function of enum %s", what, name, enum))
			return
		}
		if prev, ok := seen[name]; ok {
			diags.Add(schema.NewDiagnostic(schema.KindDuplicate, pos,
				"%s %s redeclared; previous declaration at %s", what, name, prev))
			return
		}
		seen[name] = pos
	}

	for _, e := range f.Enums {
		declare(e.Name, e.Pos, "enum")
	}
	for _, e := range f.Enums {
		for _, v := range e.Variants {
			declare(v.Name, v.Pos, "variant")

			labels := make(map[string]bool)
			for _, fld := range v.Fields {
				if fld.Label == "" {
					continue
				}
				goName := fld.GoName()
				if labels[goName] {
					diags.Add(schema.NewDiagnostic(schema.KindDuplicate, fld.Pos,
						"field %s of %s redeclared", fld.Label, v.Name))
				}
				labels[goName] = true
			}
		}
	}
	return diags.Err()
}
