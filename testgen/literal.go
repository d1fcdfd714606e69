package testgen

import (
	"bytes"
	"go/ast"
	goparser "go/parser"
	"go/printer"
	"go/token"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/schema"
)

// Literal returns the Go composite literal that constructs the case's value
// as the generated struct typeName. Positional arguments stay unkeyed so the
// compiler checks their count; labels become exported field names.
func (c Case) Literal(typeName string) (string, error) {
	if !c.Keyed {
		return typeName + "{" + c.Source + "}", nil
	}

	src := "T{" + c.Source + "}"
	fset := token.NewFileSet()
	e, err := goparser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return "", errors.Wrapf(errors.ErrSyntax, "%s: invalid test arguments %q", c.Pos, c.Source)
	}
	lit, ok := e.(*ast.CompositeLit)
	if !ok {
		return "", errors.Wrapf(errors.ErrSyntax, "%s: invalid test arguments %q", c.Pos, c.Source)
	}

	lit.Type = ast.NewIdent(typeName)
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if key, ok := kv.Key.(*ast.Ident); ok {
			key.Name = schema.Exported(key.Name)
		}
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, lit); err != nil {
		return "", errors.Wrap(err, "printing test literal")
	}
	return buf.String(), nil
}
