package schema

import (
	"go/ast"
	goparser "go/parser"
	"go/token"

	"github.com/teranos/expandgen/errors"
)

// Arg is one argument of a test directive.
type Arg struct {
	// Label is set for {label: value} arguments
	Label string
	Text  string
	Expr  ast.Expr
}

// TestArgs parses the Go expressions of a Test directive.
func (d Directive) TestArgs() ([]Arg, error) {
	if d.Kind != Test {
		return nil, errors.AssertionFailedf("TestArgs called on %s directive", d.Kind)
	}

	src := "f(" + d.Args + ")"
	if d.Keyed {
		src = "T{" + d.Args + "}"
	}

	fset := token.NewFileSet()
	expr, err := goparser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSyntax, "invalid test arguments %q", d.Args)
	}

	text := func(n ast.Node) string {
		return src[fset.Position(n.Pos()).Offset:fset.Position(n.End()).Offset]
	}

	var args []Arg
	switch e := expr.(type) {
	case *ast.CallExpr:
		if e.Ellipsis.IsValid() {
			return nil, errors.Wrapf(errors.ErrSyntax, "variadic test arguments %q are not supported", d.Args)
		}
		for _, a := range e.Args {
			args = append(args, Arg{Text: text(a), Expr: a})
		}
	case *ast.CompositeLit:
		for _, elt := range e.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				return nil, errors.Wrapf(errors.ErrSyntax, "test argument %q must be written label: value", text(elt))
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				return nil, errors.Wrapf(errors.ErrSyntax, "test argument label %q must be an identifier", text(kv.Key))
			}
			args = append(args, Arg{Label: key.Name, Text: text(kv.Value), Expr: kv.Value})
		}
	default:
		return nil, errors.Wrapf(errors.ErrSyntax, "invalid test arguments %q", d.Args)
	}
	return args, nil
}
