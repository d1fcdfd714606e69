package testgen

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"strconv"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/expand"
	"github.com/teranos/expandgen/render"
)

// ErrNotLiteral is returned for argument expressions Evaluator cannot
// compute, such as function calls.
var ErrNotLiteral = errors.New("not a literal")

// Evaluator computes the values of literal argument expressions: strings,
// numbers, booleans, nil, negation and known identifiers.
type Evaluator struct {
	// Symbols maps identifiers, optionally package qualified, to values
	Symbols map[string]any
	// BareSymbols renders unknown identifiers by their name
	BareSymbols bool
}

// Eval computes the value of e.
func (ev Evaluator) Eval(e ast.Expr) (any, error) {
	switch x := e.(type) {
	case *ast.ParenExpr:
		return ev.Eval(x.X)

	case *ast.BasicLit:
		return basicLit(x)

	case *ast.Ident:
		switch x.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "nil":
			return nil, nil
		}
		return ev.symbol(x.Name, x.Name)

	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		if !ok {
			return nil, errors.Wrapf(ErrNotLiteral, "selector %s", x.Sel.Name)
		}
		return ev.symbol(pkg.Name+"."+x.Sel.Name, x.Sel.Name)

	case *ast.UnaryExpr:
		v, err := ev.Eval(x.X)
		if err != nil {
			return nil, err
		}
		return unary(x.Op, v)
	}
	return nil, errors.Wrapf(ErrNotLiteral, "%T", e)
}

func (ev Evaluator) symbol(qualified, name string) (any, error) {
	if v, ok := ev.Symbols[qualified]; ok {
		return v, nil
	}
	if v, ok := ev.Symbols[name]; ok {
		return v, nil
	}
	if ev.BareSymbols {
		return expand.Symbol(name), nil
	}
	return nil, errors.Wrapf(ErrNotLiteral, "unknown identifier %s", qualified)
}

func basicLit(x *ast.BasicLit) (any, error) {
	switch x.Kind {
	case token.INT:
		i, err := strconv.ParseInt(x.Value, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrNotLiteral, "integer %s", x.Value)
		}
		return int(i), nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrNotLiteral, "float %s", x.Value)
		}
		return f, nil
	case token.STRING:
		s, err := strconv.Unquote(x.Value)
		if err != nil {
			return nil, errors.Wrapf(ErrNotLiteral, "string %s", x.Value)
		}
		return s, nil
	case token.CHAR:
		s, err := strconv.Unquote(x.Value)
		if err != nil {
			return nil, errors.Wrapf(ErrNotLiteral, "rune %s", x.Value)
		}
		return s, nil
	}
	return nil, errors.Wrapf(ErrNotLiteral, "%s literal", x.Kind)
}

func unary(op token.Token, v any) (any, error) {
	switch op {
	case token.SUB:
		switch n := v.(type) {
		case int:
			return -n, nil
		case float64:
			return -n, nil
		}
	case token.ADD:
		switch v.(type) {
		case int, float64:
			return v, nil
		}
	case token.NOT:
		if b, ok := v.(bool); ok {
			return !b, nil
		}
	}
	return nil, errors.Wrapf(ErrNotLiteral, "%s applied to %T", op, v)
}

// Instance builds the render instance described by c.
func (ev Evaluator) Instance(c Case) (render.Instance, error) {
	in := render.Instance{Variant: c.Variant}
	for _, a := range c.Args {
		v, err := ev.Eval(a.Expr)
		if err != nil {
			return render.Instance{}, errors.Wrapf(err, "argument %s", a.Text)
		}
		if c.Keyed {
			if in.Named == nil {
				in.Named = make(map[string]any)
			}
			in.Named[a.Label] = v
			continue
		}
		in.Args = append(in.Args, v)
	}
	return in, nil
}

// ParseInstance parses a constructor expression such as
// BandwidthRate(256, MBits), HashPassword{password: "pw"} or ControlPortAuto.
func (ev Evaluator) ParseInstance(src string) (render.Instance, error) {
	e, err := goparser.ParseExpr(src)
	if err != nil {
		return render.Instance{}, errors.Wrapf(errors.ErrSyntax, "invalid instance %q", src)
	}

	var (
		name  string
		args  []ast.Expr
		keyed bool
	)
	switch x := e.(type) {
	case *ast.Ident:
		name = x.Name
	case *ast.CallExpr:
		id, ok := x.Fun.(*ast.Ident)
		if !ok || x.Ellipsis.IsValid() {
			return render.Instance{}, errors.Wrapf(errors.ErrSyntax, "instance %q must be Variant(args...)", src)
		}
		name, args = id.Name, x.Args
	case *ast.CompositeLit:
		id, ok := x.Type.(*ast.Ident)
		if !ok {
			return render.Instance{}, errors.Wrapf(errors.ErrSyntax, "instance %q must be Variant{...}", src)
		}
		name, args = id.Name, x.Elts
		if len(args) > 0 {
			_, keyed = args[0].(*ast.KeyValueExpr)
		}
	default:
		return render.Instance{}, errors.Wrapf(errors.ErrSyntax, "instance %q must name a variant", src)
	}

	in := render.Instance{Variant: name}
	for _, a := range args {
		kv, isKV := a.(*ast.KeyValueExpr)
		if isKV != keyed {
			return render.Instance{}, errors.Wrapf(errors.ErrSyntax, "instance %q mixes labeled and positional arguments", src)
		}
		if !keyed {
			v, err := ev.Eval(a)
			if err != nil {
				return render.Instance{}, err
			}
			in.Args = append(in.Args, v)
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			return render.Instance{}, errors.Wrapf(errors.ErrSyntax, "instance %q has a non-identifier label", src)
		}
		v, err := ev.Eval(kv.Value)
		if err != nil {
			return render.Instance{}, err
		}
		if in.Named == nil {
			in.Named = make(map[string]any)
		}
		in.Named[key.Name] = v
	}
	return in, nil
}
