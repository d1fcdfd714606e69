package codegen

import (
	"go/ast"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
)

// CheckCustomFuncs loads the Go package in dir and reports every custom
// function of s that is missing or not shaped func(<Enum>) string.
//
// Only syntax is loaded, so the check works before the generated file that
// declares the enum types exists.
func CheckCustomFuncs(dir string, s *resolve.Schema) (schema.Diagnostics, error) {
	if !hasCustom(s) {
		return nil, nil
	}

	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:   dir,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package in %s", dir)
	}

	var files []*ast.File
	for _, pkg := range pkgs {
		files = append(files, pkg.Syntax...)
	}
	return checkFuncs(files, s), nil
}

func hasCustom(s *resolve.Schema) bool {
	for _, r := range s.All() {
		if r.State == resolve.CustomResolved {
			return true
		}
	}
	return false
}

// checkFuncs matches custom function references against top-level function
// declarations in files.
func checkFuncs(files []*ast.File, s *resolve.Schema) schema.Diagnostics {
	funcs := make(map[string]*ast.FuncDecl)
	for _, f := range files {
		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if ok && fn.Recv == nil {
				funcs[fn.Name.Name] = fn
			}
		}
	}

	var diags schema.Diagnostics
	for _, r := range s.All() {
		if r.State != resolve.CustomResolved {
			continue
		}
		d := r.Variant.DirectivesOf(schema.Custom)[0]

		fn, ok := funcs[r.Custom]
		if !ok {
			diags.Add(schema.NewDiagnostic(schema.KindCustomFunc, d.Pos, "custom function %s is not declared in the package", r.Custom).
				WithDirective(d.Text).
				WithSuggestions("declare func " + r.Custom + "(v " + r.Enum + ") string"))
			continue
		}
		if !hasShape(fn.Type, r.Enum) {
			diags.Add(schema.NewDiagnostic(schema.KindCustomFunc, d.Pos, "custom function %s must have signature func(%s) string", r.Custom, r.Enum).
				WithDirective(d.Text))
		}
	}
	return diags
}

func hasShape(ft *ast.FuncType, enum string) bool {
	if ft.TypeParams != nil && len(ft.TypeParams.List) > 0 {
		return false
	}
	if ft.Params == nil || ft.Results == nil {
		return false
	}
	if fieldCount(ft.Params) != 1 || fieldCount(ft.Results) != 1 {
		return false
	}
	return isIdent(ft.Params.List[0].Type, enum) && isIdent(ft.Results.List[0].Type, "string")
}

func fieldCount(fl *ast.FieldList) int {
	n := 0
	for _, f := range fl.List {
		if len(f.Names) == 0 {
			n++
			continue
		}
		n += len(f.Names)
	}
	return n
}

func isIdent(e ast.Expr, name string) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == name
}
