package parser

import (
	"fmt"
	"go/ast"
	"go/types"
	"path"
	"strconv"
	"strings"

	"github.com/toyz/argon/internal/models"
	"github.com/toyz/argon/pkg/argument"
)

// typeResolver turns parameter type expressions of one file into TypeExprs
type typeResolver struct {
	importPath string
	imports    map[string]string   // local package name -> import path
	generics   map[string][]string // local generic type -> type parameter names
}

func newTypeResolver(file *ast.File, importPath string, generics map[string][]string) *typeResolver {
	imports := make(map[string]string)
	for _, spec := range file.Imports {
		imported, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := importName(imported)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = imported
	}
	return &typeResolver{
		importPath: importPath,
		imports:    imports,
		generics:   generics,
	}
}

// importName guesses the package name of an import path: the last element,
// skipping a major version suffix and trimming a dotted suffix such as
// "yaml.v3".
func importName(importPath string) string {
	name := path.Base(importPath)
	if isMajorVersion(name) {
		name = path.Base(path.Dir(importPath))
	}
	if i := strings.Index(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "go-")
	return strings.ReplaceAll(name, "-", "_")
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil
}

// collectGenericDecls records the type parameter names of every generic type
// declared in file
func collectGenericDecls(file *ast.File, generics map[string][]string) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.TypeParams == nil {
				continue
			}
			var names []string
			for _, field := range typeSpec.TypeParams.List {
				for _, name := range field.Names {
					names = append(names, name.Name)
				}
			}
			generics[typeSpec.Name.Name] = names
		}
	}
}

func (r *typeResolver) resolve(expr ast.Expr) (models.TypeExpr, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if isPredeclared(t.Name) {
			return models.TypeExpr{Name: t.Name}, nil
		}
		return models.TypeExpr{PkgPath: r.importPath, Name: t.Name}, nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return models.TypeExpr{}, fmt.Errorf("unsupported qualified type %T", t.X)
		}
		importPath, ok := r.imports[pkg.Name]
		if !ok {
			importPath = pkg.Name
		}
		return models.TypeExpr{PkgPath: importPath, Name: t.Sel.Name}, nil
	case *ast.ParenExpr:
		return r.resolve(t.X)
	case *ast.StarExpr:
		return r.composite(argument.PointerType, []string{argument.PointVar}, t.X)
	case *ast.ArrayType:
		return r.composite(argument.SliceType, []string{argument.ElemVar}, t.Elt)
	case *ast.MapType:
		return r.composite(argument.MapType, []string{argument.KeyVar, argument.ValueVar}, t.Key, t.Value)
	case *ast.ChanType:
		return r.composite(argument.ChanType, []string{argument.PointVar}, t.Value)
	case *ast.FuncType:
		return models.TypeExpr{Name: argument.FuncType.Name}, nil
	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return models.TypeExpr{Name: "any"}, nil
		}
		return models.TypeExpr{}, fmt.Errorf("inline interface types are not supported, declare a named interface")
	case *ast.IndexExpr:
		return r.instance(t.X, []ast.Expr{t.Index})
	case *ast.IndexListExpr:
		return r.instance(t.X, t.Indices)
	default:
		return models.TypeExpr{}, fmt.Errorf("unsupported parameter type %T", expr)
	}
}

func (r *typeResolver) composite(shape argument.Type, vars []string, elems ...ast.Expr) (models.TypeExpr, error) {
	out := models.TypeExpr{Name: shape.Name}
	for i, elem := range elems {
		child, err := r.resolve(elem)
		if err != nil {
			return models.TypeExpr{}, err
		}
		child.Var = vars[i]
		out.Args = append(out.Args, child)
	}
	return out, nil
}

// instance resolves a generic instantiation. Type parameter names come from
// the local declaration when there is one, otherwise T, T1, T2, ...
func (r *typeResolver) instance(base ast.Expr, indices []ast.Expr) (models.TypeExpr, error) {
	out, err := r.resolve(base)
	if err != nil {
		return models.TypeExpr{}, err
	}
	if len(out.Args) > 0 {
		return models.TypeExpr{}, fmt.Errorf("cannot instantiate composite type %s", out.Name)
	}

	var declared []string
	if out.PkgPath == r.importPath {
		declared = r.generics[out.Name]
	}
	for i, index := range indices {
		child, err := r.resolve(index)
		if err != nil {
			return models.TypeExpr{}, err
		}
		child.Var = typeParamName(declared, i)
		out.Args = append(out.Args, child)
	}
	return out, nil
}

func typeParamName(declared []string, i int) string {
	if i < len(declared) {
		return declared[i]
	}
	if i == 0 {
		return "T"
	}
	return fmt.Sprintf("T%d", i)
}

func isPredeclared(name string) bool {
	_, ok := types.Universe.Lookup(name).(*types.TypeName)
	return ok
}
