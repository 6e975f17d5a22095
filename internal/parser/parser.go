package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"github.com/toyz/argon/internal/annotations"
	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/models"
)

// Parser implements the AnnotationParser interface
type Parser struct {
	fileSet     *token.FileSet
	annotations *annotations.ParticipleParser
}

// NewParser creates a parser using the builtin annotation schemas
func NewParser() *Parser {
	return &Parser{
		fileSet:     token.NewFileSet(),
		annotations: annotations.NewParticipleParser(annotations.DefaultRegistry()),
	}
}

// ParseSource parses source code from a string
func (p *Parser) ParseSource(filename, source, importPath string) (*models.PackageMetadata, error) {
	file, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(filename, err)
	}

	metadata := &models.PackageMetadata{
		PackageName: file.Name.Name,
		PackagePath: "./",
		ImportPath:  importPath,
	}
	if err := p.processFiles(metadata, []namedFile{{name: filename, file: file}}); err != nil {
		return nil, err
	}
	return metadata, nil
}

// ParseDirectory scans the Go files in dir for //axon::provide constructors
func (p *Parser) ParseDirectory(dir, importPath string) (*models.PackageMetadata, error) {
	pkgs, err := parser.ParseDir(p.fileSet, dir, includeFile, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(fmt.Sprintf("directory %s", dir), err)
	}

	if len(pkgs) == 0 {
		return nil, errors.Newf(errors.SyntaxErrorCode, "no Go packages found in directory %s", dir)
	}
	if len(pkgs) > 1 {
		return nil, errors.Newf(errors.SyntaxErrorCode, "multiple packages found in directory %s", dir)
	}

	var pkg *ast.Package
	var packageName string
	for name, candidate := range pkgs {
		pkg = candidate
		packageName = name
	}

	metadata := &models.PackageMetadata{
		PackageName: packageName,
		PackagePath: dir,
		ImportPath:  importPath,
	}

	// Map iteration order is random; sort so output is stable.
	files := make([]namedFile, 0, len(pkg.Files))
	for name, file := range pkg.Files {
		files = append(files, namedFile{name: name, file: file})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	if err := p.processFiles(metadata, files); err != nil {
		return nil, err
	}
	return metadata, nil
}

func includeFile(info fs.FileInfo) bool {
	name := info.Name()
	return !strings.HasSuffix(name, "_test.go") && name != models.GeneratedFileName
}

type namedFile struct {
	name string
	file *ast.File
}

func (p *Parser) processFiles(metadata *models.PackageMetadata, files []namedFile) error {
	generics := make(map[string][]string)
	for _, f := range files {
		collectGenericDecls(f.file, generics)
	}

	seen := make(map[string]string)
	for _, f := range files {
		resolver := newTypeResolver(f.file, metadata.ImportPath, generics)
		for _, decl := range f.file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Doc == nil {
				continue
			}
			provider, ok, err := p.parseProvider(funcDecl, f.name, resolver)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if previous, exists := seen[provider.Name]; exists {
				return errors.NewValidationError("provider", provider.Name,
					fmt.Sprintf("provider name '%s' already used by %s", provider.Name, previous)).
					WithLocation(errors.SourceLocation{File: f.name, Line: provider.Line}).
					WithSuggestion("Use -Name=<Alias> on one of the //axon::provide annotations")
			}
			seen[provider.Name] = provider.FunctionName
			metadata.Providers = append(metadata.Providers, provider)
		}
	}
	return nil
}

// parseProvider reads the doc comment of fn. ok is false when fn carries no
// //axon::provide annotation.
func (p *Parser) parseProvider(fn *ast.FuncDecl, fileName string, resolver *typeResolver) (models.ProviderMetadata, bool, error) {
	var provide *annotations.ParsedAnnotation
	var paramAnnotations []*annotations.ParsedAnnotation

	for _, comment := range fn.Doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}
		pos := p.fileSet.Position(comment.Pos())
		loc := annotations.SourceLocation{File: fileName, Line: pos.Line, Column: pos.Column}
		parsed, err := p.annotations.ParseAnnotation(comment.Text, loc)
		if err != nil {
			return models.ProviderMetadata{}, false, errors.WrapAnnotationError(err)
		}
		if parsed.Type == annotations.ProvideAnnotation {
			provide = parsed
			continue
		}
		paramAnnotations = append(paramAnnotations, parsed)
	}

	if provide == nil {
		if len(paramAnnotations) > 0 {
			first := paramAnnotations[0]
			return models.ProviderMetadata{}, false, errors.NewAnnotationSyntaxError(
				first.Type.String(), first.Raw, "parameter annotations require //axon::provide on the same function").
				WithLocation(errors.SourceLocation{File: fileName, Line: first.Location.Line, Column: first.Location.Column})
		}
		return models.ProviderMetadata{}, false, nil
	}

	line := p.fileSet.Position(fn.Pos()).Line
	location := errors.SourceLocation{File: fileName, Line: line}

	if fn.Recv != nil {
		return models.ProviderMetadata{}, false, errors.NewValidationError("provide", fn.Name.Name,
			"//axon::provide must annotate a function, not a method").WithLocation(location)
	}
	if fn.Type.TypeParams != nil && len(fn.Type.TypeParams.List) > 0 {
		return models.ProviderMetadata{}, false, errors.NewValidationError("provide", fn.Name.Name,
			"generic constructors cannot be described statically").WithLocation(location)
	}

	provider := models.ProviderMetadata{
		Name:         provide.GetString(annotations.ParamAlias, fn.Name.Name),
		FunctionName: fn.Name.Name,
		FileName:     fileName,
		Line:         line,
	}

	params, err := p.extractParameters(fn, resolver, location)
	if err != nil {
		return models.ProviderMetadata{}, false, err
	}
	if err := attachAnnotations(params, paramAnnotations, fileName); err != nil {
		return models.ProviderMetadata{}, false, err
	}
	provider.Parameters = params
	return provider, true, nil
}

func (p *Parser) extractParameters(fn *ast.FuncDecl, resolver *typeResolver, location errors.SourceLocation) ([]models.ParameterMetadata, error) {
	var params []models.ParameterMetadata
	if fn.Type.Params == nil {
		return params, nil
	}

	for _, field := range fn.Type.Params.List {
		expr := field.Type
		variadic := false
		if ellipsis, ok := expr.(*ast.Ellipsis); ok {
			variadic = true
			expr = &ast.ArrayType{Elt: ellipsis.Elt}
		}

		typeExpr, err := resolver.resolve(expr)
		if err != nil {
			return nil, errors.WrapParseError(fmt.Sprintf("parameter type of %s", fn.Name.Name), err).
				WithLocation(location)
		}

		names := field.Names
		if len(names) == 0 {
			names = []*ast.Ident{ast.NewIdent(fmt.Sprintf("p%d", len(params)))}
		}
		for _, name := range names {
			params = append(params, models.ParameterMetadata{
				Name:     name.Name,
				Type:     typeExpr,
				Variadic: variadic,
			})
		}
	}
	return params, nil
}

func attachAnnotations(params []models.ParameterMetadata, parsed []*annotations.ParsedAnnotation, fileName string) error {
	for _, ann := range parsed {
		location := errors.SourceLocation{File: fileName, Line: ann.Location.Line, Column: ann.Location.Column}
		index := -1
		for i := range params {
			if params[i].Name == ann.Target {
				index = i
				break
			}
		}
		if index < 0 {
			return errors.NewValidationError(ann.Type.String(), ann.Target,
				fmt.Sprintf("no parameter named '%s'", ann.Target)).WithLocation(location)
		}

		param := &params[index]
		if ann.IsQualifier() {
			if param.Qualifier != nil {
				return errors.NewValidationError(ann.Type.String(), ann.Target,
					fmt.Sprintf("parameter '%s' already has a qualifier", ann.Target)).WithLocation(location)
			}
			param.Qualifier = ann
			continue
		}
		if ann.Type == annotations.MetaAnnotation && !ann.HasParameter(annotations.ParamKind) && len(ann.Options) == 0 {
			return errors.NewValidationError(ann.Type.String(), ann.Target, "carries no fact").
				WithLocation(location).
				WithSuggestion("Give the fact a kind or an attribute, for example //axon::meta " + ann.Target + " -Kind=pool")
		}
		param.Metadata = append(param.Metadata, ann)
	}
	return nil
}
