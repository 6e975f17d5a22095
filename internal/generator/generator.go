package generator

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/models"
	"github.com/toyz/argon/internal/utils"
	"github.com/toyz/argon/pkg/annotation"
	"github.com/toyz/argon/pkg/argument"
)

// Generator implements the CodeGenerator interface
type Generator struct {
	template *template.Template
}

// NewGenerator creates a new code generator instance
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("arguments").Funcs(template.FuncMap{
			"base":      filepath.Base,
			"quote":     strconv.Quote,
			"parameter": renderParameter,
		}).Parse(fileTemplate)),
	}
}

// Generate renders argon_arguments.go for a package
func (g *Generator) Generate(metadata *models.PackageMetadata) (*models.GeneratedFile, error) {
	if metadata == nil {
		return nil, errors.NewGenerationError(models.GeneratedFileName, "render", "package metadata cannot be nil")
	}

	filePath := filepath.Join(metadata.PackagePath, models.GeneratedFileName)

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, metadata); err != nil {
		return nil, errors.WrapGenerateError("render", filePath, err)
	}

	formatted, err := utils.FormatGoCode(filePath, buf.Bytes())
	if err != nil {
		return nil, errors.WrapGenerateError("format", filePath, err).
			WithContext("source", buf.String())
	}

	return &models.GeneratedFile{
		PackageName: metadata.PackageName,
		FilePath:    filePath,
		Content:     string(formatted),
		Providers:   len(metadata.Providers),
	}, nil
}

// renderParameter renders the argument.New call for one parameter
func renderParameter(param models.ParameterMetadata) string {
	qualifier := "nil"
	if fact, ok := param.QualifierFact(); ok {
		qualifier = renderFact(fact)
	}

	metadata := "nil"
	if facts := param.MetadataFacts(); len(facts) > 0 {
		rendered := make([]string, len(facts))
		for i, fact := range facts {
			rendered[i] = renderFact(fact)
		}
		metadata = "[]annotation.Annotation{" + strings.Join(rendered, ", ") + "}"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "argument.New(%s, %s, %s, %s", renderType(param.Type), strconv.Quote(param.Name), qualifier, metadata)
	for _, child := range param.Type.Args {
		b.WriteString(", ")
		b.WriteString(renderTypeArgument(child))
	}
	b.WriteString(")")
	return b.String()
}

func renderTypeArgument(expr models.TypeExpr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "argument.Of(%s, %s", renderType(expr), strconv.Quote(expr.Var))
	for _, child := range expr.Args {
		b.WriteString(", ")
		b.WriteString(renderTypeArgument(child))
	}
	b.WriteString(")")
	return b.String()
}

func renderType(expr models.TypeExpr) string {
	switch expr.Type() {
	case argument.SliceType:
		return "argument.SliceType"
	case argument.MapType:
		return "argument.MapType"
	case argument.PointerType:
		return "argument.PointerType"
	case argument.ChanType:
		return "argument.ChanType"
	case argument.FuncType:
		return "argument.FuncType"
	}
	return fmt.Sprintf("argument.TypeOf(%s, %s)", strconv.Quote(expr.PkgPath), strconv.Quote(expr.Name))
}

func renderFact(fact annotation.Value) string {
	parts := []string{strconv.Quote(fact.Kind())}
	for _, attr := range fact.Attrs() {
		parts = append(parts, strconv.Quote(attr.Key), strconv.Quote(attr.Value))
	}
	return "annotation.Of(" + strings.Join(parts, ", ") + ")"
}
