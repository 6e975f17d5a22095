package models

import (
	"github.com/toyz/argon/internal/annotations"
	"github.com/toyz/argon/pkg/annotation"
	"github.com/toyz/argon/pkg/argument"
)

// TypeExpr is the statically extracted shape of a parameter type
type TypeExpr struct {
	PkgPath string     // import path, empty for predeclared types and builtin shapes
	Name    string     // type name, or a builtin shape name ("[]", "map", "*", "chan", "func")
	Var     string     // name under the parent's type variables, empty at the root
	Args    []TypeExpr // type variables in declaration order
}

// Type returns the raw argument type
func (t TypeExpr) Type() argument.Type {
	return argument.TypeOf(t.PkgPath, t.Name)
}

// Argument builds the argument tree for a type variable
func (t TypeExpr) Argument() argument.Argument {
	return argument.Of(t.Type(), t.Var, t.children()...)
}

func (t TypeExpr) children() []argument.Argument {
	if len(t.Args) == 0 {
		return nil
	}
	out := make([]argument.Argument, len(t.Args))
	for i, arg := range t.Args {
		out[i] = arg.Argument()
	}
	return out
}

// ParameterMetadata describes one constructor parameter
type ParameterMetadata struct {
	Name      string                          // declared parameter name
	Type      TypeExpr                        // parameter type
	Variadic  bool                            // declared as ...T
	Qualifier *annotations.ParsedAnnotation   // //axon::qualifier or //axon::named, if any
	Metadata  []*annotations.ParsedAnnotation // //axon::meta facts, in source order
}

// QualifierFact returns the qualifier as an annotation value
func (p ParameterMetadata) QualifierFact() (annotation.Value, bool) {
	if p.Qualifier == nil {
		return annotation.Value{}, false
	}
	return p.Qualifier.Fact()
}

// VariadicKind marks a parameter declared as ...T. Its type is recorded as a slice.
const VariadicKind = "variadic"

// MetadataFacts returns the metadata annotations as values, followed by the
// variadic marker when the parameter is variadic
func (p ParameterMetadata) MetadataFacts() []annotation.Value {
	var facts []annotation.Value
	for _, meta := range p.Metadata {
		if fact, ok := meta.Fact(); ok {
			facts = append(facts, fact)
		}
	}
	if p.Variadic {
		facts = append(facts, annotation.Of(VariadicKind))
	}
	return facts
}

// Argument builds the runtime argument the generated code describes
func (p ParameterMetadata) Argument() argument.Argument {
	var qualifier annotation.Annotation
	if fact, ok := p.QualifierFact(); ok {
		qualifier = fact
	}
	var metadata []annotation.Annotation
	for _, fact := range p.MetadataFacts() {
		metadata = append(metadata, fact)
	}
	return argument.New(p.Type.Type(), p.Name, qualifier, metadata, p.Type.children()...)
}

// ProviderMetadata describes a constructor annotated with //axon::provide
type ProviderMetadata struct {
	Name         string              // key in the generated table
	FunctionName string              // declared function name
	Parameters   []ParameterMetadata // parameters in declaration order
	FileName     string              // file containing the constructor
	Line         int                 // line of the function declaration
}

// Arguments builds the runtime arguments for every parameter
func (p ProviderMetadata) Arguments() []argument.Argument {
	out := make([]argument.Argument, len(p.Parameters))
	for i, param := range p.Parameters {
		out[i] = param.Argument()
	}
	return out
}

// PackageMetadata represents all providers found in a package
type PackageMetadata struct {
	PackageName string             // Go package name
	PackagePath string             // directory on disk
	ImportPath  string             // import path of the package
	Providers   []ProviderMetadata // providers in source order
}

// GeneratedFileName is the file written into every package with providers.
// Parsing skips it so a package can be regenerated.
const GeneratedFileName = "argon_arguments.go"

// GeneratedFile represents a generated source file
type GeneratedFile struct {
	PackageName string // package the file belongs to
	FilePath    string // path where the file is written
	Content     string // formatted Go source
	Providers   int    // number of providers described
}
