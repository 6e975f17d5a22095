package annotations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParticipleParser parses //axon:: comments using alecthomas/participle
type ParticipleParser struct {
	parser   *participle.Parser[annotationAST]
	registry AnnotationRegistry
}

type annotationAST struct {
	Kind        string       `parser:"Prefix @Ident"`
	Positionals []string     `parser:"@(Ident | String | Number)*"`
	Options     []*optionAST `parser:"@@*"`
}

type optionAST struct {
	Key   string  `parser:"Dash @Ident"`
	Value *string `parser:"( Equals @(String | Ident | Number) )?"`
}

var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Prefix", Pattern: `//\s*axon::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\-/]*`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// NewParticipleParser creates a parser validating against registry. A nil
// registry skips schema validation.
func NewParticipleParser(registry AnnotationRegistry) *ParticipleParser {
	return &ParticipleParser{
		parser: participle.MustBuild[annotationAST](
			participle.Lexer(annotationLexer),
			participle.Elide("Whitespace"),
			participle.Unquote("String"),
		),
		registry: registry,
	}
}

// IsAnnotation reports whether comment is meant as an axon annotation
func IsAnnotation(comment string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(text, AnnotationPrefix)
}

// ParseAnnotation parses a single annotation comment
func (p *ParticipleParser) ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	raw := strings.TrimSpace(comment)
	tree, err := p.parser.ParseString(location.File, raw)
	if err != nil {
		return nil, &SyntaxError{
			Msg:  err.Error(),
			Loc:  location,
			Hint: "Annotations look like //axon::<kind> [args...] [-Key[=Value]...]",
		}
	}

	annotationType, err := ParseAnnotationType(tree.Kind)
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error(), Loc: location, Hint: "Known kinds: provide, qualifier, named, meta"}
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Parameters: make(map[string]interface{}),
		Location:   location,
		Raw:        raw,
	}
	for _, opt := range tree.Options {
		option := Option{Key: opt.Key}
		if opt.Value != nil {
			option.Value = *opt.Value
			option.Set = true
		}
		parsed.Options = append(parsed.Options, option)
	}

	if p.registry == nil {
		for i, value := range tree.Positionals {
			parsed.Parameters[fmt.Sprintf("%d", i)] = value
		}
		for _, opt := range parsed.Options {
			parsed.Parameters[opt.Key] = optionValue(opt)
		}
		return parsed, nil
	}

	schema, err := p.registry.GetSchema(annotationType)
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error(), Loc: location}
	}
	if err := p.bind(parsed, tree.Positionals, schema); err != nil {
		return nil, err
	}
	parsed.Target = parsed.GetString(ParamParam)
	return parsed, nil
}

// bind assigns positionals and options to schema parameters and validates them
func (p *ParticipleParser) bind(parsed *ParsedAnnotation, positionals []string, schema AnnotationSchema) error {
	loc := parsed.Location

	if len(positionals) > len(schema.Positionals) {
		return newValidationError(schema, "", fmt.Sprintf("expected at most %d positional arguments, got %d",
			len(schema.Positionals), len(positionals)), loc)
	}
	for i, value := range positionals {
		parsed.Parameters[schema.Positionals[i]] = value
	}

	for _, opt := range parsed.Options {
		if contains(schema.Positionals, opt.Key) {
			return newValidationError(schema, opt.Key, "must be given positionally", loc)
		}
		spec, known := schema.Parameters[opt.Key]
		if !known {
			if !schema.Open {
				return newValidationError(schema, opt.Key, "unknown parameter", loc)
			}
			parsed.Parameters[opt.Key] = optionValue(opt)
			continue
		}
		value, err := convertParameterValue(opt, spec)
		if err != nil {
			return newValidationError(schema, opt.Key, err.Error(), loc)
		}
		parsed.Parameters[opt.Key] = value
	}

	for name, spec := range schema.Parameters {
		value, present := parsed.Parameters[name]
		if !present {
			if spec.Required {
				return newValidationError(schema, name, "is required", loc)
			}
			continue
		}
		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return newValidationError(schema, name, err.Error(), loc)
			}
		}
	}
	return nil
}

func optionValue(opt Option) interface{} {
	if !opt.Set {
		return true
	}
	return opt.Value
}

func convertParameterValue(opt Option, spec ParameterSpec) (interface{}, error) {
	switch spec.Type {
	case BoolType:
		if !opt.Set {
			return true, nil
		}
		b, err := strconv.ParseBool(opt.Value)
		if err != nil {
			return nil, fmt.Errorf("expected bool, got '%s'", opt.Value)
		}
		return b, nil
	case IntType:
		if !opt.Set {
			if spec.DefaultValue != nil {
				return spec.DefaultValue, nil
			}
			return nil, fmt.Errorf("expected int value")
		}
		n, err := strconv.Atoi(opt.Value)
		if err != nil {
			return nil, fmt.Errorf("expected int, got '%s'", opt.Value)
		}
		return n, nil
	default:
		if !opt.Set {
			if spec.DefaultValue != nil {
				return spec.DefaultValue, nil
			}
			return nil, fmt.Errorf("expected a value")
		}
		return opt.Value, nil
	}
}
