package annotations

import (
	"fmt"

	"github.com/toyz/argon/pkg/annotation"
)

// AnnotationType represents the type of annotation
type AnnotationType int

const (
	ProvideAnnotation AnnotationType = iota
	QualifierAnnotation
	NamedAnnotation
	MetaAnnotation
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case ProvideAnnotation:
		return "provide"
	case QualifierAnnotation:
		return "qualifier"
	case NamedAnnotation:
		return "named"
	case MetaAnnotation:
		return "meta"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts string to AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "provide":
		return ProvideAnnotation, nil
	case "qualifier":
		return QualifierAnnotation, nil
	case "named":
		return NamedAnnotation, nil
	case "meta":
		return MetaAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %s", s)
	}
}

// SourceLocation represents the location of an annotation in source code
type SourceLocation struct {
	File   string // File path
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Option is a -Key or -Key=Value item, kept in source order
type Option struct {
	Key   string
	Value string
	Set   bool // false for a bare -Key flag
}

// ParsedAnnotation represents a fully parsed annotation with type-safe parameters
type ParsedAnnotation struct {
	Type       AnnotationType         // Annotation type enum
	Target     string                 // Parameter name the annotation applies to, empty for provide
	Parameters map[string]interface{} // Positionals and options, converted per schema
	Options    []Option               // Options in source order
	Location   SourceLocation         // Source location
	Raw        string                 // Original annotation text
}

// Kind implements annotation.Annotation
func (p *ParsedAnnotation) Kind() string {
	return p.Type.String()
}

// GetString returns a string parameter value with optional default
func (p *ParsedAnnotation) GetString(paramName string, defaultValue ...string) string {
	if value, exists := p.Parameters[paramName]; exists {
		if strValue, ok := value.(string); ok {
			return strValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// HasParameter checks if a parameter exists
func (p *ParsedAnnotation) HasParameter(paramName string) bool {
	_, exists := p.Parameters[paramName]
	return exists
}

// Fact converts the annotation into the fact attached to the target
// argument. Provide annotations describe the constructor, not an argument,
// and yield false.
//
//	//axon::qualifier db Primary -region=eu   -> @Primary(region="eu")
//	//axon::named db reports                  -> @named(value="reports")
//	//axon::meta db -Kind=pool -size=4        -> @pool(size="4")
func (p *ParsedAnnotation) Fact() (annotation.Value, bool) {
	switch p.Type {
	case QualifierAnnotation:
		return annotation.Of(p.GetString(ParamValue), p.optionAttrs()...), true
	case NamedAnnotation:
		return annotation.Of(NamedAnnotation.String(), ParamValue, p.GetString(ParamName)), true
	case MetaAnnotation:
		return annotation.Of(p.GetString(ParamKind, MetaAnnotation.String()), p.optionAttrs(ParamKind)...), true
	default:
		return annotation.Value{}, false
	}
}

// IsQualifier reports whether the fact selects an implementation rather than
// describing the slot.
func (p *ParsedAnnotation) IsQualifier() bool {
	return p.Type == QualifierAnnotation || p.Type == NamedAnnotation
}

func (p *ParsedAnnotation) optionAttrs(skip ...string) []string {
	var attrs []string
	for _, opt := range p.Options {
		if contains(skip, opt.Key) {
			continue
		}
		value := opt.Value
		if !opt.Set {
			value = "true"
		}
		attrs = append(attrs, opt.Key, value)
	}
	return attrs
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ParameterType represents the type of a parameter
type ParameterType int

const (
	StringType ParameterType = iota
	BoolType
	IntType
)

// String returns the string representation of the parameter type
func (p ParameterType) String() string {
	switch p {
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for an annotation parameter
type ParameterSpec struct {
	Type         ParameterType           // Parameter type
	Required     bool                    // Whether parameter is required
	DefaultValue interface{}             // Default value if not provided
	Description  string                  // Parameter description
	Validator    func(interface{}) error // Custom validator function
}

// AnnotationSchema defines the schema for an annotation type
type AnnotationSchema struct {
	Type        AnnotationType           // Annotation type enum
	Description string                   // Human-readable description
	Positionals []string                 // Names of positional parameters, in order
	Parameters  map[string]ParameterSpec // Parameter specifications, positionals included
	Open        bool                     // Accept options not listed in Parameters
	Examples    []string                 // Usage examples
}
