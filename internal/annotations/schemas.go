package annotations

import (
	"fmt"
	"go/token"
)

// ProvideAnnotationSchema defines the schema for //axon::provide annotations
var ProvideAnnotationSchema = AnnotationSchema{
	Type:        ProvideAnnotation,
	Description: "Marks a constructor whose parameters are described ahead of time",
	Parameters: map[string]ParameterSpec{
		ParamAlias: {
			Type:        StringType,
			Description: "Key used for the constructor in the generated table (defaults to the function name)",
			Validator:   validateIdentifier,
		},
	},
	Examples: []string{
		"//axon::provide",
		"//axon::provide -Name=UserStore",
	},
}

// QualifierAnnotationSchema defines the schema for //axon::qualifier annotations
var QualifierAnnotationSchema = AnnotationSchema{
	Type:        QualifierAnnotation,
	Description: "Attaches a qualifier to a constructor parameter",
	Positionals: []string{ParamParam, ParamValue},
	Parameters: map[string]ParameterSpec{
		ParamParam: {Type: StringType, Required: true, Description: "Parameter name", Validator: validateIdentifier},
		ParamValue: {Type: StringType, Required: true, Description: "Qualifier kind", Validator: validateIdentifier},
	},
	Open: true,
	Examples: []string{
		"//axon::qualifier db Primary",
		"//axon::qualifier cache Region -zone=eu",
	},
}

// NamedAnnotationSchema defines the schema for //axon::named annotations
var NamedAnnotationSchema = AnnotationSchema{
	Type:        NamedAnnotation,
	Description: "Qualifies a constructor parameter by name",
	Positionals: []string{ParamParam, ParamName},
	Parameters: map[string]ParameterSpec{
		ParamParam: {Type: StringType, Required: true, Description: "Parameter name", Validator: validateIdentifier},
		ParamName:  {Type: StringType, Required: true, Description: "Name of the wanted implementation"},
	},
	Examples: []string{
		"//axon::named db reports",
		`//axon::named db "read replica"`,
	},
}

// MetaAnnotationSchema defines the schema for //axon::meta annotations
var MetaAnnotationSchema = AnnotationSchema{
	Type:        MetaAnnotation,
	Description: "Attaches a descriptive fact to a constructor parameter",
	Positionals: []string{ParamParam},
	Parameters: map[string]ParameterSpec{
		ParamParam: {Type: StringType, Required: true, Description: "Parameter name", Validator: validateIdentifier},
		ParamKind: {
			Type:         StringType,
			DefaultValue: "meta",
			Description:  "Kind of the attached fact",
			Validator:    validateIdentifier,
		},
	},
	Open: true,
	Examples: []string{
		"//axon::meta db -Kind=pool -size=4",
		"//axon::meta logger -optional",
	},
}

// RegisterBuiltinSchemas registers all builtin annotation schemas
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	schemas := []AnnotationSchema{
		ProvideAnnotationSchema,
		QualifierAnnotationSchema,
		NamedAnnotationSchema,
		MetaAnnotationSchema,
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type, err)
		}
	}
	return nil
}

func validateIdentifier(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("must be a string, got %T", v)
	}
	if !token.IsIdentifier(s) {
		return fmt.Errorf("'%s' is not a valid identifier", s)
	}
	return nil
}
