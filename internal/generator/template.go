package generator

const fileTemplate = `// Code generated by argon. DO NOT EDIT.
// This file was automatically generated and should not be modified manually.

package {{.PackageName}}

import (
	"github.com/toyz/argon/pkg/annotation"
	"github.com/toyz/argon/pkg/argument"
)

// ProviderNames lists the providers of this package in source order.
var ProviderNames = []string{
{{- range .Providers}}
	{{quote .Name}},
{{- end}}
}

// ProviderArguments describes the parameters of each provider, keyed by
// provider name.
var ProviderArguments = map[string][]argument.Argument{
{{- range .Providers}}
	// {{.FunctionName}} ({{base .FileName}}:{{.Line}})
	{{quote .Name}}: {
	{{- range .Parameters}}
		{{parameter .}},
	{{- end}}
	},
{{- end}}
}
`
