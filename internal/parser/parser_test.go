package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/models"
	"github.com/toyz/argon/pkg/annotation"
	"github.com/toyz/argon/pkg/argument"
)

const storeImportPath = "example.com/app/store"

const storeSource = `package store

import (
	"context"
	"database/sql"

	cfg "example.com/app/config"
	"github.com/labstack/echo/v4"
)

type Repository[T any, ID comparable] struct{}

type User struct{}

type Store struct{}

// NewUserStore creates the store.
//axon::provide -Name=UserStore
//axon::named db primary
//axon::meta db -Kind=pool -size=4
//axon::qualifier cache Region -zone=eu
func NewUserStore(ctx context.Context, db *sql.DB, repo Repository[User, int64], cache map[string][]*User, c cfg.Settings, e *echo.Echo, opts ...string) *Store {
	return nil
}

// helper is not annotated
func helper(x int) {}

//axon::provide
func NewEmpty() *Store { return nil }
`

func parseStore(t *testing.T) *models.PackageMetadata {
	t.Helper()
	metadata, err := NewParser().ParseSource("store.go", storeSource, storeImportPath)
	require.NoError(t, err)
	return metadata
}

func TestParseSourceProviders(t *testing.T) {
	metadata := parseStore(t)

	assert.Equal(t, "store", metadata.PackageName)
	assert.Equal(t, storeImportPath, metadata.ImportPath)
	require.Len(t, metadata.Providers, 2)

	provider := metadata.Providers[0]
	assert.Equal(t, "UserStore", provider.Name)
	assert.Equal(t, "NewUserStore", provider.FunctionName)
	assert.Equal(t, "store.go", provider.FileName)
	assert.Equal(t, 22, provider.Line)

	names := make([]string, len(provider.Parameters))
	for i, p := range provider.Parameters {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"ctx", "db", "repo", "cache", "c", "e", "opts"}, names)

	empty := metadata.Providers[1]
	assert.Equal(t, "NewEmpty", empty.Name)
	assert.Empty(t, empty.Parameters)
}

func TestParseSourceTypes(t *testing.T) {
	params := parseStore(t).Providers[0].Parameters

	user := models.TypeExpr{PkgPath: storeImportPath, Name: "User"}
	pointerTo := func(inner models.TypeExpr) models.TypeExpr {
		inner.Var = argument.PointVar
		return models.TypeExpr{Name: "*", Args: []models.TypeExpr{inner}}
	}

	tests := []struct {
		name string
		want models.TypeExpr
	}{
		{"ctx", models.TypeExpr{PkgPath: "context", Name: "Context"}},
		{"db", pointerTo(models.TypeExpr{PkgPath: "database/sql", Name: "DB"})},
		{"repo", models.TypeExpr{PkgPath: storeImportPath, Name: "Repository", Args: []models.TypeExpr{
			{PkgPath: storeImportPath, Name: "User", Var: "T"},
			{Name: "int64", Var: "ID"},
		}}},
		{"cache", models.TypeExpr{Name: "map", Args: []models.TypeExpr{
			{Name: "string", Var: argument.KeyVar},
			{Name: "[]", Var: argument.ValueVar, Args: []models.TypeExpr{
				{Name: "*", Var: argument.ElemVar, Args: []models.TypeExpr{{PkgPath: user.PkgPath, Name: user.Name, Var: argument.PointVar}}},
			}},
		}}},
		{"c", models.TypeExpr{PkgPath: "example.com/app/config", Name: "Settings"}},
		{"e", pointerTo(models.TypeExpr{PkgPath: "github.com/labstack/echo/v4", Name: "Echo"})},
		{"opts", models.TypeExpr{Name: "[]", Args: []models.TypeExpr{{Name: "string", Var: argument.ElemVar}}}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, params[i].Name)
			assert.Equal(t, tt.want, params[i].Type)
		})
	}
	assert.True(t, params[6].Variadic)
	assert.False(t, params[5].Variadic)
}

func TestParseSourceAnnotations(t *testing.T) {
	params := parseStore(t).Providers[0].Parameters
	db, cache := params[1], params[3]

	qualifier, ok := db.QualifierFact()
	require.True(t, ok)
	assert.True(t, annotation.Of("named", "value", "primary").Equal(qualifier))

	facts := db.MetadataFacts()
	require.Len(t, facts, 1)
	assert.True(t, annotation.Of("pool", "size", "4").Equal(facts[0]))

	qualifier, ok = cache.QualifierFact()
	require.True(t, ok)
	assert.Equal(t, "Region", qualifier.Kind())

	_, ok = params[0].QualifierFact()
	assert.False(t, ok)
}

func TestParsedArgumentsMatchByShape(t *testing.T) {
	params := parseStore(t).Providers[0].Parameters
	repo := params[2].Argument()

	// Same raw type and parameter set, different names and order.
	requested := argument.Of(argument.TypeOf(storeImportPath, "Repository"), "users",
		argument.Of(argument.TypeOf("", "int64"), "K"),
		argument.Of(argument.TypeOf(storeImportPath, "User"), "V"))

	assert.True(t, repo.Equal(requested))
	assert.Equal(t, repo.Hash(), requested.Hash())
	assert.Equal(t, "store.Repository[store.User, int64]", argument.Format(repo))
	assert.Equal(t, "map[string][]*store.User", argument.Format(params[3].Argument()))

	db := params[1].Argument()
	require.NotNil(t, db.Qualifier())
	assert.Equal(t, "named", db.Qualifier().Kind())
	_, ok := db.AnnotatedElements()[0].Annotation("pool")
	assert.True(t, ok)

	opts := params[6].Argument()
	assert.Equal(t, "[]string", argument.Format(opts))
	_, ok = opts.AnnotatedElements()[0].Annotation(models.VariadicKind)
	assert.True(t, ok)
}

func TestParseSourceErrors(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		validation bool
		contains   string
	}{
		{
			name: "method",
			source: `package p
type S struct{}
//axon::provide
func (s *S) New() {}`,
			validation: true,
			contains:   "must annotate a function",
		},
		{
			name: "generic constructor",
			source: `package p
//axon::provide
func New[T any](v T) {}`,
			validation: true,
			contains:   "generic constructors",
		},
		{
			name: "unknown parameter",
			source: `package p
//axon::provide
//axon::named missing primary
func New(db int) {}`,
			validation: true,
			contains:   "no parameter named 'missing'",
		},
		{
			name: "two qualifiers",
			source: `package p
//axon::provide
//axon::named db primary
//axon::qualifier db Replica
func New(db int) {}`,
			validation: true,
			contains:   "already has a qualifier",
		},
		{
			name: "duplicate provider name",
			source: `package p
//axon::provide -Name=Store
func NewA() {}
//axon::provide -Name=Store
func NewB() {}`,
			validation: true,
			contains:   "already used by NewA",
		},
		{
			name: "empty meta",
			source: `package p
//axon::provide
//axon::meta db
func New(db int) {}`,
			validation: true,
			contains:   "carries no fact",
		},
		{
			name: "parameter annotation without provide",
			source: `package p
//axon::named db primary
func New(db int) {}`,
			contains: "require //axon::provide",
		},
		{
			name: "bad annotation",
			source: `package p
//axon::provide -Mode=Transient
func New() {}`,
			validation: true,
			contains:   "unknown parameter",
		},
		{
			name: "unknown kind",
			source: `package p
//axon::route users
func New() {}`,
			contains: "unknown annotation type",
		},
		{
			name: "inline interface",
			source: `package p
//axon::provide
func New(x interface{ Do() }) {}`,
			contains: "inline interface",
		},
		{
			name:     "invalid go",
			source:   `package p func`,
			contains: "failed to parse p.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseSource("p.go", tt.source, "example.com/p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)

			var validationErr *errors.ValidationError
			assert.Equal(t, tt.validation, stderrors.As(err, &validationErr))
		})
	}
}

func TestUnnamedParameters(t *testing.T) {
	metadata, err := NewParser().ParseSource("p.go", `package p
//axon::provide
func New(int, string) {}`, "example.com/p")
	require.NoError(t, err)

	params := metadata.Providers[0].Parameters
	require.Len(t, params, 2)
	assert.Equal(t, "p0", params[0].Name)
	assert.Equal(t, "p1", params[1].Name)
}

func TestParseDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("b.go", `package svc
//axon::provide
func NewB(a *A) *B { return nil }
type B struct{}
`)
	write("a.go", `package svc
//axon::provide
func NewA() *A { return nil }
type A struct{}
`)
	write("a_test.go", `package svc_test
//axon::provide
func NewTest() {}
`)
	write(models.GeneratedFileName, `package svc
//axon::provide
func NewGenerated() {}
`)

	metadata, err := NewParser().ParseDirectory(dir, "example.com/svc")
	require.NoError(t, err)

	assert.Equal(t, "svc", metadata.PackageName)
	assert.Equal(t, dir, metadata.PackagePath)
	require.Len(t, metadata.Providers, 2)
	assert.Equal(t, "NewA", metadata.Providers[0].Name)
	assert.Equal(t, "NewB", metadata.Providers[1].Name)
	assert.Equal(t, models.TypeExpr{Name: "*", Args: []models.TypeExpr{{PkgPath: "example.com/svc", Name: "A", Var: "T"}}},
		metadata.Providers[1].Parameters[0].Type)
}

func TestParseDirectoryErrors(t *testing.T) {
	empty := t.TempDir()
	_, err := NewParser().ParseDirectory(empty, "example.com/empty")
	assert.Error(t, err)

	mixed := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(mixed, "a.go"), []byte("package a\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(mixed, "b.go"), []byte("package b\n"), 0644))
	_, err = NewParser().ParseDirectory(mixed, "example.com/mixed")
	assert.ErrorContains(t, err, "multiple packages")
}

func TestImportName(t *testing.T) {
	tests := map[string]string{
		"context":                     "context",
		"database/sql":                "sql",
		"github.com/labstack/echo/v4": "echo",
		"gopkg.in/yaml.v3":            "yaml",
		"github.com/mattn/go-isatty":  "isatty",
		"example.com/some-pkg":        "some_pkg",
	}
	for input, want := range tests {
		assert.Equal(t, want, importName(input), input)
	}
}
