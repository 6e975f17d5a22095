package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoModParser(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "internal", "store")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/app\n\ngo 1.25\n"), 0644))

	parser := NewGoModParser(NewFileReader())

	goMod, err := parser.FindGoModFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "go.mod"), goMod)

	name, err := parser.ParseModuleName(goMod)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", name)

	require.NoError(t, os.WriteFile(goMod, []byte("module example.com/renamed\n"), 0644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(goMod, future, future))

	name, err = parser.ParseModuleName(goMod)
	require.NoError(t, err)
	assert.Equal(t, "example.com/renamed", name)
}

func TestGoModParserErrors(t *testing.T) {
	dir := t.TempDir()
	parser := NewGoModParser(NewFileReader())

	_, err := parser.ParseModuleName(filepath.Join(dir, "other.txt"))
	assert.ErrorContains(t, err, "not a go.mod file")

	_, err = parser.ParseModuleName(filepath.Join(dir, "go.mod"))
	assert.ErrorContains(t, err, "failed to read go.mod")

	noModule := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(noModule, []byte("go 1.25\n"), 0644))
	_, err = parser.ParseModuleName(noModule)
	assert.ErrorContains(t, err, "no module declaration")

	require.NoError(t, os.WriteFile(noModule, []byte("module a b\n"), 0644))
	_, err = parser.ParseModuleName(noModule)
	assert.ErrorContains(t, err, "failed to parse go.mod")
}

func TestValidModulePath(t *testing.T) {
	validate := ValidModulePath("module")

	assert.NoError(t, validate("github.com/toyz/argon"))
	assert.Error(t, validate(""))
	assert.Error(t, validate("has space/pkg"))
}
