package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confgen/confgen/errors"
	"github.com/confgen/confgen/schema"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"default.json", true},
		{"prod.yaml", true},
		{"staging.yml", true},
		{"DEFAULT.JSON", true},
		{"notes.txt", false},
		{"config.toml", false},
		{"invalid.json", false},
		{"malformed.json", false},
		{"non-object.json", false},
	}

	for _, tt := range tests {
		if got := Eligible(tt.name); got != tt.want {
			t.Errorf("Eligible(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "default.json", `{"provider":"default"}`)
	writeConfig(t, dir, "prod.json", `{"provider":"sendgrid"}`)
	writeConfig(t, dir, "readme.txt", "ignored")
	writeConfig(t, dir, "invalid.json", `{{{not json`)

	envs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, envs, 2)

	assert.Contains(t, envs, "default")
	assert.Contains(t, envs, "prod")
	assert.Equal(t, schema.KindObject, envs["default"].Kind)
	assert.Equal(t, "sendgrid", envs["prod"].Obj["provider"].Str)
}

func TestLoadDir_YAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "default.json", `{"port":8080}`)
	writeConfig(t, dir, "staging.yaml", "port: 9090\ntags:\n  - a\n  - b\n")

	envs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Contains(t, envs, "staging")

	staging := envs["staging"]
	assert.Equal(t, "9090", schema.RenderLiteral(staging.Obj["port"]))
	require.Equal(t, schema.KindArray, staging.Obj["tags"].Kind)
	assert.Len(t, staging.Obj["tags"].Arr, 2)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingConfigDir))
}

func TestLoadDir_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "readme.txt", "no configs here")

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyConfigSet))
}

func TestLoadDir_NonObjectTopLevel(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "default.json", `["not","an","object"]`)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an object")
}

func TestLoadDir_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "broken.json", `{"oops":`)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestLoadDir_DuplicateStem(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "prod.json", `{"a":1}`)
	writeConfig(t, dir, "prod.yaml", "a: 2\n")

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate environment")
}

func TestEligibleFiles_SortedByFilename(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "prod.json", `{}`)
	writeConfig(t, dir, "default.json", `{}`)
	writeConfig(t, dir, "dev.json", `{}`)

	paths, err := EligibleFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, "default.json", filepath.Base(paths[0]))
	assert.Equal(t, "dev.json", filepath.Base(paths[1]))
	assert.Equal(t, "prod.json", filepath.Base(paths[2]))
}
