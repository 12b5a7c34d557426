package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RookieChen4/git-commit/internal/config"
	"github.com/RookieChen4/git-commit/internal/schema"
)

const shortSchemaYAML = `steps:
  - key: type
    prompt: Type
  - key: subject
    prompt: Subject
branches:
  type:
    - value: feat
`

func writeSchemaFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaShowDefault(t *testing.T) {
	setupWizardEnv(t, "")

	stdout, _, err := executeRoot(t, "", "schema", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "embedded/default.yaml")
	assert.Contains(t, stdout, "1. id (text, required): Task ID")
	assert.Contains(t, stdout, "2. type (select): Change type")
	assert.Contains(t, stdout, "- refactor")
}

func TestSchemaShowUsesSchemaFlag(t *testing.T) {
	setupWizardEnv(t, "")
	path := writeSchemaFile(t, "short.yaml", shortSchemaYAML)

	stdout, _, err := executeRoot(t, "", "--schema", path, "schema", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, path)
	assert.Contains(t, stdout, "- feat  feat")
	assert.NotContains(t, stdout, "Task ID")
}

func TestSchemaShowFormats(t *testing.T) {
	setupWizardEnv(t, "")

	tests := []struct {
		format   string
		contains string
	}{
		{format: "yaml", contains: "steps:"},
		{format: "json", contains: `"steps": [`},
		{format: "toml", contains: "[[steps]]"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := executeRoot(t, "", "schema", "show", "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.contains)

			parsed, err := schema.Parse("out."+tt.format, []byte(stdout))
			require.NoError(t, err)
			assert.Equal(t, 4, parsed.Len())
		})
	}
}

func TestSchemaShowUnknownFormat(t *testing.T) {
	setupWizardEnv(t, "")

	_, _, err := executeRoot(t, "", "schema", "show", "--format", "xml")
	require.Error(t, err)
}

func TestSchemaValidate(t *testing.T) {
	setupWizardEnv(t, "")
	path := writeSchemaFile(t, "short.yaml", shortSchemaYAML)

	stdout, _, err := executeRoot(t, "", "schema", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid (2 steps)")
}

func TestSchemaValidateReportsErrors(t *testing.T) {
	setupWizardEnv(t, "")
	path := writeSchemaFile(t, "dup.yaml", "steps:\n  - key: a\n    prompt: A\n  - key: a\n    prompt: B\n")

	_, _, err := executeRoot(t, "", "schema", "validate", path)
	require.ErrorIs(t, err, schema.ErrInvalidSchema)
}

func TestSchemaUseStoresAbsolutePath(t *testing.T) {
	env := setupWizardEnv(t, "")
	path := writeSchemaFile(t, "short.toml", "[[steps]]\nkey = \"subject\"\nprompt = \"Subject\"\n")

	stdout, _, err := executeRoot(t, "", "schema", "use", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Using schema")

	cfg, err := config.LoadFrom(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.SchemaPath())

	_, _, err = executeRoot(t, "", "schema", "use", "--clear")
	require.NoError(t, err)

	cfg, err = config.LoadFrom(env.configPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.SchemaPath())
}

func TestSchemaUseRejectsInvalidFile(t *testing.T) {
	env := setupWizardEnv(t, "")
	path := writeSchemaFile(t, "bad.yaml", "steps: []\n")

	_, _, err := executeRoot(t, "", "schema", "use", path)
	require.Error(t, err)

	cfg, err := config.LoadFrom(env.configPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.SchemaPath())
}

func TestSchemaUseArgs(t *testing.T) {
	setupWizardEnv(t, "")

	_, _, err := executeRoot(t, "", "schema", "use")
	require.Error(t, err)

	_, _, err = executeRoot(t, "", "schema", "use", "--clear", "extra.yaml")
	require.Error(t, err)
}
