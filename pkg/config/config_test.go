package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
models:
  default: gemini-flash
  definitions:
    gemini-flash:
      provider: gemini
      model_name: gemini-2.5-flash
      temperature: 0.7
      timeout: 90s
    deepseek:
      provider: deepseek
      model_name: deepseek-chat
      base_url: https://api.deepseek.com/v1
app:
  debug: true
  export_dir: ./briefs
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-flash", cfg.Models.Default)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "./briefs", cfg.App.ExportDir)

	def, ok := cfg.GetModel("")
	require.True(t, ok, "default model should resolve")
	assert.Equal(t, "gemini", def.Provider)
	assert.Equal(t, "gemini-2.5-flash", def.ModelName)
	assert.Equal(t, 90*time.Second, def.Timeout)

	ds, ok := cfg.GetModel("deepseek")
	require.True(t, ok)
	assert.Equal(t, "https://api.deepseek.com/v1", ds.BaseURL)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("BLUEPRINT_TEST_KEY", "sk-from-env")

	path := writeConfig(t, `
models:
  default: gpt
  definitions:
    gpt:
      provider: openai
      model_name: gpt-4o-mini
      api_key: ${BLUEPRINT_TEST_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	def, _ := cfg.GetModel("gpt")
	assert.Equal(t, "sk-from-env", def.APIKey)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty definitions",
			content: "models:\n  default: x\n",
		},
		{
			name: "default not defined",
			content: `
models:
  default: missing
  definitions:
    gpt:
      provider: openai
      model_name: gpt-4o-mini
`,
		},
		{
			name: "definition without provider",
			content: `
models:
  default: gpt
  definitions:
    gpt:
      model_name: gpt-4o-mini
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	def, ok := cfg.GetModel("")
	require.True(t, ok)
	assert.Equal(t, "gemini", def.Provider)
	assert.NotEmpty(t, def.ModelName)
}
