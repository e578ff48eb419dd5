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
	path := filepath.Join(t.TempDir(), "caveat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Engine.Workers)
	assert.Equal(t, 30*time.Second, cfg.Engine.ClauseTimeout.Std())
	assert.Equal(t, 5*time.Minute, cfg.Engine.TotalTimeout.Std())
	assert.Equal(t, "contract", cfg.Context.DocumentType)
	assert.Equal(t, "party_reviewing", cfg.Context.UserRole)
	assert.Empty(t, cfg.Analyzer.Driver)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
analyzer:
  driver: openai
  model: llama-3.3-70b-versatile
  base_url: https://api.groq.com/openai/v1
  api_key_env: GROQ_API_KEY
engine:
  workers: 8
  clause_timeout: 45s
context:
  document_type: employment_agreement
  user_role: employee
  industry: software
  jurisdiction: california
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Analyzer.Driver)
	assert.Equal(t, "GROQ_API_KEY", cfg.Analyzer.APIKeyEnv)
	assert.Equal(t, 8, cfg.Engine.Workers)
	assert.Equal(t, 45*time.Second, cfg.Engine.ClauseTimeout.Std())
	assert.Equal(t, 5*time.Minute, cfg.Engine.TotalTimeout.Std())
	assert.Equal(t, "employment_agreement", cfg.Context.DocumentType)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
engine:
  workers: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Engine.Workers)
	assert.Equal(t, "contract", cfg.Context.DocumentType)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, `
analyzer:
  driver: nonexistent
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyzer driver not found")
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
engine:
  clause_timeout: soon
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing duration")
}

func TestLoad_TooManyWorkers(t *testing.T) {
	path := writeConfig(t, `
engine:
  workers: 500
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBuildAnalyzer_NoneConfigured(t *testing.T) {
	cfg := Default()

	driver, err := cfg.BuildAnalyzer()
	require.NoError(t, err)
	assert.Nil(t, driver)
}

func TestBuildAnalyzer_MissingCredential(t *testing.T) {
	cfg := Default()
	cfg.Analyzer.Driver = "openai"
	cfg.Analyzer.APIKeyEnv = "CAVEAT_TEST_KEY_UNSET"

	_, err := cfg.BuildAnalyzer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CAVEAT_TEST_KEY_UNSET")
}

func TestBuildAnalyzer_FromEnv(t *testing.T) {
	t.Setenv("CAVEAT_TEST_KEY", "sk-test")

	cfg := Default()
	cfg.Analyzer.Driver = "openai"
	cfg.Analyzer.APIKeyEnv = "CAVEAT_TEST_KEY"

	driver, err := cfg.BuildAnalyzer()
	require.NoError(t, err)
	require.NotNil(t, driver)
	assert.Equal(t, "openai", driver.Name())
}
