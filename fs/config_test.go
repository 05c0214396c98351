package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/commitgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Subtests mutate the environment, so no t.Parallel here.

	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range []string{
			"COMMITGEN_PROVIDER", "COMMITGEN_FORGE", "COMMITGEN_HISTORY",
			"GEMINI_API_KEY", "OPENAI_API_KEY", "GITHUB_TOKEN", "GITLAB_TOKEN",
		} {
			t.Setenv(key, "")
		}
	}

	t.Run("missing file yields defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := fs.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))

		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.Provider)
		assert.Equal(t, "github", cfg.Forge)
		assert.NotEmpty(t, cfg.HistoryPath)
	})

	t.Run("reads values from the file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"provider": "openai",
			"forge": "gitlab",
			"history_path": "/tmp/history.jsonl",
			"openai": {"api_key": "file-key", "model": "gpt-4o"}
		}`), 0o644))

		cfg, err := fs.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "gitlab", cfg.Forge)
		assert.Equal(t, "/tmp/history.jsonl", cfg.HistoryPath)
		assert.Equal(t, "file-key", cfg.OpenAI.APIKey)
		assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"provider": "gemini",
			"gemini": {"api_key": "file-key"}
		}`), 0o644))

		t.Setenv("COMMITGEN_PROVIDER", "openai")
		t.Setenv("GEMINI_API_KEY", "env-key")

		cfg, err := fs.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	})

	t.Run("rejects unknown providers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("COMMITGEN_PROVIDER", "mistral")

		_, err := fs.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorContains(t, err, "unknown provider")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := fs.LoadConfig(path)
		assert.Error(t, err)
	})
}
