package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, dotenvErr, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Error(t, dotenvErr)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "utf-8", cfg.TransferEncoding)
	assert.Equal(t, "utf-8", cfg.PhaseoutEncoding)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, filepath.Join("data", "tabela_transferencia.csv"), cfg.TransferPath())
	assert.Equal(t, filepath.Join("data", "tabela_phaseout.csv"), cfg.PhaseoutPath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PHASEOUT_ENCODING", "latin1")
	t.Setenv("DATA_DIR", "/srv/hermes")
	t.Setenv("PHASEOUT_FILE", "/tmp/po.csv")

	cfg, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "latin1", cfg.PhaseoutEncoding)
	assert.Equal(t, filepath.Join("/srv/hermes", "tabela_transferencia.csv"), cfg.TransferPath())
	assert.Equal(t, "/tmp/po.csv", cfg.PhaseoutPath())
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUGGESTION_URL=https://forms.example/x\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SUGGESTION_URL") })

	cfg, dotenvErr, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, dotenvErr)
	assert.Equal(t, "https://forms.example/x", cfg.SuggestionURL)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestThemePath(t *testing.T) {
	cfg := Config{ThemeFile: "/tmp/theme.yaml"}
	path, err := cfg.ThemePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/theme.yaml", path)
}
