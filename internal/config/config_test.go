package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvDefaultFile, "")
	path := writeConfig(t, "theme: felt\nlisten: ':9000'\nhistory_db: ''\nbackup: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "felt", cfg.Theme)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "", cfg.HistoryDB)
	assert.False(t, cfg.Backup)
	assert.Equal(t, "ttsedit_debug.log", cfg.LogFile, "unset fields keep defaults")
}

func TestLoad_MissingDefaultFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv(EnvDefaultFile, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "default_file: from-config.json\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvDefaultFile, "/saves/army.json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/saves/army.json", cfg.DefaultFile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvDefaultFile, "")

	tests := []struct {
		name string
		body string
	}{
		{"unknown theme", "theme: neon\n"},
		{"listen without port", "listen: localhost\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "theme: [unterminated\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/config.yaml")
	assert.Equal(t, "/explicit.yaml", Path("/explicit.yaml"))
	assert.Equal(t, "/env/config.yaml", Path(""))
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(EnvDefaultFile, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.DefaultFile = "army.json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
