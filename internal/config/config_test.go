package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

func restore() {
	loadEnvFile = func() error { return godotenv.Load() }
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"REGISTRY_LOG_LEVEL",
		"REGISTRY_PROMPT",
		"REGISTRY_SEED_EMAIL",
		"REGISTRY_SEED_NAME",
		"REGISTRY_SEED_PASSWORD",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(restore)
	clearEnv(t)
	loadEnvFile = func() error { return errors.New("missing") }

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, log.INFO, cfg.LogLevel)
	require.Empty(t, cfg.Prompt)
	require.False(t, cfg.HasSeed())
	require.False(t, cfg.EnvFileLoaded)
}

func TestLoadFromEnv(t *testing.T) {
	t.Cleanup(restore)
	clearEnv(t)
	loadEnvFile = func() error { return nil }
	t.Setenv("REGISTRY_LOG_LEVEL", "DEBUG")
	t.Setenv("REGISTRY_PROMPT", "registry> ")
	t.Setenv("REGISTRY_SEED_EMAIL", "root@example.com")
	t.Setenv("REGISTRY_SEED_NAME", "Root")
	t.Setenv("REGISTRY_SEED_PASSWORD", "rootpass1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, log.DEBUG, cfg.LogLevel)
	require.Equal(t, "registry> ", cfg.Prompt)
	require.True(t, cfg.HasSeed())
	require.Equal(t, "root@example.com", cfg.SeedEmail)
	require.Equal(t, "Root", cfg.SeedName)
	require.Equal(t, "rootpass1", cfg.SeedPassword)
}

func TestLoadErrors(t *testing.T) {
	t.Cleanup(restore)
	clearEnv(t)
	loadEnvFile = func() error { return nil }

	t.Setenv("REGISTRY_LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("REGISTRY_LOG_LEVEL", "off")
	t.Setenv("REGISTRY_SEED_EMAIL", "root@example.com")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("REGISTRY_SEED_EMAIL", "")
	t.Setenv("REGISTRY_SEED_PASSWORD", "rootpass1")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	t.Cleanup(restore)
	clearEnv(t)
	os.Unsetenv("REGISTRY_PROMPT")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REGISTRY_PROMPT=from-file\n"), 0o600))
	loadEnvFile = func() error { return godotenv.Load(path) }

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Prompt)
	require.True(t, cfg.EnvFileLoaded)
}
