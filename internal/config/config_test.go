package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	t.Run("returns empty config when file does not exist", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "missing.json")

		config, err := GetConfig(configPath)
		require.NoError(t, err)
		require.Nil(t, config.MaxNodes)
		require.Nil(t, config.Prompt)
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

		_, err := GetConfig(configPath)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestGetConfigPath(t *testing.T) {
	t.Run("uses OFFSPRING_CONFIG when set", func(t *testing.T) {
		t.Setenv("OFFSPRING_CONFIG", "/tmp/custom.json")
		require.Equal(t, "/tmp/custom.json", GetConfigPath())
	})

	t.Run("defaults to home directory", func(t *testing.T) {
		t.Setenv("OFFSPRING_CONFIG", "")
		t.Setenv("HOME", "/home/tester")
		require.Equal(t, filepath.Join("/home/tester", ".offspring", "config.json"), GetConfigPath())
	})
}

func TestMaxNodes(t *testing.T) {
	t.Run("defaults to unlimited", func(t *testing.T) {
		t.Setenv("OFFSPRING_MAX_NODES", "")
		configPath := filepath.Join(t.TempDir(), "config.json")

		maxNodes, err := GetMaxNodes(configPath)
		require.NoError(t, err)
		require.Zero(t, maxNodes)
	})

	t.Run("round trips through the config file", func(t *testing.T) {
		t.Setenv("OFFSPRING_MAX_NODES", "")
		configPath := filepath.Join(t.TempDir(), "nested", "config.json")

		require.NoError(t, SetMaxNodes(configPath, 25))

		maxNodes, err := GetMaxNodes(configPath)
		require.NoError(t, err)
		require.Equal(t, 25, maxNodes)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, SetMaxNodes(configPath, 25))
		t.Setenv("OFFSPRING_MAX_NODES", "3")

		maxNodes, err := GetMaxNodes(configPath)
		require.NoError(t, err)
		require.Equal(t, 3, maxNodes)
	})

	t.Run("rejects invalid environment value", func(t *testing.T) {
		t.Setenv("OFFSPRING_MAX_NODES", "lots")

		_, err := GetMaxNodes(filepath.Join(t.TempDir(), "config.json"))
		require.Error(t, err)
	})

	t.Run("rejects negative budget", func(t *testing.T) {
		require.Error(t, SetMaxNodes(filepath.Join(t.TempDir(), "config.json"), -1))
	})
}

func TestPromptAndDelimiter(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	prompt, err := GetPrompt(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultPrompt, prompt)

	delimiter, err := GetDelimiter(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultDelimiter, delimiter)

	require.NoError(t, SetPrompt(configPath, "family> "))
	require.NoError(t, SetDelimiter(configPath, ";"))
	require.Error(t, SetDelimiter(configPath, ""))

	prompt, err = GetPrompt(configPath)
	require.NoError(t, err)
	require.Equal(t, "family> ", prompt)

	delimiter, err = GetDelimiter(configPath)
	require.NoError(t, err)
	require.Equal(t, ";", delimiter)
}

func TestLogFile(t *testing.T) {
	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("OFFSPRING_LOG_FILE", "/tmp/offspring-test.log")

		logFile, err := GetLogFile(filepath.Join(t.TempDir(), "config.json"))
		require.NoError(t, err)
		require.Equal(t, "/tmp/offspring-test.log", logFile)
	})

	t.Run("empty configured path disables file logging", func(t *testing.T) {
		t.Setenv("OFFSPRING_LOG_FILE", "")
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, SetLogFile(configPath, ""))

		logFile, err := GetLogFile(configPath)
		require.NoError(t, err)
		require.Empty(t, logFile)
	})
}
