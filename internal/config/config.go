package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// DefaultPrompt is shown before each interactive command
	DefaultPrompt = "offspring> "
	// DefaultDelimiter separates names within a record
	DefaultDelimiter = ","
)

// Config represents the user configuration
type Config struct {
	MaxNodes  *int    `json:"maxNodes,omitempty"`
	LogFile   *string `json:"logFile,omitempty"`
	Prompt    *string `json:"prompt,omitempty"`
	Delimiter *string `json:"delimiter,omitempty"`
}

// GetConfigPath returns the path to the configuration file.
// If OFFSPRING_CONFIG is set, uses that path.
// Otherwise, uses ~/.offspring/config.json
func GetConfigPath() string {
	if customPath := os.Getenv("OFFSPRING_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".offspring.json"
	}
	return filepath.Join(homeDir, ".offspring", "config.json")
}

// GetConfig reads the configuration file
func GetConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	return &config, nil
}

// writeConfig stores the configuration, creating its directory when needed
func writeConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, configJSON, 0600)
}

// updateConfig applies fn to the stored configuration and writes it back
func updateConfig(configPath string, fn func(*Config)) error {
	config, err := GetConfig(configPath)
	if err != nil {
		config = &Config{}
	}
	fn(config)
	return writeConfig(configPath, config)
}

// GetMaxNodes returns the node budget, 0 meaning unlimited.
// OFFSPRING_MAX_NODES overrides the configured value.
func GetMaxNodes(configPath string) (int, error) {
	if envValue := os.Getenv("OFFSPRING_MAX_NODES"); envValue != "" {
		maxNodes, err := strconv.Atoi(envValue)
		if err != nil || maxNodes < 0 {
			return 0, fmt.Errorf("invalid OFFSPRING_MAX_NODES: %q", envValue)
		}
		return maxNodes, nil
	}

	config, err := GetConfig(configPath)
	if err != nil {
		return 0, err
	}
	if config.MaxNodes != nil {
		return *config.MaxNodes, nil
	}
	return 0, nil
}

// SetMaxNodes updates the node budget in the config
func SetMaxNodes(configPath string, maxNodes int) error {
	if maxNodes < 0 {
		return fmt.Errorf("maxNodes must not be negative")
	}
	return updateConfig(configPath, func(c *Config) {
		c.MaxNodes = &maxNodes
	})
}

// GetPrompt returns the interactive prompt, or DefaultPrompt if not set
func GetPrompt(configPath string) (string, error) {
	config, err := GetConfig(configPath)
	if err != nil {
		return "", err
	}
	if config.Prompt != nil {
		return *config.Prompt, nil
	}
	return DefaultPrompt, nil
}

// SetPrompt updates the interactive prompt in the config
func SetPrompt(configPath string, prompt string) error {
	return updateConfig(configPath, func(c *Config) {
		c.Prompt = &prompt
	})
}

// GetDelimiter returns the record delimiter, or DefaultDelimiter if not set
func GetDelimiter(configPath string) (string, error) {
	config, err := GetConfig(configPath)
	if err != nil {
		return "", err
	}
	if config.Delimiter != nil && *config.Delimiter != "" {
		return *config.Delimiter, nil
	}
	return DefaultDelimiter, nil
}

// SetDelimiter updates the record delimiter in the config
func SetDelimiter(configPath string, delimiter string) error {
	if delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	return updateConfig(configPath, func(c *Config) {
		c.Delimiter = &delimiter
	})
}

// GetLogFile returns the log file path.
// OFFSPRING_LOG_FILE overrides the configured value; otherwise
// ~/.offspring/logs/offspring.log is used.
func GetLogFile(configPath string) (string, error) {
	if customPath := os.Getenv("OFFSPRING_LOG_FILE"); customPath != "" {
		return customPath, nil
	}

	config, err := GetConfig(configPath)
	if err != nil {
		return "", err
	}
	if config.LogFile != nil {
		return *config.LogFile, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "offspring.log", nil
	}
	return filepath.Join(homeDir, ".offspring", "logs", "offspring.log"), nil
}

// SetLogFile updates the log file path in the config.
// An empty path disables file logging.
func SetLogFile(configPath string, logFile string) error {
	return updateConfig(configPath, func(c *Config) {
		c.LogFile = &logFile
	})
}
