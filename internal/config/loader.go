package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

const appName = "splitview"

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("SPLITVIEW_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		xdgConfigDir := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, appName, "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], appName, "config.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config found: %w", err)
	}
	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("loading embedded default config: %w", err)
	}
	return config, nil
}

// Load decodes data over c. Keys missing from data keep their current values.
func (c *Config) Load(data string) error {
	_, err := toml.Decode(data, c)
	return err
}

// LoadConfigFile reads the config file at configFile, or at the default
// location when configFile is empty. A missing default file is not an error.
func LoadConfigFile(configFile string) ([]byte, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = getConfigFilePath()
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Resolve loads the defaults, applies the user config file on top and validates the result.
func Resolve(configFile string) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}
	data, err := LoadConfigFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if data != nil {
		if err := config.Load(string(data)); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// StateFilePath is where UI state is persisted: the configured file, or
// state.toml next to the config file.
func (c *Config) StateFilePath() string {
	if c.State.File != "" {
		return c.State.File
	}
	dir := GetConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "state.toml")
}
