package config

import (
	"fmt"
	"os"
	"path/filepath"

	"launchpad/logger"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/launchpad"
	configFileName = "config.yaml"
)

// Load layers the defaults, the user config and the file at path (if path
// is not empty), then validates the result.
func Load(path string) (Config, error) {
	config := Default()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logger.Warn("config", "could not determine user config path: %v", err)
	} else if _, err := os.Stat(userConfigPath); err == nil {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
		logger.Debug("config", "loaded user config %s", userConfigPath)
	}

	if path != "" {
		fileConfig, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		config = mergeConfigs(config, fileConfig)
		logger.Debug("config", "loaded config %s", path)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs overrides base with every field set in overlay. A steps list
// in overlay replaces the base list as a whole.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Splash.Title != "" {
		merged.Splash.Title = overlay.Splash.Title
	}
	if overlay.Splash.Logo != "" {
		merged.Splash.Logo = overlay.Splash.Logo
	}
	if len(overlay.Splash.Steps) > 0 {
		merged.Splash.Steps = append([]string(nil), overlay.Splash.Steps...)
	}
	if overlay.Splash.TickInterval != 0 {
		merged.Splash.TickInterval = overlay.Splash.TickInterval
	}
	if overlay.Splash.SettleDelay != 0 {
		merged.Splash.SettleDelay = overlay.Splash.SettleDelay
	}
	if overlay.Splash.Next != "" {
		merged.Splash.Next = overlay.Splash.Next
	}

	if overlay.Server.Addr != "" {
		merged.Server.Addr = overlay.Server.Addr
	}
	if overlay.Server.Name != "" {
		merged.Server.Name = overlay.Server.Name
	}
	if overlay.Server.Description != "" {
		merged.Server.Description = overlay.Server.Description
	}
	if overlay.Server.Version != "" {
		merged.Server.Version = overlay.Server.Version
	}

	return merged
}
