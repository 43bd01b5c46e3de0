package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configName = ".measure.yaml"

// Config of a measurement run. Flags given on the command line win over the file.
type Config struct {
	Words    string `yaml:"words"`
	Samples  int    `yaml:"samples"`
	Seed     int64  `yaml:"seed"`
	Progress bool   `yaml:"progress"`
}

var defaultConfig = Config{
	Words:    "words.txt",
	Samples:  10000,
	Seed:     1,
	Progress: true,
}

func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configName), nil
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// means the file in the home directory, which is allowed to be missing.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &cfg, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("config %s: samples must be positive, got %d", path, cfg.Samples)
	}
	return &cfg, nil
}

// WriteDefaultConfig writes the defaults to path, or to the home directory
// file when path is empty, and returns where it wrote.
func WriteDefaultConfig(path string) (string, error) {
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
