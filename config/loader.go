package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoaderConfig holds optional loader settings.
type LoaderConfig struct {
	// EnvFile is a .env file loaded before the config file is read.
	EnvFile string
	// ExpandEnv enables ${VAR} expansion in the config file content.
	ExpandEnv bool
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithEnvFile sets a .env file to load before reading the config file.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvExpansion enables ${VAR} expansion in the config file content.
func WithEnvExpansion() LoaderOption {
	return func(lc *LoaderConfig) { lc.ExpandEnv = true }
}

// Load reads a YAML or JSON configuration file into the raw map consumed
// by Store.Init. The format is chosen by file extension; anything that is
// not .json is parsed as YAML.
//
// Topic names keep their case exactly as written in the file.
func Load(path string, opts ...LoaderOption) (map[string]any, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", lc.EnvFile, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if lc.ExpandEnv {
		data = []byte(os.ExpandEnv(string(data)))
	}

	raw := make(map[string]any)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return raw, nil
}
