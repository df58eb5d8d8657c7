// Package config loads the calculator shell configuration from a JSON or
// YAML file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

// Config controls the interactive shell.
type Config struct {
	Prompt      string `json:"prompt" mapstructure:"prompt"`
	HistorySize int    `json:"history_size" mapstructure:"history_size"`
	JSON        bool   `json:"json" mapstructure:"json"`
}

func Default() Config {
	return Config{
		Prompt:      "> ",
		HistorySize: 100,
	}
}

// Load reads a configuration file, chosen by extension. Missing keys keep
// their defaults.
func Load(path string) (Config, error) {
	var parse func(io.Reader) (Config, error)
	switch filepath.Ext(path) {
	case ".json":
		parse = parseJSON
	case ".yaml", ".yml":
		parse = parseYAML
	default:
		return Config{}, fmt.Errorf("unsupported file extension: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("os.Open(%q): %w", path, err)
	}
	defer f.Close()

	return parse(f)
}

func parseYAML(r io.Reader) (Config, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return Config{}, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	return parseJSON(bytes.NewReader(jsonBytes))
}

func parseJSON(r io.Reader) (Config, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("json.Decode: %w", err)
	}

	cfg := Default()
	if err := mapstructure.WeakDecode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("mapstructure.WeakDecode: %w", err)
	}
	return cfg, nil
}
