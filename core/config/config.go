package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"nsgen/core/logger"
)

type Config struct {
	Codegen Codegen `yaml:"codegen"`
}

type Codegen struct {
	Namespaces Namespaces `yaml:"namespaces"`
}

type Namespaces struct {
	// Root is the directory whose immediate subdirectories are treated as
	// namespaces. Output is the aggregator file, conventionally inside Root.
	Root   string `yaml:"root"`
	Output string `yaml:"output"`
}

func Default() *Config {
	return &Config{
		Codegen: Codegen{
			Namespaces: Namespaces{
				Root:   "namespaces",
				Output: filepath.Join("namespaces", "namespaces.go"),
			},
		},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	paths := []string{
		filepath.Join(wd, "nsgen.yaml"),
	}

	var filePath string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			filePath = p
			break
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	def := Default()
	if cfg.Codegen.Namespaces.Root == "" {
		cfg.Codegen.Namespaces.Root = def.Codegen.Namespaces.Root
	}
	if cfg.Codegen.Namespaces.Output == "" {
		cfg.Codegen.Namespaces.Output = def.Codegen.Namespaces.Output
	}

	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return &cfg, nil
}
