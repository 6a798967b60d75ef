package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "nile-validator.yaml"

// config mirrors the optional nile-validator.yaml file, which saves a
// project from repeating the same flags on every check. Translations may
// be glob patterns.
type config struct {
	Base         string   `yaml:"base"`
	Translations []string `yaml:"translations"`
	Ignore       []string `yaml:"ignore"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// expandGlobs resolves the glob patterns a config file may use for its
// translation list. A pattern that matches nothing is kept verbatim, so
// the missing file surfaces as a load error instead of silently checking
// zero files.
func expandGlobs(patterns []string) []string {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			paths = append(paths, pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}
