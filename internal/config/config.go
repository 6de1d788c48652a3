// Package config loads the directoryd configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Directory configures the development directory server.
type Directory struct {
	// Listen is the address the HTTP server binds, e.g. ":8310".
	Listen string `yaml:"listen"`
	// CertsDir holds one <node-id>.crt PEM file per enrolled node.
	CertsDir string `yaml:"certs_dir"`
}

// LoadDirectory reads and parses a directoryd config file. An empty path
// returns defaults.
func LoadDirectory(path string) (Directory, error) {
	cfg := Directory{Listen: ":8310", CertsDir: "certs"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8310"
	}
	return cfg, nil
}
