package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

const (
	yamlFile = ".pkgkraft.yaml"
	tomlFile = ".pkgkraft.toml"
)

// Loader implements domain.ConfigLoader by reading .pkgkraft.yaml, or
// .pkgkraft.toml when no YAML file exists.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads the package config from packagePath. A file path is resolved to
// its directory. Returns DefaultConfig if neither file exists.
func (l *Loader) Load(packagePath string) (domain.ProjectConfig, error) {
	dir := packagePath
	if info, err := os.Stat(packagePath); err == nil && !info.IsDir() {
		dir = filepath.Dir(packagePath)
	}

	cfg, found, err := loadYAML(filepath.Join(dir, yamlFile))
	if err != nil || found {
		return cfg, err
	}

	cfg, found, err = loadTOML(filepath.Join(dir, tomlFile))
	if err != nil || found {
		return cfg, err
	}

	return domain.DefaultConfig(), nil
}

func loadYAML(path string) (domain.ProjectConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ProjectConfig{}, false, nil
		}
		return domain.ProjectConfig{}, false, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, true, fmt.Errorf("parsing %s: %w", yamlFile, err)
	}
	return cfg, true, nil
}

func loadTOML(path string) (domain.ProjectConfig, bool, error) {
	var cfg domain.ProjectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ProjectConfig{}, false, nil
		}
		return domain.ProjectConfig{}, true, fmt.Errorf("parsing %s: %w", tomlFile, err)
	}
	return cfg, true, nil
}
